package service

import (
	"context"

	"github.com/movilstock/backoffice/internal/domain/reseller"
	"github.com/movilstock/backoffice/internal/domain/user"
	"github.com/movilstock/backoffice/pkg/logger"
)

// ResellerService administra los perfiles de revendedores y sus cuentas
// de usuario asociadas
type ResellerService struct {
	resellerRepo reseller.Repository
	userRepo     user.Repository
	notifier     *Notifier
	logger       logger.Logger
}

// NewResellerService crea una nueva instancia de ResellerService
func NewResellerService(
	resellerRepo reseller.Repository,
	userRepo user.Repository,
	notifier *Notifier,
	logger logger.Logger,
) *ResellerService {
	return &ResellerService{
		resellerRepo: resellerRepo,
		userRepo:     userRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

// CreateResellerInput son los datos para dar de alta un revendedor
type CreateResellerInput struct {
	Name     string
	Email    string
	Password string
	Segment  string
	Company  string
	Phone    string
	Address  string
	ActorID  string
}

// Create da de alta la cuenta de usuario y el perfil del revendedor en
// una única transacción
func (s *ResellerService) Create(ctx context.Context, in CreateResellerInput) (*reseller.Reseller, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, user.ErrDuplicateEmail
	}

	u, err := user.NewUser(in.Name, in.Email, user.RoleReseller)
	if err != nil {
		return nil, err
	}
	if err := u.SetPassword(in.Password); err != nil {
		return nil, err
	}

	r, err := reseller.NewReseller(u.ID, in.Name)
	if err != nil {
		return nil, err
	}
	r.Segment = in.Segment
	r.Company = in.Company
	r.Phone = in.Phone
	r.Address = in.Address

	if err := s.resellerRepo.CreateWithUser(ctx, u, r); err != nil {
		return nil, err
	}

	s.notifier.Audit(ctx, &in.ActorID, "reseller.created", "reseller", r.ID, map[string]any{
		"email": in.Email,
	})

	return r, nil
}

// Delete elimina al revendedor con todas sus dependencias: equipos
// desasignados, consignaciones, movimientos de deuda, pagos, pedidos de
// stock y la cuenta de usuario, en una única transacción.
func (s *ResellerService) Delete(ctx context.Context, id, actorID string) error {
	if _, err := s.resellerRepo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.resellerRepo.DeleteCascade(ctx, id); err != nil {
		return err
	}

	s.notifier.Audit(ctx, &actorID, "reseller.deleted", "reseller", id, nil)

	return nil
}

// FindByID devuelve un revendedor por su ID
func (s *ResellerService) FindByID(ctx context.Context, id string) (*reseller.Reseller, error) {
	return s.resellerRepo.FindByID(ctx, id)
}

// List lista revendedores con paginación
func (s *ResellerService) List(ctx context.Context, limit, offset int) ([]*reseller.Reseller, error) {
	return s.resellerRepo.List(ctx, limit, offset)
}

// Update actualiza el perfil de un revendedor
func (s *ResellerService) Update(ctx context.Context, r *reseller.Reseller) error {
	return s.resellerRepo.Update(ctx, r)
}
