package service

import (
	"context"

	"github.com/movilstock/backoffice/internal/domain/cashbox"
	"github.com/movilstock/backoffice/internal/domain/ledger"
	"github.com/movilstock/backoffice/pkg/logger"
)

// CashBoxService administra las cajas y sus movimientos. El saldo de una
// caja se deriva plegando sus movimientos, igual que el libro de deuda.
// No hay primitiva de transferencia: mover dinero entre cajas son dos
// movimientos independientes.
type CashBoxService struct {
	cashBoxRepo cashbox.Repository
	notifier    *Notifier
	logger      logger.Logger
}

// NewCashBoxService crea una nueva instancia de CashBoxService
func NewCashBoxService(cashBoxRepo cashbox.Repository, notifier *Notifier, logger logger.Logger) *CashBoxService {
	return &CashBoxService{
		cashBoxRepo: cashBoxRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Create crea una nueva caja
func (s *CashBoxService) Create(ctx context.Context, name, currency string, boxType cashbox.BoxType, actorID string) (*cashbox.CashBox, error) {
	box, err := cashbox.NewCashBox(name, currency, boxType)
	if err != nil {
		return nil, err
	}

	if err := s.cashBoxRepo.Create(ctx, box); err != nil {
		return nil, err
	}

	s.notifier.Audit(ctx, &actorID, "cashbox.created", "cashbox", box.ID, nil)

	return box, nil
}

// AddMovement registra un movimiento manual en una caja
func (s *CashBoxService) AddMovement(ctx context.Context, cashBoxID string, movementType cashbox.MovementType, amountCents int64, description, actorID string) (*cashbox.Movement, error) {
	box, err := s.cashBoxRepo.FindByID(ctx, cashBoxID)
	if err != nil {
		return nil, err
	}

	movement, err := cashbox.NewMovement(box.ID, movementType, amountCents, box.Currency, description, ledger.ReferenceManual, actorID)
	if err != nil {
		return nil, err
	}

	if err := s.cashBoxRepo.AddMovement(ctx, movement); err != nil {
		return nil, err
	}

	s.notifier.Audit(ctx, &actorID, "cashbox.movement", "cashbox", box.ID, map[string]any{
		"type":         string(movementType),
		"amount_cents": amountCents,
	})

	return movement, nil
}

// List lista todas las cajas
func (s *CashBoxService) List(ctx context.Context) ([]*cashbox.CashBox, error) {
	return s.cashBoxRepo.List(ctx)
}

// FindByID devuelve una caja por su ID
func (s *CashBoxService) FindByID(ctx context.Context, id string) (*cashbox.CashBox, error) {
	return s.cashBoxRepo.FindByID(ctx, id)
}

// BalanceCents devuelve el saldo actual de una caja
func (s *CashBoxService) BalanceCents(ctx context.Context, cashBoxID string) (int64, error) {
	if _, err := s.cashBoxRepo.FindByID(ctx, cashBoxID); err != nil {
		return 0, err
	}
	return s.cashBoxRepo.BalanceCents(ctx, cashBoxID)
}

// Movements lista los movimientos de una caja
func (s *CashBoxService) Movements(ctx context.Context, cashBoxID string, limit, offset int) ([]*cashbox.Movement, error) {
	if _, err := s.cashBoxRepo.FindByID(ctx, cashBoxID); err != nil {
		return nil, err
	}
	return s.cashBoxRepo.FindMovements(ctx, cashBoxID, limit, offset)
}
