package service

import (
	"context"
	"fmt"
	"time"

	"github.com/movilstock/backoffice/internal/domain/consignment"
	"github.com/movilstock/backoffice/internal/domain/device"
	"github.com/movilstock/backoffice/internal/domain/ledger"
	"github.com/movilstock/backoffice/internal/domain/reseller"
	"github.com/movilstock/backoffice/internal/domain/user"
	"github.com/movilstock/backoffice/pkg/logger"
)

// ConsignmentService orquesta la entrega de equipos a revendedores y el
// cierre de la venta. Las validaciones y precondiciones se verifican antes
// de escribir; las escrituras de estado, movimiento y deuda se confirman
// en una única transacción del repositorio; los efectos secundarios
// (auditoría, chat) corren después del commit y son de mejor esfuerzo.
type ConsignmentService struct {
	consignmentRepo consignment.Repository
	deviceRepo      device.Repository
	resellerRepo    reseller.Repository
	notifier        *Notifier
	logger          logger.Logger
}

// NewConsignmentService crea una nueva instancia de ConsignmentService
func NewConsignmentService(
	consignmentRepo consignment.Repository,
	deviceRepo device.Repository,
	resellerRepo reseller.Repository,
	notifier *Notifier,
	logger logger.Logger,
) *ConsignmentService {
	return &ConsignmentService{
		consignmentRepo: consignmentRepo,
		deviceRepo:      deviceRepo,
		resellerRepo:    resellerRepo,
		notifier:        notifier,
		logger:          logger,
	}
}

// AssignInput son los datos para entregar un equipo en consignación
type AssignInput struct {
	DeviceID        string
	ResellerID      string
	AssignedByID    string
	Note            string
	PaymentMethod   consignment.PaymentMethod
	SalePriceCents  *int64
	AmountPaidCents int64
}

// Assign entrega un equipo a un revendedor: crea la consignación activa
// con su movimiento "assigned", pasa el equipo a consignado y, si el
// precio menos lo entregado deja deuda, registra el débito en el libro.
func (s *ConsignmentService) Assign(ctx context.Context, in AssignInput) (*consignment.Consignment, error) {
	if in.AmountPaidCents < 0 {
		return nil, consignment.ErrInvalidAmountPaid
	}

	if in.SalePriceCents != nil && *in.SalePriceCents <= 0 {
		return nil, consignment.ErrInvalidSaleAmount
	}

	dev, err := s.deviceRepo.FindByID(ctx, in.DeviceID)
	if err != nil {
		return nil, err
	}

	if !dev.IsAvailable() {
		return nil, consignment.ErrDeviceNotAvailable
	}

	active, err := s.consignmentRepo.FindActiveByDevice(ctx, in.DeviceID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, consignment.ErrAlreadyConsigned
	}

	if _, err := s.resellerRepo.FindByID(ctx, in.ResellerID); err != nil {
		return nil, err
	}

	cons, err := consignment.NewConsignment(in.DeviceID, in.ResellerID, in.AssignedByID, in.PaymentMethod, in.SalePriceCents)
	if err != nil {
		return nil, err
	}

	movement := consignment.NewMovement(cons.ID, consignment.MovementAssigned, in.Note, in.AssignedByID)

	// Precio: el informado, o el costo del equipo, o cero. Si lo
	// entregado cubre el precio no se genera crédito: solo queda deuda
	// cuando la diferencia es positiva.
	var priceCents int64
	if in.SalePriceCents != nil {
		priceCents = *in.SalePriceCents
	} else if dev.CostCents != nil {
		priceCents = *dev.CostCents
	}

	var debt *ledger.Entry
	if debtCents := priceCents - in.AmountPaidCents; debtCents > 0 {
		debt, err = ledger.NewEntry(
			in.ResellerID,
			debtCents,
			ledger.EntryDebit,
			fmt.Sprintf("Consignación de equipo %s", dev.IMEI),
			ledger.ReferenceConsignment,
			cons.ID,
		)
		if err != nil {
			return nil, err
		}
	}

	if err := s.consignmentRepo.CreateActive(ctx, cons, movement, debt); err != nil {
		return nil, err
	}

	cons.Movements = []*consignment.Movement{movement}

	s.notifier.Audit(ctx, &in.AssignedByID, "consignment.assigned", "consignment", cons.ID, map[string]any{
		"device_id":   in.DeviceID,
		"reseller_id": in.ResellerID,
	})
	s.notifier.SystemMessageForReseller(ctx, in.ResellerID,
		fmt.Sprintf("Se te asignó el equipo %s %s en consignación", dev.Model, dev.IMEI))

	return cons, nil
}

// MarkSoldInput son los datos para cerrar una consignación como vendida
type MarkSoldInput struct {
	ConsignmentID   string
	ActorID         string
	ActorRole       user.Role
	SaleAmountCents int64
	Note            string
}

// MarkSold cierra la consignación: la marca como vendida con su movimiento
// "sold", pasa el equipo a vendido y registra el débito por el monto de
// venta informado. El débito se suma al registrado en la entrega; ambos
// quedan visibles por separado en el libro.
func (s *ConsignmentService) MarkSold(ctx context.Context, in MarkSoldInput) (*consignment.Consignment, error) {
	if in.SaleAmountCents <= 0 {
		return nil, consignment.ErrInvalidSaleAmount
	}

	cons, err := s.consignmentRepo.FindByID(ctx, in.ConsignmentID)
	if err != nil {
		return nil, err
	}

	// Un revendedor solo puede cerrar sus propias consignaciones
	if in.ActorRole == user.RoleReseller {
		res, err := s.resellerRepo.FindByID(ctx, cons.ResellerID)
		if err != nil {
			return nil, err
		}
		if res.UserID != in.ActorID {
			return nil, ErrForbidden
		}
	}

	if !cons.IsActive() {
		return nil, consignment.ErrNotActive
	}

	movement := consignment.NewMovement(cons.ID, consignment.MovementSold, in.Note, in.ActorID)

	saleDebt, err := ledger.NewEntry(
		cons.ResellerID,
		in.SaleAmountCents,
		ledger.EntryDebit,
		"Venta de equipo en consignación",
		ledger.ReferenceConsignment,
		cons.ID,
	)
	if err != nil {
		return nil, err
	}

	soldAt := time.Now().UTC()
	if err := s.consignmentRepo.CloseAsSold(ctx, cons.ID, soldAt, movement, saleDebt); err != nil {
		return nil, err
	}

	cons.Status = consignment.StatusSold
	cons.SoldAt = &soldAt
	cons.Movements = append(cons.Movements, movement)

	s.notifier.Audit(ctx, &in.ActorID, "consignment.sold", "consignment", cons.ID, map[string]any{
		"sale_amount_cents": in.SaleAmountCents,
	})
	s.notifier.SystemMessageForReseller(ctx, cons.ResellerID, "Se registró la venta del equipo en consignación")

	return cons, nil
}

// FindByID devuelve una consignación con sus movimientos
func (s *ConsignmentService) FindByID(ctx context.Context, id string) (*consignment.Consignment, error) {
	return s.consignmentRepo.FindByID(ctx, id)
}

// List lista consignaciones; un revendedor solo ve las propias
func (s *ConsignmentService) List(ctx context.Context, actorRole user.Role, actorResellerID string, limit, offset int) ([]*consignment.Consignment, error) {
	if actorRole == user.RoleReseller {
		return s.consignmentRepo.FindByReseller(ctx, actorResellerID, limit, offset)
	}
	return s.consignmentRepo.List(ctx, limit, offset)
}
