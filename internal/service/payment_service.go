package service

import (
	"context"
	"fmt"
	"time"

	"github.com/movilstock/backoffice/internal/domain/cashbox"
	"github.com/movilstock/backoffice/internal/domain/ledger"
	"github.com/movilstock/backoffice/internal/domain/notification"
	"github.com/movilstock/backoffice/internal/domain/payment"
	"github.com/movilstock/backoffice/internal/domain/reseller"
	"github.com/movilstock/backoffice/pkg/logger"
)

// PaymentService maneja la revisión de pagos informados por revendedores.
// reported_pending es el único estado mutable: la confirmación y el
// rechazo se aplican con una actualización condicional, de modo que dos
// revisiones concurrentes del mismo pago no puedan acreditar la deuda dos
// veces.
type PaymentService struct {
	paymentRepo  payment.Repository
	resellerRepo reseller.Repository
	cashBoxRepo  cashbox.Repository
	notifier     *Notifier
	logger       logger.Logger
}

// NewPaymentService crea una nueva instancia de PaymentService
func NewPaymentService(
	paymentRepo payment.Repository,
	resellerRepo reseller.Repository,
	cashBoxRepo cashbox.Repository,
	notifier *Notifier,
	logger logger.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo:  paymentRepo,
		resellerRepo: resellerRepo,
		cashBoxRepo:  cashBoxRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

// ReportInput son los datos de un pago informado
type ReportInput struct {
	ResellerID   string
	AmountCents  int64
	Currency     string
	Note         string
	ReceiptKey   string
	CashBoxID    *string
	ReportedByID string
}

// Report registra un pago en estado reported_pending y avisa a los
// administradores
func (s *PaymentService) Report(ctx context.Context, in ReportInput) (*payment.Payment, error) {
	res, err := s.resellerRepo.FindByID(ctx, in.ResellerID)
	if err != nil {
		return nil, err
	}

	if in.CashBoxID != nil {
		exists, err := s.cashBoxRepo.Exists(ctx, *in.CashBoxID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, cashbox.ErrNotFound
		}
	}

	p, err := payment.NewPayment(in.ResellerID, in.AmountCents, in.Currency, in.Note, in.ReceiptKey, in.ReportedByID, in.CashBoxID)
	if err != nil {
		return nil, err
	}

	if err := s.paymentRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.notifier.Audit(ctx, &in.ReportedByID, "payment.reported", "payment", p.ID, map[string]any{
		"reseller_id":  in.ResellerID,
		"amount_cents": in.AmountCents,
		"currency":     in.Currency,
	})
	s.notifier.NotifyAdmins(ctx, notification.TypePaymentReported,
		fmt.Sprintf("%s informó un pago de %d %s", res.Name, in.AmountCents, in.Currency))
	s.notifier.SystemMessageForReseller(ctx, in.ResellerID, "Tu pago fue informado y está pendiente de confirmación")

	return p, nil
}

// Confirm confirma un pago pendiente: acredita el monto en el libro de
// deuda y, si hay una caja resuelta (la del pedido o la guardada en el
// pago), registra el ingreso en esa caja. Todo dentro de la misma
// transacción que el cambio de estado.
func (s *PaymentService) Confirm(ctx context.Context, paymentID, actorID string, cashBoxID *string) (*payment.Payment, error) {
	p, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	// La caja del pedido tiene prioridad sobre la guardada al informar
	boxID := cashBoxID
	if boxID == nil {
		boxID = p.CashBoxID
	}

	credit, err := ledger.NewEntry(
		p.ResellerID,
		p.AmountCents,
		ledger.EntryCredit,
		"Pago confirmado",
		ledger.ReferencePayment,
		p.ID,
	)
	if err != nil {
		return nil, err
	}

	var boxMovement *cashbox.Movement
	if boxID != nil {
		box, err := s.cashBoxRepo.FindByID(ctx, *boxID)
		if err != nil {
			return nil, err
		}

		boxMovement, err = cashbox.NewMovement(
			box.ID,
			cashbox.MovementCredit,
			p.AmountCents,
			p.Currency,
			fmt.Sprintf("Pago confirmado de revendedor %s", p.ResellerID),
			ledger.ReferencePayment,
			p.ID,
		)
		if err != nil {
			return nil, err
		}
	}

	confirmed, err := s.paymentRepo.Confirm(ctx, p.ID, actorID, time.Now().UTC(), boxID, credit, boxMovement)
	if err != nil {
		return nil, err
	}

	s.notifier.Audit(ctx, &actorID, "payment.confirmed", "payment", p.ID, map[string]any{
		"amount_cents": p.AmountCents,
	})
	s.notifier.SystemMessageForReseller(ctx, p.ResellerID, "Tu pago fue confirmado")
	s.notifyResellerUser(ctx, p.ResellerID, notification.TypePaymentConfirmed, "Tu pago fue confirmado")

	return confirmed, nil
}

// Reject rechaza un pago pendiente sin efectos sobre el libro ni la caja
func (s *PaymentService) Reject(ctx context.Context, paymentID, actorID string) (*payment.Payment, error) {
	p, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	rejected, err := s.paymentRepo.Reject(ctx, p.ID, actorID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.notifier.Audit(ctx, &actorID, "payment.rejected", "payment", p.ID, nil)
	s.notifier.SystemMessageForReseller(ctx, p.ResellerID, "Tu pago fue rechazado")
	s.notifyResellerUser(ctx, p.ResellerID, notification.TypePaymentRejected, "Tu pago fue rechazado")

	return rejected, nil
}

// FindByID devuelve un pago por su ID
func (s *PaymentService) FindByID(ctx context.Context, id string) (*payment.Payment, error) {
	return s.paymentRepo.FindByID(ctx, id)
}

// List lista pagos; un revendedor solo ve los propios
func (s *PaymentService) List(ctx context.Context, actorResellerID string, limit, offset int) ([]*payment.Payment, error) {
	if actorResellerID != "" {
		return s.paymentRepo.FindByReseller(ctx, actorResellerID, limit, offset)
	}
	return s.paymentRepo.List(ctx, limit, offset)
}

// notifyResellerUser resuelve el usuario detrás del revendedor y le crea
// una notificación (mejor esfuerzo)
func (s *PaymentService) notifyResellerUser(ctx context.Context, resellerID, notificationType, body string) {
	res, err := s.resellerRepo.FindByID(ctx, resellerID)
	if err != nil {
		s.logger.Error("error al resolver revendedor para notificar", "reseller_id", resellerID, "error", err)
		return
	}
	s.notifier.NotifyUser(ctx, res.UserID, notificationType, body)
}
