package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound         = errors.New("pago no encontrado")
	ErrInvalidAmount    = errors.New("el monto debe ser mayor a cero")
	ErrEmptyCurrency    = errors.New("la moneda no puede estar vacía")
	ErrAlreadyProcessed = errors.New("el pago ya fue procesado")
)

// Status representa el estado del pago informado.
// reported_pending es el único estado mutable: una vez confirmado o
// rechazado el pago es inmutable, y reintentar la revisión es un error
// (nunca se ignora en silencio, para no acreditar la deuda dos veces).
type Status string

const (
	StatusReportedPending Status = "reported_pending"
	StatusConfirmed       Status = "confirmed"
	StatusRejected        Status = "rejected"
)

// Payment representa un pago informado por un revendedor
type Payment struct {
	ID           string     `json:"id"`
	ResellerID   string     `json:"reseller_id"`
	AmountCents  int64      `json:"amount_cents"`
	Currency     string     `json:"currency"`
	Note         string     `json:"note,omitempty"`
	ReceiptKey   string     `json:"receipt_key,omitempty"`
	ReportedByID string     `json:"reported_by_id"`
	Status       Status     `json:"status"`
	ReviewedByID *string    `json:"reviewed_by_id,omitempty"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
	CashBoxID    *string    `json:"cash_box_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// NewPayment crea un pago en estado reported_pending
func NewPayment(resellerID string, amountCents int64, currency, note, receiptKey, reportedByID string, cashBoxID *string) (*Payment, error) {
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}

	if currency == "" {
		return nil, ErrEmptyCurrency
	}

	return &Payment{
		ID:           uuid.New().String(),
		ResellerID:   resellerID,
		AmountCents:  amountCents,
		Currency:     currency,
		Note:         note,
		ReceiptKey:   receiptKey,
		ReportedByID: reportedByID,
		Status:       StatusReportedPending,
		CashBoxID:    cashBoxID,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// IsPending verifica si el pago sigue pendiente de revisión
func (p *Payment) IsPending() bool {
	return p.Status == StatusReportedPending
}
