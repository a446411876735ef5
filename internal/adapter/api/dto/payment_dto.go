package dto

import (
	"time"

	"github.com/movilstock/backoffice/internal/domain/payment"
)

// ReportPaymentRequest representa la petición de informe de pago
type ReportPaymentRequest struct {
	ResellerID  string  `json:"reseller_id"`
	AmountCents int64   `json:"amount_cents" binding:"required"`
	Currency    string  `json:"currency" binding:"required"`
	Note        string  `json:"note"`
	ReceiptKey  string  `json:"receipt_key"`
	CashBoxID   *string `json:"cash_box_id"`
}

// ConfirmPaymentRequest representa la petición de confirmación de pago
type ConfirmPaymentRequest struct {
	CashBoxID *string `json:"cash_box_id"`
}

// PaymentResponse representa la respuesta de pago
type PaymentResponse struct {
	ID           string         `json:"id"`
	ResellerID   string         `json:"reseller_id"`
	AmountCents  int64          `json:"amount_cents"`
	Currency     string         `json:"currency"`
	Note         string         `json:"note,omitempty"`
	ReceiptKey   string         `json:"receipt_key,omitempty"`
	ReportedByID string         `json:"reported_by_id"`
	Status       payment.Status `json:"status"`
	ReviewedByID *string        `json:"reviewed_by_id,omitempty"`
	ReviewedAt   *time.Time     `json:"reviewed_at,omitempty"`
	CashBoxID    *string        `json:"cash_box_id,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// PaymentListResponse representa la respuesta de lista de pagos
type PaymentListResponse struct {
	Items []PaymentResponse `json:"items"`
	Page  int               `json:"page"`
	Size  int               `json:"size"`
}

// ToPaymentResponse convierte un pago de dominio en su respuesta
func ToPaymentResponse(p *payment.Payment) PaymentResponse {
	return PaymentResponse{
		ID:           p.ID,
		ResellerID:   p.ResellerID,
		AmountCents:  p.AmountCents,
		Currency:     p.Currency,
		Note:         p.Note,
		ReceiptKey:   p.ReceiptKey,
		ReportedByID: p.ReportedByID,
		Status:       p.Status,
		ReviewedByID: p.ReviewedByID,
		ReviewedAt:   p.ReviewedAt,
		CashBoxID:    p.CashBoxID,
		CreatedAt:    p.CreatedAt,
	}
}

// ToPaymentListResponse convierte una lista de pagos en su respuesta
func ToPaymentListResponse(payments []*payment.Payment, page, size int) PaymentListResponse {
	items := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		items = append(items, ToPaymentResponse(p))
	}

	return PaymentListResponse{
		Items: items,
		Page:  page,
		Size:  size,
	}
}
