package dto

import (
	"time"

	"github.com/movilstock/backoffice/internal/domain/consignment"
)

// AssignRequest representa la petición de entrega en consignación
type AssignRequest struct {
	DeviceID        string                    `json:"device_id" binding:"required"`
	ResellerID      string                    `json:"reseller_id" binding:"required"`
	Note            string                    `json:"note"`
	PaymentMethod   consignment.PaymentMethod `json:"payment_method"`
	SalePriceCents  *int64                    `json:"sale_price_cents"`
	AmountPaidCents int64                     `json:"amount_paid_cents"`
}

// MarkSoldRequest representa la petición de cierre de venta
type MarkSoldRequest struct {
	SaleAmountCents int64  `json:"sale_amount_cents" binding:"required"`
	Note            string `json:"note"`
}

// ConsignmentMovementResponse representa un movimiento del historial
type ConsignmentMovementResponse struct {
	ID           string                   `json:"id"`
	MovementType consignment.MovementType `json:"movement_type"`
	Note         string                   `json:"note,omitempty"`
	CreatedByID  string                   `json:"created_by_id"`
	CreatedAt    time.Time                `json:"created_at"`
}

// ConsignmentResponse representa la respuesta de consignación
type ConsignmentResponse struct {
	ID             string                        `json:"id"`
	DeviceID       string                        `json:"device_id"`
	ResellerID     string                        `json:"reseller_id"`
	AssignedByID   string                        `json:"assigned_by_id"`
	Status         consignment.Status            `json:"status"`
	PaymentMethod  consignment.PaymentMethod     `json:"payment_method"`
	SalePriceCents *int64                        `json:"sale_price_cents,omitempty"`
	AssignedAt     time.Time                     `json:"assigned_at"`
	SoldAt         *time.Time                    `json:"sold_at,omitempty"`
	Movements      []ConsignmentMovementResponse `json:"movements,omitempty"`
}

// ConsignmentListResponse representa la respuesta de lista de consignaciones
type ConsignmentListResponse struct {
	Items []ConsignmentResponse `json:"items"`
	Page  int                   `json:"page"`
	Size  int                   `json:"size"`
}

// ToConsignmentResponse convierte una consignación de dominio en su respuesta
func ToConsignmentResponse(c *consignment.Consignment) ConsignmentResponse {
	movements := make([]ConsignmentMovementResponse, 0, len(c.Movements))
	for _, m := range c.Movements {
		movements = append(movements, ConsignmentMovementResponse{
			ID:           m.ID,
			MovementType: m.MovementType,
			Note:         m.Note,
			CreatedByID:  m.CreatedByID,
			CreatedAt:    m.CreatedAt,
		})
	}

	return ConsignmentResponse{
		ID:             c.ID,
		DeviceID:       c.DeviceID,
		ResellerID:     c.ResellerID,
		AssignedByID:   c.AssignedByID,
		Status:         c.Status,
		PaymentMethod:  c.PaymentMethod,
		SalePriceCents: c.SalePriceCents,
		AssignedAt:     c.AssignedAt,
		SoldAt:         c.SoldAt,
		Movements:      movements,
	}
}

// ToConsignmentListResponse convierte una lista de consignaciones
func ToConsignmentListResponse(consignments []*consignment.Consignment, page, size int) ConsignmentListResponse {
	items := make([]ConsignmentResponse, 0, len(consignments))
	for _, c := range consignments {
		items = append(items, ToConsignmentResponse(c))
	}

	return ConsignmentListResponse{
		Items: items,
		Page:  page,
		Size:  size,
	}
}
