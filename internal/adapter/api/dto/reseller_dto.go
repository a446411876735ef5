package dto

import (
	"time"

	"github.com/movilstock/backoffice/internal/domain/ledger"
	"github.com/movilstock/backoffice/internal/domain/reseller"
)

// ResellerRequest representa la petición de alta de revendedor
type ResellerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Segment  string `json:"segment"`
	Company  string `json:"company"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// ResellerUpdateRequest representa la petición de actualización del perfil
type ResellerUpdateRequest struct {
	Name      string   `json:"name" binding:"required"`
	Segment   string   `json:"segment"`
	Company   string   `json:"company"`
	Phone     string   `json:"phone"`
	Address   string   `json:"address"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// ResellerResponse representa la respuesta de revendedor
type ResellerResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Segment   string    `json:"segment,omitempty"`
	Company   string    `json:"company,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ResellerListResponse representa la respuesta de lista de revendedores
type ResellerListResponse struct {
	Items []ResellerResponse `json:"items"`
	Page  int                `json:"page"`
	Size  int                `json:"size"`
}

// BalanceResponse representa el saldo de deuda de un revendedor
type BalanceResponse struct {
	ResellerID   string `json:"reseller_id"`
	BalanceCents int64  `json:"balance_cents"`
}

// LedgerEntryRequest representa un ajuste manual del libro de deuda
type LedgerEntryRequest struct {
	AmountCents int64  `json:"amount_cents" binding:"required"`
	EntryType   string `json:"entry_type" binding:"required,oneof=debit credit"`
	Reason      string `json:"reason" binding:"required"`
}

// LedgerEntryResponse representa un movimiento del libro de deuda
type LedgerEntryResponse struct {
	ID            string           `json:"id"`
	ResellerID    string           `json:"reseller_id"`
	AmountCents   int64            `json:"amount_cents"`
	EntryType     ledger.EntryType `json:"entry_type"`
	Reason        string           `json:"reason"`
	ReferenceType string           `json:"reference_type,omitempty"`
	ReferenceID   string           `json:"reference_id,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

// ToResellerResponse convierte un revendedor de dominio en su respuesta
func ToResellerResponse(r *reseller.Reseller) ResellerResponse {
	return ResellerResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		Name:      r.Name,
		Segment:   r.Segment,
		Company:   r.Company,
		Phone:     r.Phone,
		Address:   r.Address,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// ToResellerListResponse convierte una lista de revendedores en su respuesta
func ToResellerListResponse(resellers []*reseller.Reseller, page, size int) ResellerListResponse {
	items := make([]ResellerResponse, 0, len(resellers))
	for _, r := range resellers {
		items = append(items, ToResellerResponse(r))
	}

	return ResellerListResponse{
		Items: items,
		Page:  page,
		Size:  size,
	}
}

// ToLedgerEntryResponse convierte un movimiento del libro en su respuesta
func ToLedgerEntryResponse(e *ledger.Entry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:            e.ID,
		ResellerID:    e.ResellerID,
		AmountCents:   e.AmountCents,
		EntryType:     e.Type,
		Reason:        e.Reason,
		ReferenceType: e.ReferenceType,
		ReferenceID:   e.ReferenceID,
		CreatedAt:     e.CreatedAt,
	}
}

// ToLedgerEntryListResponse convierte una lista de movimientos del libro
func ToLedgerEntryListResponse(entries []*ledger.Entry) []LedgerEntryResponse {
	items := make([]LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, ToLedgerEntryResponse(e))
	}
	return items
}
