package cashbox

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound            = errors.New("caja no encontrada")
	ErrEmptyName           = errors.New("el nombre de la caja no puede estar vacío")
	ErrEmptyCurrency       = errors.New("la moneda no puede estar vacía")
	ErrInvalidBoxType      = errors.New("tipo de caja inválido")
	ErrInvalidAmount       = errors.New("el monto debe ser mayor a cero")
	ErrInvalidMovementType = errors.New("tipo de movimiento de caja inválido")
	ErrEmptyDescription    = errors.New("la descripción no puede estar vacía")
)

// BoxType representa el tipo de caja
type BoxType string

const (
	TypeGeneral BoxType = "general"
	TypePetty   BoxType = "petty"
	TypeCrypto  BoxType = "crypto"
)

// MovementType indica si el movimiento suma o resta del saldo de la caja
type MovementType string

const (
	MovementCredit MovementType = "credit" // Ingreso: suma al saldo
	MovementDebit  MovementType = "debit"  // Egreso: resta del saldo
)

// CashBox representa un fondo de dinero con nombre propio. Su saldo se
// deriva plegando sus movimientos, igual que el libro de deuda.
type CashBox struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Currency  string    `json:"currency"`
	Type      BoxType   `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// Movement es una entrada inmutable del registro de una caja
type Movement struct {
	ID            string       `json:"id"`
	CashBoxID     string       `json:"cash_box_id"`
	Type          MovementType `json:"type"`
	AmountCents   int64        `json:"amount_cents"`
	Currency      string       `json:"currency"`
	Description   string       `json:"description"`
	ReferenceType string       `json:"reference_type,omitempty"`
	ReferenceID   string       `json:"reference_id,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}

// NewCashBox crea una nueva caja
func NewCashBox(name, currency string, boxType BoxType) (*CashBox, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if currency == "" {
		return nil, ErrEmptyCurrency
	}

	if boxType != TypeGeneral && boxType != TypePetty && boxType != TypeCrypto {
		return nil, ErrInvalidBoxType
	}

	return &CashBox{
		ID:        uuid.New().String(),
		Name:      name,
		Currency:  currency,
		Type:      boxType,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// NewMovement crea un movimiento de caja validando monto y tipo
func NewMovement(cashBoxID string, movementType MovementType, amountCents int64, currency, description, referenceType, referenceID string) (*Movement, error) {
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}

	if movementType != MovementCredit && movementType != MovementDebit {
		return nil, ErrInvalidMovementType
	}

	if description == "" {
		return nil, ErrEmptyDescription
	}

	return &Movement{
		ID:            uuid.New().String(),
		CashBoxID:     cashBoxID,
		Type:          movementType,
		AmountCents:   amountCents,
		Currency:      currency,
		Description:   description,
		ReferenceType: referenceType,
		ReferenceID:   referenceID,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// Signed devuelve el monto con signo según el tipo de movimiento
func (m *Movement) Signed() int64 {
	if m.Type == MovementCredit {
		return m.AmountCents
	}
	return -m.AmountCents
}

// BalanceCents pliega los movimientos de una caja: créditos suman,
// débitos restan
func BalanceCents(movements []*Movement) int64 {
	var balance int64
	for _, m := range movements {
		balance += m.Signed()
	}
	return balance
}
