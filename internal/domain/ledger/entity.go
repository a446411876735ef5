package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount    = errors.New("el monto debe ser mayor a cero")
	ErrInvalidEntryType = errors.New("tipo de movimiento inválido")
	ErrEmptyReason      = errors.New("el motivo no puede estar vacío")
)

// EntryType indica si el movimiento aumenta o disminuye la deuda
type EntryType string

const (
	EntryDebit  EntryType = "debit"  // Aumenta lo que el revendedor debe
	EntryCredit EntryType = "credit" // Disminuye la deuda (pago recibido)
)

// Tipos de referencia usados para vincular movimientos a su origen
const (
	ReferenceConsignment = "consignment"
	ReferencePayment     = "payment"
	ReferenceManual      = "manual"
)

// Entry representa un movimiento inmutable en el libro de deuda de un
// revendedor. Nunca se actualiza ni se borra en operación normal.
type Entry struct {
	ID            string    `json:"id"`
	ResellerID    string    `json:"reseller_id"`
	AmountCents   int64     `json:"amount_cents"`
	Type          EntryType `json:"entry_type"`
	Reason        string    `json:"reason"`
	ReferenceType string    `json:"reference_type,omitempty"`
	ReferenceID   string    `json:"reference_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewEntry crea un nuevo movimiento validando monto, tipo y motivo
func NewEntry(resellerID string, amountCents int64, entryType EntryType, reason, referenceType, referenceID string) (*Entry, error) {
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}

	if entryType != EntryDebit && entryType != EntryCredit {
		return nil, ErrInvalidEntryType
	}

	if reason == "" {
		return nil, ErrEmptyReason
	}

	return &Entry{
		ID:            uuid.New().String(),
		ResellerID:    resellerID,
		AmountCents:   amountCents,
		Type:          entryType,
		Reason:        reason,
		ReferenceType: referenceType,
		ReferenceID:   referenceID,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// Signed devuelve el monto con signo según el tipo de movimiento
func (e *Entry) Signed() int64 {
	if e.Type == EntryDebit {
		return e.AmountCents
	}
	return -e.AmountCents
}

// BalanceCents calcula el saldo plegando los movimientos: débitos suman,
// créditos restan. El orden de los movimientos no altera el resultado.
// Un saldo negativo significa que el revendedor pagó de más.
func BalanceCents(entries []*Entry) int64 {
	var balance int64
	for _, e := range entries {
		balance += e.Signed()
	}
	return balance
}
