package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	entry, err := NewEntry("res-1", 50000, EntryDebit, "Consignación de equipo", ReferenceConsignment, "cons-1")
	require.NoError(t, err)

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "res-1", entry.ResellerID)
	assert.Equal(t, int64(50000), entry.AmountCents)
	assert.Equal(t, EntryDebit, entry.Type)
	assert.Equal(t, ReferenceConsignment, entry.ReferenceType)
	assert.False(t, entry.CreatedAt.IsZero())
}

func TestNewEntryValidation(t *testing.T) {
	tests := []struct {
		name      string
		amount    int64
		entryType EntryType
		reason    string
		wantErr   error
	}{
		{"monto cero", 0, EntryDebit, "ajuste", ErrInvalidAmount},
		{"monto negativo", -100, EntryCredit, "ajuste", ErrInvalidAmount},
		{"tipo desconocido", 100, EntryType("transfer"), "ajuste", ErrInvalidEntryType},
		{"motivo vacío", 100, EntryDebit, "", ErrEmptyReason},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEntry("res-1", tt.amount, tt.entryType, tt.reason, ReferenceManual, "actor-1")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSigned(t *testing.T) {
	debit, err := NewEntry("res-1", 1000, EntryDebit, "deuda", ReferenceManual, "actor-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), debit.Signed())

	credit, err := NewEntry("res-1", 1000, EntryCredit, "pago", ReferenceManual, "actor-1")
	require.NoError(t, err)
	assert.Equal(t, int64(-1000), credit.Signed())
}

func TestBalanceCents(t *testing.T) {
	mustEntry := func(amount int64, entryType EntryType) *Entry {
		e, err := NewEntry("res-1", amount, entryType, "movimiento", ReferenceManual, "actor-1")
		require.NoError(t, err)
		return e
	}

	entries := []*Entry{
		mustEntry(80000, EntryDebit),
		mustEntry(30000, EntryCredit),
		mustEntry(15000, EntryDebit),
	}

	assert.Equal(t, int64(65000), BalanceCents(entries))

	// El orden de los movimientos no altera el saldo
	reversed := []*Entry{entries[2], entries[1], entries[0]}
	assert.Equal(t, BalanceCents(entries), BalanceCents(reversed))
}

func TestBalanceCentsEmpty(t *testing.T) {
	assert.Equal(t, int64(0), BalanceCents(nil))
	assert.Equal(t, int64(0), BalanceCents([]*Entry{}))
}

func TestBalanceCentsOverpaid(t *testing.T) {
	debit, err := NewEntry("res-1", 10000, EntryDebit, "deuda", ReferenceManual, "actor-1")
	require.NoError(t, err)
	credit, err := NewEntry("res-1", 25000, EntryCredit, "pago", ReferenceManual, "actor-1")
	require.NoError(t, err)

	// Saldo negativo: el revendedor pagó de más
	assert.Equal(t, int64(-15000), BalanceCents([]*Entry{debit, credit}))
}
