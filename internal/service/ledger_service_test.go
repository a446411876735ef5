package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movilstock/backoffice/internal/domain/ledger"
	"github.com/movilstock/backoffice/internal/domain/reseller"
)

func TestAddManualEntry(t *testing.T) {
	env := newTestEnv(t)
	svc := env.ledgerService()
	ctx := context.Background()

	entry, err := svc.AddManualEntry(ctx, env.reseller.ID, 15000, ledger.EntryDebit, "ajuste por faltante", "admin-1")
	require.NoError(t, err)

	assert.Equal(t, ledger.ReferenceManual, entry.ReferenceType)
	assert.Equal(t, "admin-1", entry.ReferenceID)

	balance, err := svc.BalanceCents(ctx, env.reseller.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(15000), balance)
}

func TestAddManualEntryUnknownReseller(t *testing.T) {
	env := newTestEnv(t)
	svc := env.ledgerService()

	_, err := svc.AddManualEntry(context.Background(), "no-existe", 15000, ledger.EntryDebit, "ajuste", "admin-1")
	assert.ErrorIs(t, err, reseller.ErrNotFound)
}

func TestAddManualEntryInvalid(t *testing.T) {
	env := newTestEnv(t)
	svc := env.ledgerService()
	ctx := context.Background()

	_, err := svc.AddManualEntry(ctx, env.reseller.ID, -100, ledger.EntryDebit, "ajuste", "admin-1")
	assert.ErrorIs(t, err, ledger.ErrInvalidAmount)

	_, err = svc.AddManualEntry(ctx, env.reseller.ID, 100, ledger.EntryDebit, "", "admin-1")
	assert.ErrorIs(t, err, ledger.ErrEmptyReason)
}

func TestBalanceCentsNoEntries(t *testing.T) {
	env := newTestEnv(t)
	svc := env.ledgerService()

	// Un revendedor sin movimientos tiene saldo cero, no es un error
	balance, err := svc.BalanceCents(context.Background(), env.reseller.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)
}

func TestEntries(t *testing.T) {
	env := newTestEnv(t)
	svc := env.ledgerService()
	ctx := context.Background()

	_, err := svc.AddManualEntry(ctx, env.reseller.ID, 10000, ledger.EntryDebit, "deuda", "admin-1")
	require.NoError(t, err)
	_, err = svc.AddManualEntry(ctx, env.reseller.ID, 4000, ledger.EntryCredit, "pago en mano", "admin-1")
	require.NoError(t, err)

	entries, err := svc.Entries(ctx, env.reseller.ID, 10, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	balance, err := svc.BalanceCents(ctx, env.reseller.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(6000), balance)
}
