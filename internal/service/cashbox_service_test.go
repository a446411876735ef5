package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movilstock/backoffice/internal/domain/cashbox"
)

func TestCashBoxCreateAndBalance(t *testing.T) {
	env := newTestEnv(t)
	svc := env.cashBoxService()
	ctx := context.Background()

	box, err := svc.Create(ctx, "Caja chica", "ARS", cashbox.TypePetty, "admin-1")
	require.NoError(t, err)

	balance, err := svc.BalanceCents(ctx, box.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)

	_, err = svc.AddMovement(ctx, box.ID, cashbox.MovementCredit, 100000, "fondo inicial", "admin-1")
	require.NoError(t, err)
	_, err = svc.AddMovement(ctx, box.ID, cashbox.MovementDebit, 35000, "compra de insumos", "admin-1")
	require.NoError(t, err)

	balance, err = svc.BalanceCents(ctx, box.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(65000), balance)

	movements, err := svc.Movements(ctx, box.ID, 10, 0)
	require.NoError(t, err)
	assert.Len(t, movements, 2)
}

func TestCashBoxMovementCurrencyFromBox(t *testing.T) {
	env := newTestEnv(t)
	svc := env.cashBoxService()
	ctx := context.Background()

	box, err := svc.Create(ctx, "Caja cripto", "USDT", cashbox.TypeCrypto, "admin-1")
	require.NoError(t, err)

	movement, err := svc.AddMovement(ctx, box.ID, cashbox.MovementCredit, 5000, "ingreso", "admin-1")
	require.NoError(t, err)
	assert.Equal(t, "USDT", movement.Currency)
}

func TestCashBoxAddMovementValidation(t *testing.T) {
	env := newTestEnv(t)
	svc := env.cashBoxService()
	ctx := context.Background()

	box, err := svc.Create(ctx, "Caja", "ARS", cashbox.TypeGeneral, "admin-1")
	require.NoError(t, err)

	_, err = svc.AddMovement(ctx, box.ID, cashbox.MovementCredit, 0, "ingreso", "admin-1")
	assert.ErrorIs(t, err, cashbox.ErrInvalidAmount)

	_, err = svc.AddMovement(ctx, "no-existe", cashbox.MovementCredit, 1000, "ingreso", "admin-1")
	assert.ErrorIs(t, err, cashbox.ErrNotFound)
}
