package cashbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCashBox(t *testing.T) {
	box, err := NewCashBox("Caja principal", "ARS", TypeGeneral)
	require.NoError(t, err)

	assert.NotEmpty(t, box.ID)
	assert.Equal(t, "Caja principal", box.Name)
	assert.Equal(t, "ARS", box.Currency)
	assert.Equal(t, TypeGeneral, box.Type)
}

func TestNewCashBoxValidation(t *testing.T) {
	_, err := NewCashBox("", "ARS", TypeGeneral)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewCashBox("Caja", "", TypeGeneral)
	assert.ErrorIs(t, err, ErrEmptyCurrency)

	_, err = NewCashBox("Caja", "ARS", BoxType("banco"))
	assert.ErrorIs(t, err, ErrInvalidBoxType)
}

func TestNewMovementValidation(t *testing.T) {
	_, err := NewMovement("box-1", MovementCredit, 0, "ARS", "ingreso", "", "")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = NewMovement("box-1", MovementType("transfer"), 1000, "ARS", "ingreso", "", "")
	assert.ErrorIs(t, err, ErrInvalidMovementType)

	_, err = NewMovement("box-1", MovementDebit, 1000, "ARS", "", "", "")
	assert.ErrorIs(t, err, ErrEmptyDescription)
}

func TestBalanceCents(t *testing.T) {
	mustMovement := func(movementType MovementType, amount int64) *Movement {
		m, err := NewMovement("box-1", movementType, amount, "ARS", "movimiento", "", "")
		require.NoError(t, err)
		return m
	}

	movements := []*Movement{
		mustMovement(MovementCredit, 100000),
		mustMovement(MovementDebit, 40000),
		mustMovement(MovementCredit, 5000),
	}

	assert.Equal(t, int64(65000), BalanceCents(movements))
	assert.Equal(t, int64(0), BalanceCents(nil))
}
