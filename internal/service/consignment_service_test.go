package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movilstock/backoffice/internal/domain/consignment"
	"github.com/movilstock/backoffice/internal/domain/device"
	"github.com/movilstock/backoffice/internal/domain/ledger"
	"github.com/movilstock/backoffice/internal/domain/user"
)

func int64Ptr(v int64) *int64 { return &v }

func TestAssign(t *testing.T) {
	env := newTestEnv(t)
	svc := env.consignmentService()
	ctx := context.Background()

	cons, err := svc.Assign(ctx, AssignInput{
		DeviceID:        env.device.ID,
		ResellerID:      env.reseller.ID,
		AssignedByID:    "admin-1",
		Note:            "entrega inicial",
		PaymentMethod:   consignment.MethodConsignacion,
		SalePriceCents:  int64Ptr(80000),
		AmountPaidCents: 30000,
	})
	require.NoError(t, err)

	assert.Equal(t, consignment.StatusActive, cons.Status)
	require.Len(t, cons.Movements, 1)
	assert.Equal(t, consignment.MovementAssigned, cons.Movements[0].MovementType)

	// El equipo pasó a consignado y quedó vinculado al revendedor
	dev, err := env.deviceRepo.FindByID(ctx, env.device.ID)
	require.NoError(t, err)
	assert.Equal(t, device.StateConsigned, dev.State)
	require.NotNil(t, dev.ResellerID)
	assert.Equal(t, env.reseller.ID, *dev.ResellerID)

	// La deuda es el precio menos lo entregado
	balance, err := env.ledgerRepo.BalanceCents(ctx, env.reseller.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), balance)
}

func TestAssignFullyPaidLeavesNoDebt(t *testing.T) {
	env := newTestEnv(t)
	svc := env.consignmentService()
	ctx := context.Background()

	_, err := svc.Assign(ctx, AssignInput{
		DeviceID:        env.device.ID,
		ResellerID:      env.reseller.ID,
		AssignedByID:    "admin-1",
		SalePriceCents:  int64Ptr(80000),
		AmountPaidCents: 80000,
	})
	require.NoError(t, err)

	balance, err := env.ledgerRepo.BalanceCents(ctx, env.reseller.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)

	entries, err := env.ledgerRepo.FindByReseller(ctx, env.reseller.ID, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAssignDeviceNotAvailable(t *testing.T) {
	env := newTestEnv(t)
	svc := env.consignmentService()
	ctx := context.Background()

	require.NoError(t, env.deviceRepo.UpdateState(ctx, env.device.ID, device.StateSold))

	_, err := svc.Assign(ctx, AssignInput{
		DeviceID:     env.device.ID,
		ResellerID:   env.reseller.ID,
		AssignedByID: "admin-1",
	})
	assert.ErrorIs(t, err, consignment.ErrDeviceNotAvailable)
}

func TestAssignAlreadyConsigned(t *testing.T) {
	env := newTestEnv(t)
	svc := env.consignmentService()
	ctx := context.Background()

	_, err := svc.Assign(ctx, AssignInput{
		DeviceID:     env.device.ID,
		ResellerID:   env.reseller.ID,
		AssignedByID: "admin-1",
	})
	require.NoError(t, err)

	_, err = svc.Assign(ctx, AssignInput{
		DeviceID:     env.device.ID,
		ResellerID:   env.reseller.ID,
		AssignedByID: "admin-1",
	})
	assert.ErrorIs(t, err, consignment.ErrDeviceNotAvailable)

	// Aun si el estado del equipo se corrige a mano, la consignación
	// activa sigue bloqueando una segunda entrega
	require.NoError(t, env.deviceRepo.UpdateState(ctx, env.device.ID, device.StateAvailable))

	_, err = svc.Assign(ctx, AssignInput{
		DeviceID:     env.device.ID,
		ResellerID:   env.reseller.ID,
		AssignedByID: "admin-1",
	})
	assert.ErrorIs(t, err, consignment.ErrAlreadyConsigned)
}

func TestAssignValidation(t *testing.T) {
	env := newTestEnv(t)
	svc := env.consignmentService()
	ctx := context.Background()

	_, err := svc.Assign(ctx, AssignInput{
		DeviceID:        env.device.ID,
		ResellerID:      env.reseller.ID,
		AssignedByID:    "admin-1",
		AmountPaidCents: -1,
	})
	assert.ErrorIs(t, err, consignment.ErrInvalidAmountPaid)

	_, err = svc.Assign(ctx, AssignInput{
		DeviceID:       env.device.ID,
		ResellerID:     env.reseller.ID,
		AssignedByID:   "admin-1",
		SalePriceCents: int64Ptr(0),
	})
	assert.ErrorIs(t, err, consignment.ErrInvalidSaleAmount)

	_, err = svc.Assign(ctx, AssignInput{
		DeviceID:     "no-existe",
		ResellerID:   env.reseller.ID,
		AssignedByID: "admin-1",
	})
	assert.ErrorIs(t, err, device.ErrNotFound)
}

func TestMarkSold(t *testing.T) {
	env := newTestEnv(t)
	svc := env.consignmentService()
	ctx := context.Background()

	cons, err := svc.Assign(ctx, AssignInput{
		DeviceID:        env.device.ID,
		ResellerID:      env.reseller.ID,
		AssignedByID:    "admin-1",
		SalePriceCents:  int64Ptr(80000),
		AmountPaidCents: 30000,
	})
	require.NoError(t, err)

	sold, err := svc.MarkSold(ctx, MarkSoldInput{
		ConsignmentID:   cons.ID,
		ActorID:         "admin-1",
		ActorRole:       user.RoleAdmin,
		SaleAmountCents: 90000,
	})
	require.NoError(t, err)

	assert.Equal(t, consignment.StatusSold, sold.Status)
	require.NotNil(t, sold.SoldAt)

	dev, err := env.deviceRepo.FindByID(ctx, env.device.ID)
	require.NoError(t, err)
	assert.Equal(t, device.StateSold, dev.State)

	// El débito de la venta se suma al de la entrega: ambos quedan
	// visibles por separado en el libro
	entries, err := env.ledgerRepo.FindByReseller(ctx, env.reseller.ID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	balance, err := env.ledgerRepo.BalanceCents(ctx, env.reseller.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(140000), balance)
}

func TestMarkSoldByOwnReseller(t *testing.T) {
	env := newTestEnv(t)
	svc := env.consignmentService()
	ctx := context.Background()

	cons, err := svc.Assign(ctx, AssignInput{
		DeviceID:     env.device.ID,
		ResellerID:   env.reseller.ID,
		AssignedByID: "admin-1",
	})
	require.NoError(t, err)

	_, err = svc.MarkSold(ctx, MarkSoldInput{
		ConsignmentID:   cons.ID,
		ActorID:         env.reseller.UserID,
		ActorRole:       user.RoleReseller,
		SaleAmountCents: 50000,
	})
	assert.NoError(t, err)
}

func TestMarkSoldForbiddenForOtherReseller(t *testing.T) {
	env := newTestEnv(t)
	svc := env.consignmentService()
	ctx := context.Background()

	cons, err := svc.Assign(ctx, AssignInput{
		DeviceID:     env.device.ID,
		ResellerID:   env.reseller.ID,
		AssignedByID: "admin-1",
	})
	require.NoError(t, err)

	_, err = svc.MarkSold(ctx, MarkSoldInput{
		ConsignmentID:   cons.ID,
		ActorID:         "otro-usuario",
		ActorRole:       user.RoleReseller,
		SaleAmountCents: 50000,
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestMarkSoldNotActive(t *testing.T) {
	env := newTestEnv(t)
	svc := env.consignmentService()
	ctx := context.Background()

	cons, err := svc.Assign(ctx, AssignInput{
		DeviceID:     env.device.ID,
		ResellerID:   env.reseller.ID,
		AssignedByID: "admin-1",
	})
	require.NoError(t, err)

	_, err = svc.MarkSold(ctx, MarkSoldInput{
		ConsignmentID:   cons.ID,
		ActorID:         "admin-1",
		ActorRole:       user.RoleAdmin,
		SaleAmountCents: 50000,
	})
	require.NoError(t, err)

	_, err = svc.MarkSold(ctx, MarkSoldInput{
		ConsignmentID:   cons.ID,
		ActorID:         "admin-1",
		ActorRole:       user.RoleAdmin,
		SaleAmountCents: 50000,
	})
	assert.ErrorIs(t, err, consignment.ErrNotActive)
}

func TestMarkSoldInvalidAmount(t *testing.T) {
	env := newTestEnv(t)
	svc := env.consignmentService()

	_, err := svc.MarkSold(context.Background(), MarkSoldInput{
		ConsignmentID:   "cualquiera",
		ActorID:         "admin-1",
		ActorRole:       user.RoleAdmin,
		SaleAmountCents: 0,
	})
	assert.ErrorIs(t, err, consignment.ErrInvalidSaleAmount)
}

func TestAssignUsesDeviceCostWhenNoPrice(t *testing.T) {
	env := newTestEnv(t)
	svc := env.consignmentService()
	ctx := context.Background()

	env.device.CostCents = int64Ptr(60000)

	_, err := svc.Assign(ctx, AssignInput{
		DeviceID:        env.device.ID,
		ResellerID:      env.reseller.ID,
		AssignedByID:    "admin-1",
		AmountPaidCents: 10000,
	})
	require.NoError(t, err)

	balance, err := env.ledgerRepo.BalanceCents(ctx, env.reseller.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), balance)
}

func TestLedgerEntryReferencesConsignment(t *testing.T) {
	env := newTestEnv(t)
	svc := env.consignmentService()
	ctx := context.Background()

	cons, err := svc.Assign(ctx, AssignInput{
		DeviceID:        env.device.ID,
		ResellerID:      env.reseller.ID,
		AssignedByID:    "admin-1",
		SalePriceCents:  int64Ptr(80000),
		AmountPaidCents: 0,
	})
	require.NoError(t, err)

	entries, err := env.ledgerRepo.FindByReseller(ctx, env.reseller.ID, 0, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ledger.ReferenceConsignment, entries[0].ReferenceType)
	assert.Equal(t, cons.ID, entries[0].ReferenceID)
}
