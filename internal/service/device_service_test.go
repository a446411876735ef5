package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movilstock/backoffice/internal/domain/device"
)

func TestCreateDevice(t *testing.T) {
	env := newTestEnv(t)
	svc := env.deviceService()
	ctx := context.Background()

	dev, err := svc.Create(ctx, CreateInput{
		IMEI:      "490154203237518",
		Model:     "Samsung S23",
		Condition: device.ConditionUsed,
		ActorID:   "admin-1",
	})
	require.NoError(t, err)

	assert.Equal(t, device.StateAvailable, dev.State)
	assert.Equal(t, device.ConditionUsed, dev.Condition)
}

func TestCreateDeviceDuplicateIMEI(t *testing.T) {
	env := newTestEnv(t)
	svc := env.deviceService()

	_, err := svc.Create(context.Background(), CreateInput{
		IMEI:      env.device.IMEI,
		Model:     "Otro modelo",
		Condition: device.ConditionSealed,
		ActorID:   "admin-1",
	})
	assert.ErrorIs(t, err, device.ErrDuplicateIMEI)
}

func TestCreateDeviceValidation(t *testing.T) {
	env := newTestEnv(t)
	svc := env.deviceService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{Model: "Modelo", Condition: device.ConditionSealed})
	assert.ErrorIs(t, err, device.ErrEmptyIMEI)

	_, err = svc.Create(ctx, CreateInput{IMEI: "123", Condition: device.ConditionSealed})
	assert.ErrorIs(t, err, device.ErrEmptyModel)

	_, err = svc.Create(ctx, CreateInput{IMEI: "123", Model: "Modelo", Condition: device.Condition("roto")})
	assert.ErrorIs(t, err, device.ErrInvalidCondition)
}

func TestSetState(t *testing.T) {
	env := newTestEnv(t)
	svc := env.deviceService()
	ctx := context.Background()

	dev, err := svc.SetState(ctx, env.device.ID, device.StateReturned, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, device.StateReturned, dev.State)

	stored, err := env.deviceRepo.FindByID(ctx, env.device.ID)
	require.NoError(t, err)
	assert.Equal(t, device.StateReturned, stored.State)
}

func TestSetStateUnknownKey(t *testing.T) {
	env := newTestEnv(t)
	svc := env.deviceService()

	// Un estado fuera del catálogo es un error de validación, nunca se
	// corrige en silencio
	_, err := svc.SetState(context.Background(), env.device.ID, "en_reparacion", "admin-1")
	assert.ErrorIs(t, err, device.ErrUnknownState)
}

func TestSetStateInactiveKey(t *testing.T) {
	env := newTestEnv(t)
	svc := env.deviceService()
	ctx := context.Background()

	st, err := device.NewStatus("en_transito", "En tránsito", "logistica", false, false, 9)
	require.NoError(t, err)
	st.IsActive = false
	require.NoError(t, env.statusRepo.Create(ctx, st))

	_, err = svc.SetState(ctx, env.device.ID, "en_transito", "admin-1")
	assert.ErrorIs(t, err, device.ErrUnknownState)
}

func TestSetStateCatalogKey(t *testing.T) {
	env := newTestEnv(t)
	svc := env.deviceService()
	ctx := context.Background()

	// Las claves nuevas del catálogo son estados válidos sin tocar código
	st, err := device.NewStatus("servicio_tecnico", "Servicio técnico", "taller", false, false, 5)
	require.NoError(t, err)
	require.NoError(t, env.statusRepo.Create(ctx, st))

	dev, err := svc.SetState(ctx, env.device.ID, "servicio_tecnico", "admin-1")
	require.NoError(t, err)
	assert.Equal(t, "servicio_tecnico", dev.State)
}
