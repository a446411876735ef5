package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movilstock/backoffice/internal/domain/reseller"
	"github.com/movilstock/backoffice/internal/domain/user"
)

func TestCreateReseller(t *testing.T) {
	env := newTestEnv(t)
	svc := env.resellerService()
	ctx := context.Background()

	res, err := svc.Create(ctx, CreateResellerInput{
		Name:     "Carlos López",
		Email:    "carlos@ejemplo.com",
		Password: "secreta-123",
		Segment:  "mayorista",
		ActorID:  "admin-1",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "mayorista", res.Segment)

	// La cuenta de usuario se creó con rol de revendedor y hash válido
	u, err := env.userRepo.FindByID(ctx, res.UserID)
	require.NoError(t, err)
	assert.Equal(t, user.RoleReseller, u.Role)
	assert.True(t, u.CheckPassword("secreta-123"))
	assert.False(t, u.CheckPassword("otra"))
}

func TestCreateResellerDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	svc := env.resellerService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateResellerInput{
		Name:     "Carlos López",
		Email:    "carlos@ejemplo.com",
		Password: "secreta-123",
		ActorID:  "admin-1",
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateResellerInput{
		Name:     "Otro Carlos",
		Email:    "carlos@ejemplo.com",
		Password: "secreta-456",
		ActorID:  "admin-1",
	})
	assert.ErrorIs(t, err, user.ErrDuplicateEmail)
}

func TestDeleteReseller(t *testing.T) {
	env := newTestEnv(t)
	svc := env.resellerService()
	ctx := context.Background()

	res, err := svc.Create(ctx, CreateResellerInput{
		Name:     "Carlos López",
		Email:    "carlos@ejemplo.com",
		Password: "secreta-123",
		ActorID:  "admin-1",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, res.ID, "admin-1"))

	_, err = svc.FindByID(ctx, res.ID)
	assert.ErrorIs(t, err, reseller.ErrNotFound)

	// La cuenta de usuario cae junto con el perfil
	_, err = env.userRepo.FindByID(ctx, res.UserID)
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestDeleteResellerNotFound(t *testing.T) {
	env := newTestEnv(t)
	svc := env.resellerService()

	err := svc.Delete(context.Background(), "no-existe", "admin-1")
	assert.ErrorIs(t, err, reseller.ErrNotFound)
}
