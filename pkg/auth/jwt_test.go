package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movilstock/backoffice/internal/domain/user"
)

func newTestService(t *testing.T) *JWTService {
	t.Setenv("JWT_SECRET_KEY", "clave-de-prueba")
	svc, err := NewJWTService()
	require.NoError(t, err)
	return svc
}

func TestNewJWTServiceWithoutKey(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")
	_, err := NewJWTService()
	assert.ErrorIs(t, err, ErrMissingJWTKey)
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(t)

	u, err := user.NewUser("Ana García", "ana@movilstock.com", user.RoleReseller)
	require.NoError(t, err)

	token, err := svc.GenerateToken(u, "res-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, u.Email, claims.Email)
	assert.Equal(t, string(user.RoleReseller), claims.Role)
	assert.Equal(t, "res-1", claims.ResellerID)
}

func TestValidateTokenInvalid(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ValidateToken("no-es-un-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenWrongKey(t *testing.T) {
	svc := newTestService(t)

	u, err := user.NewUser("Ana García", "ana@movilstock.com", user.RoleAdmin)
	require.NoError(t, err)

	token, err := svc.GenerateToken(u, "")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET_KEY", "otra-clave")
	other, err := NewJWTService()
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshToken(t *testing.T) {
	svc := newTestService(t)

	u, err := user.NewUser("Ana García", "ana@movilstock.com", user.RoleAdmin)
	require.NoError(t, err)

	token, err := svc.GenerateToken(u, "")
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(token)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(refreshed)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
}
