package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tulayan-http-service/config"
	"tulayan-http-service/models"
)

func TestJWTServiceRoundTrip(t *testing.T) {
	svc := NewJWTService(testConfig())

	user := &models.User{
		ID:        42,
		FirstName: "Maria",
		LastName:  "Santos",
		Email:     "maria@tulayan.com",
		RoleID:    models.RoleTenant,
	}

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.ID)
	assert.Equal(t, "Maria", claims.FirstName)
	assert.Equal(t, "Santos", claims.LastName)
	assert.Equal(t, "maria@tulayan.com", claims.Email)
	assert.Equal(t, models.RoleTenant, claims.RoleID)
}

func TestJWTServiceRejectsTamperedToken(t *testing.T) {
	svc := NewJWTService(testConfig())

	token, err := svc.GenerateToken(&models.User{ID: 1, Email: "a@b.com", RoleID: models.RoleTenant})
	require.NoError(t, err)

	_, err = svc.ExtractClaims(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ExtractClaims("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTServiceRejectsForeignSignature(t *testing.T) {
	svc := NewJWTService(testConfig())
	other := NewJWTService(&config.Config{JWTSecretKey: "another-secret"})

	token, err := other.GenerateToken(&models.User{ID: 7, Email: "x@y.com", RoleID: models.RoleAdmin})
	require.NoError(t, err)

	_, err = svc.ExtractClaims(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
