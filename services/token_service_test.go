package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewTokenService("test-secret")
	userID := uuid.New().String()

	token, err := svc.GenerateToken(userID, "sana", "customer")
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims["sub"])
	assert.Equal(t, "sana", claims["username"])
	assert.Equal(t, "customer", claims["role"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-one").GenerateToken(uuid.New().String(), "sana", "customer")
	assert.NoError(t, err)

	_, err = NewTokenService("secret-two").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := NewTokenService("test-secret")

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestNewTokenService_EmptySecretPanics(t *testing.T) {
	assert.Panics(t, func() { NewTokenService("") })
}
