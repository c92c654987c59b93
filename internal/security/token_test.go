package security_test

import (
	"testing"

	"taxibot-backend/internal/security"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key-that-is-long-enough-123"

func TestTokenManager_GenerateAndValidate(t *testing.T) {
	manager := security.NewTokenManager(testSecret)

	token, err := manager.GenerateAdminToken("admin@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, security.TokenTypeAdmin, claims.Type)
	assert.Equal(t, "taxibot-backend", claims.Issuer)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	manager := security.NewTokenManager(testSecret)
	other := security.NewTokenManager("a-completely-different-secret-key-456")

	token, err := manager.GenerateAdminToken("admin@example.com")
	assert.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	manager := security.NewTokenManager(testSecret)

	_, err := manager.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	assert.NoError(t, err)

	assert.NoError(t, security.VerifyPassword(string(hash), "correct horse"))
	assert.ErrorIs(t, security.VerifyPassword(string(hash), "wrong"), security.ErrInvalidCredentials)
	assert.ErrorIs(t, security.VerifyPassword("not-a-hash", "anything"), security.ErrInvalidCredentials)
}
