package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUser = AuthUser{ID: "user-1", Email: "jo@example.com", Name: "Jo"}

func TestGenerateAndVerifyToken(t *testing.T) {
	manager := NewJWTManager("test-secret")

	token, err := manager.GenerateToken(testUser)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	verified, err := manager.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, testUser.ID, verified.ID)
	assert.Equal(t, testUser.Email, verified.Email)
	assert.Equal(t, testUser.Name, verified.Name)
}

func TestVerifyToken_StillValidBeforeExpiry(t *testing.T) {
	manager := NewJWTManager("test-secret")

	// Six days of remaining lifetime stands in for "verification one day
	// after issuance" of a seven-day token.
	token, err := manager.generateTokenWithDuration(testUser, 6*24*time.Hour)
	require.NoError(t, err)

	_, err = manager.VerifyToken(token)
	assert.NoError(t, err)
}

func TestVerifyToken_Expired(t *testing.T) {
	manager := NewJWTManager("test-secret")

	token, err := manager.generateTokenWithDuration(testUser, -time.Hour)
	require.NoError(t, err)

	_, err = manager.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken, "an expired token must be plain invalid, not a distinct failure")
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-a").GenerateToken(testUser)
	require.NoError(t, err)

	_, err = NewJWTManager("secret-b").VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_Malformed(t *testing.T) {
	manager := NewJWTManager("test-secret")

	for _, garbage := range []string{"", "not-a-jwt", "aaa.bbb.ccc"} {
		_, err := manager.VerifyToken(garbage)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestVerifyToken_Tampered(t *testing.T) {
	manager := NewJWTManager("test-secret")

	token, err := manager.GenerateToken(testUser)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = manager.VerifyToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
