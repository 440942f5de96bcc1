package auth

import (
	"testing"
	"time"

	"canteen/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, secret string) *jwtService {
	t.Helper()

	svc, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{
		TokenSecret: secret,
		TokenTTL:    time.Hour,
	}})
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := newTestJWTService(t, "test_secret_key_very_long_for_testing")

	token, expiresAt, err := svc.Issue("uid-1", "ana@example.com", "3")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", claims.Subject)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "3", claims.ID)
	assert.False(t, claims.EmailVerified)
	assert.Equal(t, tokenIssuer, claims.Issuer)
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc := newTestJWTService(t, "test_secret_key_very_long_for_testing")

	claims, err := svc.Validate("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer := newTestJWTService(t, "first_secret_key_very_long_for_testing")
	verifier := newTestJWTService(t, "other_secret_key_very_long_for_testing")

	token, _, err := issuer.Issue("uid-1", "ana@example.com", "0")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestJWTService_Expired(t *testing.T) {
	svc := newTestJWTService(t, "test_secret_key_very_long_for_testing")
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, _, err := svc.Issue("uid-1", "ana@example.com", "0")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.Validate(token)
	assert.Error(t, err)
}
