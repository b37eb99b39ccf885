// Package service provides domain services for authcore.
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nvieira/authcore/internal/core/domain"
)

func newTestCredentials(t *testing.T, ttl time.Duration) *CredentialService {
	t.Helper()
	return NewCredentialService(CredentialConfig{
		Secret:   []byte("test-signing-secret"),
		TokenTTL: ttl,
		// MinCost keeps the hashing tests fast.
		BcryptCost: bcrypt.MinCost,
	})
}

func TestNewCredentialServicePanicsWithoutSecret(t *testing.T) {
	assert.Panics(t, func() {
		NewCredentialService(CredentialConfig{})
	})
}

func TestNewCredentialServiceDefaults(t *testing.T) {
	s := NewCredentialService(CredentialConfig{Secret: []byte("x")})
	assert.Equal(t, DefaultTokenTTL, s.TokenTTL())
	assert.Equal(t, DefaultBcryptCost, s.bcryptCost)
}

func TestHashAndVerifyPassword(t *testing.T) {
	s := newTestCredentials(t, time.Minute)

	hash, err := s.HashPassword("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)

	assert.True(t, s.VerifyPassword("secret", hash))
	assert.False(t, s.VerifyPassword("wrong", hash))
	assert.False(t, s.VerifyPassword("secret", "not-a-hash"))
}

func TestHashPasswordSaltsEachCall(t *testing.T) {
	s := newTestCredentials(t, time.Minute)

	a, err := s.HashPassword("secret")
	require.NoError(t, err)
	b, err := s.HashPassword("secret")
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "bcrypt salts must differ per hash")
}

func TestIssueAndVerifyToken(t *testing.T) {
	s := newTestCredentials(t, time.Minute)

	token, err := s.IssueToken("acst-01h2xcejqtf2nbrexx3vqjhp41", 42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := s.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "acst-01h2xcejqtf2nbrexx3vqjhp41", claims.StoreID)
	assert.Equal(t, int64(42), claims.UserID)
}

func TestVerifyTokenExpired(t *testing.T) {
	s := newTestCredentials(t, -time.Minute)

	token, err := s.IssueToken("acst-01h2xcejqtf2nbrexx3vqjhp41", 1)
	require.NoError(t, err)

	_, err = s.VerifyToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	issuer := newTestCredentials(t, time.Minute)
	verifier := NewCredentialService(CredentialConfig{
		Secret:     []byte("a-different-secret"),
		TokenTTL:   time.Minute,
		BcryptCost: bcrypt.MinCost,
	})

	token, err := issuer.IssueToken("acst-01h2xcejqtf2nbrexx3vqjhp41", 1)
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenSignature)
}

func TestVerifyTokenMalformed(t *testing.T) {
	s := newTestCredentials(t, time.Minute)

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := s.VerifyToken(raw)
		assert.ErrorIs(t, err, domain.ErrTokenMalformed, "input %q", raw)
	}
}
