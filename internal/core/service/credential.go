// Package service provides domain services for authcore.
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/nvieira/authcore/internal/core/domain"
)

// Credential defaults.
const (
	// DefaultBcryptCost is the bcrypt work factor for password hashing.
	DefaultBcryptCost = 12

	// DefaultTokenTTL is the session-token lifetime from issuance.
	DefaultTokenTTL = 30 * time.Minute
)

// CredentialService hashes and verifies passwords and issues and verifies
// session tokens. Tokens are HS256-signed JWTs carrying a SessionClaims
// payload scoped to one store instance.
type CredentialService struct {
	secret     []byte
	tokenTTL   time.Duration
	bcryptCost int
}

// CredentialConfig holds configuration for CredentialService.
type CredentialConfig struct {
	// Secret is the token signing secret. Required.
	Secret []byte

	// TokenTTL is the session-token lifetime (default: 30m).
	TokenTTL time.Duration

	// BcryptCost is the bcrypt work factor (default: 12).
	BcryptCost int
}

// NewCredentialService creates a CredentialService. The signing secret is
// validated at startup by config verification; an empty secret here is a
// programming error and panics.
func NewCredentialService(cfg CredentialConfig) *CredentialService {
	if len(cfg.Secret) == 0 {
		panic("service: credential secret must not be empty")
	}
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = DefaultTokenTTL
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = DefaultBcryptCost
	}
	return &CredentialService{
		secret:     cfg.Secret,
		tokenTTL:   cfg.TokenTTL,
		bcryptCost: cfg.BcryptCost,
	}
}

// HashPassword returns the bcrypt hash of the plaintext password.
// The hash embeds its own salt and cost; it is one-way.
func (s *CredentialService) HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), s.bcryptCost)
	if err != nil {
		return "", domain.ErrInternalServer.WithCause(err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the stored hash.
// bcrypt's own comparison is used, so no timing information about the
// hash structure leaks.
func (s *CredentialService) VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// IssueToken signs a claim set {storeID, userID} expiring TokenTTL from now.
func (s *CredentialService) IssueToken(storeID string, userID int64) (string, error) {
	now := time.Now()
	claims := domain.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
		StoreID: storeID,
		UserID:  userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", domain.ErrInternalServer.WithCause(err)
	}
	return signed, nil
}

// VerifyToken cryptographically verifies signature and expiration and
// returns the embedded claims. Failures are reported as one of
// ErrTokenMalformed, ErrTokenExpired, or ErrTokenSignature; the caller
// decides how much of that distinction to surface.
//
// Store-instance and user-existence checks are not performed here: they
// need the live store and belong to the session guard.
func (s *CredentialService) VerifyToken(raw string) (*domain.SessionClaims, error) {
	claims := &domain.SessionClaims{}

	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, domain.ErrTokenExpired.WithCause(err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, domain.ErrTokenSignature.WithCause(err)
	case err != nil:
		return nil, domain.ErrTokenMalformed.WithCause(err)
	case !token.Valid:
		return nil, domain.ErrTokenSignature
	}

	return claims, nil
}

// TokenTTL returns the configured session-token lifetime.
func (s *CredentialService) TokenTTL() time.Duration {
	return s.tokenTTL
}
