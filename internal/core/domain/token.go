// Package domain defines the core domain models for authcore.
package domain

import (
	"crypto/rand"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
)

// InstanceIDPrefix is the prefix for store instance identifiers.
const InstanceIDPrefix = "acst-"

// SessionClaims is the claim set embedded in a session token.
//
// A token is valid only if its signature verifies, it is unexpired, the
// embedded StoreID equals the live store's instance identifier, and the
// embedded UserID resolves to an existing user. The claim set is re-derived
// by cryptographic verification of the token itself; it is never persisted.
type SessionClaims struct {
	jwt.RegisteredClaims

	// StoreID is the instance identifier of the store that was live when
	// the token was issued. A process restart changes the identifier and
	// silently invalidates every previously issued token.
	StoreID string `json:"store_id"`

	// UserID identifies the authenticated user.
	UserID int64 `json:"user_id"`
}

// GenerateInstanceID generates a store instance identifier using ULID.
// Format: acst-{ulid_lowercase}, 31 characters total.
func GenerateInstanceID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", ErrInternalServer.WithCause(err)
	}
	return InstanceIDPrefix + strings.ToLower(id.String()), nil
}

// IsValidInstanceID checks if a string is a valid instance identifier.
func IsValidInstanceID(id string) bool {
	if !strings.HasPrefix(id, InstanceIDPrefix) {
		return false
	}
	if len(id) != len(InstanceIDPrefix)+26 {
		return false
	}
	_, err := ulid.Parse(strings.ToUpper(id[len(InstanceIDPrefix):]))
	return err == nil
}
