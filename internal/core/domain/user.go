// Package domain defines the core domain models for authcore.
package domain

import "time"

// Field constraints enforced at the API boundary.
const (
	MinNameLength = 3
	MaxNameLength = 30

	MinPasswordLength = 6
	MaxPasswordLength = 30

	PhoneNumberDigits   = 9
	PhoneAreaCodeDigits = 2
)

// Phone is a contact phone attached to a user at registration.
type Phone struct {
	Number   string `json:"numero"`
	AreaCode string `json:"ddd"`
}

// User represents a registered account.
//
// The record is owned exclusively by the store and mutated only through
// store operations. PasswordHash is never serialized to clients.
type User struct {
	// ID is a monotonically increasing integer assigned at creation.
	// IDs are never reused within a process lifetime.
	ID int64 `json:"id"`

	Name   string  `json:"nome"`
	Email  string  `json:"email"`
	Phones []Phone `json:"telefones"`

	// PasswordHash is the bcrypt hash of the password. Excluded from
	// JSON on purpose: the profile endpoint must never leak it.
	PasswordHash string `json:"-"`

	// CreatedAt is stamped once at registration.
	CreatedAt time.Time `json:"data_criacao"`

	// UpdatedAt is stamped at registration and on every login.
	UpdatedAt time.Time `json:"data_atualizacao"`

	// LastLogin is zero until the first successful login.
	LastLogin time.Time `json:"-"`

	// Token is the most recently issued session token. Informational
	// only: token verification is cryptographic, not a store lookup.
	Token string `json:"-"`
}

// Metadata is the subset of a user record returned by signup and signin.
// It never includes the password hash.
type Metadata struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	LastLogin time.Time
	Token     string
}

// Metadata returns the metadata subset of the user.
func (u *User) Metadata() *Metadata {
	return &Metadata{
		ID:        u.ID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		LastLogin: u.LastLogin,
		Token:     u.Token,
	}
}

// HasLoggedIn reports whether the user has completed at least one login.
func (u *User) HasLoggedIn() bool {
	return !u.LastLogin.IsZero()
}

// Clone creates a deep copy of the user.
func (u *User) Clone() *User {
	clone := *u
	if u.Phones != nil {
		clone.Phones = make([]Phone, len(u.Phones))
		copy(clone.Phones, u.Phones)
	}
	return &clone
}
