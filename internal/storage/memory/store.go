// Package memory provides the in-memory user store for authcore.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/nvieira/authcore/internal/core/domain"
)

// Store holds user records in insertion order plus the per-process
// instance identifier that scopes every issued session token.
//
// All mutating operations take the write lock; the uniqueness check and
// the insert happen under the same critical section so concurrent signups
// with the same e-mail cannot both succeed.
type Store struct {
	mu         sync.RWMutex
	instanceID string
	nextID     int64
	users      []*domain.User
}

// New creates a new store with a freshly generated instance identifier.
func New() (*Store, error) {
	id, err := domain.GenerateInstanceID()
	if err != nil {
		return nil, err
	}
	return &Store{
		instanceID: id,
		nextID:     1,
	}, nil
}

// InstanceID returns the store's instance identifier. It is constant for
// the lifetime of the store.
func (s *Store) InstanceID() string {
	return s.instanceID
}

// Create assigns the next identifier, stamps both timestamps, and appends
// the record. LastLogin and Token start empty. Returns ErrEmailConflict
// if the e-mail is already registered.
//
// The caller's copy of the user is not retained.
func (s *Store) Create(_ context.Context, user *domain.User) (*domain.Metadata, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailConflict
		}
	}

	now := time.Now()
	record := user.Clone()
	record.ID = s.nextID
	record.CreatedAt = now
	record.UpdatedAt = now
	record.LastLogin = time.Time{}
	record.Token = ""

	s.users = append(s.users, record)
	s.nextID++

	return record.Metadata(), nil
}

// FindByID returns a copy of the user with the given identifier, or
// ErrUserNotFound. The scan follows insertion order.
func (s *Store) FindByID(_ context.Context, id int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u.Clone(), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// FindByEmail returns a copy of the user with the given e-mail, or
// ErrUserNotFound.
func (s *Store) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u.Clone(), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// UpdateLogin records a successful login: it sets the current token and
// stamps LastLogin and UpdatedAt. Returns ErrUserNotFound if the
// identifier does not resolve, rather than silently doing nothing.
func (s *Store) UpdateLogin(_ context.Context, id int64, token string) (*domain.Metadata, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			now := time.Now()
			u.Token = token
			u.LastLogin = now
			u.UpdatedAt = now
			return u.Metadata(), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// Len returns the number of stored users.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
