// Package service provides domain services for authcore.
package service

import (
	"context"
	"errors"

	"github.com/nvieira/authcore/internal/core/domain"
	"github.com/nvieira/authcore/internal/telemetry/metric"
)

// UserRepository defines the storage interface for account operations.
type UserRepository interface {
	// InstanceID returns the identifier of the live store instance.
	InstanceID() string

	// Create appends a new user record, assigning its identifier and
	// timestamps. Returns ErrEmailConflict on a duplicate e-mail.
	Create(ctx context.Context, user *domain.User) (*domain.Metadata, error)

	// FindByID retrieves a user by identifier.
	FindByID(ctx context.Context, id int64) (*domain.User, error)

	// FindByEmail retrieves a user by e-mail.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// UpdateLogin records a successful login on the matching record.
	UpdateLogin(ctx context.Context, id int64, token string) (*domain.Metadata, error)
}

// AccountService handles registration, login, token-based authentication,
// and profile retrieval.
type AccountService struct {
	repo    UserRepository
	creds   *CredentialService
	metrics *metric.Registry
}

// NewAccountService creates an AccountService. The metrics registry may be
// nil, in which case no metrics are recorded.
func NewAccountService(repo UserRepository, creds *CredentialService, metrics *metric.Registry) *AccountService {
	return &AccountService{
		repo:    repo,
		creds:   creds,
		metrics: metrics,
	}
}

// RegisterRequest contains parameters for Register. The fields are assumed
// shape-valid: request validation happens at the API boundary.
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
	Phones   []domain.Phone
}

// Register creates a new account. The duplicate check runs before the
// (expensive) password hash so a conflicting signup fails fast; the store
// re-checks uniqueness atomically on insert.
func (s *AccountService) Register(ctx context.Context, req *RegisterRequest) (*domain.Metadata, error) {
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, domain.ErrEmailConflict
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.creds.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	meta, err := s.repo.Create(ctx, &domain.User{
		Name:         req.Name,
		Email:        req.Email,
		Phones:       req.Phones,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.UsersRegistered.Inc()
	}
	return meta, nil
}

// Login verifies the credentials and, on success, issues a session token
// scoped to the live store instance and records it on the user.
//
// An unknown e-mail and a wrong password carry the same user-facing
// message but distinct codes, because the legacy API reports them with
// different statuses.
func (s *AccountService) Login(ctx context.Context, email, password string) (*domain.Metadata, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.countLogin("unknown_user")
			return nil, domain.ErrInvalidLogin
		}
		return nil, err
	}

	if !s.creds.VerifyPassword(password, user.PasswordHash) {
		s.countLogin("bad_password")
		return nil, domain.ErrPasswordMismatch
	}

	token, err := s.creds.IssueToken(s.repo.InstanceID(), user.ID)
	if err != nil {
		return nil, err
	}

	meta, err := s.repo.UpdateLogin(ctx, user.ID, token)
	if err != nil {
		return nil, err
	}

	s.countLogin("success")
	return meta, nil
}

// Authenticate resolves a bearer token to a user identifier, applying the
// full validity rule: signature, expiration, live store instance, and user
// existence. Every failure except expiration collapses into
// ErrUnauthorized; expiration maps to ErrSessionExpired so the client
// knows to re-authenticate rather than retry. Read-only.
func (s *AccountService) Authenticate(ctx context.Context, token string) (int64, error) {
	claims, err := s.creds.VerifyToken(token)
	if err != nil {
		if errors.Is(err, domain.ErrTokenExpired) {
			return 0, domain.ErrSessionExpired.WithCause(err)
		}
		return 0, domain.ErrUnauthorized.WithCause(err)
	}

	if claims.StoreID != s.repo.InstanceID() {
		return 0, domain.ErrUnauthorized.WithCause(domain.ErrTokenStale)
	}

	if _, err := s.repo.FindByID(ctx, claims.UserID); err != nil {
		return 0, domain.ErrUnauthorized.WithCause(err)
	}

	return claims.UserID, nil
}

// Profile returns the full user record for an authenticated identifier.
// The password hash stays internal: it is excluded from serialization.
func (s *AccountService) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthorized.WithCause(err)
		}
		return nil, err
	}
	return user, nil
}

func (s *AccountService) countLogin(result string) {
	if s.metrics != nil {
		s.metrics.LoginsTotal.WithLabelValues(result).Inc()
	}
}
