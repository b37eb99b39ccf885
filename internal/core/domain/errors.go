// Package domain defines the core domain models for authcore.
package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business domain error with a structured error code.
// Codes follow the pattern AC-<AREA>-<NNNN>, where the numeric suffix encodes
// the HTTP status family the error maps to at the API boundary.
type DomainError struct {
	Code    string // Error code (e.g., "AC-USER-4090")
	Message string // User-facing message, preserved verbatim on the wire
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support: two DomainErrors match on Code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks whether the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it is a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// UserMessage returns the user-facing message of a DomainError, or the
// generic internal message for anything else. Handlers use this to build
// the "mensagem" field without leaking internal detail.
func UserMessage(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Message
	}
	return ErrInternalServer.Message
}

// User errors (USER). Messages that reach the client are kept verbatim
// from the legacy API contract, Portuguese included.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = NewDomainError("AC-USER-4040", "user not found")

	// ErrEmailConflict indicates the e-mail is already registered.
	ErrEmailConflict = NewDomainError("AC-USER-4090", "E-mail já existente")
)

// Authentication errors (AUTH).
var (
	// ErrInvalidLogin indicates the login e-mail is unknown.
	// The message is deliberately identical to ErrPasswordMismatch.
	ErrInvalidLogin = NewDomainError("AC-AUTH-4000", "Usuário e/ou senha inválidos")

	// ErrPasswordMismatch indicates the password did not verify.
	ErrPasswordMismatch = NewDomainError("AC-AUTH-4010", "Usuário e/ou senha inválidos")

	// ErrSessionExpired indicates a well-signed token past its expiration.
	// This is the only rejection surfaced with a distinct message.
	ErrSessionExpired = NewDomainError("AC-AUTH-4011", "Sessão inválida")

	// ErrUnauthorized is the generic rejection for every other token failure.
	ErrUnauthorized = NewDomainError("AC-AUTH-4012", "Não autorizado")
)

// Token errors (TOKN). These never reach the client directly: the session
// guard collapses them into ErrUnauthorized or ErrSessionExpired.
var (
	// ErrTokenMalformed indicates the token could not be parsed.
	ErrTokenMalformed = NewDomainError("AC-TOKN-4010", "malformed token")

	// ErrTokenExpired indicates the token is past its expiration.
	ErrTokenExpired = NewDomainError("AC-TOKN-4011", "token expired")

	// ErrTokenSignature indicates the token signature did not verify.
	ErrTokenSignature = NewDomainError("AC-TOKN-4012", "invalid token signature")

	// ErrTokenStale indicates the embedded store instance identifier does
	// not match the live store (process restart invalidation path).
	ErrTokenStale = NewDomainError("AC-TOKN-4013", "stale token")
)

// Argument and system errors (ARG, SYS).
var (
	// ErrValidation indicates the request body failed shape validation.
	ErrValidation = NewDomainError("AC-ARG-4000", "invalid request body")

	// ErrInternalServer indicates an unexpected internal fault.
	ErrInternalServer = NewDomainError("AC-SYS-5000", "Unknown Endpoint / Internal Error")
)
