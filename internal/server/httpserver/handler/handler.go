// Package handler provides the HTTP request handlers for authcore.
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/nvieira/authcore/internal/core/domain"
	"github.com/nvieira/authcore/internal/core/service"
	"github.com/nvieira/authcore/internal/telemetry/logger"
)

// contextKey is a type for context keys to avoid collisions.
type contextKey string

// userIDKey carries the authenticated user ID set by the session guard.
const userIDKey contextKey = "authcore.user_id"

// WithUserID attaches the authenticated user ID to the context.
func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromContext retrieves the authenticated user ID from context.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// Handler holds the account service and shared response helpers.
type Handler struct {
	accounts *service.AccountService
	log      logger.Logger
}

// New creates a new Handler.
func New(accounts *service.AccountService, log logger.Logger) *Handler {
	if log == nil {
		log = logger.Default()
	}
	return &Handler{
		accounts: accounts,
		log:      log,
	}
}

// writeJSON writes a JSON response body.
func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.WithContext(r.Context()).Error("failed to encode response", "error", err)
	}
}

// writeMessage writes the legacy API's error envelope: a "mensagem"
// field carrying either a string or a list of validation messages.
func (h *Handler) writeMessage(w http.ResponseWriter, r *http.Request, status int, code string, mensagem any) {
	if code != "" {
		w.Header().Set("X-Error-Code", code)
	}
	h.writeJSON(w, r, status, map[string]any{"mensagem": mensagem})
}

// serviceError converts a service error into an HTTP response.
func (h *Handler) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	if domain.IsDomainError(err, "") {
		code := domain.GetErrorCode(err)
		h.writeMessage(w, r, errorCodeToHTTPStatus(code), code, domain.UserMessage(err))
		return
	}

	h.log.WithContext(r.Context()).Error("internal error", "error", err)
	h.writeMessage(w, r, http.StatusInternalServerError,
		domain.ErrInternalServer.Code, domain.ErrInternalServer.Message)
}

// errorCodeToHTTPStatus maps domain error codes to HTTP status codes via
// their numeric suffix family.
func errorCodeToHTTPStatus(code string) int {
	switch {
	case strings.HasSuffix(code, "-4090"):
		return http.StatusConflict
	case strings.HasSuffix(code, "-4040"):
		return http.StatusNotFound
	case strings.HasPrefix(code, "AC-AUTH-401"):
		return http.StatusUnauthorized
	case strings.HasPrefix(code, "AC-AUTH-400"), strings.HasPrefix(code, "AC-ARG-"):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
