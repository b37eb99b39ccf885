// Package httpserver provides the HTTP server for authcore.
package httpserver

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/time/rate"

	"github.com/nvieira/authcore/internal/core/domain"
	"github.com/nvieira/authcore/internal/core/service"
	"github.com/nvieira/authcore/internal/server/httpserver/handler"
	"github.com/nvieira/authcore/internal/telemetry/logger"
	"github.com/nvieira/authcore/internal/telemetry/metric"
)

// BearerScheme is the expected Authorization header scheme.
const BearerScheme = "Bearer "

// Middleware wraps an http.Handler with additional functionality.
type Middleware func(http.Handler) http.Handler

// Chain chains multiple middlewares together. The first middleware in the
// list is the outermost.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// RequestID adds a unique request ID to each request and response.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = "req-" + strings.ToLower(ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String())
			}

			w.Header().Set("X-Request-ID", requestID)
			ctx := logger.WithRequestID(r.Context(), requestID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Recover recovers from handler panics and returns the legacy API's
// generic 500 body. Panic details go to the log only.
func Recover(log logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.WithContext(r.Context()).Error("panic recovered",
						"error", err,
						"path", r.URL.Path,
					)

					w.Header().Set("Content-Type", "application/json")
					w.Header().Set("X-Error-Code", domain.ErrInternalServer.Code)
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(map[string]string{
						"mensagem": domain.ErrInternalServer.Message,
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// CORS adds Cross-Origin Resource Sharing headers. An empty origin list
// allows all origins.
func CORS(allowedOrigins []string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			allowed := len(allowedOrigins) == 0
			for _, o := range allowedOrigins {
				if o == "*" || o == origin {
					allowed = true
					break
				}
			}

			if allowed && origin != "" {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
				w.Header().Set("Access-Control-Max-Age", "86400")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimit applies per-IP rate limiting with a shared burst equal to the
// sustained rate.
func RateLimit(requestsPerSecond int) Middleware {
	var mu sync.Mutex
	limiters := make(map[string]*rate.Limiter)

	limiterFor := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		l, ok := limiters[ip]
		if !ok {
			l = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
			limiters[ip] = l
		}
		return l
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiterFor(clientIP(r)).Allow() {
				w.Header().Set("Retry-After", "1")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{
					"mensagem": "Muitas requisições",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AccessLog logs each completed request with its status and duration.
func AccessLog(log logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			l := log.WithContext(r.Context())
			attrs := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", wrapped.statusCode,
				"duration_ms", time.Since(start).Milliseconds(),
				"client_ip", clientIP(r),
			}

			switch {
			case wrapped.statusCode >= 500:
				l.Error("request completed with error", attrs...)
			case wrapped.statusCode >= 400:
				l.Warn("request completed with client error", attrs...)
			default:
				l.Info("request completed", attrs...)
			}
		})
	}
}

// Metrics records request counts and latencies. The route pattern, not the
// raw path, is used as the label to keep cardinality bounded.
func Metrics(reg *metric.Registry) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			path := r.Pattern
			if path == "" {
				path = "unmatched"
			}
			reg.RequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.statusCode)).Inc()
			reg.RequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
		})
	}
}

// SessionAuth is the session guard. It extracts the bearer token,
// delegates validation to the account service, and either attaches the
// authenticated user ID to the request context or rejects with 401.
//
// Every rejection is generic ("Não autorizado") except a well-signed but
// expired token, which gets the distinct "Sessão inválida" message.
func SessionAuth(accounts *service.AccountService, log logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				writeGuardError(w, domain.ErrUnauthorized)
				return
			}

			userID, err := accounts.Authenticate(r.Context(), token)
			if err != nil {
				log.WithContext(r.Context()).Warn("session rejected",
					"code", domain.GetErrorCode(err),
					"client_ip", clientIP(r),
				)
				if errors.Is(err, domain.ErrSessionExpired) {
					writeGuardError(w, domain.ErrSessionExpired)
				} else {
					writeGuardError(w, domain.ErrUnauthorized)
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(handler.WithUserID(r.Context(), userID)))
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. Returns "" when the header is absent or not bearer-shaped.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, BearerScheme) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, BearerScheme))
}

// writeGuardError writes a 401 rejection with the error's exact
// user-facing message.
func writeGuardError(w http.ResponseWriter, err *domain.DomainError) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Error-Code", err.Code)
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"mensagem": err.Message})
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *responseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

// clientIP extracts the client IP from the request, honoring proxy
// headers.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
