// Package httpserver provides the HTTP server for authcore.
package httpserver

import (
	"net/http"

	"github.com/nvieira/authcore/internal/core/service"
	"github.com/nvieira/authcore/internal/server/httpserver/handler"
	"github.com/nvieira/authcore/internal/telemetry/logger"
	"github.com/nvieira/authcore/internal/telemetry/metric"
)

// RouterConfig holds configuration for the HTTP router.
type RouterConfig struct {
	// Accounts handles registration, login, and profile operations.
	Accounts *service.AccountService

	// Logger for request and guard logging.
	Logger logger.Logger

	// Metrics is the Prometheus registry; nil disables /metrics and
	// request metrics.
	Metrics *metric.Registry

	// CORSAllowedOrigins is the list of allowed CORS origins (empty =
	// allow all).
	CORSAllowedOrigins []string

	// RateLimitRPS is the per-IP rate limit (requests/second); zero
	// disables limiting.
	RateLimitRPS int
}

// NewRouter creates and configures the HTTP router with all routes and
// middleware.
func NewRouter(cfg *RouterConfig) http.Handler {
	h := handler.New(cfg.Accounts, cfg.Logger)

	// Outermost first: Recover must wrap everything, rate limiting runs
	// before any handler work.
	base := []Middleware{
		Recover(cfg.Logger),
		RequestID(),
		CORS(cfg.CORSAllowedOrigins),
		AccessLog(cfg.Logger),
	}
	if cfg.Metrics != nil {
		base = append(base, Metrics(cfg.Metrics))
	}
	if cfg.RateLimitRPS > 0 {
		base = append(base, RateLimit(cfg.RateLimitRPS))
	}

	mux := http.NewServeMux()

	// Public endpoints.
	mux.Handle("GET /{$}", Chain(http.HandlerFunc(h.Root), base...))
	mux.Handle("GET /health", Chain(http.HandlerFunc(h.Health), base...))
	mux.Handle("GET /ready", Chain(http.HandlerFunc(h.Ready), base...))
	mux.Handle("POST /signup", Chain(http.HandlerFunc(h.Signup), base...))
	mux.Handle("POST /signin", Chain(http.HandlerFunc(h.Signin), base...))

	if cfg.Metrics != nil {
		mux.Handle("GET /metrics", Chain(cfg.Metrics.Handler(), Recover(cfg.Logger), RequestID()))
	}

	// Token-gated endpoints: the session guard sits inside the base
	// chain so rejections are logged and counted like any response.
	protected := append(append([]Middleware{}, base...), SessionAuth(cfg.Accounts, cfg.Logger))
	mux.Handle("GET /user", Chain(http.HandlerFunc(h.Profile), protected...))

	return mux
}
