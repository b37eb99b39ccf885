// Package config defines the server configuration structure.
package config

import "time"

// ServerConfig is the root configuration for authcore-server.
type ServerConfig struct {
	Server   ServerSection   `koanf:"server"`
	Security SecuritySection `koanf:"security"`
	Log      LogSection      `koanf:"log"`
}

// ServerSection configures server endpoints.
type ServerSection struct {
	HTTP HTTPConfig `koanf:"http"`
}

// HTTPConfig configures the HTTP server.
type HTTPConfig struct {
	// Addr is the listen address, host optional (":4000" binds all
	// interfaces).
	Addr string `koanf:"addr"`

	// CORSAllowedOrigins lists allowed CORS origins. Empty allows all,
	// matching the legacy API's permissive CORS setup.
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`

	// RateLimitRPS is the per-IP request rate limit. Zero disables it.
	RateLimitRPS int `koanf:"rate_limit_rps"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// SecuritySection configures credential handling.
type SecuritySection struct {
	// TokenSecret signs session tokens. Required: there is no fallback,
	// a missing value is a startup error.
	TokenSecret string `koanf:"token_secret"`

	// TokenTTL is the session-token lifetime from issuance.
	TokenTTL time.Duration `koanf:"token_ttl"`

	// BcryptCost is the bcrypt work factor for password hashing.
	BcryptCost int `koanf:"bcrypt_cost"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}
