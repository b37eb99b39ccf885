// Package config defines the server configuration structure.
package config

import "time"

// Default configuration values.
const (
	DefaultHTTPAddr        = ":4000"
	DefaultRateLimitRPS    = 100
	DefaultShutdownTimeout = 30 * time.Second

	DefaultTokenTTL   = 30 * time.Minute
	DefaultBcryptCost = 12

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Default returns the default server configuration. The token secret has
// no default on purpose.
func Default() *ServerConfig {
	return &ServerConfig{
		Server: ServerSection{
			HTTP: HTTPConfig{
				Addr:            DefaultHTTPAddr,
				RateLimitRPS:    DefaultRateLimitRPS,
				ShutdownTimeout: DefaultShutdownTimeout,
			},
		},
		Security: SecuritySection{
			TokenTTL:   DefaultTokenTTL,
			BcryptCost: DefaultBcryptCost,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
