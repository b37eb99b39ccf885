// Package config defines the server configuration structure.
package config

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Verify validates the configuration. A failure here is fatal at startup.
func Verify(cfg *ServerConfig) error {
	if err := verifyServer(&cfg.Server); err != nil {
		return err
	}
	if err := verifySecurity(&cfg.Security); err != nil {
		return err
	}
	return verifyLog(&cfg.Log)
}

func verifyServer(cfg *ServerSection) error {
	if cfg.HTTP.Addr == "" {
		return errors.New("server.http.addr is required")
	}
	if cfg.HTTP.RateLimitRPS < 0 {
		return errors.New("server.http.rate_limit_rps must not be negative")
	}
	if cfg.HTTP.ShutdownTimeout <= 0 {
		return errors.New("server.http.shutdown_timeout must be positive")
	}
	return nil
}

func verifySecurity(cfg *SecuritySection) error {
	// No silent fallback for the signing secret: a process started
	// without one must not issue tokens at all.
	if cfg.TokenSecret == "" {
		return errors.New("security.token_secret is required")
	}
	if cfg.TokenTTL <= 0 {
		return errors.New("security.token_ttl must be positive")
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("security.bcrypt_cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}

func verifyLog(cfg *LogSection) error {
	switch cfg.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level %q is not a valid level", cfg.Level)
	}
	switch cfg.Format {
	case "json", "text", "console":
	default:
		return fmt.Errorf("log.format %q is not a valid format", cfg.Format)
	}
	return nil
}
