// Package main provides the entry point for authcore-server.
//
// authcore-server is a minimal authentication API: user registration,
// credential verification, session tokens bound to the live store
// instance, and a token-gated profile endpoint.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/nvieira/authcore/internal/core/service"
	"github.com/nvieira/authcore/internal/infra/buildinfo"
	"github.com/nvieira/authcore/internal/infra/confloader"
	"github.com/nvieira/authcore/internal/infra/shutdown"
	"github.com/nvieira/authcore/internal/server/config"
	"github.com/nvieira/authcore/internal/server/httpserver"
	"github.com/nvieira/authcore/internal/storage/memory"
	"github.com/nvieira/authcore/internal/telemetry/logger"
	"github.com/nvieira/authcore/internal/telemetry/metric"
)

func main() {
	app := &cli.App{
		Name:    "authcore-server",
		Usage:   "authentication API server",
		Version: buildinfo.String(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML configuration file",
				EnvVars: []string{"AUTHCORE_CONFIG"},
			},
		},
		Action: func(c *cli.Context) error {
			return run(c.String("config"))
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile string) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})
	logger.SetDefault(log)

	info := buildinfo.Get()
	log.Info("starting authcore-server",
		"version", info.Version,
		"commit", info.Commit,
		"config", configFile)

	// The store is created once per process; its instance ID scopes every
	// token issued while this process lives.
	store, err := memory.New()
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	log.Info("store initialized", "instance_id", store.InstanceID())

	creds := service.NewCredentialService(service.CredentialConfig{
		Secret:     []byte(cfg.Security.TokenSecret),
		TokenTTL:   cfg.Security.TokenTTL,
		BcryptCost: cfg.Security.BcryptCost,
	})

	metrics := metric.NewRegistry()
	accounts := service.NewAccountService(store, creds, metrics)

	router := httpserver.NewRouter(&httpserver.RouterConfig{
		Accounts:           accounts,
		Logger:             log,
		Metrics:            metrics,
		CORSAllowedOrigins: cfg.Server.HTTP.CORSAllowedOrigins,
		RateLimitRPS:       cfg.Server.HTTP.RateLimitRPS,
	})

	httpServer := httpserver.New(cfg.Server.HTTP.Addr, router)

	shutdownHandler := shutdown.NewHandler(cfg.Server.HTTP.ShutdownTimeout, log)

	if configFile != "" {
		watcher, err := watchLogLevel(configFile, log)
		if err != nil {
			log.Warn("config watcher unavailable", "error", err)
		} else {
			shutdownHandler.OnShutdown("config watcher", func(context.Context) error {
				return watcher.Stop()
			})
		}
	}

	shutdownHandler.OnShutdown("http server", func(ctx context.Context) error {
		return httpServer.Shutdown(ctx)
	})

	go func() {
		log.Info("HTTP server listening", "addr", cfg.Server.HTTP.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", "error", err)
		}
	}()

	if err := shutdownHandler.Wait(); err != nil {
		log.Error("shutdown error", "error", err)
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}

// loadConfig builds the effective configuration: defaults, then the YAML
// file, then AUTHCORE_* environment variables. The bare PORT variable is
// honored for compatibility with legacy deployments, but an explicit
// address from file or environment wins.
func loadConfig(configFile string) (*config.ServerConfig, error) {
	cfg := config.Default()

	opts := []confloader.Option{}
	if configFile != "" {
		opts = append(opts, confloader.WithConfigFile(configFile))
	}

	if err := confloader.NewLoader(opts...).Load(cfg); err != nil {
		return nil, err
	}

	if port := os.Getenv("PORT"); port != "" && cfg.Server.HTTP.Addr == config.DefaultHTTPAddr {
		cfg.Server.HTTP.Addr = ":" + port
	}

	if err := config.Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// watchLogLevel reloads the log level when the configuration file changes.
// Only the level is applied live; everything else needs a restart.
func watchLogLevel(configFile string, log logger.Logger) (*confloader.Watcher, error) {
	watcher, err := confloader.NewWatcher(log)
	if err != nil {
		return nil, err
	}
	if err := watcher.Watch(configFile); err != nil {
		watcher.Stop()
		return nil, err
	}

	watcher.OnChange(func(path string) {
		reloaded := config.Default()
		if err := confloader.NewLoader(confloader.WithConfigFile(configFile)).Load(reloaded); err != nil {
			log.Warn("config reload failed", "error", err)
			return
		}
		if err := config.Verify(reloaded); err != nil {
			log.Warn("reloaded config invalid", "error", err)
			return
		}
		logger.SetLevel(reloaded.Log.Level)
		log.Info("log level applied", "level", reloaded.Log.Level)
	})
	watcher.StartAsync()

	return watcher, nil
}
