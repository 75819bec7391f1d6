// Package cli provides common CLI initialization utilities shared by the
// wolfstats subcommands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"wolfstats/internal/config"
	applog "wolfstats/internal/log"
)

// SetupLogger builds the application logger at the given level and makes it
// the slog default. Logs go to w, which is stderr outside tests.
func SetupLogger(level string, w io.Writer) (*applog.Logger, error) {
	lvl, err := applog.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if w == nil {
		w = os.Stderr
	}
	logger := applog.New(applog.Config{
		Level:     lvl,
		Component: applog.ComponentApp,
		Output:    w,
	})
	applog.SetDefault(logger)
	return logger, nil
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration from the environment and
// validates it. A non-empty logLevel overrides LOG_LEVEL.
func LoadAndValidateConfig(logLevel string) (*config.Config, error) {
	cfg := config.Load()
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// SignalContext returns a context cancelled on SIGINT or SIGTERM.
func SignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}
