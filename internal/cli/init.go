// Package cli provides common CLI initialization utilities.
// This package consolidates the bootstrap shared by
// cmd/chiavi-check and cmd/chiavi-extract.
package cli

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"chiavi/internal/config"
	"chiavi/internal/log"
)

// SetupLogger initializes structured logging at the given level and sets
// the result as the default logger. Records go to stderr so stdout stays
// reserved for the tools' reports.
func SetupLogger(level slog.Level) *log.Logger {
	logger := log.New(log.Config{Level: level, Component: log.ComponentApp})
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in CI.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
	return cfg
}
