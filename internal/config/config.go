package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/text/language"

	"chiavi/internal/catalog"
)

type Config struct {
	// Source tree to scan
	SourceDir string

	// Translation catalogs
	LocalesDir string
	Locale     string

	// Extractor report
	ReportPath string

	// Fallback namespace for keys without an explicit one
	DefaultNamespace string

	// Logging
	LogLevel string
}

func Load() *Config {
	cfg := &Config{
		SourceDir:        getEnv("CHIAVI_SOURCE_DIR", "src"),
		LocalesDir:       getEnv("CHIAVI_LOCALES_DIR", "public/locales"),
		Locale:           getEnv("CHIAVI_LOCALE", "en"),
		ReportPath:       getEnv("CHIAVI_REPORT_PATH", "i18n-report.json"),
		DefaultNamespace: getEnv("CHIAVI_DEFAULT_NAMESPACE", string(catalog.Common)),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if c.SourceDir == "" {
		errors = append(errors, "source directory cannot be empty")
	}
	if c.LocalesDir == "" {
		errors = append(errors, "locales directory cannot be empty")
	}

	if c.Locale == "" {
		errors = append(errors, "locale cannot be empty")
	} else if _, err := language.Parse(c.Locale); err != nil {
		errors = append(errors, fmt.Sprintf("invalid locale '%s': %v", c.Locale, err))
	}

	if !catalog.Known(c.DefaultNamespace) {
		errors = append(errors, fmt.Sprintf("invalid default namespace '%s': must be one of %v", c.DefaultNamespace, catalog.All()))
	}

	if c.ReportPath == "" {
		errors = append(errors, "report path cannot be empty")
	}

	if _, err := c.SlogLevel(); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// SlogLevel maps the configured log level onto slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", c.LogLevel)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
