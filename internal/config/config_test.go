package config

import (
	"log/slog"
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid default-ish config",
			config: Config{
				SourceDir:        "src",
				LocalesDir:       "public/locales",
				Locale:           "en",
				ReportPath:       "i18n-report.json",
				DefaultNamespace: "common",
				LogLevel:         "info",
			},
			wantErr: false,
		},
		{
			name: "valid regional locale",
			config: Config{
				SourceDir:        "src",
				LocalesDir:       "public/locales",
				Locale:           "pt-BR",
				ReportPath:       "out.json",
				DefaultNamespace: "finance",
				LogLevel:         "debug",
			},
			wantErr: false,
		},
		{
			name: "empty source directory",
			config: Config{
				SourceDir:        "",
				LocalesDir:       "public/locales",
				Locale:           "en",
				ReportPath:       "out.json",
				DefaultNamespace: "common",
				LogLevel:         "info",
			},
			wantErr:     true,
			errorString: "source directory cannot be empty",
		},
		{
			name: "empty locales directory",
			config: Config{
				SourceDir:        "src",
				LocalesDir:       "",
				Locale:           "en",
				ReportPath:       "out.json",
				DefaultNamespace: "common",
				LogLevel:         "info",
			},
			wantErr:     true,
			errorString: "locales directory cannot be empty",
		},
		{
			name: "invalid locale tag",
			config: Config{
				SourceDir:        "src",
				LocalesDir:       "public/locales",
				Locale:           "not a locale",
				ReportPath:       "out.json",
				DefaultNamespace: "common",
				LogLevel:         "info",
			},
			wantErr:     true,
			errorString: "invalid locale 'not a locale'",
		},
		{
			name: "unknown default namespace",
			config: Config{
				SourceDir:        "src",
				LocalesDir:       "public/locales",
				Locale:           "en",
				ReportPath:       "out.json",
				DefaultNamespace: "marketing",
				LogLevel:         "info",
			},
			wantErr:     true,
			errorString: "invalid default namespace 'marketing'",
		},
		{
			name: "empty report path",
			config: Config{
				SourceDir:        "src",
				LocalesDir:       "public/locales",
				Locale:           "en",
				ReportPath:       "",
				DefaultNamespace: "common",
				LogLevel:         "info",
			},
			wantErr:     true,
			errorString: "report path cannot be empty",
		},
		{
			name: "invalid log level",
			config: Config{
				SourceDir:        "src",
				LocalesDir:       "public/locales",
				Locale:           "en",
				ReportPath:       "out.json",
				DefaultNamespace: "common",
				LogLevel:         "loud",
			},
			wantErr:     true,
			errorString: "invalid log level 'loud'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Validate() expected error containing %q, got nil", tt.errorString)
				}
				if !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("Validate() error = %v, want substring %q", err, tt.errorString)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_SlogLevel(t *testing.T) {
	tests := []struct {
		level   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"ERROR", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run("level_"+tt.level, func(t *testing.T) {
			cfg := Config{LogLevel: tt.level}
			got, err := cfg.SlogLevel()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("SlogLevel(%q) expected error, got nil", tt.level)
				}
				return
			}
			if err != nil {
				t.Fatalf("SlogLevel(%q) unexpected error: %v", tt.level, err)
			}
			if got != tt.want {
				t.Errorf("SlogLevel(%q) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"CHIAVI_SOURCE_DIR", "CHIAVI_LOCALES_DIR", "CHIAVI_LOCALE",
		"CHIAVI_REPORT_PATH", "CHIAVI_DEFAULT_NAMESPACE", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.SourceDir != "src" {
		t.Errorf("SourceDir = %q, want %q", cfg.SourceDir, "src")
	}
	if cfg.LocalesDir != "public/locales" {
		t.Errorf("LocalesDir = %q, want %q", cfg.LocalesDir, "public/locales")
	}
	if cfg.Locale != "en" {
		t.Errorf("Locale = %q, want %q", cfg.Locale, "en")
	}
	if cfg.DefaultNamespace != "common" {
		t.Errorf("DefaultNamespace = %q, want %q", cfg.DefaultNamespace, "common")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CHIAVI_SOURCE_DIR", "frontend/src")
	t.Setenv("CHIAVI_LOCALE", "it")
	t.Setenv("CHIAVI_DEFAULT_NAMESPACE", "finance")

	cfg := Load()
	if cfg.SourceDir != "frontend/src" {
		t.Errorf("SourceDir = %q, want %q", cfg.SourceDir, "frontend/src")
	}
	if cfg.Locale != "it" {
		t.Errorf("Locale = %q, want %q", cfg.Locale, "it")
	}
	if cfg.DefaultNamespace != "finance" {
		t.Errorf("DefaultNamespace = %q, want %q", cfg.DefaultNamespace, "finance")
	}
}
