package config

import (
	"os"
	"reflect"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("VALIDGATE_PRIMARY_ENV", "staging")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Primary.Env != "staging" {
		t.Errorf("Primary.Env = %q, want %q", cfg.Primary.Env, "staging")
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want default 8080", cfg.Server.Port)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want json", cfg.Logging.Format)
	}
	if cfg.Server.BodyLimit != "1M" {
		t.Errorf("Server.BodyLimit = %q, want default 1M", cfg.Server.BodyLimit)
	}
}

func TestLoadConfigRequiresEnv(t *testing.T) {
	t.Setenv("VALIDGATE_PRIMARY_ENV", "")
	os.Unsetenv("VALIDGATE_PRIMARY_ENV")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("LoadConfig() error = nil, want error for missing VALIDGATE_PRIMARY_ENV")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("VALIDGATE_PRIMARY_ENV", "production")
	t.Setenv("VALIDGATE_SERVER_PORT", "9090")
	t.Setenv("VALIDGATE_SERVER_READ_TIMEOUT", "5")
	t.Setenv("VALIDGATE_SERVER_CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("VALIDGATE_LOGGING_LEVEL", "warn")
	t.Setenv("VALIDGATE_LOGGING_FORMAT", "console")
	t.Setenv("VALIDGATE_SERVER_BODY_LIMIT", "64K")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Server.Port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 5 {
		t.Errorf("Server.ReadTimeout = %d, want 5", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout != 30 {
		t.Errorf("Server.WriteTimeout = %d, want default 30", cfg.Server.WriteTimeout)
	}
	wantOrigins := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.Server.CORSAllowedOrigins, wantOrigins) {
		t.Errorf("CORSAllowedOrigins = %v, want %v", cfg.Server.CORSAllowedOrigins, wantOrigins)
	}
	if cfg.Server.BodyLimit != "64K" {
		t.Errorf("Server.BodyLimit = %q, want 64K", cfg.Server.BodyLimit)
	}
	if cfg.GetLogLevel() != "warn" {
		t.Errorf("GetLogLevel() = %q, want warn", cfg.GetLogLevel())
	}
	if !cfg.IsProduction() {
		t.Errorf("IsProduction() = false, want true")
	}
}

func TestLoadConfigRejectsBadLevel(t *testing.T) {
	t.Setenv("VALIDGATE_PRIMARY_ENV", "development")
	t.Setenv("VALIDGATE_LOGGING_LEVEL", "loud")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("LoadConfig() error = nil, want validation error")
	}
}

func TestGetLogLevelDefaults(t *testing.T) {
	tests := []struct {
		env   string
		level string
		want  string
	}{
		{"production", "", "info"},
		{"development", "", "debug"},
		{"production", "error", "error"},
	}

	for _, tt := range tests {
		cfg := Default()
		cfg.Primary.Env = tt.env
		cfg.Logging.Level = tt.level
		if got := cfg.GetLogLevel(); got != tt.want {
			t.Errorf("GetLogLevel(env=%q, level=%q) = %q, want %q", tt.env, tt.level, got, tt.want)
		}
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"VALIDGATE_SERVER_PORT":                 "server.port",
		"VALIDGATE_SERVER_CORS_ALLOWED_ORIGINS": "server.cors_allowed_origins",
		"VALIDGATE_LOGGING_LEVEL":               "logging.level",
		"VALIDGATE_SERVER_BODY_LIMIT":           "server.body_limit",
	}
	for in, want := range tests {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}
