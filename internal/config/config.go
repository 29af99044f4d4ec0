// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env`
// file when present), loads them into structured Go types and
// validates that required values are present so they can be
// reused across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional values.
package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads `.env` into the process env before
	// anything reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// EnvPrefix is the prefix every config env var carries.
const EnvPrefix = "VALIDGATE_"

/*
	Env vars are mapped to koanf keys by dropping the prefix, lowercasing
	and turning the first "_" into the "." nesting delimiter:

	  VALIDGATE_SERVER_PORT          -> server.port
	  VALIDGATE_SERVER_READ_TIMEOUT  -> server.read_timeout
	  VALIDGATE_SERVER_BODY_LIMIT    -> server.body_limit
	  VALIDGATE_LOGGING_LEVEL        -> logging.level
*/

// Config is the root configuration object for the application.
type Config struct {
	Primary Primary       `koanf:"primary" validate:"required"`
	Server  ServerConfig  `koanf:"server" validate:"required"`
	Logging LoggingConfig `koanf:"logging" validate:"required"`
}

// Primary holds top-level information about the runtime environment.
// Used to tag logs and switch behavior based on env.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`

	// BodyLimit caps request bodies, in echo's size notation ("1M", "512K").
	BodyLimit string `koanf:"body_limit" validate:"required"`
}

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	// Level is the verbosity threshold. Empty picks a default by environment.
	Level string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`

	// Format selects the output format: "json" or "console".
	Format string `koanf:"format" validate:"oneof=json console"`
}

// Default returns the configuration used for anything the environment
// does not set. Primary.Env has no default: VALIDGATE_PRIMARY_ENV must be set.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:               "8080",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
			BodyLimit:          "1M",
		},
		Logging: LoggingConfig{
			Format: "json",
		},
	}
}

// LoadConfig loads configuration from environment variables on top of
// Default, validates it and returns the result.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not load env variables")
	}

	mainConfig := Default()

	// Unmarshal only overwrites keys that are present, so defaults survive.
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal config")
	}

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return mainConfig, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

// envValue maps an env var to its koanf key and splits list values on ",".
func envValue(key, value string) (string, any) {
	k := envKey(key)
	if k == "server.cors_allowed_origins" {
		origins := strings.Split(value, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		return k, origins
	}
	return k, value
}

// GetLogLevel returns the effective log level to use at runtime.
//
// When no level is set, production defaults to "info" and everything
// else to "debug".
func (c *Config) GetLogLevel() string {
	if c.Logging.Level != "" {
		return c.Logging.Level
	}
	if c.IsProduction() {
		return "info"
	}
	return "debug"
}

// IsProduction reports whether the application is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Primary.Env == "production"
}
