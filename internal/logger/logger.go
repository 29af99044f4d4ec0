// Package logger configures the application's structured logging.
//
// It uses *ZeroLog*. The root logger is built once from config and
// handed to the server; request-scoped child loggers are derived from
// it by the middleware package and travel on the request context, so
// any code holding a context.Context can log with request fields via
// zerolog.Ctx(ctx).
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"

	"github.com/deppfellow/validgate/internal/config"
)

// ServiceName tags every log line emitted by this service.
const ServiceName = "validgate"

// New builds the root logger writing to stdout.
func New(cfg *config.Config) zerolog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter builds the root logger writing to w.
//
// Format "console" produces human-friendly output for local work, anything
// else produces JSON lines for log pipelines. Errors wrapped with
// github.com/pkg/errors carry their stack trace when logged with Stack().
func NewWithWriter(cfg *config.Config, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	out := w
	if cfg.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: true}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", ServiceName).
		Str("environment", cfg.Primary.Env).
		Logger()
}
