// Command server runs the validgate example API.
//
// Startup:
//  1. Load config from VALIDGATE_* env vars (.env autoloaded).
//  2. Build the root zerolog logger.
//  3. Build the server container, handlers and echo router.
//  4. Serve until SIGINT/SIGTERM, then shut down gracefully.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/deppfellow/validgate/internal/config"
	"github.com/deppfellow/validgate/internal/handler"
	"github.com/deppfellow/validgate/internal/logger"
	"github.com/deppfellow/validgate/internal/router"
	"github.com/deppfellow/validgate/internal/server"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		bootLogger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		bootLogger.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(cfg)

	srv := server.New(cfg, &log)
	r := router.NewRouter(srv, handler.NewHandlers(srv))
	srv.SetupHTTPServer(r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
