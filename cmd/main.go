package main

//
//  @title           oilpulse API
//  @version         1.0
//  @description     SPIMEX oil trading-results ingestion & query service.
//  @contact.name    API Support
//  @contact.url     https://github.com/aguskov/oilpulse
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        results
//  @tag.description Endpoints for querying persisted trading results
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aguskov/oilpulse/config"
	_ "github.com/aguskov/oilpulse/docs" // swagger docs
	"github.com/aguskov/oilpulse/internal/app"
	"github.com/aguskov/oilpulse/internal/ingestion"
	"github.com/aguskov/oilpulse/internal/logger"
)

const dateFlagLayout = "2006-01-02"

// startServer initializes and starts the HTTP server in a separate goroutine.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown terminates the HTTP server and runs the cleanup callback
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// main is the entry point of the oilpulse application.
//
// Modes (selected via --mode flag):
//   - ingest: Backfills daily bulletins from --start through --end.
//   - api:    Starts the REST API over persisted trading results.
//
// With no flags, ingest mode reproduces the full backfill: from the
// configured start date (2023-01-01) through today.
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	mode := flag.String("mode", "ingest", "Mode: ingest or api")
	startFlag := flag.String("start", config.AppConfig.Ingest.StartDate, "First report date to ingest (YYYY-MM-DD)")
	endFlag := flag.String("end", time.Now().Format(dateFlagLayout), "Last report date to ingest (YYYY-MM-DD)")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "ingest":
		start, err := time.Parse(dateFlagLayout, *startFlag)
		if err != nil {
			logger.L().Fatal().Str("start", *startFlag).Err(err).Msg("invalid start date")
		}
		end, err := time.Parse(dateFlagLayout, *endFlag)
		if err != nil {
			logger.L().Fatal().Str("end", *endFlag).Err(err).Msg("invalid end date")
		}

		// Single database handle for the whole run, released on exit.
		db, err := app.InitPostgres(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("db connect error")
		}
		defer func() { _ = db.Close() }()

		loc := ingestion.NewLocator(config.AppConfig.Spimex.BaseURL, config.AppConfig.Spimex.HTTPTimeout)
		if _, err := ingestion.Run(ctx, loc, db, start, end); err != nil {
			logger.L().Fatal().Err(err).Msg("ingestion failed")
		}
		logger.L().Info().Msg("ingestion completed successfully")

	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
