package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ranaashutosh2923/hrrone-ecommerce-backend/internal/app"
	"github.com/ranaashutosh2923/hrrone-ecommerce-backend/internal/clock"
	"github.com/ranaashutosh2923/hrrone-ecommerce-backend/internal/config"
	"github.com/ranaashutosh2923/hrrone-ecommerce-backend/internal/metrics"
	"github.com/ranaashutosh2923/hrrone-ecommerce-backend/internal/storage/mongodb"
	transporthttp "github.com/ranaashutosh2923/hrrone-ecommerce-backend/internal/transport/http"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load(".")
	if err != nil {
		log.Fatal().Err(err).Msg("load configuration")
	}
	zerolog.SetGlobalLevel(logLevel(cfg.LogLevel))

	startupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := mongodb.Open(startupCtx, cfg.MongoDBURL, cfg.DatabaseName,
		mongodb.WithTxnTimeout(cfg.TxnTimeout))
	if err != nil {
		log.Fatal().Err(err).Msg("connect to store")
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			log.Warn().Err(err).Msg("store close")
		}
	}()

	// Index bootstrap is best-effort: a failure degrades search and leaves the
	// uniqueness constraint to be created later, but does not block startup.
	if err := store.EnsureIndexes(startupCtx); err != nil {
		log.Warn().Err(err).Msg("index creation failed")
	}

	m := metrics.New()
	clk := clock.NewSystem()

	catalogSvc := app.NewCatalogService(mongodb.NewProductRepository(store), clk, m)
	orderSvc := app.NewOrderService(mongodb.NewOrderRepository(store), clk, m)

	handler := transporthttp.NewRouter(transporthttp.RouterConfig{
		Catalog:     catalogSvc,
		Orders:      orderSvc,
		CORSOrigins: cfg.Origins(),
		Logger:      log.Logger,
		Metrics:     m,
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	log.Info().Str("port", cfg.Port).Str("database", cfg.DatabaseName).Msg("api listening")

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server error")
		}
	case <-stopCtx.Done():
		log.Info().Msg("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("server shutdown error")
	}
	log.Info().Msg("server stopped")
}

func logLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
