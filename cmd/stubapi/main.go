// Command stubapi runs the in-memory product API on its own, for driving
// the mobile core against a long-lived local backend.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/stocklens/stocklens-mobile/internal/app"
	"github.com/stocklens/stocklens-mobile/internal/observability"
	"github.com/stocklens/stocklens-mobile/internal/stub"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := app.NewLogger(cfg)

	repo := stub.NewRepository()
	seeded, err := stub.Seed(repo)
	if err != nil {
		logger.Error("seed stub catalog", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("seeded stub catalog", slog.Int("products", len(seeded)))

	metrics := observability.NewMetrics()
	router := app.NewRouter(app.RouterParams{
		Logger:   logger,
		Config:   cfg,
		Products: stub.NewHandler(logger, repo),
		Metrics:  metrics,
	})

	server := &http.Server{
		Addr:         cfg.StubAddr,
		Handler:      router,
		ReadTimeout:  cfg.StubReadTimeout,
		WriteTimeout: cfg.StubWriteTimeout,
	}

	go func() {
		logger.Info("stub product api listening", slog.String("addr", cfg.StubAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("serve", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
