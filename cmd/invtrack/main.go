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

	"golang.org/x/sync/errgroup"

	"github.com/cornerstore/invtrack/internal/app"
	"github.com/cornerstore/invtrack/internal/inventory"
	"github.com/cornerstore/invtrack/internal/observability"
	"github.com/cornerstore/invtrack/internal/platform/db"
	"github.com/cornerstore/invtrack/internal/view"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	conn, wasCreated, err := db.Open(ctx, cfg.DBPath)
	if err != nil {
		logger.Error("open database", slog.Any("error", err))
		os.Exit(1)
	}
	defer conn.Close()

	repo := inventory.NewSQLiteRepository(conn)
	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Error("ensure schema", slog.Any("error", err))
		os.Exit(1)
	}

	// Seeding runs at most once per store lifetime; re-opening an existing
	// file never re-triggers it.
	if wasCreated {
		seed := inventory.SeedItems()
		if err := repo.Seed(ctx, seed); err != nil {
			logger.Error("seed database", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("database initialised with sample data",
			slog.String("path", cfg.DBPath),
			slog.Int("items", len(seed)))
	}

	metrics := observability.NewMetrics()

	templates, err := view.NewEngine()
	if err != nil {
		logger.Error("parse templates", slog.Any("error", err))
		os.Exit(1)
	}

	service := inventory.NewService(repo, logger, metrics)
	handler := inventory.NewHandler(logger, service, templates)

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		InventoryHandler: handler,
		Metrics:          metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("inventory tracker listening", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("shutdown complete")
}
