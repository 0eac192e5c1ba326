package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"Posts/internal/api"
	"Posts/internal/api/middleware"
	"Posts/internal/config"
	"Posts/internal/core/posts"
	"Posts/internal/db/migrations"
	postgresRepo "Posts/internal/db/postgres"
	sqliteRepo "Posts/internal/db/sqlite"
	"Posts/internal/telemetry"

	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	shutdownTracing, err := telemetry.SetupTracing(ctx, cfg.OTLPEndpoint, cfg.ServiceName)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Warn("failed to flush traces", slog.String("error", err.Error()))
		}
	}()

	repo, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	// Initialize services
	postService := posts.NewPostService(repo)

	router := api.NewRouter(postService, api.RouterConfig{
		Metrics:        middleware.NewMetrics(),
		AllowedOrigins: cfg.CORSAllowedOrigins,
		MaxBodyBytes:   cfg.MaxBodyBytes,
		AccessLog:      true,
	})

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      telemetry.InstrumentHandler(router, cfg.ServiceName),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("posts API starting",
			slog.String("addr", server.Addr),
			slog.String("store", cfg.StoreDriver),
		)
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// openStore connects the configured backend and returns its repository
func openStore(ctx context.Context, cfg config.Config) (posts.Repository, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreDriverSQLite:
		db, err := sqliteRepo.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		slog.Info("connected to sqlite store", slog.String("path", cfg.SQLitePath))

		closeFn := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return sqliteRepo.NewPostRepository(db), closeFn, nil

	default:
		db, err := postgresRepo.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		slog.Info("connected to postgres store")

		if cfg.AutoMigrate {
			if err := migrations.Up(db); err != nil {
				_ = db.Close()
				return nil, nil, err
			}
			slog.Info("migrations completed successfully")
		}

		return postgresRepo.NewPostRepository(db), closeDB(db), nil
	}
}

func closeDB(db *sql.DB) func() {
	return func() {
		if err := db.Close(); err != nil {
			slog.Warn("failed to close database", slog.String("error", err.Error()))
		}
	}
}
