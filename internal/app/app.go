// Package app wires configuration, storage, services, and transport into a
// running application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/goaly/goaly-backend/internal/adapter/postgres"
	achievementrepo "github.com/goaly/goaly-backend/internal/adapter/postgres/achievement"
	goalrepo "github.com/goaly/goaly-backend/internal/adapter/postgres/goal"
	unlockrepo "github.com/goaly/goaly-backend/internal/adapter/postgres/unlock"
	userrepo "github.com/goaly/goaly-backend/internal/adapter/postgres/user"
	"github.com/goaly/goaly-backend/internal/config"
	achievementsvc "github.com/goaly/goaly-backend/internal/service/achievement"
	goalsvc "github.com/goaly/goaly-backend/internal/service/goal"
	"github.com/goaly/goaly-backend/internal/transport/middleware"
	"github.com/goaly/goaly-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and HTTP handlers, and serves until the
// context is canceled or a termination signal arrives.
func Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	goals := goalrepo.New(pool)
	achievements := achievementrepo.New(pool)
	unlocks := unlockrepo.New(pool)
	users := userrepo.New(pool)

	registry := achievementsvc.NewRegistry()

	goalService := goalsvc.NewService(logger, goals, users, cfg.Goals)
	achievementService := achievementsvc.NewService(logger, achievements, unlocks, goals, users, registry)

	router := rest.NewRouter(rest.Handlers{
		Goals:        rest.NewGoalHandler(goalService, logger),
		Achievements: rest.NewAchievementHandler(achievementService, logger),
		Health:       rest.NewHealthHandler(pool, BuildVersion()),
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(router)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
