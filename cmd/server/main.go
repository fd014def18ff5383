package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dom/league-item-advisor/internal/api"
	"github.com/dom/league-item-advisor/internal/config"
	"github.com/dom/league-item-advisor/internal/logging"
	"github.com/dom/league-item-advisor/internal/repository/postgres"
	"github.com/dom/league-item-advisor/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load config")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	// Initialize database
	db, err := postgres.NewConnection(cfg.DatabaseURL, cfg.Logging.Level)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to connect to database")
	}

	repos := postgres.NewRepositories(db)

	services, err := service.NewServices(repos, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to initialize services")
	}

	router := api.NewRouter(services, cfg)

	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logging.Info().
			Str("port", cfg.Port).
			Str("environment", cfg.Environment).
			Float64("loss_aversion", cfg.Engine.LossAversion).
			Float64("topsis_weight", cfg.Engine.TopsisWeight).
			Float64("todim_weight", cfg.Engine.TodimWeight).
			Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logging.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Fatal().Err(err).Msg("server forced to shutdown")
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	logging.Info().Msg("server stopped")
}
