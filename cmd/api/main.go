package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/droplaunch/waitlist/internal/api"
	"github.com/droplaunch/waitlist/internal/api/handlers"
	"github.com/droplaunch/waitlist/internal/repository"
	"github.com/droplaunch/waitlist/internal/services"
	"github.com/droplaunch/waitlist/pkg/config"
	"github.com/droplaunch/waitlist/pkg/database"
	"github.com/droplaunch/waitlist/pkg/logger"
)

func main() {
	cfg := config.MustLoad()

	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log.Info("Starting waitlist server",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.Addr()),
		zap.String("persistence", string(cfg.Persistence)),
	)

	ctx := context.Background()

	var (
		repo   repository.RegistrationRepository
		pinger handlers.Pinger
	)
	if cfg.PersistenceEnabled() {
		db, err := database.OpenPostgres(ctx, database.Options{
			DSN:             cfg.DatabaseURL,
			MaxOpenConns:    cfg.DBMaxOpenConns,
			MaxIdleConns:    cfg.DBMaxIdleConns,
			ConnMaxLifetime: cfg.DBConnMaxLifetime,
			Verbose:         cfg.LogLevel == "debug",
		}, log)
		if err != nil {
			log.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer func() { _ = database.Close(db) }()

		if err := repository.EnsureSchema(ctx, db); err != nil {
			log.Fatal("Failed to ensure schema", zap.Error(err))
		}
		log.Info("Database connected successfully")

		repo = repository.NewRegistrationRepository(db)
		pinger = handlers.PingerFunc(func(ctx context.Context) error { return database.Ping(ctx, db) })
	} else {
		log.Warn("PERSISTENCE=disabled: registrations are accepted but not stored")
	}

	if cfg.AdminSecret == "" {
		log.Warn("ADMIN_SECRET not set, admin endpoints will deny every request")
	}

	router := api.NewRouter(api.Dependencies{
		Guard:               services.NewAccessGuard(cfg.AdminSecret),
		RegistrationHandler: handlers.NewRegistrationHandler(services.NewRegistrationService(repo, cfg.Persistence)),
		AdminHandler:        handlers.NewAdminHandler(services.NewExportService(repo, cfg.Persistence)),
		HealthHandler:       handlers.NewHealthHandler(pinger),
		StaticDir:           cfg.StaticDir,
		MetricsEnabled:      cfg.MetricsEnabled,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	} else {
		log.Info("server exited gracefully")
	}
}
