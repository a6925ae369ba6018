package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/droplaunch/waitlist/internal/repository"
	"github.com/droplaunch/waitlist/pkg/config"
	"github.com/droplaunch/waitlist/pkg/database"
	"github.com/droplaunch/waitlist/pkg/logger"
)

// migrate creates the registrations table ahead of the first server start.
// The server runs the same step on boot, so this is optional.
func main() {
	cfg := config.MustLoad()
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if !cfg.PersistenceEnabled() {
		log.Fatal("PERSISTENCE=disabled, nothing to migrate")
	}

	ctx := context.Background()
	db, err := database.OpenPostgres(ctx, database.Options{
		DSN:             cfg.DatabaseURL,
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	}, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() { _ = database.Close(db) }()

	if err := repository.EnsureSchema(ctx, db); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	fmt.Fprintln(os.Stdout, "migrations completed")
}
