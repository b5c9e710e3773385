package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/udisondev/autoplay/internal/autoplay"
	"github.com/udisondev/autoplay/internal/config"
	"github.com/udisondev/autoplay/internal/db"
	"github.com/udisondev/autoplay/internal/variables"
)

// storage — выбранный бэкенд хранения настроек и конфигов автоплея.
type storage struct {
	vars    variables.Repository // nil = memory only
	configs autoplay.ConfigStore // nil = configs live for the session only
	closers []func()
}

// Close releases backend connections.
func (s *storage) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

func openStorage(ctx context.Context, cfg config.Autoplayd) (*storage, error) {
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		dsn := cfg.Database.DSN()
		if err := db.RunMigrations(ctx, dsn); err != nil {
			return nil, fmt.Errorf("running migrations: %w", err)
		}
		database, err := db.New(ctx, dsn)
		if err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}
		slog.Info("database connected", "host", cfg.Database.Host, "dbname", cfg.Database.DBName)
		return &storage{
			vars:    db.NewVariableRepository(database.Pool()),
			configs: db.NewConfigRepository(database.Pool()),
			closers: []func(){database.Close},
		}, nil

	case config.StorageSQLite:
		sqlDB, err := db.OpenSQLite(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite: %w", err)
		}
		slog.Info("sqlite opened", "path", cfg.Storage.SQLitePath)
		return &storage{
			vars:    db.NewSQLiteVariableRepository(sqlDB),
			configs: db.NewSQLiteConfigRepository(sqlDB),
			closers: []func(){func() { closeSQL(sqlDB) }},
		}, nil

	case config.StorageMemory:
		slog.Warn("memory storage: settings are lost on exit")
		return &storage{}, nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

func closeSQL(sqlDB *sql.DB) {
	if err := sqlDB.Close(); err != nil {
		slog.Warn("closing sqlite", "error", err)
	}
}
