package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/udisondev/autoplay/internal/db/migrations"
)

// RunMigrations runs goose migrations on the given PostgreSQL DSN.
func RunMigrations(ctx context.Context, dsn string) error {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("opening sql connection for migrations: %w", err)
	}
	defer sqlDB.Close()

	return migrate(ctx, sqlDB, goose.DialectPostgres)
}

// RunSQLiteMigrations runs goose migrations on an open SQLite handle.
func RunSQLiteMigrations(ctx context.Context, sqlDB *sql.DB) error {
	return migrate(ctx, sqlDB, goose.DialectSQLite3)
}

// migrate applies embedded migrations through a goose provider
// (no package-level goose state, so both backends can migrate concurrently).
func migrate(ctx context.Context, sqlDB *sql.DB, dialect goose.Dialect) error {
	provider, err := goose.NewProvider(dialect, sqlDB, migrations.FS)
	if err != nil {
		return fmt.Errorf("creating goose provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	if len(results) > 0 {
		slog.Info("applied migrations", "dialect", dialect, "count", len(results))
	}
	return nil
}
