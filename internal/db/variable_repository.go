package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// VariableRepository stores per-character integer variables in PostgreSQL.
type VariableRepository struct {
	db *pgxpool.Pool
}

// NewVariableRepository creates a new VariableRepository.
func NewVariableRepository(db *pgxpool.Pool) *VariableRepository {
	return &VariableRepository{db: db}
}

// LoadVariables loads all variables for a character.
func (r *VariableRepository) LoadVariables(ctx context.Context, charID int64) (map[string]int64, error) {
	rows, err := r.db.Query(ctx,
		`SELECT name, value FROM character_variables WHERE character_id = $1`,
		charID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying variables for character %d: %w", charID, err)
	}
	defer rows.Close()

	vars := make(map[string]int64, 16)
	for rows.Next() {
		var (
			name  string
			value int64
		)
		if err := rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("scanning variable row: %w", err)
		}
		vars[name] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating variable rows: %w", err)
	}
	return vars, nil
}

// SaveVariables replaces all variables of a character.
// Full replace: deletes existing rows, then inserts through COPY.
func (r *VariableRepository) SaveVariables(ctx context.Context, charID int64, vars map[string]int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && err != pgx.ErrTxClosed {
			slog.Error("rollback failed", "characterID", charID, "error", err)
		}
	}()

	if _, err := tx.Exec(ctx,
		`DELETE FROM character_variables WHERE character_id = $1`,
		charID,
	); err != nil {
		return fmt.Errorf("deleting old variables for character %d: %w", charID, err)
	}

	if len(vars) > 0 {
		rows := make([][]any, 0, len(vars))
		for name, value := range vars {
			rows = append(rows, []any{charID, name, value})
		}
		if _, err := tx.CopyFrom(ctx,
			pgx.Identifier{"character_variables"},
			[]string{"character_id", "name", "value"},
			pgx.CopyFromRows(rows),
		); err != nil {
			return fmt.Errorf("inserting variables for character %d: %w", charID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
