package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/udisondev/autoplay/internal/autoplay"
)

// SQLiteVariableRepository stores per-character variables in SQLite.
type SQLiteVariableRepository struct {
	db *sql.DB
}

// NewSQLiteVariableRepository creates a new SQLiteVariableRepository.
func NewSQLiteVariableRepository(db *sql.DB) *SQLiteVariableRepository {
	return &SQLiteVariableRepository{db: db}
}

// LoadVariables loads all variables for a character.
func (r *SQLiteVariableRepository) LoadVariables(ctx context.Context, charID int64) (map[string]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name, value FROM character_variables WHERE character_id = ?`, charID)
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
func (r *SQLiteVariableRepository) SaveVariables(ctx context.Context, charID int64, vars map[string]int64) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM character_variables WHERE character_id = ?`, charID); err != nil {
			return fmt.Errorf("deleting old variables for character %d: %w", charID, err)
		}

		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO character_variables (character_id, name, value) VALUES (?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("preparing variable insert: %w", err)
		}
		defer stmt.Close()

		for name, value := range vars {
			if _, err := stmt.ExecContext(ctx, charID, name, value); err != nil {
				return fmt.Errorf("inserting variable %q for character %d: %w", name, charID, err)
			}
		}
		return nil
	})
}

// SQLiteConfigRepository stores autoplay configs in SQLite.
type SQLiteConfigRepository struct {
	db *sql.DB
}

// NewSQLiteConfigRepository creates a new SQLiteConfigRepository.
func NewSQLiteConfigRepository(db *sql.DB) *SQLiteConfigRepository {
	return &SQLiteConfigRepository{db: db}
}

// LoadConfig loads config of a character.
// Returns nil, nil if nothing is stored.
func (r *SQLiteConfigRepository) LoadConfig(ctx context.Context, charID int64) (*autoplay.Config, error) {
	var cfg autoplay.Config
	err := r.db.QueryRowContext(ctx,
		`SELECT max_mobs_before_tp, idle_cycles_before_tp, use_aspd_pots, use_heal_pots
		 FROM autoplay_configs WHERE character_id = ?`, charID,
	).Scan(&cfg.MaxMobsBeforeTP, &cfg.IdleCyclesBeforeTP, &cfg.UseAspdPots, &cfg.UseHealPots)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying autoplay config for character %d: %w", charID, err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT item_id FROM autoplay_aspd_pots WHERE character_id = ? ORDER BY position`, charID)
	if err != nil {
		return nil, fmt.Errorf("querying aspd pots for character %d: %w", charID, err)
	}
	defer rows.Close()
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning aspd pot row: %w", err)
		}
		cfg.AspdPotIDs = append(cfg.AspdPotIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating aspd pot rows: %w", err)
	}

	healRows, err := r.db.QueryContext(ctx,
		`SELECT item_id, trigger_pct, target_pct, is_sp
		 FROM autoplay_heal_pots WHERE character_id = ? ORDER BY position`, charID)
	if err != nil {
		return nil, fmt.Errorf("querying heal pots for character %d: %w", charID, err)
	}
	defer healRows.Close()
	for healRows.Next() {
		var p autoplay.PotEntry
		if err := healRows.Scan(&p.ItemID, &p.TriggerPct, &p.TargetPct, &p.IsSP); err != nil {
			return nil, fmt.Errorf("scanning heal pot row: %w", err)
		}
		cfg.HealPots = append(cfg.HealPots, p)
	}
	if err := healRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating heal pot rows: %w", err)
	}

	return &cfg, nil
}

// SaveConfig upserts config of a character in a single transaction.
func (r *SQLiteConfigRepository) SaveConfig(ctx context.Context, charID int64, cfg *autoplay.Config) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO autoplay_configs (character_id, max_mobs_before_tp, idle_cycles_before_tp, use_aspd_pots, use_heal_pots)
			 VALUES (?, ?, ?, ?, ?)
			 ON CONFLICT (character_id) DO UPDATE SET
			   max_mobs_before_tp = excluded.max_mobs_before_tp,
			   idle_cycles_before_tp = excluded.idle_cycles_before_tp,
			   use_aspd_pots = excluded.use_aspd_pots,
			   use_heal_pots = excluded.use_heal_pots`,
			charID, cfg.MaxMobsBeforeTP, cfg.IdleCyclesBeforeTP, cfg.UseAspdPots, cfg.UseHealPots,
		); err != nil {
			return fmt.Errorf("upserting autoplay config for character %d: %w", charID, err)
		}

		for _, table := range []string{"autoplay_aspd_pots", "autoplay_heal_pots"} {
			if _, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE character_id = ?`, charID); err != nil {
				return fmt.Errorf("clearing %s for character %d: %w", table, charID, err)
			}
		}

		for i, id := range cfg.AspdPotIDs {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO autoplay_aspd_pots (character_id, position, item_id) VALUES (?, ?, ?)`,
				charID, i, id); err != nil {
				return fmt.Errorf("inserting aspd pot for character %d: %w", charID, err)
			}
		}
		for i, p := range cfg.HealPots {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO autoplay_heal_pots (character_id, position, item_id, trigger_pct, target_pct, is_sp)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				charID, i, p.ItemID, p.TriggerPct, p.TargetPct, p.IsSP); err != nil {
				return fmt.Errorf("inserting heal pot for character %d: %w", charID, err)
			}
		}
		return nil
	})
}

// withTx runs fn in a transaction, committing on success.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
