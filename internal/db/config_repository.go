package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/autoplay/internal/autoplay"
)

// ConfigRepository stores autoplay configs in PostgreSQL.
type ConfigRepository struct {
	db *pgxpool.Pool
}

// NewConfigRepository creates a new ConfigRepository.
func NewConfigRepository(db *pgxpool.Pool) *ConfigRepository {
	return &ConfigRepository{db: db}
}

// LoadConfig loads config of a character.
// Returns nil, nil if nothing is stored.
func (r *ConfigRepository) LoadConfig(ctx context.Context, charID int64) (*autoplay.Config, error) {
	var cfg autoplay.Config
	err := r.db.QueryRow(ctx,
		`SELECT max_mobs_before_tp, idle_cycles_before_tp, use_aspd_pots, use_heal_pots
		 FROM autoplay_configs WHERE character_id = $1`, charID,
	).Scan(&cfg.MaxMobsBeforeTP, &cfg.IdleCyclesBeforeTP, &cfg.UseAspdPots, &cfg.UseHealPots)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying autoplay config for character %d: %w", charID, err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT item_id FROM autoplay_aspd_pots WHERE character_id = $1 ORDER BY position`, charID)
	if err != nil {
		return nil, fmt.Errorf("querying aspd pots for character %d: %w", charID, err)
	}
	cfg.AspdPotIDs, err = pgx.CollectRows(rows, pgx.RowTo[int32])
	if err != nil {
		return nil, fmt.Errorf("scanning aspd pots: %w", err)
	}

	rows, err = r.db.Query(ctx,
		`SELECT item_id, trigger_pct, target_pct, is_sp
		 FROM autoplay_heal_pots WHERE character_id = $1 ORDER BY position`, charID)
	if err != nil {
		return nil, fmt.Errorf("querying heal pots for character %d: %w", charID, err)
	}
	cfg.HealPots, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (autoplay.PotEntry, error) {
		var p autoplay.PotEntry
		err := row.Scan(&p.ItemID, &p.TriggerPct, &p.TargetPct, &p.IsSP)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("scanning heal pots: %w", err)
	}

	return &cfg, nil
}

// SaveConfig upserts config of a character in a single transaction.
func (r *ConfigRepository) SaveConfig(ctx context.Context, charID int64, cfg *autoplay.Config) error {
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
		`INSERT INTO autoplay_configs (character_id, max_mobs_before_tp, idle_cycles_before_tp, use_aspd_pots, use_heal_pots)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (character_id) DO UPDATE SET
		   max_mobs_before_tp = EXCLUDED.max_mobs_before_tp,
		   idle_cycles_before_tp = EXCLUDED.idle_cycles_before_tp,
		   use_aspd_pots = EXCLUDED.use_aspd_pots,
		   use_heal_pots = EXCLUDED.use_heal_pots`,
		charID, cfg.MaxMobsBeforeTP, cfg.IdleCyclesBeforeTP, cfg.UseAspdPots, cfg.UseHealPots,
	); err != nil {
		return fmt.Errorf("upserting autoplay config for character %d: %w", charID, err)
	}

	for _, table := range []string{"autoplay_aspd_pots", "autoplay_heal_pots"} {
		if _, err := tx.Exec(ctx, `DELETE FROM `+table+` WHERE character_id = $1`, charID); err != nil {
			return fmt.Errorf("clearing %s for character %d: %w", table, charID, err)
		}
	}

	if len(cfg.AspdPotIDs) > 0 {
		rows := make([][]any, 0, len(cfg.AspdPotIDs))
		for i, id := range cfg.AspdPotIDs {
			rows = append(rows, []any{charID, int32(i), id})
		}
		if _, err := tx.CopyFrom(ctx,
			pgx.Identifier{"autoplay_aspd_pots"},
			[]string{"character_id", "position", "item_id"},
			pgx.CopyFromRows(rows),
		); err != nil {
			return fmt.Errorf("inserting aspd pots for character %d: %w", charID, err)
		}
	}

	if len(cfg.HealPots) > 0 {
		rows := make([][]any, 0, len(cfg.HealPots))
		for i, p := range cfg.HealPots {
			rows = append(rows, []any{charID, int32(i), p.ItemID, p.TriggerPct, p.TargetPct, p.IsSP})
		}
		if _, err := tx.CopyFrom(ctx,
			pgx.Identifier{"autoplay_heal_pots"},
			[]string{"character_id", "position", "item_id", "trigger_pct", "target_pct", "is_sp"},
			pgx.CopyFromRows(rows),
		); err != nil {
			return fmt.Errorf("inserting heal pots for character %d: %w", charID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
