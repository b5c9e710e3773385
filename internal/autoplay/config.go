package autoplay

import (
	"context"
	"slices"

	"github.com/udisondev/autoplay/internal/data"
)

// PotEntry — правило авто-зелья: использовать ItemID когда процент ресурса
// опустился до TriggerPct, продолжать до TargetPct.
type PotEntry struct {
	ItemID     int32
	TriggerPct int32
	TargetPct  int32
	IsSP       bool
}

// Config holds per-character auto-attack settings owned by the manager.
type Config struct {
	MaxMobsBeforeTP    int32
	IdleCyclesBeforeTP int32
	UseAspdPots        bool
	UseHealPots        bool
	AspdPotIDs         []int32
	HealPots           []PotEntry
}

// Defaults for a fresh Config.
const (
	DefaultMaxMobsBeforeTP    int32 = 15
	DefaultIdleCyclesBeforeTP int32 = 2
)

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		MaxMobsBeforeTP:    DefaultMaxMobsBeforeTP,
		IdleCyclesBeforeTP: DefaultIdleCyclesBeforeTP,
		UseAspdPots:        true,
		UseHealPots:        true,
		AspdPotIDs:         []int32{data.ItemBerserkPotion, data.ItemAwakeningPotion, data.ItemConcentrationPotion},
		HealPots: []PotEntry{
			{ItemID: data.ItemWhitePotion, TriggerPct: 50, TargetPct: 90},
			{ItemID: data.ItemBluePotion, TriggerPct: 50, TargetPct: 90, IsSP: true},
		},
	}
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := *c
	out.AspdPotIDs = slices.Clone(c.AspdPotIDs)
	out.HealPots = slices.Clone(c.HealPots)
	return &out
}

// applyDefaults fills an uninitialized config from defaults.
func (c *Config) applyDefaults(def Config) {
	c.MaxMobsBeforeTP = def.MaxMobsBeforeTP
	c.IdleCyclesBeforeTP = def.IdleCyclesBeforeTP
	c.UseAspdPots = def.UseAspdPots
	c.UseHealPots = def.UseHealPots
	c.AspdPotIDs = slices.Clone(def.AspdPotIDs)
	c.HealPots = slices.Clone(def.HealPots)
}

// ConfigStore persists Config between sessions.
// LoadConfig returns nil, nil when nothing is stored.
type ConfigStore interface {
	LoadConfig(ctx context.Context, charID int64) (*Config, error)
	SaveConfig(ctx context.Context, charID int64, cfg *Config) error
}
