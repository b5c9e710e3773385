package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Storage drivers.
const (
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
	StorageMemory   = "memory"
)

// Autoplayd holds all configuration for the autoplay daemon.
type Autoplayd struct {
	LogLevel string `yaml:"log_level" env:"AUTOPLAY_LOG_LEVEL"` // debug, info, warn, error

	Storage  StorageConfig  `yaml:"storage"`
	Database DatabaseConfig `yaml:"database"`

	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Persistence / scheduling
	AutosaveInterval    time.Duration `yaml:"autosave_interval" env:"AUTOPLAY_AUTOSAVE_INTERVAL"`
	SchedulerResolution time.Duration `yaml:"scheduler_resolution" env:"AUTOPLAY_SCHEDULER_RESOLUTION"`

	// Hot-reloaded section
	Autoplay AutoplayConfig `yaml:"autoplay"`

	Demo DemoConfig `yaml:"demo"`
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Driver     string `yaml:"driver" env:"AUTOPLAY_STORAGE_DRIVER"`
	SQLitePath string `yaml:"sqlite_path" env:"AUTOPLAY_SQLITE_PATH"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host" env:"AUTOPLAY_DB_HOST"`
	Port     int    `yaml:"port" env:"AUTOPLAY_DB_PORT"`
	User     string `yaml:"user" env:"AUTOPLAY_DB_USER"`
	Password string `yaml:"password" env:"AUTOPLAY_DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"AUTOPLAY_DB_NAME"`
	SSLMode  string `yaml:"sslmode" env:"AUTOPLAY_DB_SSLMODE"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// TelemetryConfig controls OpenTelemetry tracing. Disabled unless an endpoint is set.
type TelemetryConfig struct {
	ServiceName  string  `yaml:"service_name" env:"AUTOPLAY_OTEL_SERVICE_NAME"`
	OTLPEndpoint string  `yaml:"otlp_endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	SampleRatio  float64 `yaml:"sample_ratio" env:"AUTOPLAY_OTEL_SAMPLE_RATIO"`
}

// Enabled reports whether tracing should be exported.
func (t TelemetryConfig) Enabled() bool {
	return t.OTLPEndpoint != ""
}

// PotConfig — запись авто-зелья в YAML.
type PotConfig struct {
	ItemID     int32 `yaml:"item_id"`
	TriggerPct int32 `yaml:"trigger_pct"`
	TargetPct  int32 `yaml:"target_pct"`
	SP         bool  `yaml:"sp"`
}

// AutoplayConfig — тайминги цикла автоплея и значения по умолчанию для Config персонажа.
type AutoplayConfig struct {
	TickInterval         time.Duration `yaml:"tick_interval" env:"AUTOPLAY_TICK_INTERVAL"`
	RebuffDelay          time.Duration `yaml:"rebuff_delay"`
	ChanneledRebuffDelay time.Duration `yaml:"channeled_rebuff_delay"`
	RestDelay            time.Duration `yaml:"rest_delay"`
	TeleportDelay        time.Duration `yaml:"teleport_delay"`
	ChannelGrace         time.Duration `yaml:"channel_grace"`
	ShadowSanity         time.Duration `yaml:"shadow_sanity"`
	SearchRadius         int32         `yaml:"search_radius" env:"AUTOPLAY_SEARCH_RADIUS"`
	RestBuffer           int32         `yaml:"rest_buffer"`
	AttackersOnly        bool          `yaml:"attackers_only"`

	MaxMobsBeforeTP    int32       `yaml:"max_mobs_before_tp"`
	IdleCyclesBeforeTP int32       `yaml:"idle_cycles_before_tp"`
	UseAspdPots        bool        `yaml:"use_aspd_pots"`
	UseHealPots        bool        `yaml:"use_heal_pots"`
	AspdPotIDs         []int32     `yaml:"aspd_pot_ids"`
	HealPots           []PotConfig `yaml:"heal_pots"`
}

// DemoConfig seeds an in-process world for local runs.
type DemoConfig struct {
	Enabled   bool  `yaml:"enabled" env:"AUTOPLAY_DEMO"`
	MapWidth  int32 `yaml:"map_width"`
	MapHeight int32 `yaml:"map_height"`
	Monsters  int   `yaml:"monsters"`
	Players   int   `yaml:"players"`

	// Console reads "<player>: <chat line>" commands from stdin.
	Console bool `yaml:"console" env:"AUTOPLAY_CONSOLE"`

	// Attrition drains HP of engaged players so potions and rest kick in.
	Attrition bool `yaml:"attrition"`
}

// DefaultAutoplay returns the built-in loop timings and per-character defaults.
func DefaultAutoplay() AutoplayConfig {
	return AutoplayConfig{
		TickInterval:         500 * time.Millisecond,
		RebuffDelay:          300 * time.Millisecond,
		ChanneledRebuffDelay: time.Second,
		RestDelay:            time.Second,
		TeleportDelay:        time.Second,
		ChannelGrace:         2 * time.Second,
		ShadowSanity:         time.Hour,
		SearchRadius:         9,
		RestBuffer:           5,
		MaxMobsBeforeTP:      15,
		IdleCyclesBeforeTP:   2,
		UseAspdPots:          true,
		UseHealPots:          true,
		AspdPotIDs:           []int32{657, 656, 645},
		HealPots: []PotConfig{
			{ItemID: 504, TriggerPct: 50, TargetPct: 90},
			{ItemID: 505, TriggerPct: 50, TargetPct: 90, SP: true},
		},
	}
}

// DefaultAutoplayd returns Autoplayd config with sensible defaults.
func DefaultAutoplayd() Autoplayd {
	return Autoplayd{
		LogLevel: "info",
		Storage: StorageConfig{
			Driver:     StorageSQLite,
			SQLitePath: "autoplay.db",
		},
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "autoplay",
			Password: "autoplay",
			DBName:   "autoplay",
			SSLMode:  "disable",
		},
		Telemetry: TelemetryConfig{
			ServiceName: "autoplayd",
			SampleRatio: 1.0,
		},
		AutosaveInterval:    5 * time.Minute,
		SchedulerResolution: 50 * time.Millisecond,
		Autoplay:            DefaultAutoplay(),
		Demo: DemoConfig{
			MapWidth:  200,
			MapHeight: 200,
			Monsters:  60,
			Players:   1,
		},
	}
}

// Load loads daemon config from a YAML file, then applies AUTOPLAY_* environment overrides.
// If the file doesn't exist, defaults are used.
func Load(path string) (Autoplayd, error) {
	cfg := DefaultAutoplayd()

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Autoplayd) Validate() error {
	switch c.Storage.Driver {
	case StoragePostgres, StorageSQLite, StorageMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.SchedulerResolution <= 0 {
		return fmt.Errorf("scheduler_resolution must be positive")
	}
	return c.Autoplay.Validate()
}

// Validate checks the autoplay section.
func (a *AutoplayConfig) Validate() error {
	if a.TickInterval <= 0 {
		return fmt.Errorf("autoplay.tick_interval must be positive")
	}
	if a.SearchRadius < 0 {
		return fmt.Errorf("autoplay.search_radius must not be negative")
	}
	for i, p := range a.HealPots {
		if p.TriggerPct < 0 || p.TriggerPct > 100 || p.TargetPct < 0 || p.TargetPct > 100 {
			return fmt.Errorf("autoplay.heal_pots[%d]: percentages must be within 0..100", i)
		}
	}
	return nil
}

// LoadAutoplay re-reads only the autoplay section of path (hot reload).
// Missing keys keep their defaults.
func LoadAutoplay(path string) (AutoplayConfig, error) {
	cfg, err := Load(path)
	if err != nil {
		return AutoplayConfig{}, err
	}
	return cfg.Autoplay, nil
}
