package autoplay

import (
	"time"

	"github.com/udisondev/autoplay/internal/config"
)

// Tuning — тайминги цикла и значения по умолчанию; подменяется на лету.
type Tuning struct {
	TickInterval         time.Duration
	RebuffDelay          time.Duration
	ChanneledRebuffDelay time.Duration
	RestDelay            time.Duration
	TeleportDelay        time.Duration
	ChannelGrace         time.Duration
	ShadowSanity         time.Duration
	SearchRadius         int32
	RestBuffer           int32
	AttackersOnly        bool
	Defaults             Config
}

// DefaultTuning returns the built-in timings.
func DefaultTuning() Tuning {
	return Tuning{
		TickInterval:         500 * time.Millisecond,
		RebuffDelay:          300 * time.Millisecond,
		ChanneledRebuffDelay: time.Second,
		RestDelay:            time.Second,
		TeleportDelay:        time.Second,
		ChannelGrace:         2 * time.Second,
		ShadowSanity:         time.Hour,
		SearchRadius:         9,
		RestBuffer:           5,
		Defaults:             DefaultConfig(),
	}
}

// TuningFromConfig converts the autoplay section of the daemon config.
func TuningFromConfig(c config.AutoplayConfig) Tuning {
	def := Config{
		MaxMobsBeforeTP:    c.MaxMobsBeforeTP,
		IdleCyclesBeforeTP: c.IdleCyclesBeforeTP,
		UseAspdPots:        c.UseAspdPots,
		UseHealPots:        c.UseHealPots,
		AspdPotIDs:         append([]int32(nil), c.AspdPotIDs...),
	}
	if def.MaxMobsBeforeTP <= 0 {
		def.MaxMobsBeforeTP = DefaultMaxMobsBeforeTP
	}
	for _, p := range c.HealPots {
		def.HealPots = append(def.HealPots, PotEntry{
			ItemID:     p.ItemID,
			TriggerPct: p.TriggerPct,
			TargetPct:  p.TargetPct,
			IsSP:       p.SP,
		})
	}
	return Tuning{
		TickInterval:         c.TickInterval,
		RebuffDelay:          c.RebuffDelay,
		ChanneledRebuffDelay: c.ChanneledRebuffDelay,
		RestDelay:            c.RestDelay,
		TeleportDelay:        c.TeleportDelay,
		ChannelGrace:         c.ChannelGrace,
		ShadowSanity:         c.ShadowSanity,
		SearchRadius:         c.SearchRadius,
		RestBuffer:           c.RestBuffer,
		AttackersOnly:        c.AttackersOnly,
		Defaults:             def,
	}
}
