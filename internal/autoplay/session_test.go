package autoplay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/autoplay/internal/config"
)

func TestSession_Shadow(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	s := newSession(1, DefaultConfig())

	assert.False(t, s.shadowPending(now, time.Hour))

	s.refreshShadow(now, 2*time.Second, time.Hour)
	assert.Equal(t, now.Add(2*time.Second), s.ShadowUntil())
	assert.True(t, s.shadowPending(now.Add(time.Second), time.Hour))

	assert.False(t, s.shadowPending(now.Add(2*time.Second), time.Hour))
	assert.True(t, s.ShadowUntil().IsZero(), "elapsed timer is reset")

	s.shadowUntil = now.Add(3 * time.Hour)
	assert.True(t, s.readShadow(now, time.Hour).IsZero())
}

func TestSession_ConfigIsSnapshot(t *testing.T) {
	s := newSession(1, DefaultConfig())
	snap := s.config()
	snap.HealPots[0].ItemID = 1
	assert.Equal(t, DefaultConfig().HealPots, s.config().HealPots)
}

func TestTuningFromConfig(t *testing.T) {
	c := config.DefaultAutoplay()
	c.TickInterval = 250 * time.Millisecond
	c.AttackersOnly = true
	c.MaxMobsBeforeTP = 0

	tuning := TuningFromConfig(c)
	assert.Equal(t, 250*time.Millisecond, tuning.TickInterval)
	assert.True(t, tuning.AttackersOnly)
	assert.Equal(t, DefaultMaxMobsBeforeTP, tuning.Defaults.MaxMobsBeforeTP)

	// built-in file defaults match the built-in tuning
	want := DefaultTuning()
	got := TuningFromConfig(config.DefaultAutoplay())
	assert.Equal(t, want, got)
}
