package autoplay

import (
	"time"

	"github.com/udisondev/autoplay/internal/data"
	"github.com/udisondev/autoplay/internal/model"
)

// Pct returns floor(cur*100/total) clamped to 0..100; 100 when total is 0.
func Pct(cur, total int32) int32 {
	if total <= 0 {
		return 100
	}
	if cur <= 0 {
		return 0
	}
	v := int64(cur) * 100 / int64(total)
	if v > 100 {
		return 100
	}
	return int32(v)
}

// HPPct returns the character's HP percentage.
func HPPct(c *model.Character) int32 { return Pct(c.CurrentHP(), c.MaxHP()) }

// SPPct returns the character's SP percentage.
func SPPct(c *model.Character) int32 { return Pct(c.CurrentSP(), c.MaxSP()) }

// IsLocked reports whether any action lock (cast, attack, global delay, movement)
// is still in the future.
func IsLocked(c *model.Character, now time.Time) bool {
	return c.CastLockUntil().After(now) ||
		c.AttackLockUntil().After(now) ||
		c.CanActAt().After(now) ||
		c.CanMoveAt().After(now)
}

// IsActionLocked reports whether a cast, attack or global delay lock is still in
// the future. Movement lock is ignored: teleport interrupts walking.
func IsActionLocked(c *model.Character, now time.Time) bool {
	return c.CastLockUntil().After(now) ||
		c.AttackLockUntil().After(now) ||
		c.CanActAt().After(now)
}

// HasAspdPotion reports whether any ASPD potion tier is active.
func HasAspdPotion(c *model.Character) bool {
	for _, s := range data.AspdPotionStatuses {
		if c.HasStatus(s) {
			return true
		}
	}
	return false
}
