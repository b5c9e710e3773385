package autoplay

import (
	"sync"
	"time"
)

// Session — состояние автоплея одного персонажа между тиками.
// Поля кроме cfg трогает только тик этого персонажа.
type Session struct {
	charID int64

	mu  sync.Mutex // guards cfg (admin commands run on other goroutines)
	cfg Config

	idle int32

	// healing latches: settings variant and potion-entry variant
	hp, sp       bool
	potHP, potSP bool

	// estimated expiry of the channeled concentration buff, zero = unset
	shadowUntil time.Time

	// core-owned custom skill cooldown
	nextSkillAt time.Time
}

func newSession(charID int64, cfg Config) *Session {
	return &Session{charID: charID, cfg: cfg}
}

// CharacterID returns the owner.
func (s *Session) CharacterID() int64 { return s.charID }

// IdleCount returns consecutive ticks without a target.
func (s *Session) IdleCount() int32 { return s.idle }

// NextSkillAt returns the custom skill cooldown.
func (s *Session) NextSkillAt() time.Time { return s.nextSkillAt }

// ShadowUntil returns the shadow timer (zero = unset).
func (s *Session) ShadowUntil() time.Time { return s.shadowUntil }

// config returns a snapshot for one tick.
func (s *Session) config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.cfg.Clone()
}

// readShadow returns the shadow timer, dropping values further than sanity from now.
func (s *Session) readShadow(now time.Time, sanity time.Duration) time.Time {
	if s.shadowUntil.IsZero() {
		return s.shadowUntil
	}
	d := s.shadowUntil.Sub(now)
	if d > sanity || d < -sanity {
		s.shadowUntil = time.Time{}
	}
	return s.shadowUntil
}

// refreshShadow keeps the timer at least grace ahead while the buff is observed active.
func (s *Session) refreshShadow(now time.Time, grace, sanity time.Duration) {
	cur := s.readShadow(now, sanity)
	if floor := now.Add(grace); cur.Before(floor) {
		s.shadowUntil = floor
	}
}

// shadowPending reports whether the timer still suppresses a recast; an elapsed
// timer is reset.
func (s *Session) shadowPending(now time.Time, sanity time.Duration) bool {
	cur := s.readShadow(now, sanity)
	if cur.IsZero() {
		return false
	}
	if cur.After(now) {
		return true
	}
	s.shadowUntil = time.Time{}
	return false
}
