package autoplay

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/udisondev/autoplay/internal/ai"
	"github.com/udisondev/autoplay/internal/telemetry"
)

// Deps — внешние коллабораторы движка.
type Deps struct {
	Players  Players
	Spatial  Spatial
	Actions  Actions
	Notifier Notifier
	Settings Settings
	Clock    Clock
	Store    ConfigStore // may be nil
	Rand     *rand.Rand  // nil = seeded from runtime
}

// Manager drives autoplay for all characters.
type Manager struct {
	deps     Deps
	chains   Chains
	tuning   atomic.Pointer[Tuning]
	sessions sync.Map // characterID → *Session
	tracer   trace.Tracer

	rndMu sync.Mutex
	rnd   *rand.Rand
}

// NewManager creates a manager; rule chains are built here once.
func NewManager(deps Deps, tuning Tuning) *Manager {
	if deps.Clock == nil {
		deps.Clock = SystemClock{}
	}
	rnd := deps.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	m := &Manager{
		deps:   deps,
		chains: BuildChains(),
		tracer: telemetry.Tracer(),
		rnd:    rnd,
	}
	m.tuning.Store(&tuning)
	return m
}

// SetTuning swaps timings; the next tick picks them up.
func (m *Manager) SetTuning(t Tuning) {
	m.tuning.Store(&t)
	slog.Info("autoplay tuning updated",
		"tickInterval", t.TickInterval,
		"searchRadius", t.SearchRadius)
}

// Tuning returns current timings.
func (m *Manager) Tuning() Tuning {
	return *m.tuning.Load()
}

// session returns the session of charID, creating it with defaults.
func (m *Manager) session(charID int64) *Session {
	if v, ok := m.sessions.Load(charID); ok {
		return v.(*Session)
	}
	def := m.Tuning().Defaults
	v, _ := m.sessions.LoadOrStore(charID, newSession(charID, *def.Clone()))
	return v.(*Session)
}

// Session returns the session of charID if one exists.
func (m *Manager) Session(charID int64) (*Session, bool) {
	v, ok := m.sessions.Load(charID)
	if !ok {
		return nil, false
	}
	return v.(*Session), true
}

// SessionCount returns the number of live sessions.
func (m *Manager) SessionCount() int {
	n := 0
	m.sessions.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// GetOrInitConfig returns the live config of charID, creating it on first access.
// A config with MaxMobsBeforeTP == 0 gets defaults re-applied.
// Callers on other goroutines than the tick loop must use UpdateConfig.
func (m *Manager) GetOrInitConfig(charID int64) *Config {
	s := m.session(charID)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cfg.MaxMobsBeforeTP == 0 {
		s.cfg.applyDefaults(m.Tuning().Defaults)
	}
	return &s.cfg
}

// UpdateConfig mutates the config of charID under the session lock and returns a copy.
func (m *Manager) UpdateConfig(charID int64, fn func(*Config)) Config {
	s := m.session(charID)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cfg.MaxMobsBeforeTP == 0 {
		s.cfg.applyDefaults(m.Tuning().Defaults)
	}
	fn(&s.cfg)
	return *s.cfg.Clone()
}

// Login loads the stored config of charID into a fresh session.
func (m *Manager) Login(ctx context.Context, charID int64) {
	s := m.session(charID)
	if m.deps.Store == nil {
		return
	}
	cfg, err := m.deps.Store.LoadConfig(ctx, charID)
	if err != nil {
		slog.Error("loading autoplay config", "characterID", charID, "error", err)
		return
	}
	if cfg == nil {
		return
	}
	s.mu.Lock()
	s.cfg = *cfg.Clone()
	s.mu.Unlock()
}

// Logout saves the config and evicts the session.
func (m *Manager) Logout(ctx context.Context, charID int64) {
	v, ok := m.sessions.LoadAndDelete(charID)
	if !ok || m.deps.Store == nil {
		return
	}
	s := v.(*Session)
	cfg := s.config()
	if err := m.deps.Store.SaveConfig(ctx, charID, &cfg); err != nil {
		slog.Error("saving autoplay config", "characterID", charID, "error", err)
	}
}

// SaveAll persists configs of every live session.
func (m *Manager) SaveAll(ctx context.Context) {
	if m.deps.Store == nil {
		return
	}
	m.sessions.Range(func(key, value any) bool {
		s := value.(*Session)
		cfg := s.config()
		if err := m.deps.Store.SaveConfig(ctx, s.charID, &cfg); err != nil {
			slog.Error("saving autoplay config", "characterID", s.charID, "error", err)
		}
		return true
	})
}

// Controller adapts OnTick of charID to the tick manager.
func (m *Manager) Controller(charID int64) ai.Controller {
	return ai.ControllerFunc(func(ctx context.Context) (time.Duration, bool) {
		return m.OnTick(ctx, charID)
	})
}

// OnTick runs one evaluation pass for charID and returns the delay until the next
// one. keep=false means autoplay is off (or the character is gone) and the
// caller stops scheduling.
func (m *Manager) OnTick(ctx context.Context, charID int64) (next time.Duration, keep bool) {
	_, span := m.tracer.Start(ctx, "autoplay.tick",
		trace.WithAttributes(attribute.Int64("character.id", charID)))
	defer span.End()

	p, ok := m.deps.Players.Player(charID)
	if !ok {
		span.SetAttributes(attribute.String("autoplay.action", "offline"))
		return 0, false
	}
	s := m.session(charID)

	if p.IsDead() {
		p.SetAutoPlay(false)
		s.idle = 0
		m.deps.Notifier.Notify(p, "Auto-Play disabled: character is dead.")
		slog.Info("autoplay disabled on death", "characterID", charID)
		span.SetAttributes(attribute.String("autoplay.action", "dead"))
		return 0, false
	}
	if !p.AutoPlay() {
		s.idle = 0
		span.SetAttributes(attribute.String("autoplay.action", "disabled"))
		return 0, false
	}

	tuning := m.Tuning()
	st := &tickState{
		now:     m.deps.Clock.Now(),
		charID:  charID,
		player:  p,
		session: s,
		cfg:     s.config(),
		tuning:  tuning,
		chain:   m.chains.For(p.Job(), p.WeaponType(), p.HasShield()),
		spatial: m.deps.Spatial,
		action:  "idle",
	}
	defer func() {
		span.SetAttributes(
			attribute.String("autoplay.action", st.action),
			attribute.Int("autoplay.hostiles", int(st.hostiles)),
		)
	}()

	if m.rest(st) {
		return tuning.RestDelay, true
	}

	m.rebuff(st)
	m.consumables(st)
	m.autoPots(st)

	radius := m.searchRadius(st)
	if tuning.AttackersOnly || m.setting(st, SettingAttackersOnly) != 0 {
		st.hostiles = CountAttackers(st.spatial, p, radius)
	} else {
		st.hostiles = CountNearbyHostiles(st.spatial, p, radius)
	}

	if m.panicTeleport(st) {
		return tuning.TeleportDelay, true
	}

	if !m.offensive(st) {
		found := m.motion(st)
		m.trackIdle(st, found)
	}
	return tuning.TickInterval, true
}
