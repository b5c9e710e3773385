package autoplay

import (
	"context"
	"math/rand/v2"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/udisondev/autoplay/internal/data"
	"github.com/udisondev/autoplay/internal/model"
)

const testMap int32 = 1

// call — одно действие, отправленное движку.
type call struct {
	kind   string // cast, cast_at, item, attack, walk, stop, sit, stand, warp
	skill  int32
	level  int32
	target uint32
	itemID int32
	loc    model.Location
}

// fakeEngine implements every collaborator over plain maps and records actions.
type fakeEngine struct {
	now        time.Time
	players    map[int64]*model.Player
	monsters   map[uint32]*model.Monster
	water      map[model.Location]bool
	noTeleport map[int32]bool
	vars       map[int64]map[string]int64
	calls      []call
	messages   []string

	castLock   time.Duration // applied to the caster on a successful cast
	rejectCast bool
	stored     map[int64]*Config
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		now:        time.Unix(1_700_000_000, 0),
		players:    make(map[int64]*model.Player),
		monsters:   make(map[uint32]*model.Monster),
		water:      make(map[model.Location]bool),
		noTeleport: make(map[int32]bool),
		vars:       make(map[int64]map[string]int64),
		stored:     make(map[int64]*Config),
	}
}

// Players
func (f *fakeEngine) Player(charID int64) (*model.Player, bool) {
	p, ok := f.players[charID]
	return p, ok
}

// Spatial
func (f *fakeEngine) ForEachHostile(center model.Location, radius int32, fn func(*model.Monster) bool) {
	ids := make([]uint32, 0, len(f.monsters))
	for id := range f.monsters {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		m := f.monsters[id]
		if !m.Location().InSquare(center, radius) {
			continue
		}
		if !fn(m) {
			return
		}
	}
}

func (f *fakeEngine) Hostile(objectID uint32) (*model.Monster, bool) {
	m, ok := f.monsters[objectID]
	return m, ok
}

func (f *fakeEngine) NoTeleport(mapID int32) bool     { return f.noTeleport[mapID] }
func (f *fakeEngine) IsWater(loc model.Location) bool { return f.water[loc] }

// Actions
func (f *fakeEngine) CastOnTarget(p *model.Player, skillID, level int32, targetID uint32) bool {
	if f.rejectCast {
		return false
	}
	f.calls = append(f.calls, call{kind: "cast", skill: skillID, level: level, target: targetID})
	f.applyCast(p, skillID, level)
	return true
}

func (f *fakeEngine) CastAt(p *model.Player, skillID, level int32, loc model.Location) bool {
	if f.rejectCast {
		return false
	}
	f.calls = append(f.calls, call{kind: "cast_at", skill: skillID, level: level, loc: loc})
	f.applyCast(p, skillID, level)
	return true
}

func (f *fakeEngine) applyCast(p *model.Player, skillID, level int32) {
	if tmpl := data.GetSkillTemplate(skillID, level); tmpl != nil {
		p.ConsumeSP(tmpl.SPCost)
	}
	if f.castLock > 0 {
		p.SetCastLockUntil(f.now.Add(f.castLock))
	}
}

func (f *fakeEngine) UseItem(p *model.Player, slot int) bool {
	it := p.Inventory().At(slot)
	if it == nil {
		return false
	}
	if _, err := p.Inventory().Consume(slot); err != nil {
		return false
	}
	f.calls = append(f.calls, call{kind: "item", itemID: it.ItemID()})
	return true
}

func (f *fakeEngine) Attack(p *model.Player, targetID uint32) bool {
	p.SetTarget(targetID)
	f.calls = append(f.calls, call{kind: "attack", target: targetID})
	return true
}

func (f *fakeEngine) WalkTo(p *model.Player, loc model.Location) bool {
	f.calls = append(f.calls, call{kind: "walk", loc: loc})
	return true
}

func (f *fakeEngine) StopAttack(p *model.Player) {
	f.calls = append(f.calls, call{kind: "stop"})
}

func (f *fakeEngine) Sit(p *model.Player) {
	p.SetSitting(true)
	f.calls = append(f.calls, call{kind: "sit"})
}

func (f *fakeEngine) Stand(p *model.Player) {
	p.SetSitting(false)
	f.calls = append(f.calls, call{kind: "stand"})
}

func (f *fakeEngine) RandomWarp(p *model.Player) bool {
	f.calls = append(f.calls, call{kind: "warp"})
	return true
}

// Notifier
func (f *fakeEngine) Notify(p *model.Player, msg string) {
	f.messages = append(f.messages, msg)
}

// Settings
func (f *fakeEngine) Get(charID int64, name string) int64 {
	return f.vars[charID][name]
}

func (f *fakeEngine) Set(charID int64, name string, value int64) {
	if f.vars[charID] == nil {
		f.vars[charID] = make(map[string]int64)
	}
	f.vars[charID][name] = value
}

// Clock
func (f *fakeEngine) Now() time.Time { return f.now }

// ConfigStore
func (f *fakeEngine) LoadConfig(_ context.Context, charID int64) (*Config, error) {
	cfg, ok := f.stored[charID]
	if !ok {
		return nil, nil
	}
	return cfg.Clone(), nil
}

func (f *fakeEngine) SaveConfig(_ context.Context, charID int64, cfg *Config) error {
	f.stored[charID] = cfg.Clone()
	return nil
}

func (f *fakeEngine) advance(d time.Duration) { f.now = f.now.Add(d) }

func (f *fakeEngine) reset() { f.calls = nil; f.messages = nil }

// kinds returns recorded call kinds in order.
func (f *fakeEngine) kinds() []string {
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, c.kind)
	}
	return out
}

func (f *fakeEngine) countKind(kind string) int {
	n := 0
	for _, c := range f.calls {
		if c.kind == kind {
			n++
		}
	}
	return n
}

func (f *fakeEngine) addPlayer(t *testing.T, charID int64, job data.Job, weapon data.WeaponType, shield bool) *model.Player {
	t.Helper()
	p, err := model.NewPlayer(uint32(0x10000000+charID), charID, "Tester", job, model.NewLocation(testMap, 50, 50), 99, 1000, 1000)
	require.NoError(t, err)
	p.Equip(weapon, shield)
	p.SetAutoPlay(true)
	f.players[charID] = p
	return p
}

func (f *fakeEngine) addMonster(id uint32, x, y int32) *model.Monster {
	m := model.NewMonster(id, 1002, "Poring", model.NewLocation(testMap, x, y), 1, 50)
	f.monsters[id] = m
	return m
}

// setAll sets several settings for one character.
func (f *fakeEngine) setAll(charID int64, kv map[string]int64) {
	for k, v := range kv {
		f.Set(charID, k, v)
	}
}

func newTestManager(t *testing.T) (*Manager, *fakeEngine) {
	t.Helper()
	data.MustLoadForTests()

	f := newFakeEngine()
	m := NewManager(Deps{
		Players:  f,
		Spatial:  f,
		Actions:  f,
		Notifier: f,
		Settings: f,
		Clock:    f,
		Store:    f,
		Rand:     rand.New(rand.NewPCG(1, 2)),
	}, DefaultTuning())
	return m, f
}

// stateFor builds the tick snapshot the way OnTick does, for stage-level tests.
func stateFor(m *Manager, f *fakeEngine, charID int64) *tickState {
	p := f.players[charID]
	s := m.session(charID)
	return &tickState{
		now:     f.now,
		charID:  charID,
		player:  p,
		session: s,
		cfg:     s.config(),
		tuning:  m.Tuning(),
		chain:   m.chains.For(p.Job(), p.WeaponType(), p.HasShield()),
		spatial: f,
		action:  "idle",
	}
}
