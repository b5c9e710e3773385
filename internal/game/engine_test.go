package game

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/autoplay/internal/data"
	"github.com/udisondev/autoplay/internal/game/itemhandler"
	"github.com/udisondev/autoplay/internal/model"
	"github.com/udisondev/autoplay/internal/world"
)

func init() {
	data.MustLoadForTests()
	itemhandler.Init()
}

var testNow = time.Unix(1_700_000_000, 0)

type fixture struct {
	world  *world.World
	field  *world.GameMap
	engine *Engine
	player *model.Player
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	w := world.New()
	field, err := w.AddMap(1, "prt_fild08", 100, 100)
	require.NoError(t, err)

	p, err := model.NewPlayer(w.IDs().NextPlayerID(), 1, "Tester", data.JobWizard, model.NewLocation(1, 50, 50), 99, 1000, 500)
	require.NoError(t, err)
	require.NoError(t, w.AddPlayer(p))

	return &fixture{
		world:  w,
		field:  field,
		engine: NewEngine(w, rand.New(rand.NewPCG(1, 2)), func() time.Time { return testNow }),
		player: p,
	}
}

func (f *fixture) spawn(t *testing.T, x, y int32) *model.Monster {
	t.Helper()
	m := model.NewMonster(f.world.IDs().NextMonsterID(), 1002, "Poring", model.NewLocation(1, x, y), 1, 50)
	require.NoError(t, f.world.AddMonster(m))
	return m
}

func TestEngine_Lookups(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	live := f.spawn(t, 52, 50)
	dead := f.spawn(t, 53, 50)
	dead.SetCurrentHP(0)
	f.spawn(t, 90, 90)

	got, ok := f.engine.Player(1)
	require.True(t, ok)
	assert.Same(t, f.player, got)

	var seen []uint32
	f.engine.ForEachHostile(f.player.Location(), 5, func(m *model.Monster) bool {
		seen = append(seen, m.ObjectID())
		return true
	})
	assert.Equal(t, []uint32{live.ObjectID()}, seen)

	h, ok := f.engine.Hostile(dead.ObjectID())
	require.True(t, ok)
	assert.Same(t, dead, h)

	assert.False(t, f.engine.NoTeleport(1))
	assert.True(t, f.engine.NoTeleport(42))
	f.field.SetWater(10, 10, true)
	assert.True(t, f.engine.IsWater(model.NewLocation(1, 10, 10)))
	assert.Equal(t, testNow, f.engine.Now())
}

func TestEngine_CastOnTarget(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	m := f.spawn(t, 55, 50)
	f.player.LearnSkill(data.SkillMGFireBall, 10)

	assert.False(t, f.engine.CastOnTarget(f.player, data.SkillMGCold, 1, m.ObjectID()), "not learned")
	require.True(t, f.engine.CastOnTarget(f.player, data.SkillMGFireBall, 10, m.ObjectID()))
	assert.True(t, f.player.CastLockUntil().After(testNow))
	assert.Equal(t, f.player.ObjectID(), m.Target())
}

func TestEngine_UseItem(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.player.SetCurrentHP(100)
	slot, err := f.player.Inventory().Add(data.ItemRedPotion, 2)
	require.NoError(t, err)

	require.True(t, f.engine.UseItem(f.player, slot))
	assert.GreaterOrEqual(t, f.player.CurrentHP(), int32(145))
	assert.LessOrEqual(t, f.player.CurrentHP(), int32(165))
	assert.Equal(t, int32(1), f.player.Inventory().CountOf(data.ItemRedPotion))

	f.player.SetCastLockUntil(testNow.Add(time.Second))
	assert.False(t, f.engine.UseItem(f.player, slot), "casting blocks items")
	assert.False(t, f.engine.UseItem(f.player, slot+1), "empty slot")
}

func TestEngine_UseFlyWing(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.player.SetTarget(777)
	slot, err := f.player.Inventory().Add(data.ItemFlyWing, 1)
	require.NoError(t, err)

	require.True(t, f.engine.UseItem(f.player, slot))
	assert.Zero(t, f.player.Inventory().CountOf(data.ItemFlyWing))
	assert.Zero(t, f.player.Target(), "warp drops the target")
	assert.Equal(t, int32(1), f.player.MapID())
}

func TestEngine_Attack(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	m := f.spawn(t, 55, 53)
	f.player.SetSitting(true)

	require.True(t, f.engine.Attack(f.player, m.ObjectID()))
	assert.Equal(t, model.NewLocation(1, 54, 52), f.player.Location())
	assert.Equal(t, m.ObjectID(), f.player.Target())
	assert.Equal(t, f.player.ObjectID(), m.Target())
	assert.False(t, f.player.IsSitting())
	assert.Equal(t, testNow.Add(DefaultAttackDelay), f.player.AttackLockUntil())

	assert.False(t, f.engine.Attack(f.player, m.ObjectID()), "attack delay")
}

func TestEngine_AttackRejects(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	_, err := f.world.AddMap(2, "other", 50, 50)
	require.NoError(t, err)

	dead := f.spawn(t, 51, 50)
	dead.SetCurrentHP(0)
	elsewhere := model.NewMonster(f.world.IDs().NextMonsterID(), 1002, "Poring", model.NewLocation(2, 5, 5), 1, 50)
	require.NoError(t, f.world.AddMonster(elsewhere))

	assert.False(t, f.engine.Attack(f.player, dead.ObjectID()))
	assert.False(t, f.engine.Attack(f.player, elsewhere.ObjectID()))
	assert.False(t, f.engine.Attack(f.player, 12345))
	assert.Zero(t, f.player.Target())
}

func TestEngine_WalkTo(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.player.SetSitting(true)

	require.True(t, f.engine.WalkTo(f.player, model.NewLocation(1, 53, 48)))
	assert.Equal(t, model.NewLocation(1, 53, 48), f.player.Location())
	assert.False(t, f.player.IsSitting())
	assert.Equal(t, testNow.Add(3*DefaultWalkCellDelay), f.player.CanMoveAt())

	assert.False(t, f.engine.WalkTo(f.player, model.NewLocation(1, 55, 48)), "still moving")

	f.player.SetCanMoveAt(time.Time{})
	require.True(t, f.engine.WalkTo(f.player, model.NewLocation(1, 150, -4)))
	assert.Equal(t, model.NewLocation(1, 99, 0), f.player.Location(), "clamped to map")
}

func TestEngine_RandomWarp(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.field.SetNoTeleport(true)
	assert.False(t, f.engine.RandomWarp(f.player))
	assert.Equal(t, model.NewLocation(1, 50, 50), f.player.Location())

	f.field.SetNoTeleport(false)
	require.True(t, f.engine.RandomWarp(f.player))
	loc := f.player.Location()
	assert.Equal(t, int32(1), loc.MapID)
	assert.True(t, loc.X >= 0 && loc.X < 100 && loc.Y >= 0 && loc.Y < 100)
}

func TestEngine_SitStandNotify(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.player.SetTarget(5)

	f.engine.StopAttack(f.player)
	f.engine.Sit(f.player)
	assert.Zero(t, f.player.Target())
	assert.True(t, f.player.IsSitting())

	f.engine.Stand(f.player)
	assert.False(t, f.player.IsSitting())

	f.engine.Notify(f.player, "Auto-Play disabled: character is dead.")
	assert.Equal(t, "Auto-Play disabled: character is dead.", f.player.LastAdminMessage())
}

func TestEngine_Roll(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	for range 100 {
		v := f.engine.roll(45, 65)
		assert.True(t, v >= 45 && v <= 65, "roll %d out of range", v)
	}
	assert.Equal(t, int32(7), f.engine.roll(7, 7))
}
