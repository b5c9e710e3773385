package autoplay

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/autoplay/internal/ai"
	"github.com/udisondev/autoplay/internal/data"
)

func TestOnTick_LordKnightRebuffsAuraBladeFirst(t *testing.T) {
	m, f := newTestManager(t)
	p := f.addPlayer(t, 1, data.JobLordKnight, data.WeaponTwoHandSword, false)
	for _, id := range []int32{data.SkillLKAuraBlade, data.SkillKNTwoHandQuicken, data.SkillLKParrying, data.SkillLKConcentration, data.SkillSMEndure} {
		p.LearnSkill(id, 5)
	}
	f.setAll(1, map[string]int64{
		BuffToggle("aura_blade"):       1,
		BuffToggle("two_hand_quicken"): 1,
		BuffToggle("parrying"):         1,
		BuffToggle("lk_concentration"): 1,
		BuffToggle("endure"):           1,
	})

	next, keep := m.OnTick(context.Background(), 1)
	require.True(t, keep)
	assert.Equal(t, m.Tuning().TickInterval, next)

	require.NotEmpty(t, f.calls)
	first := f.calls[0]
	assert.Equal(t, "cast", first.kind)
	assert.Equal(t, data.SkillLKAuraBlade, first.skill)
	assert.Equal(t, int32(5), first.level)
	assert.Equal(t, p.ObjectID(), first.target)
	assert.Equal(t, 1, f.countKind("cast"), "one buff per tick")

	s, ok := m.Session(1)
	require.True(t, ok)
	assert.Equal(t, f.now.Add(300*time.Millisecond), s.NextSkillAt())
}

func TestOnTick_WizardFireBallOnLockedTarget(t *testing.T) {
	m, f := newTestManager(t)
	p := f.addPlayer(t, 1, data.JobWizard, data.WeaponStaff, false)
	p.LearnSkill(data.SkillMGFireBall, 10)
	f.Set(1, AttackToggle("fire_ball"), 1)

	f.addMonster(101, 52, 50)
	f.addMonster(102, 53, 51)
	f.addMonster(103, 48, 49)
	p.SetTarget(101)

	_, keep := m.OnTick(context.Background(), 1)
	require.True(t, keep)

	require.Len(t, f.calls, 1)
	assert.Equal(t, call{kind: "cast", skill: data.SkillMGFireBall, level: 10, target: 101}, f.calls[0])

	s, _ := m.Session(1)
	assert.Equal(t, f.now.Add(1500*time.Millisecond), s.NextSkillAt())
	assert.Zero(t, f.countKind("attack"))
	assert.Zero(t, f.countKind("walk"))
}

func TestOnTick_RestSitsDown(t *testing.T) {
	m, f := newTestManager(t)
	p := f.addPlayer(t, 1, data.JobKnight, data.WeaponOneHandSword, false)
	p.SetCurrentHP(80)
	f.Set(1, SettingRestHP, 15)

	next, keep := m.OnTick(context.Background(), 1)
	require.True(t, keep)
	assert.Equal(t, m.Tuning().RestDelay, next)
	assert.Equal(t, []string{"stop", "sit"}, f.kinds())
	assert.True(t, p.IsSitting())
	require.Len(t, f.messages, 1)
}

func TestOnTick_IdleTeleportAfterSecondEmptyCycle(t *testing.T) {
	m, f := newTestManager(t)
	f.addPlayer(t, 1, data.JobKnight, data.WeaponOneHandSword, false)
	m.session(1).idle = 1

	_, keep := m.OnTick(context.Background(), 1)
	require.True(t, keep)

	assert.Equal(t, []string{"walk", "warp"}, f.kinds())
	s, _ := m.Session(1)
	assert.Equal(t, int32(0), s.IdleCount())
}

func TestOnTick_ZeroMaxHPCountsAsFull(t *testing.T) {
	m, f := newTestManager(t)
	p := f.addPlayer(t, 1, data.JobKnight, data.WeaponOneHandSword, false)
	p.SetMaxHP(0)
	p.SetCurrentHP(50)
	_, err := p.Inventory().Add(data.ItemWhitePotion, 5)
	require.NoError(t, err)
	_, err = p.Inventory().Add(data.ItemRedPotion, 5)
	require.NoError(t, err)
	f.setAll(1, map[string]int64{SettingHPItem: int64(data.ItemRedPotion), SettingHPPct: 50})

	assert.Equal(t, int32(100), HPPct(p.Character))

	_, keep := m.OnTick(context.Background(), 1)
	require.True(t, keep)
	assert.Zero(t, f.countKind("item"))
}

func TestOnTick_StopsScheduling(t *testing.T) {
	t.Run("unknown character", func(t *testing.T) {
		m, f := newTestManager(t)
		_, keep := m.OnTick(context.Background(), 42)
		assert.False(t, keep)
		assert.Empty(t, f.calls)
	})

	t.Run("dead character disables autoplay", func(t *testing.T) {
		m, f := newTestManager(t)
		p := f.addPlayer(t, 1, data.JobKnight, data.WeaponOneHandSword, false)
		m.session(1).idle = 1
		p.SetCurrentHP(0)

		_, keep := m.OnTick(context.Background(), 1)
		assert.False(t, keep)
		assert.False(t, p.AutoPlay())
		assert.Equal(t, []string{"Auto-Play disabled: character is dead."}, f.messages)
		assert.Empty(t, f.calls)
		assert.Equal(t, int32(0), m.session(1).IdleCount())
	})

	t.Run("autoplay switched off", func(t *testing.T) {
		m, f := newTestManager(t)
		p := f.addPlayer(t, 1, data.JobKnight, data.WeaponOneHandSword, false)
		m.session(1).idle = 1
		p.SetAutoPlay(false)

		_, keep := m.OnTick(context.Background(), 1)
		assert.False(t, keep)
		assert.Empty(t, f.calls)
		assert.Equal(t, int32(0), m.session(1).IdleCount())
	})
}

func TestOnTick_Deterministic(t *testing.T) {
	run := func() ([]call, time.Time) {
		m, f := newTestManager(t)
		p := f.addPlayer(t, 1, data.JobWizard, data.WeaponStaff, false)
		p.LearnSkill(data.SkillMGCold, 10)
		p.LearnSkill(data.SkillMGEnergyCoat, 1)
		f.setAll(1, map[string]int64{AttackToggle("cold_bolt"): 1, BuffToggle("energy_coat"): 1})

		for i := range 6 {
			if i == 2 {
				f.addMonster(200, 55, 55)
			}
			_, _ = m.OnTick(context.Background(), 1)
			f.advance(700 * time.Millisecond)
		}
		s, _ := m.Session(1)
		return f.calls, s.NextSkillAt()
	}

	callsA, nextA := run()
	callsB, nextB := run()
	assert.Equal(t, callsA, callsB)
	assert.Equal(t, nextA, nextB)
}

func TestOnTick_AttackersOnlyCountsTargetingMonsters(t *testing.T) {
	m, f := newTestManager(t)
	p := f.addPlayer(t, 1, data.JobKnight, data.WeaponOneHandSword, false)
	f.setAll(1, map[string]int64{SettingAttackersOnly: 1, SettingTPMobs: 2})

	a := f.addMonster(1, 51, 50)
	f.addMonster(2, 52, 50)
	f.addMonster(3, 53, 50)
	a.SetTarget(p.ObjectID())

	_, _ = m.OnTick(context.Background(), 1)
	assert.Zero(t, f.countKind("warp"), "one attacker is below threshold")

	f.reset()
	f.monsters[2].SetTarget(p.ObjectID())
	next, _ := m.OnTick(context.Background(), 1)
	assert.Equal(t, m.Tuning().TeleportDelay, next)
	assert.Equal(t, 1, f.countKind("warp"))
}

func TestManager_GetOrInitConfig(t *testing.T) {
	m, _ := newTestManager(t)

	cfg := m.GetOrInitConfig(7)
	assert.Equal(t, DefaultMaxMobsBeforeTP, cfg.MaxMobsBeforeTP)
	assert.Equal(t, DefaultIdleCyclesBeforeTP, cfg.IdleCyclesBeforeTP)
	assert.Len(t, cfg.HealPots, 2)

	cfg.UseAspdPots = false
	assert.False(t, m.GetOrInitConfig(7).UseAspdPots, "returns the live config")

	// zero threshold means "not initialized"
	m.GetOrInitConfig(7).MaxMobsBeforeTP = 0
	again := m.GetOrInitConfig(7)
	assert.Equal(t, DefaultMaxMobsBeforeTP, again.MaxMobsBeforeTP)
	assert.True(t, again.UseAspdPots)
}

func TestManager_UpdateConfig(t *testing.T) {
	m, _ := newTestManager(t)

	got := m.UpdateConfig(3, func(c *Config) {
		c.MaxMobsBeforeTP = 4
		c.AspdPotIDs = []int32{data.ItemConcentrationPotion}
	})
	assert.Equal(t, int32(4), got.MaxMobsBeforeTP)

	got.AspdPotIDs[0] = 1
	assert.Equal(t, []int32{data.ItemConcentrationPotion}, m.GetOrInitConfig(3).AspdPotIDs, "returned copy is detached")
}

func TestManager_LoginLogoutPersistsConfig(t *testing.T) {
	ctx := context.Background()
	m, f := newTestManager(t)

	stored := DefaultConfig()
	stored.MaxMobsBeforeTP = 6
	f.stored[5] = &stored

	m.Login(ctx, 5)
	assert.Equal(t, int32(6), m.GetOrInitConfig(5).MaxMobsBeforeTP)

	m.UpdateConfig(5, func(c *Config) { c.IdleCyclesBeforeTP = 9 })
	m.Logout(ctx, 5)

	_, ok := m.Session(5)
	assert.False(t, ok, "session evicted")
	require.Contains(t, f.stored, int64(5))
	assert.Equal(t, int32(9), f.stored[5].IdleCyclesBeforeTP)
	assert.Equal(t, int32(6), f.stored[5].MaxMobsBeforeTP)
}

func TestManager_SaveAll(t *testing.T) {
	m, f := newTestManager(t)
	m.UpdateConfig(1, func(c *Config) { c.MaxMobsBeforeTP = 3 })
	m.UpdateConfig(2, func(c *Config) { c.MaxMobsBeforeTP = 4 })

	m.SaveAll(context.Background())
	require.Len(t, f.stored, 2)
	assert.Equal(t, int32(3), f.stored[1].MaxMobsBeforeTP)
	assert.Equal(t, int32(4), f.stored[2].MaxMobsBeforeTP)
	assert.Equal(t, 2, m.SessionCount())
}

func TestManager_SetTuning(t *testing.T) {
	m, f := newTestManager(t)
	f.addPlayer(t, 1, data.JobKnight, data.WeaponOneHandSword, false)

	tuning := DefaultTuning()
	tuning.TickInterval = 2 * time.Second
	m.SetTuning(tuning)

	next, keep := m.OnTick(context.Background(), 1)
	require.True(t, keep)
	assert.Equal(t, 2*time.Second, next)
}

func TestManager_ControllerWithTickManager(t *testing.T) {
	ctx := context.Background()
	m, f := newTestManager(t)
	p := f.addPlayer(t, 1, data.JobKnight, data.WeaponOneHandSword, false)
	f.addMonster(10, 51, 51)

	tm := ai.NewTickManager(ai.DefaultResolution)
	tm.Register(1, m.Controller(1))

	assert.Equal(t, 1, tm.RunDue(ctx, f.now))
	assert.Equal(t, uint32(10), p.Target())

	// not due yet
	assert.Equal(t, 0, tm.RunDue(ctx, f.now.Add(100*time.Millisecond)))

	p.SetAutoPlay(false)
	assert.Equal(t, 1, tm.RunDue(ctx, f.now.Add(time.Second)))
	assert.False(t, tm.Has(1), "controller dropped once autoplay is off")
}
