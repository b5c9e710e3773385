package autoplay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/autoplay/internal/data"
	"github.com/udisondev/autoplay/internal/model"
)

func give(t *testing.T, p *model.Player, itemID, count int32) {
	t.Helper()
	_, err := p.Inventory().Add(itemID, count)
	require.NoError(t, err)
}

func TestConsumables_HPSettingHysteresis(t *testing.T) {
	m, f := newTestManager(t)
	p := f.addPlayer(t, 1, data.JobKnight, data.WeaponOneHandSword, false)
	give(t, p, data.ItemRedPotion, 20)
	f.setAll(1, map[string]int64{
		SettingHPItem:   int64(data.ItemRedPotion),
		SettingHPPct:    40,
		SettingHPTarget: 70,
	})

	steps := []struct {
		hp   int32
		used bool
	}{
		{500, false}, // above trigger, latch off
		{400, true},  // trigger reached
		{600, true},  // latched until target
		{700, true},  // target itself is not "above"
		{710, false}, // cleared
		{600, false}, // stays off until trigger
		{390, true},
	}
	for i, step := range steps {
		f.reset()
		p.SetCurrentHP(step.hp)
		m.consumables(stateFor(m, f, 1))
		assert.Equal(t, step.used, f.countKind("item") == 1, "step %d hp=%d", i, step.hp)
	}
}

func TestConsumables_TargetBelowTriggerUsesTrigger(t *testing.T) {
	m, f := newTestManager(t)
	p := f.addPlayer(t, 1, data.JobKnight, data.WeaponOneHandSword, false)
	give(t, p, data.ItemBluePotion, 5)
	f.setAll(1, map[string]int64{
		SettingSPItem:   int64(data.ItemBluePotion),
		SettingSPPct:    30,
		SettingSPTarget: 10,
	})

	p.SetCurrentSP(300)
	m.consumables(stateFor(m, f, 1))
	assert.Equal(t, 1, f.countKind("item"))

	f.reset()
	p.SetCurrentSP(310)
	m.consumables(stateFor(m, f, 1))
	assert.Zero(t, f.countKind("item"))
}

func TestConsumables_LatchClearsWhenItemRunsOut(t *testing.T) {
	m, f := newTestManager(t)
	p := f.addPlayer(t, 1, data.JobKnight, data.WeaponOneHandSword, false)
	give(t, p, data.ItemRedPotion, 1)
	f.setAll(1, map[string]int64{
		SettingHPItem:   int64(data.ItemRedPotion),
		SettingHPPct:    40,
		SettingHPTarget: 80,
	})

	p.SetCurrentHP(300)
	m.consumables(stateFor(m, f, 1))
	assert.True(t, m.session(1).hp)

	m.consumables(stateFor(m, f, 1))
	assert.False(t, m.session(1).hp, "no potion left")

	// restocked above trigger: latch stays off
	f.reset()
	give(t, p, data.ItemRedPotion, 1)
	p.SetCurrentHP(600)
	m.consumables(stateFor(m, f, 1))
	assert.Zero(t, f.countKind("item"))
}

func TestConsumables_ActionLocksBlockItems(t *testing.T) {
	locks := []struct {
		name string
		set  func(p *model.Player, until time.Time)
	}{
		{"cast", func(p *model.Player, u time.Time) { p.SetCastLockUntil(u) }},
		{"attack", func(p *model.Player, u time.Time) { p.SetAttackLockUntil(u) }},
		{"global delay", func(p *model.Player, u time.Time) { p.SetCanActAt(u) }},
		{"movement", func(p *model.Player, u time.Time) { p.SetCanMoveAt(u) }},
	}
	for _, lock := range locks {
		t.Run(lock.name, func(t *testing.T) {
			m, f := newTestManager(t)
			p := f.addPlayer(t, 1, data.JobKnight, data.WeaponOneHandSword, false)
			give(t, p, data.ItemRedPotion, 5)
			give(t, p, data.ItemBerserkPotion, 1)
			f.setAll(1, map[string]int64{
				SettingHPItem:   int64(data.ItemRedPotion),
				SettingHPPct:    50,
				SettingAspdItem: int64(data.ItemBerserkPotion),
			})
			p.SetCurrentHP(200)
			lock.set(p, f.now.Add(time.Second))

			st := stateFor(m, f, 1)
			m.consumables(st)
			m.autoPots(st)
			assert.Zero(t, f.countKind("item"))
			assert.True(t, m.session(1).hp, "latch survives the lock")

			f.advance(time.Second)
			m.consumables(stateFor(m, f, 1))
			assert.Equal(t, 2, f.countKind("item"), "aspd and heal once unlocked")
		})
	}
}

func TestConsumables_AspdSettingItem(t *testing.T) {
	m, f := newTestManager(t)
	p := f.addPlayer(t, 1, data.JobKnight, data.WeaponOneHandSword, false)
	give(t, p, data.ItemAwakeningPotion, 2)
	f.Set(1, SettingAspdItem, int64(data.ItemAwakeningPotion))

	m.consumables(stateFor(m, f, 1))
	require.Equal(t, 1, f.countKind("item"))
	assert.Equal(t, data.ItemAwakeningPotion, f.calls[0].itemID)

	f.reset()
	p.AddStatus(data.StatusAspdPotion1, f.now.Add(time.Minute))
	m.consumables(stateFor(m, f, 1))
	assert.Zero(t, f.countKind("item"), "any tier active blocks the next one")
}

func TestConsumables_BonusItems(t *testing.T) {
	m, f := newTestManager(t)
	p := f.addPlayer(t, 1, data.JobKnight, data.WeaponOneHandSword, false)
	give(t, p, data.ItemBattleManual, 1)
	give(t, p, data.ItemJobManual, 1)
	give(t, p, data.ItemBubbleGum, 1)
	f.setAll(1, map[string]int64{SettingUseExpManual: 1, SettingUseBubbleGum: 1})
	p.AddStatus(data.StatusItemBoost, time.Time{})

	m.consumables(stateFor(m, f, 1))
	require.Len(t, f.calls, 1)
	assert.Equal(t, data.ItemBattleManual, f.calls[0].itemID)
}

func TestAutoPots_AspdListOrder(t *testing.T) {
	m, f := newTestManager(t)
	p := f.addPlayer(t, 1, data.JobKnight, data.WeaponOneHandSword, false)
	give(t, p, data.ItemConcentrationPotion, 1)
	give(t, p, data.ItemAwakeningPotion, 1)

	m.autoPots(stateFor(m, f, 1))
	require.Len(t, f.calls, 1)
	assert.Equal(t, data.ItemAwakeningPotion, f.calls[0].itemID, "first present id in list order")

	f.reset()
	m.UpdateConfig(1, func(c *Config) { c.UseAspdPots = false })
	m.autoPots(stateFor(m, f, 1))
	assert.Empty(t, f.calls)
}

func TestAutoPots_EntryHysteresis(t *testing.T) {
	m, f := newTestManager(t)
	p := f.addPlayer(t, 1, data.JobKnight, data.WeaponOneHandSword, false)
	give(t, p, data.ItemWhitePotion, 20)

	steps := []struct {
		hp   int32
		used bool
	}{
		{600, false},
		{500, true},
		{800, true},
		{900, false}, // target reached
		{600, false},
	}
	for i, step := range steps {
		f.reset()
		p.SetCurrentHP(step.hp)
		m.autoPots(stateFor(m, f, 1))
		assert.Equal(t, step.used, f.countKind("item") == 1, "step %d hp=%d", i, step.hp)
	}
}

func TestAutoPots_OnePotPerTick(t *testing.T) {
	m, f := newTestManager(t)
	p := f.addPlayer(t, 1, data.JobKnight, data.WeaponOneHandSword, false)
	give(t, p, data.ItemWhitePotion, 5)
	give(t, p, data.ItemBluePotion, 5)
	p.SetCurrentHP(100)
	p.SetCurrentSP(100)

	m.autoPots(stateFor(m, f, 1))
	require.Len(t, f.calls, 1)
	assert.Equal(t, data.ItemWhitePotion, f.calls[0].itemID)

	p.SetCurrentHP(950)
	f.reset()
	m.autoPots(stateFor(m, f, 1))
	require.Len(t, f.calls, 1)
	assert.Equal(t, data.ItemBluePotion, f.calls[0].itemID)
}

func TestAutoPots_ExhaustedKindClearsLatch(t *testing.T) {
	m, f := newTestManager(t)
	p := f.addPlayer(t, 1, data.JobKnight, data.WeaponOneHandSword, false)
	give(t, p, data.ItemWhitePotion, 1)
	p.SetCurrentHP(300)

	m.autoPots(stateFor(m, f, 1))
	assert.Equal(t, 1, f.countKind("item"))

	m.autoPots(stateFor(m, f, 1))
	assert.False(t, m.session(1).potHP)

	m.UpdateConfig(1, func(c *Config) { c.UseHealPots = false })
	f.reset()
	give(t, p, data.ItemWhitePotion, 1)
	m.autoPots(stateFor(m, f, 1))
	assert.Empty(t, f.calls)
}
