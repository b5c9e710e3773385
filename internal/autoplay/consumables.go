package autoplay

import "github.com/udisondev/autoplay/internal/data"

// bonusItem — расходник с фиксированным эффектом и своим тумблером.
type bonusItem struct {
	setting string
	itemID  int32
	status  data.StatusType
}

var bonusItems = []bonusItem{
	{setting: SettingUseExpManual, itemID: data.ItemBattleManual, status: data.StatusExpBoost},
	{setting: SettingUseJobManual, itemID: data.ItemJobManual, status: data.StatusJobExpBoost},
	{setting: SettingUseBubbleGum, itemID: data.ItemBubbleGum, status: data.StatusItemBoost},
}

// consumables runs the setting-driven item rules. Each rule is independent.
func (m *Manager) consumables(st *tickState) {
	p := st.player

	if id := int32(m.setting(st, SettingAspdItem)); id > 0 && !HasAspdPotion(p.Character) {
		m.useFirst(st, id)
	}

	for _, b := range bonusItems {
		if m.setting(st, b.setting) == 0 || p.HasStatus(b.status) {
			continue
		}
		m.useFirst(st, b.itemID)
	}

	m.healBySetting(st, &st.session.hp, SettingHPItem, SettingHPPct, SettingHPTarget, HPPct(p.Character))
	m.healBySetting(st, &st.session.sp, SettingSPItem, SettingSPPct, SettingSPTarget, SPPct(p.Character))
}

// healBySetting applies one hysteresis latch: set at pct <= trigger, cleared above
// the upper bound (target when set, else trigger) or when the item runs out.
func (m *Manager) healBySetting(st *tickState, latch *bool, itemKey, pctKey, targetKey string, pct int32) {
	item := int32(m.setting(st, itemKey))
	trigger := int32(m.setting(st, pctKey))
	if item <= 0 || trigger <= 0 {
		*latch = false
		return
	}
	upper := trigger
	if t := int32(m.setting(st, targetKey)); t > trigger {
		upper = t
	}

	switch {
	case pct <= trigger:
		*latch = true
	case pct > upper:
		*latch = false
	}
	if !*latch {
		return
	}
	if _, present := m.useItem(st, item); !present {
		*latch = false
	}
}

// autoPots runs the Config-driven ASPD and heal pot lists.
func (m *Manager) autoPots(st *tickState) {
	p := st.player
	cfg := &st.cfg

	if cfg.UseAspdPots && !HasAspdPotion(p.Character) && !IsLocked(p.Character, st.now) {
		for _, id := range cfg.AspdPotIDs {
			if id > 0 && m.useFirst(st, id) {
				break
			}
		}
	}

	if !cfg.UseHealPots {
		return
	}
	hp, sp := HPPct(p.Character), SPPct(p.Character)
	inv := p.Inventory()
	var havePotHP, havePotSP bool

	for _, pot := range cfg.HealPots {
		if pot.ItemID <= 0 {
			continue
		}
		pct, latch, have := hp, &st.session.potHP, &havePotHP
		if pot.IsSP {
			pct, latch, have = sp, &st.session.potSP, &havePotSP
		}
		if inv.FindByItemID(pot.ItemID) >= 0 {
			*have = true
		}

		switch {
		case pct <= pot.TriggerPct:
			*latch = true
		case pct >= pot.TargetPct:
			*latch = false
		}
		if !*latch {
			continue
		}
		if m.useFirst(st, pot.ItemID) {
			// one pot per tick
			return
		}
	}

	// kind exhausted
	if !havePotHP {
		st.session.potHP = false
	}
	if !havePotSP {
		st.session.potSP = false
	}
}

// useFirst consumes one unit of itemID if present and no action lock is active.
func (m *Manager) useFirst(st *tickState, itemID int32) bool {
	used, _ := m.useItem(st, itemID)
	return used
}

func (m *Manager) useItem(st *tickState, itemID int32) (used, present bool) {
	p := st.player
	slot := p.Inventory().FindByItemID(itemID)
	if slot < 0 {
		return false, false
	}
	if IsLocked(p.Character, st.now) {
		return false, true
	}
	return m.deps.Actions.UseItem(p, slot), true
}

func (m *Manager) setting(st *tickState, name string) int64 {
	return m.deps.Settings.Get(st.charID, name)
}
