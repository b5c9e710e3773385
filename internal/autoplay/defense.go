package autoplay

import (
	"log/slog"

	"github.com/udisondev/autoplay/internal/data"
)

// rest runs the sit/stand state machine. Returns true when the tick must stop
// (character sits or just sat down).
func (m *Manager) rest(st *tickState) bool {
	p := st.player
	restHP := int32(m.setting(st, SettingRestHP))
	restSP := int32(m.setting(st, SettingRestSP))
	hp, sp := HPPct(p.Character), SPPct(p.Character)

	if !p.IsSitting() {
		if (restHP > 0 && hp < restHP) || (restSP > 0 && sp < restSP) {
			m.deps.Actions.StopAttack(p)
			m.deps.Actions.Sit(p)
			m.deps.Notifier.Notify(p, "Auto-Defense: resting to recover HP/SP.")
			st.action = "rest"
			return true
		}
		return false
	}

	buffer := int32(m.setting(st, SettingRestBuffer))
	if buffer <= 0 {
		buffer = st.tuning.RestBuffer
	}
	cleared := (restHP <= 0 || hp >= restHP+buffer) && (restSP <= 0 || sp >= restSP+buffer)
	if !cleared {
		st.action = "rest"
		return true
	}
	m.deps.Actions.Stand(p)
	return false
}

// panicThreshold returns ap_tp_mobs, falling back to Config.MaxMobsBeforeTP.
func (m *Manager) panicThreshold(st *tickState) int32 {
	if v := int32(m.setting(st, SettingTPMobs)); v > 0 {
		return v
	}
	return st.cfg.MaxMobsBeforeTP
}

// panicTeleport teleports away when the hostile count reaches the threshold.
// Returns true when a teleport fired.
func (m *Manager) panicTeleport(st *tickState) bool {
	limit := m.panicThreshold(st)
	if limit <= 0 || st.hostiles < limit {
		return false
	}
	if st.spatial.NoTeleport(st.player.MapID()) {
		return false
	}
	if !m.teleport(st) {
		return false
	}
	st.session.idle = 0
	st.action = "panic_teleport"
	m.deps.Notifier.Notify(st.player, "Auto-Defense: too many monsters nearby. Teleporting.")
	slog.Info("autoplay panic teleport",
		"characterID", st.charID,
		"hostiles", st.hostiles,
		"threshold", limit)
	return true
}

// idleThreshold returns ap_idle_cycles, falling back to Config.IdleCyclesBeforeTP.
func (m *Manager) idleThreshold(st *tickState) int32 {
	if v := int32(m.setting(st, SettingIdleCycles)); v > 0 {
		return v
	}
	return st.cfg.IdleCyclesBeforeTP
}

// trackIdle updates the idle counter from the motion result and fires the
// idle teleport when it reaches the threshold.
func (m *Manager) trackIdle(st *tickState, found bool) {
	s := st.session
	if found {
		s.idle = 0
		return
	}
	s.idle++

	limit := m.idleThreshold(st)
	if limit <= 0 || s.idle < limit {
		return
	}
	if !st.spatial.NoTeleport(st.player.MapID()) && m.teleport(st) {
		st.action = "idle_teleport"
		m.deps.Notifier.Notify(st.player, "Auto-Defense: no targets around. Teleporting.")
	}
	s.idle = 0
}

// teleport applies the ap_tp_mode preference. Nothing fires under a cast, attack
// or global delay lock. A present teleport item is never swapped for a direct warp.
func (m *Manager) teleport(st *tickState) bool {
	mode := TeleportMode(m.setting(st, SettingTPMode))
	p := st.player
	if mode == TeleportDisabled || IsActionLocked(p.Character, st.now) {
		return false
	}

	if mode == TeleportItemThenWarp || mode == TeleportItemOnly {
		item := int32(m.setting(st, SettingTPItem))
		if item <= 0 {
			item = data.ItemFlyWing
		}
		if slot := p.Inventory().FindByItemID(item); slot >= 0 {
			return m.deps.Actions.UseItem(p, slot)
		}
		if mode == TeleportItemOnly {
			return false
		}
	}
	return m.deps.Actions.RandomWarp(p)
}
