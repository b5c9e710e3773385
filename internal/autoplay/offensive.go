package autoplay

import (
	"log/slog"
	"time"

	"github.com/udisondev/autoplay/internal/ai"
	"github.com/udisondev/autoplay/internal/data"
	"github.com/udisondev/autoplay/internal/model"
)

// minAttackDelay — нижняя граница кулдауна после атакующего скилла.
const minAttackDelay = 300 * time.Millisecond

// offensive casts at most one attack skill. Returns true if a cast was issued.
func (m *Manager) offensive(st *tickState) bool {
	p := st.player
	if IsLocked(p.Character, st.now) || st.now.Before(st.session.nextSkillAt) {
		return false
	}

	target := m.lockedTarget(st)
	r, lvl := m.selectAttack(st, target)
	if r == nil {
		return false
	}

	var ok bool
	switch r.Target {
	case TargetCaster:
		ok = m.deps.Actions.CastOnTarget(p, r.Skill, lvl, p.ObjectID())
	case TargetGround:
		ok = m.deps.Actions.CastAt(p, r.Skill, lvl, target.Location())
	default:
		ok = m.deps.Actions.CastOnTarget(p, r.Skill, lvl, target.ObjectID())
	}
	if !ok {
		return false
	}

	st.session.nextSkillAt = st.now.Add(attackDelay(r, lvl))
	st.action = "skill"

	if ai.IsDebugEnabled() {
		slog.Debug("autoplay offensive skill",
			"characterID", st.charID,
			"skill", r.Skill,
			"level", lvl,
			"hostiles", st.hostiles)
	}
	return true
}

// selectAttack returns the first eligible attack of the chain and its level.
// target may be nil; only self-centered rules are then eligible.
func (m *Manager) selectAttack(st *tickState, target *model.Monster) (*Rule, int32) {
	var level int32

	r := firstEligible(st.chain.Attacks, func(r *Rule) verdict {
		lvl, ok := m.enabled(st, r)
		if !ok {
			return skip
		}
		if need := m.minTargets(st, r); need > 0 && st.hostiles < need {
			return skip
		}
		if r.Target != TargetCaster && target == nil {
			return skip
		}
		if !m.affordable(st, r, lvl) {
			return skip
		}
		level = lvl
		return take
	})
	return r, level
}

// minTargets returns the rule minimum, overridden by <key>_min when set.
func (m *Manager) minTargets(st *tickState, r *Rule) int32 {
	if r.minSetting != "" {
		if v := m.deps.Settings.Get(st.charID, r.minSetting); v > 0 {
			return int32(v)
		}
	}
	return r.MinTargets
}

// lockedTarget resolves the character's locked target as a live hostile on the same map.
func (m *Manager) lockedTarget(st *tickState) *model.Monster {
	id := st.player.Target()
	if id == 0 {
		return nil
	}
	mob, ok := st.spatial.Hostile(id)
	if !ok || mob.IsDead() || mob.MapID() != st.player.MapID() {
		return nil
	}
	return mob
}

func attackDelay(r *Rule, lvl int32) time.Duration {
	if r.Delay > 0 {
		return r.Delay
	}
	d := minAttackDelay
	if tmpl := data.GetSkillTemplate(r.Skill, lvl); tmpl != nil {
		d = max(d, tmpl.CastTime+tmpl.AfterCast)
	}
	return d
}
