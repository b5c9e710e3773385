package autoplay

import (
	"log/slog"

	"github.com/udisondev/autoplay/internal/ai"
	"github.com/udisondev/autoplay/internal/data"
)

// rebuff casts at most one self-buff. Returns true if a cast was issued.
func (m *Manager) rebuff(st *tickState) bool {
	p := st.player
	if IsLocked(p.Character, st.now) || st.now.Before(st.session.nextSkillAt) {
		return false
	}

	r, lvl := m.selectBuff(st)
	if r == nil {
		return false
	}
	if !m.deps.Actions.CastOnTarget(p, r.Skill, lvl, p.ObjectID()) {
		return false
	}

	delay := st.tuning.RebuffDelay
	if r.Channeled {
		d := data.SkillDuration(r.Skill, lvl)
		if d <= 0 {
			d = st.tuning.ChannelGrace
		}
		st.session.shadowUntil = st.now.Add(d)
		delay = st.tuning.ChanneledRebuffDelay
	}
	st.session.nextSkillAt = st.now.Add(delay)
	st.action = "buff"

	if ai.IsDebugEnabled() {
		slog.Debug("autoplay rebuff",
			"characterID", st.charID,
			"skill", r.Skill,
			"level", lvl)
	}
	return true
}

// selectBuff returns the first eligible buff of the chain and its level.
// Observing an active channeled buff refreshes the shadow timer and stops evaluation.
func (m *Manager) selectBuff(st *tickState) (*Rule, int32) {
	p := st.player
	var level int32

	r := firstEligible(st.chain.Buffs, func(r *Rule) verdict {
		lvl, ok := m.enabled(st, r)
		if !ok {
			return skip
		}
		if r.Channeled {
			if p.HasStatus(r.Status) {
				st.session.refreshShadow(st.now, st.tuning.ChannelGrace, st.tuning.ShadowSanity)
				return halt
			}
			if st.session.shadowPending(st.now, st.tuning.ShadowSanity) {
				return skip
			}
		} else if p.HasStatus(r.Status) {
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
