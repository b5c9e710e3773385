package autoplay

import (
	"log/slog"

	"github.com/udisondev/autoplay/internal/ai"
)

// wanderRange — максимальное смещение случайной прогулки по каждой оси (exclusive).
const wanderRange = 10

// motion engages the nearest hostile or wanders. Returns whether a target was found.
func (m *Manager) motion(st *tickState) bool {
	p := st.player
	radius := m.searchRadius(st)

	if id, ok := FindNearestTarget(st.spatial, p, radius); ok {
		m.deps.Actions.Attack(p, id)
		st.action = "attack"
		return true
	}

	dx := m.signedOffset()
	dy := m.signedOffset()
	m.deps.Actions.WalkTo(p, p.Location().Offset(dx, dy))
	st.action = "wander"

	if ai.IsDebugEnabled() {
		slog.Debug("autoplay wander", "characterID", st.charID, "dx", dx, "dy", dy)
	}
	return false
}

// signedOffset returns sign * [0, wanderRange).
func (m *Manager) signedOffset() int32 {
	m.rndMu.Lock()
	defer m.rndMu.Unlock()
	v := m.rnd.Int32N(wanderRange)
	if m.rnd.IntN(2) == 0 {
		return -v
	}
	return v
}

// searchRadius returns ap_search_radius, falling back to the tuning default.
func (m *Manager) searchRadius(st *tickState) int32 {
	if v := int32(m.setting(st, SettingSearchRadius)); v > 0 {
		return v
	}
	return st.tuning.SearchRadius
}
