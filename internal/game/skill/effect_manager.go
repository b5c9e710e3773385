package skill

import (
	"context"
	"log/slog"
	"time"

	"github.com/udisondev/autoplay/internal/ai"
	"github.com/udisondev/autoplay/internal/model"
)

// DefaultSweepInterval — период проверки истёкших статусов.
const DefaultSweepInterval = 500 * time.Millisecond

// PlayerSource iterates online players.
type PlayerSource interface {
	ForEachPlayer(fn func(*model.Player) bool)
}

// EffectManager expires timed statuses of online players.
// Statuses stay visible to HasStatus until the sweep removes them, so a status
// can outlive its expiry by up to one interval.
type EffectManager struct {
	players  PlayerSource
	interval time.Duration
}

// NewEffectManager creates an EffectManager. interval <= 0 uses DefaultSweepInterval.
func NewEffectManager(players PlayerSource, interval time.Duration) *EffectManager {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &EffectManager{players: players, interval: interval}
}

// Sweep removes statuses expired at now. Returns the number removed.
func (m *EffectManager) Sweep(now time.Time) int {
	total := 0
	m.players.ForEachPlayer(func(p *model.Player) bool {
		removed := p.RemoveExpiredStatuses(now)
		total += len(removed)
		if len(removed) > 0 && ai.IsDebugEnabled() {
			slog.Debug("statuses expired",
				"characterID", p.CharacterID(),
				"statuses", removed)
		}
		return true
	})
	return total
}

// Run sweeps every interval until ctx is canceled.
func (m *EffectManager) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			m.Sweep(now)
		}
	}
}
