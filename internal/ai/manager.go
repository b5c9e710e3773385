package ai

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultResolution is how often the run loop looks for due controllers.
const DefaultResolution = 50 * time.Millisecond

// entry — зарегистрированный контроллер и время следующего тика.
type entry struct {
	controller Controller
	due        atomic.Int64 // unix nano, 0 = run on next pass
}

// TickManager schedules controllers keyed by character ID.
// All ticks run sequentially from the Start goroutine, so a controller is never
// ticked concurrently and is rescheduled only after its previous Tick returned.
type TickManager struct {
	controllers     sync.Map // characterID → *entry
	resolution      time.Duration
	stopCh          chan struct{}
	stopOnce        sync.Once
	controllerCount atomic.Int32 // cached count of controllers (O(1) access)
}

// NewTickManager creates new tick manager. resolution <= 0 means DefaultResolution.
func NewTickManager(resolution time.Duration) *TickManager {
	if resolution <= 0 {
		resolution = DefaultResolution
	}
	return &TickManager{
		resolution: resolution,
		stopCh:     make(chan struct{}),
	}
}

// Register registers controller; its first tick runs on the next pass.
// An existing controller under the same ID is stopped and replaced.
func (m *TickManager) Register(id int64, controller Controller) {
	e := &entry{controller: controller}
	if old, loaded := m.controllers.Swap(id, e); loaded {
		old.(*entry).controller.Stop()
	} else {
		m.controllerCount.Add(1)
	}
	controller.Start()

	slog.Debug("controller registered", "id", id)
}

// Unregister unregisters controller
func (m *TickManager) Unregister(id int64) {
	value, ok := m.controllers.LoadAndDelete(id)
	if !ok {
		return
	}

	m.controllerCount.Add(-1)
	value.(*entry).controller.Stop()

	slog.Debug("controller unregistered", "id", id)
}

// Start runs the tick loop (blocks until context is canceled or Stop is called)
func (m *TickManager) Start(ctx context.Context) error {
	ticker := time.NewTicker(m.resolution)
	defer ticker.Stop()

	slog.Info("tick manager started", "resolution", m.resolution)

	for {
		select {
		case <-ctx.Done():
			slog.Info("tick manager stopping")
			return ctx.Err()

		case <-m.stopCh:
			slog.Info("tick manager stopped")
			return nil

		case now := <-ticker.C:
			m.RunDue(ctx, now)
		}
	}
}

// Stop stops tick loop. Safe to call more than once.
func (m *TickManager) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
}

// RunDue ticks every controller whose due time is not after now and returns
// how many ran.
func (m *TickManager) RunDue(ctx context.Context, now time.Time) int {
	count := 0
	nowNano := now.UnixNano()

	m.controllers.Range(func(key, value any) bool {
		e := value.(*entry)
		if e.due.Load() > nowNano {
			return true
		}
		count++

		next, keep := e.controller.Tick(ctx)
		if !keep {
			// Tick may have replaced the entry (re-register); remove only our own
			if m.controllers.CompareAndDelete(key, e) {
				m.controllerCount.Add(-1)
				e.controller.Stop()
			}
			return true
		}
		e.due.Store(now.Add(next).UnixNano())
		return true
	})

	if count > 0 && IsDebugEnabled() {
		slog.Debug("tick pass completed", "controllers", count)
	}
	return count
}

// Count returns number of registered controllers (O(1) cached count)
func (m *TickManager) Count() int {
	return int(m.controllerCount.Load())
}

// GetController returns controller registered under id
func (m *TickManager) GetController(id int64) (Controller, error) {
	value, ok := m.controllers.Load(id)
	if !ok {
		return nil, fmt.Errorf("controller not found for id %d", id)
	}
	return value.(*entry).controller, nil
}

// Has reports whether a controller is registered under id.
func (m *TickManager) Has(id int64) bool {
	_, ok := m.controllers.Load(id)
	return ok
}
