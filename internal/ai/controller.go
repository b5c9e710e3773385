package ai

import (
	"context"
	"time"
)

// Controller — периодический контроллер персонажа (автоплей и т.п.).
type Controller interface {
	// Start is called once on Register
	Start()

	// Stop is called once on Unregister or when Tick returns keep=false
	Stop()

	// Tick performs one evaluation pass. next is the delay until the following
	// pass; keep=false removes the controller from the manager.
	Tick(ctx context.Context) (next time.Duration, keep bool)
}

// ControllerFunc adapts a tick function to Controller with no-op Start/Stop.
type ControllerFunc func(ctx context.Context) (time.Duration, bool)

func (f ControllerFunc) Start() {}
func (f ControllerFunc) Stop()  {}

func (f ControllerFunc) Tick(ctx context.Context) (time.Duration, bool) {
	return f(ctx)
}
