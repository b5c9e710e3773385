package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/udisondev/autoplay/internal/ai"
	"github.com/udisondev/autoplay/internal/autoplay"
	"github.com/udisondev/autoplay/internal/model"
	"github.com/udisondev/autoplay/internal/variables"
	"github.com/udisondev/autoplay/internal/world"
)

// sessionHost enters characters into the world and takes them out again.
type sessionHost struct {
	world   *world.World
	vars    *variables.Registry
	manager *autoplay.Manager
	ticks   *ai.TickManager
}

// Login loads stored settings of p, places it in the world and resumes autoplay if flagged.
func (h *sessionHost) Login(ctx context.Context, p *model.Player) error {
	charID := p.CharacterID()
	if err := h.vars.Load(ctx, charID); err != nil {
		return fmt.Errorf("loading variables of %d: %w", charID, err)
	}
	h.manager.Login(ctx, charID)

	if err := h.world.AddPlayer(p); err != nil {
		h.manager.Logout(ctx, charID)
		h.vars.Evict(charID)
		return fmt.Errorf("entering world: %w", err)
	}
	if p.AutoPlay() {
		h.ticks.Register(charID, h.manager.Controller(charID))
	}
	slog.Info("player logged in",
		"characterID", charID,
		"name", p.Name(),
		"job", p.Job(),
		"autoplay", p.AutoPlay())
	return nil
}

// Logout saves settings and config of charID and removes it from the world.
func (h *sessionHost) Logout(ctx context.Context, charID int64) {
	p, ok := h.world.GetPlayer(charID)
	if !ok {
		return
	}
	h.ticks.Unregister(charID)
	h.manager.Logout(ctx, charID)
	if err := h.vars.Flush(ctx, charID); err != nil {
		slog.Error("flushing variables", "characterID", charID, "error", err)
	}
	h.vars.Evict(charID)
	h.world.RemoveObject(p.ObjectID())
	slog.Info("player logged out", "characterID", charID)
}

// LogoutAll logs out every online character.
func (h *sessionHost) LogoutAll(ctx context.Context) {
	var ids []int64
	h.world.ForEachPlayer(func(p *model.Player) bool {
		ids = append(ids, p.CharacterID())
		return true
	})
	for _, id := range ids {
		h.Logout(ctx, id)
	}
}
