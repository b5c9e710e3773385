// Package commands implements autoplay chat commands.
package commands

import (
	"github.com/udisondev/autoplay/internal/ai"
	"github.com/udisondev/autoplay/internal/autoplay"
	"github.com/udisondev/autoplay/internal/gameserver/admin"
	"github.com/udisondev/autoplay/internal/model"
)

// PlayerFinder looks up online players by name.
type PlayerFinder interface {
	FindPlayerByName(name string) (*model.Player, bool)
}

// Scheduler — планировщик тиков автоплея (ai.TickManager).
type Scheduler interface {
	Register(id int64, controller ai.Controller)
}

// Variables is the per-character settings store.
type Variables interface {
	Get(charID int64, name string) int64
	Set(charID int64, name string, value int64)
}

// AutoPlay is the autoplay manager as seen by commands.
type AutoPlay interface {
	Controller(charID int64) ai.Controller
	UpdateConfig(charID int64, fn func(*autoplay.Config)) autoplay.Config
}

// Deps bundles collaborators shared by all commands.
type Deps struct {
	Players   PlayerFinder
	Scheduler Scheduler
	Vars      Variables
	AutoPlay  AutoPlay
}

// RegisterAll registers every autoplay command on h.
func RegisterAll(h *admin.Handler, d Deps) {
	h.RegisterAdmin(NewAutoPlayToggle(d))
	h.RegisterAdmin(NewSetVar(d))
	h.RegisterAdmin(NewGetVar(d))
	h.RegisterAdmin(NewAutoPlayConfig(d))
	h.RegisterAdmin(NewHeal(d))
	h.RegisterAdmin(&GiveItem{players: d.Players})
	h.RegisterUser(NewUserAutoPlay(d))
}

// resolveTarget returns the named player or, when name is empty, the caller.
func resolveTarget(d Deps, caller *model.Player, name string) (*model.Player, error) {
	if name == "" || name == caller.Name() {
		return caller, nil
	}
	target, ok := d.Players.FindPlayerByName(name)
	if !ok {
		return nil, errPlayerNotFound(name)
	}
	if !admin.CanControl(caller.CharacterID(), target.CharacterID(), caller.AccessLevel()) {
		return nil, errNotAllowed(name)
	}
	return target, nil
}
