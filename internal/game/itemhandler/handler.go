// Package itemhandler implements consumable item effects.
// Each item kind (data.ItemKind) maps to an ItemHandler implementation.
package itemhandler

import (
	"time"

	"github.com/udisondev/autoplay/internal/data"
	"github.com/udisondev/autoplay/internal/model"
)

// UseResult describes the outcome of an item use.
type UseResult struct {
	ConsumeCount int32 // number of items to consume (0 = don't consume)
	Teleport     bool  // caller moves the player to a random cell of its map
	HealedHP     int32
	HealedSP     int32
}

// Context carries what a handler needs besides the player.
type Context struct {
	Now time.Time
	// Roll returns a value in [lo, hi].
	Roll func(lo, hi int32) int32
}

// ItemHandler processes item use for one item kind.
type ItemHandler interface {
	// UseItem applies the item and returns the result.
	// Returns nil if the item cannot be used.
	UseItem(player *model.Player, itemID int32, ctx Context) *UseResult
}

// registry maps item kind → ItemHandler implementation.
var registry = map[data.ItemKind]ItemHandler{}

// Register adds a handler to the registry.
func Register(kind data.ItemKind, h ItemHandler) {
	registry[kind] = h
}

// Get returns the handler for the given kind, or nil if not registered.
func Get(kind data.ItemKind) ItemHandler {
	return registry[kind]
}

// Init registers all built-in item handlers.
func Init() {
	Register(data.ItemKindHealing, &healingHandler{})
	Register(data.ItemKindAspdPotion, &aspdPotionHandler{})
	Register(data.ItemKindBoost, &boostHandler{})
	Register(data.ItemKindTeleport, &teleportHandler{})
}

// Use looks up the item definition and runs its handler.
// Returns nil for unknown items and kinds without a handler.
func Use(player *model.Player, itemID int32, ctx Context) *UseResult {
	def := data.GetItemDef(itemID)
	if def == nil {
		return nil
	}
	h := Get(def.Kind())
	if h == nil {
		return nil
	}
	return h.UseItem(player, itemID, ctx)
}
