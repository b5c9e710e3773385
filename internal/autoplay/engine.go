package autoplay

import (
	"time"

	"github.com/udisondev/autoplay/internal/model"
)

// Players resolves online characters.
type Players interface {
	Player(charID int64) (*model.Player, bool)
}

// Spatial answers area queries against the world.
type Spatial interface {
	// ForEachHostile calls fn for each hostile in the square of half-width radius
	// around center on the same map. fn returning false stops iteration.
	ForEachHostile(center model.Location, radius int32, fn func(*model.Monster) bool)

	// Hostile returns a hostile by object ID.
	Hostile(objectID uint32) (*model.Monster, bool)

	NoTeleport(mapID int32) bool
	IsWater(loc model.Location) bool
}

// Actions executes character actions. Every call is synchronous and returns
// whether the engine accepted it; effects (locks, animations) land on the character.
type Actions interface {
	CastOnTarget(p *model.Player, skillID, level int32, targetID uint32) bool
	CastAt(p *model.Player, skillID, level int32, loc model.Location) bool
	UseItem(p *model.Player, slot int) bool
	Attack(p *model.Player, targetID uint32) bool
	WalkTo(p *model.Player, loc model.Location) bool
	StopAttack(p *model.Player)
	Sit(p *model.Player)
	Stand(p *model.Player)
	RandomWarp(p *model.Player) bool
}

// Notifier — best-effort сообщение клиенту персонажа.
type Notifier interface {
	Notify(p *model.Player, msg string)
}

// Settings is the per-character named integer store.
type Settings interface {
	Get(charID int64, name string) int64
	Set(charID int64, name string, value int64)
}

// Clock abstracts time for deterministic ticks.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
