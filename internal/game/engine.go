// Package game binds the autoplay decision engine to the in-process world.
// Engine implements the autoplay collaborator interfaces on top of
// world.World, skill.CastManager and the item handler registry.
package game

import (
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/udisondev/autoplay/internal/ai"
	"github.com/udisondev/autoplay/internal/game/itemhandler"
	"github.com/udisondev/autoplay/internal/game/skill"
	"github.com/udisondev/autoplay/internal/model"
	"github.com/udisondev/autoplay/internal/world"
)

const (
	// DefaultWalkCellDelay — время прохода одной клетки.
	DefaultWalkCellDelay = 150 * time.Millisecond
	// DefaultAttackDelay — задержка между обычными атаками.
	DefaultAttackDelay = 300 * time.Millisecond
)

// Engine executes character actions against the world.
type Engine struct {
	world *world.World
	casts *skill.CastManager
	now   func() time.Time

	walkCellDelay time.Duration
	attackDelay   time.Duration

	rndMu sync.Mutex
	rnd   *rand.Rand
}

// NewEngine creates an engine over w. nil now uses time.Now, nil rnd is seeded from runtime.
func NewEngine(w *world.World, rnd *rand.Rand, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Engine{
		world:         w,
		casts:         skill.NewCastManager(w, now),
		now:           now,
		walkCellDelay: DefaultWalkCellDelay,
		attackDelay:   DefaultAttackDelay,
		rnd:           rnd,
	}
}

// Now implements autoplay.Clock.
func (e *Engine) Now() time.Time { return e.now() }

// Player implements autoplay.Players.
func (e *Engine) Player(charID int64) (*model.Player, bool) {
	return e.world.GetPlayer(charID)
}

// ForEachHostile visits live monsters around center.
func (e *Engine) ForEachHostile(center model.Location, radius int32, fn func(*model.Monster) bool) {
	e.world.ForEachObjectInSquare(center, radius, func(obj *model.WorldObject) bool {
		m, ok := obj.Data.(*model.Monster)
		if !ok || m.IsDead() {
			return true
		}
		return fn(m)
	})
}

// Hostile returns a monster by object ID.
func (e *Engine) Hostile(objectID uint32) (*model.Monster, bool) {
	return e.world.GetMonster(objectID)
}

// NoTeleport reports whether the map forbids teleport.
func (e *Engine) NoTeleport(mapID int32) bool { return e.world.NoTeleport(mapID) }

// IsWater reports whether loc is a water cell.
func (e *Engine) IsWater(loc model.Location) bool { return e.world.IsWaterCell(loc) }

// CastOnTarget casts a self or single-target skill.
func (e *Engine) CastOnTarget(p *model.Player, skillID, level int32, targetID uint32) bool {
	if err := e.casts.Cast(p, skillID, level, targetID); err != nil {
		if ai.IsDebugEnabled() {
			slog.Debug("cast rejected",
				"characterID", p.CharacterID(),
				"skillID", skillID,
				"targetID", targetID,
				"error", err)
		}
		return false
	}
	return true
}

// CastAt casts a ground skill at loc.
func (e *Engine) CastAt(p *model.Player, skillID, level int32, loc model.Location) bool {
	if err := e.casts.CastAt(p, skillID, level, loc); err != nil {
		if ai.IsDebugEnabled() {
			slog.Debug("ground cast rejected",
				"characterID", p.CharacterID(),
				"skillID", skillID,
				"x", loc.X,
				"y", loc.Y,
				"error", err)
		}
		return false
	}
	return true
}

// UseItem uses the item in inventory slot. Refused while casting.
func (e *Engine) UseItem(p *model.Player, slot int) bool {
	it := p.Inventory().At(slot)
	if it == nil || e.now().Before(p.CastLockUntil()) {
		return false
	}

	res := itemhandler.Use(p, it.ItemID(), itemhandler.Context{Now: e.now(), Roll: e.roll})
	if res == nil {
		return false
	}
	for range res.ConsumeCount {
		if _, err := p.Inventory().Consume(slot); err != nil {
			slog.Warn("consuming used item",
				"characterID", p.CharacterID(),
				"itemID", it.ItemID(),
				"error", err)
			break
		}
	}
	if res.Teleport {
		e.RandomWarp(p)
	}
	if ai.IsDebugEnabled() {
		slog.Debug("item used",
			"characterID", p.CharacterID(),
			"itemID", it.ItemID(),
			"healedHP", res.HealedHP,
			"healedSP", res.HealedSP)
	}
	return true
}

// Attack engages targetID: steps next to it and starts the attack delay.
// Damage is not simulated; the monster only switches its target to the attacker.
func (e *Engine) Attack(p *model.Player, targetID uint32) bool {
	m, ok := e.world.GetMonster(targetID)
	if !ok || m.IsDead() || m.MapID() != p.MapID() {
		return false
	}
	now := e.now()
	if now.Before(p.AttackLockUntil()) || now.Before(p.CastLockUntil()) {
		return false
	}

	if dist := p.Location().ChebyshevDistance(m.Location()); dist > 1 {
		dst := e.adjacent(p.Location(), m.Location())
		if err := e.world.MoveObject(p.WorldObject, dst); err != nil {
			slog.Warn("moving to attack target",
				"characterID", p.CharacterID(),
				"targetID", targetID,
				"error", err)
			return false
		}
		p.SetCanMoveAt(now.Add(time.Duration(dist-1) * e.walkCellDelay))
	}

	p.SetSitting(false)
	p.SetTarget(targetID)
	m.SetTarget(p.ObjectID())
	p.SetAttackLockUntil(now.Add(e.attackDelay))
	return true
}

// adjacent returns the cell next to target on the way from from.
func (e *Engine) adjacent(from, target model.Location) model.Location {
	return target.Offset(sign(from.X-target.X), sign(from.Y-target.Y))
}

func sign(v int32) int32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// WalkTo moves the player to loc (clamped to the map) and sets the movement lock.
func (e *Engine) WalkTo(p *model.Player, loc model.Location) bool {
	now := e.now()
	if now.Before(p.CanMoveAt()) || now.Before(p.CastLockUntil()) {
		return false
	}
	dst := e.world.ClampToMap(loc)
	dist := p.Location().ChebyshevDistance(dst)
	if dist < 0 {
		return false
	}
	if err := e.world.MoveObject(p.WorldObject, dst); err != nil {
		if ai.IsDebugEnabled() {
			slog.Debug("walk rejected", "characterID", p.CharacterID(), "error", err)
		}
		return false
	}
	p.SetSitting(false)
	p.SetCanMoveAt(now.Add(time.Duration(dist) * e.walkCellDelay))
	return true
}

// StopAttack drops the current target.
func (e *Engine) StopAttack(p *model.Player) { p.SetTarget(0) }

// Sit makes the player sit.
func (e *Engine) Sit(p *model.Player) { p.SetSitting(true) }

// Stand makes the player stand up.
func (e *Engine) Stand(p *model.Player) { p.SetSitting(false) }

// RandomWarp moves the player to a random cell of its map.
// Refused on maps that forbid teleport.
func (e *Engine) RandomWarp(p *model.Player) bool {
	mapID := p.MapID()
	if e.world.NoTeleport(mapID) {
		return false
	}

	e.rndMu.Lock()
	dst, ok := e.world.RandomCell(mapID, e.rnd)
	e.rndMu.Unlock()
	if !ok {
		return false
	}
	if err := e.world.MoveObject(p.WorldObject, dst); err != nil {
		slog.Warn("random warp", "characterID", p.CharacterID(), "error", err)
		return false
	}
	p.SetTarget(0)
	p.SetSitting(false)
	slog.Info("player warped",
		"characterID", p.CharacterID(),
		"mapID", mapID,
		"x", dst.X,
		"y", dst.Y)
	return true
}

// Notify stores msg as the player's last system message.
func (e *Engine) Notify(p *model.Player, msg string) {
	p.SetLastAdminMessage(msg)
	slog.Info("autoplay notice", "characterID", p.CharacterID(), "message", msg)
}

// roll returns a value in [lo, hi].
func (e *Engine) roll(lo, hi int32) int32 {
	if hi <= lo {
		return lo
	}
	e.rndMu.Lock()
	defer e.rndMu.Unlock()
	return lo + e.rnd.Int32N(hi-lo+1)
}
