package model

import (
	"sync/atomic"
	"time"

	"github.com/udisondev/autoplay/internal/data"
)

// Character — базовый класс для живых существ (Player, Monster).
// Добавляет HP, SP, статусы и блокировки действий к WorldObject.
type Character struct {
	*WorldObject // embedded

	level     int32
	currentHP int32
	maxHP     int32
	currentSP int32
	maxSP     int32

	sitting atomic.Bool
	target  atomic.Uint32 // locked target objectID, 0 = none

	// status → expiry; zero expiry = until removed
	statuses map[data.StatusType]time.Time

	// action locks
	castLockUntil   time.Time
	attackLockUntil time.Time
	canActAt        time.Time // global skill delay
	canMoveAt       time.Time
}

// NewCharacter создаёт нового персонажа с указанными максимальными значениями.
// Текущие HP/SP устанавливаются равными максимальным.
func NewCharacter(objectID uint32, name string, loc Location, level, maxHP, maxSP int32) *Character {
	return &Character{
		WorldObject: NewWorldObject(objectID, name, loc),
		level:       level,
		currentHP:   maxHP,
		maxHP:       maxHP,
		currentSP:   maxSP,
		maxSP:       maxSP,
		statuses:    make(map[data.StatusType]time.Time),
	}
}

// Level возвращает уровень.
func (c *Character) Level() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.level
}

// CurrentHP возвращает текущее HP.
func (c *Character) CurrentHP() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentHP
}

// MaxHP возвращает максимальное HP (может быть 0).
func (c *Character) MaxHP() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.maxHP
}

// SetCurrentHP устанавливает текущее HP с валидацией (clamp 0..maxHP, см. clamp).
func (c *Character) SetCurrentHP(hp int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentHP = clamp(hp, c.maxHP)
}

// SetMaxHP устанавливает максимальное HP и корректирует текущее если нужно.
func (c *Character) SetMaxHP(maxHP int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.maxHP = max(maxHP, 0)
	c.currentHP = clamp(c.currentHP, c.maxHP)
}

// CurrentSP возвращает текущее SP.
func (c *Character) CurrentSP() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentSP
}

// MaxSP возвращает максимальное SP (может быть 0).
func (c *Character) MaxSP() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.maxSP
}

// SetCurrentSP устанавливает текущее SP с валидацией (clamp 0..maxSP).
func (c *Character) SetCurrentSP(sp int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentSP = clamp(sp, c.maxSP)
}

// SetMaxSP устанавливает максимальное SP и корректирует текущее если нужно.
func (c *Character) SetMaxSP(maxSP int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.maxSP = max(maxSP, 0)
	c.currentSP = clamp(c.currentSP, c.maxSP)
}

// ConsumeSP списывает amount SP. Возвращает false если SP не хватает.
func (c *Character) ConsumeSP(amount int32) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.currentSP < amount {
		return false
	}
	c.currentSP -= amount
	return true
}

// IsDead returns true if HP reached zero.
func (c *Character) IsDead() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentHP <= 0
}

// IsSitting returns sitting flag.
func (c *Character) IsSitting() bool {
	return c.sitting.Load()
}

// SetSitting sets sitting flag.
func (c *Character) SetSitting(v bool) {
	c.sitting.Store(v)
}

// Target returns locked target objectID (0 if none).
func (c *Character) Target() uint32 {
	return c.target.Load()
}

// SetTarget locks target objectID (0 clears).
func (c *Character) SetTarget(objectID uint32) {
	c.target.Store(objectID)
}

// HasStatus reports whether status is present.
// Presence only: expiry sweep is done by the effect manager.
func (c *Character) HasStatus(s data.StatusType) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.statuses[s]
	return ok
}

// AddStatus applies status until expiresAt (zero = until removed).
// Re-applying refreshes expiry.
func (c *Character) AddStatus(s data.StatusType, expiresAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.statuses[s] = expiresAt
}

// RemoveStatus removes status. Returns false if it was not present.
func (c *Character) RemoveStatus(s data.StatusType) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.statuses[s]; !ok {
		return false
	}
	delete(c.statuses, s)
	return true
}

// StatusExpiry returns expiry time of status and whether it is present.
func (c *Character) StatusExpiry(s data.StatusType) (time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.statuses[s]
	return t, ok
}

// RemoveExpiredStatuses drops statuses whose expiry is not after now.
// Returns removed statuses.
func (c *Character) RemoveExpiredStatuses(now time.Time) []data.StatusType {
	c.mu.Lock()
	defer c.mu.Unlock()

	var removed []data.StatusType
	for s, exp := range c.statuses {
		if exp.IsZero() || exp.After(now) {
			continue
		}
		delete(c.statuses, s)
		removed = append(removed, s)
	}
	return removed
}

// ClearStatuses removes every status (on death).
func (c *Character) ClearStatuses() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.statuses)
}

// CastLockUntil возвращает момент окончания каста.
func (c *Character) CastLockUntil() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.castLockUntil
}

// SetCastLockUntil устанавливает окончание каста.
func (c *Character) SetCastLockUntil(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.castLockUntil = t
}

// AttackLockUntil возвращает момент окончания анимации атаки.
func (c *Character) AttackLockUntil() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.attackLockUntil
}

// SetAttackLockUntil устанавливает окончание анимации атаки.
func (c *Character) SetAttackLockUntil(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.attackLockUntil = t
}

// CanActAt возвращает момент окончания global skill delay.
func (c *Character) CanActAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.canActAt
}

// SetCanActAt устанавливает окончание global skill delay.
func (c *Character) SetCanActAt(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.canActAt = t
}

// CanMoveAt возвращает момент снятия блокировки движения.
func (c *Character) CanMoveAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.canMoveAt
}

// SetCanMoveAt устанавливает момент снятия блокировки движения.
func (c *Character) SetCanMoveAt(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.canMoveAt = t
}

// clamp ограничивает v диапазоном 0..hi; hi == 0 (max ещё не рассчитан) не ограничивает сверху.
func clamp(v, hi int32) int32 {
	if v < 0 {
		return 0
	}
	if hi > 0 && v > hi {
		return hi
	}
	return v
}
