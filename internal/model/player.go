package model

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/udisondev/autoplay/internal/data"
)

// Player — персонаж игрока.
// Добавляет класс, навыки, экипировку, инвентарь и флаг автоплея к Character.
type Player struct {
	*Character // embedded

	characterID int64
	job         data.Job
	accessLevel int32

	weapon    data.WeaponType
	hasShield bool

	skillMu sync.RWMutex
	skills  map[int32]int32 // skillID → learned level

	inventory *Inventory

	autoPlay atomic.Bool

	lastAdminMu      sync.Mutex
	lastAdminMessage string
}

// NewPlayer создаёт нового игрока.
func NewPlayer(objectID uint32, characterID int64, name string, job data.Job, loc Location, level, maxHP, maxSP int32) (*Player, error) {
	if characterID <= 0 {
		return nil, fmt.Errorf("characterID must be positive, got %d", characterID)
	}
	if name == "" {
		return nil, fmt.Errorf("name cannot be empty")
	}

	p := &Player{
		Character:   NewCharacter(objectID, name, loc, level, maxHP, maxSP),
		characterID: characterID,
		job:         job,
		skills:      make(map[int32]int32),
		inventory:   NewInventory(characterID),
	}
	p.WorldObject.Data = p
	return p, nil
}

// CharacterID возвращает ID персонажа в БД.
func (p *Player) CharacterID() int64 {
	return p.characterID
}

// Job возвращает класс персонажа.
func (p *Player) Job() data.Job {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.job
}

// SetJob меняет класс персонажа.
func (p *Player) SetJob(job data.Job) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.job = job
}

// AccessLevel возвращает уровень доступа к админ-командам.
func (p *Player) AccessLevel() int32 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.accessLevel
}

// SetAccessLevel устанавливает уровень доступа.
func (p *Player) SetAccessLevel(level int32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.accessLevel = level
}

// WeaponType возвращает категорию оружия в правой руке.
func (p *Player) WeaponType() data.WeaponType {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.weapon
}

// HasShield reports whether a shield is equipped.
func (p *Player) HasShield() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.hasShield
}

// Equip sets weapon category and shield.
// A two-handed weapon always drops the shield.
func (p *Player) Equip(weapon data.WeaponType, shield bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.weapon = weapon
	p.hasShield = shield && !weapon.IsTwoHanded()
}

// SkillLevel возвращает изученный уровень скилла (0 если не изучен).
func (p *Player) SkillLevel(skillID int32) int32 {
	p.skillMu.RLock()
	defer p.skillMu.RUnlock()
	return p.skills[skillID]
}

// LearnSkill устанавливает изученный уровень скилла (0 удаляет).
func (p *Player) LearnSkill(skillID, level int32) {
	p.skillMu.Lock()
	defer p.skillMu.Unlock()
	if level <= 0 {
		delete(p.skills, skillID)
		return
	}
	p.skills[skillID] = level
}

// Skills возвращает копию изученных скиллов.
func (p *Player) Skills() map[int32]int32 {
	p.skillMu.RLock()
	defer p.skillMu.RUnlock()
	out := make(map[int32]int32, len(p.skills))
	for id, lvl := range p.skills {
		out[id] = lvl
	}
	return out
}

// Inventory возвращает инвентарь.
func (p *Player) Inventory() *Inventory {
	return p.inventory
}

// AutoPlay returns autoplay option flag.
func (p *Player) AutoPlay() bool {
	return p.autoPlay.Load()
}

// SetAutoPlay sets autoplay option flag.
func (p *Player) SetAutoPlay(v bool) {
	p.autoPlay.Store(v)
}

// LastAdminMessage возвращает последнее служебное сообщение (для тестов и консоли).
func (p *Player) LastAdminMessage() string {
	p.lastAdminMu.Lock()
	defer p.lastAdminMu.Unlock()
	return p.lastAdminMessage
}

// SetLastAdminMessage сохраняет служебное сообщение.
func (p *Player) SetLastAdminMessage(msg string) {
	p.lastAdminMu.Lock()
	defer p.lastAdminMu.Unlock()
	p.lastAdminMessage = msg
}

// ClearLastAdminMessage возвращает последнее сообщение и очищает его.
func (p *Player) ClearLastAdminMessage() string {
	p.lastAdminMu.Lock()
	defer p.lastAdminMu.Unlock()
	msg := p.lastAdminMessage
	p.lastAdminMessage = ""
	return msg
}
