package model

import "sync/atomic"

// Monster represents a hostile mob.
type Monster struct {
	*Character // embedding Character

	templateID   int32
	isAggressive atomic.Bool
}

// NewMonster creates a new Monster instance.
func NewMonster(objectID uint32, templateID int32, name string, loc Location, level, maxHP int32) *Monster {
	m := &Monster{
		Character:  NewCharacter(objectID, name, loc, level, maxHP, 0),
		templateID: templateID,
	}
	m.WorldObject.Data = m
	return m
}

// TemplateID returns mob template id.
func (m *Monster) TemplateID() int32 {
	return m.templateID
}

// IsAggressive returns whether monster is aggressive (atomic read)
func (m *Monster) IsAggressive() bool {
	return m.isAggressive.Load()
}

// SetAggressive sets aggressive flag (atomic write)
func (m *Monster) SetAggressive(aggressive bool) {
	m.isAggressive.Store(aggressive)
}
