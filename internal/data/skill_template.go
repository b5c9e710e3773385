package data

import "time"

// OperateType определяет тип активации скилла.
type OperateType int8

const (
	OperateActive OperateType = iota // damage, heal, instant effect
	OperateBuff                      // applies a lasting status
	OperatePassive
)

// TargetType определяет тип цели скилла.
type TargetType int8

const (
	TargetSelf   TargetType = iota // self-cast
	TargetOne                      // single enemy
	TargetGround                   // cast at a map cell
	TargetAura                     // area centered on caster
)

// SkillTemplate — immutable шаблон скилла.
// Один экземпляр на каждую пару (skillID, level).
// Общий для всех игроков, после загрузки не модифицируется.
type SkillTemplate struct {
	ID          int32
	Level       int32
	Name        string
	OperateType OperateType
	TargetType  TargetType
	Range       int32 // cells; 0 = melee (1 cell)
	SPCost      int32
	CastTime    time.Duration // cast lock
	AfterCast   time.Duration // global delay after cast
	Duration    time.Duration // status duration, 0 for non-buffs
	Status      StatusType    // status applied to the caster, StatusNone if none
	ItemConsume int32         // reagent item id, 0 = none
}

// IsPassive returns true if this skill is a passive skill.
func (s *SkillTemplate) IsPassive() bool {
	return s.OperateType == OperatePassive
}

// IsBuff returns true if the skill applies a lasting status to the caster.
func (s *SkillTemplate) IsBuff() bool {
	return s.OperateType == OperateBuff && s.Status != StatusNone
}

// IsInstant returns true if skill has no cast time.
func (s *SkillTemplate) IsInstant() bool {
	return s.CastTime == 0
}

// ParseTargetType converts string to TargetType.
func ParseTargetType(s string) TargetType {
	switch s {
	case "SELF":
		return TargetSelf
	case "GROUND":
		return TargetGround
	case "AURA":
		return TargetAura
	default:
		return TargetOne
	}
}
