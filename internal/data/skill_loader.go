package data

import (
	"log/slog"
	"time"
)

// SkillTable — глобальный registry всех skill templates.
// map[skillID]map[level]*SkillTemplate
// Загружается через LoadSkills() при старте сервера.
var SkillTable map[int32]map[int32]*SkillTemplate

// skillMaxLevel — precomputed max level per skill ID.
var skillMaxLevel map[int32]int32

// GetSkillTemplate возвращает SkillTemplate по ID и Level.
// Returns nil если скилл не найден.
func GetSkillTemplate(skillID, level int32) *SkillTemplate {
	if SkillTable == nil {
		return nil
	}
	levels, ok := SkillTable[skillID]
	if !ok {
		return nil
	}
	return levels[level]
}

// GetSkillMaxLevel возвращает максимальный уровень скилла.
// Returns 0 если скилл не найден.
func GetSkillMaxLevel(skillID int32) int32 {
	if skillMaxLevel == nil {
		return 0
	}
	return skillMaxLevel[skillID]
}

// SkillSPCost returns SP cost of skill at level, or -1 if unknown.
func SkillSPCost(skillID, level int32) int32 {
	t := GetSkillTemplate(skillID, level)
	if t == nil {
		return -1
	}
	return t.SPCost
}

// SkillDuration returns status duration of skill at level (0 if unknown).
func SkillDuration(skillID, level int32) time.Duration {
	t := GetSkillTemplate(skillID, level)
	if t == nil {
		return 0
	}
	return t.Duration
}

// LoadSkills строит SkillTable из Go-литералов (skillDefs).
// Вызывается при старте сервера.
func LoadSkills() error {
	SkillTable = make(map[int32]map[int32]*SkillTemplate, len(skillDefs))

	for i := range skillDefs {
		buildSkillTemplates(&skillDefs[i])
	}

	skillMaxLevel = make(map[int32]int32, len(SkillTable))
	var totalSkills int
	for skillID, levels := range SkillTable {
		totalSkills += len(levels)
		var maxLvl int32
		for lvl := range levels {
			if lvl > maxLvl {
				maxLvl = lvl
			}
		}
		skillMaxLevel[skillID] = maxLvl
	}

	slog.Info("loaded skills", "skill_ids", len(SkillTable), "total_entries", totalSkills)
	return nil
}

// buildSkillTemplates создаёт SkillTemplate для каждого уровня скилла из определения.
func buildSkillTemplates(def *skillDef) {
	levels := max(def.levels, 1)

	if SkillTable[def.id] == nil {
		SkillTable[def.id] = make(map[int32]*SkillTemplate, int(levels))
	}

	for levelIdx := range levels {
		level := levelIdx + 1
		SkillTable[def.id][level] = &SkillTemplate{
			ID:          def.id,
			Level:       level,
			Name:        def.name,
			OperateType: def.operateType,
			TargetType:  ParseTargetType(def.targetType),
			Range:       def.castRange,
			SPCost:      levelValue(def.spCost, levelIdx),
			CastTime:    millis(levelValue(def.castTime, levelIdx)),
			AfterCast:   millis(levelValue(def.afterCast, levelIdx)),
			Duration:    millis(levelValue(def.duration, levelIdx)),
			Status:      def.status,
			ItemConsume: def.itemConsume,
		}
	}
}

// levelValue возвращает значение для уровня; короткий массив продлевается последним элементом.
func levelValue(arr []int32, idx int32) int32 {
	if len(arr) == 0 {
		return 0
	}
	if int(idx) < len(arr) {
		return arr[idx]
	}
	return arr[len(arr)-1]
}

func millis(ms int32) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
