package data

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSkills_Count(t *testing.T) {
	require.NoError(t, LoadSkills())

	assert.Len(t, SkillTable, len(skillDefs))

	var totalEntries int
	for _, levels := range SkillTable {
		totalEntries += len(levels)
	}
	assert.Greater(t, totalEntries, len(skillDefs))
}

func TestLoadSkills_TwoHandQuicken(t *testing.T) {
	require.NoError(t, LoadSkills())

	lv1 := GetSkillTemplate(SkillKNTwoHandQuicken, 1)
	require.NotNil(t, lv1)
	assert.Equal(t, "Two-Hand Quicken", lv1.Name)
	assert.Equal(t, int32(14), lv1.SPCost)
	assert.Equal(t, 30*time.Second, lv1.Duration)
	assert.Equal(t, StatusTwoHandQuicken, lv1.Status)
	assert.True(t, lv1.IsBuff())
	assert.Equal(t, TargetSelf, lv1.TargetType)

	lv10 := GetSkillTemplate(SkillKNTwoHandQuicken, 10)
	require.NotNil(t, lv10)
	assert.Equal(t, int32(50), lv10.SPCost)
	assert.Equal(t, 300*time.Second, lv10.Duration)

	assert.Nil(t, GetSkillTemplate(SkillKNTwoHandQuicken, 11))
	assert.Equal(t, int32(10), GetSkillMaxLevel(SkillKNTwoHandQuicken))
}

func TestLoadSkills_ShortArrayExtendsLastValue(t *testing.T) {
	require.NoError(t, LoadSkills())

	// Fire Ball has a single SP cost for all levels.
	for lvl := int32(1); lvl <= 10; lvl++ {
		assert.Equal(t, int32(25), SkillSPCost(SkillMGFireBall, lvl), "level %d", lvl)
	}
}

func TestLoadSkills_TargetTypes(t *testing.T) {
	require.NoError(t, LoadSkills())

	tests := []struct {
		skill int32
		want  TargetType
	}{
		{SkillWZStormGust, TargetGround},
		{SkillSMMagnum, TargetAura},
		{SkillMGCold, TargetOne},
		{SkillALBlessing, TargetSelf},
	}
	for _, tt := range tests {
		tmpl := GetSkillTemplate(tt.skill, 1)
		require.NotNil(t, tmpl, "skill %d", tt.skill)
		assert.Equal(t, tt.want, tmpl.TargetType, tmpl.Name)
	}
}

func TestSkillSPCost_Unknown(t *testing.T) {
	require.NoError(t, LoadSkills())

	assert.Equal(t, int32(-1), SkillSPCost(99999, 1))
	assert.Zero(t, SkillDuration(99999, 1))
	assert.Zero(t, GetSkillMaxLevel(99999))
}

func TestBuffSkillsHaveDurations(t *testing.T) {
	require.NoError(t, LoadSkills())

	for _, def := range skillDefs {
		if def.operateType != OperateBuff {
			continue
		}
		tmpl := GetSkillTemplate(def.id, 1)
		require.NotNil(t, tmpl)
		assert.NotEqual(t, StatusNone, tmpl.Status, "%s has no status", def.name)
		assert.Positive(t, tmpl.Duration, "%s has no duration", def.name)
	}
}

func TestLoadItemTemplates(t *testing.T) {
	require.NoError(t, LoadItemTemplates())

	berserk := GetItemDef(ItemBerserkPotion)
	require.NotNil(t, berserk)
	assert.Equal(t, ItemKindAspdPotion, berserk.Kind())
	assert.Equal(t, StatusAspdPotion2, berserk.Status())
	assert.Equal(t, 30*time.Minute, berserk.Duration())

	white := GetItemDef(ItemWhitePotion)
	require.NotNil(t, white)
	assert.Equal(t, ItemKindHealing, white.Kind())
	assert.Positive(t, white.HPMin())

	assert.Nil(t, GetItemDef(1))
}
