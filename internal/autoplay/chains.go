package autoplay

import (
	"slices"

	"github.com/udisondev/autoplay/internal/data"
)

// ChainKey selects a rule chain.
type ChainKey struct {
	Family data.Family
	Weapon data.WeaponType
	Shield bool
}

// Chain — упорядоченные кандидаты баффов и атак для одной комбинации класса и экипировки.
type Chain struct {
	Buffs   []Rule
	Attacks []Rule
}

// Chains maps every (family, weapon, shield) combination to its chain.
type Chains map[ChainKey]*Chain

var emptyChain = &Chain{}

// familyRules — исходные таблицы по семействам классов.
type familyRules struct {
	buffs   []Rule
	attacks []Rule
}

var rulesByFamily = map[data.Family]familyRules{
	data.FamilyKnight:     {buffs: knightBuffs, attacks: knightAttacks},
	data.FamilyCrusader:   {buffs: crusaderBuffs, attacks: crusaderAttacks},
	data.FamilyMage:       {buffs: mageBuffs, attacks: mageAttacks},
	data.FamilyPriest:     {buffs: priestBuffs, attacks: priestAttacks},
	data.FamilyMonk:       {buffs: monkBuffs, attacks: monkAttacks},
	data.FamilyBlacksmith: {buffs: blacksmithBuffs, attacks: blacksmithAttacks},
	data.FamilyAlchemist:  {buffs: alchemistBuffs, attacks: alchemistAttacks},
	data.FamilyAssassin:   {buffs: assassinBuffs, attacks: assassinAttacks},
	data.FamilyRogue:      {buffs: rogueBuffs, attacks: rogueAttacks},
	data.FamilyHunter:     {buffs: hunterBuffs, attacks: hunterAttacks},
	data.FamilyPerformer:  {buffs: performerBuffs, attacks: performerAttacks},
	data.FamilyGunslinger: {buffs: gunslingerBuffs, attacks: gunslingerAttacks},
	data.FamilyNinja:      {buffs: ninjaBuffs, attacks: ninjaAttacks},
}

// BuildChains resolves equipment requirements for every combination once.
func BuildChains() Chains {
	out := make(Chains, len(rulesByFamily)*len(data.AllWeaponTypes())*2)
	for fam, set := range rulesByFamily {
		for _, w := range data.AllWeaponTypes() {
			for _, shield := range []bool{false, true} {
				out[ChainKey{Family: fam, Weapon: w, Shield: shield}] = &Chain{
					Buffs:   resolveRules(set.buffs, w, shield, false),
					Attacks: resolveRules(set.attacks, w, shield, true),
				}
			}
		}
	}
	return out
}

// For returns the chain of a job with the given equipment; unknown combos get an empty chain.
func (c Chains) For(job data.Job, weapon data.WeaponType, shield bool) *Chain {
	if ch, ok := c[ChainKey{Family: data.FamilyOf(job), Weapon: weapon, Shield: shield}]; ok {
		return ch
	}
	return emptyChain
}

func resolveRules(rules []Rule, weapon data.WeaponType, shield, attack bool) []Rule {
	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if len(r.Weapons) > 0 && !slices.Contains(r.Weapons, weapon) {
			continue
		}
		if r.Shield && !shield {
			continue
		}
		switch {
		case r.Key == "":
		case attack:
			r.toggle = AttackToggle(r.Key)
			r.minSetting = MinTargetsSetting(r.Key)
		default:
			r.toggle = BuffToggle(r.Key)
		}
		out = append(out, r)
	}
	return out
}
