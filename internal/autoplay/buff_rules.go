package autoplay

import "github.com/udisondev/autoplay/internal/data"

// Группы оружия для требований правил.
var (
	twoHandSwords = []data.WeaponType{data.WeaponTwoHandSword}
	spears        = []data.WeaponType{data.WeaponOneHandSpear, data.WeaponTwoHandSpear}
	axesAndMaces  = []data.WeaponType{data.WeaponOneHandAxe, data.WeaponTwoHandAxe, data.WeaponMace, data.WeaponTwoHandMace}
	katars        = []data.WeaponType{data.WeaponKatar}
	daggers       = []data.WeaponType{data.WeaponDagger}
	bows          = []data.WeaponType{data.WeaponBow}
	instruments   = []data.WeaponType{data.WeaponInstrument}
	whips         = []data.WeaponType{data.WeaponWhip}
	revolvers     = []data.WeaponType{data.WeaponRevolver}
	rifles        = []data.WeaponType{data.WeaponRifle}
	gatlings      = []data.WeaponType{data.WeaponGatling}
	shotguns      = []data.WeaponType{data.WeaponShotgun}
	grenades      = []data.WeaponType{data.WeaponGrenade}
	huumas        = []data.WeaponType{data.WeaponHuuma}
	firearms      = []data.WeaponType{data.WeaponRevolver, data.WeaponRifle, data.WeaponGatling, data.WeaponShotgun, data.WeaponGrenade}
)

// Self-buff chains, highest priority first.

var knightBuffs = []Rule{
	{Key: "aura_blade", Skill: data.SkillLKAuraBlade, Status: data.StatusAuraBlade},
	{Key: "two_hand_quicken", Skill: data.SkillKNTwoHandQuicken, Status: data.StatusTwoHandQuicken, Weapons: twoHandSwords},
	{Key: "parrying", Skill: data.SkillLKParrying, Status: data.StatusParrying, Weapons: twoHandSwords},
	{Key: "lk_concentration", Skill: data.SkillLKConcentration, Status: data.StatusConcentration},
	{Key: "endure", Skill: data.SkillSMEndure, Status: data.StatusEndure},
}

var crusaderBuffs = []Rule{
	{Key: "auto_guard", Skill: data.SkillCRAutoGuard, Status: data.StatusAutoGuard, Shield: true},
	{Key: "reflect_shield", Skill: data.SkillCRReflectShield, Status: data.StatusReflectShield, Shield: true},
	{Key: "spear_quicken", Skill: data.SkillCRSpearQuicken, Status: data.StatusSpearQuicken,
		Weapons: []data.WeaponType{data.WeaponTwoHandSpear}},
	{Key: "endure", Skill: data.SkillSMEndure, Status: data.StatusEndure},
}

var mageBuffs = []Rule{
	// HP > 10%
	{Key: "energy_coat", Skill: data.SkillMGEnergyCoat, Status: data.StatusEnergyCoat, When: hpAbove(10)},
}

var priestBuffs = []Rule{
	{Key: "kyrie", Skill: data.SkillPRKyrie, Status: data.StatusKyrie},
	{Key: "blessing", Skill: data.SkillALBlessing, Status: data.StatusBlessing},
	{Key: "increase_agi", Skill: data.SkillALIncAgi, Status: data.StatusIncreaseAgi},
	{Key: "angelus", Skill: data.SkillALAngelus, Status: data.StatusAngelus},
	{Key: "magnificat", Skill: data.SkillPRMagnificat, Status: data.StatusMagnificat},
	{Key: "gloria", Skill: data.SkillPRGloria, Status: data.StatusGloria},
}

var monkBuffs = []Rule{
	{Key: "blessing", Skill: data.SkillALBlessing, Status: data.StatusBlessing},
	{Key: "increase_agi", Skill: data.SkillALIncAgi, Status: data.StatusIncreaseAgi},
	{Key: "angelus", Skill: data.SkillALAngelus, Status: data.StatusAngelus},
}

var blacksmithBuffs = []Rule{
	{Key: "adrenaline", Skill: data.SkillBSAdrenaline, Status: data.StatusAdrenaline, Weapons: axesAndMaces},
	{Key: "weapon_perfection", Skill: data.SkillBSWeaponPerfect, Status: data.StatusWeaponPerfection},
	{Key: "over_thrust", Skill: data.SkillBSOverThrust, Status: data.StatusOverThrust},
	{Key: "maximize_power", Skill: data.SkillBSMaximize, Status: data.StatusMaximizePower},
}

// Chemical Protection consumes a Glistening Coat (checked by reagent).
var alchemistBuffs = []Rule{
	{Key: "cp_weapon", Skill: data.SkillAMCPWeapon, Status: data.StatusCPWeapon},
	{Key: "cp_shield", Skill: data.SkillAMCPShield, Status: data.StatusCPShield, Shield: true},
	{Key: "cp_armor", Skill: data.SkillAMCPArmor, Status: data.StatusCPArmor},
	{Key: "cp_helm", Skill: data.SkillAMCPHelm, Status: data.StatusCPHelm},
}

var assassinBuffs = []Rule{
	{Key: "edp", Skill: data.SkillASCEDP, Status: data.StatusEDP},
	{Key: "enchant_poison", Skill: data.SkillASEnchantPoison, Status: data.StatusEnchantPoison},
	{Key: "poison_react", Skill: data.SkillASPoisonReact, Status: data.StatusPoisonReact},
}

var rogueBuffs []Rule

var hunterBuffs = []Rule{
	{Key: "concentration", Skill: data.SkillACConcentration, Status: data.StatusConcentrate, Channeled: true},
	{Key: "true_sight", Skill: data.SkillSNSight, Status: data.StatusTrueSight},
	{Key: "wind_walk", Skill: data.SkillSNWindWalk, Status: data.StatusWindWalk},
}

var performerBuffs = []Rule{
	{Key: "concentration", Skill: data.SkillACConcentration, Status: data.StatusConcentrate, Channeled: true},
}

var gunslingerBuffs = []Rule{
	{Key: "gatling_fever", Skill: data.SkillGSGatlingFever, Status: data.StatusGatlingFever, Weapons: gatlings},
	{Key: "increasing", Skill: data.SkillGSIncreasing, Status: data.StatusIncreasing},
	{Key: "adjustment", Skill: data.SkillGSAdjustment, Status: data.StatusAdjustment},
}

var ninjaBuffs = []Rule{
	{Key: "utsusemi", Skill: data.SkillNJUtsusemi, Status: data.StatusUtsusemi},
	{Key: "nen", Skill: data.SkillNJNen, Status: data.StatusNen},
}
