package autoplay

import (
	"time"

	"github.com/udisondev/autoplay/internal/data"
)

// Offensive chains, highest priority first. Area skills carry MinTargets;
// self-centered ones are cast on the caster regardless of the locked target.

var knightAttacks = []Rule{
	{Key: "bowling_bash", Skill: data.SkillKNBowlingBash, MinTargets: 2, Target: TargetCaster, Delay: 1700 * time.Millisecond},
	{Key: "brandish_spear", Skill: data.SkillKNBrandishSpear, MinTargets: 2, Weapons: spears, Delay: 1700 * time.Millisecond},
	{Key: "magnum_break", Skill: data.SkillSMMagnum, MinTargets: 2, Target: TargetCaster, Delay: 2000 * time.Millisecond},
	{Key: "spiral_pierce", Skill: data.SkillLKSpiralPierce, Weapons: spears, Delay: 2000 * time.Millisecond},
	{Key: "pierce", Skill: data.SkillKNPierce, Weapons: spears},
	{Key: "spear_boomerang", Skill: data.SkillKNSpearBoomerang, Weapons: spears},
	{Key: "spear_stab", Skill: data.SkillKNSpearStab, Weapons: spears},
	{Key: "bash", Skill: data.SkillSMBash},
}

var crusaderAttacks = []Rule{
	{Key: "grand_cross", Skill: data.SkillCRGrandCross, MinTargets: 3, Target: TargetCaster, Delay: 4500 * time.Millisecond},
	{Key: "shield_chain", Skill: data.SkillPAShieldChain, Shield: true, Delay: 2000 * time.Millisecond},
	{Key: "shield_boomerang", Skill: data.SkillCRShieldBoomerang, Shield: true},
	{Key: "holy_cross", Skill: data.SkillCRHolyCross},
	{Key: "shield_charge", Skill: data.SkillCRShieldCharge, Shield: true},
	{Key: "magnum_break", Skill: data.SkillSMMagnum, MinTargets: 2, Target: TargetCaster, Delay: 2000 * time.Millisecond},
	{Key: "bash", Skill: data.SkillSMBash},
}

var mageAttacks = []Rule{
	{Key: "storm_gust", Skill: data.SkillWZStormGust, MinTargets: 3, Target: TargetGround},
	{Key: "lord_of_vermilion", Skill: data.SkillWZVermilion, MinTargets: 3, Target: TargetGround},
	{Key: "meteor_storm", Skill: data.SkillWZMeteor, MinTargets: 3, Target: TargetGround},
	{Key: "heavens_drive", Skill: data.SkillWZHeavenDrive, MinTargets: 2, Target: TargetGround},
	{Key: "fire_ball", Skill: data.SkillMGFireBall, MinTargets: 2, Delay: 1500 * time.Millisecond},
	{Key: "frost_nova", Skill: data.SkillWZFrostNova, MinTargets: 2, Target: TargetCaster},
	{Key: "sight_rasher", Skill: data.SkillWZSightRasher, MinTargets: 2, Target: TargetCaster},
	{Key: "thunderstorm", Skill: data.SkillMGThunderstorm, MinTargets: 2, Target: TargetGround},
	{Key: "fire_pillar", Skill: data.SkillWZFirePillar, MinTargets: 1, Target: TargetGround},
	{Key: "napalm_vulcan", Skill: data.SkillHWNapalmVulcan},
	{Key: "jupitel_thunder", Skill: data.SkillWZJupitel},
	{Key: "water_ball", Skill: data.SkillWZWaterBall, When: onWater},
	{Key: "earth_spike", Skill: data.SkillWZEarthSpike},
	{Key: "cold_bolt", Skill: data.SkillMGCold},
	{Key: "fire_bolt", Skill: data.SkillMGFireBolt},
	{Key: "lightning_bolt", Skill: data.SkillMGLightning},
	{Key: "soul_strike", Skill: data.SkillMGSoul},
	{Key: "napalm_beat", Skill: data.SkillMGNapalm},
}

var priestAttacks = []Rule{
	{Key: "magnus", Skill: data.SkillPRMagnus, MinTargets: 3, Target: TargetGround},
	{Key: "holy_light", Skill: data.SkillALHolyLight},
}

var monkAttacks = []Rule{
	{Key: "occult_impaction", Skill: data.SkillMOInvestigate},
	{Key: "tiger_fist", Skill: data.SkillCHTigerFist, Weapons: []data.WeaponType{data.WeaponKnuckle, data.WeaponFist}},
	{Key: "finger_offensive", Skill: data.SkillMOFingerOffensive},
	{Key: "holy_light", Skill: data.SkillALHolyLight},
}

var blacksmithAttacks = []Rule{
	{Key: "mammonite", Skill: data.SkillMCMammonite},
}

var alchemistAttacks = []Rule{
	{Key: "demonstration", Skill: data.SkillAMDemonstration, MinTargets: 1, Target: TargetGround},
	{Key: "acid_terror", Skill: data.SkillAMAcidTerror},
	{Key: "mammonite", Skill: data.SkillMCMammonite},
}

var assassinAttacks = []Rule{
	{Key: "meteor_assault", Skill: data.SkillASCMeteorAssault, MinTargets: 2, Target: TargetCaster, Delay: 1000 * time.Millisecond},
	{Key: "grimtooth", Skill: data.SkillASGrimtooth, MinTargets: 2, Weapons: katars},
	{Key: "soul_breaker", Skill: data.SkillASCBreaker, Delay: 1000 * time.Millisecond},
	{Key: "sonic_blow", Skill: data.SkillASSonicBlow, Weapons: katars, Delay: 2000 * time.Millisecond},
	{Key: "envenom", Skill: data.SkillTFPoison},
}

var rogueAttacks = []Rule{
	{Key: "raid", Skill: data.SkillRGRaid, MinTargets: 2, Target: TargetCaster},
	{Key: "back_stab", Skill: data.SkillRGBackstab, Weapons: daggers},
	{Key: "double_strafe", Skill: data.SkillACDouble, Weapons: bows},
	{Key: "envenom", Skill: data.SkillTFPoison},
}

var hunterAttacks = []Rule{
	{Key: "arrow_shower", Skill: data.SkillACShower, MinTargets: 2, Target: TargetGround, Weapons: bows},
	{Key: "sharp_shooting", Skill: data.SkillSNSharpShooting, Weapons: bows, Delay: 2500 * time.Millisecond},
	{Key: "blitz_beat", Skill: data.SkillHTBlitzBeat},
	{Key: "double_strafe", Skill: data.SkillACDouble, Weapons: bows},
}

var performerAttacks = []Rule{
	{Key: "musical_strike", Skill: data.SkillBAMusicalStrike, Weapons: instruments},
	{Key: "throw_arrow", Skill: data.SkillDCThrowArrow, Weapons: whips},
	{Key: "arrow_shower", Skill: data.SkillACShower, MinTargets: 2, Target: TargetGround, Weapons: bows},
	{Key: "double_strafe", Skill: data.SkillACDouble, Weapons: bows},
}

var gunslingerAttacks = []Rule{
	{Key: "desperado", Skill: data.SkillGSDesperado, MinTargets: 2, Target: TargetCaster, Weapons: revolvers},
	{Key: "spread_attack", Skill: data.SkillGSSpreadAttack, MinTargets: 2, Target: TargetGround, Weapons: shotguns},
	{Key: "ground_drift", Skill: data.SkillGSGroundDrift, MinTargets: 2, Target: TargetGround, Weapons: grenades},
	{Key: "full_buster", Skill: data.SkillGSFullBuster, Weapons: shotguns},
	{Key: "tracking", Skill: data.SkillGSTracking, Weapons: rifles, Delay: 1500 * time.Millisecond},
	{Key: "piercing_shot", Skill: data.SkillGSPiercingShot, Weapons: rifles},
	{Key: "rapid_shower", Skill: data.SkillGSRapidShower, Weapons: revolvers},
	{Key: "triple_action", Skill: data.SkillGSTripleAction, Weapons: revolvers},
	{Key: "magical_bullet", Skill: data.SkillGSMagicalBullet, Weapons: firearms},
}

var ninjaAttacks = []Rule{
	{Key: "raigekisai", Skill: data.SkillNJRaigekisai, MinTargets: 2, Target: TargetCaster},
	{Key: "kamaitachi", Skill: data.SkillNJKamaitachi, MinTargets: 2},
	{Key: "throw_huuma", Skill: data.SkillNJHuuma, Weapons: huumas},
	{Key: "kasumikiri", Skill: data.SkillNJKasumikiri},
	{Key: "hyousensou", Skill: data.SkillNJHyousensou},
	{Key: "huujin", Skill: data.SkillNJHuujin},
	{Key: "kouenka", Skill: data.SkillNJKouenka},
	{Key: "throw_kunai", Skill: data.SkillNJKunai},
	{Key: "throw_shuriken", Skill: data.SkillNJSyuriken},
}
