package data

// skillDef — определение скилла с per-level массивами.
// Для полей-слайсов: индекс = level-1. Если массив короче levels — берётся последний элемент.
// Одноэлементный слайс = одинаковое значение для всех уровней.
type skillDef struct {
	id          int32
	name        string
	levels      int32
	operateType OperateType
	targetType  string
	castRange   int32
	status      StatusType
	itemConsume int32

	// per-level arrays (index = level-1), times in ms
	spCost    []int32
	castTime  []int32
	afterCast []int32
	duration  []int32
}

var skillDefs = []skillDef{
	// Swordman / Knight / Crusader
	{id: SkillSMBash, name: "Bash", levels: 10, targetType: "ONE", spCost: []int32{8, 8, 8, 8, 8, 15, 15, 15, 15, 15}},
	{id: SkillSMMagnum, name: "Magnum Break", levels: 10, targetType: "AURA", spCost: []int32{30}, afterCast: []int32{2000}},
	{id: SkillSMEndure, name: "Endure", levels: 10, operateType: OperateBuff, targetType: "SELF", status: StatusEndure,
		spCost: []int32{10}, duration: []int32{10000, 13000, 16000, 19000, 22000, 25000, 28000, 31000, 34000, 37000}},
	{id: SkillKNPierce, name: "Pierce", levels: 10, targetType: "ONE", castRange: 2, spCost: []int32{7}},
	{id: SkillKNBrandishSpear, name: "Brandish Spear", levels: 10, targetType: "ONE", castRange: 1, spCost: []int32{12},
		castTime: []int32{700}, afterCast: []int32{1000}},
	{id: SkillKNSpearStab, name: "Spear Stab", levels: 10, targetType: "ONE", castRange: 4, spCost: []int32{9}},
	{id: SkillKNSpearBoomerang, name: "Spear Boomerang", levels: 5, targetType: "ONE", castRange: 9, spCost: []int32{10},
		afterCast: []int32{1000}},
	{id: SkillKNTwoHandQuicken, name: "Two-Hand Quicken", levels: 10, operateType: OperateBuff, targetType: "SELF",
		status: StatusTwoHandQuicken, spCost: []int32{14, 18, 22, 26, 30, 34, 38, 42, 46, 50},
		duration: []int32{30000, 60000, 90000, 120000, 150000, 180000, 210000, 240000, 270000, 300000}},
	{id: SkillKNBowlingBash, name: "Bowling Bash", levels: 10, targetType: "AURA", spCost: []int32{13, 14, 15, 16, 17, 18, 19, 20, 21, 22},
		castTime: []int32{700}, afterCast: []int32{1000}},
	{id: SkillLKAuraBlade, name: "Aura Blade", levels: 5, operateType: OperateBuff, targetType: "SELF", status: StatusAuraBlade,
		spCost: []int32{18, 26, 34, 42, 50}, duration: []int32{40000, 60000, 80000, 100000, 120000}},
	{id: SkillLKParrying, name: "Parrying", levels: 10, operateType: OperateBuff, targetType: "SELF", status: StatusParrying,
		spCost: []int32{50}, duration: []int32{15000, 20000, 25000, 30000, 35000, 40000, 45000, 50000, 55000, 60000}},
	{id: SkillLKConcentration, name: "Concentration", levels: 5, operateType: OperateBuff, targetType: "SELF", status: StatusConcentration,
		spCost: []int32{14, 18, 22, 26, 30}, duration: []int32{25000, 50000, 75000, 100000, 125000}},
	{id: SkillLKSpiralPierce, name: "Spiral Pierce", levels: 5, targetType: "ONE", castRange: 4, spCost: []int32{18, 21, 24, 27, 30},
		castTime: []int32{1000}, afterCast: []int32{1000}},
	{id: SkillCRAutoGuard, name: "Auto Guard", levels: 10, operateType: OperateBuff, targetType: "SELF", status: StatusAutoGuard,
		spCost: []int32{12, 14, 16, 18, 20, 22, 24, 26, 28, 30}, duration: []int32{300000}},
	{id: SkillCRShieldCharge, name: "Shield Charge", levels: 5, targetType: "ONE", spCost: []int32{10}},
	{id: SkillCRShieldBoomerang, name: "Shield Boomerang", levels: 5, targetType: "ONE", castRange: 9, spCost: []int32{12},
		afterCast: []int32{700}},
	{id: SkillCRReflectShield, name: "Reflect Shield", levels: 10, operateType: OperateBuff, targetType: "SELF", status: StatusReflectShield,
		spCost: []int32{35, 40, 45, 50, 55, 60, 65, 70, 75, 80}, duration: []int32{300000}},
	{id: SkillCRHolyCross, name: "Holy Cross", levels: 10, targetType: "ONE", spCost: []int32{11, 12, 13, 14, 15, 16, 17, 18, 19, 20}},
	{id: SkillCRGrandCross, name: "Grand Cross", levels: 10, targetType: "AURA", spCost: []int32{37, 44, 51, 58, 65, 72, 79, 86, 93, 100},
		castTime: []int32{3000}, afterCast: []int32{1500}},
	{id: SkillCRSpearQuicken, name: "Spear Quicken", levels: 10, operateType: OperateBuff, targetType: "SELF", status: StatusSpearQuicken,
		spCost: []int32{24, 28, 32, 36, 40, 44, 48, 52, 56, 60},
		duration: []int32{30000, 60000, 90000, 120000, 150000, 180000, 210000, 240000, 270000, 300000}},
	{id: SkillPAShieldChain, name: "Shield Chain", levels: 5, targetType: "ONE", castRange: 5, spCost: []int32{28, 31, 34, 37, 40},
		castTime: []int32{1000}, afterCast: []int32{1000}},

	// Mage / Wizard
	{id: SkillMGNapalm, name: "Napalm Beat", levels: 10, targetType: "ONE", castRange: 9, spCost: []int32{9, 9, 9, 12, 12, 12, 15, 15, 15, 18},
		castTime: []int32{1000}, afterCast: []int32{1000}},
	{id: SkillMGSoul, name: "Soul Strike", levels: 10, targetType: "ONE", castRange: 9, spCost: []int32{18, 14, 24, 20, 30, 26, 36, 32, 42, 38},
		castTime: []int32{500}, afterCast: []int32{1200}},
	{id: SkillMGCold, name: "Cold Bolt", levels: 10, targetType: "ONE", castRange: 9, spCost: []int32{12, 14, 16, 18, 20, 22, 24, 26, 28, 30},
		castTime: []int32{700, 1400, 2100, 2800, 3500, 4200, 4900, 5600, 6300, 7000}, afterCast: []int32{1000}},
	{id: SkillMGFireBolt, name: "Fire Bolt", levels: 10, targetType: "ONE", castRange: 9, spCost: []int32{12, 14, 16, 18, 20, 22, 24, 26, 28, 30},
		castTime: []int32{700, 1400, 2100, 2800, 3500, 4200, 4900, 5600, 6300, 7000}, afterCast: []int32{1000}},
	{id: SkillMGLightning, name: "Lightning Bolt", levels: 10, targetType: "ONE", castRange: 9, spCost: []int32{12, 14, 16, 18, 20, 22, 24, 26, 28, 30},
		castTime: []int32{700, 1400, 2100, 2800, 3500, 4200, 4900, 5600, 6300, 7000}, afterCast: []int32{1000}},
	{id: SkillMGFireBall, name: "Fire Ball", levels: 10, targetType: "ONE", castRange: 9, spCost: []int32{25},
		castTime: []int32{1500}, afterCast: []int32{1500}},
	{id: SkillMGThunderstorm, name: "Thunderstorm", levels: 10, targetType: "GROUND", castRange: 9, spCost: []int32{29, 34, 39, 44, 49, 54, 59, 64, 69, 74},
		castTime: []int32{1000, 2000, 3000, 4000, 5000, 6000, 7000, 8000, 9000, 10000}, afterCast: []int32{2000}},
	{id: SkillMGEnergyCoat, name: "Energy Coat", levels: 1, operateType: OperateBuff, targetType: "SELF", status: StatusEnergyCoat,
		spCost: []int32{30}, castTime: []int32{5000}, duration: []int32{300000}},
	{id: SkillWZFirePillar, name: "Fire Pillar", levels: 10, targetType: "GROUND", castRange: 9, spCost: []int32{75},
		castTime: []int32{3000}, afterCast: []int32{1000}},
	{id: SkillWZSightRasher, name: "Sightrasher", levels: 10, targetType: "AURA", spCost: []int32{35, 37, 39, 41, 43, 45, 47, 49, 51, 53},
		castTime: []int32{500}, afterCast: []int32{2000}},
	{id: SkillWZMeteor, name: "Meteor Storm", levels: 10, targetType: "GROUND", castRange: 9, spCost: []int32{20, 24, 30, 34, 40, 44, 50, 54, 60, 64},
		castTime: []int32{15000}, afterCast: []int32{2000, 3000, 3000, 4000, 4000, 5000, 5000, 6000, 6000, 7000}},
	{id: SkillWZJupitel, name: "Jupitel Thunder", levels: 10, targetType: "ONE", castRange: 9, spCost: []int32{20, 23, 26, 29, 32, 35, 38, 41, 44, 47},
		castTime: []int32{2500, 3000, 3500, 4000, 4500, 5000, 5500, 6000, 6500, 7000}},
	{id: SkillWZVermilion, name: "Lord of Vermilion", levels: 10, targetType: "GROUND", castRange: 9, spCost: []int32{60, 64, 68, 72, 76, 80, 84, 88, 92, 96},
		castTime: []int32{15000, 14500, 14000, 13500, 13000, 12500, 12000, 11500, 11000, 10500}, afterCast: []int32{5000}},
	{id: SkillWZWaterBall, name: "Water Ball", levels: 5, targetType: "ONE", castRange: 9, spCost: []int32{15, 20, 20, 25, 25},
		castTime: []int32{1000, 2000, 3000, 4000, 5000}},
	{id: SkillWZFrostNova, name: "Frost Nova", levels: 10, targetType: "AURA", spCost: []int32{45, 43, 41, 39, 37, 35, 33, 31, 29, 27},
		castTime: []int32{6000, 6000, 5500, 5500, 5000, 5000, 4500, 4500, 4000, 4000}, afterCast: []int32{1000}},
	{id: SkillWZStormGust, name: "Storm Gust", levels: 10, targetType: "GROUND", castRange: 9, spCost: []int32{78},
		castTime: []int32{6000, 7000, 8000, 9000, 10000, 11000, 12000, 13000, 14000, 15000}, afterCast: []int32{5000}},
	{id: SkillWZEarthSpike, name: "Earth Spike", levels: 5, targetType: "ONE", castRange: 9, spCost: []int32{12, 14, 16, 18, 20},
		castTime: []int32{700, 1400, 2100, 2800, 3500}, afterCast: []int32{1000}},
	{id: SkillWZHeavenDrive, name: "Heaven's Drive", levels: 5, targetType: "GROUND", castRange: 9, spCost: []int32{28, 32, 36, 40, 44},
		castTime: []int32{1000, 2000, 3000, 4000, 5000}, afterCast: []int32{1000}},
	{id: SkillHWNapalmVulcan, name: "Napalm Vulcan", levels: 5, targetType: "ONE", castRange: 9, spCost: []int32{10, 20, 30, 40, 50},
		castTime: []int32{1000}, afterCast: []int32{1000}},

	// Acolyte / Priest / Monk
	{id: SkillALHeal, name: "Heal", levels: 10, targetType: "SELF", spCost: []int32{13, 16, 19, 22, 25, 28, 31, 34, 37, 40},
		afterCast: []int32{1000}},
	{id: SkillALIncAgi, name: "Increase AGI", levels: 10, operateType: OperateBuff, targetType: "SELF", status: StatusIncreaseAgi,
		spCost: []int32{18, 21, 24, 27, 30, 33, 36, 39, 42, 45}, castTime: []int32{1000}, afterCast: []int32{1000},
		duration: []int32{60000, 80000, 100000, 120000, 140000, 160000, 180000, 200000, 220000, 240000}},
	{id: SkillALAngelus, name: "Angelus", levels: 10, operateType: OperateBuff, targetType: "SELF", status: StatusAngelus,
		spCost: []int32{23, 26, 29, 32, 35, 38, 41, 44, 47, 50}, castTime: []int32{500}, afterCast: []int32{3500},
		duration: []int32{30000, 60000, 90000, 120000, 150000, 180000, 210000, 240000, 270000, 300000}},
	{id: SkillALBlessing, name: "Blessing", levels: 10, operateType: OperateBuff, targetType: "SELF", status: StatusBlessing,
		spCost: []int32{28, 32, 36, 40, 44, 48, 52, 56, 60, 64},
		duration: []int32{60000, 80000, 100000, 120000, 140000, 160000, 180000, 200000, 220000, 240000}},
	{id: SkillALHolyLight, name: "Holy Light", levels: 1, targetType: "ONE", castRange: 9, spCost: []int32{15},
		castTime: []int32{2000}},
	{id: SkillPRKyrie, name: "Kyrie Eleison", levels: 10, operateType: OperateBuff, targetType: "SELF", status: StatusKyrie,
		spCost: []int32{20, 20, 20, 25, 25, 25, 30, 30, 30, 35}, castTime: []int32{2000}, afterCast: []int32{2000},
		duration: []int32{120000}},
	{id: SkillPRMagnificat, name: "Magnificat", levels: 5, operateType: OperateBuff, targetType: "SELF", status: StatusMagnificat,
		spCost: []int32{40}, castTime: []int32{4000}, afterCast: []int32{2000},
		duration: []int32{30000, 45000, 60000, 75000, 90000}},
	{id: SkillPRGloria, name: "Gloria", levels: 5, operateType: OperateBuff, targetType: "SELF", status: StatusGloria,
		spCost: []int32{20}, afterCast: []int32{2000}, duration: []int32{10000, 15000, 20000, 25000, 30000}},
	{id: SkillPRMagnus, name: "Magnus Exorcismus", levels: 10, targetType: "GROUND", castRange: 9, spCost: []int32{40, 42, 44, 46, 48, 50, 52, 54, 56, 58},
		castTime: []int32{15000}, afterCast: []int32{4000}},
	{id: SkillMOInvestigate, name: "Occult Impaction", levels: 5, targetType: "ONE", spCost: []int32{10, 14, 17, 19, 20},
		castTime: []int32{1000}, afterCast: []int32{500}},
	{id: SkillMOFingerOffensive, name: "Throw Spirit Sphere", levels: 5, targetType: "ONE", castRange: 9, spCost: []int32{10},
		castTime: []int32{1000, 2000, 3000, 4000, 5000}, afterCast: []int32{500}},
	{id: SkillCHTigerFist, name: "Tiger Knuckle Fist", levels: 5, targetType: "ONE", spCost: []int32{4, 6, 8, 10, 12}},
	{id: SkillCHChainCrush, name: "Chain Crush Combo", levels: 10, targetType: "ONE", spCost: []int32{4, 6, 8, 10, 12, 14, 16, 18, 20, 22}},

	// Merchant / Blacksmith / Alchemist
	{id: SkillMCMammonite, name: "Mammonite", levels: 10, targetType: "ONE", spCost: []int32{5}},
	{id: SkillBSAdrenaline, name: "Adrenaline Rush", levels: 5, operateType: OperateBuff, targetType: "SELF", status: StatusAdrenaline,
		spCost: []int32{20, 23, 26, 29, 32}, duration: []int32{30000, 60000, 90000, 120000, 150000}},
	{id: SkillBSWeaponPerfect, name: "Weapon Perfection", levels: 5, operateType: OperateBuff, targetType: "SELF", status: StatusWeaponPerfection,
		spCost: []int32{18, 16, 14, 12, 10}, duration: []int32{10000, 20000, 30000, 40000, 50000}},
	{id: SkillBSOverThrust, name: "Power Thrust", levels: 5, operateType: OperateBuff, targetType: "SELF", status: StatusOverThrust,
		spCost: []int32{18, 16, 14, 12, 10}, duration: []int32{20000, 40000, 60000, 80000, 100000}},
	{id: SkillBSMaximize, name: "Maximize Power", levels: 5, operateType: OperateBuff, targetType: "SELF", status: StatusMaximizePower,
		spCost: []int32{10}, duration: []int32{10000, 20000, 30000, 40000, 50000}},
	{id: SkillAMDemonstration, name: "Bomb", levels: 5, targetType: "GROUND", castRange: 9, spCost: []int32{10},
		castTime: []int32{1000}, afterCast: []int32{500}, itemConsume: ItemBottleGrenade},
	{id: SkillAMAcidTerror, name: "Acid Terror", levels: 5, targetType: "ONE", castRange: 9, spCost: []int32{15},
		castTime: []int32{1000}, afterCast: []int32{500}, itemConsume: ItemAcidBottle},
	{id: SkillAMCPWeapon, name: "Chemical Protection Weapon", levels: 5, operateType: OperateBuff, targetType: "SELF", status: StatusCPWeapon,
		spCost: []int32{30}, castTime: []int32{2000}, duration: []int32{120000, 240000, 360000, 480000, 600000}, itemConsume: ItemGlisteningCoat},
	{id: SkillAMCPShield, name: "Chemical Protection Shield", levels: 5, operateType: OperateBuff, targetType: "SELF", status: StatusCPShield,
		spCost: []int32{25}, castTime: []int32{2000}, duration: []int32{120000, 240000, 360000, 480000, 600000}, itemConsume: ItemGlisteningCoat},
	{id: SkillAMCPArmor, name: "Chemical Protection Armor", levels: 5, operateType: OperateBuff, targetType: "SELF", status: StatusCPArmor,
		spCost: []int32{25}, castTime: []int32{2000}, duration: []int32{120000, 240000, 360000, 480000, 600000}, itemConsume: ItemGlisteningCoat},
	{id: SkillAMCPHelm, name: "Chemical Protection Helm", levels: 5, operateType: OperateBuff, targetType: "SELF", status: StatusCPHelm,
		spCost: []int32{20}, castTime: []int32{2000}, duration: []int32{120000, 240000, 360000, 480000, 600000}, itemConsume: ItemGlisteningCoat},

	// Thief / Assassin / Rogue
	{id: SkillTFPoison, name: "Envenom", levels: 10, targetType: "ONE", spCost: []int32{12}},
	{id: SkillASSonicBlow, name: "Sonic Blow", levels: 10, targetType: "ONE", spCost: []int32{16, 18, 20, 22, 24, 26, 28, 30, 32, 34},
		afterCast: []int32{2000}},
	{id: SkillASGrimtooth, name: "Grimtooth", levels: 5, targetType: "ONE", castRange: 7, spCost: []int32{3}},
	{id: SkillASEnchantPoison, name: "Enchant Poison", levels: 10, operateType: OperateBuff, targetType: "SELF", status: StatusEnchantPoison,
		spCost: []int32{20}, duration: []int32{30000, 45000, 60000, 75000, 90000, 105000, 120000, 135000, 150000, 165000}},
	{id: SkillASPoisonReact, name: "Poison React", levels: 10, operateType: OperateBuff, targetType: "SELF", status: StatusPoisonReact,
		spCost: []int32{25, 30, 35, 40, 45, 50, 55, 60, 45, 45}, duration: []int32{20000, 25000, 30000, 35000, 40000, 45000, 50000, 55000, 60000, 60000}},
	{id: SkillASCEDP, name: "Enchant Deadly Poison", levels: 5, operateType: OperateBuff, targetType: "SELF", status: StatusEDP,
		spCost: []int32{60, 70, 80, 90, 100}, castTime: []int32{1000}, duration: []int32{40000, 45000, 50000, 55000, 60000}, itemConsume: ItemPoisonBottle},
	{id: SkillASCBreaker, name: "Soul Breaker", levels: 10, targetType: "ONE", castRange: 9, spCost: []int32{20, 20, 20, 20, 20, 30, 30, 30, 30, 30},
		castTime: []int32{500}, afterCast: []int32{700}},
	{id: SkillASCMeteorAssault, name: "Meteor Assault", levels: 10, targetType: "AURA", spCost: []int32{10, 12, 14, 16, 18, 20, 22, 24, 26, 28},
		castTime: []int32{500}, afterCast: []int32{500}},
	{id: SkillRGBackstab, name: "Back Stab", levels: 10, targetType: "ONE", spCost: []int32{16}, afterCast: []int32{500}},
	{id: SkillRGRaid, name: "Sightless Mind", levels: 5, targetType: "AURA", spCost: []int32{20}},

	// Archer / Hunter / Sniper / Bard / Dancer
	{id: SkillACConcentration, name: "Improve Concentration", levels: 10, operateType: OperateBuff, targetType: "SELF", status: StatusConcentrate,
		spCost: []int32{25, 30, 35, 40, 45, 50, 55, 60, 65, 70},
		duration: []int32{60000, 80000, 100000, 120000, 140000, 160000, 180000, 200000, 220000, 240000}},
	{id: SkillACDouble, name: "Double Strafe", levels: 10, targetType: "ONE", castRange: 9, spCost: []int32{12}},
	{id: SkillACShower, name: "Arrow Shower", levels: 10, targetType: "GROUND", castRange: 9, spCost: []int32{15}, afterCast: []int32{1000}},
	{id: SkillHTBlitzBeat, name: "Blitz Beat", levels: 5, targetType: "ONE", castRange: 9, spCost: []int32{10, 13, 16, 19, 22},
		castTime: []int32{1500}, afterCast: []int32{1000}},
	{id: SkillSNSight, name: "True Sight", levels: 10, operateType: OperateBuff, targetType: "SELF", status: StatusTrueSight,
		spCost: []int32{20, 20, 20, 20, 20, 30, 30, 30, 30, 30}, duration: []int32{30000}},
	{id: SkillSNSharpShooting, name: "Focused Arrow Strike", levels: 5, targetType: "ONE", castRange: 9, spCost: []int32{18, 21, 24, 27, 30},
		castTime: []int32{2000}, afterCast: []int32{1500}},
	{id: SkillSNWindWalk, name: "Wind Walk", levels: 10, operateType: OperateBuff, targetType: "SELF", status: StatusWindWalk,
		spCost: []int32{46, 52, 58, 64, 70, 76, 82, 88, 94, 100}, castTime: []int32{2000}, afterCast: []int32{1000},
		duration: []int32{130000, 160000, 190000, 220000, 250000, 280000, 310000, 340000, 370000, 400000}},
	{id: SkillBAMusicalStrike, name: "Musical Strike", levels: 5, targetType: "ONE", castRange: 9, spCost: []int32{1, 3, 5, 7, 9},
		castTime: []int32{1500}},
	{id: SkillDCThrowArrow, name: "Slinging Arrow", levels: 5, targetType: "ONE", castRange: 9, spCost: []int32{1, 3, 5, 7, 9},
		castTime: []int32{1500}},

	// Gunslinger
	{id: SkillGSTripleAction, name: "Triple Action", levels: 1, targetType: "ONE", castRange: 9, spCost: []int32{20}},
	{id: SkillGSAdjustment, name: "Adjustment", levels: 1, operateType: OperateBuff, targetType: "SELF", status: StatusAdjustment,
		spCost: []int32{15}, duration: []int32{30000}},
	{id: SkillGSIncreasing, name: "Increasing Accuracy", levels: 1, operateType: OperateBuff, targetType: "SELF", status: StatusIncreasing,
		spCost: []int32{30}, duration: []int32{60000}},
	{id: SkillGSMagicalBullet, name: "Magical Bullet", levels: 1, targetType: "ONE", castRange: 9, spCost: []int32{7}},
	{id: SkillGSTracking, name: "Tracking", levels: 10, targetType: "ONE", castRange: 9, spCost: []int32{15, 20, 25, 30, 35, 40, 45, 50, 55, 60},
		castTime: []int32{1000}, afterCast: []int32{1000}},
	{id: SkillGSPiercingShot, name: "Piercing Shot", levels: 5, targetType: "ONE", castRange: 9, spCost: []int32{11, 12, 13, 14, 15},
		castTime: []int32{1500}},
	{id: SkillGSRapidShower, name: "Rapid Shower", levels: 10, targetType: "ONE", castRange: 9, spCost: []int32{22, 24, 26, 28, 30, 32, 34, 36, 38, 40},
		afterCast: []int32{1000}},
	{id: SkillGSDesperado, name: "Desperado", levels: 10, targetType: "AURA", spCost: []int32{32, 34, 36, 38, 40, 42, 44, 46, 48, 50},
		afterCast: []int32{1000}},
	{id: SkillGSGatlingFever, name: "Gatling Fever", levels: 10, operateType: OperateBuff, targetType: "SELF", status: StatusGatlingFever,
		spCost: []int32{30, 32, 34, 36, 38, 40, 42, 44, 46, 48}, duration: []int32{30000, 45000, 60000, 75000, 90000, 105000, 120000, 135000, 150000, 165000}},
	{id: SkillGSFullBuster, name: "Full Buster", levels: 10, targetType: "ONE", castRange: 9, spCost: []int32{20, 25, 30, 35, 40, 45, 50, 55, 60, 65},
		afterCast: []int32{1000}},
	{id: SkillGSSpreadAttack, name: "Spread Attack", levels: 10, targetType: "GROUND", castRange: 9, spCost: []int32{15, 20, 25, 30, 35, 40, 45, 50, 55, 60},
		afterCast: []int32{1000}},
	{id: SkillGSGroundDrift, name: "Ground Drift", levels: 10, targetType: "GROUND", castRange: 9, spCost: []int32{4},
		castTime: []int32{2000}, afterCast: []int32{1000}},

	// Ninja
	{id: SkillNJSyuriken, name: "Throw Shuriken", levels: 10, targetType: "ONE", castRange: 9, spCost: []int32{2}},
	{id: SkillNJKunai, name: "Throw Kunai", levels: 5, targetType: "ONE", castRange: 9, spCost: []int32{3}},
	{id: SkillNJHuuma, name: "Throw Huuma Shuriken", levels: 5, targetType: "ONE", castRange: 9, spCost: []int32{15, 20, 25, 30, 35},
		castTime: []int32{3000}, afterCast: []int32{3000}},
	{id: SkillNJKasumikiri, name: "Haze Slasher", levels: 10, targetType: "ONE", spCost: []int32{8, 10, 12, 14, 16, 18, 20, 22, 24, 26}},
	{id: SkillNJUtsusemi, name: "Cicada Skin Shed", levels: 5, operateType: OperateBuff, targetType: "SELF", status: StatusUtsusemi,
		spCost: []int32{12, 15, 18, 21, 24}, duration: []int32{30000, 50000, 70000, 90000, 110000}},
	{id: SkillNJKouenka, name: "Crimson Fire Petal", levels: 10, targetType: "ONE", castRange: 9, spCost: []int32{18, 20, 22, 24, 26, 28, 30, 32, 34, 36},
		castTime: []int32{700, 1400, 2100, 2800, 3500, 4200, 4900, 5600, 6300, 7000}, afterCast: []int32{1000}},
	{id: SkillNJHyousensou, name: "Lightning Spear of Ice", levels: 10, targetType: "ONE", castRange: 9, spCost: []int32{15, 18, 21, 24, 27, 30, 33, 36, 39, 42},
		castTime: []int32{700, 1400, 2100, 2800, 3500, 4200, 4900, 5600, 6300, 7000}, afterCast: []int32{1000}},
	{id: SkillNJHuujin, name: "Wind Blade", levels: 10, targetType: "ONE", castRange: 9, spCost: []int32{15, 18, 21, 24, 27, 30, 33, 36, 39, 42},
		castTime: []int32{1000, 1500, 2000, 2500, 3000, 3500, 4000, 4500, 5000, 5500}, afterCast: []int32{1000}},
	{id: SkillNJRaigekisai, name: "Lightning Crash", levels: 5, targetType: "AURA", spCost: []int32{16, 20, 24, 28, 32},
		castTime: []int32{3000, 3500, 4000, 4500, 5000}, afterCast: []int32{1000}},
	{id: SkillNJKamaitachi, name: "North Wind", levels: 5, targetType: "ONE", castRange: 9, spCost: []int32{24, 28, 32, 36, 40},
		castTime: []int32{3000, 3500, 4000, 4500, 5000}, afterCast: []int32{1000}},
	{id: SkillNJNen, name: "Soul", levels: 5, operateType: OperateBuff, targetType: "SELF", status: StatusNen,
		spCost: []int32{20, 30, 40, 50, 60}, castTime: []int32{1000}, duration: []int32{30000, 45000, 60000, 75000, 90000}},
}
