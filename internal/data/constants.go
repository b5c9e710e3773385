package data

// WeaponType — категория оружия в правой руке (rAthena W_* values).
type WeaponType int32

const (
	WeaponFist WeaponType = iota
	WeaponDagger
	WeaponOneHandSword
	WeaponTwoHandSword
	WeaponOneHandSpear
	WeaponTwoHandSpear
	WeaponOneHandAxe
	WeaponTwoHandAxe
	WeaponMace
	WeaponTwoHandMace
	WeaponStaff
	WeaponBow
	WeaponKnuckle
	WeaponInstrument
	WeaponWhip
	WeaponBook
	WeaponKatar
	WeaponRevolver
	WeaponRifle
	WeaponGatling
	WeaponShotgun
	WeaponGrenade
	WeaponHuuma
	WeaponTwoHandStaff
	weaponTypeCount
)

var weaponTypeNames = [...]string{
	WeaponFist:         "Fist",
	WeaponDagger:       "Dagger",
	WeaponOneHandSword: "One-Handed Sword",
	WeaponTwoHandSword: "Two-Handed Sword",
	WeaponOneHandSpear: "One-Handed Spear",
	WeaponTwoHandSpear: "Two-Handed Spear",
	WeaponOneHandAxe:   "One-Handed Axe",
	WeaponTwoHandAxe:   "Two-Handed Axe",
	WeaponMace:         "Mace",
	WeaponTwoHandMace:  "Two-Handed Mace",
	WeaponStaff:        "Staff",
	WeaponBow:          "Bow",
	WeaponKnuckle:      "Knuckle",
	WeaponInstrument:   "Instrument",
	WeaponWhip:         "Whip",
	WeaponBook:         "Book",
	WeaponKatar:        "Katar",
	WeaponRevolver:     "Revolver",
	WeaponRifle:        "Rifle",
	WeaponGatling:      "Gatling Gun",
	WeaponShotgun:      "Shotgun",
	WeaponGrenade:      "Grenade Launcher",
	WeaponHuuma:        "Huuma Shuriken",
	WeaponTwoHandStaff: "Two-Handed Staff",
}

// String returns human-readable weapon category name.
func (w WeaponType) String() string {
	if w < 0 || w >= weaponTypeCount {
		return "Unknown"
	}
	return weaponTypeNames[w]
}

// IsValid reports whether w is a known weapon category.
func (w WeaponType) IsValid() bool {
	return w >= 0 && w < weaponTypeCount
}

// IsTwoHanded reports whether the weapon occupies both hands.
func (w WeaponType) IsTwoHanded() bool {
	switch w {
	case WeaponTwoHandSword, WeaponTwoHandSpear, WeaponTwoHandAxe, WeaponTwoHandMace,
		WeaponTwoHandStaff, WeaponBow, WeaponKatar, WeaponRifle, WeaponGatling,
		WeaponShotgun, WeaponGrenade, WeaponHuuma:
		return true
	}
	return false
}

// IsSpear reports whether the weapon is a one- or two-handed spear.
func (w WeaponType) IsSpear() bool {
	return w == WeaponOneHandSpear || w == WeaponTwoHandSpear
}

// AllWeaponTypes returns every known weapon category in declaration order.
func AllWeaponTypes() []WeaponType {
	out := make([]WeaponType, 0, weaponTypeCount)
	for w := WeaponFist; w < weaponTypeCount; w++ {
		out = append(out, w)
	}
	return out
}

// StatusType — флаг активного эффекта на персонаже (rAthena SC_*).
// Ядро автоплея проверяет только наличие флага, без длительности.
type StatusType int32

const (
	StatusNone StatusType = iota

	// Swordman line
	StatusEndure
	StatusTwoHandQuicken
	StatusParrying
	StatusAuraBlade
	StatusConcentration // Lord Knight Concentration
	StatusSpearQuicken
	StatusAutoGuard
	StatusReflectShield

	// Mage line
	StatusEnergyCoat

	// Acolyte line
	StatusBlessing
	StatusIncreaseAgi
	StatusAngelus
	StatusKyrie
	StatusGloria
	StatusMagnificat

	// Merchant line
	StatusAdrenaline
	StatusWeaponPerfection
	StatusOverThrust
	StatusMaximizePower
	StatusCPWeapon
	StatusCPShield
	StatusCPArmor
	StatusCPHelm

	// Thief line
	StatusEnchantPoison
	StatusPoisonReact
	StatusEDP

	// Archer line
	StatusConcentrate // Improve Concentration (channeled)
	StatusTrueSight
	StatusWindWalk

	// Expanded classes
	StatusAdjustment
	StatusIncreasing
	StatusGatlingFever
	StatusUtsusemi
	StatusNen

	// Consumables
	StatusAspdPotion0
	StatusAspdPotion1
	StatusAspdPotion2
	StatusAspdPotion3
	StatusExpBoost
	StatusJobExpBoost
	StatusItemBoost

	statusTypeCount
)

var statusTypeNames = [...]string{
	StatusNone:             "None",
	StatusEndure:           "Endure",
	StatusTwoHandQuicken:   "TwoHandQuicken",
	StatusParrying:         "Parrying",
	StatusAuraBlade:        "AuraBlade",
	StatusConcentration:    "Concentration",
	StatusSpearQuicken:     "SpearQuicken",
	StatusAutoGuard:        "AutoGuard",
	StatusReflectShield:    "ReflectShield",
	StatusEnergyCoat:       "EnergyCoat",
	StatusBlessing:         "Blessing",
	StatusIncreaseAgi:      "IncreaseAgi",
	StatusAngelus:          "Angelus",
	StatusKyrie:            "Kyrie",
	StatusGloria:           "Gloria",
	StatusMagnificat:       "Magnificat",
	StatusAdrenaline:       "Adrenaline",
	StatusWeaponPerfection: "WeaponPerfection",
	StatusOverThrust:       "OverThrust",
	StatusMaximizePower:    "MaximizePower",
	StatusCPWeapon:         "CPWeapon",
	StatusCPShield:         "CPShield",
	StatusCPArmor:          "CPArmor",
	StatusCPHelm:           "CPHelm",
	StatusEnchantPoison:    "EnchantPoison",
	StatusPoisonReact:      "PoisonReact",
	StatusEDP:              "EDP",
	StatusConcentrate:      "Concentrate",
	StatusTrueSight:        "TrueSight",
	StatusWindWalk:         "WindWalk",
	StatusAdjustment:       "Adjustment",
	StatusIncreasing:       "Increasing",
	StatusGatlingFever:     "GatlingFever",
	StatusUtsusemi:         "Utsusemi",
	StatusNen:              "Nen",
	StatusAspdPotion0:      "AspdPotion0",
	StatusAspdPotion1:      "AspdPotion1",
	StatusAspdPotion2:      "AspdPotion2",
	StatusAspdPotion3:      "AspdPotion3",
	StatusExpBoost:         "ExpBoost",
	StatusJobExpBoost:      "JobExpBoost",
	StatusItemBoost:        "ItemBoost",
}

// String returns status name.
func (s StatusType) String() string {
	if s < 0 || s >= statusTypeCount {
		return "Unknown"
	}
	return statusTypeNames[s]
}

// StatusTypeCount returns the number of declared status types (for bitsets).
func StatusTypeCount() int {
	return int(statusTypeCount)
}

// AspdPotionStatuses — все четыре ступени ASPD-зелий.
// Активная любая из них блокирует использование следующего зелья.
var AspdPotionStatuses = [...]StatusType{
	StatusAspdPotion0,
	StatusAspdPotion1,
	StatusAspdPotion2,
	StatusAspdPotion3,
}
