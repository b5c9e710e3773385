package data

// Item IDs (rAthena numbering).
const (
	ItemRedPotion           int32 = 501
	ItemOrangePotion        int32 = 502
	ItemYellowPotion        int32 = 503
	ItemWhitePotion         int32 = 504
	ItemBluePotion          int32 = 505
	ItemFlyWing             int32 = 601
	ItemConcentrationPotion int32 = 645
	ItemAwakeningPotion     int32 = 656
	ItemBerserkPotion       int32 = 657
	ItemPoisonBottle        int32 = 678
	ItemAcidBottle          int32 = 7136
	ItemBottleGrenade       int32 = 7135
	ItemGlisteningCoat      int32 = 7139
	ItemBattleManual        int32 = 12208
	ItemBubbleGum           int32 = 12210
	ItemJobManual           int32 = 12263
)

// ItemKind — категория эффекта расходника.
type ItemKind int8

const (
	ItemKindEtc ItemKind = iota
	ItemKindHealing
	ItemKindAspdPotion
	ItemKindBoost
	ItemKindTeleport
)

// itemDef — определение предмета для Go-литералов.
type itemDef struct {
	id    int32
	name  string
	kind  ItemKind
	hpMin int32
	hpMax int32
	spMin int32
	spMax int32

	// status applied on use (ASPD tier, exp boosts)
	status     StatusType
	durationMs int32
}

var itemDefs = []itemDef{
	{id: ItemRedPotion, name: "Red Potion", kind: ItemKindHealing, hpMin: 45, hpMax: 65},
	{id: ItemOrangePotion, name: "Orange Potion", kind: ItemKindHealing, hpMin: 105, hpMax: 145},
	{id: ItemYellowPotion, name: "Yellow Potion", kind: ItemKindHealing, hpMin: 175, hpMax: 235},
	{id: ItemWhitePotion, name: "White Potion", kind: ItemKindHealing, hpMin: 325, hpMax: 405},
	{id: ItemBluePotion, name: "Blue Potion", kind: ItemKindHealing, spMin: 40, spMax: 60},
	{id: ItemFlyWing, name: "Fly Wing", kind: ItemKindTeleport},
	{id: ItemConcentrationPotion, name: "Concentration Potion", kind: ItemKindAspdPotion, status: StatusAspdPotion0, durationMs: 1800000},
	{id: ItemAwakeningPotion, name: "Awakening Potion", kind: ItemKindAspdPotion, status: StatusAspdPotion1, durationMs: 1800000},
	{id: ItemBerserkPotion, name: "Berserk Potion", kind: ItemKindAspdPotion, status: StatusAspdPotion2, durationMs: 1800000},
	{id: ItemPoisonBottle, name: "Poison Bottle"},
	{id: ItemAcidBottle, name: "Acid Bottle"},
	{id: ItemBottleGrenade, name: "Bottle Grenade"},
	{id: ItemGlisteningCoat, name: "Glistening Coat"},
	{id: ItemBattleManual, name: "Field Manual", kind: ItemKindBoost, status: StatusExpBoost, durationMs: 1800000},
	{id: ItemBubbleGum, name: "Bubble Gum", kind: ItemKindBoost, status: StatusItemBoost, durationMs: 1800000},
	{id: ItemJobManual, name: "Job Manual", kind: ItemKindBoost, status: StatusJobExpBoost, durationMs: 1800000},
}
