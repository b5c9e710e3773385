package autoplay

// Имена настроек персонажа в хранилище переменных. Ноль или отсутствие = выключено.
const (
	// consumables
	SettingAspdItem     = "ap_aspd_item"
	SettingUseExpManual = "ap_use_exp_manual"
	SettingUseJobManual = "ap_use_job_manual"
	SettingUseBubbleGum = "ap_use_bubble_gum"
	SettingHPItem       = "ap_hp_item"
	SettingHPPct        = "ap_hp_pct"
	SettingHPTarget     = "ap_hp_target"
	SettingSPItem       = "ap_sp_item"
	SettingSPPct        = "ap_sp_pct"
	SettingSPTarget     = "ap_sp_target"

	// defense
	SettingRestHP     = "ap_rest_hp"
	SettingRestSP     = "ap_rest_sp"
	SettingRestBuffer = "ap_rest_buffer"
	SettingTPMobs     = "ap_tp_mobs"
	SettingTPMode     = "ap_tp_mode"
	SettingTPItem     = "ap_tp_item"
	SettingIdleCycles = "ap_idle_cycles"

	// threat
	SettingSearchRadius  = "ap_search_radius"
	SettingAttackersOnly = "ap_threat_attackers_only"
)

const (
	buffTogglePrefix   = "ap_buff_"
	attackTogglePrefix = "ap_atk_"
	minTargetsSuffix   = "_min"
)

// BuffToggle returns the enable setting of a buff rule key.
func BuffToggle(key string) string { return buffTogglePrefix + key }

// AttackToggle returns the enable setting of an offensive rule key.
func AttackToggle(key string) string { return attackTogglePrefix + key }

// MinTargetsSetting returns the per-character min-targets override of an offensive rule key.
func MinTargetsSetting(key string) string { return attackTogglePrefix + key + minTargetsSuffix }

// TeleportMode — предпочтение способа телепорта (ap_tp_mode).
type TeleportMode int64

const (
	TeleportItemThenWarp TeleportMode = iota // Fly Wing if present, else direct warp
	TeleportItemOnly
	TeleportWarpOnly
	TeleportDisabled
)
