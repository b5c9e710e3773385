package autoplay

import (
	"time"

	"github.com/udisondev/autoplay/internal/data"
	"github.com/udisondev/autoplay/internal/model"
)

// TargetMode — как правило выбирает цель каста.
type TargetMode uint8

const (
	TargetLocked TargetMode = iota // locked hostile
	TargetCaster                   // self-centered, cast on the caster's own ID
	TargetGround                   // cast at the locked hostile's cell
)

// Predicate is an extra per-tick eligibility check of a rule.
type Predicate func(st *tickState) bool

// Rule — декларативный кандидат в цепочке баффов или атак.
type Rule struct {
	Key       string // settings key; toggle is ap_buff_<Key> / ap_atk_<Key>
	Skill     int32
	Status    data.StatusType // buff: skipped while active
	Channeled bool            // buff tracked by the shadow timer

	MinTargets int32 // area skills: required hostile count, 0 = single target
	Target     TargetMode
	Delay      time.Duration // cooldown after cast, 0 = cast time + after-cast delay

	// equipment requirements, resolved when chains are built
	Weapons []data.WeaponType // nil = any weapon
	Shield  bool

	When Predicate

	toggle     string
	minSetting string
}

// Toggle returns the enable setting name ("" = always enabled).
func (r *Rule) Toggle() string { return r.toggle }

// verdict — результат проверки одного кандидата.
type verdict uint8

const (
	skip verdict = iota // try the next candidate
	take                // this candidate wins
	halt                // stop evaluation, nothing is chosen
)

// firstEligible walks rules in priority order and returns the first taken one.
func firstEligible(rules []Rule, judge func(*Rule) verdict) *Rule {
	for i := range rules {
		switch judge(&rules[i]) {
		case take:
			return &rules[i]
		case halt:
			return nil
		}
	}
	return nil
}

// tickState — снимок входных данных одного тика.
type tickState struct {
	now      time.Time
	charID   int64
	player   *model.Player
	session  *Session
	cfg      Config
	tuning   Tuning
	chain    *Chain
	spatial  Spatial
	hostiles int32
	action   string
}

// enabled checks the toggle and returns the learned level.
func (m *Manager) enabled(st *tickState, r *Rule) (int32, bool) {
	if r.toggle != "" && m.deps.Settings.Get(st.charID, r.toggle) == 0 {
		return 0, false
	}
	lvl := st.player.SkillLevel(r.Skill)
	return lvl, lvl > 0
}

// affordable checks SP, reagent and the extra predicate at the learned level.
func (m *Manager) affordable(st *tickState, r *Rule, lvl int32) bool {
	tmpl := data.GetSkillTemplate(r.Skill, lvl)
	if tmpl == nil {
		return false
	}
	if st.player.CurrentSP() < tmpl.SPCost {
		return false
	}
	if tmpl.ItemConsume > 0 && st.player.Inventory().FindByItemID(tmpl.ItemConsume) < 0 {
		return false
	}
	return r.When == nil || r.When(st)
}

// onWater requires the caster to stand on a water cell.
func onWater(st *tickState) bool {
	return st.spatial.IsWater(st.player.Location())
}

// hpAbove requires HP strictly above pct percent.
func hpAbove(pct int32) Predicate {
	return func(st *tickState) bool {
		return HPPct(st.player.Character) > pct
	}
}
