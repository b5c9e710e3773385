package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/udisondev/autoplay/internal/autoplay"
	"github.com/udisondev/autoplay/internal/config"
	"github.com/udisondev/autoplay/internal/data"
	"github.com/udisondev/autoplay/internal/model"
	"github.com/udisondev/autoplay/internal/world"
)

const demoMapID int32 = 1

// demoPreset — класс и экипировка демо-персонажа.
type demoPreset struct {
	name   string
	job    data.Job
	weapon data.WeaponType
	shield bool
}

var demoPresets = []demoPreset{
	{"Seyren", data.JobLordKnight, data.WeaponTwoHandSword, false},
	{"Kathryne", data.JobHighWizard, data.WeaponStaff, false},
	{"Cecil", data.JobSniper, data.WeaponBow, false},
	{"Margaretha", data.JobHighPriest, data.WeaponMace, false},
	{"Howard", data.JobWhitesmith, data.WeaponTwoHandAxe, false},
	{"Eremes", data.JobAssassinCross, data.WeaponKatar, false},
	{"Randel", data.JobPaladin, data.WeaponOneHandSpear, true},
	{"Flamel", data.JobCreator, data.WeaponOneHandSword, true},
}

type demoMonster struct {
	templateID int32
	name       string
	level      int32
	hp         int32
	aggressive bool
}

var demoMonsters = []demoMonster{
	{1002, "Poring", 1, 50, false},
	{1007, "Fabre", 2, 63, false},
	{1063, "Lunatic", 3, 60, false},
	{1052, "Rocker", 9, 198, false},
	{1113, "Drops", 3, 55, false},
	{1031, "Poporing", 14, 344, true},
}

var demoStock = []struct {
	itemID int32
	count  int32
}{
	{data.ItemWhitePotion, 200},
	{data.ItemBluePotion, 100},
	{data.ItemFlyWing, 50},
	{data.ItemBerserkPotion, 3},
	{data.ItemAwakeningPotion, 3},
	{data.ItemBattleManual, 2},
	{data.ItemBubbleGum, 2},
	{data.ItemBottleGrenade, 50},
	{data.ItemAcidBottle, 50},
	{data.ItemPoisonBottle, 10},
	{data.ItemGlisteningCoat, 10},
}

// demoSettings are applied to characters without stored settings.
var demoSettings = map[string]int64{
	autoplay.SettingRestHP:       20,
	autoplay.SettingRestSP:       10,
	autoplay.SettingTPMobs:       6,
	autoplay.SettingUseExpManual: 1,
	autoplay.SettingUseBubbleGum: 1,
}

// seedDemo builds a field map with monsters and logs in autoplaying characters.
func seedDemo(ctx context.Context, cfg config.DemoConfig, w *world.World, sessions *sessionHost, rnd *rand.Rand) error {
	field, err := w.AddMap(demoMapID, "prt_fild08", cfg.MapWidth, cfg.MapHeight)
	if err != nil {
		return fmt.Errorf("adding demo map: %w", err)
	}
	// pond in the middle for water skills
	cx, cy := cfg.MapWidth/2, cfg.MapHeight/2
	for x := cx - 5; x <= cx+5; x++ {
		for y := cy - 5; y <= cy+5; y++ {
			field.SetWater(x, y, true)
		}
	}

	for range cfg.Monsters {
		tmpl := demoMonsters[rnd.IntN(len(demoMonsters))]
		loc, _ := w.RandomCell(demoMapID, rnd)
		m := model.NewMonster(w.IDs().NextMonsterID(), tmpl.templateID, tmpl.name, loc, tmpl.level, tmpl.hp)
		m.SetAggressive(tmpl.aggressive)
		if err := w.AddMonster(m); err != nil {
			return fmt.Errorf("spawning %s: %w", tmpl.name, err)
		}
	}

	chains := autoplay.BuildChains()
	for i := range cfg.Players {
		preset := demoPresets[i%len(demoPresets)]
		name := preset.name
		if i >= len(demoPresets) {
			name = fmt.Sprintf("%s%d", preset.name, i/len(demoPresets))
		}
		charID := int64(i + 1)

		loc, _ := w.RandomCell(demoMapID, rnd)
		p, err := model.NewPlayer(w.IDs().NextPlayerID(), charID, name, preset.job, loc, 99, 8000, 1200)
		if err != nil {
			return fmt.Errorf("creating demo player %s: %w", name, err)
		}
		p.Equip(preset.weapon, preset.shield)
		if i == 0 {
			p.SetAccessLevel(100) // console GM
		}
		for _, st := range demoStock {
			if _, err := p.Inventory().Add(st.itemID, st.count); err != nil {
				return fmt.Errorf("stocking %s: %w", name, err)
			}
		}

		chain := chains.For(preset.job, preset.weapon, preset.shield)
		learnChain(p, chain)
		p.SetAutoPlay(true)

		if err := sessions.Login(ctx, p); err != nil {
			return err
		}
		if len(sessions.vars.Vars(charID)) == 0 {
			applyDemoSettings(sessions.vars, charID, chain)
		}
	}

	slog.Info("demo world seeded",
		"map", field.Name(),
		"monsters", cfg.Monsters,
		"players", cfg.Players)
	return nil
}

// learnChain teaches every skill of chain at its max level.
func learnChain(p *model.Player, chain *autoplay.Chain) {
	for _, rules := range [][]autoplay.Rule{chain.Buffs, chain.Attacks} {
		for i := range rules {
			p.LearnSkill(rules[i].Skill, data.GetSkillMaxLevel(rules[i].Skill))
		}
	}
}

func applyDemoSettings(vars autoplay.Settings, charID int64, chain *autoplay.Chain) {
	for name, v := range demoSettings {
		vars.Set(charID, name, v)
	}
	for _, rules := range [][]autoplay.Rule{chain.Buffs, chain.Attacks} {
		for i := range rules {
			if t := rules[i].Toggle(); t != "" {
				vars.Set(charID, t, 1)
			}
		}
	}
}

// runAttrition makes engaged monsters nibble at their targets.
func runAttrition(ctx context.Context, w *world.World, interval time.Duration) {
	rnd := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.ForEachPlayer(func(p *model.Player) bool {
				if p.IsDead() {
					return true
				}
				w.ForEachObjectInSquare(p.Location(), 1, func(obj *model.WorldObject) bool {
					m, ok := obj.Data.(*model.Monster)
					if !ok || m.IsDead() || m.Target() != p.ObjectID() {
						return true
					}
					p.SetCurrentHP(p.CurrentHP() - 1 - rnd.Int32N(max(p.MaxHP()/40, 1)))
					return true
				})
				return true
			})
		}
	}
}
