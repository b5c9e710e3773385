package itemhandler

import (
	"log/slog"
	"time"

	"github.com/udisondev/autoplay/internal/data"
	"github.com/udisondev/autoplay/internal/model"
)

// healingHandler restores a random amount of HP and/or SP.
type healingHandler struct{}

func (h *healingHandler) UseItem(player *model.Player, itemID int32, ctx Context) *UseResult {
	def := data.GetItemDef(itemID)
	if def == nil || player.IsDead() {
		return nil
	}

	res := &UseResult{ConsumeCount: 1}
	if def.HPMax() > 0 {
		before := player.CurrentHP()
		player.SetCurrentHP(before + ctx.Roll(def.HPMin(), def.HPMax()))
		res.HealedHP = player.CurrentHP() - before
	}
	if def.SPMax() > 0 {
		before := player.CurrentSP()
		player.SetCurrentSP(before + ctx.Roll(def.SPMin(), def.SPMax()))
		res.HealedSP = player.CurrentSP() - before
	}
	return res
}

// aspdPotionHandler applies one ASPD potion tier; a new tier replaces the others.
type aspdPotionHandler struct{}

func (h *aspdPotionHandler) UseItem(player *model.Player, itemID int32, ctx Context) *UseResult {
	def := data.GetItemDef(itemID)
	if def == nil || def.Status() == data.StatusNone {
		return nil
	}
	for _, s := range data.AspdPotionStatuses {
		if s != def.Status() {
			player.RemoveStatus(s)
		}
	}
	player.AddStatus(def.Status(), expiry(ctx.Now, def.Duration()))
	return &UseResult{ConsumeCount: 1}
}

// boostHandler applies exp/drop boosts (manuals, bubble gum).
type boostHandler struct{}

func (h *boostHandler) UseItem(player *model.Player, itemID int32, ctx Context) *UseResult {
	def := data.GetItemDef(itemID)
	if def == nil || def.Status() == data.StatusNone {
		return nil
	}
	player.AddStatus(def.Status(), expiry(ctx.Now, def.Duration()))
	slog.Debug("boost applied",
		"characterID", player.CharacterID(),
		"item", def.Name(),
		"duration", def.Duration())
	return &UseResult{ConsumeCount: 1}
}

// teleportHandler moves the user to a random cell of the current map (Fly Wing).
type teleportHandler struct{}

func (h *teleportHandler) UseItem(_ *model.Player, _ int32, _ Context) *UseResult {
	return &UseResult{ConsumeCount: 1, Teleport: true}
}

func expiry(now time.Time, d time.Duration) time.Time {
	if d <= 0 {
		return time.Time{}
	}
	return now.Add(d)
}
