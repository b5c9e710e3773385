package commands

import (
	"fmt"
	"strconv"

	"github.com/udisondev/autoplay/internal/data"
	"github.com/udisondev/autoplay/internal/model"
)

// Heal handles //heal [player]: restores HP and SP to max.
type Heal struct {
	deps Deps
}

// NewHeal creates the heal command handler.
func NewHeal(d Deps) *Heal {
	return &Heal{deps: d}
}

func (c *Heal) Names() []string            { return []string{"heal"} }
func (c *Heal) RequiredAccessLevel() int32 { return 1 }

func (c *Heal) Handle(player *model.Player, args []string) error {
	target, err := resolveTarget(c.deps, player, optArg(args, 1))
	if err != nil {
		return err
	}
	target.SetCurrentHP(target.MaxHP())
	target.SetCurrentSP(target.MaxSP())
	player.SetLastAdminMessage(fmt.Sprintf("Healed %s", target.Name()))
	return nil
}

// GiveItem handles //item <itemID> [count] [player].
type GiveItem struct {
	players PlayerFinder
}

func (c *GiveItem) Names() []string            { return []string{"item", "give_item"} }
func (c *GiveItem) RequiredAccessLevel() int32 { return 2 }

func (c *GiveItem) Handle(player *model.Player, args []string) error {
	if len(args) < 2 || len(args) > 4 {
		return fmt.Errorf("usage: //item <itemID> [count] [player]")
	}

	itemID, err := strconv.ParseInt(args[1], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid itemID %q: %w", args[1], err)
	}
	def := data.GetItemDef(int32(itemID))
	if def == nil {
		return fmt.Errorf("item template %d not found", itemID)
	}

	count := int64(1)
	if len(args) >= 3 {
		count, err = strconv.ParseInt(args[2], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid count %q: %w", args[2], err)
		}
	}
	if count < 1 || count > 30000 {
		return fmt.Errorf("count must be between 1 and 30000, got %d", count)
	}

	target := player
	if len(args) == 4 {
		p, ok := c.players.FindPlayerByName(args[3])
		if !ok {
			return errPlayerNotFound(args[3])
		}
		target = p
	}

	if _, err := target.Inventory().Add(int32(itemID), int32(count)); err != nil {
		return fmt.Errorf("adding item: %w", err)
	}
	player.SetLastAdminMessage(fmt.Sprintf("Gave %d %s (ID: %d) to %s",
		count, def.Name(), itemID, target.Name()))
	return nil
}
