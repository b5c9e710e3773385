package commands

import (
	"fmt"
	"strconv"

	"github.com/udisondev/autoplay/internal/model"
)

// SetVar handles //apset <name> <value> [player].
type SetVar struct {
	deps Deps
}

// NewSetVar creates the //apset command.
func NewSetVar(d Deps) *SetVar {
	return &SetVar{deps: d}
}

func (c *SetVar) Names() []string            { return []string{"apset"} }
func (c *SetVar) RequiredAccessLevel() int32 { return 1 }

func (c *SetVar) Handle(player *model.Player, args []string) error {
	if len(args) < 3 || len(args) > 4 {
		return fmt.Errorf("usage: //apset <name> <value> [player]")
	}
	value, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", args[2], err)
	}
	target, err := resolveTarget(c.deps, player, optArg(args, 3))
	if err != nil {
		return err
	}

	c.deps.Vars.Set(target.CharacterID(), args[1], value)
	player.SetLastAdminMessage(fmt.Sprintf("%s = %d (%s)", args[1], value, target.Name()))
	return nil
}

// GetVar handles //apget <name> [player].
type GetVar struct {
	deps Deps
}

// NewGetVar creates the //apget command.
func NewGetVar(d Deps) *GetVar {
	return &GetVar{deps: d}
}

func (c *GetVar) Names() []string            { return []string{"apget"} }
func (c *GetVar) RequiredAccessLevel() int32 { return 1 }

func (c *GetVar) Handle(player *model.Player, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("usage: //apget <name> [player]")
	}
	target, err := resolveTarget(c.deps, player, optArg(args, 2))
	if err != nil {
		return err
	}

	value := c.deps.Vars.Get(target.CharacterID(), args[1])
	player.SetLastAdminMessage(fmt.Sprintf("%s = %d (%s)", args[1], value, target.Name()))
	return nil
}

func optArg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
