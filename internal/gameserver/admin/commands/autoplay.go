package commands

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/udisondev/autoplay/internal/autoplay"
	"github.com/udisondev/autoplay/internal/model"
)

// AutoPlayToggle handles //autoplay [on|off] [player].
// Without on/off the flag is flipped.
type AutoPlayToggle struct {
	deps Deps
}

// NewAutoPlayToggle creates the //autoplay command.
func NewAutoPlayToggle(d Deps) *AutoPlayToggle {
	return &AutoPlayToggle{deps: d}
}

func (c *AutoPlayToggle) Names() []string            { return []string{"autoplay"} }
func (c *AutoPlayToggle) RequiredAccessLevel() int32 { return 1 }

func (c *AutoPlayToggle) Handle(player *model.Player, args []string) error {
	mode, name := "", ""
	switch len(args) {
	case 1:
	case 2:
		if isMode(args[1]) {
			mode = args[1]
		} else {
			name = args[1]
		}
	case 3:
		if !isMode(args[1]) {
			return fmt.Errorf("usage: //autoplay [on|off] [player]")
		}
		mode, name = args[1], args[2]
	default:
		return fmt.Errorf("usage: //autoplay [on|off] [player]")
	}

	target, err := resolveTarget(c.deps, player, name)
	if err != nil {
		return err
	}
	on, err := setAutoPlay(c.deps, target, mode)
	if err != nil {
		return err
	}
	player.SetLastAdminMessage(fmt.Sprintf("Auto-Play %s for %s", onOff(on), target.Name()))
	return nil
}

// UserAutoPlay handles /autoplay [on|off] for the caller.
type UserAutoPlay struct {
	deps Deps
}

// NewUserAutoPlay creates the /autoplay command.
func NewUserAutoPlay(d Deps) *UserAutoPlay {
	return &UserAutoPlay{deps: d}
}

func (c *UserAutoPlay) Names() []string { return []string{"autoplay", "ap"} }

func (c *UserAutoPlay) Handle(player *model.Player, params string) error {
	mode := strings.TrimSpace(params)
	if mode != "" && !isMode(mode) {
		return fmt.Errorf("usage: /autoplay [on|off]")
	}
	on, err := setAutoPlay(c.deps, player, mode)
	if err != nil {
		return err
	}
	player.SetLastAdminMessage("Auto-Play " + onOff(on) + ".")
	return nil
}

// setAutoPlay applies mode ("on", "off" or "" to flip) and schedules the first tick.
// Turning off only clears the flag: the next tick sees it and stops scheduling.
func setAutoPlay(d Deps, p *model.Player, mode string) (bool, error) {
	on := !p.AutoPlay()
	if mode != "" {
		on = strings.EqualFold(mode, "on")
	}
	if on && p.IsDead() {
		return false, ErrDead
	}

	p.SetAutoPlay(on)
	if on {
		// config with defaults before the first tick
		d.AutoPlay.UpdateConfig(p.CharacterID(), func(*autoplay.Config) {})
		// всегда заново: тик, уже увидевший флаг выключенным, снимет только свою запись
		d.Scheduler.Register(p.CharacterID(), d.AutoPlay.Controller(p.CharacterID()))
	}
	slog.Info("autoplay toggled", "characterID", p.CharacterID(), "enabled", on)
	return on, nil
}

func isMode(s string) bool {
	return strings.EqualFold(s, "on") || strings.EqualFold(s, "off")
}

func onOff(on bool) string {
	if on {
		return "enabled"
	}
	return "disabled"
}
