package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/udisondev/autoplay/internal/autoplay"
	"github.com/udisondev/autoplay/internal/data"
	"github.com/udisondev/autoplay/internal/model"
)

// AutoPlayConfig handles //apconfig [player] [key value].
//
// Keys: max_mobs, idle_cycles, aspd_pots (on|off), heal_pots (on|off),
// aspd_list (comma-separated item IDs in priority order).
type AutoPlayConfig struct {
	deps Deps
}

// NewAutoPlayConfig creates the //apconfig command.
func NewAutoPlayConfig(d Deps) *AutoPlayConfig {
	return &AutoPlayConfig{deps: d}
}

func (c *AutoPlayConfig) Names() []string            { return []string{"apconfig"} }
func (c *AutoPlayConfig) RequiredAccessLevel() int32 { return 1 }

func (c *AutoPlayConfig) Handle(player *model.Player, args []string) error {
	var name, key, value string
	switch len(args) {
	case 1:
	case 2:
		name = args[1]
	case 3:
		key, value = args[1], args[2]
	case 4:
		name, key, value = args[1], args[2], args[3]
	default:
		return fmt.Errorf("usage: //apconfig [player] [key value]")
	}

	target, err := resolveTarget(c.deps, player, name)
	if err != nil {
		return err
	}

	var applyErr error
	cfg := c.deps.AutoPlay.UpdateConfig(target.CharacterID(), func(cfg *autoplay.Config) {
		if key != "" {
			applyErr = applyConfigKey(cfg, key, value)
		}
	})
	if applyErr != nil {
		return applyErr
	}
	player.SetLastAdminMessage(target.Name() + ": " + FormatConfig(cfg))
	return nil
}

func applyConfigKey(cfg *autoplay.Config, key, value string) error {
	switch strings.ToLower(key) {
	case "max_mobs":
		n, err := parsePositive(value)
		if err != nil {
			return err
		}
		cfg.MaxMobsBeforeTP = n
	case "idle_cycles":
		n, err := parsePositive(value)
		if err != nil {
			return err
		}
		cfg.IdleCyclesBeforeTP = n
	case "aspd_pots":
		on, err := parseOnOff(value)
		if err != nil {
			return err
		}
		cfg.UseAspdPots = on
	case "heal_pots":
		on, err := parseOnOff(value)
		if err != nil {
			return err
		}
		cfg.UseHealPots = on
	case "aspd_list":
		ids, err := parseItemList(value)
		if err != nil {
			return err
		}
		cfg.AspdPotIDs = ids
	default:
		return fmt.Errorf("unknown key %q", key)
	}
	return nil
}

// FormatConfig renders cfg on one line.
func FormatConfig(cfg autoplay.Config) string {
	var b strings.Builder
	fmt.Fprintf(&b, "max_mobs=%d idle_cycles=%d aspd_pots=%s heal_pots=%s aspd_list=",
		cfg.MaxMobsBeforeTP, cfg.IdleCyclesBeforeTP, onOffShort(cfg.UseAspdPots), onOffShort(cfg.UseHealPots))
	for i, id := range cfg.AspdPotIDs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(id)))
	}
	for _, e := range cfg.HealPots {
		kind := "hp"
		if e.IsSP {
			kind = "sp"
		}
		fmt.Fprintf(&b, " %s:%d@%d-%d", kind, e.ItemID, e.TriggerPct, e.TargetPct)
	}
	return b.String()
}

func parsePositive(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("value must be positive, got %d", n)
	}
	return int32(n), nil
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "1", "true":
		return true, nil
	case "off", "0", "false":
		return false, nil
	}
	return false, fmt.Errorf("expected on|off, got %q", s)
}

func parseItemList(s string) ([]int32, error) {
	var ids []int32
	for _, part := range strings.Split(s, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid item id %q: %w", part, err)
		}
		if data.GetItemDef(int32(id)) == nil {
			return nil, fmt.Errorf("unknown item %d", id)
		}
		ids = append(ids, int32(id))
	}
	return ids, nil
}

func onOffShort(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
