package admin

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/udisondev/autoplay/internal/model"
)

// Command is a GM chat command (//name ...).
type Command interface {
	// Handle runs the command; args[0] is the command name.
	Handle(player *model.Player, args []string) error
	Names() []string
	RequiredAccessLevel() int32
}

// UserCommand is a player chat command (/name ...), open to every access level.
type UserCommand interface {
	// Handle runs the command; params is the line after the name, trimmed.
	Handle(player *model.Player, params string) error
	Names() []string
}

// Handler routes chat lines to autoplay commands.
// Таблицы заполняются при старте демона и дальше только читаются.
type Handler struct {
	gm   map[string]Command
	user map[string]UserCommand
}

// NewHandler creates an empty command table.
func NewHandler() *Handler {
	return &Handler{
		gm:   make(map[string]Command),
		user: make(map[string]UserCommand),
	}
}

// RegisterAdmin adds cmd under each of its names (case-insensitive).
func (h *Handler) RegisterAdmin(cmd Command) {
	for _, name := range cmd.Names() {
		h.gm[strings.ToLower(name)] = cmd
	}
}

// RegisterUser adds cmd under each of its names (case-insensitive).
func (h *Handler) RegisterUser(cmd UserCommand) {
	for _, name := range cmd.Names() {
		h.user[strings.ToLower(name)] = cmd
	}
}

// Dispatch routes "//..." to GM commands and "/..." to player commands.
// Plain chat and unknown commands return false.
func (h *Handler) Dispatch(player *model.Player, line string) bool {
	line = strings.TrimSpace(line)
	if rest, ok := strings.CutPrefix(line, "//"); ok {
		return h.HandleAdminCommand(player, rest)
	}
	if rest, ok := strings.CutPrefix(line, "/"); ok {
		return h.HandleUserCommand(player, rest)
	}
	return false
}

// HandleAdminCommand runs a GM command line given without the "//" prefix.
// Returns true when the command was found and the player was allowed to run it.
func (h *Handler) HandleAdminCommand(player *model.Player, text string) bool {
	args := strings.Fields(text)
	if len(args) == 0 {
		return false
	}
	name := strings.ToLower(args[0])

	cmd, ok := h.gm[name]
	if !ok {
		player.SetLastAdminMessage("No such GM command: //" + name)
		return false
	}

	level := player.AccessLevel()
	if al := GetAccessLevel(level); al == nil || !al.CanUseAdminCommands {
		slog.Warn("gm command from non-gm",
			"characterID", player.CharacterID(),
			"command", name,
			"accessLevel", level)
		return false
	}
	if need := cmd.RequiredAccessLevel(); level < need {
		player.SetLastAdminMessage(fmt.Sprintf("//%s requires access level %d", name, need))
		slog.Warn("gm command denied",
			"characterID", player.CharacterID(),
			"command", name,
			"required", need,
			"accessLevel", level)
		return false
	}

	slog.Info("gm command", "characterID", player.CharacterID(), "line", text)
	if err := cmd.Handle(player, args); err != nil {
		player.SetLastAdminMessage(fmt.Sprintf("//%s: %v", name, err))
		slog.Warn("gm command failed",
			"characterID", player.CharacterID(),
			"line", text,
			"error", err)
	}
	return true
}

// HandleUserCommand runs a player command line given without the "/" prefix.
func (h *Handler) HandleUserCommand(player *model.Player, text string) bool {
	name, params, _ := strings.Cut(strings.TrimSpace(text), " ")
	if name == "" {
		return false
	}
	name = strings.ToLower(name)

	cmd, ok := h.user[name]
	if !ok {
		return false
	}
	if err := cmd.Handle(player, strings.TrimSpace(params)); err != nil {
		player.SetLastAdminMessage(fmt.Sprintf("/%s: %v", name, err))
		slog.Warn("player command failed",
			"characterID", player.CharacterID(),
			"line", text,
			"error", err)
	}
	return true
}

// AdminCommandCount returns the number of registered GM command names.
func (h *Handler) AdminCommandCount() int { return len(h.gm) }

// UserCommandCount returns the number of registered player command names.
func (h *Handler) UserCommandCount() int { return len(h.user) }
