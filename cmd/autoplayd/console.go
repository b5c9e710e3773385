package main

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/udisondev/autoplay/internal/gameserver/admin"
	"github.com/udisondev/autoplay/internal/model"
)

// PlayerLookup finds an online player by name.
type PlayerLookup interface {
	FindPlayerByName(name string) (*model.Player, bool)
}

// runConsole reads "<player>: <chat line>" lines from r and dispatches them
// as if the player typed them. Replies are logged.
func runConsole(ctx context.Context, r io.Reader, players PlayerLookup, cmds *admin.Handler) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if ctx.Err() != nil {
			return
		}
		name, line, ok := strings.Cut(sc.Text(), ":")
		if !ok {
			slog.Warn("console: expected \"<player>: <command>\"")
			continue
		}
		name, line = strings.TrimSpace(name), strings.TrimSpace(line)

		p, found := players.FindPlayerByName(name)
		if !found {
			slog.Warn("console: player not online", "name", name)
			continue
		}
		if !cmds.Dispatch(p, line) {
			slog.Info("console: not a command", "name", name, "line", line)
		}
		if reply := p.ClearLastAdminMessage(); reply != "" {
			slog.Info("console reply", "name", name, "message", reply)
		}
	}
	if err := sc.Err(); err != nil {
		slog.Warn("console read", "error", err)
	}
}
