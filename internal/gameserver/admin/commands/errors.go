package commands

import (
	"errors"
	"fmt"
)

var (
	// ErrPlayerNotFound — игрок не в сети.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrNotAllowed — нет прав управлять чужим персонажем.
	ErrNotAllowed = errors.New("not allowed")
	// ErrDead — мёртвому персонажу автоплей не включается.
	ErrDead = errors.New("character is dead")
)

func errPlayerNotFound(name string) error { return fmt.Errorf("%w: %q", ErrPlayerNotFound, name) }
func errNotAllowed(name string) error     { return fmt.Errorf("%w: %q", ErrNotAllowed, name) }
