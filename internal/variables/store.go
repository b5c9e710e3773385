package variables

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"sync"
)

// Repository persists per-character integer variables.
type Repository interface {
	LoadVariables(ctx context.Context, charID int64) (map[string]int64, error)
	SaveVariables(ctx context.Context, charID int64, vars map[string]int64) error
}

// charVars — переменные одного персонажа + dirty flag.
type charVars struct {
	vars    map[string]int64
	changed bool
}

// Registry — живое хранилище переменных персонажей (name → int64).
// Отсутствующая переменная читается как 0. Last-write-wins.
// Thread-safe via RWMutex.
type Registry struct {
	mu    sync.RWMutex
	chars map[int64]*charVars
	repo  Repository
}

// NewRegistry creates a registry. repo may be nil (memory only).
func NewRegistry(repo Repository) *Registry {
	return &Registry{
		chars: make(map[int64]*charVars),
		repo:  repo,
	}
}

// Get returns variable value, 0 if unset or character unknown.
func (r *Registry) Get(charID int64, name string) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cv, ok := r.chars[charID]
	if !ok {
		return 0
	}
	return cv.vars[name]
}

// Set stores variable value. Zero removes the variable.
func (r *Registry) Set(charID int64, name string, value int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cv := r.chars[charID]
	if cv == nil {
		cv = &charVars{vars: make(map[string]int64, 8)}
		r.chars[charID] = cv
	}

	old, had := cv.vars[name]
	if value == 0 {
		if !had {
			return
		}
		delete(cv.vars, name)
		cv.changed = true
		return
	}
	if had && old == value {
		return
	}
	cv.vars[name] = value
	cv.changed = true
}

// Delete removes variable.
func (r *Registry) Delete(charID int64, name string) {
	r.Set(charID, name, 0)
}

// Vars returns a copy of character variables.
func (r *Registry) Vars(charID int64) map[string]int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cv, ok := r.chars[charID]
	if !ok {
		return map[string]int64{}
	}
	return maps.Clone(cv.vars)
}

// IsDirty reports whether character has unsaved changes.
func (r *Registry) IsDirty(charID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cv, ok := r.chars[charID]
	return ok && cv.changed
}

// Load replaces character variables with persisted values.
func (r *Registry) Load(ctx context.Context, charID int64) error {
	if r.repo == nil {
		return nil
	}

	vars, err := r.repo.LoadVariables(ctx, charID)
	if err != nil {
		return fmt.Errorf("loading variables for character %d: %w", charID, err)
	}
	if vars == nil {
		vars = make(map[string]int64, 8)
	}

	r.mu.Lock()
	r.chars[charID] = &charVars{vars: vars}
	r.mu.Unlock()
	return nil
}

// Flush saves character variables if changed.
func (r *Registry) Flush(ctx context.Context, charID int64) error {
	if r.repo == nil {
		return nil
	}

	r.mu.RLock()
	cv, ok := r.chars[charID]
	if !ok || !cv.changed {
		r.mu.RUnlock()
		return nil
	}
	snapshot := maps.Clone(cv.vars)
	r.mu.RUnlock()

	if err := r.repo.SaveVariables(ctx, charID, snapshot); err != nil {
		return fmt.Errorf("saving variables for character %d: %w", charID, err)
	}

	r.mu.Lock()
	// A concurrent Set after the snapshot keeps the entry dirty.
	if cur, ok := r.chars[charID]; ok && maps.Equal(cur.vars, snapshot) {
		cur.changed = false
	}
	r.mu.Unlock()
	return nil
}

// FlushAll saves every dirty character. Errors are joined, flushing continues.
func (r *Registry) FlushAll(ctx context.Context) error {
	r.mu.RLock()
	ids := make([]int64, 0, len(r.chars))
	for id, cv := range r.chars {
		if cv.changed {
			ids = append(ids, id)
		}
	}
	r.mu.RUnlock()

	var errs []error
	for _, id := range ids {
		if err := r.Flush(ctx, id); err != nil {
			errs = append(errs, err)
		}
	}
	if len(ids) > 0 {
		slog.Debug("flushed character variables", "characters", len(ids), "errors", len(errs))
	}
	return errors.Join(errs...)
}

// Evict drops character from memory without saving.
func (r *Registry) Evict(charID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.chars, charID)
}

// Count returns number of characters in memory.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.chars)
}
