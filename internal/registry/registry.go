// Package registry provides a global catalogue of playable levels.
// Built-in levels register themselves in init() functions; levels discovered
// on disk are added at startup. Consumers look levels up by ID without
// knowing where they came from.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/prince-of-oliver/internal/level"
)

// Source values for LevelInfo.
const (
	SourceBuiltin = "builtin"
	SourceFile    = "file"
)

// LevelInfo contains metadata about a registered level.
type LevelInfo struct {
	ID     string
	Title  string
	Source string
}

// Factory returns a fresh copy of a level.
type Factory func() (level.Level, error)

type entry struct {
	factory Factory
	info    LevelInfo
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a level factory to the registry.
// Panics if a level with the same ID is already registered.
func Register(id, source string, f Factory) {
	if err := TryRegister(id, source, f); err != nil {
		panic(err)
	}
}

// TryRegister is Register for levels discovered at runtime: a duplicate ID
// is reported as an error instead of a panic.
func TryRegister(id, source string, f Factory) error {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		return fmt.Errorf("registry: level %q already registered", id)
	}

	// Get title by creating a temporary instance
	title := id
	if l, err := f(); err == nil && l.Name != "" {
		title = l.Name
	}
	entries[id] = entry{factory: f, info: LevelInfo{ID: id, Title: title, Source: source}}
	return nil
}

// RegisterLevel registers an already parsed level; every Create returns a clone.
func RegisterLevel(l level.Level, source string) error {
	snapshot := l.Clone()
	return TryRegister(l.ID, source, func() (level.Level, error) {
		return snapshot.Clone(), nil
	})
}

// List returns information about all registered levels, sorted by ID.
func List() []LevelInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LevelInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create returns a fresh copy of the level with the given ID.
func Create(id string) (level.Level, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return level.Level{}, fmt.Errorf("registry: unknown level %q", id)
	}
	l, err := e.factory()
	if err != nil {
		return level.Level{}, fmt.Errorf("registry: building level %q: %w", id, err)
	}
	return l, nil
}

// Exists checks if a level with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
