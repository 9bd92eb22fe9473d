package levels

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/prince-of-oliver/internal/level"
	"github.com/vovakirdan/prince-of-oliver/internal/level/formats"
	"github.com/vovakirdan/prince-of-oliver/internal/registry"
)

// ErrNotFound is returned by LoadByID when no file defines the level.
var ErrNotFound = errors.New("level not found")

// Loader handles loading levels from a directory.
type Loader struct {
	Root   string
	Logger *log.Logger
}

// NewLoader creates a new level loader. A leading ~ in root is expanded.
func NewLoader(root string, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{Root: expandHome(root), Logger: logger}
}

// LoadAll recursively scans and loads all level files. Files that fail to
// parse or validate are logged and skipped. A missing root is not an error.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]level.Level, error) {
	var out []level.Level

	if _, err := os.Stat(l.Root); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !formats.IsSupported(path) {
			return nil
		}

		lvl, err := l.LoadFile(path)
		if err != nil {
			l.Logger.Warn("skipping level file", "path", path, "err", err)
			return nil
		}
		out = append(out, lvl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(path string) (level.Level, error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	lvl, err := formats.Load(os.DirFS(dir), name)
	if err != nil {
		return level.Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	if err := lvl.Validate(); err != nil {
		return level.Level{}, fmt.Errorf("validating file %s: %w", path, err)
	}
	lvl.FilePath = path
	return lvl, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (level.Level, error) {
	all, err := l.LoadAll()
	if err != nil {
		return level.Level{}, err
	}
	for _, lvl := range all {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return level.Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// RegisterAll loads every level under Root into the registry and returns how
// many were added. Levels whose ID is already taken are logged and skipped.
func (l *Loader) RegisterAll() (int, error) {
	all, err := l.LoadAll()
	if err != nil {
		return 0, err
	}
	n := 0
	for _, lvl := range all {
		if err := registry.RegisterLevel(lvl, registry.SourceFile); err != nil {
			l.Logger.Warn("level not registered", "id", lvl.ID, "path", lvl.FilePath, "err", err)
			continue
		}
		l.Logger.Debug("registered level", "id", lvl.ID, "path", lvl.FilePath)
		n++
	}
	return n, nil
}

func expandHome(p string) string {
	if p == "" || p[0] != '~' {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[1:])
}
