// Package levels discovers level files and registers the built-in ones.
// This package depends on level and registry; neither depends on levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/vovakirdan/prince-of-oliver/internal/level"
	"github.com/vovakirdan/prince-of-oliver/internal/level/formats"
	"github.com/vovakirdan/prince-of-oliver/internal/registry"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// DefaultLevelID is played when no level is named.
const DefaultLevelID = "keep"

func init() {
	for _, l := range mustLoadBuiltins() {
		snapshot := l
		registry.Register(l.ID, registry.SourceBuiltin, func() (level.Level, error) {
			return snapshot.Clone(), nil
		})
	}
}

// Builtin returns fresh copies of every embedded level.
func Builtin() ([]level.Level, error) {
	names, err := fs.Glob(builtinFS, "builtin/*.yaml")
	if err != nil {
		return nil, err
	}
	out := make([]level.Level, 0, len(names))
	for _, name := range names {
		l, err := formats.Load(builtinFS, name)
		if err != nil {
			return nil, fmt.Errorf("builtin %s: %w", path.Base(name), err)
		}
		if err := l.Validate(); err != nil {
			return nil, fmt.Errorf("builtin %s: %w", path.Base(name), err)
		}
		l.FilePath = "embedded:" + name
		out = append(out, l)
	}
	return out, nil
}

func mustLoadBuiltins() []level.Level {
	ls, err := Builtin()
	if err != nil {
		panic(fmt.Sprintf("levels: %v", err))
	}
	return ls
}
