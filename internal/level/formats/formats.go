package formats

import (
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/vovakirdan/prince-of-oliver/internal/level"
)

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".tmx"}
}

// IsSupported reports whether the file name has a level extension.
func IsSupported(name string) bool {
	return slices.Contains(FormatExtensions(), strings.ToLower(path.Ext(name)))
}

// Load reads and parses a level file from fsys, choosing the parser by extension.
func Load(fsys fs.FS, name string) (level.Level, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return level.Level{}, fmt.Errorf("reading %s: %w", name, err)
		}
		return ParseYAML(data)
	case ".tmx":
		return LoadTMX(fsys, name)
	default:
		return level.Level{}, fmt.Errorf("unsupported extension: %s", path.Ext(name))
	}
}
