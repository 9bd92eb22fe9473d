package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/prince-of-oliver/internal/core"
	"github.com/vovakirdan/prince-of-oliver/internal/registry"
)

func TestBuiltinKeep(t *testing.T) {
	if !registry.Exists(DefaultLevelID) {
		t.Fatalf("built-in level %q should be registered", DefaultLevelID)
	}
	l, err := registry.Create(DefaultLevelID)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	if l.Width != 1600 || l.Height != 225 {
		t.Errorf("size = %gx%g, expected 1600x225", l.Width, l.Height)
	}
	if l.PlayerSpawn != core.V(80, 45) {
		t.Errorf("PlayerSpawn = %v, expected (80, 45)", l.PlayerSpawn)
	}
	if len(l.Keys) != 1 || l.Keys[0].Pos != core.V(880, 99) {
		t.Errorf("keys = %+v, expected one key at (880, 99)", l.Keys)
	}
	if len(l.Checkpoints) != 1 || l.Checkpoints[0].Resume != core.V(990, 55) {
		t.Errorf("checkpoints = %+v, expected resume (990, 55)", l.Checkpoints)
	}

	blockers := 0
	for _, s := range l.Solids {
		if s.DoorBlocker {
			blockers++
		}
	}
	if blockers != 1 || len(l.Doors) != 1 {
		t.Errorf("doors = %d, blockers = %d, expected 1 and 1", len(l.Doors), blockers)
	}
	if len(l.Guards) != 1 || l.Guards[0].Left != 540 || l.Guards[0].Right != 700 {
		t.Errorf("guards = %+v", l.Guards)
	}

	kill := l.Hazards[1]
	if kill.Name != "killzone" || kill.Pos.Y != -40 {
		t.Errorf("kill zone = %+v, expected centred 40 below the level", kill)
	}
}

const cellarYAML = `
id: cellar
name: Cellar
size: {w: 200, h: 100}
player: {x: 10, y: 80}
solids:
  - {x: 100, y: 95, w: 200, h: 10}
`

const brokenGuardYAML = `
id: broken
size: {w: 200, h: 100}
guards:
  - {x: 50, y: 80, left: 90, right: 10}
`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "cellar.yaml", cellarYAML)
	writeFile(t, dir, "broken.yml", brokenGuardYAML)
	writeFile(t, dir, "garbage.yaml", "id: [")
	writeFile(t, dir, "README.md", "not a level")

	loader := NewLoader(dir, nil)
	all, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}
	if len(all) != 1 || all[0].ID != "cellar" {
		t.Fatalf("LoadAll() = %d levels, expected only cellar", len(all))
	}
	if all[0].FilePath != filepath.Join(dir, "cellar.yaml") {
		t.Errorf("FilePath = %q", all[0].FilePath)
	}
}

func TestLoaderLoadByID(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "cellar.yaml", cellarYAML)
	loader := NewLoader(dir, nil)

	l, err := loader.LoadByID("cellar")
	if err != nil {
		t.Fatalf("LoadByID() failed: %v", err)
	}
	if l.Name != "Cellar" {
		t.Errorf("Name = %q, expected Cellar", l.Name)
	}

	if _, err := loader.LoadByID("attic"); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadByID(attic) error = %v, expected ErrNotFound", err)
	}
}

func TestLoaderMissingRoot(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "nope"), nil)
	all, err := loader.LoadAll()
	if err != nil || len(all) != 0 {
		t.Errorf("LoadAll() on missing root = (%d, %v), expected (0, nil)", len(all), err)
	}
}

func TestLoaderRegisterAllSkipsDuplicates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "cellar2.yaml", "id: cellar_reg\nsize: {w: 10, h: 10}\n")
	writeFile(t, dir, "keep.yaml", "id: keep\nsize: {w: 10, h: 10}\n")

	n, err := NewLoader(dir, nil).RegisterAll()
	if err != nil {
		t.Fatalf("RegisterAll() failed: %v", err)
	}
	if n != 1 {
		t.Errorf("RegisterAll() = %d, expected 1 (keep is built in)", n)
	}
	if !registry.Exists("cellar_reg") {
		t.Error("cellar_reg should be registered")
	}
}
