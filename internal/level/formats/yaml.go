// Package formats provides pluggable level file format parsers. Level files
// are authored top-down (y grows downward from the top edge, as in Tiled and
// most image editors); parsers flip them into the y-up world.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/prince-of-oliver/internal/core"
	"github.com/vovakirdan/prince-of-oliver/internal/level"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID          string           `yaml:"id"`
	Name        string           `yaml:"name"`
	Size        YAMLSize         `yaml:"size"`
	Player      YAMLPoint        `yaml:"player"`
	Solids      []YAMLRect       `yaml:"solids"`
	Ladders     []YAMLRect       `yaml:"ladders,omitempty"`
	Hazards     []YAMLRect       `yaml:"hazards,omitempty"`
	Keys        []YAMLRect       `yaml:"keys,omitempty"`
	Checkpoints []YAMLCheckpoint `yaml:"checkpoints,omitempty"`
	Doors       []YAMLDoor       `yaml:"doors,omitempty"`
	Princess    *YAMLRect        `yaml:"princess,omitempty"`
	Guards      []YAMLGuard      `yaml:"guards,omitempty"`
}

// YAMLSize represents level dimensions.
type YAMLSize struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// YAMLPoint is a position measured from the top-left corner.
type YAMLPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// YAMLRect is a rectangle given by its centre and size.
type YAMLRect struct {
	Name string  `yaml:"name,omitempty"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	W    float64 `yaml:"w"`
	H    float64 `yaml:"h"`
}

// YAMLCheckpoint adds the resume point; it defaults to the checkpoint centre.
type YAMLCheckpoint struct {
	YAMLRect `yaml:",inline"`
	Resume   *YAMLPoint `yaml:"resume,omitempty"`
}

// YAMLDoor is a door; unless Blocker is false it also blocks movement until
// the key is collected.
type YAMLDoor struct {
	YAMLRect `yaml:",inline"`
	Blocker  *bool `yaml:"blocker,omitempty"`
}

// YAMLGuard is a guard spawn with its patrol range on the x axis.
type YAMLGuard struct {
	Name  string  `yaml:"name,omitempty"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Left  float64 `yaml:"left"`
	Right float64 `yaml:"right"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (level.Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return level.Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return yl.toLevel(), nil
}

func (yl YAMLLevel) toLevel() level.Level {
	h := yl.Size.H
	world := func(x, y float64) core.Vec2 {
		return core.V(x, h-y)
	}
	rect := func(r YAMLRect) level.Rect {
		return level.Rect{Name: r.Name, Pos: world(r.X, r.Y), Size: core.V(r.W, r.H)}
	}

	l := level.Level{
		ID:          yl.ID,
		Name:        yl.Name,
		Width:       yl.Size.W,
		Height:      yl.Size.H,
		PlayerSpawn: world(yl.Player.X, yl.Player.Y),
	}
	if l.Name == "" {
		l.Name = l.ID
	}

	for _, s := range yl.Solids {
		l.Solids = append(l.Solids, level.Solid{Rect: rect(s)})
	}
	for _, r := range yl.Ladders {
		l.Ladders = append(l.Ladders, rect(r))
	}
	for _, r := range yl.Hazards {
		l.Hazards = append(l.Hazards, rect(r))
	}
	for _, r := range yl.Keys {
		l.Keys = append(l.Keys, rect(r))
	}
	for _, c := range yl.Checkpoints {
		cp := level.Checkpoint{Rect: rect(c.YAMLRect)}
		cp.Resume = cp.Pos
		if c.Resume != nil {
			cp.Resume = world(c.Resume.X, c.Resume.Y)
		}
		l.Checkpoints = append(l.Checkpoints, cp)
	}
	for _, d := range yl.Doors {
		r := rect(d.YAMLRect)
		l.Doors = append(l.Doors, r)
		if d.Blocker == nil || *d.Blocker {
			blocker := r
			blocker.Name = r.Name + "_blocker"
			l.Solids = append(l.Solids, level.Solid{Rect: blocker, DoorBlocker: true})
		}
	}
	if yl.Princess != nil {
		p := rect(*yl.Princess)
		l.Princess = &p
	}
	for _, g := range yl.Guards {
		l.Guards = append(l.Guards, level.GuardSpawn{
			Name:  g.Name,
			Pos:   world(g.X, g.Y),
			Left:  g.Left,
			Right: g.Right,
		})
	}
	return l
}
