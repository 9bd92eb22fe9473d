// Package level holds the immutable layout data a game session is built from.
// Coordinates are world units: y points up and every rectangle is described
// by its centre and full size.
package level

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/prince-of-oliver/internal/core"
)

// ErrInvalid marks level data that failed validation.
var ErrInvalid = errors.New("invalid level")

// Rect is a named axis-aligned rectangle.
type Rect struct {
	Name string
	Pos  core.Vec2
	Size core.Vec2
}

// R builds a Rect centred on (x, y).
func R(name string, x, y, w, h float64) Rect {
	return Rect{Name: name, Pos: core.V(x, y), Size: core.V(w, h)}
}

// Box returns the rectangle as a core.Box.
func (r Rect) Box() core.Box {
	return core.Box{Pos: r.Pos, Size: r.Size}
}

// Solid is a static collision rectangle. Door blockers are removed when the
// key is collected.
type Solid struct {
	Rect
	DoorBlocker bool
}

// Checkpoint is a trigger volume with a separate point the player resumes at.
type Checkpoint struct {
	Rect
	Resume core.Vec2
}

// GuardSpawn describes one patrolling guard.
type GuardSpawn struct {
	Name  string
	Pos   core.Vec2
	Left  float64
	Right float64
}

// Level is a complete level definition.
type Level struct {
	ID          string
	Name        string
	Width       float64
	Height      float64
	PlayerSpawn core.Vec2
	Solids      []Solid
	Ladders     []Rect
	Hazards     []Rect
	Keys        []Rect
	Checkpoints []Checkpoint
	Doors       []Rect
	Princess    *Rect
	Guards      []GuardSpawn
	FilePath    string
}

// Clone returns a deep copy so sessions never share slices.
func (l Level) Clone() Level {
	c := l
	c.Solids = append([]Solid(nil), l.Solids...)
	c.Ladders = append([]Rect(nil), l.Ladders...)
	c.Hazards = append([]Rect(nil), l.Hazards...)
	c.Keys = append([]Rect(nil), l.Keys...)
	c.Checkpoints = append([]Checkpoint(nil), l.Checkpoints...)
	c.Doors = append([]Rect(nil), l.Doors...)
	c.Guards = append([]GuardSpawn(nil), l.Guards...)
	if l.Princess != nil {
		p := *l.Princess
		c.Princess = &p
	}
	return c
}

// Bounds returns the level extent as a box with its bottom-left at the origin.
func (l Level) Bounds() core.Box {
	return core.NewBox(l.Width/2, l.Height/2, l.Width, l.Height)
}

// Validate reports every problem in the level at once.
func (l Level) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if l.ID == "" {
		bad("missing id")
	}
	if l.Width <= 0 || l.Height <= 0 {
		bad("size %gx%g must be positive", l.Width, l.Height)
	}
	checkSize := func(kind string, i int, r Rect) {
		if r.Size.X <= 0 || r.Size.Y <= 0 {
			bad("%s %d (%q) has non-positive size %gx%g", kind, i, r.Name, r.Size.X, r.Size.Y)
		}
	}
	for i, s := range l.Solids {
		checkSize("solid", i, s.Rect)
	}
	for i, r := range l.Ladders {
		checkSize("ladder", i, r)
	}
	for i, r := range l.Hazards {
		checkSize("hazard", i, r)
	}
	for i, r := range l.Keys {
		checkSize("key", i, r)
	}
	for i, c := range l.Checkpoints {
		checkSize("checkpoint", i, c.Rect)
	}
	for i, r := range l.Doors {
		checkSize("door", i, r)
	}
	if l.Princess != nil {
		checkSize("princess", 0, *l.Princess)
	}
	for i, g := range l.Guards {
		if g.Left > g.Right {
			bad("guard %d (%q) patrol limits reversed: left %g > right %g", i, g.Name, g.Left, g.Right)
		}
	}
	return errors.Join(errs...)
}
