// Package core provides the fundamental simulation types for the platformer.
// It contains no external dependencies (especially no Bubble Tea) to keep
// game logic pure and testable.
package core

import "math"

// Vec2 is a point or displacement in world units. The world is y-up.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Half returns v / 2. Used to turn a full box size into half-extents.
func (v Vec2) Half() Vec2 {
	return Vec2{X: v.X * 0.5, Y: v.Y * 0.5}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec2) float64 {
	return b.Sub(a).Len()
}

// Box is an axis-aligned rectangle described by its centre and full size.
type Box struct {
	Pos  Vec2 // Centre
	Size Vec2 // Full width and height
}

// NewBox creates a box centred on (x, y) with the given full size.
func NewBox(x, y, w, h float64) Box {
	return Box{Pos: V(x, y), Size: V(w, h)}
}

// Min returns the bottom-left corner.
func (b Box) Min() Vec2 {
	return b.Pos.Sub(b.Size.Half())
}

// Max returns the top-right corner.
func (b Box) Max() Vec2 {
	return b.Pos.Add(b.Size.Half())
}

// Overlaps reports whether b and o strictly overlap.
func (b Box) Overlaps(o Box) bool {
	return Overlap(b.Pos, b.Size, o.Pos, o.Size)
}

// Union returns the smallest box containing both b and o.
func (b Box) Union(o Box) Box {
	lo := V(math.Min(b.Min().X, o.Min().X), math.Min(b.Min().Y, o.Min().Y))
	hi := V(math.Max(b.Max().X, o.Max().X), math.Max(b.Max().Y, o.Max().Y))
	return Box{Pos: lo.Add(hi).Scale(0.5), Size: hi.Sub(lo)}
}

// Grow returns b expanded by m on every side.
func (b Box) Grow(m float64) Box {
	return Box{Pos: b.Pos, Size: b.Size.Add(V(2*m, 2*m))}
}

// Overlap is the AABB test used by every subsystem. Boxes that merely touch
// along an edge do not overlap.
func Overlap(posA, sizeA, posB, sizeB Vec2) bool {
	ha, hb := sizeA.Half(), sizeB.Half()
	return math.Abs(posA.X-posB.X) < ha.X+hb.X &&
		math.Abs(posA.Y-posB.Y) < ha.Y+hb.Y
}

// Rect is an integer cell rectangle used for screen drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Approach moves v toward zero by d, never crossing it.
func Approach(v, d float64) float64 {
	return math.Max(v-d, 0)
}

// Sign returns -1, 0 or +1.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
