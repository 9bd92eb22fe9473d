package oliver

import (
	"math"

	"github.com/vovakirdan/prince-of-oliver/internal/config"
	"github.com/vovakirdan/prince-of-oliver/internal/core"
	"github.com/vovakirdan/prince-of-oliver/internal/level"
)

// Handle addresses a record in the world. Handles are never reused within a
// session, so a stale handle simply fails to resolve.
type Handle int

// NoHandle is the zero handle; no record ever has it.
const NoHandle Handle = 0

// Arena stores records of one kind under stable handles and iterates them in
// insertion order.
type Arena[T any] struct {
	next  *Handle
	items map[Handle]*T
	order []Handle
}

func newArena[T any](next *Handle) Arena[T] {
	return Arena[T]{next: next, items: make(map[Handle]*T)}
}

// Insert stores v and returns its new handle.
func (a *Arena[T]) Insert(v T) Handle {
	*a.next++
	h := *a.next
	a.items[h] = &v
	a.order = append(a.order, h)
	return h
}

// Get returns the record for h.
func (a *Arena[T]) Get(h Handle) (*T, bool) {
	v, ok := a.items[h]
	return v, ok
}

// Remove deletes the record for h. Removing a missing handle is a no-op.
func (a *Arena[T]) Remove(h Handle) bool {
	if _, ok := a.items[h]; !ok {
		return false
	}
	delete(a.items, h)
	for i, o := range a.order {
		if o == h {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
	return true
}

// Clear removes every record.
func (a *Arena[T]) Clear() {
	clear(a.items)
	a.order = a.order[:0]
}

// Len returns the number of records.
func (a *Arena[T]) Len() int {
	return len(a.order)
}

// Handles returns the live handles in insertion order.
func (a *Arena[T]) Handles() []Handle {
	return append([]Handle(nil), a.order...)
}

// Each calls fn for every record in insertion order. fn must not insert or
// remove records; collect handles first when that is needed.
func (a *Arena[T]) Each(fn func(Handle, *T)) {
	for _, h := range a.order {
		fn(h, a.items[h])
	}
}

// Body is a kinematic box: centre position, velocity and full size.
type Body struct {
	Pos  core.Vec2
	Vel  core.Vec2
	Size core.Vec2
}

// Box returns the body's collision box.
func (b Body) Box() core.Box {
	return core.Box{Pos: b.Pos, Size: b.Size}
}

// Solid is a static collision rectangle.
type Solid struct {
	Name        string
	Box         core.Box
	DoorBlocker bool
}

// Zone is a named trigger volume: ladder, hazard or princess.
type Zone struct {
	Name string
	Box  core.Box
}

// Key is a pickup. Float is the cosmetic bob phase in seconds.
type Key struct {
	Name  string
	Box   core.Box
	Float float64
}

// Bob returns the drawn vertical offset of the key.
func (k Key) Bob() float64 {
	return math.Sin(k.Float*3) * 2
}

// Checkpoint moves the respawn point to Resume when touched.
type Checkpoint struct {
	Name   string
	Box    core.Box
	Resume core.Vec2
}

// Door is the visual door. Offset is how far it has slid up; Opening is set
// while the animation runs.
type Door struct {
	Name    string
	Box     core.Box
	Offset  float64
	Open    bool
	Opening *DoorOpening
}

// Princess is the goal. Wave is the cosmetic animation phase in seconds.
type Princess struct {
	Name string
	Box  core.Box
	Wave float64
}

// World is the arena of every record in a running level.
type World struct {
	next Handle

	Solids      Arena[Solid]
	Ladders     Arena[Zone]
	Hazards     Arena[Zone]
	Keys        Arena[Key]
	Checkpoints Arena[Checkpoint]
	Doors       Arena[Door]
	Princesses  Arena[Princess]
	Guards      Arena[Guard]

	// Player is nil when the level has no player; every system then does nothing.
	Player *Player

	index *solidIndex
}

// NewWorld builds a world from level data. The player and guards are not
// spawned; see SpawnPlayer and SpawnGuards.
func NewWorld(lvl level.Level) *World {
	w := &World{}
	w.Solids = newArena[Solid](&w.next)
	w.Ladders = newArena[Zone](&w.next)
	w.Hazards = newArena[Zone](&w.next)
	w.Keys = newArena[Key](&w.next)
	w.Checkpoints = newArena[Checkpoint](&w.next)
	w.Doors = newArena[Door](&w.next)
	w.Princesses = newArena[Princess](&w.next)
	w.Guards = newArena[Guard](&w.next)

	bounds := lvl.Bounds()
	for _, s := range lvl.Solids {
		bounds = bounds.Union(s.Box())
	}
	w.index = newSolidIndex(bounds)

	for _, s := range lvl.Solids {
		w.AddSolid(Solid{Name: s.Name, Box: s.Box(), DoorBlocker: s.DoorBlocker})
	}
	for _, r := range lvl.Ladders {
		w.Ladders.Insert(Zone{Name: r.Name, Box: r.Box()})
	}
	for _, r := range lvl.Hazards {
		w.Hazards.Insert(Zone{Name: r.Name, Box: r.Box()})
	}
	for _, r := range lvl.Keys {
		w.Keys.Insert(Key{Name: r.Name, Box: r.Box()})
	}
	for _, c := range lvl.Checkpoints {
		w.Checkpoints.Insert(Checkpoint{Name: c.Name, Box: c.Box(), Resume: c.Resume})
	}
	for _, r := range lvl.Doors {
		w.Doors.Insert(Door{Name: r.Name, Box: r.Box()})
	}
	if lvl.Princess != nil {
		w.Princesses.Insert(Princess{Name: lvl.Princess.Name, Box: lvl.Princess.Box()})
	}
	return w
}

// AddSolid inserts a solid and indexes it for collision queries.
func (w *World) AddSolid(s Solid) Handle {
	h := w.Solids.Insert(s)
	w.index.add(h, s.Box)
	return h
}

// RemoveSolid deletes a solid from the arena and the index.
func (w *World) RemoveSolid(h Handle) bool {
	if !w.Solids.Remove(h) {
		return false
	}
	w.index.remove(h)
	return true
}

// SpawnPlayer places a fresh player at pos, which is also its respawn point.
func (w *World) SpawnPlayer(cfg config.PlayerConfig, pos core.Vec2) *Player {
	w.Player = newPlayer(cfg, pos)
	return w.Player
}

// SpawnGuards inserts one live guard per spawn, each under a fresh handle.
func (w *World) SpawnGuards(cfg config.GuardConfig, spawns []level.GuardSpawn) []Handle {
	out := make([]Handle, 0, len(spawns))
	for _, s := range spawns {
		out = append(out, w.Guards.Insert(newGuard(cfg, s)))
	}
	return out
}

// SolidsNear returns the solid boxes that can touch a body of the given size
// moving from pos by delta.
func (w *World) SolidsNear(pos, delta, size core.Vec2) []core.Box {
	start := core.Box{Pos: pos, Size: size}
	end := core.Box{Pos: pos.Add(delta), Size: size}
	region := start.Union(end).Grow(size.Len())

	handles := w.index.query(region)
	out := make([]core.Box, 0, len(handles))
	for _, h := range handles {
		if s, ok := w.Solids.Get(h); ok {
			out = append(out, s.Box)
		}
	}
	return out
}

// Move resolves a body's displacement against the solids and reports which
// axes collided.
func (w *World) Move(b *Body, delta core.Vec2) (hitX, hitY bool) {
	b.Pos, hitX, hitY = core.Resolve(b.Pos, delta, b.Size, w.SolidsNear(b.Pos, delta, b.Size))
	return hitX, hitY
}

// OnLadder reports whether box overlaps any ladder.
func (w *World) OnLadder(box core.Box) bool {
	for _, h := range w.Ladders.order {
		if w.Ladders.items[h].Box.Overlaps(box) {
			return true
		}
	}
	return false
}
