package oliver

import (
	"github.com/vovakirdan/prince-of-oliver/internal/config"
	"github.com/vovakirdan/prince-of-oliver/internal/core"
	"github.com/vovakirdan/prince-of-oliver/internal/level"
)

// Guard patrols between two x limits. A slain guard stops moving, drops out of
// every collision test and fades out before it is removed.
type Guard struct {
	Body

	Name      string
	Speed     float64
	Gravity   float64
	Left      float64
	Right     float64
	Direction float64 // +1 right, -1 left
	WalkPhase float64
	Alive     bool
	Opacity   float64
	Fade      *core.Timer

	walkRate float64
}

func newGuard(cfg config.GuardConfig, s level.GuardSpawn) Guard {
	return Guard{
		Body:      Body{Pos: s.Pos, Size: core.V(cfg.Width, cfg.Height)},
		Name:      s.Name,
		Speed:     cfg.Speed,
		Gravity:   cfg.Gravity,
		Left:      s.Left,
		Right:     s.Right,
		Direction: 1,
		Alive:     true,
		Opacity:   1,
		walkRate:  cfg.WalkRate,
	}
}

// Dying reports whether the guard has been slain but not yet removed.
func (gd *Guard) Dying() bool {
	return !gd.Alive
}

// WalkFrame returns the walk animation frame, 0 or 1.
func (gd *Guard) WalkFrame() int {
	return int(gd.WalkPhase) % 2
}

// patrol advances one live guard by dt. Dying guards are left untouched.
func (gd *Guard) patrol(w *World, dt float64) {
	if !gd.Alive {
		return
	}

	gd.Vel.X = gd.Speed * gd.Direction
	gd.Vel.Y += gd.Gravity * dt

	hitX, hitY := w.Move(&gd.Body, gd.Vel.Scale(dt))
	if hitX {
		gd.Vel.X = 0
	}
	if hitY {
		gd.Vel.Y = 0
	}

	if gd.Pos.X <= gd.Left {
		gd.Pos.X = gd.Left
		gd.Direction = 1
	} else if gd.Pos.X >= gd.Right {
		gd.Pos.X = gd.Right
		gd.Direction = -1
	}

	gd.WalkPhase += dt * gd.walkRate
}

// updateGuards runs the patrol logic for every guard.
func (g *Game) updateGuards(dt float64) {
	if g.world.Player == nil {
		return
	}
	g.world.Guards.Each(func(_ Handle, gd *Guard) {
		gd.patrol(g.world, dt)
	})
}
