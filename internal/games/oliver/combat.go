package oliver

import (
	"github.com/vovakirdan/prince-of-oliver/internal/core"
)

// SwordBox returns the sword hitbox for a player at pos facing dir.
func (g *Game) SwordBox(pos core.Vec2, facing float64) core.Box {
	c := g.cfg.Combat
	return core.Box{
		Pos:  pos.Add(core.V(c.OffsetX*facing, c.OffsetY)),
		Size: core.V(c.Width, c.Height),
	}
}

// swing slays every live guard hit by a sword swung from pos. A guard is hit
// when the hitbox overlaps it or when it stands within reach of the player.
// Dying guards are never hit twice.
func (g *Game) swing(pos core.Vec2, facing float64) int {
	sword := g.SwordBox(pos, facing)
	reach := g.cfg.Combat.Reach

	hits := 0
	g.world.Guards.Each(func(h Handle, gd *Guard) {
		if !gd.Alive {
			return
		}
		if !sword.Overlaps(gd.Box()) && core.Distance(gd.Pos, pos) > reach {
			return
		}
		gd.Alive = false
		gd.Vel = core.Vec2{}
		fade := core.NewTimer(g.cfg.Effects.FadeTime)
		gd.Fade = &fade
		g.emit(core.EventGuardSlain, h, gd.Pos)
		g.logger.Debug("guard slain", "guard", gd.Name, "handle", h)
		hits++
	})
	return hits
}

// resolveActiveSwing re-tests a live swing at the player's current position.
func (g *Game) resolveActiveSwing() {
	p := g.world.Player
	if p == nil || !p.Attacking() {
		return
	}
	g.swing(p.Pos, p.Facing)
}
