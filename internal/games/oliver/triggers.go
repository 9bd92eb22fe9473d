package oliver

import (
	"github.com/vovakirdan/prince-of-oliver/internal/core"
)

// checkTriggers runs every trigger volume against the player's box.
func (g *Game) checkTriggers() {
	p := g.world.Player
	if p == nil {
		return
	}
	box := p.Box()

	g.pickupKey(box)
	g.touchCheckpoints(p, box)
	g.touchPrincess(box)
	g.touchHazards(box)
	g.touchGuards(box)
}

// pickupKey takes the first key the player overlaps. Taking it removes every
// door blocker and starts every door opening.
func (g *Game) pickupKey(box core.Box) {
	if g.state.HasKey {
		return
	}

	var taken Handle
	var at core.Vec2
	for _, h := range g.world.Keys.order {
		k := g.world.Keys.items[h]
		if k.Box.Overlaps(box) {
			taken, at = h, k.Box.Pos
			break
		}
	}
	if taken == NoHandle {
		return
	}

	g.state.HasKey = true
	g.world.Keys.Remove(taken)
	g.emit(core.EventKeyTaken, taken, at)
	g.play(SoundKey, g.sfxGain())

	for _, h := range g.world.Solids.Handles() {
		if s, _ := g.world.Solids.Get(h); s.DoorBlocker {
			g.world.RemoveSolid(h)
		}
	}

	g.world.Doors.Each(func(h Handle, d *Door) {
		if d.Open || d.Opening != nil {
			return
		}
		d.Opening = newDoorOpening(g.cfg.Effects, g.ease)
		g.emit(core.EventDoorUnlocked, h, d.Box.Pos)
	})
	if g.world.Doors.Len() > 0 {
		g.play(SoundDoor, g.sfxGain())
	}
	g.logger.Debug("key taken", "key", taken)
}

// touchCheckpoints moves the respawn point to the resume point of every
// checkpoint the player overlaps.
func (g *Game) touchCheckpoints(p *Player, box core.Box) {
	g.world.Checkpoints.Each(func(h Handle, c *Checkpoint) {
		if !c.Box.Overlaps(box) {
			return
		}
		if p.Respawn != c.Resume {
			g.emit(core.EventCheckpoint, h, c.Resume)
		}
		p.Respawn = c.Resume
	})
}

func (g *Game) touchPrincess(box core.Box) {
	if g.state.Won {
		return
	}
	for _, h := range g.world.Princesses.order {
		pr := g.world.Princesses.items[h]
		if pr.Box.Overlaps(box) {
			g.state.Won = true
			g.emit(core.EventLevelWon, h, pr.Box.Pos)
			g.play(SoundWin, g.sfxGain())
			g.logger.Debug("level won", "level", g.level.ID, "deaths", g.state.Deaths, "ticks", g.state.Ticks+1)
			return
		}
	}
}

func (g *Game) touchHazards(box core.Box) {
	for _, h := range g.world.Hazards.order {
		if g.world.Hazards.items[h].Box.Overlaps(box) {
			g.raiseRespawn(box.Pos)
			return
		}
	}
}

func (g *Game) touchGuards(box core.Box) {
	for _, h := range g.world.Guards.order {
		gd := g.world.Guards.items[h]
		if gd.Alive && gd.Box().Overlaps(box) {
			g.raiseRespawn(box.Pos)
			return
		}
	}
}

// raiseRespawn sets the in-tick death signal. Raising it again in the same
// tick does nothing, so the alert plays once.
func (g *Game) raiseRespawn(at core.Vec2) {
	if g.respawnPending {
		return
	}
	g.respawnPending = true
	g.emit(core.EventPlayerDied, NoHandle, at)
	g.play(SoundAlert, g.sfxGain())
}
