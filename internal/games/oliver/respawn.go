package oliver

import (
	"github.com/vovakirdan/prince-of-oliver/internal/core"
)

// consumeRespawn performs a pending respawn: the player returns to its
// respawn point and the guard roster is rebuilt from the level's spawns.
func (g *Game) consumeRespawn() {
	if !g.respawnPending {
		return
	}
	g.respawnPending = false

	p := g.world.Player
	if p == nil {
		return
	}
	p.reset()

	g.world.Guards.Clear()
	g.world.SpawnGuards(g.cfg.Guard, g.level.Guards)

	g.state.Deaths++
	g.emit(core.EventPlayerRespawned, NoHandle, p.Pos)
	g.logger.Debug("player respawned", "pos", p.Pos, "deaths", g.state.Deaths)
}
