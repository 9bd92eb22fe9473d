// Package oliver implements the platformer simulation: a player crossing a
// level of solids, ladders and trigger volumes past patrolling guards to
// reach the princess. Everything runs in one ordered call sequence per tick
// and is deterministic for a given input and dt sequence.
package oliver

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/prince-of-oliver/internal/config"
	"github.com/vovakirdan/prince-of-oliver/internal/core"
	"github.com/vovakirdan/prince-of-oliver/internal/level"
)

// Game is one play session of a level.
type Game struct {
	cfg     config.OliverConfig
	runtime core.RuntimeConfig
	level   level.Level
	world   *World

	state          core.GameState
	respawnPending bool
	events         []core.Event

	audio  Audio
	logger *log.Logger
	ease   ease.TweenFunc

	camera core.Vec2
	labels bool
}

// New creates a game for lvl and resets it with the default runtime config.
func New(cfg config.OliverConfig, lvl level.Level) *Game {
	fn, _ := Easing(cfg.Effects.DoorEasing)
	g := &Game{
		cfg:    cfg,
		level:  lvl.Clone(),
		audio:  nopAudio{},
		logger: log.New(io.Discard),
		ease:   fn,
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the level ID.
func (g *Game) ID() string {
	return g.level.ID
}

// Title returns the level's display name.
func (g *Game) Title() string {
	return g.level.Name
}

// Reset rebuilds the world from the level and clears the session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	g.world = NewWorld(g.level)
	g.world.SpawnPlayer(g.cfg.Player, g.level.PlayerSpawn)
	g.world.SpawnGuards(g.cfg.Guard, g.level.Guards)

	g.state = core.GameState{}
	g.respawnPending = false
	g.events = nil
	g.camera = g.clampCamera(g.level.PlayerSpawn)

	g.logger.Debug("level reset", "level", g.level.ID, "solids", g.world.Solids.Len(), "guards", g.world.Guards.Len())
}

// Resize updates the screen dimensions used for the view.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.camera = g.clampCamera(g.camera)
}

// SetAudio sets the sound sink. nil silences the game.
func (g *Game) SetAudio(a Audio) {
	if a == nil {
		a = nopAudio{}
	}
	g.audio = a
}

// SetLogger sets the logger. nil discards log output.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
}

// SetLabels toggles drawing entity names.
func (g *Game) SetLabels(on bool) {
	g.labels = on
}

// World returns the live world.
func (g *Game) World() *World {
	return g.world
}

// Level returns the level being played.
func (g *Game) Level() level.Level {
	return g.level
}

// Config returns the game's tuning.
func (g *Game) Config() config.OliverConfig {
	return g.cfg
}

// Camera returns the centre of the view in world units.
func (g *Game) Camera() core.Vec2 {
	return g.camera
}

// Step advances the game by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return g.Advance(in, g.runtime.Dt())
}

// Advance advances the game by dt seconds. Negative dt is treated as zero.
//
// Order within a tick: player, guards, active swing, triggers, respawn,
// effects, cosmetics. A death raised during the tick is resolved before it
// returns.
func (g *Game) Advance(in core.InputFrame, dt float64) core.StepResult {
	if dt < 0 {
		dt = 0
	}
	g.events = nil

	if g.state.Won {
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	if g.state.Paused {
		return g.result()
	}

	g.updatePlayer(in, dt)
	g.updateGuards(dt)
	g.resolveActiveSwing()
	g.checkTriggers()
	g.consumeRespawn()
	g.advanceEffects(dt)
	g.animate(dt)

	g.state.Ticks++
	g.state.Elapsed += dt
	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	return g.state
}
