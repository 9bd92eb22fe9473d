package oliver

import (
	"math"

	"github.com/vovakirdan/prince-of-oliver/internal/config"
	"github.com/vovakirdan/prince-of-oliver/internal/core"
)

// Player is the player's kinematic state.
type Player struct {
	Body

	Speed        float64
	JumpVelocity float64
	Gravity      float64
	ClimbSpeed   float64

	CoyoteTime float64 // Budget refilled on landing
	Coyote     float64 // Live countdown; > 0 means the player may jump
	JumpBuffer float64 // Budget refilled by a jump press
	Buffer     float64 // Live countdown of a buffered jump press

	OnLadder  bool
	Grounded  bool // Landed on a floor this tick
	Crouching bool
	Facing    float64 // +1 right, -1 left
	WalkPhase float64

	AttackCooldown float64
	AttackActive   float64

	Respawn core.Vec2

	ladderFactor   float64
	crouchFactor   float64
	facingDeadzone float64
	walkRate       float64
}

func newPlayer(cfg config.PlayerConfig, pos core.Vec2) *Player {
	return &Player{
		Body:           Body{Pos: pos, Size: core.V(cfg.Width, cfg.Height)},
		Speed:          cfg.Speed,
		JumpVelocity:   cfg.JumpVelocity,
		Gravity:        cfg.Gravity,
		ClimbSpeed:     cfg.ClimbSpeed,
		CoyoteTime:     cfg.CoyoteTime,
		Coyote:         cfg.CoyoteTime,
		JumpBuffer:     cfg.JumpBuffer,
		Facing:         1,
		Respawn:        pos,
		ladderFactor:   cfg.LadderFactor,
		crouchFactor:   cfg.CrouchFactor,
		facingDeadzone: cfg.FacingDeadzone,
		walkRate:       cfg.WalkRate,
	}
}

// Attacking reports whether the sword swing is live.
func (p *Player) Attacking() bool {
	return p.AttackActive > 0
}

// WalkFrame returns the walk animation frame, 0 or 1. Standing still always
// shows frame 0.
func (p *Player) WalkFrame() int {
	if !p.Grounded || p.OnLadder || math.Abs(p.Vel.X) <= 1 {
		return 0
	}
	return int(p.WalkPhase) % 2
}

// updatePlayer runs the player controller for one tick.
func (g *Game) updatePlayer(in core.InputFrame, dt float64) {
	p := g.world.Player
	if p == nil {
		return
	}
	start := p.Pos

	p.OnLadder = g.world.OnLadder(p.Box())

	p.AttackCooldown = core.Approach(p.AttackCooldown, dt)
	p.AttackActive = core.Approach(p.AttackActive, dt)

	move := in.Axis(core.ActionLeft, core.ActionRight)
	p.Crouching = in.Down(core.ActionDown) && p.Coyote > 0
	maxSpeed := p.Speed
	if p.Crouching {
		maxSpeed *= p.crouchFactor
	}

	if in.Has(core.ActionAttack) && p.AttackCooldown == 0 {
		p.AttackCooldown = g.cfg.Combat.Cooldown
		p.AttackActive = g.cfg.Combat.ActiveTime
		g.emit(core.EventAttack, NoHandle, start)
		g.swing(start, p.Facing)
	}

	if p.OnLadder {
		climb := in.Axis(core.ActionDown, core.ActionUp)
		p.Vel.X = move * p.Speed * p.ladderFactor
		p.Vel.Y = climb * p.ClimbSpeed
		if in.Has(core.ActionJump) {
			p.OnLadder = false
			p.Vel.Y = p.JumpVelocity
			g.jumped(start)
		}
	} else {
		p.Vel.X = move * maxSpeed
		p.Coyote = core.Approach(p.Coyote, dt)
		if in.Has(core.ActionJump) {
			p.Buffer = p.JumpBuffer
		} else {
			p.Buffer = core.Approach(p.Buffer, dt)
		}

		if p.Buffer > 0 && p.Coyote > 0 {
			p.Vel.Y = p.JumpVelocity
			p.Buffer = 0
			p.Coyote = 0
			g.jumped(start)
		}

		p.Vel.Y += p.Gravity * dt
	}

	delta := p.Vel.Scale(dt)
	hitX, hitY := g.world.Move(&p.Body, delta)
	if hitX {
		p.Vel.X = 0
	}
	if hitY {
		p.Vel.Y = 0
	}
	p.Grounded = hitY && delta.Y < 0
	if p.Grounded {
		p.Coyote = p.CoyoteTime
	}

	if in.Has(core.ActionMarkRespawn) {
		p.Respawn = p.Pos
		g.emit(core.EventRespawnMarked, NoHandle, p.Pos)
	}

	if math.Abs(move) > p.facingDeadzone {
		p.Facing = core.Sign(move)
	}

	if p.Grounded && !p.OnLadder && math.Abs(p.Vel.X) > 1 {
		p.WalkPhase += dt * p.walkRate
	}
}

func (g *Game) jumped(at core.Vec2) {
	g.emit(core.EventJumped, NoHandle, at)
	g.play(SoundJump, config.DBToLinear(g.cfg.Audio.JumpDB))
}

// reset puts the player back at its respawn point with every timer cleared.
func (p *Player) reset() {
	p.Pos = p.Respawn
	p.Vel = core.Vec2{}
	p.OnLadder = false
	p.Grounded = false
	p.Crouching = false
	p.Coyote = p.CoyoteTime
	p.Buffer = 0
	p.AttackActive = 0
	p.AttackCooldown = 0
}
