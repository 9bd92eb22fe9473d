package oliver

import "math"

// Snapshot is a flat copy of the simulation state, used to compare runs.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick   int
	Won    bool
	HasKey bool
	Deaths int

	PlayerX, PlayerY   float64
	PlayerVX, PlayerVY float64
	Coyote, Buffer     float64
	Cooldown, Active   float64
	Facing             float64
	RespawnX, RespawnY float64

	// Each guard is 5 values: X, Y, Direction, Alive (0/1), Opacity
	GuardData []float64

	// Each door is 1 value: Offset
	DoorData []float64

	Keys   int
	Solids int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:   g.state.Ticks,
		Won:    g.state.Won,
		HasKey: g.state.HasKey,
		Deaths: g.state.Deaths,
		Keys:   g.world.Keys.Len(),
		Solids: g.world.Solids.Len(),
	}

	if p := g.world.Player; p != nil {
		snap.PlayerX, snap.PlayerY = p.Pos.X, p.Pos.Y
		snap.PlayerVX, snap.PlayerVY = p.Vel.X, p.Vel.Y
		snap.Coyote, snap.Buffer = p.Coyote, p.Buffer
		snap.Cooldown, snap.Active = p.AttackCooldown, p.AttackActive
		snap.Facing = p.Facing
		snap.RespawnX, snap.RespawnY = p.Respawn.X, p.Respawn.Y
	}

	g.world.Guards.Each(func(_ Handle, gd *Guard) {
		alive := 0.0
		if gd.Alive {
			alive = 1
		}
		snap.GuardData = append(snap.GuardData, gd.Pos.X, gd.Pos.Y, gd.Direction, alive, gd.Opacity)
	})
	g.world.Doors.Each(func(_ Handle, d *Door) {
		snap.DoorData = append(snap.DoorData, d.Offset)
	})
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick) //#nosec G115 -- hash computation
	mix := func(v uint64) {
		h = h*31 + v
	}
	flag := func(b bool) {
		if b {
			mix(1)
		} else {
			mix(0)
		}
	}

	flag(snap.Won)
	flag(snap.HasKey)
	mix(uint64(snap.Deaths)) //#nosec G115 -- hash computation
	mix(uint64(snap.Keys))   //#nosec G115 -- hash computation
	mix(uint64(snap.Solids)) //#nosec G115 -- hash computation

	for _, f := range []float64{
		snap.PlayerX, snap.PlayerY, snap.PlayerVX, snap.PlayerVY,
		snap.Coyote, snap.Buffer, snap.Cooldown, snap.Active,
		snap.Facing, snap.RespawnX, snap.RespawnY,
	} {
		mix(math.Float64bits(f))
	}

	for _, f := range snap.GuardData {
		mix(math.Float64bits(f))
	}

	for _, f := range snap.DoorData {
		mix(math.Float64bits(f))
	}

	return h
}
