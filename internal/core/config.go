package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Dt returns the fixed tick length in seconds.
func (c RuntimeConfig) Dt() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the session state reported to the host.
type GameState struct {
	Won     bool    // Princess reached; the level is over
	Paused  bool    // Simulation is frozen
	HasKey  bool    // Key collected this session
	Deaths  int     // Respawns performed this session
	Ticks   int     // Simulated ticks since reset
	Elapsed float64 // Simulated seconds since reset
}

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventJumped EventKind = iota
	EventAttack
	EventGuardSlain
	EventKeyTaken
	EventDoorUnlocked
	EventCheckpoint
	EventRespawnMarked
	EventPlayerDied
	EventPlayerRespawned
	EventLevelWon
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventJumped:
		return "jumped"
	case EventAttack:
		return "attack"
	case EventGuardSlain:
		return "guard_slain"
	case EventKeyTaken:
		return "key_taken"
	case EventDoorUnlocked:
		return "door_unlocked"
	case EventCheckpoint:
		return "checkpoint"
	case EventRespawnMarked:
		return "respawn_marked"
	case EventPlayerDied:
		return "player_died"
	case EventPlayerRespawned:
		return "player_respawned"
	case EventLevelWon:
		return "level_won"
	default:
		return "unknown"
	}
}

// Event is a notification emitted by a tick. Handle refers to the entity
// involved, when there is one, and Pos is where it happened.
type Event struct {
	Kind   EventKind
	Handle int
	Pos    Vec2
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of kind k occurred in this tick.
func (r StepResult) Has(k EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == k {
			return true
		}
	}
	return false
}

// Count returns how many events of kind k occurred in this tick.
func (r StepResult) Count(k EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == k {
			n++
		}
	}
	return n
}
