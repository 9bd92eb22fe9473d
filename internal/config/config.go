// Package config provides YAML-based tuning for the simulation and the
// difficulty presets that adjust it.
package config

import "math"

// OliverConfig contains every tunable of a game session.
type OliverConfig struct {
	Player  PlayerConfig  `yaml:"player"`
	Combat  CombatConfig  `yaml:"combat"`
	Guard   GuardConfig   `yaml:"guard"`
	Effects EffectsConfig `yaml:"effects"`
	Camera  CameraConfig  `yaml:"camera"`
	Audio   AudioConfig   `yaml:"audio"`
}

// PlayerConfig defines the player's movement parameters.
type PlayerConfig struct {
	Speed          float64 `yaml:"speed"`
	JumpVelocity   float64 `yaml:"jump_velocity"`
	Gravity        float64 `yaml:"gravity"`
	CoyoteTime     float64 `yaml:"coyote_time"`
	JumpBuffer     float64 `yaml:"jump_buffer"`
	ClimbSpeed     float64 `yaml:"climb_speed"`
	LadderFactor   float64 `yaml:"ladder_factor"` // Horizontal speed scale while on a ladder
	CrouchFactor   float64 `yaml:"crouch_factor"` // Horizontal speed scale while crouching
	FacingDeadzone float64 `yaml:"facing_deadzone"`
	WalkRate       float64 `yaml:"walk_rate"` // Walk animation frames per second
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
}

// CombatConfig defines the sword swing.
type CombatConfig struct {
	Cooldown   float64 `yaml:"cooldown"`
	ActiveTime float64 `yaml:"active_time"`
	OffsetX    float64 `yaml:"offset_x"` // Multiplied by facing
	OffsetY    float64 `yaml:"offset_y"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Reach      float64 `yaml:"reach"` // Player-to-guard distance that always hits
}

// GuardConfig defines patrolling guards.
type GuardConfig struct {
	Speed    float64 `yaml:"speed"`
	Gravity  float64 `yaml:"gravity"`
	WalkRate float64 `yaml:"walk_rate"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
}

// EffectsConfig defines timed animations.
type EffectsConfig struct {
	FadeTime   float64 `yaml:"fade_time"`
	DoorTime   float64 `yaml:"door_time"`
	DoorOffset float64 `yaml:"door_offset"`
	DoorEasing string  `yaml:"door_easing"` // Name of a gween easing function
}

// CameraConfig defines how the view follows the player.
type CameraConfig struct {
	FollowRate float64 `yaml:"follow_rate"`
}

// AudioConfig defines sound levels in decibels.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	JumpDB  float64 `yaml:"jump_db"`
	SfxDB   float64 `yaml:"sfx_db"`
}

// DBToLinear converts a decibel level to a linear gain.
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset returns the preset with the given name. Unknown names are
// reported with ok=false.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, true
	}
	return DifficultyNormal, false
}
