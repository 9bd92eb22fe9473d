package config

import (
	_ "embed"
)

//go:embed defaults/oliver.yaml
var defaultOliverYAML []byte

// DefaultOliverConfig returns the default tuning.
func DefaultOliverConfig() OliverConfig {
	return OliverConfig{
		Player: PlayerConfig{
			Speed:          90,
			JumpVelocity:   190,
			Gravity:        -520,
			CoyoteTime:     0.12,
			JumpBuffer:     0.12,
			ClimbSpeed:     60,
			LadderFactor:   0.6,
			CrouchFactor:   0.4,
			FacingDeadzone: 0.1,
			WalkRate:       8,
			Width:          14,
			Height:         24,
		},
		Combat: CombatConfig{
			Cooldown:   0.35,
			ActiveTime: 0.18,
			OffsetX:    12,
			OffsetY:    -4,
			Width:      18,
			Height:     10,
			Reach:      26,
		},
		Guard: GuardConfig{
			Speed:    40,
			Gravity:  -520,
			WalkRate: 6,
			Width:    14,
			Height:   24,
		},
		Effects: EffectsConfig{
			FadeTime:   0.3,
			DoorTime:   0.35,
			DoorOffset: 26,
			DoorEasing: "linear",
		},
		Camera: CameraConfig{
			FollowRate: 6,
		},
		Audio: AudioConfig{
			Enabled: true,
			JumpDB:  -6,
			SfxDB:   0,
		},
	}
}
