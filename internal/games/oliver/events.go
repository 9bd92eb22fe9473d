package oliver

import (
	"github.com/vovakirdan/prince-of-oliver/internal/config"
	"github.com/vovakirdan/prince-of-oliver/internal/core"
)

// Sound identifies a one-shot sound effect.
type Sound int

const (
	SoundJump Sound = iota
	SoundKey
	SoundDoor
	SoundWin
	SoundAlert
)

// String returns the sound's name.
func (s Sound) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundKey:
		return "key"
	case SoundDoor:
		return "door"
	case SoundWin:
		return "win"
	case SoundAlert:
		return "alert"
	default:
		return "unknown"
	}
}

// Audio plays one-shot sounds. Play must not block the simulation.
type Audio interface {
	Play(s Sound, gain float64)
}

type nopAudio struct{}

func (nopAudio) Play(Sound, float64) {}

func (g *Game) emit(kind core.EventKind, h Handle, at core.Vec2) {
	g.events = append(g.events, core.Event{Kind: kind, Handle: int(h), Pos: at})
}

func (g *Game) play(s Sound, gain float64) {
	if !g.cfg.Audio.Enabled {
		return
	}
	g.audio.Play(s, gain)
}

func (g *Game) sfxGain() float64 {
	return config.DBToLinear(g.cfg.Audio.SfxDB)
}
