package oliver

import (
	"math"
	"testing"

	"github.com/vovakirdan/prince-of-oliver/internal/config"
	"github.com/vovakirdan/prince-of-oliver/internal/core"
	"github.com/vovakirdan/prince-of-oliver/internal/level"
)

const dt = 1.0 / 60.0

// flatLevel is an 800x200 level with a floor whose top is at y=20. The
// player spawns standing on it at x=100.
func flatLevel() level.Level {
	return level.Level{
		ID:          "flat",
		Name:        "Flat",
		Width:       800,
		Height:      200,
		PlayerSpawn: core.V(100, 32),
		Solids: []level.Solid{
			{Rect: level.R("floor", 400, 10, 800, 20)},
		},
	}
}

type recordAudio struct {
	sounds []Sound
	gains  []float64
}

func (r *recordAudio) Play(s Sound, gain float64) {
	r.sounds = append(r.sounds, s)
	r.gains = append(r.gains, gain)
}

func (r *recordAudio) count(s Sound) int {
	n := 0
	for _, o := range r.sounds {
		if o == s {
			n++
		}
	}
	return n
}

func newTestGame(t *testing.T, lvl level.Level) (*Game, *recordAudio) {
	t.Helper()
	g := New(config.DefaultOliverConfig(), lvl)
	a := &recordAudio{}
	g.SetAudio(a)
	return g, a
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

// press returns a frame where every action went down this tick.
func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// hold returns a frame where every action is held without a new press.
func hold(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Hold(a)
	}
	return in
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func firstGuard(t *testing.T, g *Game) (Handle, *Guard) {
	t.Helper()
	hs := g.World().Guards.Handles()
	if len(hs) == 0 {
		t.Fatal("no guards in the world")
	}
	gd, _ := g.World().Guards.Get(hs[0])
	return hs[0], gd
}
