package oliver

import (
	"math"
	"sort"

	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/prince-of-oliver/internal/config"
	"github.com/vovakirdan/prince-of-oliver/internal/core"
)

var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-cubic":     ease.InCubic,
	"out-cubic":    ease.OutCubic,
	"in-out-cubic": ease.InOutCubic,
	"in-sine":      ease.InSine,
	"out-sine":     ease.OutSine,
	"in-out-sine":  ease.InOutSine,
	"out-bounce":   ease.OutBounce,
}

// Easing returns the easing function with the given name. Unknown names fall
// back to linear and report ok=false.
func Easing(name string) (ease.TweenFunc, bool) {
	if fn, ok := easings[name]; ok {
		return fn, true
	}
	return ease.Linear, false
}

// EasingNames lists the accepted easing names.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for n := range easings {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// DoorOpening slides a door up by Distance over the timer's duration.
type DoorOpening struct {
	Timer    core.Timer
	Distance float64
	ease     ease.TweenFunc
}

func newDoorOpening(cfg config.EffectsConfig, fn ease.TweenFunc) *DoorOpening {
	if fn == nil {
		fn = ease.Linear
	}
	return &DoorOpening{
		Timer:    core.NewTimer(cfg.DoorTime),
		Distance: cfg.DoorOffset,
		ease:     fn,
	}
}

// Offset returns the door offset at the current point of the animation.
func (o *DoorOpening) Offset() float64 {
	if o.Timer.Finished() || o.Timer.Duration <= 0 {
		return o.Distance
	}
	v := o.ease(float32(o.Timer.Elapsed), 0, float32(o.Distance), float32(o.Timer.Duration))
	return math.Max(0, float64(v))
}

// advanceEffects ticks door openings and guard fade-outs. Finished doors
// keep their final offset; finished guards are removed.
func (g *Game) advanceEffects(dt float64) {
	g.world.Doors.Each(func(_ Handle, d *Door) {
		if d.Opening == nil {
			return
		}
		d.Opening.Timer.Advance(dt)
		d.Offset = d.Opening.Offset()
		if d.Opening.Timer.Finished() {
			d.Offset = d.Opening.Distance
			d.Opening = nil
			d.Open = true
		}
	})

	var gone []Handle
	g.world.Guards.Each(func(h Handle, gd *Guard) {
		if gd.Fade == nil {
			return
		}
		gd.Fade.Advance(dt)
		gd.Opacity = 1 - gd.Fade.Progress()
		if gd.Fade.Finished() {
			gone = append(gone, h)
		}
	})
	for _, h := range gone {
		g.world.Guards.Remove(h)
	}
}

// animate advances the purely cosmetic state: key bob, princess wave and
// the camera.
func (g *Game) animate(dt float64) {
	g.world.Keys.Each(func(_ Handle, k *Key) {
		k.Float += dt
	})
	g.world.Princesses.Each(func(_ Handle, p *Princess) {
		p.Wave += dt
	})
	g.followCamera(dt)
}

// followCamera eases the camera toward the player and keeps the view inside
// the level.
func (g *Game) followCamera(dt float64) {
	p := g.world.Player
	if p == nil {
		return
	}
	t := 1 - math.Exp(-g.cfg.Camera.FollowRate*dt)
	g.camera = g.camera.Add(p.Pos.Sub(g.camera).Scale(t))
	g.camera = g.clampCamera(g.camera)
}

func (g *Game) clampCamera(c core.Vec2) core.Vec2 {
	half := g.viewSize().Half()
	clampAxis := func(v, lo, hi float64) float64 {
		if hi < lo {
			return (lo + hi) / 2
		}
		return core.ClampF(v, lo, hi)
	}
	c.X = clampAxis(c.X, half.X, g.level.Width-half.X)
	c.Y = clampAxis(c.Y, half.Y, g.level.Height-half.Y)
	return c
}
