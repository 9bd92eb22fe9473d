package oliver

import (
	"fmt"
	"math"

	"github.com/vovakirdan/prince-of-oliver/internal/core"
)

// World units covered by one terminal cell.
const (
	CellW = 8.0
	CellH = 12.0
)

const hudRows = 1

// Glyphs
const (
	SolidChar      = '█'
	LadderChar     = 'H'
	HazardChar     = '^'
	CheckpointChar = '!'
	DoorChar       = '#'
	KeyChar        = 'k'
	PrincessChar   = 'Q'
	GuardChar      = 'G'
	DyingChar      = '░'
	PlayerChar     = '@'
	SwordChar      = '─'
)

// viewSize returns the world area shown below the HUD.
func (g *Game) viewSize() core.Vec2 {
	rows := g.runtime.ScreenH - hudRows
	if rows < 1 {
		rows = 1
	}
	return core.V(float64(g.runtime.ScreenW)*CellW, float64(rows)*CellH)
}

// view maps world coordinates to screen cells for one frame.
type view struct {
	left, top float64
}

func (g *Game) view() view {
	half := g.viewSize().Half()
	return view{left: g.camera.X - half.X, top: g.camera.Y + half.Y}
}

// cell returns the screen cell containing world point p.
func (v view) cell(p core.Vec2) (int, int) {
	x := int(math.Floor((p.X - v.left) / CellW))
	y := hudRows + int(math.Floor((v.top-p.Y)/CellH))
	return x, y
}

// rect returns the screen cells covered by box. Every box covers at least
// one cell.
func (v view) rect(b core.Box) core.Rect {
	lo, hi := b.Min(), b.Max()
	x0 := int(math.Floor((lo.X - v.left) / CellW))
	x1 := int(math.Ceil((hi.X - v.left) / CellW))
	y0 := hudRows + int(math.Floor((v.top-hi.Y)/CellH))
	y1 := hudRows + int(math.Ceil((v.top-lo.Y)/CellH))
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	v := g.view()

	g.world.Ladders.Each(func(_ Handle, l *Zone) {
		dst.DrawRect(v.rect(l.Box), LadderChar, core.ColorBrown)
	})
	g.world.Solids.Each(func(_ Handle, s *Solid) {
		if s.DoorBlocker {
			return
		}
		dst.DrawRect(v.rect(s.Box), SolidChar, core.ColorGray)
	})
	g.world.Hazards.Each(func(_ Handle, h *Zone) {
		dst.DrawRect(v.rect(h.Box), HazardChar, core.ColorRed)
	})
	g.world.Checkpoints.Each(func(_ Handle, c *Checkpoint) {
		x, y := v.cell(c.Box.Pos)
		dst.SetWithColor(x, y, CheckpointChar, core.ColorGreen)
		g.label(dst, x, y, c.Name)
	})
	g.world.Doors.Each(func(_ Handle, d *Door) {
		b := d.Box
		b.Pos.Y += d.Offset
		dst.DrawRect(v.rect(b), DoorChar, core.ColorOrange)
		x, y := v.cell(b.Pos)
		g.label(dst, x, y-(v.rect(b).H/2), d.Name)
	})
	g.world.Keys.Each(func(_ Handle, k *Key) {
		x, y := v.cell(k.Box.Pos.Add(core.V(0, k.Bob())))
		dst.SetWithColor(x, y, KeyChar, core.ColorBrightYellow)
		g.label(dst, x, y, k.Name)
	})
	g.world.Princesses.Each(func(_ Handle, p *Princess) {
		x, y := v.cell(p.Box.Pos)
		dst.SetWithColor(x, y, PrincessChar, core.ColorBrightMagenta)
		// Wave: the arm goes up twice a second.
		if int(p.Wave*2)%2 == 1 {
			dst.SetWithColor(x, y-1, '/', core.ColorBrightMagenta)
		}
		g.label(dst, x, y-1, p.Name)
	})
	g.world.Guards.Each(func(_ Handle, gd *Guard) {
		x, y := v.cell(gd.Pos)
		switch {
		case gd.Alive:
			dst.SetWithColor(x, y, GuardChar, core.ColorBrightRed)
			dst.SetWithColor(x+int(gd.Direction), y, guardFoot(gd), core.ColorRed)
		case gd.Opacity > 0.5:
			dst.SetWithColor(x, y, DyingChar, core.ColorRed)
		default:
			dst.SetWithColor(x, y, DyingChar, core.ColorDarkGray)
		}
		g.label(dst, x, y, gd.Name)
	})

	if p := g.world.Player; p != nil {
		x, y := v.cell(p.Pos)
		ch := PlayerChar
		if p.Crouching {
			ch = 'a'
		}
		dst.SetWithColor(x, y, ch, core.ColorBrightCyan)
		if p.Attacking() {
			sx, sy := v.cell(g.SwordBox(p.Pos, p.Facing).Pos)
			if sx == x {
				sx += int(p.Facing)
			}
			dst.SetWithColor(sx, sy, SwordChar, core.ColorWhite)
		}
		g.label(dst, x, y, "player")
	}

	g.renderHUD(dst)
	g.renderOverlay(dst)
}

func guardFoot(gd *Guard) rune {
	if gd.WalkFrame() == 0 {
		return '.'
	}
	return ','
}

// label writes name above the cell (x, y) when labels are on.
func (g *Game) label(dst *core.Screen, x, y int, name string) {
	if !g.labels || name == "" {
		return
	}
	dst.DrawTextColor(x-len(name)/2, y-1, name, core.ColorDarkGray)
}

// renderHUD draws the level name, key status, deaths and time.
func (g *Game) renderHUD(dst *core.Screen) {
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 0, ' ')
	}
	dst.DrawTextColor(1, 0, g.level.Name, core.ColorBrightYellow)

	key := "Key: -"
	keyColor := core.ColorGray
	if g.state.HasKey {
		key = "Key: k"
		keyColor = core.ColorBrightYellow
	}
	dst.DrawTextCentered(0, key, keyColor)

	stats := fmt.Sprintf("Deaths: %d  Time: %.1fs", g.state.Deaths, g.state.Elapsed)
	dst.DrawText(dst.Width()-len(stats)-1, 0, stats)
}

// renderOverlay draws the pause and win messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.state.Won:
		g.drawCenteredBox(dst, "The princess is safe!",
			fmt.Sprintf("Deaths: %d  Time: %.1fs", g.state.Deaths, g.state.Elapsed),
			"Press N to play again")
	case g.state.Paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawCenteredBox(dst *core.Screen, lines ...string) {
	w := 0
	for _, l := range lines {
		w = core.Max(w, len([]rune(l)))
	}
	w += 4
	h := len(lines) + 2
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2

	r := core.NewRect(x, y, w, h)
	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, core.ColorWhite)
	for i, l := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = core.ColorBrightYellow
		}
		dst.DrawTextCentered(y+1+i, l, c)
	}
}
