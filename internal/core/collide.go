package core

import "math"

// Resolve moves a box of the given size from pos by delta against static
// solids, one axis at a time: x first, then y using the resolved x. An axis
// with zero displacement is skipped. The returned flags report which axes
// were clamped by a solid.
//
// Fast bodies can tunnel through thin solids and corners are resolved in
// axis order; both are accepted at the tick rates the game runs at.
func Resolve(pos, delta, size Vec2, solids []Box) (Vec2, bool, bool) {
	half := size.Half()
	out := pos
	hitX, hitY := false, false

	if delta.X != 0 {
		out.X += delta.X
		for _, s := range solids {
			sh := s.Size.Half()
			if math.Abs(out.Y-s.Pos.Y) >= half.Y+sh.Y {
				continue
			}
			if math.Abs(out.X-s.Pos.X) >= half.X+sh.X {
				continue
			}
			hitX = true
			if delta.X > 0 {
				out.X = s.Pos.X - sh.X - half.X
			} else {
				out.X = s.Pos.X + sh.X + half.X
			}
		}
	}

	if delta.Y != 0 {
		out.Y += delta.Y
		for _, s := range solids {
			sh := s.Size.Half()
			if math.Abs(out.X-s.Pos.X) >= half.X+sh.X {
				continue
			}
			if math.Abs(out.Y-s.Pos.Y) >= half.Y+sh.Y {
				continue
			}
			hitY = true
			if delta.Y > 0 {
				out.Y = s.Pos.Y - sh.Y - half.Y
			} else {
				out.Y = s.Pos.Y + sh.Y + half.Y
			}
		}
	}

	return out, hitX, hitY
}
