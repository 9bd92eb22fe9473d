package core

import "testing"

func TestOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(20, 0, 10, 10),
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 20, 10, 10),
			expected: false,
		},
		{
			name:     "touching edge horizontally (no overlap)",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "touching edge vertically (no overlap)",
			a:        NewBox(0, 0, 14, 24),
			b:        NewBox(0, -24, 100, 24),
			expected: false,
		},
		{
			name:     "contained box",
			a:        NewBox(0, 0, 40, 40),
			b:        NewBox(3, -2, 4, 4),
			expected: true,
		},
		{
			name:     "overlap on x only",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(2, 30, 10, 10),
			expected: false,
		},
		{
			name:     "sliver overlap",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(9.999, 0, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlap(tc.a.Pos, tc.a.Size, tc.b.Pos, tc.b.Size); got != tc.expected {
				t.Errorf("Overlap() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxUnionAndGrow(t *testing.T) {
	a := NewBox(0, 0, 2, 2)
	b := NewBox(10, 4, 2, 2)

	u := a.Union(b)
	if u.Min() != V(-1, -1) || u.Max() != V(11, 5) {
		t.Errorf("Union() = [%v, %v], expected [(-1,-1), (11,5)]", u.Min(), u.Max())
	}

	g := a.Grow(3)
	if g.Size != V(8, 8) || g.Pos != a.Pos {
		t.Errorf("Grow(3) = %+v, expected size 8x8 at origin", g)
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(V(0, 0), V(3, 4)); d != 5 {
		t.Errorf("Distance() = %v, expected 5", d)
	}
}

func TestApproach(t *testing.T) {
	tests := []struct {
		v, d, expected float64
	}{
		{0.12, 0.05, 0.07},
		{0.01, 0.05, 0},
		{0, 1, 0},
	}
	for _, tc := range tests {
		got := Approach(tc.v, tc.d)
		if got < tc.expected-1e-12 || got > tc.expected+1e-12 {
			t.Errorf("Approach(%v, %v) = %v, expected %v", tc.v, tc.d, got, tc.expected)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	if !a.Intersects(NewRect(9, 9, 10, 10)) {
		t.Error("single cell overlap should intersect")
	}
	if a.Intersects(NewRect(10, 0, 10, 10)) {
		t.Error("adjacent rects should not intersect")
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
	}
	for _, tc := range tests {
		if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}
