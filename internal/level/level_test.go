package level

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/prince-of-oliver/internal/core"
)

func validLevel() Level {
	p := R("princess", 300, 20, 18, 26)
	return Level{
		ID:          "test",
		Name:        "Test",
		Width:       400,
		Height:      200,
		PlayerSpawn: core.V(20, 40),
		Solids:      []Solid{{Rect: R("floor", 200, 0, 400, 24)}},
		Ladders:     []Rect{R("ladder", 100, 40, 16, 64)},
		Keys:        []Rect{R("key", 150, 30, 12, 12)},
		Princess:    &p,
		Guards:      []GuardSpawn{{Name: "g", Pos: core.V(200, 40), Left: 180, Right: 240}},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Level)
		wantErr string
	}{
		{"valid", func(*Level) {}, ""},
		{"missing id", func(l *Level) { l.ID = "" }, "missing id"},
		{"zero size", func(l *Level) { l.Width = 0 }, "must be positive"},
		{"flat solid", func(l *Level) { l.Solids[0].Size.Y = 0 }, "solid 0"},
		{"reversed guard limits", func(l *Level) { l.Guards[0].Left = 300 }, "limits reversed"},
		{"degenerate princess", func(l *Level) { l.Princess.Size.X = -1 }, "princess"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := validLevel()
			tc.mutate(&l)
			err := l.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, expected error containing %q", tc.wantErr)
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() error should wrap ErrInvalid, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %q, expected to contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	l := validLevel()
	l.ID = ""
	l.Guards[0].Left = 999
	err := l.Validate()
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "missing id") || !strings.Contains(err.Error(), "limits reversed") {
		t.Errorf("Validate() = %q, expected both problems", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	l := validLevel()
	c := l.Clone()
	c.Solids[0].Pos.X = -1
	c.Princess.Pos.X = -1
	c.Guards = append(c.Guards, GuardSpawn{Name: "extra"})

	if l.Solids[0].Pos.X == -1 || l.Princess.Pos.X == -1 || len(l.Guards) != 1 {
		t.Error("Clone shares state with the original")
	}
}
