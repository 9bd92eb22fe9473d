package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/prince-of-oliver/internal/config"
	"github.com/vovakirdan/prince-of-oliver/internal/core"
	"github.com/vovakirdan/prince-of-oliver/internal/level"
	"github.com/vovakirdan/prince-of-oliver/internal/levels"
	"github.com/vovakirdan/prince-of-oliver/internal/storage"
)

func floorLevel(id string) level.Level {
	return level.Level{
		ID:          id,
		Name:        "Floor",
		Width:       400,
		Height:      200,
		PlayerSpawn: core.V(100, 32),
		Solids:      []level.Solid{{Rect: level.R("floor", 200, 10, 400, 20)}},
	}
}

// courtLevel wins on the first tick: the princess stands on the spawn.
func courtLevel() level.Level {
	lvl := floorLevel("court")
	lvl.Princess = &level.Rect{Name: "princess", Pos: core.V(104, 33), Size: core.V(18, 26)}
	return lvl
}

func newTestModel(t *testing.T, lvl level.Level) (Model, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	m := NewModel(lvl, Options{
		Config:  config.DefaultOliverConfig(),
		Runtime: core.DefaultConfig(),
		Store:   store,
		Player:  "tester",
	})
	return m, store
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, TickMsg{At: time.Unix(0, 0), run: m.run})
	return m
}

var enter = tea.KeyMsg{Type: tea.KeyEnter}

func TestModelStartsOnTitle(t *testing.T) {
	m, _ := newTestModel(t, floorLevel("floor"))

	if m.Phase() != PhaseTitle {
		t.Fatalf("Phase() = %v, expected title", m.Phase())
	}
	m = tick(t, m)
	if m.Game().State().Ticks != 0 {
		t.Error("the title screen should not run the simulation")
	}
	if !strings.Contains(m.View(), "Press Enter to start") {
		t.Error("title view should prompt to start")
	}

	m, _ = update(t, m, enter)
	if m.Phase() != PhasePlaying {
		t.Fatalf("Phase() after Enter = %v, expected playing", m.Phase())
	}
	m = tick(t, m)
	if m.Game().State().Ticks != 1 {
		t.Errorf("Ticks = %d, expected 1", m.Game().State().Ticks)
	}
}

func TestModelWinSavesRunOnce(t *testing.T) {
	m, store := newTestModel(t, courtLevel())

	m, _ = update(t, m, enter)
	m = tick(t, m)
	if m.Phase() != PhaseWon {
		t.Fatalf("Phase() = %v, expected won", m.Phase())
	}
	m = tick(t, m)

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, expected 1", len(runs))
	}
	r := runs[0]
	if r.LevelID != "court" || r.Player != "tester" || !r.Won || r.Ticks != 1 {
		t.Errorf("saved run = %+v, expected a one-tick clear of court by tester", r)
	}
}

func TestModelRestartAfterWin(t *testing.T) {
	m, _ := newTestModel(t, courtLevel())

	m, _ = update(t, m, enter)
	m = tick(t, m)
	m, _ = update(t, m, runeKey('n'))
	m = tick(t, m)

	if m.Phase() != PhasePlaying {
		t.Errorf("Phase() after restart = %v, expected playing", m.Phase())
	}
	if m.Game().State().Won || m.Game().State().Ticks != 0 {
		t.Errorf("State() = %+v, expected a fresh run", m.Game().State())
	}
}

func TestModelWonReturnsToTitle(t *testing.T) {
	m, _ := newTestModel(t, courtLevel())

	m, _ = update(t, m, enter)
	m = tick(t, m)
	m, _ = update(t, m, enter)

	if m.Phase() != PhaseTitle {
		t.Errorf("Phase() = %v, expected title", m.Phase())
	}
}

func TestModelQuitSavesAbandonedRun(t *testing.T) {
	m, store := newTestModel(t, floorLevel("floor"))

	m, _ = update(t, m, enter)
	for range 3 {
		m = tick(t, m)
	}
	m, cmd := update(t, m, runeKey('q'))

	if cmd == nil || !m.IsQuitting() {
		t.Fatal("q should quit")
	}
	runs, _ := store.RecentRuns(10)
	if len(runs) != 1 || runs[0].Won || runs[0].Ticks != 3 {
		t.Errorf("saved runs = %+v, expected one unfinished 3-tick run", runs)
	}
}

func TestModelQuitFromTitleSavesNothing(t *testing.T) {
	m, store := newTestModel(t, floorLevel("floor"))

	update(t, m, runeKey('q'))

	if runs, _ := store.RecentRuns(10); len(runs) != 0 {
		t.Errorf("saved %d runs, expected none", len(runs))
	}
}

func TestModelPausedBackToTitle(t *testing.T) {
	m, _ := newTestModel(t, floorLevel("floor"))

	m, _ = update(t, m, enter)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Phase() != PhasePlaying {
		t.Fatal("Esc should only leave a paused game")
	}

	m, _ = update(t, m, runeKey('p'))
	m = tick(t, m)
	if !m.Game().State().Paused {
		t.Fatal("P should pause")
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Phase() != PhaseTitle {
		t.Errorf("Phase() = %v, expected title", m.Phase())
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("Esc on the title should go back")
	}
}

func TestModelIgnoresForeignTicks(t *testing.T) {
	m, _ := newTestModel(t, floorLevel("floor"))
	m, _ = update(t, m, enter)

	m, _ = update(t, m, TickMsg{At: time.Unix(0, 0), run: m.run + 1})
	if m.Game().State().Ticks != 0 {
		t.Error("ticks from another model should be ignored")
	}
}

func TestModelHeldKeyMoves(t *testing.T) {
	m, _ := newTestModel(t, floorLevel("floor"))
	m.now = func() time.Time { return time.Unix(0, 0) }
	m, _ = update(t, m, enter)
	x := m.Game().World().Player.Pos.X

	m, _ = update(t, m, runeKey('d'))
	m = tick(t, m)
	m = tick(t, m)

	if got := m.Game().World().Player.Pos.X; got <= x {
		t.Errorf("Pos.X = %v, expected to walk right of %v", got, x)
	}
}

func TestModelReload(t *testing.T) {
	m, _ := newTestModel(t, floorLevel("floor"))
	m, _ = update(t, m, enter)

	m, _ = update(t, m, LevelReloadedMsg{Path: "/levels/bad.yaml", Err: errors.New("boom")})
	if m.Game().ID() != "floor" || !strings.Contains(m.notice, "reload failed") {
		t.Errorf("failed reload: level %q notice %q, expected the old level and a notice", m.Game().ID(), m.notice)
	}

	m, _ = update(t, m, LevelReloadedMsg{Path: "/levels/court.yaml", Level: courtLevel()})
	if m.Game().ID() != "court" {
		t.Errorf("level = %q, expected the reloaded court", m.Game().ID())
	}
	if m.notice != "reloaded court.yaml" {
		t.Errorf("notice = %q, expected reloaded court.yaml", m.notice)
	}
}

func TestModelResize(t *testing.T) {
	m, _ := newTestModel(t, floorLevel("floor"))

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, expected 120x40", m.screen.Width(), m.screen.Height())
	}
}

func TestSessionStartsLevelFromMenu(t *testing.T) {
	s := NewSessionModel(Options{
		Config:  config.DefaultOliverConfig(),
		Runtime: core.DefaultConfig(),
	})

	var cursor int
	for i, item := range s.menu.items {
		if item.LevelID == levels.DefaultLevelID {
			cursor = i
		}
	}
	s.menu.cursor = cursor

	next, _ := s.Update(enter)
	s = next.(SessionModel)
	if s.mode != modeGame || s.game == nil {
		t.Fatal("Enter on the menu should start the level")
	}
	if s.game.Game().ID() != levels.DefaultLevelID {
		t.Errorf("level = %q, expected %q", s.game.Game().ID(), levels.DefaultLevelID)
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.mode != modeMenu {
		t.Error("Esc on the level title should return to the menu")
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = next.(SessionModel)
	if s.mode != modeRuns {
		t.Fatal("Tab should open the runs board")
	}
	if !strings.Contains(s.View(), "BEST RUNS") {
		t.Error("runs board should render its title")
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.mode != modeMenu {
		t.Error("Esc on the runs board should return to the menu")
	}
}
