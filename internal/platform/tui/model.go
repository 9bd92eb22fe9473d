package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/prince-of-oliver/internal/config"
	"github.com/vovakirdan/prince-of-oliver/internal/core"
	"github.com/vovakirdan/prince-of-oliver/internal/games/oliver"
	"github.com/vovakirdan/prince-of-oliver/internal/level"
	"github.com/vovakirdan/prince-of-oliver/internal/platform/watch"
	"github.com/vovakirdan/prince-of-oliver/internal/storage"
)

// Phase is where the player is in a level's host flow.
type Phase int

const (
	PhaseTitle Phase = iota
	PhasePlaying
	PhaseWon
)

// Options configures a game model.
type Options struct {
	Config  config.OliverConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store
	Audio   oliver.Audio
	Logger  *log.Logger
	Player  string // Recorded with each run
	Labels  bool   // Draw entity names

	// Watch, when set, reloads the level whenever LoadLevel succeeds on a
	// reported path.
	Watch     *watch.Watcher
	LoadLevel func(path string) (level.Level, error)
}

// LevelReloadedMsg carries a level re-read from disk.
type LevelReloadedMsg struct {
	Path  string
	Level level.Level
	Err   error
}

var runIDs atomic.Int64

// Model is the Bubble Tea model for playing one level.
type Model struct {
	game     *oliver.Game
	screen   *core.Screen
	opts     Options
	keys     *KeyMapper
	hold     *HoldTracker
	now      func() time.Time
	run      int64 // Tick chain owned by this model
	phase    Phase
	notice   string
	runSaved bool
	quitting bool
	back     bool
}

// NewModel creates a model for lvl showing its title screen.
func NewModel(lvl level.Level, opts Options) Model {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	m := Model{
		screen: core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		opts:   opts,
		keys:   NewKeyMapper(),
		hold:   NewHoldTracker(FirstHold, RepeatHold),
		now:    time.Now,
		run:    runIDs.Add(1),
	}
	m.game = m.newGame(lvl)
	return m
}

func (m Model) newGame(lvl level.Level) *oliver.Game {
	g := oliver.New(m.opts.Config, lvl)
	g.SetAudio(m.opts.Audio)
	g.SetLogger(m.opts.Logger)
	g.SetLabels(m.opts.Labels)
	g.Reset(m.opts.Runtime)
	return g
}

// Init starts the tick loop and, when watching, the reload listener.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.opts.Runtime.TickRate, m.run)}
	if m.opts.Watch != nil {
		cmds = append(cmds, m.waitReload())
	}
	return tea.Batch(cmds...)
}

// waitReload blocks on the watcher and loads the next changed file.
func (m Model) waitReload() tea.Cmd {
	w, load := m.opts.Watch, m.opts.LoadLevel
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			if load == nil {
				return LevelReloadedMsg{Path: path, Err: errors.New("no level loader")}
			}
			lvl, err := load(path)
			return LevelReloadedMsg{Path: path, Level: lvl, Err: err}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return LevelReloadedMsg{Err: err}
		}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.run != m.run {
			return m, nil
		}
		return m.handleTick(msg.At)

	case LevelReloadedMsg:
		return m.handleReload(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}

	switch m.phase {
	case PhaseTitle:
		switch action {
		case core.ActionConfirm, core.ActionJump:
			m.start()
		case core.ActionBack:
			m.back = true
			return m, tea.Quit
		}

	case PhasePlaying:
		if action == core.ActionBack && m.game.State().Paused {
			m.saveRun()
			m.phase = PhaseTitle
			return m, nil
		}
		m.hold.Press(action, m.now())

	case PhaseWon:
		switch action {
		case core.ActionRestart:
			m.hold.Press(action, m.now())
		case core.ActionConfirm, core.ActionJump, core.ActionBack:
			m.phase = PhaseTitle
		}
	}

	return m, nil
}

// start begins a fresh run of the level.
func (m *Model) start() {
	m.game.Reset(m.opts.Runtime)
	m.hold.Reset()
	m.phase = PhasePlaying
	m.runSaved = false
	m.notice = ""
}

// handleTick advances the simulation while playing or waiting to restart.
func (m Model) handleTick(at time.Time) (tea.Model, tea.Cmd) {
	next := tickCmd(m.opts.Runtime.TickRate, m.run)
	if m.phase == PhaseTitle {
		return m, next
	}

	res := m.game.Step(m.hold.Frame(at))

	switch {
	case m.phase == PhasePlaying && res.State.Won:
		m.phase = PhaseWon
		m.saveRun()
	case m.phase == PhaseWon && !res.State.Won:
		// Restart pressed on the end screen.
		m.phase = PhasePlaying
		m.runSaved = false
	}

	return m, next
}

// handleReload swaps in a re-read level and restarts it.
func (m Model) handleReload(msg LevelReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.notice = fmt.Sprintf("reload failed: %v", msg.Err)
		m.opts.Logger.Warn("level reload failed", "path", msg.Path, "err", msg.Err)
	} else {
		m.saveRun()
		m.game = m.newGame(msg.Level)
		m.hold.Reset()
		m.runSaved = false
		if m.phase == PhaseWon {
			m.phase = PhasePlaying
		}
		m.notice = "reloaded " + filepath.Base(msg.Path)
		m.opts.Logger.Info("level reloaded", "path", msg.Path, "level", msg.Level.ID)
	}
	if m.opts.Watch == nil {
		return m, nil
	}
	return m, m.waitReload()
}

// saveRun stores the current run once. Runs that never started are skipped.
func (m *Model) saveRun() {
	if m.runSaved || m.phase == PhaseTitle {
		return
	}
	m.runSaved = true

	s := m.game.State()
	if m.opts.Store == nil || s.Ticks == 0 {
		return
	}
	_, err := m.opts.Store.SaveRun(storage.RunRecord{
		LevelID:  m.game.ID(),
		Player:   m.opts.Player,
		Won:      s.Won,
		Deaths:   s.Deaths,
		Ticks:    s.Ticks,
		Duration: s.Elapsed,
	})
	if err != nil {
		m.opts.Logger.Warn("run not saved", "level", m.game.ID(), "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.render()

	dir := filepath.Join(os.Getenv("HOME"), ".oliver", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

func (m Model) render() {
	if m.phase == PhaseTitle {
		m.renderTitle()
		return
	}
	m.game.Render(m.screen)
	if m.notice != "" && m.screen.Height() > 1 {
		m.screen.DrawTextColor(0, m.screen.Height()-1, m.notice, core.ColorGray)
	}
}

func (m Model) renderTitle() {
	s := m.screen
	s.Clear()

	y := s.Height()/2 - 6
	if y < 0 {
		y = 0
	}
	lines := []struct {
		text  string
		color core.Color
	}{
		{"P R I N C E   O F   O L I V E R", core.ColorBrightYellow},
		{"", core.ColorDefault},
		{m.game.Title(), core.ColorBrightCyan},
		{"", core.ColorDefault},
		{"A/D move   W/S climb   Space jump", core.ColorWhite},
		{"E attack   R mark respawn   P pause", core.ColorWhite},
		{"", core.ColorDefault},
		{"Press Enter to start", core.ColorBrightYellow},
		{"Esc back   Q quit", core.ColorGray},
	}
	for i, l := range lines {
		s.DrawTextCentered(y+i, l.text, l.color)
	}
	if m.notice != "" {
		s.DrawTextCentered(y+len(lines)+1, m.notice, core.ColorGray)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.render()
	return RenderScreen(m.screen)
}

// Phase returns the current host phase.
func (m Model) Phase() Phase {
	return m.phase
}

// Game returns the running game.
func (m Model) Game() *oliver.Game {
	return m.game
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user left the title screen.
func (m Model) BackToMenu() bool {
	return m.back
}

// Run starts the Bubble Tea program for a single level.
func Run(lvl level.Level, opts Options) error {
	p := tea.NewProgram(
		NewModel(lvl, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
