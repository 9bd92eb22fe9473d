package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/prince-of-oliver/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case " ", "k":
		return core.ActionJump, false
	case "e", "j":
		return core.ActionAttack, false
	case "r":
		return core.ActionMarkRespawn, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "n":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionRuns
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionRuns
	}

	return MenuActionNone
}

// Terminals report key presses but never releases. A held key shows up as
// the first press, a pause, then a stream of repeats, so a movement action
// stays held for FirstHold after a press and RepeatHold after each repeat.
const (
	FirstHold  = 250 * time.Millisecond
	RepeatHold = 120 * time.Millisecond
)

// opposite pairs actions that cancel each other when pressed.
var opposite = map[core.Action]core.Action{
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
}

// HoldTracker turns discrete key presses into per-tick input frames.
type HoldTracker struct {
	first   time.Duration
	repeat  time.Duration
	until   map[core.Action]time.Time
	pressed map[core.Action]bool
}

// NewHoldTracker creates a tracker with the given hold windows.
func NewHoldTracker(first, repeat time.Duration) *HoldTracker {
	return &HoldTracker{
		first:   first,
		repeat:  repeat,
		until:   make(map[core.Action]time.Time),
		pressed: make(map[core.Action]bool),
	}
}

// Press records a key press at now. Movement actions are held; everything
// else only produces a press edge on the next frame.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	other, movement := opposite[a]
	if !movement {
		h.pressed[a] = true
		return
	}

	delete(h.until, other)
	delete(h.pressed, other)
	if t, ok := h.until[a]; ok && t.After(now) {
		h.until[a] = now.Add(h.repeat)
		return
	}
	h.until[a] = now.Add(h.first)
	h.pressed[a] = true
}

// Frame returns the input for a tick at now and consumes pending presses.
func (h *HoldTracker) Frame(now time.Time) core.InputFrame {
	f := core.NewInputFrame()
	for a, t := range h.until {
		if t.After(now) {
			f.Hold(a)
		} else {
			delete(h.until, a)
		}
	}
	for a := range h.pressed {
		f.Set(a)
	}
	clear(h.pressed)
	return f
}

// Reset releases every action.
func (h *HoldTracker) Reset() {
	clear(h.until)
	clear(h.pressed)
}
