// Package menu implements the interactive window picker: a two-state
// machine (List, Applying), a key decoder, and a full-redraw renderer.
package menu

import (
	"github.com/jhowell728/fsb/internal/model"
	"github.com/jhowell728/fsb/internal/platform"
)

// State is the menu's position in its lifecycle.
type State int

const (
	// StateList accepts navigation, refresh, apply and quit.
	StateList State = iota
	// StateApplying is terminal: the highlighted window has been handed to
	// the fullscreen applier.
	StateApplying
)

func (s State) String() string {
	if s == StateApplying {
		return "applying"
	}
	return "list"
}

// Action is what the caller must do after a key was handled.
type Action int

const (
	ActionNone Action = iota
	ActionRefresh
	ActionApply
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionRefresh:
		return "refresh"
	case ActionApply:
		return "apply"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Menu holds the window list of the latest enumeration and the highlight.
type Menu struct {
	windows  []model.Window
	selected int
	state    State
	status   string
}

// New creates a menu over windows with the first row highlighted.
func New(windows []model.Window) *Menu {
	m := &Menu{}
	m.Reset(windows)
	return m
}

// Reset replaces the list wholesale and highlights the first row.
func (m *Menu) Reset(windows []model.Window) {
	m.windows = windows
	m.selected = 0
	m.status = ""
}

// Windows returns the current list.
func (m *Menu) Windows() []model.Window { return m.windows }

// Selected returns the highlighted index. It is 0 for an empty list.
func (m *Menu) Selected() int { return m.selected }

// State returns the current state.
func (m *Menu) State() State { return m.state }

// Status returns the one-line message shown above the footer.
func (m *Menu) Status() string { return m.status }

// SetStatus sets the one-line message shown above the footer.
func (m *Menu) SetStatus(s string) { m.status = s }

// Current returns the highlighted window.
func (m *Menu) Current() (model.Window, bool) {
	if len(m.windows) == 0 {
		return model.Window{}, false
	}
	platform.Assert(m.selected >= 0 && m.selected < len(m.windows),
		"selection %d outside list of %d", m.selected, len(m.windows))
	return m.windows[m.selected], true
}

// Move shifts the highlight by delta rows, wrapping at both ends.
func (m *Menu) Move(delta int) {
	n := len(m.windows)
	if n == 0 {
		return
	}
	m.selected = ((m.selected+delta)%n + n) % n
}

// Handle applies k to the state machine and reports what the caller must do.
// Keys are ignored once the menu is applying.
func (m *Menu) Handle(k Key) Action {
	if m.state == StateApplying {
		return ActionNone
	}
	switch k {
	case KeyUp:
		m.Move(-1)
	case KeyDown:
		m.Move(1)
	case KeyRefresh:
		return ActionRefresh
	case KeyQuit, KeyEscape:
		return ActionQuit
	case KeyEnter:
		if len(m.windows) == 0 {
			return ActionNone
		}
		m.state = StateApplying
		return ActionApply
	}
	return ActionNone
}
