package model

import (
	"fmt"
	"strings"
)

// Window is one top-level window captured by a single enumeration pass.
// Records are snapshots: they are never refreshed in place.
type Window struct {
	PID      int         `yaml:"pid"                json:"pid"`
	ID       uintptr     `yaml:"id"                 json:"id"`
	Title    string      `yaml:"title"              json:"title"`
	Class    string      `yaml:"class"              json:"class"`
	FileName string      `yaml:"file,omitempty"     json:"file,omitempty"`
	Visible  bool        `yaml:"visible"            json:"visible"`
	Enabled  bool        `yaml:"enabled"            json:"enabled"`
	State    WindowState `yaml:"state"              json:"state"`
	Bounds   [4]int      `yaml:"bounds,flow"        json:"bounds"`
	Style    uint32      `yaml:"style"              json:"style"`
	ExStyle  uint32      `yaml:"ex_style"           json:"ex_style"`
}

// Label is the menu text for a window.
func (w Window) Label() string {
	return fmt.Sprintf("%s (Process Id: %d)", w.Title, w.PID)
}

// IsToolWindow reports whether the window carries the tool-window extended style.
func (w Window) IsToolWindow() bool {
	return w.ExStyle&WS_EX_TOOLWINDOW != 0
}

// HasBlankTitle reports whether the title is empty after trimming whitespace.
func (w Window) HasBlankTitle() bool {
	return strings.TrimSpace(w.Title) == ""
}
