package model

import "strings"

// WindowFilter selects which enumerated windows are shown to the user.
//
// To avoid circular imports between model and platform, the platform
// ListOptions are translated into this struct before filtering.
type WindowFilter struct {
	HideHidden         bool
	HideBlankTitle     bool
	IncludeToolWindows bool
	PID                int    // 0 = any
	Title              string // case-insensitive substring, "" = any
	ByState            bool   // keep only windows in State
	State              WindowState
}

// Match reports whether w passes every filter.
func (f WindowFilter) Match(w Window) bool {
	if f.HideHidden && !w.Visible {
		return false
	}
	if f.HideBlankTitle && w.HasBlankTitle() {
		return false
	}
	if !f.IncludeToolWindows && w.IsToolWindow() {
		return false
	}
	if f.PID != 0 && w.PID != f.PID {
		return false
	}
	if f.ByState && w.State != f.State {
		return false
	}
	if f.Title != "" && !strings.Contains(strings.ToLower(w.Title), strings.ToLower(f.Title)) {
		return false
	}
	return true
}

// FilterWindows returns the windows that match f, keeping enumeration order.
// The result is never nil.
func FilterWindows(windows []Window, f WindowFilter) []Window {
	result := make([]Window, 0, len(windows))
	for _, w := range windows {
		if f.Match(w) {
			result = append(result, w)
		}
	}
	return result
}

// FindByID returns the window with the given handle id.
func FindByID(windows []Window, id uintptr) (Window, bool) {
	for _, w := range windows {
		if w.ID == id {
			return w, true
		}
	}
	return Window{}, false
}
