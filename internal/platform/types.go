package platform

import (
	"fmt"
	"strings"

	"github.com/jhowell728/fsb/internal/model"
)

// Bounds represents a screen rectangle.
type Bounds struct {
	X, Y, Width, Height int
}

// Array returns the bounds in the [x, y, w, h] form used by model.Window.
func (b Bounds) Array() [4]int {
	return [4]int{b.X, b.Y, b.Width, b.Height}
}

func (b Bounds) String() string {
	return fmt.Sprintf("%d,%d %dx%d", b.X, b.Y, b.Width, b.Height)
}

// ListOptions controls window enumeration and filtering.
type ListOptions struct {
	HideHidden         bool   // Skip windows that are not visible
	HideBlankTitle     bool   // Skip windows whose title is empty
	IncludeToolWindows bool   // Keep WS_EX_TOOLWINDOW windows
	PID                int    // Filter by process ID (0 = unset)
	Window             string // Filter by window title substring
	ByState            bool   // Filter by show state
	State              model.WindowState
}

// Filter converts the options into a model.WindowFilter.
func (o ListOptions) Filter() model.WindowFilter {
	return model.WindowFilter{
		HideHidden:         o.HideHidden,
		HideBlankTitle:     o.HideBlankTitle,
		IncludeToolWindows: o.IncludeToolWindows,
		PID:                o.PID,
		Title:              o.Window,
		ByState:            o.ByState,
		State:              o.State,
	}
}

// TargetOptions specifies which window a command acts on.
type TargetOptions struct {
	WindowID uintptr
	PID      int
	Window   string
}

// IsZero reports whether no target was given.
func (o TargetOptions) IsZero() bool {
	return o.WindowID == 0 && o.PID == 0 && o.Window == ""
}

// Resolve picks the target window from an enumeration snapshot.
// A window ID wins over PID and title; otherwise the first window (in
// z-order) matching both PID and title is used.
func (o TargetOptions) Resolve(windows []model.Window) (model.Window, error) {
	if o.IsZero() {
		return model.Window{}, fmt.Errorf("could not resolve target: specify --window-id, --pid, or --window")
	}

	if o.WindowID != 0 {
		w, ok := model.FindByID(windows, o.WindowID)
		if !ok {
			return model.Window{}, fmt.Errorf("no window found with ID %d", o.WindowID)
		}
		return w, nil
	}

	titleLower := strings.ToLower(o.Window)
	for _, w := range windows {
		if o.PID != 0 && w.PID != o.PID {
			continue
		}
		if titleLower != "" && !strings.Contains(strings.ToLower(w.Title), titleLower) {
			continue
		}
		return w, nil
	}

	switch {
	case o.PID != 0 && o.Window != "":
		return model.Window{}, fmt.Errorf("no window found for PID %d matching title %q", o.PID, o.Window)
	case o.PID != 0:
		return model.Window{}, fmt.Errorf("no window found for PID %d", o.PID)
	default:
		return model.Window{}, fmt.Errorf("no window found matching title %q", o.Window)
	}
}
