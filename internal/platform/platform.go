package platform

import "github.com/jhowell728/fsb/internal/model"

// Reader enumerates top-level windows from the OS window manager.
type Reader interface {
	// ListWindows returns a snapshot of all top-level windows in z-order,
	// filtered by opts. Windows that vanish mid-enumeration are skipped.
	ListWindows(opts ListOptions) ([]model.Window, error)
}

// WindowManager changes window style and placement.
type WindowManager interface {
	// Fullscreen strips the window frame and resizes the window to cover
	// the primary display.
	Fullscreen(id uintptr) error
	// ScreenBounds returns the pixel bounds of the primary display.
	ScreenBounds() (Bounds, error)
}

// Console prepares the attached text console for the interactive menu.
type Console interface {
	// Setup switches the console to UTF-8 with ANSI processing and returns
	// a function that undoes the changes.
	Setup() (restore func() error, err error)
}

// Settings persists per-user flags outside the config file.
type Settings interface {
	GUIMode() (bool, error)
	SetGUIMode(enabled bool) error
}
