package win32

import (
	"fmt"
	"log/slog"
	"syscall"

	"github.com/jhowell728/fsb/internal/model"
	"github.com/jhowell728/fsb/internal/platform"
)

const (
	gwlStyle   = -16
	gwlExStyle = -20
)

// Errors the collector treats specially. They have the same values as the
// constants in golang.org/x/sys/windows.
const (
	errAccessDenied        syscall.Errno = 5
	errInvalidWindowHandle syscall.Errno = 1400
)

// windowSource reads the metadata of one top-level window.
type windowSource interface {
	exists(hwnd uintptr) bool
	visible(hwnd uintptr) bool
	enabled(hwnd uintptr) bool
	processID(hwnd uintptr) (uint32, error)
	text(hwnd uintptr) (string, error)
	className(hwnd uintptr) (string, error)
	state(hwnd uintptr) (model.WindowState, error)
	rect(hwnd uintptr) (platform.Bounds, error)
	long(hwnd uintptr, index int32) (uint32, error)
	processFileName(pid uint32) (string, error)
}

// collector accumulates one enumeration pass.
type collector struct {
	src     windowSource
	logger  *slog.Logger
	windows []model.Window
}

func (c *collector) add(hwnd uintptr) {
	if w, ok := c.describe(hwnd); ok {
		c.windows = append(c.windows, w)
	}
}

// describe collects the metadata of one window. It reports false when the
// window was destroyed while being described.
func (c *collector) describe(hwnd uintptr) (model.Window, bool) {
	if !c.src.exists(hwnd) {
		return model.Window{}, false
	}
	w := model.Window{
		ID:      hwnd,
		Visible: c.src.visible(hwnd),
		Enabled: c.src.enabled(hwnd),
		State:   model.StateNormal,
	}

	pid, err := c.src.processID(hwnd)
	if c.vanished(hwnd, err) {
		return model.Window{}, false
	}
	w.PID = int(pid)

	if w.Title, err = c.src.text(hwnd); c.vanished(hwnd, err) {
		return model.Window{}, false
	}
	if w.Class, err = c.src.className(hwnd); c.vanished(hwnd, err) {
		return model.Window{}, false
	}
	if w.State, err = c.src.state(hwnd); c.vanished(hwnd, err) {
		return model.Window{}, false
	}
	bounds, err := c.src.rect(hwnd)
	if c.vanished(hwnd, err) {
		return model.Window{}, false
	}
	w.Bounds = bounds.Array()

	if w.Style, err = c.src.long(hwnd, gwlStyle); c.vanished(hwnd, err) {
		return model.Window{}, false
	}
	if w.ExStyle, err = c.src.long(hwnd, gwlExStyle); c.vanished(hwnd, err) {
		return model.Window{}, false
	}

	if pid != 0 {
		name, err := c.src.processFileName(pid)
		switch {
		case platform.IsErrno(err, errAccessDenied):
			// Elevated and protected processes refuse the query.
			c.logger.Debug("process file name unavailable", "pid", pid, "error", err)
		case err != nil:
			platform.LogCallError(c.logger, err, "pid", pid)
		default:
			w.FileName = name
		}
	}
	return w, true
}

// vanished reports whether err means the window is gone. Any other error is
// logged and the caller keeps the default value it already holds.
func (c *collector) vanished(hwnd uintptr, err error) bool {
	if err == nil {
		return false
	}
	if platform.IsErrno(err, errInvalidWindowHandle) || !c.src.exists(hwnd) {
		return true
	}
	platform.LogCallError(c.logger, err, "hwnd", formatHandle(hwnd))
	return false
}

func formatHandle(hwnd uintptr) string {
	return fmt.Sprintf("0x%X", hwnd)
}
