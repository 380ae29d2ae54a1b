//go:build windows

package win32

import (
	"fmt"
	"log/slog"

	"golang.org/x/sys/windows"

	"github.com/jhowell728/fsb/internal/platform"
)

// Win32WindowManager implements platform.WindowManager and
// platform.StyleWriter with GetWindowLongW, SetWindowLongW and SetWindowPos.
type Win32WindowManager struct {
	logger *slog.Logger
}

// NewWindowManager creates a new Windows window manager.
func NewWindowManager(logger *slog.Logger) *Win32WindowManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Win32WindowManager{logger: logger}
}

// Fullscreen makes the window borderless and sizes it to the primary display.
func (wm *Win32WindowManager) Fullscreen(id uintptr) error {
	hwnd := windows.HWND(id)
	if !windows.IsWindow(hwnd) {
		return fmt.Errorf("window %s no longer exists", formatHandle(uintptr(hwnd)))
	}
	screen, err := wm.ScreenBounds()
	if err != nil {
		return err
	}
	wm.logger.Debug("applying borderless fullscreen", "hwnd", formatHandle(uintptr(hwnd)), "screen", screen.String())
	return platform.MakeBorderless(wm, id, screen)
}

// ScreenBounds returns the size of the primary display.
func (wm *Win32WindowManager) ScreenBounds() (platform.Bounds, error) {
	w, err := systemMetric(smCXScreen)
	if err != nil {
		return platform.Bounds{}, err
	}
	h, err := systemMetric(smCYScreen)
	if err != nil {
		return platform.Bounds{}, err
	}
	return platform.Bounds{Width: w, Height: h}, nil
}

func (wm *Win32WindowManager) WindowStyle(id uintptr) (uint32, error) {
	return windowLong(windows.HWND(id), gwlStyle)
}

func (wm *Win32WindowManager) SetWindowStyle(id uintptr, style uint32) error {
	return setWindowLong(windows.HWND(id), gwlStyle, style)
}

func (wm *Win32WindowManager) SetWindowBounds(id uintptr, b platform.Bounds) error {
	r, _, err := procSetWindowPos.Call(
		id,
		hwndTop,
		uintptr(b.X), uintptr(b.Y),
		uintptr(b.Width), uintptr(b.Height),
		swpFrameChanged|swpShowWindow,
	)
	if r == 0 {
		return platform.NewCallError("win32.Win32WindowManager.SetWindowBounds", "set the position of a window", opSetWindowPos, err)
	}
	return nil
}

func systemMetric(index int) (int, error) {
	r, _, _ := procGetSystemMetrics.Call(uintptr(index))
	if int32(r) <= 0 {
		// GetSystemMetrics does not set the last error.
		return 0, platform.NewCallError("win32.systemMetric", "get the size of the primary display", opGetSystemMetrics, nil)
	}
	return int(int32(r)), nil
}
