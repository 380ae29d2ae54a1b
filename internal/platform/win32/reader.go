//go:build windows

package win32

import (
	"log/slog"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/jhowell728/fsb/internal/model"
	"github.com/jhowell728/fsb/internal/platform"
)

// Win32Reader implements the platform.Reader interface with EnumWindows.
type Win32Reader struct {
	logger *slog.Logger
}

// NewReader creates a reader that logs metadata failures to logger.
func NewReader(logger *slog.Logger) *Win32Reader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Win32Reader{logger: logger}
}

// The runtime has a fixed number of callback slots, so the callback is
// created once and shared by every enumeration. The collector reaches it
// through EnumWindows' lparam.
var enumWindowsProc = windows.NewCallback(func(hwnd windows.HWND, lparam uintptr) uintptr {
	(*collector)(unsafe.Pointer(lparam)).add(uintptr(hwnd))
	return 1 // continue enumeration
})

// ListWindows returns every top-level window in z-order, filtered by opts.
func (r *Win32Reader) ListWindows(opts platform.ListOptions) ([]model.Window, error) {
	c := &collector{src: user32Source{}, logger: r.logger}
	if err := windows.EnumWindows(enumWindowsProc, unsafe.Pointer(c)); err != nil {
		return nil, platform.NewCallError("win32.Win32Reader.ListWindows", "enumerate top-level windows", opEnumWindows, err)
	}
	r.logger.Debug("enumerated windows", "total", len(c.windows))
	return model.FilterWindows(c.windows, opts.Filter()), nil
}
