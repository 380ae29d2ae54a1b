//go:build windows

package win32

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/jhowell728/fsb/internal/model"
	"github.com/jhowell728/fsb/internal/platform"
)

type point struct {
	X, Y int32
}

// windowPlacement mirrors WINDOWPLACEMENT.
type windowPlacement struct {
	Length         uint32
	Flags          uint32
	ShowCmd        uint32
	MinPosition    point
	MaxPosition    point
	NormalPosition windows.Rect
}

func windowText(hwnd windows.HWND) (string, error) {
	setLastError(0)
	n, _, err := procGetWindowTextLengthW.Call(uintptr(hwnd))
	if n == 0 {
		if err := lastErrno(err); err != nil {
			return "", platform.NewCallError("win32.windowText", "get the title length of a window", opGetWindowTextLength, err)
		}
		return "", nil
	}

	buf := make([]uint16, n+1)
	setLastError(0)
	copied, _, err := procGetWindowTextW.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if copied == 0 {
		if err := lastErrno(err); err != nil {
			return "", platform.NewCallError("win32.windowText", "get the title of a window", opGetWindowText, err)
		}
		return "", nil
	}
	return windows.UTF16ToString(buf[:copied]), nil
}

func className(hwnd windows.HWND) (string, error) {
	var buf [256]uint16
	n, err := windows.GetClassName(hwnd, &buf[0], int32(len(buf)))
	if err != nil {
		return "", platform.NewCallError("win32.className", "get the class name of a window", opGetClassName, err)
	}
	return windows.UTF16ToString(buf[:n]), nil
}

func processID(hwnd windows.HWND) (uint32, error) {
	var pid uint32
	if _, err := windows.GetWindowThreadProcessId(hwnd, &pid); err != nil {
		return 0, platform.NewCallError("win32.processID", "get the process id of a window", opGetWindowThreadProcID, err)
	}
	return pid, nil
}

// processFileName returns the full image path of the process.
func processFileName(pid uint32) (string, error) {
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, pid)
	if err != nil {
		return "", platform.NewCallError("win32.processFileName", "open a process for querying", opOpenProcess, err)
	}
	defer windows.CloseHandle(h)

	buf := make([]uint16, windows.MAX_LONG_PATH)
	size := uint32(len(buf))
	if err := windows.QueryFullProcessImageName(h, 0, &buf[0], &size); err != nil {
		return "", platform.NewCallError("win32.processFileName", "get the file name of a process", opQueryProcessImageName, err)
	}
	return windows.UTF16ToString(buf[:size]), nil
}

func windowEnabled(hwnd windows.HWND) bool {
	r, _, _ := procIsWindowEnabled.Call(uintptr(hwnd))
	return r != 0
}

func windowState(hwnd windows.HWND) (model.WindowState, error) {
	wp := windowPlacement{}
	wp.Length = uint32(unsafe.Sizeof(wp))
	r, _, err := procGetWindowPlacement.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&wp)))
	if r == 0 {
		return model.StateNormal, platform.NewCallError("win32.windowState", "get the placement of a window", opGetWindowPlacement, err)
	}
	return model.StateFromShowCmd(wp.ShowCmd), nil
}

func windowRect(hwnd windows.HWND) (platform.Bounds, error) {
	var rc windows.Rect
	r, _, err := procGetWindowRect.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&rc)))
	if r == 0 {
		return platform.Bounds{}, platform.NewCallError("win32.windowRect", "get the rectangle of a window", opGetWindowRect, err)
	}
	return platform.Bounds{
		X:      int(rc.Left),
		Y:      int(rc.Top),
		Width:  int(rc.Right - rc.Left),
		Height: int(rc.Bottom - rc.Top),
	}, nil
}

// windowLong reads a 32-bit window attribute. A zero value is only an
// error when the thread's last-error value says so.
func windowLong(hwnd windows.HWND, index int32) (uint32, error) {
	setLastError(0)
	r, _, err := procGetWindowLongW.Call(uintptr(hwnd), uintptr(index))
	if r == 0 {
		if err := lastErrno(err); err != nil {
			return 0, platform.NewCallError("win32.windowLong", "get the style of a window", opGetWindowLong, err)
		}
	}
	return uint32(r), nil
}

func setWindowLong(hwnd windows.HWND, index int32, value uint32) error {
	setLastError(0)
	r, _, err := procSetWindowLongW.Call(uintptr(hwnd), uintptr(index), uintptr(value))
	if r == 0 {
		if err := lastErrno(err); err != nil {
			return platform.NewCallError("win32.setWindowLong", "set the style of a window", opSetWindowLong, err)
		}
	}
	return nil
}

// user32Source reads window metadata from the live desktop.
type user32Source struct{}

func (user32Source) exists(hwnd uintptr) bool  { return windows.IsWindow(windows.HWND(hwnd)) }
func (user32Source) visible(hwnd uintptr) bool { return windows.IsWindowVisible(windows.HWND(hwnd)) }
func (user32Source) enabled(hwnd uintptr) bool { return windowEnabled(windows.HWND(hwnd)) }

func (user32Source) processID(hwnd uintptr) (uint32, error) { return processID(windows.HWND(hwnd)) }
func (user32Source) text(hwnd uintptr) (string, error)      { return windowText(windows.HWND(hwnd)) }
func (user32Source) className(hwnd uintptr) (string, error) { return className(windows.HWND(hwnd)) }

func (user32Source) state(hwnd uintptr) (model.WindowState, error) {
	return windowState(windows.HWND(hwnd))
}

func (user32Source) rect(hwnd uintptr) (platform.Bounds, error) {
	return windowRect(windows.HWND(hwnd))
}

func (user32Source) long(hwnd uintptr, index int32) (uint32, error) {
	return windowLong(windows.HWND(hwnd), index)
}

func (user32Source) processFileName(pid uint32) (string, error) { return processFileName(pid) }
