//go:build windows

package win32

import (
	"log/slog"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/jhowell728/fsb/internal/platform"
)

// ConsoleTitle is shown in the console window's caption while fsb runs.
const ConsoleTitle = "Full Screen Borderless"

// Win32Console implements platform.Console for the attached console.
type Win32Console struct {
	logger *slog.Logger
}

// NewConsole creates a console controller.
func NewConsole(logger *slog.Logger) *Win32Console {
	if logger == nil {
		logger = slog.Default()
	}
	return &Win32Console{logger: logger}
}

// Setup enables ANSI escape processing on stdout, switches both code pages
// to UTF-8 and sets the title. The cursor is hidden by the menu's own escape
// sequences once VT processing is on. The returned function puts back the
// output mode and code pages.
func (c *Win32Console) Setup() (func() error, error) {
	out, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	if err != nil {
		return nil, platform.NewCallError("win32.Win32Console.Setup", "get the console output handle", "Kernel32.dll!GetStdHandle", err)
	}

	var mode uint32
	if err := windows.GetConsoleMode(out, &mode); err != nil {
		return nil, platform.NewCallError("win32.Win32Console.Setup", "get the console output mode", opGetConsoleMode, err)
	}
	if err := windows.SetConsoleMode(out, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING|windows.ENABLE_PROCESSED_OUTPUT); err != nil {
		return nil, platform.NewCallError("win32.Win32Console.Setup", "enable virtual terminal processing", opSetConsoleMode, err)
	}

	outCP, _, _ := procGetConsoleOutputCP.Call()
	inCP, _, _ := procGetConsoleCP.Call()
	if err := windows.SetConsoleOutputCP(cpUTF8); err != nil {
		_ = windows.SetConsoleMode(out, mode)
		return nil, platform.NewCallError("win32.Win32Console.Setup", "set the console output code page", opSetConsoleOutputCP, err)
	}
	if err := windows.SetConsoleCP(cpUTF8); err != nil {
		platform.LogCallError(c.logger, platform.NewCallError("win32.Win32Console.Setup", "set the console input code page", "Kernel32.dll!SetConsoleCP", err))
	}

	if title, err := windows.UTF16PtrFromString(ConsoleTitle); err == nil {
		if r, _, err := procSetConsoleTitleW.Call(uintptr(unsafe.Pointer(title))); r == 0 {
			platform.LogCallError(c.logger, platform.NewCallError("win32.Win32Console.Setup", "set the console title", opSetConsoleTitle, err))
		}
	}

	restore := func() error {
		if inCP != 0 {
			_ = windows.SetConsoleCP(uint32(inCP))
		}
		if outCP != 0 {
			if err := windows.SetConsoleOutputCP(uint32(outCP)); err != nil {
				return platform.NewCallError("win32.Win32Console.restore", "restore the console output code page", opSetConsoleOutputCP, err)
			}
		}
		if err := windows.SetConsoleMode(out, mode); err != nil {
			return platform.NewCallError("win32.Win32Console.restore", "restore the console output mode", opSetConsoleMode, err)
		}
		return nil
	}
	return restore, nil
}
