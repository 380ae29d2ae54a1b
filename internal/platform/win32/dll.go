//go:build windows

package win32

import "golang.org/x/sys/windows"

// Procs that golang.org/x/sys/windows does not wrap. Defined once here.
var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	// Window metadata
	procGetWindowTextLengthW = user32.NewProc("GetWindowTextLengthW")
	procGetWindowTextW       = user32.NewProc("GetWindowTextW")
	procIsWindowEnabled      = user32.NewProc("IsWindowEnabled")
	procGetWindowPlacement   = user32.NewProc("GetWindowPlacement")
	procGetWindowRect        = user32.NewProc("GetWindowRect")

	// Style and placement
	procGetWindowLongW   = user32.NewProc("GetWindowLongW")
	procSetWindowLongW   = user32.NewProc("SetWindowLongW")
	procSetWindowPos     = user32.NewProc("SetWindowPos")
	procGetSystemMetrics = user32.NewProc("GetSystemMetrics")

	// Console and thread state
	procSetLastError       = kernel32.NewProc("SetLastError")
	procSetConsoleTitleW   = kernel32.NewProc("SetConsoleTitleW")
	procGetConsoleOutputCP = kernel32.NewProc("GetConsoleOutputCP")
	procGetConsoleCP       = kernel32.NewProc("GetConsoleCP")
)

const (
	smCXScreen = 0
	smCYScreen = 1

	hwndTop         = 0
	swpFrameChanged = 0x0020
	swpShowWindow   = 0x0040

	cpUTF8 = 65001
)

// Operation names used in CallError.
const (
	opEnumWindows           = "User32.dll!EnumWindows"
	opGetWindowTextLength   = "User32.dll!GetWindowTextLengthW"
	opGetWindowText         = "User32.dll!GetWindowTextW"
	opGetClassName          = "User32.dll!GetClassNameW"
	opGetWindowThreadProcID = "User32.dll!GetWindowThreadProcessId"
	opGetWindowPlacement    = "User32.dll!GetWindowPlacement"
	opGetWindowRect         = "User32.dll!GetWindowRect"
	opGetWindowLong         = "User32.dll!GetWindowLongW"
	opSetWindowLong         = "User32.dll!SetWindowLongW"
	opSetWindowPos          = "User32.dll!SetWindowPos"
	opGetSystemMetrics      = "User32.dll!GetSystemMetrics"
	opOpenProcess           = "Kernel32.dll!OpenProcess"
	opQueryProcessImageName = "Kernel32.dll!QueryFullProcessImageNameW"
	opGetConsoleMode        = "Kernel32.dll!GetConsoleMode"
	opSetConsoleMode        = "Kernel32.dll!SetConsoleMode"
	opSetConsoleOutputCP    = "Kernel32.dll!SetConsoleOutputCP"
	opSetConsoleTitle       = "Kernel32.dll!SetConsoleTitleW"
)

// setLastError resets the thread's last-error value so that a zero return
// from an API whose zero result is also valid can be told apart from a
// failure.
func setLastError(code uint32) {
	procSetLastError.Call(uintptr(code))
}

// lastErrno converts the error returned by LazyProc.Call to a usable error,
// or nil when the thread's last-error value is zero.
func lastErrno(err error) error {
	if errno, ok := err.(windows.Errno); ok && errno == 0 {
		return nil
	}
	return err
}
