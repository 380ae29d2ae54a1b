package platform

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"syscall"
)

// CallError describes a failed operating system call: where in fsb it was
// made, what fsb was trying to do, which exported function failed, and the
// OS error it reported.
type CallError struct {
	Location  string // e.g. "win32.windowText"
	Action    string // e.g. "get the title of a window"
	Operation string // e.g. "User32.dll!GetWindowTextW"
	Err       error
}

// NewCallError wraps err. A nil err or a zero errno is described as an
// unknown error.
func NewCallError(location, action, operation string, err error) *CallError {
	return &CallError{Location: location, Action: action, Operation: operation, Err: err}
}

func (e *CallError) Error() string {
	msg := fmt.Sprintf("failed to %s (%s): %s", e.Action, e.Operation, Describe(e.Err))
	if e.Location != "" {
		return e.Location + ": " + msg
	}
	return msg
}

func (e *CallError) Unwrap() error { return e.Err }

// Code returns the OS error code, or 0 when the error carries none.
func (e *CallError) Code() uint32 {
	var errno syscall.Errno
	if errors.As(e.Err, &errno) {
		return uint32(errno)
	}
	return 0
}

// LogValue renders the error as a group of slog attributes.
func (e *CallError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("location", e.Location),
		slog.String("action", e.Action),
		slog.String("operation", e.Operation),
		slog.String("code", fmt.Sprintf("0x%X", e.Code())),
		slog.String("description", Describe(e.Err)),
	)
}

// Describe returns the OS description of err followed by its code.
// On Windows an errno is described by FormatMessage.
func Describe(err error) string {
	if err == nil {
		return "Unknown error."
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		if errno == 0 {
			return "Unknown error."
		}
		return fmt.Sprintf("%s (0x%X)", strings.TrimSpace(errno.Error()), uint32(errno))
	}
	return strings.TrimSpace(err.Error())
}

// IsErrno reports whether err is (or wraps) the given errno.
func IsErrno(err error, code syscall.Errno) bool {
	var errno syscall.Errno
	return errors.As(err, &errno) && errno == code
}

// LogCallError logs a non-fatal OS call failure at warn level.
func LogCallError(logger *slog.Logger, err error, args ...any) {
	if logger == nil {
		logger = slog.Default()
	}
	var callErr *CallError
	if errors.As(err, &callErr) {
		logger.Warn("os call failed", append([]any{slog.Any("call", callErr)}, args...)...)
		return
	}
	logger.Warn("os call failed", append([]any{"error", err}, args...)...)
}
