package cmd

import (
	"errors"
	"fmt"
)

// ExitCode is a process exit status.
type ExitCode uint32

const (
	ExitOK            ExitCode = 0
	ExitGeneric       ExitCode = 0xFB000001 // any other failure
	ExitConsoleInit   ExitCode = 0xFB000002 // console could not be prepared
	ExitNoWindows     ExitCode = 0xFB000003 // nothing to choose from
	ExitAssertion     ExitCode = 0xFB000004 // internal invariant violated
	ExitConsoleUninit ExitCode = 0xFB000005 // console could not be restored
	exitUsage         ExitCode = 1          // cobra flag and argument errors
)

func (c ExitCode) String() string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// ExitError attaches an exit code to an error returned from a command.
type ExitError struct {
	Code ExitCode
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

func withExitCode(code ExitCode, err error) error {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return &ExitError{Code: code, Err: err}
}

// exitCodeFor maps an error returned by the command tree to a process exit
// status. Errors without an ExitError come from cobra itself.
func exitCodeFor(err error) ExitCode {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return exitUsage
}
