package cmd

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCodeFor(t *testing.T) {
	base := errors.New("boom")
	tests := []struct {
		name string
		err  error
		want ExitCode
	}{
		{"nil", nil, ExitOK},
		{"plain error is a usage error", base, exitUsage},
		{"exit error", &ExitError{Code: ExitNoWindows, Err: base}, ExitNoWindows},
		{"wrapped exit error", fmt.Errorf("outer: %w", &ExitError{Code: ExitConsoleInit, Err: base}), ExitConsoleInit},
	}
	for _, tt := range tests {
		if got := exitCodeFor(tt.err); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestWithExitCode_KeepsInnerCode(t *testing.T) {
	inner := &ExitError{Code: ExitConsoleUninit, Err: errors.New("restore failed")}
	if got := exitCodeFor(withExitCode(ExitGeneric, inner)); got != ExitConsoleUninit {
		t.Errorf("got %v", got)
	}
	if withExitCode(ExitGeneric, nil) != nil {
		t.Error("nil error should stay nil")
	}
}

func TestExitCode_Values(t *testing.T) {
	tests := []struct {
		code ExitCode
		want string
	}{
		{ExitGeneric, "0xFB000001"},
		{ExitConsoleInit, "0xFB000002"},
		{ExitNoWindows, "0xFB000003"},
		{ExitAssertion, "0xFB000004"},
		{ExitConsoleUninit, "0xFB000005"},
	}
	for _, tt := range tests {
		if tt.code.String() != tt.want {
			t.Errorf("got %s, want %s", tt.code, tt.want)
		}
	}
}

func TestExitError_Unwrap(t *testing.T) {
	base := errors.New("boom")
	err := &ExitError{Code: ExitGeneric, Err: base}
	if !errors.Is(err, base) || err.Error() != "boom" {
		t.Errorf("got %v", err)
	}
}
