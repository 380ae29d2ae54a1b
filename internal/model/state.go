package model

import (
	"fmt"
	"strings"
)

// WindowState is the show state of a window as reported by its placement.
type WindowState int

const (
	StateNormal WindowState = iota
	StateMaximized
	StateMinimized
)

// Show commands returned in WINDOWPLACEMENT.showCmd.
const (
	SW_SHOWMINIMIZED   = 2
	SW_SHOWMAXIMIZED   = 3
	SW_MINIMIZE        = 6
	SW_SHOWMINNOACTIVE = 7
)

// StateFromShowCmd maps a placement show command to a WindowState.
// Anything that is not a maximized or minimized command is Normal.
func StateFromShowCmd(showCmd uint32) WindowState {
	switch showCmd {
	case SW_SHOWMAXIMIZED:
		return StateMaximized
	case SW_SHOWMINIMIZED, SW_MINIMIZE, SW_SHOWMINNOACTIVE:
		return StateMinimized
	default:
		return StateNormal
	}
}

func (s WindowState) String() string {
	switch s {
	case StateMaximized:
		return "maximized"
	case StateMinimized:
		return "minimized"
	default:
		return "normal"
	}
}

// ParseWindowState is the inverse of String.
func ParseWindowState(s string) (WindowState, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal", "":
		return StateNormal, nil
	case "maximized":
		return StateMaximized, nil
	case "minimized":
		return StateMinimized, nil
	default:
		return StateNormal, fmt.Errorf("unknown window state: %q (expected normal, maximized, or minimized)", s)
	}
}

// MarshalText and UnmarshalText write the state by name in list output and
// read it back from flags.
func (s WindowState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *WindowState) UnmarshalText(b []byte) error {
	v, err := ParseWindowState(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
