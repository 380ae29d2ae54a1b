package menu

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// ErrNoConsole is returned when stdin or stdout is not an interactive console.
var ErrNoConsole = errors.New("the menu requires an interactive console")

// RunTerminal runs the menu on the process console in raw mode and restores
// the terminal before returning.
func RunTerminal(m *Menu, opts Options) (Outcome, error) {
	inFd := int(os.Stdin.Fd())
	outFd := int(os.Stdout.Fd())
	if !term.IsTerminal(inFd) || !term.IsTerminal(outFd) {
		return Outcome{}, fmt.Errorf("%w (stdin/stdout must be terminals); use 'fsb list' and 'fsb apply' instead", ErrNoConsole)
	}

	oldState, err := term.MakeRaw(inFd)
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: failed to enter raw mode: %v", ErrNoConsole, err)
	}
	defer restoreTerminal(inFd, oldState)

	if opts.Size == nil {
		opts.Size = func() (int, int) {
			w, h, err := term.GetSize(outFd)
			if err != nil {
				return 80, 24
			}
			return w, h
		}
	}

	return Run(os.Stdin, os.Stdout, m, opts)
}

func restoreTerminal(fd int, state *term.State) {
	_ = term.Restore(fd, state)
	// Clear screen and show cursor on exit
	fmt.Print(escReset)
	fmt.Print(escClear)
	fmt.Print(escHome)
	fmt.Print(escShowCursor)
}
