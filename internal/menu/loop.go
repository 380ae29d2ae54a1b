package menu

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jhowell728/fsb/internal/model"
)

// Options wires the menu loop to the enumerator and the fullscreen applier.
type Options struct {
	// Refresh re-enumerates windows for the R key.
	Refresh func() ([]model.Window, error)
	// Apply makes the chosen window fullscreen. Its error is logged only.
	Apply func(model.Window) error
	// Size reports the visible console size in cells.
	Size func() (width, height int)
	// Logger receives apply and refresh failures. Defaults to slog.Default().
	Logger *slog.Logger
}

// Outcome describes how the loop ended.
type Outcome struct {
	Applied  bool
	Window   model.Window // the window handed to Apply, when Applied
	ApplyErr error
}

// Run drives the menu: redraw, block on one read from in, dispatch the
// decoded keys, repeat. It returns when the user applies or quits, or when
// in reaches EOF. Only read errors are returned.
func Run(in io.Reader, out io.Writer, m *Menu, opts Options) (Outcome, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	size := opts.Size
	if size == nil {
		size = func() (int, int) { return 80, 24 }
	}
	renderer := NewRenderer(out)

	buf := make([]byte, 32)
	for {
		width, height := size()
		if _, err := io.WriteString(out, renderer.Frame(m, width, height)); err != nil {
			return Outcome{}, fmt.Errorf("failed to draw menu: %w", err)
		}

		n, err := in.Read(buf)
		if n == 0 && err != nil {
			if errors.Is(err, io.EOF) {
				return Outcome{}, nil
			}
			return Outcome{}, fmt.Errorf("failed to read key: %w", err)
		}

		for _, key := range DecodeKeys(buf[:n]) {
			switch m.Handle(key) {
			case ActionQuit:
				return Outcome{}, nil

			case ActionRefresh:
				if opts.Refresh == nil {
					continue
				}
				windows, err := opts.Refresh()
				if err != nil {
					logger.Warn("refresh failed, keeping previous list", "error", err)
					m.SetStatus("Refresh failed: " + err.Error())
					continue
				}
				m.Reset(windows)
				logger.Debug("window list refreshed", "count", len(windows))

			case ActionApply:
				w, _ := m.Current()
				outcome := Outcome{Applied: true, Window: w}
				if opts.Apply != nil {
					if err := opts.Apply(w); err != nil {
						logger.Error("fullscreen failed", "title", w.Title, "pid", w.PID, "error", err)
						outcome.ApplyErr = err
					}
				}
				return outcome, nil
			}
		}
	}
}
