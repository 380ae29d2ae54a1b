package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/jhowell728/fsb/internal/menu"
	"github.com/jhowell728/fsb/internal/model"
)

// scriptedLoop stands in for the raw-terminal menu: it feeds keys to the
// real menu state machine and calls the same callbacks the terminal loop
// would.
func scriptedLoop(t *testing.T, keys ...menu.Key) {
	t.Helper()
	orig := runMenuLoop
	runMenuLoop = func(m *menu.Menu, opts menu.Options) (menu.Outcome, error) {
		for _, k := range keys {
			switch m.Handle(k) {
			case menu.ActionQuit:
				return menu.Outcome{}, nil
			case menu.ActionRefresh:
				windows, err := opts.Refresh()
				if err != nil {
					return menu.Outcome{}, err
				}
				m.Reset(windows)
			case menu.ActionApply:
				w, _ := m.Current()
				return menu.Outcome{Applied: true, Window: w, ApplyErr: opts.Apply(w)}, nil
			}
		}
		return menu.Outcome{}, nil
	}
	t.Cleanup(func() { runMenuLoop = orig })
}

func TestRunMenu_ApplySelected(t *testing.T) {
	f := useFakes(t)
	scriptedLoop(t, menu.KeyDown, menu.KeyEnter)

	if _, err := runCommand(t, "--config", useConfig(t, "")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.wm.applied) != 1 || f.wm.applied[0] != 0x102 {
		t.Errorf("applied: got %v, want [0x102]", f.wm.applied)
	}
	if f.console.setups != 1 || f.console.restores != 1 {
		t.Errorf("console setup/restore: %d/%d", f.console.setups, f.console.restores)
	}
}

func TestRunMenu_QuitDoesNotApply(t *testing.T) {
	f := useFakes(t)
	scriptedLoop(t, menu.KeyDown, menu.KeyQuit)

	if _, err := runCommand(t, "--config", useConfig(t, "")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.wm.applied) != 0 {
		t.Errorf("quit should not apply, got %v", f.wm.applied)
	}
}

func TestRunMenu_ApplyFailureExitsZero(t *testing.T) {
	f := useFakes(t)
	f.wm.err = errors.New("access denied")
	scriptedLoop(t, menu.KeyEnter)

	if _, err := runCommand(t, "--config", useConfig(t, "")); err != nil {
		t.Errorf("apply failures are logged only, got %v", err)
	}
}

func TestRunMenu_RefreshUsesConfigFilters(t *testing.T) {
	f := useFakes(t)
	scriptedLoop(t, menu.KeyRefresh, menu.KeyQuit)

	if _, err := runCommand(t, "--config", useConfig(t, "hide_blank_title_windows=false\n")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.reader.calls != 2 {
		t.Errorf("expected initial enumeration plus refresh, got %d calls", f.reader.calls)
	}
	if !f.reader.lastOpts.HideHidden || f.reader.lastOpts.HideBlankTitle {
		t.Errorf("refresh options: %+v", f.reader.lastOpts)
	}
}

func TestRunMenu_ExitCodes(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *fakes)
		want  ExitCode
	}{
		{
			name:  "no windows",
			setup: func(f *fakes) { f.reader.windows = []model.Window{{ID: 1, Title: ""}} },
			want:  ExitNoWindows,
		},
		{
			name:  "enumeration fails",
			setup: func(f *fakes) { f.reader.err = errors.New("EnumWindows failed") },
			want:  ExitGeneric,
		},
		{
			name:  "console setup fails",
			setup: func(f *fakes) { f.console.setupErr = errors.New("no console") },
			want:  ExitConsoleInit,
		},
		{
			name:  "console restore fails",
			setup: func(f *fakes) { f.console.restoreErr = errors.New("handle closed") },
			want:  ExitConsoleUninit,
		},
		{
			name:  "gui mode set falls back to console",
			setup: func(f *fakes) { f.settings.gui = true },
			want:  ExitOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := useFakes(t)
			tt.setup(f)
			scriptedLoop(t, menu.KeyQuit)

			_, err := runCommand(t, "--config", useConfig(t, ""))
			if code := exitCodeFor(err); code != tt.want {
				t.Errorf("exit code: got %v, want %v (err=%v)", code, tt.want, err)
			}
		})
	}
}

func TestRunMenu_GUIModeWarnsAtDefaultLevel(t *testing.T) {
	f := useFakes(t)
	f.settings.gui = true
	scriptedLoop(t, menu.KeyQuit)

	defer func(w io.Writer, l *slog.Logger) { logOutput = w; slog.SetDefault(l) }(logOutput, slog.Default())
	var buf bytes.Buffer
	logOutput = &buf

	if _, err := runCommand(t, "--config", useConfig(t, "")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "level=WARN msg=\"gui mode is not available") {
		t.Errorf("expected gui fallback warning without --verbose, got %q", buf.String())
	}
}

func TestRunMenu_NoConsole(t *testing.T) {
	useFakes(t)
	orig := runMenuLoop
	runMenuLoop = func(*menu.Menu, menu.Options) (menu.Outcome, error) {
		return menu.Outcome{}, fmt.Errorf("%w: stdin is a pipe", menu.ErrNoConsole)
	}
	t.Cleanup(func() { runMenuLoop = orig })

	_, err := runCommand(t, "--config", useConfig(t, ""))
	if code := exitCodeFor(err); code != ExitConsoleInit {
		t.Errorf("exit code: got %v, want %v", code, ExitConsoleInit)
	}
}
