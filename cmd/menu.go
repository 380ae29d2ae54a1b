package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/jhowell728/fsb/internal/menu"
	"github.com/jhowell728/fsb/internal/model"
	"github.com/jhowell728/fsb/internal/platform"
	"github.com/spf13/cobra"
)

// runMenuLoop drives the interactive menu. Tests replace it.
var runMenuLoop = menu.RunTerminal

func runMenu(cmd *cobra.Command, args []string) (err error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return withExitCode(ExitGeneric, err)
	}
	if provider.Reader == nil || provider.WindowManager == nil || provider.Console == nil {
		return withExitCode(ExitGeneric, fmt.Errorf("interactive mode not available on this platform"))
	}

	loaded, err := loadConfig()
	if err != nil {
		return withExitCode(ExitGeneric, err)
	}
	slog.Debug("config loaded", "path", loaded.Path, "found", loaded.Found,
		"hide_hidden_windows", loaded.Config.HideHiddenWindows,
		"hide_blank_title_windows", loaded.Config.HideBlankTitleWindows)

	if provider.Settings != nil {
		gui, err := provider.Settings.GUIMode()
		switch {
		case err != nil:
			slog.Warn("failed to read gui mode", "error", err)
		case gui:
			slog.Warn("gui mode is not available, using the console menu")
		}
	}

	restore, err := provider.Console.Setup()
	if err != nil {
		return withExitCode(ExitConsoleInit, err)
	}
	defer func() {
		if rerr := restore(); rerr != nil && err == nil {
			err = withExitCode(ExitConsoleUninit, rerr)
		}
	}()

	opts := listOptions(loaded.Config, false, false, 0, "")
	windows, err := provider.Reader.ListWindows(opts)
	if err != nil {
		return withExitCode(ExitGeneric, fmt.Errorf("failed to list windows: %w", err))
	}
	if len(windows) == 0 {
		return &ExitError{Code: ExitNoWindows, Err: fmt.Errorf("no windows to choose from (filters from %s)", loaded.Path)}
	}

	outcome, err := runMenuLoop(menu.New(windows), menu.Options{
		Refresh: func() ([]model.Window, error) {
			return provider.Reader.ListWindows(opts)
		},
		Apply: func(w model.Window) error {
			return provider.WindowManager.Fullscreen(w.ID)
		},
	})
	if err != nil {
		if errors.Is(err, menu.ErrNoConsole) {
			return withExitCode(ExitConsoleInit, err)
		}
		return withExitCode(ExitGeneric, err)
	}
	if outcome.Applied && outcome.ApplyErr == nil {
		slog.Debug("window made fullscreen", "title", outcome.Window.Title, "pid", outcome.Window.PID)
	}
	return nil
}
