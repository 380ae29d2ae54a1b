package cmd

import (
	"fmt"
	"log/slog"

	"github.com/jhowell728/fsb/internal/config"
	"github.com/jhowell728/fsb/internal/model"
	"github.com/jhowell728/fsb/internal/output"
	"github.com/jhowell728/fsb/internal/platform"
)

// listOptions builds enumeration filters from the config file and command
// flags. all overrides both config filters.
func listOptions(cfg config.Config, all, includeTools bool, pid int, window string) platform.ListOptions {
	opts := platform.ListOptions{
		HideHidden:         cfg.HideHiddenWindows,
		HideBlankTitle:     cfg.HideBlankTitleWindows,
		IncludeToolWindows: includeTools,
		PID:                pid,
		Window:             window,
	}
	if all {
		opts.HideHidden = false
		opts.HideBlankTitle = false
	}
	return opts
}

func listWindows(provider *platform.Provider, opts platform.ListOptions) ([]model.Window, error) {
	if provider.Reader == nil {
		return nil, fmt.Errorf("reader not available on this platform")
	}
	windows, err := provider.Reader.ListWindows(opts)
	if err != nil {
		return nil, err
	}
	if windows == nil {
		windows = []model.Window{}
	}
	return windows, nil
}

// applyFullscreen resolves target in a fresh snapshot and makes it
// borderless fullscreen. A window ID is looked up among all windows; PID and
// title are matched against the filtered list.
func applyFullscreen(provider *platform.Provider, opts platform.ListOptions, target platform.TargetOptions) (output.ApplyResult, error) {
	if target.IsZero() {
		return output.ApplyResult{}, fmt.Errorf("specify --window-id, --pid, or --window")
	}
	if provider.WindowManager == nil {
		return output.ApplyResult{}, fmt.Errorf("window management not available on this platform")
	}

	if target.WindowID != 0 {
		opts = platform.ListOptions{IncludeToolWindows: true}
	}
	windows, err := listWindows(provider, opts)
	if err != nil {
		return output.ApplyResult{}, fmt.Errorf("failed to list windows: %w", err)
	}
	w, err := target.Resolve(windows)
	if err != nil {
		return output.ApplyResult{}, err
	}

	if err := provider.WindowManager.Fullscreen(w.ID); err != nil {
		return output.ApplyResult{}, fmt.Errorf("failed to make %q fullscreen: %w", w.Title, err)
	}

	result := output.ApplyResult{OK: true, Action: "fullscreen", Window: w}
	if screen, err := provider.WindowManager.ScreenBounds(); err == nil {
		result.Bounds = screen.Array()
	} else {
		slog.Warn("failed to read screen bounds", "error", err)
	}
	return result, nil
}
