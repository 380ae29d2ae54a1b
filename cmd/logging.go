package cmd

import (
	"io"
	"log/slog"
	"os"
)

// logOutput receives the process log. Tests replace it.
var logOutput io.Writer = os.Stderr

// setupLogging installs the process-wide logger: text to w, warnings and
// above unless verbose.
func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
