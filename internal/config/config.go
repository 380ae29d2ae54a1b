// Package config loads the per-user fsb settings file.
//
// The file lives at <user profile>\.fsb and holds key=value lines:
//
//	# show windows that are not visible
//	hide_hidden_windows=false
//	hide_blank_title_windows=true
//
// Blank lines, lines starting with '#' and lines without '=' are ignored, as
// are unknown keys. A value of "true" (any case) enables a flag; any other
// value disables it.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the config file name inside the user profile directory.
const FileName = ".fsb"

const (
	KeyHideHiddenWindows     = "hide_hidden_windows"
	KeyHideBlankTitleWindows = "hide_blank_title_windows"
)

// Config controls which windows are offered in the menu.
type Config struct {
	HideHiddenWindows     bool `yaml:"hide_hidden_windows"      json:"hide_hidden_windows"`
	HideBlankTitleWindows bool `yaml:"hide_blank_title_windows" json:"hide_blank_title_windows"`
}

// Default returns the conservative configuration: both filters on.
func Default() Config {
	return Config{
		HideHiddenWindows:     true,
		HideBlankTitleWindows: true,
	}
}

// LoadResult is a parsed config plus where each value came from.
type LoadResult struct {
	Config Config
	Path   string
	Found  bool           // false when the file was missing or unreadable
	Lines  map[string]int // key -> 1-based line that last set it
}

// DefaultConfigPath returns <user profile>\.fsb.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user profile directory: %w", err)
	}
	return filepath.Join(homeDir, FileName), nil
}

// Load reads the config from the standard location.
func Load() (*LoadResult, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path), nil
}

// LoadFromPath reads the config at path. A missing or unreadable file yields
// the default configuration; it is never an error.
func LoadFromPath(path string) *LoadResult {
	res := &LoadResult{Config: Default(), Path: path, Lines: map[string]int{}}

	f, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("config file unreadable, using defaults", "path", path, "error", err)
		} else {
			slog.Debug("no config file, using defaults", "path", path)
		}
		return res
	}
	defer f.Close()

	cfg, lines, err := parse(f)
	if err != nil {
		slog.Warn("config file unreadable, using defaults", "path", path, "error", err)
		return res
	}

	res.Config = cfg
	res.Lines = lines
	res.Found = true
	return res
}

// Parse reads key=value lines from r on top of the defaults.
func Parse(r io.Reader) (Config, error) {
	cfg, _, err := parse(r)
	return cfg, err
}

func parse(r io.Reader) (Config, map[string]int, error) {
	cfg := Default()
	lines := map[string]int{}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		enabled := parseBool(value)

		switch key {
		case KeyHideHiddenWindows:
			cfg.HideHiddenWindows = enabled
		case KeyHideBlankTitleWindows:
			cfg.HideBlankTitleWindows = enabled
		default:
			slog.Debug("ignoring unknown config key", "key", key, "line", lineNo)
			continue
		}
		lines[key] = lineNo
	}
	if err := scanner.Err(); err != nil {
		return Default(), nil, fmt.Errorf("failed to read config: %w", err)
	}
	return cfg, lines, nil
}

func parseBool(value string) bool {
	return strings.EqualFold(strings.TrimSpace(value), "true")
}
