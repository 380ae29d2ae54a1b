package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jhowell728/fsb/internal/model"
	"github.com/jhowell728/fsb/internal/output"
	"github.com/jhowell728/fsb/internal/platform"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type fakeReader struct {
	windows  []model.Window
	err      error
	calls    int
	lastOpts platform.ListOptions
}

func (r *fakeReader) ListWindows(opts platform.ListOptions) ([]model.Window, error) {
	r.calls++
	r.lastOpts = opts
	if r.err != nil {
		return nil, r.err
	}
	return model.FilterWindows(r.windows, opts.Filter()), nil
}

type fakeWindowManager struct {
	applied []uintptr
	err     error
	screen  platform.Bounds
}

func (wm *fakeWindowManager) Fullscreen(id uintptr) error {
	if wm.err != nil {
		return wm.err
	}
	wm.applied = append(wm.applied, id)
	return nil
}

func (wm *fakeWindowManager) ScreenBounds() (platform.Bounds, error) {
	return wm.screen, nil
}

type fakeConsole struct {
	setupErr   error
	restoreErr error
	setups     int
	restores   int
}

func (c *fakeConsole) Setup() (func() error, error) {
	if c.setupErr != nil {
		return nil, c.setupErr
	}
	c.setups++
	return func() error {
		c.restores++
		return c.restoreErr
	}, nil
}

type fakeSettings struct {
	gui bool
	err error
	set []bool
}

func (s *fakeSettings) GUIMode() (bool, error) { return s.gui, s.err }

func (s *fakeSettings) SetGUIMode(enabled bool) error {
	if s.err != nil {
		return s.err
	}
	s.set = append(s.set, enabled)
	s.gui = enabled
	return nil
}

type fakes struct {
	reader   *fakeReader
	wm       *fakeWindowManager
	console  *fakeConsole
	settings *fakeSettings
}

func (f *fakes) provider() *platform.Provider {
	return &platform.Provider{
		Reader:        f.reader,
		WindowManager: f.wm,
		Console:       f.console,
		Settings:      f.settings,
	}
}

// desktop is a typical z-ordered snapshot: two app windows, a hidden
// window, a blank-titled window and a tool window.
func desktop() []model.Window {
	return []model.Window{
		{ID: 0x101, PID: 10, Title: "Untitled - Notepad", Class: "Notepad", Visible: true, Enabled: true},
		{ID: 0x102, PID: 20, Title: "Game", Class: "UnityWndClass", Visible: true, Enabled: true},
		{ID: 0x103, PID: 20, Title: "Game Launcher", Visible: false},
		{ID: 0x104, PID: 30, Title: "", Visible: true},
		{ID: 0x105, PID: 40, Title: "Palette", Visible: true, ExStyle: model.WS_EX_TOOLWINDOW},
	}
}

// useFakes installs a provider backed by fakes for the duration of the test.
func useFakes(t *testing.T) *fakes {
	t.Helper()
	f := &fakes{
		reader:   &fakeReader{windows: desktop()},
		wm:       &fakeWindowManager{screen: platform.Bounds{Width: 1920, Height: 1080}},
		console:  &fakeConsole{},
		settings: &fakeSettings{},
	}
	orig := platform.NewProviderFunc
	platform.NewProviderFunc = func() (*platform.Provider, error) { return f.provider(), nil }
	t.Cleanup(func() { platform.NewProviderFunc = orig })
	return f
}

// useConfig points --config at a temp file with contents, or at a missing
// file when contents is empty.
func useConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".fsb")
	if contents != "" {
		if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return path
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// runCommand executes the command tree with args and returns what was
// written to stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	defer func(f output.Format, p bool) { output.OutputFormat, output.PrettyOutput = f, p }(output.OutputFormat, output.PrettyOutput)

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	rootCmd.SetOut(w)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	w.Close()
	os.Stdout = old
	rootCmd.SetOut(nil)
	rootCmd.SetErr(nil)

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String(), err
}
