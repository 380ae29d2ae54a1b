package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jhowell728/fsb/internal/config"
	"github.com/jhowell728/fsb/internal/output"
	"github.com/jhowell728/fsb/internal/platform"
	"github.com/jhowell728/fsb/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fsb",
	Short: "Make any window borderless fullscreen",
	Long: `fsb lists the open top-level windows, lets you pick one with the arrow
keys, then strips its border and caption and stretches it over the primary
display.

Keys: Up/Down move, Enter applies, R reloads the list, Q or Esc quits.

Which windows are offered is controlled by <user profile>\.fsb:
  hide_hidden_windows=true
  hide_blank_title_windows=true`,
	Args: cobra.NoArgs,
}

// Execute runs the command tree and exits with the status of the failure.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			var assertErr *platform.AssertionError
			if err, ok := r.(error); ok && errors.As(err, &assertErr) {
				fmt.Fprintln(os.Stderr, "Error:", assertErr)
				os.Exit(int(ExitAssertion))
			}
			panic(r)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(int(exitCodeFor(err)))
	}
}

func init() {
	// Assigned here: runMenu reads rootCmd's flags, which would make the literal self-referential.
	rootCmd.RunE = runMenu
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().String("config", "", `Config file path (default <user profile>\.fsb)`)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug detail to stderr")
	rootCmd.PersistentFlags().Bool("set-use-gui", false, "Persist the gui_mode setting in the registry (use --set-use-gui=false to clear)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
		setupLogging(logOutput, verbose)

		format, _ := rootCmd.PersistentFlags().GetString("format")
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		if pretty, err := rootCmd.PersistentFlags().GetBool("pretty"); err == nil && pretty {
			output.PrettyOutput = true
		}

		// Flags parsed; from here on failures are not usage errors.
		cmd.SilenceUsage = true

		if flag := rootCmd.PersistentFlags().Lookup("set-use-gui"); flag != nil && flag.Changed {
			enabled, _ := rootCmd.PersistentFlags().GetBool("set-use-gui")
			if err := persistGUIMode(enabled); err != nil {
				return withExitCode(ExitGeneric, err)
			}
		}
		return nil
	}
}

func persistGUIMode(enabled bool) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	if provider.Settings == nil {
		return fmt.Errorf("settings not available on this platform")
	}
	if err := provider.Settings.SetGUIMode(enabled); err != nil {
		return err
	}
	slog.Debug("gui mode saved", "enabled", enabled)
	return nil
}

// loadConfig reads the file named by --config, or the default location.
func loadConfig() (*config.LoadResult, error) {
	path, _ := rootCmd.PersistentFlags().GetString("config")
	if path == "" {
		return config.Load()
	}
	return config.LoadFromPath(path), nil
}
