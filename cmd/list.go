package cmd

import (
	"time"

	"github.com/jhowell728/fsb/internal/model"
	"github.com/jhowell728/fsb/internal/output"
	"github.com/jhowell728/fsb/internal/platform"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List top-level windows",
	Long: `List the windows the menu would offer, with PID, handle, title, class,
state, bounds and style bits. Filters from the config file apply unless --all
is given; --state keeps only normal, maximized or minimized windows.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("all", false, "Include hidden and blank-titled windows")
	listCmd.Flags().Bool("include-tools", false, "Include tool windows (WS_EX_TOOLWINDOW)")
	listCmd.Flags().Int("pid", 0, "Filter windows by PID")
	listCmd.Flags().String("window", "", "Filter windows by title substring")
	listCmd.Flags().Var(&stateFlag{}, "state", "Filter windows by state: normal, maximized, minimized")
}

// stateFlag is an optional --state value; empty means any state.
type stateFlag struct {
	set   bool
	state model.WindowState
}

func (f *stateFlag) String() string {
	if !f.set {
		return ""
	}
	return f.state.String()
}

func (f *stateFlag) Set(v string) error {
	if v == "" {
		*f = stateFlag{}
		return nil
	}
	if err := f.state.UnmarshalText([]byte(v)); err != nil {
		return err
	}
	f.set = true
	return nil
}

func (f *stateFlag) Type() string { return "state" }

var _ pflag.Value = (*stateFlag)(nil)

func runList(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return withExitCode(ExitGeneric, err)
	}
	loaded, err := loadConfig()
	if err != nil {
		return withExitCode(ExitGeneric, err)
	}

	all, _ := cmd.Flags().GetBool("all")
	includeTools, _ := cmd.Flags().GetBool("include-tools")
	pid, _ := cmd.Flags().GetInt("pid")
	window, _ := cmd.Flags().GetString("window")

	opts := listOptions(loaded.Config, all, includeTools, pid, window)
	if state, ok := cmd.Flags().Lookup("state").Value.(*stateFlag); ok && state.set {
		opts.ByState, opts.State = true, state.state
	}

	windows, err := listWindows(provider, opts)
	if err != nil {
		return withExitCode(ExitGeneric, err)
	}

	return output.Print(output.ListResult{
		TS:      time.Now().Unix(),
		Count:   len(windows),
		Windows: windows,
	})
}
