package cmd

import (
	"github.com/jhowell728/fsb/internal/output"
	"github.com/jhowell728/fsb/internal/platform"
	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Make a window borderless fullscreen without the menu",
	Long: `Strip the frame of one window and stretch it over the primary display.
The window is chosen by handle, by PID, by title substring, or by PID and
title together. With several matches the topmost window wins.

Examples:
  fsb apply --window "Notepad"
  fsb apply --pid 4242
  fsb apply --window-id 132456`,
	Args: cobra.NoArgs,
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().String("window", "", "Target window by title substring")
	applyCmd.Flags().Int("window-id", 0, "Target window by handle")
	applyCmd.Flags().Int("pid", 0, "Target window by process ID")
	applyCmd.Flags().Bool("all", false, "Also match hidden and blank-titled windows")
}

func runApply(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return withExitCode(ExitGeneric, err)
	}
	loaded, err := loadConfig()
	if err != nil {
		return withExitCode(ExitGeneric, err)
	}

	window, _ := cmd.Flags().GetString("window")
	windowID, _ := cmd.Flags().GetInt("window-id")
	pid, _ := cmd.Flags().GetInt("pid")
	all, _ := cmd.Flags().GetBool("all")

	target := platform.TargetOptions{
		WindowID: uintptr(windowID),
		PID:      pid,
		Window:   window,
	}
	result, err := applyFullscreen(provider, listOptions(loaded.Config, all, false, 0, ""), target)
	if err != nil {
		return withExitCode(ExitGeneric, err)
	}
	return output.Print(result)
}
