package cmd

import (
	"fmt"

	"github.com/jhowell728/fsb/internal/config"
	"github.com/jhowell728/fsb/internal/output"
	"github.com/spf13/cobra"
)

// ConfigView is the output of `config print`.
type ConfigView struct {
	Path   string         `yaml:"path"            json:"path"`
	Found  bool           `yaml:"found"           json:"found"`
	Config config.Config  `yaml:"config"          json:"config"`
	Lines  map[string]int `yaml:"lines,omitempty" json:"lines,omitempty"`
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the fsb config file",
}

var configPrintCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the effective configuration",
	Long:  "Print the configuration the menu would use, and the line of the config file that set each key.",
	Args:  cobra.NoArgs,
	RunE:  runConfigPrint,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPrintCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigPrint(cmd *cobra.Command, args []string) error {
	loaded, err := loadConfig()
	if err != nil {
		return withExitCode(ExitGeneric, err)
	}
	return output.Print(ConfigView{
		Path:   loaded.Path,
		Found:  loaded.Found,
		Config: loaded.Config,
		Lines:  loaded.Lines,
	})
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	loaded, err := loadConfig()
	if err != nil {
		return withExitCode(ExitGeneric, err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), loaded.Path)
	return err
}
