package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zjrosen/fp/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the fp configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init [PATH]",
	Short: "Write a default config file",
	Long: `Write a commented default configuration file.

PATH defaults to ~/.config/fp/config.yaml. An existing file is never overwritten.

Examples:
  # Create the user config
  fp config init

  # Create a project-local config
  fp config init .fp/config.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.DefaultConfigPath()
		if len(args) == 1 {
			path = args[0]
		}
		return initConfigFile(cmd.OutOrStdout(), path)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
}

func initConfigFile(out io.Writer, path string) error {
	if path == "" {
		return errors.New("cannot determine home directory; pass a config path")
	}
	if err := config.WriteDefaultConfig(path); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Created %s\n", path)
	return nil
}
