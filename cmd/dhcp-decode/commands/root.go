// Package commands implements the dhcp-decode CLI.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/rejdeboer/dhcp-decoder/internal/configuration"
	"github.com/rejdeboer/dhcp-decoder/internal/logger"
)

var (
	configDir string
	settings  configuration.Settings
)

var rootCmd = &cobra.Command{
	Use:   "dhcp-decode",
	Short: "Decode DHCP wire fields from a hex dump or capture",
	Long: `dhcp-decode runs a field layout over raw bytes and prints every decoded field
with its offset. Layouts are YAML lists of typed reads, see layouts/ for examples.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		settings, err = configuration.ReadConfiguration(configDir)
		if err != nil {
			return err
		}
		logger.Init(cmd.ErrOrStderr(), settings.Application)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

// GetRootCmd returns the root command for testing purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "./configuration", "Directory holding base.yml and <ENVIRONMENT>.yml")

	rootCmd.AddCommand(runCmd)
}
