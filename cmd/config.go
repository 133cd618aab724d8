package cmd

import (
	"github.com/philipparndt/go4d/pkg/config"
	"github.com/spf13/cobra"
)

var configFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective settings",
	Long:  "Print the settings the viewer would start with, after applying --config and the other flags. Redirect the output to create a settings file.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return cfg.Encode(cmd.OutOrStdout(), config.Format(configFormat))
	},
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().StringVar(&configFormat, "format", string(config.YAML), "Output format: yaml or toml")
}
