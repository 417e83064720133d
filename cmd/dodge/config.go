package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodgemaster/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a new session would use as YAML, after the
config file, the difficulty preset and the per-setting flags are applied.

The output is a complete config file:
  dodge config --difficulty hard > ~/.dodgemaster/configs/dodge.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	addGameFlags(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := applyGameFlags()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
