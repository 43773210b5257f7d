package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var flagConfigWrite string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or write the effective configuration",
	Long: `Print the configuration after the search order and flags are applied.

Search order: --config path, ~/.tui2048/config.yaml, ./configs/tui2048.yaml,
then the built-in defaults.

Examples:
  tui2048 config
  tui2048 config --seed 7 --write ~/.tui2048/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigWrite, "write", "", "Write the effective config to this path")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagConfigWrite != "" {
		if err := config.Save(flagConfigWrite, appConfig); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", flagConfigWrite)
		return nil
	}

	data, err := yaml.Marshal(appConfig)
	if err != nil {
		return fmt.Errorf("config: cannot encode: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
