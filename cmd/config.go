package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print the configuration after applying the config file, LESSONBOOK_*
environment variables and flags. API keys are masked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, args)
		if err != nil {
			return err
		}
		shown := *cfg
		shown.LLM = cfg.LLM.Redacted()
		data, err := shown.YAML()
		if err != nil {
			return fmt.Errorf("render config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
	Args: cobra.MaximumNArgs(1),
}
