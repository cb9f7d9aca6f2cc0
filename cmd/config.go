package cmd

import (
	"fmt"

	"github.com/helmcode/ticket-ai/pkg/config"
	"github.com/helmcode/ticket-ai/pkg/formatter"
	"github.com/spf13/cobra"
)

var (
	configFile     string
	configProvider string
	configFormat   string
)

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration with credentials masked",
		Args:  cobra.NoArgs,
		RunE:  runConfig,
	}

	cmd.Flags().StringVar(&configFile, "config", "", "Config file (default .ticket-ai.yaml in . or $HOME)")
	cmd.Flags().StringVar(&configProvider, "provider", "", "LLM provider (openai, claude)")
	cmd.Flags().StringVarP(&configFormat, "format", "f", "yaml", "Output format (yaml, json)")

	return cmd
}

func runConfig(cmd *cobra.Command, args []string) error {
	if configFormat != "yaml" && configFormat != "json" {
		return fmt.Errorf("invalid output format: %s (supported: yaml, json)", configFormat)
	}

	cfg, err := config.Load(config.LoadOptions{ConfigFile: configFile, Provider: configProvider})
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := formatter.Display(cmd.OutOrStdout(), cfg.Masked(), configFormat); err != nil {
		return err
	}
	if err := cfg.Settings().Validate(); err != nil {
		printWarning(cmd.ErrOrStderr(), err.Error())
	}
	return nil
}
