package main

import (
	"fmt"
	"os"

	"github.com/amirasaad/parcels/pkg/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const envFileFlag = "env-file"

type RootCommand struct {
	baseCmd *cobra.Command
	envFile string
}

func NewRootCommand() *RootCommand {
	rc := &RootCommand{
		baseCmd: &cobra.Command{
			Use:           "parcels-cli",
			Short:         "maintenance commands for the parcel service",
			SilenceUsage:  true,
			SilenceErrors: true,
		},
	}
	rc.baseCmd.PersistentFlags().StringVar(&rc.envFile, envFileFlag, ".env", "environment file to load")

	rc.baseCmd.AddCommand(
		newMigrateCommand(rc),
		newPriceCommand(rc),
		newRateCommand(rc),
	)
	return rc
}

func (rc *RootCommand) Execute() {
	if err := rc.baseCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))

		os.Exit(1)
	}
}

func (rc *RootCommand) loadConfig() (*config.App, error) {
	cfg, err := config.Load(rc.envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
