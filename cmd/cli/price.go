package main

import (
	"fmt"
	"io"

	"github.com/amirasaad/parcels/infra/initializer"
	"github.com/amirasaad/parcels/pkg/app"
	"github.com/amirasaad/parcels/pkg/pricing"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newPriceCommand(rc *RootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "price",
		Short: "run the delivery cost calculation once",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := rc.loadConfig()
			if err != nil {
				return err
			}
			deps, cleanup, err := initializer.InitializeDependencies(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			a := app.New(deps, cfg)
			result, err := a.PricingJob.RunOnce(cmd.Context(), pricing.TriggerCLI)
			printRunResult(cmd.OutOrStdout(), result)
			return err
		},
	}
}

func printRunResult(w io.Writer, r pricing.RunResult) {
	status := color.GreenString("committed")
	if r.Err != nil {
		status = color.RedString("rolled back")
	}
	_, _ = fmt.Fprintf(w, "run %s %s\n", r.RunID, status)
	_, _ = fmt.Fprintf(w, "  priced:   %d\n", r.Priced)
	_, _ = fmt.Fprintf(w, "  skipped:  %d\n", r.Skipped)
	_, _ = fmt.Fprintf(w, "  duration: %s\n", r.Duration)
}
