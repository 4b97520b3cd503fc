package main

import (
	"fmt"
	"io"
	"time"

	"github.com/amirasaad/parcels/infra"
	"github.com/amirasaad/parcels/infra/initializer"
	"github.com/amirasaad/parcels/pkg/domain"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newRateCommand(rc *RootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "rate",
		Short: "print the exchange rate pricing would use now",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := rc.loadConfig()
			if err != nil {
				return err
			}
			logger := initializer.SetupLogger(cfg.Log)

			rates, closeRates, err := infra.NewRateSystem(cfg, nil, logger)
			if err != nil {
				return err
			}
			defer closeRates() //nolint:errcheck
			value := rates.GetRate(cmd.Context())
			cached, err := rates.CurrentRate(cmd.Context())
			if err != nil {
				return err
			}
			printRate(cmd.OutOrStdout(), cfg.RateProvider.Currency, value, cached, time.Now())
			return nil
		},
	}
}

func printRate(w io.Writer, currency string, value float64, cached *domain.CachedRate, now time.Time) {
	_, _ = fmt.Fprintf(w, "%s rate: %s\n", currency, color.CyanString("%.4f", value))
	if cached == nil || cached.Value != value {
		_, _ = fmt.Fprintln(w, color.YellowString("  fetch failed, fallback value in use"))
		return
	}
	_, _ = fmt.Fprintf(w, "  source:     %s\n", cached.Source)
	_, _ = fmt.Fprintf(w, "  fetched at: %s\n", cached.FetchedAt.Format(time.RFC3339))
	_, _ = fmt.Fprintf(w, "  expires in: %s\n", cached.ExpiresAt.Sub(now).Round(time.Second))
}
