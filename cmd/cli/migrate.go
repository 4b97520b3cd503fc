package main

import (
	"fmt"

	"github.com/amirasaad/parcels/infra"
	"github.com/amirasaad/parcels/infra/initializer"
	infra_repository "github.com/amirasaad/parcels/infra/repository"
	"github.com/amirasaad/parcels/internal/fixtures/parceltype"
	parcelsvc "github.com/amirasaad/parcels/pkg/service/parcel"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newMigrateCommand(rc *RootCommand) *cobra.Command {
	var typesFile string
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "apply database migrations and seed parcel types",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := rc.loadConfig()
			if err != nil {
				return err
			}
			logger := initializer.SetupLogger(cfg.Log)

			db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close() //nolint:errcheck
			}
			if err := infra.RunMigrations(db, logger); err != nil {
				return err
			}

			types, err := parceltype.LoadParcelTypesCSV(typesFile)
			if err != nil {
				return err
			}
			svc := parcelsvc.New(infra_repository.NewUoW(db), nil, nil, logger)
			n, err := svc.SeedTypes(cmd.Context(), types)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, color.GreenString("migrations applied"))
			if n > 0 {
				_, _ = fmt.Fprintf(out, "seeded %s parcel types\n", color.CyanString("%d", n))
			} else {
				_, _ = fmt.Fprintln(out, "parcel types already present")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&typesFile, "types-file", "", "CSV file with parcel types (defaults to the built-in list)")
	return cmd
}
