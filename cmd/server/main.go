package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/amirasaad/parcels/docs"
	"github.com/amirasaad/parcels/infra/initializer"
	"github.com/amirasaad/parcels/internal/fixtures/parceltype"
	"github.com/amirasaad/parcels/pkg/app"
	"github.com/amirasaad/parcels/pkg/config"
	"github.com/amirasaad/parcels/webapi"
	log "github.com/charmbracelet/log"
)

const shutdownTimeout = 10 * time.Second

// @title Parcel Service API
// @version 1.0.0
// @description Parcel registration with periodic delivery cost calculation.
// @contact.name API Support
// @license.name MIT
// @host localhost:8000
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	// Initialize all dependencies
	deps, cleanup, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer cleanup()
	logger := deps.Logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(deps, cfg)
	types, err := parceltype.LoadParcelTypesCSV("")
	if err != nil {
		return fmt.Errorf("failed to load parcel types: %w", err)
	}
	if _, err := a.ParcelService.SeedTypes(ctx, types); err != nil {
		return fmt.Errorf("failed to seed parcel types: %w", err)
	}

	schedulerDone := a.Start(ctx)
	fiberApp := webapi.SetupApp(a)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
	)

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- fiberApp.Listen(addr)
	}()

	select {
	case err = <-listenErr:
		stop()
		<-schedulerDone
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	err = fiberApp.ShutdownWithTimeout(shutdownTimeout)
	<-schedulerDone
	if lerr := <-listenErr; lerr != nil && !errors.Is(lerr, context.Canceled) {
		err = errors.Join(err, lerr)
	}
	return err
}
