package app

import (
	"context"
	"log/slog"

	"github.com/amirasaad/parcels/pkg/config"
	"github.com/amirasaad/parcels/pkg/eventbus"
	"github.com/amirasaad/parcels/pkg/pricing"
	"github.com/amirasaad/parcels/pkg/provider"
	"github.com/amirasaad/parcels/pkg/repository"
	"github.com/amirasaad/parcels/pkg/service/parcel"
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder is the metrics sink shared by the services.
type Recorder interface {
	pricing.Recorder
	parcel.Recorder
}

// Deps contains all the dependencies needed to assemble the application.
type Deps struct {
	Uow          repository.UnitOfWork
	RateProvider provider.RateProvider
	EventBus     eventbus.Bus
	Recorder     Recorder
	Gatherer     prometheus.Gatherer
	Logger       *slog.Logger
}

type App struct {
	Deps          *Deps
	Config        *config.App
	ParcelService *parcel.Service
	PricingJob    *pricing.Job
	Scheduler     *pricing.Scheduler
}

func New(deps *Deps, cfg *config.App) *App {
	app := &App{
		Deps:   deps,
		Config: cfg,
	}
	app.setupEventBus()

	app.ParcelService = parcel.New(deps.Uow, deps.EventBus, deps.Recorder, deps.Logger)
	app.PricingJob = pricing.NewJob(
		deps.Uow,
		deps.RateProvider,
		deps.EventBus,
		deps.Recorder,
		cfg.Pricing,
		deps.Logger,
	)
	app.Scheduler = pricing.NewScheduler(app.PricingJob, cfg.Pricing.Interval, deps.Logger)
	return app
}

// Start launches background work. The returned channel closes once it has
// stopped after ctx is cancelled.
func (a *App) Start(ctx context.Context) <-chan struct{} {
	if !a.Config.Pricing.Enabled {
		a.Deps.Logger.Info("Pricing scheduler disabled")
		done := make(chan struct{})
		close(done)
		return done
	}
	return a.Scheduler.Start(ctx)
}
