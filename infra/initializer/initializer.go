package initializer

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/parcels/infra"
	infra_eventbus "github.com/amirasaad/parcels/infra/eventbus"
	"github.com/amirasaad/parcels/infra/metrics"
	infra_repository "github.com/amirasaad/parcels/infra/repository"
	"github.com/amirasaad/parcels/pkg/app"
	"github.com/amirasaad/parcels/pkg/config"
	"github.com/amirasaad/parcels/pkg/eventbus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
)

const (
	EventBusDriverMemory = "memory"
	EventBusDriverRedis  = "redis"
	EventBusDriverKafka  = "kafka"
)

// InitializeDependencies initializes all the application dependencies.
// The returned cleanup releases connections and stops event consumers.
func InitializeDependencies(cfg *config.App) (
	deps *app.Deps,
	cleanup func(),
	err error,
) {
	logger := SetupLogger(cfg.Log)
	var closers []func() error
	release := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				logger.Warn("Failed to release resource", "error", err)
			}
		}
	}
	defer func() {
		if err != nil {
			release()
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	// Initialize database
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, nil, err
	}
	if sqlDB, dbErr := db.DB(); dbErr == nil {
		closers = append(closers, sqlDB.Close)
	}
	if err = infra.RunMigrations(db, logger); err != nil {
		return nil, nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	rates, closeRates, err := infra.NewRateSystem(cfg, m, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize rate provider: %w", err)
	}
	closers = append(closers, closeRates)

	bus, closeBus, err := initEventBus(cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize event bus: %w", err)
	}
	closers = append(closers, closeBus)

	deps = &app.Deps{
		Uow:          infra_repository.NewUoW(db),
		RateProvider: rates,
		EventBus:     bus,
		Recorder:     m,
		Gatherer:     registry,
		Logger:       logger,
	}
	return deps, release, nil
}

// initEventBus builds the bus selected by cfg.EventBus.Driver. An unreachable
// Redis degrades to the in-memory bus.
func initEventBus(cfg *config.App, logger *slog.Logger) (eventbus.Bus, func() error, error) {
	noop := func() error { return nil }
	driver := EventBusDriverMemory
	if cfg.EventBus != nil && cfg.EventBus.Driver != "" {
		driver = cfg.EventBus.Driver
	}

	switch driver {
	case EventBusDriverMemory:
		logger.Info("Using in-memory event bus")
		return infra_eventbus.NewWithMemory(logger), noop, nil

	case EventBusDriverRedis:
		if cfg.Redis == nil || cfg.Redis.URL == "" {
			return nil, nil, errors.New("redis event bus requires REDIS_URL")
		}
		opt, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid redis url: %w", err)
		}
		client := redis.NewClient(opt)
		bus, err := infra_eventbus.NewWithRedis(client, cfg.EventBus.Topic, cfg.EventBus.GroupID, logger)
		if err != nil {
			_ = client.Close()
			logger.Warn("Redis event bus unavailable, falling back to in-memory bus", "error", err)
			return infra_eventbus.NewWithMemory(logger), noop, nil
		}
		logger.Info("Using Redis event bus", "addr", opt.Addr, "stream", cfg.EventBus.Topic)
		return bus, func() error {
			return errors.Join(bus.Close(), client.Close())
		}, nil

	case EventBusDriverKafka:
		bus, err := infra_eventbus.NewWithKafka(cfg.EventBus, logger)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Using Kafka event bus", "brokers", cfg.EventBus.Brokers, "topic", cfg.EventBus.Topic)
		return bus, bus.Close, nil

	default:
		return nil, nil, fmt.Errorf("unsupported event bus driver %q", driver)
	}
}
