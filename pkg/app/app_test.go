package app_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/amirasaad/parcels/infra/eventbus"
	"github.com/amirasaad/parcels/internal/fixtures/mocks"
	"github.com/amirasaad/parcels/pkg/app"
	"github.com/amirasaad/parcels/pkg/config"
	"github.com/amirasaad/parcels/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig(enabled bool) *config.App {
	return &config.App{
		Pricing: &config.Pricing{
			Enabled:          enabled,
			Interval:         time.Hour,
			StatementTimeout: time.Minute,
		},
	}
}

func TestNew_RegistersEventHandlers(t *testing.T) {
	t.Parallel()
	bus := mocks.NewMockBus(t)
	bus.EXPECT().Register(domain.EventTypeParcelRegistered, mock.Anything).Once()
	bus.EXPECT().Register(domain.EventTypeParcelPriced, mock.Anything).Once()

	a := app.New(&app.Deps{
		Uow:          mocks.NewMockUnitOfWork(t),
		RateProvider: mocks.NewMockRateProvider(t),
		EventBus:     bus,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, testConfig(true))

	assert.NotNil(t, a.ParcelService)
	assert.NotNil(t, a.PricingJob)
	assert.NotNil(t, a.Scheduler)
}

func TestEventHandlersAcceptEmittedEvents(t *testing.T) {
	t.Parallel()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bus := eventbus.NewWithMemory(logger, eventbus.WithRecording())
	app.New(&app.Deps{
		Uow:          mocks.NewMockUnitOfWork(t),
		RateProvider: mocks.NewMockRateProvider(t),
		EventBus:     bus,
		Logger:       logger,
	}, testConfig(true))

	require.NoError(t, bus.Emit(context.Background(), domain.ParcelRegistered{ParcelID: 1, SessionID: "s"}))
	require.NoError(t, bus.Emit(context.Background(), &domain.ParcelPriced{ParcelID: 1, DeliveryCost: 180}))
	assert.Len(t, bus.Published(), 2)
}

func TestStart_DisabledReturnsClosedChannel(t *testing.T) {
	t.Parallel()
	a := app.New(&app.Deps{
		Uow:          mocks.NewMockUnitOfWork(t),
		RateProvider: mocks.NewMockRateProvider(t),
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, testConfig(false))

	select {
	case <-a.Start(context.Background()):
	case <-time.After(time.Second):
		t.Fatal("disabled scheduler did not report completion")
	}
}

func TestStart_StopsOnCancel(t *testing.T) {
	t.Parallel()
	a := app.New(&app.Deps{
		Uow:          mocks.NewMockUnitOfWork(t),
		RateProvider: mocks.NewMockRateProvider(t),
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, testConfig(true))

	ctx, cancel := context.WithCancel(context.Background())
	done := a.Start(ctx)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}
