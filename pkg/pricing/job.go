// Package pricing assigns delivery costs to parcels that have none.
//
// A run selects every unpriced parcel inside one transaction, asks the rate
// provider for a rate per parcel, and commits all assignments together. Runs
// never overlap within a process; across processes the selected rows are
// locked and rows already locked by another run are skipped.
package pricing

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/amirasaad/parcels/pkg/config"
	"github.com/amirasaad/parcels/pkg/domain"
	"github.com/amirasaad/parcels/pkg/eventbus"
	"github.com/amirasaad/parcels/pkg/provider"
	"github.com/amirasaad/parcels/pkg/repository"
	"github.com/google/uuid"
)

// Trigger names what started a run.
type Trigger string

const (
	TriggerSchedule Trigger = "schedule"
	TriggerManual   Trigger = "manual"
	TriggerCLI      Trigger = "cli"
)

// RunResult describes a finished run.
type RunResult struct {
	RunID     uuid.UUID     `json:"run_id"`
	Trigger   Trigger       `json:"trigger"`
	Priced    int           `json:"priced"`
	Skipped   int           `json:"skipped"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
	Err       error         `json:"-"`
}

// Recorder receives run metrics.
type Recorder interface {
	RecordRun(trigger string, priced int, d time.Duration, err error)
	RecordPublishError()
}

// Runner runs a single pricing pass.
type Runner interface {
	RunOnce(ctx context.Context, trigger Trigger) (RunResult, error)
}

type Job struct {
	uow      repository.UnitOfWork
	rates    provider.RateProvider
	bus      eventbus.Bus
	recorder Recorder
	timeout  time.Duration
	now      func() time.Time
	logger   *slog.Logger

	mu sync.Mutex
}

var _ Runner = (*Job)(nil)

// NewJob creates a pricing job. bus and recorder may be nil.
func NewJob(
	uow repository.UnitOfWork,
	rates provider.RateProvider,
	bus eventbus.Bus,
	recorder Recorder,
	cfg *config.Pricing,
	logger *slog.Logger,
) *Job {
	var timeout time.Duration
	if cfg != nil {
		timeout = cfg.StatementTimeout
	}
	return &Job{
		uow:      uow,
		rates:    rates,
		bus:      bus,
		recorder: recorder,
		timeout:  timeout,
		now:      time.Now,
		logger:   logger.With("component", "pricing_job"),
	}
}

// RunOnce prices every unpriced parcel. Either all assignments of the run
// are committed or none are; in the latter case the returned error wraps
// domain.ErrPersistenceFailure.
func (j *Job) RunOnce(ctx context.Context, trigger Trigger) (RunResult, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	result := RunResult{
		RunID:     uuid.New(),
		Trigger:   trigger,
		StartedAt: j.now(),
	}
	logger := j.logger.With("run_id", result.RunID, "trigger", trigger)

	var events []domain.ParcelPriced
	err := j.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		events = events[:0]
		result.Skipped = 0

		parcels, err := uow.ParcelRepository()
		if err != nil {
			return err
		}
		listCtx, cancel := j.statementContext(ctx)
		unpriced, err := parcels.ListUnpriced(listCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("list unpriced parcels: %w", err)
		}

		for _, p := range unpriced {
			// The rate call is bounded by the provider's own client timeout.
			rate := j.rates.GetRate(ctx)
			cost := domain.DeliveryCost(p.Weight, p.ContentValue, rate)
			setCtx, cancel := j.statementContext(ctx)
			updated, err := parcels.SetDeliveryCost(setCtx, p.ID, cost)
			cancel()
			if err != nil {
				return fmt.Errorf("set delivery cost of parcel %d: %w", p.ID, err)
			}
			if !updated {
				result.Skipped++
				continue
			}
			events = append(events, domain.ParcelPriced{
				ParcelID:     p.ID,
				SessionID:    p.SessionID,
				DeliveryCost: cost,
				Rate:         rate,
				RunID:        result.RunID,
			})
		}
		return nil
	})
	result.Duration = j.now().Sub(result.StartedAt)

	if err != nil {
		err = fmt.Errorf("%w: %w", domain.ErrPersistenceFailure, err)
		result.Err = err
		j.record(result)
		logger.Error("Pricing run rolled back", "error", err, "duration", result.Duration)
		return result, err
	}

	result.Priced = len(events)
	j.record(result)
	if result.Priced > 0 || result.Skipped > 0 {
		logger.Info("Pricing run committed",
			"priced", result.Priced,
			"skipped", result.Skipped,
			"duration", result.Duration,
		)
	} else {
		logger.Debug("Pricing run found no unpriced parcels")
	}

	j.publish(ctx, logger, events)
	return result, nil
}

// statementContext bounds a single database statement of the run.
func (j *Job) statementContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if j.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, j.timeout)
}

func (j *Job) publish(ctx context.Context, logger *slog.Logger, events []domain.ParcelPriced) {
	if j.bus == nil {
		return
	}
	now := j.now()
	for _, evt := range events {
		evt.OccurredAt = now
		if err := j.bus.Emit(ctx, evt); err != nil {
			if j.recorder != nil {
				j.recorder.RecordPublishError()
			}
			logger.Warn("Failed to publish parcel priced event", "parcel_id", evt.ParcelID, "error", err)
		}
	}
}

func (j *Job) record(r RunResult) {
	if j.recorder == nil {
		return
	}
	j.recorder.RecordRun(string(r.Trigger), r.Priced, r.Duration, r.Err)
}
