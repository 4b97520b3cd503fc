package pricing

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Scheduler runs a Runner on a fixed interval and on demand.
// On-demand triggers are coalesced: while one is pending, further
// triggers join it and receive its task ID.
type Scheduler struct {
	runner   Runner
	interval time.Duration
	logger   *slog.Logger

	trigger chan struct{}
	mu      sync.Mutex
	pending uuid.UUID
	running bool
}

func NewScheduler(runner Runner, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		runner:   runner,
		interval: interval,
		logger:   logger.With("component", "pricing_scheduler"),
		trigger:  make(chan struct{}, 1),
	}
}

// Trigger requests a manual run. It returns the task ID of the pending run
// and whether this call queued it (false means it joined one already queued).
func (s *Scheduler) Trigger() (uuid.UUID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending != uuid.Nil {
		return s.pending, false
	}
	s.pending = uuid.New()
	s.trigger <- struct{}{}
	return s.pending, true
}

// Running reports whether a loop is consuming triggers.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Run blocks until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	s.setRunning(true)
	defer s.stop()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	s.logger.Info("Pricing scheduler started", "interval", s.interval)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Pricing scheduler stopped")
			return
		case <-ticker.C:
			s.run(ctx, TriggerSchedule, uuid.Nil)
		case <-s.trigger:
			s.run(ctx, TriggerManual, s.takePending())
		}
	}
}

// Start runs the scheduler in its own goroutine. The returned channel is
// closed once the loop has exited.
func (s *Scheduler) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	s.setRunning(true)
	go func() {
		defer close(done)
		s.Run(ctx)
	}()
	return done
}

func (s *Scheduler) setRunning(running bool) {
	s.mu.Lock()
	s.running = running
	s.mu.Unlock()
}

// stop drops a trigger that no loop will pick up.
func (s *Scheduler) stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
	s.pending = uuid.Nil
	select {
	case <-s.trigger:
	default:
	}
}

func (s *Scheduler) takePending() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.pending
	s.pending = uuid.Nil
	return id
}

func (s *Scheduler) run(ctx context.Context, trigger Trigger, taskID uuid.UUID) {
	result, err := s.runner.RunOnce(ctx, trigger)
	if err != nil {
		// The next tick retries.
		s.logger.Error("Pricing run failed",
			"trigger", trigger,
			"task_id", taskID,
			"run_id", result.RunID,
			"error", err,
		)
		return
	}
	s.logger.Debug("Pricing run finished",
		"trigger", trigger,
		"task_id", taskID,
		"run_id", result.RunID,
		"priced", result.Priced,
	)
}
