package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/upwatchdev/upwatch/models"
)

// Scheduler drives poll cycles on a fixed cadence and exposes a manual
// trigger. Completed cycles are published on Results and their status
// transitions on Events.
//
// Cycles never overlap: a tick or manual trigger that arrives while a
// cycle is still running is skipped, which keeps snapshot mutation
// strictly sequential.
type Scheduler struct {
	poller   *Poller
	interval time.Duration
	cron     *cron.Cron
	results  chan models.PollResult
	events   chan models.StatusChange

	inFlight atomic.Bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu        sync.Mutex
	started   bool
	stopped   bool
	closeOnce sync.Once
}

// NewScheduler returns a Scheduler that runs poller every interval once
// started.
func NewScheduler(poller *Poller, interval time.Duration) *Scheduler {
	return &Scheduler{
		poller:   poller,
		interval: interval,
		cron:     cron.New(),
		results:  make(chan models.PollResult, 1),
		events:   make(chan models.StatusChange, 16),
	}
}

// Results returns the channel of completed poll results. The channel is
// closed when the scheduler stops.
func (s *Scheduler) Results() <-chan models.PollResult {
	return s.results
}

// Events returns the stream of status-change notifications. The channel
// is closed when the scheduler stops. There is no delivery guarantee:
// events are dropped when the consumer falls behind.
func (s *Scheduler) Events() <-chan models.StatusChange {
	return s.events
}

// Start runs an immediate poll cycle and then polls on the fixed
// interval until Stop is called or ctx is cancelled. Start is
// idempotent, and a no-op after Stop.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started || s.stopped {
		s.mu.Unlock()
		return nil
	}
	s.started = true

	if ctx == nil {
		ctx = context.Background()
	}
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.mu.Unlock()

	if _, err := s.cron.AddFunc(fmt.Sprintf("@every %s", s.interval), func() {
		s.runCycle()
	}); err != nil {
		return fmt.Errorf("registering poll schedule: %w", err)
	}

	// First cycle runs right away rather than waiting a full interval.
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runCycle()
	}()

	s.cron.Start()
	slog.Debug("poll scheduler started", "interval", s.interval)
	return nil
}

// Trigger requests a poll cycle now. If a cycle is already in flight
// the request is dropped rather than queued.
func (s *Scheduler) Trigger() {
	s.mu.Lock()
	if !s.started || s.stopped {
		s.mu.Unlock()
		return
	}
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		s.runCycle()
	}()
}

// Stop halts the cadence and waits for any in-flight cycle to finish,
// then closes the result and event channels. Results of a cycle that
// completes during shutdown are discarded. Stop is idempotent.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()

	// Wait for cron-invoked cycles, then manual/initial ones.
	<-s.cron.Stop().Done()
	s.wg.Wait()

	s.closeOnce.Do(func() {
		close(s.results)
		close(s.events)
	})
	slog.Debug("poll scheduler stopped")
}

// runCycle executes one cycle unless another is already in flight.
func (s *Scheduler) runCycle() {
	if !s.inFlight.CompareAndSwap(false, true) {
		slog.Debug("poll cycle already in progress, skipping")
		return
	}
	defer s.inFlight.Store(false)

	ctx := s.ctx
	if ctx.Err() != nil {
		return
	}

	result, changes := s.poller.RunCycle(ctx)
	s.publish(ctx, result, changes)
}

// publish hands the cycle's outcome to consumers. The results channel
// keeps only the latest cycle; a stale unconsumed result is replaced.
func (s *Scheduler) publish(ctx context.Context, result models.PollResult, changes []models.StatusChange) {
	if ctx.Err() != nil {
		return // stopped mid-cycle: discard
	}

	select {
	case s.results <- result:
	default:
		select {
		case <-s.results:
		default:
		}
		select {
		case s.results <- result:
		case <-ctx.Done():
			return
		}
	}

	for _, change := range changes {
		select {
		case s.events <- change:
		default:
			slog.Warn("event consumer behind, dropping status change",
				"service", change.ServiceID, "from", change.From, "to", change.To)
		}
	}
}
