package engine

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upwatchdev/upwatch/internal/config"
	"github.com/upwatchdev/upwatch/internal/source"
	"github.com/upwatchdev/upwatch/models"
)

func newTestScheduler(fetcher SourceFetcher, interval time.Duration) *Scheduler {
	p := NewPoller([]config.Source{srcA}, fetcher)
	return NewScheduler(p, interval)
}

func waitResult(t *testing.T, s *Scheduler) models.PollResult {
	t.Helper()
	select {
	case result, ok := <-s.Results():
		require.True(t, ok, "results channel closed early")
		return result
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for poll result")
		return models.PollResult{}
	}
}

func TestSchedulerRunsImmediateCycleOnStart(t *testing.T) {
	fetcher := &mockFetcher{data: map[string]source.Data{
		"acme/status": {Summary: []source.RawSummary{rawEntry("api", "up")}},
	}}
	s := newTestScheduler(fetcher, time.Hour)
	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	result := waitResult(t, s)
	require.Len(t, result.Services, 1)
	assert.Equal(t, "api", result.Services[0].Name)
}

func TestSchedulerTriggerRunsAnotherCycle(t *testing.T) {
	var calls atomic.Int32
	fetcher := &mockFetcher{FetchFn: func(context.Context, config.Source) source.Data {
		calls.Add(1)
		return source.Data{Summary: []source.RawSummary{rawEntry("api", "up")}}
	}}
	s := newTestScheduler(fetcher, time.Hour)
	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	waitResult(t, s)
	s.Trigger()
	waitResult(t, s)

	assert.GreaterOrEqual(t, calls.Load(), int32(2))
}

func TestSchedulerEmitsEventsOnTransition(t *testing.T) {
	var down atomic.Bool
	fetcher := &mockFetcher{FetchFn: func(context.Context, config.Source) source.Data {
		status := "up"
		if down.Load() {
			status = "down"
		}
		return source.Data{Summary: []source.RawSummary{rawEntry("api", status)}}
	}}
	s := newTestScheduler(fetcher, time.Hour)
	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	waitResult(t, s)

	down.Store(true)
	s.Trigger()
	waitResult(t, s)

	select {
	case change, ok := <-s.Events():
		require.True(t, ok)
		assert.Equal(t, models.StatusUp, change.From)
		assert.Equal(t, models.StatusDown, change.To)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for status change event")
	}
}

func TestSchedulerSkipsOverlappingCycles(t *testing.T) {
	release := make(chan struct{})
	var calls atomic.Int32
	fetcher := &mockFetcher{FetchFn: func(context.Context, config.Source) source.Data {
		calls.Add(1)
		<-release
		return source.Data{}
	}}
	s := newTestScheduler(fetcher, time.Hour)
	require.NoError(t, s.Start(context.Background()))

	// Wait until the initial cycle is inside the fetcher, then hammer
	// the manual trigger. The in-flight guard must drop every one.
	require.Eventually(t, func() bool { return calls.Load() == 1 },
		2*time.Second, 10*time.Millisecond)
	for i := 0; i < 5; i++ {
		s.Trigger()
	}
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load(), "overlapping cycles must be skipped")

	close(release)
	s.Stop()
}

func TestSchedulerStopClosesChannels(t *testing.T) {
	fetcher := &mockFetcher{}
	s := newTestScheduler(fetcher, time.Hour)
	require.NoError(t, s.Start(context.Background()))

	waitResult(t, s)
	s.Stop()
	s.Stop() // idempotent

	_, ok := <-s.Results()
	assert.False(t, ok, "results channel should be closed after Stop")
	_, ok = <-s.Events()
	assert.False(t, ok, "events channel should be closed after Stop")
}

func TestSchedulerStartAfterStopIsNoOp(t *testing.T) {
	fetcher := &mockFetcher{}
	s := newTestScheduler(fetcher, time.Hour)
	s.Stop()
	require.NoError(t, s.Start(context.Background()))

	select {
	case _, ok := <-s.Results():
		assert.False(t, ok)
	case <-time.After(200 * time.Millisecond):
		t.Fatal("results channel should be closed")
	}
}

func TestSchedulerPollsOnInterval(t *testing.T) {
	var calls atomic.Int32
	fetcher := &mockFetcher{FetchFn: func(context.Context, config.Source) source.Data {
		calls.Add(1)
		return source.Data{}
	}}
	s := newTestScheduler(fetcher, 100*time.Millisecond)
	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	// Immediate cycle plus at least one timed cycle. Results() only
	// keeps the latest, so count fetcher calls instead.
	require.Eventually(t, func() bool { return calls.Load() >= 2 },
		3*time.Second, 20*time.Millisecond)
}
