package engine

import (
	"context"
	"time"

	"github.com/upwatchdev/upwatch/internal/config"
	"github.com/upwatchdev/upwatch/internal/mapper"
	"github.com/upwatchdev/upwatch/internal/source"
	"github.com/upwatchdev/upwatch/models"
)

// SourceFetcher is the slice of the fetcher the poller needs. Fetch
// never fails; a source whose queries all failed contributes empty
// lists for that cycle only.
type SourceFetcher interface {
	Fetch(ctx context.Context, src config.Source) source.Data
}

// Poller runs one complete poll cycle: fetch every source, map the raw
// data, reconcile against the previous cycle.
type Poller struct {
	sources []config.Source
	fetcher SourceFetcher
	rec     *Reconciler
}

// NewPoller returns a Poller over the given sources. The source list is
// fixed for the poller's lifetime.
func NewPoller(sources []config.Source, fetcher SourceFetcher) *Poller {
	return &Poller{
		sources: sources,
		fetcher: fetcher,
		rec:     NewReconciler(),
	}
}

// RunCycle fetches each source in order, maps the results, and
// reconciles the merged service list against the previous cycle's
// snapshot. The result's timestamp advances even when every source
// failed, which is how consumers tell "no data yet" from "empty".
//
// RunCycle must not be called concurrently with itself; the scheduler's
// in-flight guard ensures cycles are strictly sequential.
func (p *Poller) RunCycle(ctx context.Context) (models.PollResult, []models.StatusChange) {
	var (
		services  []models.Service
		incidents []models.Incident
	)

	for _, src := range p.sources {
		data := p.fetcher.Fetch(ctx, src)
		services = append(services, mapper.Services(src, data.Summary)...)
		incidents = append(incidents, mapper.Incidents(src, data.Open, data.Closed)...)
	}

	changes := p.rec.Reconcile(services)

	result := models.PollResult{
		Services:  services,
		Incidents: incidents,
		Timestamp: time.Now(),
	}
	return result, changes
}
