// Package engine drives the fetch → map → diff cycle: a Poller that
// assembles one PollResult per cycle, a Reconciler that turns
// consecutive polls into status-change events, and a Scheduler that
// runs cycles on a fixed cadence.
package engine

import "github.com/upwatchdev/upwatch/models"

// Reconciler owns the id→status snapshot of the most recently completed
// poll and detects transitions between consecutive polls.
//
// It is a single-writer structure: only the poll cycle calls Reconcile,
// and cycles never overlap (the scheduler's in-flight guard enforces
// this). No other component reads the snapshot.
type Reconciler struct {
	snapshot map[string]models.Status
	primed   bool
}

// NewReconciler returns a Reconciler with an empty snapshot. The first
// Reconcile call primes it and emits nothing.
func NewReconciler() *Reconciler {
	return &Reconciler{snapshot: make(map[string]models.Status)}
}

// Reconcile compares the new poll's services against the previous
// snapshot and returns one StatusChange per service whose status
// differs. Services seen for the first time produce no event. The
// snapshot is then replaced wholesale with the new poll's id→status
// pairs, so services that disappeared between polls are dropped.
//
// The very first call never emits events: there is no prior poll to
// diff against.
func (r *Reconciler) Reconcile(services []models.Service) []models.StatusChange {
	next := make(map[string]models.Status, len(services))
	var changes []models.StatusChange

	for _, svc := range services {
		next[svc.ID] = svc.Status
		prev, seen := r.snapshot[svc.ID]
		if seen && prev != svc.Status {
			changes = append(changes, models.StatusChange{
				ServiceID: svc.ID,
				Name:      svc.Name,
				Label:     svc.Label,
				From:      prev,
				To:        svc.Status,
			})
		}
	}

	r.snapshot = next

	if !r.primed {
		r.primed = true
		return nil
	}
	return changes
}
