package models

import "time"

// IncidentState mirrors the upstream issue state.
type IncidentState string

const (
	IncidentOpen   IncidentState = "open"
	IncidentClosed IncidentState = "closed"
)

// Incident is one status issue from a source's incident history.
// Identity is Label+ID; the open/closed union is not deduplicated, so an
// issue that flips state mid-poll can appear twice.
type Incident struct {
	ID        int           `json:"id"` // upstream issue number
	Label     string        `json:"label"`
	Title     string        `json:"title"`
	State     IncidentState `json:"state"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	URL       string        `json:"url"`
	Body      string        `json:"body"`
}
