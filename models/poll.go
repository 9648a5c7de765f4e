package models

import "time"

// PollResult is the merged outcome of one completed poll cycle. It is
// replaced wholesale each cycle, never merged incrementally.
type PollResult struct {
	Services  []Service  `json:"services"`
	Incidents []Incident `json:"incidents"`
	// Timestamp advances every completed cycle, even when every source
	// failed and both lists are empty. It is how the display layer tells
	// "no data yet" apart from "everything empty".
	Timestamp time.Time `json:"timestamp"`
}

// StatusChange records a service status transition between two
// consecutive polls.
type StatusChange struct {
	ServiceID string `json:"service_id"`
	Name      string `json:"name"`
	Label     string `json:"label"`
	From      Status `json:"from"`
	To        Status `json:"to"`
}
