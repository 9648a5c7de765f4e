package source

import "github.com/google/go-github/v68/github"

// RawSummary is one entry of a status repository's summary document.
// All fields are optional upstream; missing status maps to down at the
// mapping stage, and missing numerics stay nil.
type RawSummary struct {
	Name         string   `json:"name"`
	Status       string   `json:"status"`
	ResponseTime *float64 `json:"responseTime"`
	Uptime       *float64 `json:"uptime"`
}

// Data bundles everything fetched for one source in one cycle. Any of
// the slices may be empty when the corresponding query failed.
type Data struct {
	Summary []RawSummary
	Open    []*github.Issue
	Closed  []*github.Issue
}
