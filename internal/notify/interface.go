package notify

import "context"

// Event represents a user-facing notification from upwatch.
type Event struct {
	Title string
	Body  string
	Label string // source display label
	URL   string // optional deep link (e.g. incident URL)
}

// Channel is implemented by each notification provider.
type Channel interface {
	Name() string
	IsConfigured() bool
	Send(ctx context.Context, evt Event) error
}
