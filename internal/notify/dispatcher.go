package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/upwatchdev/upwatch/internal/config"
	"github.com/upwatchdev/upwatch/models"
)

// Dispatcher fans out events to all configured channels.
type Dispatcher struct {
	channels []Channel
}

// NewDispatcher creates a Dispatcher from the given config.
// Only channels with IsConfigured() == true are active. The active set
// is fixed at construction: enabling or disabling a channel in the
// config takes effect at the next launch. The desktop permission is the
// exception; it is re-read on every send.
func NewDispatcher(cfg config.NotifyConfig) *Dispatcher {
	d := &Dispatcher{}

	channels := []Channel{
		NewDesktop(cfg.Desktop),
		NewEmail(cfg.Email),
		NewSMS(cfg.SMS),
	}
	for _, ch := range channels {
		if ch.IsConfigured() {
			d.channels = append(d.channels, ch)
		}
	}
	return d
}

// NewDispatcherWith builds a Dispatcher over explicit channels,
// bypassing configuration gating. Intended for tests.
func NewDispatcherWith(channels ...Channel) *Dispatcher {
	return &Dispatcher{channels: channels}
}

// IsAnyConfigured returns true if at least one channel is ready to send.
func (d *Dispatcher) IsAnyConfigured() bool {
	return len(d.channels) > 0
}

// Notify sends evt to all configured channels. Errors are logged but
// never returned: notification delivery is best-effort.
func (d *Dispatcher) Notify(ctx context.Context, evt Event) {
	for _, ch := range d.channels {
		if err := ch.Send(ctx, evt); err != nil {
			slog.Warn("notify: channel send failed",
				"channel", ch.Name(), "title", evt.Title, "error", err)
		}
	}
}

// StatusChangeEvent renders a status transition as a notification event.
func StatusChangeEvent(change models.StatusChange) Event {
	verb := "is back up"
	if change.To == models.StatusDown {
		verb = "is down"
	}
	return Event{
		Title: fmt.Sprintf("%s %s", change.Name, verb),
		Body: fmt.Sprintf("%s: %s went from %s to %s",
			change.Label, change.Name, change.From, change.To),
		Label: change.Label,
	}
}
