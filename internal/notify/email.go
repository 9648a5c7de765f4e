package notify

import (
	"context"
	"log/slog"

	"github.com/upwatchdev/upwatch/internal/config"
)

// EmailChannel accepts an address and an enabled flag but does not yet
// deliver anything. It is a visible "coming soon" stub: settings are
// persisted so enabling real delivery later needs no migration.
type EmailChannel struct {
	cfg config.EmailNotifyConfig
}

// NewEmail creates an EmailChannel from cfg.
func NewEmail(cfg config.EmailNotifyConfig) *EmailChannel { return &EmailChannel{cfg: cfg} }

func (e *EmailChannel) Name() string { return "email" }

func (e *EmailChannel) IsConfigured() bool {
	return e.cfg.Enabled && e.cfg.Address != ""
}

func (e *EmailChannel) Send(_ context.Context, evt Event) error {
	slog.Info("email notifications are not implemented yet",
		"address", e.cfg.Address, "title", evt.Title)
	return nil
}
