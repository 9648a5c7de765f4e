package notify

import (
	"context"
	"log/slog"

	"github.com/upwatchdev/upwatch/internal/config"
)

// SMSChannel accepts a number and an enabled flag but does not yet
// deliver anything. Same "coming soon" contract as EmailChannel.
type SMSChannel struct {
	cfg config.SMSNotifyConfig
}

// NewSMS creates an SMSChannel from cfg.
func NewSMS(cfg config.SMSNotifyConfig) *SMSChannel { return &SMSChannel{cfg: cfg} }

func (s *SMSChannel) Name() string { return "sms" }

func (s *SMSChannel) IsConfigured() bool {
	return s.cfg.Enabled && s.cfg.Number != ""
}

func (s *SMSChannel) Send(_ context.Context, evt Event) error {
	slog.Info("sms notifications are not implemented yet",
		"number", s.cfg.Number, "title", evt.Title)
	return nil
}
