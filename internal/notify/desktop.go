package notify

import (
	"context"
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/upwatchdev/upwatch/internal/config"
)

// DesktopChannel delivers platform desktop notifications. Delivery is
// gated by the persisted notification permission, checked on every send.
type DesktopChannel struct {
	cfg config.DesktopNotifyConfig

	// permission allows tests to stub the persisted permission lookup.
	permission func() Permission
	// deliver allows tests to stub the platform notification call.
	deliver func(title, body string) error
}

// NewDesktop creates a DesktopChannel from cfg.
func NewDesktop(cfg config.DesktopNotifyConfig) *DesktopChannel {
	return &DesktopChannel{
		cfg:        cfg,
		permission: PermissionState,
		deliver: func(title, body string) error {
			return beeep.Notify(title, body, "")
		},
	}
}

func (d *DesktopChannel) Name() string { return "desktop" }

func (d *DesktopChannel) IsConfigured() bool { return d.cfg.Enabled }

// Send fires a desktop notification, unless permission is missing or
// has been revoked since it was granted.
func (d *DesktopChannel) Send(_ context.Context, evt Event) error {
	switch d.permission() {
	case PermissionGranted:
	case PermissionDenied:
		return fmt.Errorf("desktop: notification permission denied")
	default:
		return fmt.Errorf("desktop: notification permission not requested")
	}

	body := evt.Body
	if evt.URL != "" {
		body += "\n" + evt.URL
	}
	if err := d.deliver(evt.Title, body); err != nil {
		return fmt.Errorf("desktop: deliver: %w", err)
	}
	return nil
}
