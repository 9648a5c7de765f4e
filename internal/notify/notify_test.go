package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upwatchdev/upwatch/internal/config"
	"github.com/upwatchdev/upwatch/models"
)

// stubChannel records sends for dispatcher tests.
type stubChannel struct {
	name       string
	configured bool
	sent       []Event
	err        error
}

func (s *stubChannel) Name() string       { return s.name }
func (s *stubChannel) IsConfigured() bool { return s.configured }
func (s *stubChannel) Send(_ context.Context, evt Event) error {
	s.sent = append(s.sent, evt)
	return s.err
}

func newDesktopWith(perm Permission, deliverErr error) (*DesktopChannel, *[]string) {
	var delivered []string
	d := NewDesktop(config.DesktopNotifyConfig{Enabled: true})
	d.permission = func() Permission { return perm }
	d.deliver = func(title, body string) error {
		delivered = append(delivered, title)
		return deliverErr
	}
	return d, &delivered
}

func TestDesktopSendRequiresGrantedPermission(t *testing.T) {
	cases := []struct {
		name    string
		perm    Permission
		wantErr bool
	}{
		{"granted delivers", PermissionGranted, false},
		{"denied refuses", PermissionDenied, true},
		{"not requested refuses", PermissionNotRequested, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, delivered := newDesktopWith(tc.perm, nil)
			err := d.Send(context.Background(), Event{Title: "api is down"})
			if tc.wantErr {
				assert.Error(t, err)
				assert.Empty(t, *delivered)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, []string{"api is down"}, *delivered)
			}
		})
	}
}

func TestDesktopPermissionCheckedPerSend(t *testing.T) {
	// Permission is consulted on every send, so an external revocation
	// takes effect immediately.
	perm := PermissionGranted
	d, delivered := newDesktopWith(PermissionGranted, nil)
	d.permission = func() Permission { return perm }

	require.NoError(t, d.Send(context.Background(), Event{Title: "one"}))

	perm = PermissionDenied
	assert.Error(t, d.Send(context.Background(), Event{Title: "two"}))
	assert.Equal(t, []string{"one"}, *delivered)
}

func TestDesktopDeliverFailureIsWrapped(t *testing.T) {
	d, _ := newDesktopWith(PermissionGranted, errors.New("no dbus"))
	err := d.Send(context.Background(), Event{Title: "api is down"})
	assert.ErrorContains(t, err, "no dbus")
}

func TestPermissionStateRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	assert.Equal(t, PermissionNotRequested, PermissionState())

	require.NoError(t, SetPermission(true))
	assert.Equal(t, PermissionGranted, PermissionState())

	require.NoError(t, SetPermission(false))
	assert.Equal(t, PermissionDenied, PermissionState())

	require.NoError(t, ResetPermission())
	assert.Equal(t, PermissionNotRequested, PermissionState())
	require.NoError(t, ResetPermission()) // idempotent
}

func TestDispatcherGatesOnConfiguration(t *testing.T) {
	d := NewDispatcher(config.NotifyConfig{
		Desktop: config.DesktopNotifyConfig{Enabled: false},
		Email:   config.EmailNotifyConfig{Enabled: true}, // no address
		SMS:     config.SMSNotifyConfig{Enabled: false, Number: "+15550100"},
	})
	assert.False(t, d.IsAnyConfigured())

	d = NewDispatcher(config.NotifyConfig{
		Email: config.EmailNotifyConfig{Enabled: true, Address: "ops@example.com"},
	})
	assert.True(t, d.IsAnyConfigured())
}

func TestDispatcherFansOutAndSwallowsErrors(t *testing.T) {
	broken := &stubChannel{name: "broken", configured: true, err: errors.New("boom")}
	healthy := &stubChannel{name: "healthy", configured: true}
	d := NewDispatcherWith(broken, healthy)

	d.Notify(context.Background(), Event{Title: "api is down"})

	// The failing channel must not stop the healthy one.
	require.Len(t, healthy.sent, 1)
	assert.Equal(t, "api is down", healthy.sent[0].Title)
	assert.Len(t, broken.sent, 1)
}

func TestStubChannelsNeverDeliver(t *testing.T) {
	email := NewEmail(config.EmailNotifyConfig{Enabled: true, Address: "ops@example.com"})
	sms := NewSMS(config.SMSNotifyConfig{Enabled: true, Number: "+15550100"})

	// "Coming soon" stubs accept configuration and report success
	// without doing anything.
	assert.True(t, email.IsConfigured())
	assert.True(t, sms.IsConfigured())
	assert.NoError(t, email.Send(context.Background(), Event{Title: "x"}))
	assert.NoError(t, sms.Send(context.Background(), Event{Title: "x"}))
}

func TestStatusChangeEvent(t *testing.T) {
	evt := StatusChangeEvent(models.StatusChange{
		ServiceID: "acme/status#api",
		Name:      "api",
		Label:     "Acme",
		From:      models.StatusUp,
		To:        models.StatusDown,
	})
	assert.Equal(t, "api is down", evt.Title)
	assert.Contains(t, evt.Body, "up to down")
	assert.Equal(t, "Acme", evt.Label)

	evt = StatusChangeEvent(models.StatusChange{
		Name: "api", From: models.StatusDown, To: models.StatusUp,
	})
	assert.Equal(t, "api is back up", evt.Title)
}
