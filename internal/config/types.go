package config

import "time"

// Config is the root configuration structure for upwatch.
// Serialised to ~/.upwatch/config.json.
type Config struct {
	Sources []Source     `mapstructure:"sources" json:"sources"`
	Poll    PollConfig   `mapstructure:"poll"    json:"poll"`
	Notify  NotifyConfig `mapstructure:"notify"  json:"notify"`
	GitHub  GitHubConfig `mapstructure:"github"  json:"github"`
}

// Source identifies one status repository to monitor. The list is fixed
// for the lifetime of a running dashboard.
type Source struct {
	Owner string `mapstructure:"owner" json:"owner" yaml:"owner"`
	Repo  string `mapstructure:"repo"  json:"repo"  yaml:"repo"`
	// Label is the display name shown in the dashboard and carried on
	// every service and incident. Defaults to owner/repo.
	Label string `mapstructure:"label" json:"label" yaml:"label,omitempty"`
}

// Key returns the canonical owner/repo identifier for the source.
func (s Source) Key() string {
	return s.Owner + "/" + s.Repo
}

// DisplayLabel returns the configured label, falling back to Key.
func (s Source) DisplayLabel() string {
	if s.Label != "" {
		return s.Label
	}
	return s.Key()
}

// PollConfig controls the poll cadence.
type PollConfig struct {
	// IntervalSeconds is the fixed time between poll cycles.
	IntervalSeconds int `mapstructure:"interval_seconds" json:"interval_seconds"`
}

// Interval returns the poll interval as a duration, defaulting to a
// minute when unset.
func (p PollConfig) Interval() time.Duration {
	if p.IntervalSeconds <= 0 {
		return DefaultPollInterval
	}
	return time.Duration(p.IntervalSeconds) * time.Second
}

// GitHubConfig holds the optional API credential. Public status
// repositories work unauthenticated, at the cost of a lower rate limit.
type GitHubConfig struct {
	Token string `mapstructure:"token" json:"token"`
}

// NotifyConfig configures the notification channels.
type NotifyConfig struct {
	Desktop DesktopNotifyConfig `mapstructure:"desktop" json:"desktop"`
	Email   EmailNotifyConfig   `mapstructure:"email"   json:"email"`
	SMS     SMSNotifyConfig     `mapstructure:"sms"     json:"sms"`
}

// DesktopNotifyConfig enables the desktop channel. Delivery is still
// gated by the runtime notification permission.
type DesktopNotifyConfig struct {
	Enabled bool `mapstructure:"enabled" json:"enabled"`
}

// EmailNotifyConfig is accepted and persisted but delivery is not yet
// implemented.
type EmailNotifyConfig struct {
	Enabled bool   `mapstructure:"enabled" json:"enabled"`
	Address string `mapstructure:"address" json:"address"`
}

// SMSNotifyConfig is accepted and persisted but delivery is not yet
// implemented.
type SMSNotifyConfig struct {
	Enabled bool   `mapstructure:"enabled" json:"enabled"`
	Number  string `mapstructure:"number"  json:"number"`
}
