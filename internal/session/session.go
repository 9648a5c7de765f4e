// Package session holds the signed-in user state that gates the
// dashboard and the poll scheduler. Authentication itself is pluggable:
// the shipped LocalProvider is a stand-in that accepts any non-empty
// credentials, so a real OAuth/OIDC provider can be slotted in without
// touching the callers.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/upwatchdev/upwatch/internal/config"
)

const sessionFile = "session.json"

// Session represents a signed-in user.
type Session struct {
	User      string    `json:"user"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

// Provider authenticates a user and mints a session.
type Provider interface {
	// Name identifies the provider (e.g. "local").
	Name() string

	// Authenticate validates the credentials and returns a new session.
	Authenticate(ctx context.Context, user, secret string) (*Session, error)
}

// ErrInvalidCredentials is returned when authentication fails.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrNotSignedIn is returned by Current when no session exists.
var ErrNotSignedIn = errors.New("not signed in")

// LocalProvider accepts any non-empty username/password pair. It exists
// so the rest of the system can be built against the Provider contract
// before a real identity provider is wired in.
type LocalProvider struct{}

func (LocalProvider) Name() string { return "local" }

func (LocalProvider) Authenticate(_ context.Context, user, secret string) (*Session, error) {
	if user == "" || secret == "" {
		return nil, ErrInvalidCredentials
	}
	return &Session{
		User:      user,
		Token:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Save persists the session to the upwatch state directory.
func Save(s *Session) error {
	dir, err := config.Dir()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("serialising session: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, sessionFile), data, 0o600)
}

// Current returns the persisted session, or ErrNotSignedIn.
func Current() (*Session, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(dir, sessionFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotSignedIn
		}
		return nil, fmt.Errorf("reading session: %w", err)
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing session: %w", err)
	}
	if s.Token == "" {
		return nil, ErrNotSignedIn
	}
	return &s, nil
}

// Clear removes the persisted session. Clearing an absent session is a
// no-op.
func Clear() error {
	dir, err := config.Dir()
	if err != nil {
		return err
	}
	err = os.Remove(filepath.Join(dir, sessionFile))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
