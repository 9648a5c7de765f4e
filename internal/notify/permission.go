package notify

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/upwatchdev/upwatch/internal/config"
)

// Permission is the user's answer to the one-time desktop notification
// prompt.
type Permission string

const (
	PermissionNotRequested Permission = "not-requested"
	PermissionGranted      Permission = "granted"
	PermissionDenied       Permission = "denied"
)

const permissionFile = "notify_permission"

// PermissionState reads the current persisted permission. The state is
// re-read on every call rather than cached: it can be revoked out of
// band between sends.
func PermissionState() Permission {
	dir, err := config.Dir()
	if err != nil {
		return PermissionNotRequested
	}
	data, err := os.ReadFile(filepath.Join(dir, permissionFile))
	if err != nil {
		return PermissionNotRequested
	}
	switch Permission(strings.TrimSpace(string(data))) {
	case PermissionGranted:
		return PermissionGranted
	case PermissionDenied:
		return PermissionDenied
	default:
		return PermissionNotRequested
	}
}

// SetPermission persists the user's answer to the permission prompt.
func SetPermission(granted bool) error {
	dir, err := config.Dir()
	if err != nil {
		return err
	}
	state := PermissionDenied
	if granted {
		state = PermissionGranted
	}
	return os.WriteFile(filepath.Join(dir, permissionFile), []byte(state+"\n"), 0o600)
}

// ResetPermission returns the state to not-requested, so the prompt is
// shown again.
func ResetPermission() error {
	dir, err := config.Dir()
	if err != nil {
		return err
	}
	err = os.Remove(filepath.Join(dir, permissionFile))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
