package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upwatchdev/upwatch/internal/config"
)

func TestSettingsToggleSavesToLoadedPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	override := filepath.Join(t.TempDir(), "custom.json")
	cfg := &config.Config{
		Notify: config.NotifyConfig{
			Desktop: config.DesktopNotifyConfig{Enabled: true},
		},
	}
	require.NoError(t, config.Save(cfg, override))

	m := NewSettingsModel(cfg, override)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})

	assert.False(t, m.cfg.Notify.Desktop.Enabled)

	saved, err := config.Load(override)
	require.NoError(t, err)
	assert.False(t, saved.Notify.Desktop.Enabled,
		"toggle must be written back to the file the config came from")

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(home, config.DefaultConfigDir, config.DefaultConfigFile))
	assert.True(t, os.IsNotExist(err),
		"toggling with an explicit config path must not touch the default path")
}

func TestSettingsToggleDefaultPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := &config.Config{}
	m := NewSettingsModel(cfg, "")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})

	assert.True(t, m.cfg.Notify.Email.Enabled)

	saved, err := config.Load("")
	require.NoError(t, err)
	assert.True(t, saved.Notify.Email.Enabled)
}

func TestSettingsToggleEachChannel(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := &config.Config{}
	m := NewSettingsModel(cfg, filepath.Join(t.TempDir(), "cfg.json"))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})

	assert.True(t, cfg.Notify.Desktop.Enabled)
	assert.True(t, cfg.Notify.SMS.Enabled)
	assert.False(t, cfg.Notify.Email.Enabled)
}

func TestTruncatePreservesMultibyteRunes(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"short ascii untouched", "api", 10, "api"},
		{"long ascii cut", "monitoring-service", 8, "monitor…"},
		{"multibyte at boundary", "サービス監視ダッシュボード", 5, "サービス…"},
		{"exact rune length untouched", "état", 4, "état"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.limit)
			assert.Equal(t, tt.want, got)
			assert.True(t, len([]rune(got)) <= tt.limit)
		})
	}
}
