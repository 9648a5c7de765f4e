package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/upwatchdev/upwatch/internal/config"
	"github.com/upwatchdev/upwatch/internal/notify"
)

// SettingsModel shows the notification channel settings. Toggles are
// persisted immediately; email and SMS are visible but marked as coming
// soon since delivery is not implemented.
type SettingsModel struct {
	cfg *config.Config
	// configPath is the file the config was loaded from. Empty means
	// the default location. Saves must go back to the same file.
	configPath string
	width      int
	height     int
}

// NewSettingsModel creates a SettingsModel that persists toggles to
// configPath.
func NewSettingsModel(cfg *config.Config, configPath string) SettingsModel {
	return SettingsModel{cfg: cfg, configPath: configPath}
}

func (m *SettingsModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "d":
		m.cfg.Notify.Desktop.Enabled = !m.cfg.Notify.Desktop.Enabled
		m.save()
	case "e":
		m.cfg.Notify.Email.Enabled = !m.cfg.Notify.Email.Enabled
		m.save()
	case "s":
		m.cfg.Notify.SMS.Enabled = !m.cfg.Notify.SMS.Enabled
		m.save()
	case "g":
		if err := notify.SetPermission(true); err != nil {
			slog.Warn("settings: granting permission failed", "error", err)
		}
	case "x":
		if err := notify.SetPermission(false); err != nil {
			slog.Warn("settings: denying permission failed", "error", err)
		}
	}
	return m, nil
}

func (m SettingsModel) save() {
	if err := config.Save(m.cfg, m.configPath); err != nil {
		slog.Warn("settings: saving config failed", "error", err)
	}
}

func (m SettingsModel) View() string {
	perm := notify.PermissionState()
	permBadge := mutedBadgeStyle.Render(string(perm))
	if perm == notify.PermissionGranted {
		permBadge = upBadgeStyle.Render(string(perm))
	} else if perm == notify.PermissionDenied {
		permBadge = downBadgeStyle.Render(string(perm))
	}

	desktop := lipgloss.JoinHorizontal(lipgloss.Left,
		lipgloss.NewStyle().Width(12).Foreground(ink).Render("Desktop"),
		lipgloss.NewStyle().Width(12).Render(enabledBadge(m.cfg.Notify.Desktop.Enabled)),
		dimStyle.Render("permission "),
		permBadge,
	)

	email := lipgloss.JoinHorizontal(lipgloss.Left,
		lipgloss.NewStyle().Width(12).Foreground(ink).Render("Email"),
		lipgloss.NewStyle().Width(12).Render(enabledBadge(m.cfg.Notify.Email.Enabled)),
		lipgloss.NewStyle().Width(28).Foreground(slate).Render(orPlaceholder(m.cfg.Notify.Email.Address, "no address")),
		openBadgeStyle.Render("coming soon"),
	)

	sms := lipgloss.JoinHorizontal(lipgloss.Left,
		lipgloss.NewStyle().Width(12).Foreground(ink).Render("SMS"),
		lipgloss.NewStyle().Width(12).Render(enabledBadge(m.cfg.Notify.SMS.Enabled)),
		lipgloss.NewStyle().Width(28).Foreground(slate).Render(orPlaceholder(m.cfg.Notify.SMS.Number, "no number")),
		openBadgeStyle.Render("coming soon"),
	)

	keys := lipgloss.JoinHorizontal(lipgloss.Left,
		keycapStyle.Render("d"), " ", dimStyle.Render("desktop"), "  ",
		keycapStyle.Render("e"), " ", dimStyle.Render("email"), "  ",
		keycapStyle.Render("s"), " ", dimStyle.Render("sms"), "  ",
		keycapStyle.Render("g"), " ", dimStyle.Render("grant"), "  ",
		keycapStyle.Render("x"), " ", dimStyle.Render("deny"),
	)

	return panelStyle.Width(max(20, m.width-2)).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			panelHeaderStyle.Render("Notifications"),
			"",
			desktop,
			email,
			sms,
			"",
			dimStyle.Render("Email and SMS settings are saved but delivery is not implemented yet."),
			dimStyle.Render("Channel toggles apply at the next launch. Permission changes apply immediately."),
			keys,
		),
	)
}

func enabledBadge(on bool) string {
	if on {
		return upBadgeStyle.Render("enabled")
	}
	return mutedBadgeStyle.Render("off")
}

func orPlaceholder(v, placeholder string) string {
	if v == "" {
		return placeholder
	}
	return v
}
