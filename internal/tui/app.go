// Package tui is the terminal dashboard. It is a pure consumer of the
// engine: it renders published poll results and status-change events
// and never touches the engine's snapshot.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/upwatchdev/upwatch/internal/config"
	"github.com/upwatchdev/upwatch/internal/notify"
	"github.com/upwatchdev/upwatch/models"
)

// Tab represents a TUI navigation tab.
type Tab int

const (
	TabServices Tab = iota
	TabIncidents
	TabSettings
)

var tabNames = []string{"Services", "Incidents", "Settings"}
var tabCompactNames = []string{"Svc", "Inc", "Set"}

// Engine is the slice of the poll scheduler the dashboard consumes.
type Engine interface {
	Results() <-chan models.PollResult
	Events() <-chan models.StatusChange
	Trigger()
}

// App is the root bubbletea model.
type App struct {
	cfg        *config.Config
	engine     Engine
	dispatcher *notify.Dispatcher
	user       string

	width     int
	height    int
	activeTab Tab
	statusMsg string

	services  ServicesModel
	incidents IncidentsModel
	settings  SettingsModel
}

// NewApp creates the TUI application. The engine must already be
// started; the app only consumes its channels. configPath is the file
// cfg was loaded from (empty for the default location) and is where
// settings changes are written back.
func NewApp(cfg *config.Config, configPath string, eng Engine, dispatcher *notify.Dispatcher, user string) *App {
	return &App{
		cfg:        cfg,
		engine:     eng,
		dispatcher: dispatcher,
		user:       user,
		services:   NewServicesModel(),
		incidents:  NewIncidentsModel(),
		settings:   NewSettingsModel(cfg, configPath),
	}
}

// Run starts the bubbletea program.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.waitForPoll(), a.waitForChange())
}

// waitForPoll blocks on the engine's results channel and re-arms after
// every message until the channel closes.
func (a *App) waitForPoll() tea.Cmd {
	return func() tea.Msg {
		result, ok := <-a.engine.Results()
		if !ok {
			return engineClosedMsg{}
		}
		return pollMsg{result: result}
	}
}

func (a *App) waitForChange() tea.Cmd {
	return func() tea.Msg {
		change, ok := <-a.engine.Events()
		if !ok {
			return engineClosedMsg{}
		}
		return changeMsg{change: change}
	}
}

// notifyCmd hands a status change to the dispatcher off the UI loop.
func (a *App) notifyCmd(change models.StatusChange) tea.Cmd {
	return func() tea.Msg {
		a.dispatcher.Notify(context.Background(), notify.StatusChangeEvent(change))
		return notifiedMsg{change: change}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		contentW := max(20, msg.Width-2)
		contentH := max(8, msg.Height-7)
		a.services.SetSize(contentW, contentH)
		a.incidents.SetSize(contentW, contentH)
		a.settings.SetSize(contentW, contentH)

	case pollMsg:
		a.services.SetResult(msg.result)
		a.incidents.SetResult(msg.result)
		cmds = append(cmds, a.waitForPoll())

	case changeMsg:
		a.statusMsg = msg.change.Name + ": " + msg.change.From.String() + " → " + msg.change.To.String()
		cmds = append(cmds, a.notifyCmd(msg.change), a.waitForChange())

	case notifiedMsg:
		// nothing to do; delivery problems are logged by the dispatcher

	case engineClosedMsg:
		// scheduler stopped: keep rendering the last published result

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "r":
			a.engine.Trigger()
			a.statusMsg = "poll requested"
		case "1":
			a.activeTab = TabServices
		case "2":
			a.activeTab = TabIncidents
		case "3":
			a.activeTab = TabSettings
		case "tab":
			a.activeTab = (a.activeTab + 1) % Tab(len(tabNames))
		case "shift+tab":
			a.activeTab--
			if a.activeTab < 0 {
				a.activeTab = Tab(len(tabNames) - 1)
			}
		}
	}

	// Delegate to active view.
	switch a.activeTab {
	case TabServices:
		newServices, cmd := a.services.Update(msg)
		a.services = newServices
		cmds = append(cmds, cmd)
	case TabIncidents:
		newIncidents, cmd := a.incidents.Update(msg)
		a.incidents = newIncidents
		cmds = append(cmds, cmd)
	case TabSettings:
		newSettings, cmd := a.settings.Update(msg)
		a.settings = newSettings
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

// View implements tea.Model.
func (a *App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	nav := a.renderTabs()

	var content string
	switch a.activeTab {
	case TabServices:
		content = a.services.View()
	case TabIncidents:
		content = a.incidents.View()
	case TabSettings:
		content = a.settings.View()
	}

	contentBox := lipgloss.NewStyle().
		Width(a.width).
		Padding(0, 1).
		MaxHeight(max(1, a.height-4)).
		Render(content)

	statusLine := "tab next  shift+tab prev  1-3 jump  r poll now  q quit"
	if a.statusMsg != "" {
		statusLine = a.statusMsg + "   " + statusLine
	}
	status := lipgloss.NewStyle().
		Width(a.width).
		Padding(0, 1).
		Foreground(slateDim).
		Render(statusLine)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		nav,
		contentBox,
		status,
	)
}

func (a *App) renderHeader() string {
	row := lipgloss.JoinHorizontal(lipgloss.Left,
		titleStyle.Render("upwatch"),
		"  ",
		dimStyle.Render("status dashboard"),
		"  ",
		mutedBadgeStyle.Render(" "+a.user+" "),
	)
	return lipgloss.NewStyle().
		BorderBottom(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(line).
		Width(a.width).
		Padding(0, 1).
		Render(row)
}

func (a *App) renderTabs() string {
	labels := tabNames
	rendered := a.renderTabLabels(labels)
	maxWidth := max(10, a.width-2)
	if lipgloss.Width(rendered) > maxWidth {
		rendered = a.renderTabLabels(tabCompactNames)
	}

	return lipgloss.NewStyle().
		Width(a.width).
		Padding(0, 1).
		Render(rendered)
}

func (a *App) renderTabLabels(labels []string) string {
	parts := make([]string, 0, len(labels))
	for i, name := range labels {
		if Tab(i) == a.activeTab {
			parts = append(parts, activeTabStyle.Render(name))
		} else {
			parts = append(parts, tabStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
