package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/upwatchdev/upwatch/models"
)

// IncidentsModel lists incident history with a scrollable body pane for
// the selected incident.
type IncidentsModel struct {
	incidents []models.Incident
	polled    bool
	cursor    int
	body      viewport.Model
	width     int
	height    int
}

// NewIncidentsModel creates an IncidentsModel.
func NewIncidentsModel() IncidentsModel {
	return IncidentsModel{body: viewport.New(40, 8)}
}

// SetResult replaces the incident list wholesale.
func (m *IncidentsModel) SetResult(result models.PollResult) {
	m.incidents = result.Incidents
	m.polled = true
	if m.cursor >= len(m.incidents) {
		m.cursor = max(0, len(m.incidents)-1)
	}
	m.syncBody()
}

func (m *IncidentsModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.body.Width = max(20, w-4)
	m.body.Height = max(4, h/2-4)
	m.syncBody()
}

func (m *IncidentsModel) syncBody() {
	if m.cursor < len(m.incidents) {
		inc := m.incidents[m.cursor]
		body := inc.Body
		if body == "" {
			body = "(no details)"
		}
		m.body.SetContent(body)
		m.body.GotoTop()
	} else {
		m.body.SetContent("")
	}
}

func (m IncidentsModel) Update(msg tea.Msg) (IncidentsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.syncBody()
			}
		case "down", "j":
			if m.cursor < len(m.incidents)-1 {
				m.cursor++
				m.syncBody()
			}
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.body, cmd = m.body.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m IncidentsModel) View() string {
	if !m.polled {
		return panelStyle.Width(max(20, m.width-2)).Render("Waiting for first poll...")
	}
	if len(m.incidents) == 0 {
		return panelStyle.Width(max(20, m.width-2)).Render(
			dimStyle.Render("No incidents reported by any source."))
	}

	lineLimit := max(5, m.height/2-4)
	start := 0
	if m.cursor >= lineLimit {
		start = m.cursor - lineLimit + 1
	}

	rows := ""
	for i := start; i < len(m.incidents) && i < start+lineLimit; i++ {
		inc := m.incidents[i]
		badge := mutedBadgeStyle.Render("closed")
		if inc.State == models.IncidentOpen {
			badge = openBadgeStyle.Render("open")
		}
		row := lipgloss.JoinHorizontal(lipgloss.Left,
			lipgloss.NewStyle().Width(8).Foreground(slate).Render(fmt.Sprintf("#%d", inc.ID)),
			lipgloss.NewStyle().Width(10).Render(badge),
			lipgloss.NewStyle().Width(38).Foreground(ink).Render(truncate(inc.Title, 36)),
			lipgloss.NewStyle().Width(20).Foreground(slate).Render(truncate(inc.Label, 18)),
			dimStyle.Render(inc.UpdatedAt.Format("Jan 02 15:04")),
		)
		if i == m.cursor {
			row = selectedRowStyle.Render(row)
		}
		rows += row + "\n"
	}

	detail := ""
	if m.cursor < len(m.incidents) {
		inc := m.incidents[m.cursor]
		header := panelHeaderStyle.Render(inc.Title)
		link := ""
		if inc.URL != "" {
			link = dimStyle.Render(inc.URL)
		}
		detail = panelStyle.Width(max(20, m.width-2)).Render(
			lipgloss.JoinVertical(lipgloss.Left,
				header,
				link,
				strings.TrimRight(m.body.View(), "\n"),
			),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		panelStyle.Width(max(20, m.width-2)).Render(
			lipgloss.JoinVertical(lipgloss.Left,
				panelHeaderStyle.Render("Incidents"),
				rows,
			),
		),
		detail,
	)
}
