package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/upwatchdev/upwatch/models"
)

// ServicesModel shows the health overview: up/down counters and one row
// per monitored service.
type ServicesModel struct {
	result models.PollResult
	polled bool
	width  int
	height int
}

// NewServicesModel creates a ServicesModel.
func NewServicesModel() ServicesModel {
	return ServicesModel{}
}

// SetResult replaces the rendered poll result wholesale.
func (s *ServicesModel) SetResult(result models.PollResult) {
	s.result = result
	s.polled = true
}

func (s *ServicesModel) SetSize(w, h int) {
	s.width = w
	s.height = h
}

func (s ServicesModel) Update(tea.Msg) (ServicesModel, tea.Cmd) {
	return s, nil
}

func (s ServicesModel) View() string {
	if !s.polled {
		return panelStyle.Width(max(20, s.width-2)).Render("Waiting for first poll...")
	}

	var up, down int
	for _, svc := range s.result.Services {
		if svc.Status == models.StatusUp {
			up++
		} else {
			down++
		}
	}

	cardW := 18
	if s.width >= 100 {
		cardW = 20
	}
	summary := lipgloss.JoinHorizontal(lipgloss.Top,
		renderCounter("Up", up, upStyle, cardW),
		renderCounter("Down", down, downStyle, cardW),
		renderCounter("Incidents", len(s.result.Incidents), dimStyle, cardW),
	)

	lineLimit := max(5, s.height-12)
	rows := ""
	for i, svc := range s.result.Services {
		if i >= lineLimit {
			break
		}
		badge := upBadgeStyle.Render("up")
		if svc.Status == models.StatusDown {
			badge = downBadgeStyle.Render("down")
		}
		resp := "—"
		if svc.ResponseTime != nil {
			resp = fmt.Sprintf("%.0f ms", *svc.ResponseTime)
		}
		uptime := "—"
		if svc.Uptime != nil {
			uptime = fmt.Sprintf("%.2f%%", *svc.Uptime)
		}
		row := lipgloss.JoinHorizontal(lipgloss.Left,
			lipgloss.NewStyle().Width(28).Foreground(ink).Render(truncate(svc.Name, 26)),
			lipgloss.NewStyle().Width(22).Foreground(slate).Render(truncate(svc.Label, 20)),
			lipgloss.NewStyle().Width(10).Render(badge),
			lipgloss.NewStyle().Width(12).Foreground(slate).Render(resp),
			dimStyle.Render(uptime),
		)
		rows += row + "\n"
	}

	if len(s.result.Services) == 0 {
		rows = dimStyle.Render("No services reported this cycle.\n")
	}

	refreshInfo := lipgloss.JoinHorizontal(lipgloss.Left,
		keycapStyle.Render("r"),
		" ",
		dimStyle.Render("poll now"),
		"   ",
		dimStyle.Render("updated "+s.result.Timestamp.Format("15:04:05")),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Padding(0, 1).Render(summary),
		panelStyle.Width(max(20, s.width-2)).Render(
			lipgloss.JoinVertical(lipgloss.Left,
				panelHeaderStyle.Render("Services"),
				dimStyle.Render("Name                        Source                Status    Response    Uptime"),
				rows,
				refreshInfo,
			),
		),
	)
}

func renderCounter(label string, count int, style lipgloss.Style, width int) string {
	return boxStyle.Width(width).Render(
		lipgloss.JoinVertical(lipgloss.Center,
			style.Bold(true).Render(fmt.Sprintf("%d", count)),
			dimStyle.Render(strings.ToUpper(label)),
		),
	) + "  "
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}
