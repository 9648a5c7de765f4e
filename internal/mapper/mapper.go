// Package mapper normalises raw source data into the unified service
// and incident model. Mapping is pure and deterministic: identical raw
// input always yields identical output, order preserved.
package mapper

import (
	"github.com/google/go-github/v68/github"

	"github.com/upwatchdev/upwatch/internal/config"
	"github.com/upwatchdev/upwatch/internal/source"
	"github.com/upwatchdev/upwatch/models"
)

// Services maps raw summary entries to Service records. A raw status of
// "up" maps to up; anything else, including an absent status, maps to
// down. No entry is dropped for shape reasons.
func Services(src config.Source, raw []source.RawSummary) []models.Service {
	services := make([]models.Service, 0, len(raw))
	for _, entry := range raw {
		services = append(services, models.Service{
			ID:           models.ServiceID(src.Key(), entry.Name),
			Label:        src.DisplayLabel(),
			Name:         entry.Name,
			Status:       models.ParseStatus(entry.Status),
			ResponseTime: entry.ResponseTime,
			Uptime:       entry.Uptime,
		})
	}
	return services
}

// Incidents maps the open and closed issue lists to Incident records,
// open first, source order preserved. The union is not deduplicated; an
// issue that changes state mid-poll may appear under both states.
func Incidents(src config.Source, open, closed []*github.Issue) []models.Incident {
	incidents := make([]models.Incident, 0, len(open)+len(closed))
	for _, issue := range open {
		incidents = append(incidents, mapIssue(src, issue))
	}
	for _, issue := range closed {
		incidents = append(incidents, mapIssue(src, issue))
	}
	return incidents
}

func mapIssue(src config.Source, issue *github.Issue) models.Incident {
	return models.Incident{
		ID:        issue.GetNumber(),
		Label:     src.DisplayLabel(),
		Title:     issue.GetTitle(),
		State:     models.IncidentState(issue.GetState()),
		CreatedAt: issue.GetCreatedAt().Time,
		UpdatedAt: issue.GetUpdatedAt().Time,
		URL:       issue.GetHTMLURL(),
		Body:      issue.GetBody(),
	}
}
