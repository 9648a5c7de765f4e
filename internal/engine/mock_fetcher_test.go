package engine

import (
	"context"

	"github.com/google/go-github/v68/github"

	"github.com/upwatchdev/upwatch/internal/config"
	"github.com/upwatchdev/upwatch/internal/source"
)

// mockFetcher implements SourceFetcher for testing. Per-source data is
// keyed by Source.Key(); unknown sources behave like a total fetch
// failure (empty contribution).
type mockFetcher struct {
	data map[string]source.Data

	// FetchFn overrides the default behaviour when set.
	FetchFn func(ctx context.Context, src config.Source) source.Data
}

func (m *mockFetcher) Fetch(ctx context.Context, src config.Source) source.Data {
	if m.FetchFn != nil {
		return m.FetchFn(ctx, src)
	}
	return m.data[src.Key()]
}

func rawEntry(name, status string) source.RawSummary {
	return source.RawSummary{Name: name, Status: status}
}

func openIssue(number int, title string) *github.Issue {
	state := "open"
	return &github.Issue{
		Number: &number,
		Title:  &title,
		State:  &state,
	}
}
