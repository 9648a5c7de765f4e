// Package source retrieves raw status data from Upptime-style GitHub
// repositories: a summary JSON document plus the open and closed issue
// lists that serve as incident history.
//
// Every query is independently fault-tolerant. A network error, a
// non-success response, or an unparseable body yields an empty result
// for that query only; nothing escapes the fetch boundary. There is no
// retry and no backoff.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"
	"golang.org/x/sync/errgroup"

	"github.com/upwatchdev/upwatch/internal/config"
)

// issuePageSize caps how many issues are pulled per state per source.
const issuePageSize = 30

// summaryURL is where Upptime publishes the per-service summary.
const summaryURL = "https://raw.githubusercontent.com/%s/%s/HEAD/history/summary.json"

// Fetcher pulls raw data for configured sources.
type Fetcher struct {
	http *http.Client
	gh   *github.Client

	// summaryBase overrides the summary host in tests.
	summaryBase string
}

// Option customises a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient replaces the HTTP client used for summary fetches.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) { f.http = c }
}

// WithGitHubClient replaces the issue-list client.
func WithGitHubClient(c *github.Client) Option {
	return func(f *Fetcher) { f.gh = c }
}

// WithSummaryBase points summary fetches at an alternative base URL,
// formatted with owner and repo like summaryURL.
func WithSummaryBase(base string) Option {
	return func(f *Fetcher) { f.summaryBase = base }
}

// New returns a Fetcher. A GitHub token, when configured, raises the
// API rate limit; everything works unauthenticated.
func New(cfg config.GitHubConfig, opts ...Option) *Fetcher {
	httpClient := &http.Client{Timeout: 15 * time.Second}

	ghHTTP := http.DefaultClient
	if cfg.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
		ghHTTP = oauth2.NewClient(context.Background(), ts)
	}

	f := &Fetcher{
		http:        httpClient,
		gh:          github.NewClient(ghHTTP),
		summaryBase: summaryURL,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch retrieves the summary and both issue lists for src. The three
// queries run concurrently; each swallows its own failure into an empty
// result, so Fetch itself never fails and one bad query never blocks or
// corrupts the others.
func (f *Fetcher) Fetch(ctx context.Context, src config.Source) Data {
	var data Data

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data.Summary = f.FetchSummary(gctx, src)
		return nil
	})
	g.Go(func() error {
		data.Open = f.FetchIssues(gctx, src, "open")
		return nil
	})
	g.Go(func() error {
		data.Closed = f.FetchIssues(gctx, src, "closed")
		return nil
	})
	_ = g.Wait() // goroutines never return an error

	return data
}

// FetchSummary GETs the source's summary document and decodes it as a
// JSON array of raw entries. Returns nil on any failure.
func (f *Fetcher) FetchSummary(ctx context.Context, src config.Source) []RawSummary {
	url := fmt.Sprintf(f.summaryBase, src.Owner, src.Repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		slog.Debug("summary: build request failed", "source", src.Key(), "error", err)
		return nil
	}

	resp, err := f.http.Do(req)
	if err != nil {
		slog.Debug("summary: fetch failed", "source", src.Key(), "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		slog.Debug("summary: unexpected status",
			"source", src.Key(), "status", resp.StatusCode, "body", string(b))
		return nil
	}

	var entries []RawSummary
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		slog.Debug("summary: decode failed", "source", src.Key(), "error", err)
		return nil
	}
	return entries
}

// FetchIssues lists the source's issues in the given state ("open" or
// "closed"), capped at one page. Returns nil on any failure.
func (f *Fetcher) FetchIssues(ctx context.Context, src config.Source, state string) []*github.Issue {
	issues, _, err := f.gh.Issues.ListByRepo(ctx, src.Owner, src.Repo, &github.IssueListByRepoOptions{
		State:       state,
		ListOptions: github.ListOptions{PerPage: issuePageSize},
	})
	if err != nil {
		slog.Debug("issues: fetch failed",
			"source", src.Key(), "state", state, "error", err)
		return nil
	}
	return issues
}
