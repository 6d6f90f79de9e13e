package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// CommitReconcilerService asks the commit-search index for an
// authoritative year-scoped commit count. The search index covers the
// whole year while the events feed does not, so when the query succeeds
// its count is trusted over the event-derived estimate. The query runs
// under its own short timeout and its failure is always recoverable.
type CommitReconcilerService struct {
	gh      *github.Client
	timeout time.Duration
}

func NewCommitReconcilerService(baseURL, token string, timeout time.Duration) *CommitReconcilerService {
	httpClient := oauth2.NewClient(context.Background(), nil)
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	gh := github.NewClient(httpClient)
	if base, err := url.Parse(strings.TrimSuffix(baseURL, "/") + "/"); err == nil {
		gh.BaseURL = base
	}

	return &CommitReconcilerService{
		gh:      gh,
		timeout: timeout,
	}
}

// YearCommitCount returns the number of commits the search index
// attributes to username within year.
func (s *CommitReconcilerService) YearCommitCount(ctx context.Context, username string, year int) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	query := fmt.Sprintf("author:%s committer-date:%d-01-01..%d-12-31", username, year, year)
	opts := &github.SearchOptions{ListOptions: github.ListOptions{PerPage: 1}}

	result, _, err := s.gh.Search.Commits(ctx, query, opts)
	if err != nil {
		return 0, fmt.Errorf("commit search failed: %w", err)
	}
	return result.GetTotal(), nil
}
