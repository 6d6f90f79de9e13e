package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/devwrapped/devwrapped/internal/githubclient"
	"github.com/devwrapped/devwrapped/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var analysisNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

// fakeGitHub serves the minimal API surface one analysis run touches.
type fakeGitHub struct {
	events      []interface{}
	repos       []interface{}
	searchTotal int
	searchFail  bool
	searchSleep time.Duration
	feedSleep   time.Duration
}

func (f *fakeGitHub) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/octocat", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{
			"login":        "octocat",
			"avatar_url":   "https://example.com/avatar.png",
			"html_url":     "https://github.com/octocat",
			"public_repos": 8,
			"followers":    42,
			"following":    7,
			"bio":          "I build things.",
			"created_at":   "2015-01-01T00:00:00Z",
		})
	})
	mux.HandleFunc("/users/octocat/events", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(f.feedSleep)
		writeJSON(w, f.events)
	})
	mux.HandleFunc("/users/octocat/received_events", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(f.feedSleep)
		writeJSON(w, []interface{}{})
	})
	mux.HandleFunc("/users/octocat/repos", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(f.feedSleep)
		writeJSON(w, f.repos)
	})
	mux.HandleFunc("/search/commits", func(w http.ResponseWriter, r *http.Request) {
		if f.searchSleep > 0 {
			time.Sleep(f.searchSleep)
		}
		if f.searchFail {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, map[string]interface{}{
			"total_count":        f.searchTotal,
			"incomplete_results": false,
			"items":              []interface{}{},
		})
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	return mux
}

func newTestAnalysisService(serverURL string) *AnalysisService {
	client := githubclient.New(serverURL, "")
	svc := NewAnalysisService(
		client,
		NewEventCollectorService(client, time.Second, 3),
		NewRepoCatalogService(client, time.Second, 3),
		NewCommitReconcilerService(serverURL, "", 200*time.Millisecond),
		10*time.Second,
		time.Second,
	)
	svc.now = func() time.Time { return analysisNow }
	return svc
}

func activeFixture() *fakeGitHub {
	return &fakeGitHub{
		events: []interface{}{
			map[string]interface{}{
				"id":         "1",
				"type":       models.EventTypePush,
				"created_at": "2025-06-14T09:00:00Z",
				"payload": map[string]interface{}{
					"commits": []interface{}{
						map[string]string{"sha": "a"},
						map[string]string{"sha": "b"},
					},
				},
			},
			map[string]interface{}{
				"id":         "2",
				"type":       models.EventTypeIssues,
				"created_at": "2025-06-15T10:00:00Z",
				"payload":    map[string]interface{}{},
			},
		},
		repos: []interface{}{
			map[string]interface{}{
				"name":             "wrapped",
				"html_url":         "https://github.com/octocat/wrapped",
				"description":      "a year in review",
				"language":         "Go",
				"stargazers_count": 10,
				"created_at":       "2025-02-01T00:00:00Z",
				"updated_at":       "2025-03-01T00:00:00Z",
			},
		},
		searchTotal: 87,
	}
}

func TestAnalyzePublishesSearchCountWhenAvailable(t *testing.T) {
	fake := activeFixture()
	server := httptest.NewServer(fake.handler())
	defer server.Close()

	stats, err := newTestAnalysisService(server.URL).Analyze(context.Background(), "octocat", 2025)
	require.NoError(t, err)

	assert.Equal(t, 87, stats.TotalCommits)
	assert.Equal(t, 2025, stats.AnalysisYear)
	assert.Equal(t, "octocat", stats.Username)
	// Push (2 commits) + issue + repo update day.
	assert.Equal(t, 3, stats.ActiveDays)
	assert.Equal(t, 2, stats.Streak)
	assert.Equal(t, 2, stats.LongestStreak)
	assert.Equal(t, 1, stats.ReposCreatedThisYear)
	assert.Equal(t, 10, stats.TotalStarsReceived)
	assert.Equal(t, "June", stats.MostActiveMonth)
	assert.Equal(t, models.PatternSporadic, stats.ActivityPattern)
	require.Len(t, stats.TopLanguages, 1)
	assert.Equal(t, "Go", stats.TopLanguages[0].Name)
	require.Len(t, stats.RecentRepos, 1)
	assert.Equal(t, "wrapped", stats.RecentRepos[0].Name)
	assert.Equal(t, 10, stats.AccountAge)
}

func TestAnalyzeFallsBackWhenSearchFails(t *testing.T) {
	fake := activeFixture()
	fake.searchFail = true
	server := httptest.NewServer(fake.handler())
	defer server.Close()

	stats, err := newTestAnalysisService(server.URL).Analyze(context.Background(), "octocat", 2025)
	require.NoError(t, err)

	// Push weight 2 + issue 1 + repository-touched 1.
	assert.Equal(t, 4, stats.TotalCommits)
}

func TestAnalyzeFallsBackWhenSearchTimesOut(t *testing.T) {
	fake := activeFixture()
	fake.searchSleep = time.Second
	server := httptest.NewServer(fake.handler())
	defer server.Close()

	stats, err := newTestAnalysisService(server.URL).Analyze(context.Background(), "octocat", 2025)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalCommits)
}

func TestAnalyzeGlobalBudgetExceeded(t *testing.T) {
	fake := activeFixture()
	fake.feedSleep = 2 * time.Second
	server := httptest.NewServer(fake.handler())
	defer server.Close()

	client := githubclient.New(server.URL, "")
	svc := NewAnalysisService(
		client,
		NewEventCollectorService(client, time.Second, 3),
		NewRepoCatalogService(client, time.Second, 3),
		NewCommitReconcilerService(server.URL, "", 200*time.Millisecond),
		300*time.Millisecond,
		time.Second,
	)
	svc.now = func() time.Time { return analysisNow }

	stats, err := svc.Analyze(context.Background(), "octocat", 2025)
	assert.ErrorIs(t, err, ErrAnalysisTimeout)
	assert.Nil(t, stats)
}

func TestAnalyzeUnknownUser(t *testing.T) {
	fake := activeFixture()
	server := httptest.NewServer(fake.handler())
	defer server.Close()

	_, err := newTestAnalysisService(server.URL).Analyze(context.Background(), "ghost", 2025)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAnalyzeRateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := newTestAnalysisService(server.URL).Analyze(context.Background(), "octocat", 2025)
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestAnalyzeQuietYear(t *testing.T) {
	fake := &fakeGitHub{events: []interface{}{}, repos: []interface{}{}, searchFail: true}
	server := httptest.NewServer(fake.handler())
	defer server.Close()

	stats, err := newTestAnalysisService(server.URL).Analyze(context.Background(), "octocat", 2025)
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalCommits)
	assert.Equal(t, 0, stats.ActiveDays)
	assert.Equal(t, 0, stats.Streak)
	assert.Equal(t, 0, stats.LongestStreak)
	assert.Equal(t, models.PatternSporadic, stats.ActivityPattern)
	assert.Empty(t, stats.MostActiveMonth)
	require.Len(t, stats.ContributionGrid, 6)
	for _, month := range stats.ContributionGrid {
		assert.Equal(t, 0, month.Count)
	}
}
