package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"sync"
	"time"

	"github.com/devwrapped/devwrapped/internal/githubclient"
	"github.com/devwrapped/devwrapped/internal/models"
	"github.com/devwrapped/devwrapped/pkg/logger"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	topLanguageCount = 3
	recentRepoCount  = 5
)

// AnalysisService runs one full year-in-review analysis: profile lookup,
// concurrent event and repository collection, aggregation, streaks and a
// best-effort commit-count reconciliation. Each run is independent;
// nothing is cached or shared between runs.
type AnalysisService struct {
	client       *githubclient.Client
	events       *EventCollectorService
	repos        *RepoCatalogService
	reconciler   *CommitReconcilerService
	budget       time.Duration
	fetchTimeout time.Duration
	now          func() time.Time
}

func NewAnalysisService(
	client *githubclient.Client,
	events *EventCollectorService,
	repos *RepoCatalogService,
	reconciler *CommitReconcilerService,
	budget time.Duration,
	fetchTimeout time.Duration,
) *AnalysisService {
	return &AnalysisService{
		client:       client,
		events:       events,
		repos:        repos,
		reconciler:   reconciler,
		budget:       budget,
		fetchTimeout: fetchTimeout,
		now:          time.Now,
	}
}

// Analyze builds the published YearStats for username and year. A zero
// year means the current year. The whole run is bounded by the global
// budget; only the fatal errors in errors.go come back, everything else
// degrades inside its component.
func (s *AnalysisService) Analyze(ctx context.Context, username string, year int) (*models.YearStats, error) {
	now := s.now().UTC()
	if year == 0 {
		year = now.Year()
	}

	ctx, cancel := context.WithTimeout(ctx, s.budget)
	defer cancel()

	log := logger.WithFields(logrus.Fields{
		"run_id":   uuid.New().String(),
		"username": username,
		"year":     year,
	})
	log.Info("starting analysis run")

	var profile models.UserProfile
	if err := s.client.Get(ctx, "/users/"+url.PathEscape(username), s.fetchTimeout, &profile); err != nil {
		return nil, classifyFetchError(err, ErrUpstreamUnavailable)
	}

	var (
		events  []models.ActivityEvent
		repos   []models.RepositorySummary
		repoErr error
		wg      sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		events = s.events.Collect(ctx, username, year, now)
	}()
	go func() {
		defer wg.Done()
		repos, repoErr = s.repos.Collect(ctx, username)
	}()
	wg.Wait()

	if ctx.Err() == context.DeadlineExceeded {
		return nil, fmt.Errorf("analysis of %s: %w", username, ErrAnalysisTimeout)
	}
	if repoErr != nil {
		return nil, classifyFetchError(repoErr, ErrNoRepositories)
	}

	agg := Aggregate(events, repos, year, now)
	stats := s.buildStats(&profile, repos, agg, year, now)

	// Reconciliation runs last so a failure here can never cost us the
	// rest of the result.
	if count, err := s.reconciler.YearCommitCount(ctx, username, year); err != nil {
		log.WithError(err).Info("commit search unavailable, publishing aggregated total")
	} else {
		stats.TotalCommits = count
	}

	log.WithFields(logrus.Fields{
		"total_commits": stats.TotalCommits,
		"active_days":   stats.ActiveDays,
		"streak":        stats.Streak,
	}).Info("analysis run finished")

	return stats, nil
}

func (s *AnalysisService) buildStats(profile *models.UserProfile, repos []models.RepositorySummary, agg Aggregation, year int, now time.Time) *models.YearStats {
	stats := &models.YearStats{
		Username:     profile.Login,
		AvatarURL:    profile.AvatarURL,
		ProfileURL:   profile.ProfileURL,
		AnalysisYear: year,

		TotalCommits:  agg.TotalContributions,
		ActiveDays:    len(agg.ActiveDays),
		Streak:        CurrentStreak(agg.ActiveDays, now),
		LongestStreak: LongestStreak(agg.ActiveDays),

		ReposContributed: profile.PublicRepos,
		ContributionGrid: agg.Monthly,
		MostActiveMonth:  mostActiveMonth(agg.Monthly),
		ActivityPattern:  models.ActivityPattern(len(agg.ActiveDays)),

		Followers:  profile.Followers,
		Following:  profile.Following,
		AccountAge: int(now.Sub(profile.CreatedAt).Hours() / 24 / 365),
		Bio:        profile.Bio,
		Company:    profile.Company,
		Location:   profile.Location,
	}

	if len(agg.ActiveDays) > 0 {
		stats.FirstActivity = agg.ActiveDays[0].Format("2006-01-02")
		stats.LastActivity = agg.ActiveDays[len(agg.ActiveDays)-1].Format("2006-01-02")
	}

	stats.AllLanguages = languageStats(repos)
	stats.TopLanguages = stats.AllLanguages
	if len(stats.TopLanguages) > topLanguageCount {
		stats.TopLanguages = stats.TopLanguages[:topLanguageCount]
	}

	for _, repo := range repos {
		stats.TotalStarsReceived += repo.Stars
		if repo.CreatedIn(year) {
			stats.ReposCreatedThisYear++
		}
	}
	stats.RecentRepos = recentRepos(repos)

	return stats
}

// languageStats counts repositories per language, most used first. Ties
// break alphabetically so reruns stay byte-identical.
func languageStats(repos []models.RepositorySummary) []models.LanguageStat {
	counts := make(map[string]int)
	for _, repo := range repos {
		if repo.Language != "" {
			counts[repo.Language]++
		}
	}

	stats := make([]models.LanguageStat, 0, len(counts))
	for name, count := range counts {
		stats = append(stats, models.LanguageStat{Name: name, Count: count})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Name < stats[j].Name
	})
	return stats
}

// recentRepos summarizes the most recently updated repositories. The
// catalog arrives sorted by update time already.
func recentRepos(repos []models.RepositorySummary) []models.RecentRepo {
	recent := make([]models.RecentRepo, 0, recentRepoCount)
	for _, repo := range repos {
		if len(recent) == recentRepoCount {
			break
		}
		description := repo.Description
		if description == "" {
			description = "No description provided."
		}
		language := repo.Language
		if language == "" {
			language = "Unknown"
		}
		recent = append(recent, models.RecentRepo{
			Name:        repo.Name,
			URL:         repo.URL,
			Description: description,
			Language:    language,
			Stars:       repo.Stars,
		})
	}
	return recent
}

func mostActiveMonth(monthly []models.MonthActivity) string {
	best := ""
	bestCount := 0
	for _, month := range monthly {
		if month.Count > bestCount {
			best = month.Month
			bestCount = month.Count
		}
	}
	return best
}

// classifyFetchError maps a fetch failure onto the fatal taxonomy.
// fallback is the kind reported when the failure is a plain upstream
// problem rather than a missing user or exhausted quota.
func classifyFetchError(err error, fallback error) error {
	switch {
	case errors.Is(err, githubclient.ErrNotFound):
		return ErrUserNotFound
	case errors.Is(err, githubclient.ErrRateLimited):
		return ErrRateLimited
	default:
		return fmt.Errorf("%w: %v", fallback, err)
	}
}
