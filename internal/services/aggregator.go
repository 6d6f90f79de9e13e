package services

import (
	"sort"
	"time"

	"github.com/devwrapped/devwrapped/internal/models"
	"github.com/devwrapped/devwrapped/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Aggregation is the canonical set of derived contribution metrics for one
// analysis run. Every published number that describes activity comes from
// this struct, so every display surface shows the same figures.
// Invariant: TotalContributions equals both the sum of Daily values and
// the sum of Monthly counts.
type Aggregation struct {
	// Daily maps midnight-UTC dates inside the year window to their
	// contribution count.
	Daily map[time.Time]int
	// Monthly covers January through December, truncated at the current
	// month for the current year.
	Monthly []models.MonthActivity
	// ActiveDays holds every date with a positive count, ascending.
	ActiveDays         []time.Time
	TotalContributions int
}

// Aggregate converts events and repository metadata into the canonical
// metrics for year. It is a pure function of its inputs: now stands in for
// the wall clock so runs are reproducible.
//
// Weights follow ActivityEvent.ContributionWeight. On top of the event
// feed, a repository whose updated_at falls inside the window adds a
// weight-1 contribution on that day. That is a deliberate approximation:
// the events feed only retains ~90 days, while repository metadata
// survives, so an update timestamp is often the only remaining trace of
// earlier activity.
func Aggregate(events []models.ActivityEvent, repos []models.RepositorySummary, year int, now time.Time) Aggregation {
	start, end := yearWindow(year, now)

	daily := make(map[time.Time]int)

	for _, event := range events {
		weight := event.ContributionWeight()
		if weight == 0 {
			continue
		}
		occurred, err := event.OccurredAt()
		if err != nil {
			logger.WithFields(logrus.Fields{"event_id": event.ID}).
				Debug("skipping event with unparseable timestamp")
			continue
		}
		if occurred.Before(start) || occurred.After(end) {
			continue
		}
		daily[midnightUTC(occurred)] += weight
	}

	for _, repo := range repos {
		if repo.UpdatedBetween(start, end) {
			daily[midnightUTC(repo.UpdatedAt.UTC())]++
		}
	}

	total := 0
	activeDays := make([]time.Time, 0, len(daily))
	for day, count := range daily {
		total += count
		activeDays = append(activeDays, day)
	}
	sort.Slice(activeDays, func(i, j int) bool {
		return activeDays[i].Before(activeDays[j])
	})

	return Aggregation{
		Daily:              daily,
		Monthly:            monthlyActivity(daily, year, end),
		ActiveDays:         activeDays,
		TotalContributions: total,
	}
}

// monthlyActivity derives the month histogram from the daily map so the
// two can never disagree. Months past the window end are omitted, not
// zero-filled.
func monthlyActivity(daily map[time.Time]int, year int, end time.Time) []models.MonthActivity {
	lastMonth := time.December
	if end.Year() == year {
		lastMonth = end.Month()
	}

	counts := make([]int, lastMonth)
	for day, count := range daily {
		counts[day.Month()-1] += count
	}

	monthly := make([]models.MonthActivity, lastMonth)
	for i, count := range counts {
		monthly[i] = models.MonthActivity{
			Month: time.Month(i + 1).String(),
			Count: count,
			Level: models.ActivityLevel(count),
		}
	}
	return monthly
}

// yearWindow returns the inclusive [start, end] bounds for year. Only
// the current year's end is clamped to now so future dates never count;
// any other year keeps its full calendar bounds.
func yearWindow(year int, now time.Time) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)
	if now = now.UTC(); year == now.Year() && now.Before(end) {
		end = now
	}
	return start, end
}

func midnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
