package services

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/devwrapped/devwrapped/internal/githubclient"
	"github.com/devwrapped/devwrapped/internal/models"
	"github.com/devwrapped/devwrapped/pkg/logger"
	"github.com/sirupsen/logrus"
)

const eventsPerPage = 100

// EventCollectorService gathers candidate activity events for a target
// year from the user's public-events and received-events feeds. Both
// feeds are best effort: a failing feed contributes zero events and the
// collector itself never fails.
type EventCollectorService struct {
	client       *githubclient.Client
	fetchTimeout time.Duration
	pageLimit    int
}

func NewEventCollectorService(client *githubclient.Client, fetchTimeout time.Duration, pageLimit int) *EventCollectorService {
	return &EventCollectorService{
		client:       client,
		fetchTimeout: fetchTimeout,
		pageLimit:    pageLimit,
	}
}

// Collect fetches both event feeds concurrently, deduplicates by event ID
// and returns only events inside the year's window. now decides the
// effective end of the window for the current year.
func (s *EventCollectorService) Collect(ctx context.Context, username string, year int, now time.Time) []models.ActivityEvent {
	start, end := yearWindow(year, now)

	feeds := []string{
		fmt.Sprintf("/users/%s/events", url.PathEscape(username)),
		fmt.Sprintf("/users/%s/received_events", url.PathEscape(username)),
	}

	results := make([][]models.ActivityEvent, len(feeds))
	var wg sync.WaitGroup
	for i, feed := range feeds {
		wg.Add(1)
		go func(i int, feed string) {
			defer wg.Done()
			results[i] = s.collectFeed(ctx, feed, start)
		}(i, feed)
	}
	wg.Wait()

	seen := make(map[string]bool)
	var events []models.ActivityEvent
	for _, batch := range results {
		for _, event := range batch {
			if event.ID == "" || seen[event.ID] {
				continue
			}
			seen[event.ID] = true

			occurred, err := event.OccurredAt()
			if err != nil {
				logger.WithFields(logrus.Fields{
					"event_id": event.ID,
					"raw":      event.CreatedAt,
				}).Debug("skipping event with unparseable timestamp")
				continue
			}
			if occurred.Before(start) || occurred.After(end) {
				continue
			}
			events = append(events, event)
		}
	}

	logger.WithFields(logrus.Fields{
		"username": username,
		"year":     year,
		"events":   len(events),
	}).Debug("event collection finished")

	return events
}

// collectFeed pages through one feed until a short page, the page ceiling,
// or a page whose oldest event predates the window start. Any fetch error
// stops the feed and keeps what was already collected.
func (s *EventCollectorService) collectFeed(ctx context.Context, feed string, start time.Time) []models.ActivityEvent {
	var events []models.ActivityEvent
	for page := 1; page <= s.pageLimit; page++ {
		var batch []models.ActivityEvent
		path := fmt.Sprintf("%s?per_page=%d&page=%d", feed, eventsPerPage, page)
		if err := s.client.Get(ctx, path, s.fetchTimeout, &batch); err != nil {
			logger.WithFields(logrus.Fields{"feed": feed, "page": page}).
				WithError(err).Warn("event feed fetch failed, continuing without it")
			break
		}
		events = append(events, batch...)
		if len(batch) < eventsPerPage {
			break
		}
		// Feeds arrive newest first; once a page's oldest event predates
		// the window there is nothing further back worth paging for.
		if oldest, err := batch[len(batch)-1].OccurredAt(); err == nil && oldest.Before(start) {
			break
		}
	}
	return events
}
