package services

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/devwrapped/devwrapped/internal/githubclient"
	"github.com/devwrapped/devwrapped/internal/models"
	"github.com/devwrapped/devwrapped/pkg/logger"
	"github.com/sirupsen/logrus"
)

const reposPerPage = 100

// RepoCatalogService pages through a user's repository list. Year
// filtering happens downstream; the catalog only fetches and summarizes.
type RepoCatalogService struct {
	client       *githubclient.Client
	fetchTimeout time.Duration
	pageLimit    int
}

func NewRepoCatalogService(client *githubclient.Client, fetchTimeout time.Duration, pageLimit int) *RepoCatalogService {
	return &RepoCatalogService{
		client:       client,
		fetchTimeout: fetchTimeout,
		pageLimit:    pageLimit,
	}
}

// Collect returns the user's repositories, most recently updated first.
// A failure on the first page is fatal: with no repositories at all the
// analysis has nothing to work with. Failures on later pages degrade to
// "use what was fetched so far".
func (s *RepoCatalogService) Collect(ctx context.Context, username string) ([]models.RepositorySummary, error) {
	var repos []models.RepositorySummary
	for page := 1; page <= s.pageLimit; page++ {
		var batch []models.RepositorySummary
		path := fmt.Sprintf("/users/%s/repos?sort=updated&per_page=%d&page=%d",
			url.PathEscape(username), reposPerPage, page)
		if err := s.client.Get(ctx, path, s.fetchTimeout, &batch); err != nil {
			if page == 1 {
				return nil, fmt.Errorf("failed to list repositories for %s: %w", username, err)
			}
			logger.WithFields(logrus.Fields{"username": username, "page": page}).
				WithError(err).Warn("repository page fetch failed, using partial catalog")
			break
		}
		repos = append(repos, batch...)
		if len(batch) < reposPerPage {
			break
		}
	}
	return repos, nil
}
