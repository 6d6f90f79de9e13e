package services

import "errors"

// Fatal analysis failures. These are the only errors Analyze returns;
// everything else degrades inside the component where it happens.
var (
	ErrUserNotFound        = errors.New("user profile not found")
	ErrNoRepositories      = errors.New("no repositories retrievable")
	ErrRateLimited         = errors.New("api rate limit exceeded")
	ErrAnalysisTimeout     = errors.New("analysis exceeded its time budget")
	ErrUpstreamUnavailable = errors.New("upstream api unavailable")

	// ErrEmptyInsights means the narrative generator answered with an
	// empty payload.
	ErrEmptyInsights = errors.New("insight generator returned an empty payload")
)
