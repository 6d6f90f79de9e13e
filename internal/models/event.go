package models

import (
	"encoding/json"
	"time"
)

// Event types from the GitHub events feed that count toward contributions.
// RepoTouched is synthetic: it marks a repository whose metadata shows
// activity inside the analysis window even though the event log has expired.
const (
	EventTypePush          = "PushEvent"
	EventTypeCreate        = "CreateEvent"
	EventTypeIssues        = "IssuesEvent"
	EventTypePullRequest   = "PullRequestEvent"
	EventTypeReview        = "PullRequestReviewEvent"
	EventTypeIssueComment  = "IssueCommentEvent"
	EventTypeReviewComment = "PullRequestReviewCommentEvent"
	EventTypeCommitComment = "CommitCommentEvent"
	EventTypeRepoTouched   = "RepositoryTouched"
)

// ActivityEvent represents a single event from the GitHub events feed.
// Identity is ID; events are deduplicated by ID across feed sources.
// CreatedAt is kept raw so one malformed timestamp doesn't fail a whole page.
type ActivityEvent struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Repo      EventRepo       `json:"repo"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt string          `json:"created_at"`
}

// EventRepo represents the repository in the event
type EventRepo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// PushPayload is the payload of a PushEvent
type PushPayload struct {
	Ref     string `json:"ref"`
	Size    int    `json:"size"`
	Commits []struct {
		SHA     string `json:"sha"`
		Message string `json:"message"`
	} `json:"commits"`
}

// OccurredAt parses the event timestamp (RFC 3339, as the API emits it).
func (e *ActivityEvent) OccurredAt() (time.Time, error) {
	return time.Parse(time.RFC3339, e.CreatedAt)
}

// ContributionWeight returns how much this event adds to its day's total.
// Pushes count their commits (one when the payload carries none); issue,
// pull request, review, comment and create events count one; anything else
// counts zero and is excluded from aggregation.
func (e *ActivityEvent) ContributionWeight() int {
	switch e.Type {
	case EventTypePush:
		var payload PushPayload
		if err := json.Unmarshal(e.Payload, &payload); err == nil && len(payload.Commits) > 0 {
			return len(payload.Commits)
		}
		return 1
	case EventTypeCreate, EventTypeIssues, EventTypePullRequest,
		EventTypeReview, EventTypeIssueComment, EventTypeReviewComment,
		EventTypeCommitComment, EventTypeRepoTouched:
		return 1
	default:
		return 0
	}
}
