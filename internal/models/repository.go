package models

import "time"

// RepositorySummary represents one repository from the user's repository list
type RepositorySummary struct {
	Name        string     `json:"name"`
	FullName    string     `json:"full_name"`
	URL         string     `json:"html_url"`
	Description string     `json:"description"`
	Language    string     `json:"language"`
	Stars       int        `json:"stargazers_count"`
	Fork        bool       `json:"fork"`
	Private     bool       `json:"private"`
	CreatedAt   *time.Time `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// CreatedIn reports whether the repository was created in the given year.
func (r *RepositorySummary) CreatedIn(year int) bool {
	return r.CreatedAt != nil && r.CreatedAt.UTC().Year() == year
}

// UpdatedBetween reports whether the repository's last update falls inside
// [start, end] inclusive.
func (r *RepositorySummary) UpdatedBetween(start, end time.Time) bool {
	if r.UpdatedAt == nil {
		return false
	}
	u := r.UpdatedAt.UTC()
	return !u.Before(start) && !u.After(end)
}
