package models

import "time"

// Activity level buckets for the monthly contribution grid.
// A month's level is the highest bucket its count reaches.
const (
	levelQuiet   = 1  // at least one contribution
	levelSteady  = 5  // a contribution a week, roughly
	levelBusy    = 15 // every other day
	levelIntense = 30 // daily or better
)

// Activity patterns derived from the active-day count.
const (
	PatternConsistent = "consistent"
	PatternBurst      = "burst"
	PatternSporadic   = "sporadic"
)

// UserProfile represents the subject user's GitHub profile
type UserProfile struct {
	Login       string    `json:"login"`
	Name        string    `json:"name"`
	AvatarURL   string    `json:"avatar_url"`
	ProfileURL  string    `json:"html_url"`
	Bio         string    `json:"bio"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	PublicRepos int       `json:"public_repos"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	CreatedAt   time.Time `json:"created_at"`
}

// LanguageStat counts how many repositories use a language
type LanguageStat struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// RecentRepo is a recent-project summary shown alongside the stats
type RecentRepo struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Stars       int    `json:"stars"`
}

// MonthActivity is one month of the contribution grid. Level quantizes
// Count into the 0-4 buckets above.
type MonthActivity struct {
	Month string `json:"month"`
	Count int    `json:"count"`
	Level int    `json:"level"`
}

// YearStats is the published result of one analysis run. It is built once
// per run and never mutated afterwards; every display surface reads the
// same object.
type YearStats struct {
	Username     string `json:"username"`
	AvatarURL    string `json:"avatar_url"`
	ProfileURL   string `json:"profile_url"`
	AnalysisYear int    `json:"analysis_year"`

	TotalCommits  int `json:"total_commits"`
	ActiveDays    int `json:"active_days"`
	Streak        int `json:"streak"`
	LongestStreak int `json:"longest_streak"`

	TopLanguages []LanguageStat `json:"top_languages"`
	AllLanguages []LanguageStat `json:"all_languages"`

	ReposContributed     int          `json:"repos_contributed"`
	ReposCreatedThisYear int          `json:"repos_created_this_year"`
	RecentRepos          []RecentRepo `json:"recent_repos"`

	ContributionGrid []MonthActivity `json:"contribution_grid"`
	MostActiveMonth  string          `json:"most_active_month"`
	FirstActivity    string          `json:"first_activity"`
	LastActivity     string          `json:"last_activity"`
	ActivityPattern  string          `json:"activity_pattern"`

	Followers          int    `json:"followers"`
	Following          int    `json:"following"`
	TotalStarsReceived int    `json:"total_stars_received"`
	AccountAge         int    `json:"account_age"`
	Bio                string `json:"bio,omitempty"`
	Company            string `json:"company,omitempty"`
	Location           string `json:"location,omitempty"`
}

// ActivityLevel maps a monthly contribution count to its 0-4 grid level.
// Boundaries are inclusive at the lower bound of each bucket.
func ActivityLevel(count int) int {
	switch {
	case count >= levelIntense:
		return 4
	case count >= levelBusy:
		return 3
	case count >= levelSteady:
		return 2
	case count >= levelQuiet:
		return 1
	default:
		return 0
	}
}

// ActivityPattern labels the year's rhythm from its active-day count.
func ActivityPattern(activeDays int) string {
	switch {
	case activeDays > 15:
		return PatternConsistent
	case activeDays >= 5:
		return PatternBurst
	default:
		return PatternSporadic
	}
}
