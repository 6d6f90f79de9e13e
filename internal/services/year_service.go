package services

import (
	"fmt"
	"time"
)

// The events feed only retains roughly this many days of history, which
// limits which year windows still have event data behind them.
const eventRetentionDays = 90

// YearAvailability describes which analysis years still have usable event
// data and why, so the caller can explain the limitation to the user.
type YearAvailability struct {
	CurrentYear        int    `json:"current_year"`
	DaysSinceYearStart int    `json:"days_since_year_start"`
	AvailableYears     []int  `json:"available_years"`
	DataLimitation     string `json:"data_limitation"`
}

// ComputeYearAvailability derives the selectable years from now. Early in
// a year the retention window still reaches back into the previous year,
// so both years are offered; later only the current year remains.
func ComputeYearAvailability(now time.Time) YearAvailability {
	now = now.UTC()
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	elapsed := int(now.Sub(yearStart).Hours() / 24)

	if elapsed >= eventRetentionDays {
		return YearAvailability{
			CurrentYear:        now.Year(),
			DaysSinceYearStart: elapsed,
			AvailableYears:     []int{now.Year()},
			DataLimitation: fmt.Sprintf(
				"Event history is limited to the last %d days. Showing %d data only.",
				eventRetentionDays, now.Year()),
		}
	}

	return YearAvailability{
		CurrentYear:        now.Year(),
		DaysSinceYearStart: elapsed,
		AvailableYears:     []int{now.Year(), now.Year() - 1},
		DataLimitation: fmt.Sprintf(
			"Event history covers the last %d days: %d days from %d and %d days from %d.",
			eventRetentionDays, elapsed, now.Year(), eventRetentionDays-elapsed, now.Year()-1),
	}
}
