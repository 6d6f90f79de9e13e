package services

import "time"

// CurrentStreak counts consecutive active days ending at today or
// yesterday. An anchor further back means the streak is broken and the
// current streak is zero. days must be ascending midnight-UTC dates, as
// produced by Aggregate.
func CurrentStreak(days []time.Time, today time.Time) int {
	if len(days) == 0 {
		return 0
	}

	anchor := days[len(days)-1]
	gap := midnightUTC(today).Sub(anchor)
	if gap < 0 || gap > 24*time.Hour {
		return 0
	}

	streak := 1
	for i := len(days) - 2; i >= 0; i-- {
		if days[i+1].Sub(days[i]) != 24*time.Hour {
			break
		}
		streak++
	}
	return streak
}

// LongestStreak finds the longest run of consecutive active days anywhere
// in the ascending day list, regardless of recency.
func LongestStreak(days []time.Time) int {
	if len(days) == 0 {
		return 0
	}

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}
