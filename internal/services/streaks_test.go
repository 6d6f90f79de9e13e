package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestCurrentStreak(t *testing.T) {
	testCases := []struct {
		name     string
		days     []time.Time
		today    time.Time
		expected int
	}{
		{
			name:     "streak ending today",
			days:     []time.Time{day(2025, 1, 1), day(2025, 1, 2), day(2025, 1, 3)},
			today:    day(2025, 1, 3),
			expected: 3,
		},
		{
			name:     "streak ending yesterday still counts",
			days:     []time.Time{day(2025, 1, 1), day(2025, 1, 2), day(2025, 1, 3)},
			today:    day(2025, 1, 4),
			expected: 3,
		},
		{
			name:     "gap to today breaks the streak",
			days:     []time.Time{day(2025, 1, 1), day(2025, 1, 5)},
			today:    day(2025, 1, 8),
			expected: 0,
		},
		{
			name:     "streak stops at first gap",
			days:     []time.Time{day(2025, 1, 1), day(2025, 1, 3), day(2025, 1, 4)},
			today:    day(2025, 1, 4),
			expected: 2,
		},
		{
			name:     "single active day today",
			days:     []time.Time{day(2025, 1, 4)},
			today:    day(2025, 1, 4),
			expected: 1,
		},
		{
			name:     "no active days",
			days:     nil,
			today:    day(2025, 1, 4),
			expected: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CurrentStreak(tc.days, tc.today))
		})
	}
}

func TestLongestStreak(t *testing.T) {
	testCases := []struct {
		name     string
		days     []time.Time
		expected int
	}{
		{
			name:     "whole set is one run",
			days:     []time.Time{day(2025, 1, 1), day(2025, 1, 2), day(2025, 1, 3)},
			expected: 3,
		},
		{
			name:     "isolated days",
			days:     []time.Time{day(2025, 1, 1), day(2025, 1, 5)},
			expected: 1,
		},
		{
			name: "longest run is in the middle",
			days: []time.Time{
				day(2025, 1, 1),
				day(2025, 2, 1), day(2025, 2, 2), day(2025, 2, 3), day(2025, 2, 4),
				day(2025, 3, 1), day(2025, 3, 2),
			},
			expected: 4,
		},
		{
			name:     "runs across month boundary",
			days:     []time.Time{day(2025, 1, 30), day(2025, 1, 31), day(2025, 2, 1)},
			expected: 3,
		},
		{
			name:     "no active days",
			days:     nil,
			expected: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, LongestStreak(tc.days))
		})
	}
}
