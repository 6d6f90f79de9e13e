package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActivityLevel(t *testing.T) {
	testCases := []struct {
		count    int
		expected int
	}{
		{count: 0, expected: 0},
		{count: 1, expected: 1},
		{count: 4, expected: 1},
		{count: 5, expected: 2},
		{count: 14, expected: 2},
		{count: 15, expected: 3},
		{count: 29, expected: 3},
		{count: 30, expected: 4},
		{count: 120, expected: 4},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, ActivityLevel(tc.count), "count %d", tc.count)
	}
}

func TestActivityPattern(t *testing.T) {
	testCases := []struct {
		activeDays int
		expected   string
	}{
		{activeDays: 0, expected: PatternSporadic},
		{activeDays: 4, expected: PatternSporadic},
		{activeDays: 5, expected: PatternBurst},
		{activeDays: 15, expected: PatternBurst},
		{activeDays: 16, expected: PatternConsistent},
		{activeDays: 200, expected: PatternConsistent},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, ActivityPattern(tc.activeDays), "active days %d", tc.activeDays)
	}
}
