package github

import (
	"sort"
	"time"
)

// Week is a run of up to seven days partitioned on the weekday boundary
// (weeks start on Sunday, matching the calendar grid).
type Week struct {
	Days []ContributionDay `json:"days"`
}

// Stats summarizes a contribution calendar over its lookback window.
type Stats struct {
	Total         int             `json:"total"`
	CurrentStreak int             `json:"current_streak"`
	LongestStreak int             `json:"longest_streak"`
	BestDay       ContributionDay `json:"best_day"`
}

// sortByDate returns a date-ascending copy. Scraped days arrive in document
// order, which is not guaranteed to be chronological.
func sortByDate(days []ContributionDay) []ContributionDay {
	sorted := make([]ContributionDay, len(days))
	copy(sorted, days)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})
	return sorted
}

// BuildWeeks groups days into week buckets, starting a fresh bucket whenever
// a day falls on Sunday. Days with unparseable dates are skipped.
func BuildWeeks(days []ContributionDay) []Week {
	var weeks []Week
	var current []ContributionDay

	for _, day := range sortByDate(days) {
		parsed, err := time.Parse("2006-01-02", day.Date)
		if err != nil {
			continue
		}

		if parsed.Weekday() == time.Sunday && len(current) > 0 {
			weeks = append(weeks, Week{Days: current})
			current = nil
		}

		current = append(current, day)
	}

	if len(current) > 0 {
		weeks = append(weeks, Week{Days: current})
	}

	return weeks
}

// ComputeStats derives totals and streaks. The current streak counts
// consecutive days with activity backward from the most recent day; the
// longest streak is the longest such run anywhere in the window.
func ComputeStats(days []ContributionDay) Stats {
	var stats Stats

	sorted := sortByDate(days)

	running := 0
	for _, day := range sorted {
		stats.Total += day.Count

		if day.Count > 0 {
			running++
			if running > stats.LongestStreak {
				stats.LongestStreak = running
			}
		} else {
			running = 0
		}

		if day.Count > stats.BestDay.Count {
			stats.BestDay = day
		}
	}

	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i].Count == 0 {
			break
		}
		stats.CurrentStreak++
	}

	return stats
}
