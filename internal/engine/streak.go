// Package engine holds the progress and gamification logic: streaks,
// completion toggling, aggregate statistics, and achievement unlocks.
// Everything here is a pure function of repository snapshots; persistence
// happens behind narrow store interfaces so the logic tests without a database.
package engine

import (
	"sort"

	"github.com/ameridyn/pantheon/internal/models"
	"github.com/ameridyn/pantheon/internal/utils"
)

// Streak returns the current consecutive-day completion streak for the given
// completion day keys, anchored at today. The walk starts at today's key and
// moves back one calendar day at a time; the first missing day ends the
// streak. A run that stopped before today counts as 0; streaks measure
// current momentum, not historical bests.
//
// Duplicate day keys are tolerated and collapse to one.
func Streak(dayKeys []string, today string) int {
	if len(dayKeys) == 0 {
		return 0
	}

	days := make(map[string]bool, len(dayKeys))
	for _, key := range dayKeys {
		days[key] = true
	}

	streak := 0
	cursor := today
	for days[cursor] {
		streak++
		prev, err := utils.PreviousDay(cursor)
		if err != nil {
			break
		}
		cursor = prev
	}

	return streak
}

// HabitStreak computes the streak for one habit's completion records.
func HabitStreak(completions []models.HabitCompletion, today string) int {
	keys := make([]string, 0, len(completions))
	for _, c := range completions {
		keys = append(keys, c.Day)
	}
	return Streak(keys, today)
}

// LongestStreak returns the maximum current streak across all non-archived
// habits. Completions belonging to archived or unknown habits are ignored.
func LongestStreak(habits []models.Habit, completions []models.HabitCompletion, today string) int {
	byHabit := make(map[string][]string)
	for _, c := range completions {
		byHabit[c.HabitID] = append(byHabit[c.HabitID], c.Day)
	}

	longest := 0
	for _, h := range habits {
		if h.Archived() {
			continue
		}
		if s := Streak(byHabit[h.ID], today); s > longest {
			longest = s
		}
	}

	return longest
}

// SortedDays returns the distinct completion day keys in descending order,
// for display in habit history views.
func SortedDays(completions []models.HabitCompletion) []string {
	seen := make(map[string]bool, len(completions))
	var days []string
	for _, c := range completions {
		if !seen[c.Day] {
			seen[c.Day] = true
			days = append(days, c.Day)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))
	return days
}
