package engine

import (
	"fmt"

	"github.com/ameridyn/pantheon/internal/constants"
	"github.com/ameridyn/pantheon/internal/models"
	"github.com/ameridyn/pantheon/internal/utils"
)

// TaskCounts is the projection the task board header shows.
type TaskCounts struct {
	Total              int
	Active             int
	Completed          int
	HighPriorityActive int
}

// CountTasks derives the task counters from a snapshot of the collection.
func CountTasks(tasks []models.Task) TaskCounts {
	counts := TaskCounts{Total: len(tasks)}
	for _, task := range tasks {
		if task.Completed {
			counts.Completed++
			continue
		}
		counts.Active++
		if task.Priority == constants.PriorityHigh {
			counts.HighPriorityActive++
		}
	}
	return counts
}

// FilterTasks returns the tasks matching the view. Filtering never mutates
// the underlying collection.
func FilterTasks(tasks []models.Task, view constants.FilterView) []models.Task {
	if view == constants.FilterAll {
		return tasks
	}

	var filtered []models.Task
	for _, task := range tasks {
		switch view {
		case constants.FilterActive:
			if !task.Completed {
				filtered = append(filtered, task)
			}
		case constants.FilterCompleted:
			if task.Completed {
				filtered = append(filtered, task)
			}
		}
	}
	return filtered
}

// Stats are the aggregate statistics the dashboard and the achievement
// engine consume. They are recomputed from a repository snapshot; there is
// no incrementally-maintained state to drift.
type Stats struct {
	TotalHabits      int
	CompletedToday   int
	TotalCompletions int
	TotalFocusMin    int
	TotalFocusHours  int
	CompletedTasks   int
	TotalTasks       int
	JournalEntries   int
	LongestStreak    int
}

// StatsStore is the slice of the repository statistics are derived from.
type StatsStore interface {
	GetAllHabits(includeArchived bool) ([]models.Habit, error)
	GetAllCompletions() ([]models.HabitCompletion, error)
	GetCompletedSessions() ([]models.FocusSession, error)
	GetAllTasks() ([]models.Task, error)
	GetAllEntries() ([]models.JournalEntry, error)
}

// GatherStats recomputes the aggregate statistics from the repository.
// Archived habits are excluded everywhere except their retained completions,
// which still count toward the lifetime completion total.
func GatherStats(store StatsStore, clock utils.Clock) (Stats, error) {
	today := utils.Today(clock)

	habits, err := store.GetAllHabits(false)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to load habits: %w", err)
	}
	completions, err := store.GetAllCompletions()
	if err != nil {
		return Stats{}, fmt.Errorf("failed to load completions: %w", err)
	}
	sessions, err := store.GetCompletedSessions()
	if err != nil {
		return Stats{}, fmt.Errorf("failed to load focus sessions: %w", err)
	}
	tasks, err := store.GetAllTasks()
	if err != nil {
		return Stats{}, fmt.Errorf("failed to load tasks: %w", err)
	}
	entries, err := store.GetAllEntries()
	if err != nil {
		return Stats{}, fmt.Errorf("failed to load journal entries: %w", err)
	}

	stats := Stats{
		TotalHabits:      len(habits),
		TotalCompletions: len(completions),
		JournalEntries:   len(entries),
		LongestStreak:    LongestStreak(habits, completions, today),
	}

	for _, c := range completions {
		if c.Day == today {
			stats.CompletedToday++
		}
	}
	for _, s := range sessions {
		stats.TotalFocusMin += s.ActualMinutes
	}
	stats.TotalFocusHours = stats.TotalFocusMin / 60

	taskCounts := CountTasks(tasks)
	stats.TotalTasks = taskCounts.Total
	stats.CompletedTasks = taskCounts.Completed

	return stats, nil
}
