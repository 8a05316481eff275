package engine

import (
	"testing"
	"time"

	"github.com/ameridyn/pantheon/internal/constants"
	"github.com/ameridyn/pantheon/internal/models"
	"github.com/ameridyn/pantheon/internal/utils"
)

type fakeStatsStore struct {
	habits      []models.Habit
	completions []models.HabitCompletion
	sessions    []models.FocusSession
	tasks       []models.Task
	entries     []models.JournalEntry
}

func (f *fakeStatsStore) GetAllHabits(includeArchived bool) ([]models.Habit, error) {
	if includeArchived {
		return f.habits, nil
	}
	var active []models.Habit
	for _, h := range f.habits {
		if !h.Archived() {
			active = append(active, h)
		}
	}
	return active, nil
}

func (f *fakeStatsStore) GetAllCompletions() ([]models.HabitCompletion, error) {
	return f.completions, nil
}

func (f *fakeStatsStore) GetCompletedSessions() ([]models.FocusSession, error) {
	return f.sessions, nil
}

func (f *fakeStatsStore) GetAllTasks() ([]models.Task, error) {
	return f.tasks, nil
}

func (f *fakeStatsStore) GetAllEntries() ([]models.JournalEntry, error) {
	return f.entries, nil
}

func task(completed bool, priority constants.Priority) models.Task {
	return models.Task{Title: "t", Completed: completed, Priority: priority}
}

func TestCountTasks(t *testing.T) {
	tests := []struct {
		name  string
		tasks []models.Task
		want  TaskCounts
	}{
		{
			name: "empty collection",
			want: TaskCounts{},
		},
		{
			name: "mixed board",
			tasks: []models.Task{
				task(true, constants.PriorityHigh),
				task(true, constants.PriorityLow),
				task(true, constants.PriorityMedium),
				task(true, constants.PriorityHigh),
				task(false, constants.PriorityHigh),
				task(false, constants.PriorityHigh),
				task(false, constants.PriorityLow),
				task(false, constants.PriorityMedium),
				task(false, constants.PriorityLow),
				task(false, constants.PriorityMedium),
			},
			want: TaskCounts{Total: 10, Active: 6, Completed: 4, HighPriorityActive: 2},
		},
		{
			name: "completed high priority does not count as active",
			tasks: []models.Task{
				task(true, constants.PriorityHigh),
			},
			want: TaskCounts{Total: 1, Completed: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountTasks(tt.tasks)
			if got != tt.want {
				t.Errorf("CountTasks() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFilterTasks(t *testing.T) {
	tasks := []models.Task{
		{Title: "a", Completed: false},
		{Title: "b", Completed: true},
		{Title: "c", Completed: false},
	}

	if got := FilterTasks(tasks, constants.FilterAll); len(got) != 3 {
		t.Errorf("FilterAll returned %d tasks, want 3", len(got))
	}
	if got := FilterTasks(tasks, constants.FilterActive); len(got) != 2 {
		t.Errorf("FilterActive returned %d tasks, want 2", len(got))
	}
	if got := FilterTasks(tasks, constants.FilterCompleted); len(got) != 1 || got[0].Title != "b" {
		t.Errorf("FilterCompleted returned %+v, want the single completed task", got)
	}

	// the source slice is untouched
	if tasks[0].Completed || !tasks[1].Completed {
		t.Error("FilterTasks mutated its input")
	}
}

func TestGatherStats(t *testing.T) {
	clock := utils.FixedClock{Time: time.Date(2025, 3, 14, 10, 0, 0, 0, time.Local)}
	today := utils.Today(clock)
	yesterday, err := utils.PreviousDay(today)
	if err != nil {
		t.Fatalf("PreviousDay(%q) returned error: %v", today, err)
	}
	archived := time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local)

	store := &fakeStatsStore{
		habits: []models.Habit{
			{ID: "h1", Name: "read"},
			{ID: "h2", Name: "run"},
			{ID: "h3", Name: "old", ArchivedAt: &archived},
		},
		completions: []models.HabitCompletion{
			{ID: "c1", HabitID: "h1", Day: today},
			{ID: "c2", HabitID: "h1", Day: yesterday},
			{ID: "c3", HabitID: "h2", Day: yesterday},
		},
		sessions: []models.FocusSession{
			{ID: "s1", ActualMinutes: 50, Completed: true},
			{ID: "s2", ActualMinutes: 25, Completed: true},
		},
		tasks: []models.Task{
			task(true, constants.PriorityLow),
			task(false, constants.PriorityHigh),
			task(false, constants.PriorityMedium),
		},
		entries: []models.JournalEntry{
			{ID: "j1", Title: "day one"},
		},
	}

	stats, err := GatherStats(store, clock)
	if err != nil {
		t.Fatalf("GatherStats() error = %v", err)
	}

	if stats.TotalHabits != 2 {
		t.Errorf("TotalHabits = %d, want 2 (archived excluded)", stats.TotalHabits)
	}
	if stats.CompletedToday != 1 {
		t.Errorf("CompletedToday = %d, want 1", stats.CompletedToday)
	}
	if stats.TotalCompletions != 3 {
		t.Errorf("TotalCompletions = %d, want 3", stats.TotalCompletions)
	}
	if stats.TotalFocusMin != 75 {
		t.Errorf("TotalFocusMin = %d, want 75", stats.TotalFocusMin)
	}
	if stats.TotalFocusHours != 1 {
		t.Errorf("TotalFocusHours = %d, want 1", stats.TotalFocusHours)
	}
	if stats.TotalTasks != 3 || stats.CompletedTasks != 1 {
		t.Errorf("tasks = %d/%d, want 1/3 completed", stats.CompletedTasks, stats.TotalTasks)
	}
	if stats.JournalEntries != 1 {
		t.Errorf("JournalEntries = %d, want 1", stats.JournalEntries)
	}
	if stats.LongestStreak != 2 {
		t.Errorf("LongestStreak = %d, want 2", stats.LongestStreak)
	}
}

func TestGatherStatsEmptyRepository(t *testing.T) {
	stats, err := GatherStats(&fakeStatsStore{}, utils.FixedClock{Time: time.Now()})
	if err != nil {
		t.Fatalf("GatherStats() error = %v", err)
	}
	if stats != (Stats{}) {
		t.Errorf("GatherStats() on empty repository = %+v, want zero stats", stats)
	}
}
