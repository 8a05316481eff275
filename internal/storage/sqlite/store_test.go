package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ameridyn/pantheon/internal/constants"
	"github.com/ameridyn/pantheon/internal/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store := NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestLoadBeforeInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Fatal("expected Load on a missing database to fail")
	}
}

func TestHabitArchiveRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	habit := models.Habit{
		ID:          "habit-1",
		Name:        "Morning Run",
		Description: "5k before work",
		Icon:        "flame",
		Color:       "#7c3aed",
		Frequency:   "daily",
		CreatedAt:   time.Now(),
	}
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}

	got, err := store.GetHabitByName("Morning Run")
	if err != nil {
		t.Fatalf("failed to get habit by name: %v", err)
	}
	if got.ID != habit.ID {
		t.Errorf("expected habit ID %s, got %s", habit.ID, got.ID)
	}
	if got.Archived() {
		t.Error("fresh habit should not be archived")
	}

	if err := store.ArchiveHabit(habit.ID); err != nil {
		t.Fatalf("failed to archive habit: %v", err)
	}

	active, err := store.GetAllHabits(false)
	if err != nil {
		t.Fatalf("failed to list habits: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("expected no active habits after archive, got %d", len(active))
	}

	all, err := store.GetAllHabits(true)
	if err != nil {
		t.Fatalf("failed to list all habits: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 habit including archived, got %d", len(all))
	}
	if !all[0].Archived() {
		t.Error("archived habit should report Archived()")
	}

	if err := store.UnarchiveHabit(habit.ID); err != nil {
		t.Fatalf("failed to unarchive habit: %v", err)
	}
	active, err = store.GetAllHabits(false)
	if err != nil {
		t.Fatalf("failed to list habits: %v", err)
	}
	if len(active) != 1 {
		t.Errorf("expected 1 active habit after unarchive, got %d", len(active))
	}
}

func TestCompletionDayUniqueness(t *testing.T) {
	store := setupTestStore(t)

	first := models.HabitCompletion{
		ID:        "comp-1",
		HabitID:   "habit-1",
		Day:       "2025-03-14",
		Notes:     "felt good",
		CreatedAt: time.Now(),
	}
	if err := store.AddCompletion(first); err != nil {
		t.Fatalf("failed to add completion: %v", err)
	}

	// Same (habit, day) with a different ID collapses into the existing row.
	second := first
	second.ID = "comp-2"
	if err := store.AddCompletion(second); err != nil {
		t.Fatalf("duplicate insert should be a no-op, got error: %v", err)
	}

	all, err := store.GetAllCompletions()
	if err != nil {
		t.Fatalf("failed to list completions: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 completion after duplicate insert, got %d", len(all))
	}
	if all[0].ID != "comp-1" {
		t.Errorf("expected original record to survive, got %s", all[0].ID)
	}
	if all[0].Notes != "felt good" {
		t.Errorf("expected notes to round-trip, got %q", all[0].Notes)
	}
}

func TestDeleteCompletionMissingIsNoError(t *testing.T) {
	store := setupTestStore(t)

	if err := store.DeleteCompletion("habit-1", "2025-03-14"); err != nil {
		t.Fatalf("deleting a missing completion should not error: %v", err)
	}
}

func TestCompletionQueriesByHabitAndDay(t *testing.T) {
	store := setupTestStore(t)

	days := []struct{ habit, day string }{
		{"habit-1", "2025-03-12"},
		{"habit-1", "2025-03-13"},
		{"habit-2", "2025-03-13"},
	}
	for i, d := range days {
		c := models.HabitCompletion{
			ID:        "comp-" + string(rune('a'+i)),
			HabitID:   d.habit,
			Day:       d.day,
			CreatedAt: time.Now(),
		}
		if err := store.AddCompletion(c); err != nil {
			t.Fatalf("failed to add completion: %v", err)
		}
	}

	forHabit, err := store.GetCompletionsForHabit("habit-1")
	if err != nil {
		t.Fatalf("failed to query by habit: %v", err)
	}
	if len(forHabit) != 2 {
		t.Errorf("expected 2 completions for habit-1, got %d", len(forHabit))
	}
	if forHabit[0].Day != "2025-03-13" {
		t.Errorf("expected newest day first, got %s", forHabit[0].Day)
	}

	forDay, err := store.GetCompletionsForDay("2025-03-13")
	if err != nil {
		t.Fatalf("failed to query by day: %v", err)
	}
	if len(forDay) != 2 {
		t.Errorf("expected 2 completions on 2025-03-13, got %d", len(forDay))
	}
}

func TestAchievementTypeUniqueness(t *testing.T) {
	store := setupTestStore(t)

	unlock := models.Achievement{
		ID:          "ach-1",
		Type:        "week_warrior",
		Title:       "Week Warrior",
		Description: "Maintain a 7-day streak",
		Icon:        "target",
		UnlockedAt:  time.Now(),
		Metadata:    map[string]string{"metric": "longest_streak", "value": "7"},
	}
	if err := store.AddAchievement(unlock); err != nil {
		t.Fatalf("failed to add achievement: %v", err)
	}

	repeat := unlock
	repeat.ID = "ach-2"
	if err := store.AddAchievement(repeat); err != nil {
		t.Fatalf("re-unlocking an existing type should be a no-op, got error: %v", err)
	}

	all, err := store.GetAllAchievements()
	if err != nil {
		t.Fatalf("failed to list achievements: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 achievement after repeat unlock, got %d", len(all))
	}
	if all[0].ID != "ach-1" {
		t.Errorf("expected original unlock to survive, got %s", all[0].ID)
	}
	if all[0].Metadata["value"] != "7" {
		t.Errorf("expected metadata to round-trip, got %v", all[0].Metadata)
	}
}

func TestSessionLifecycle(t *testing.T) {
	store := setupTestStore(t)

	started := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	session := models.FocusSession{
		ID:              "session-1",
		DurationMinutes: 25,
		TaskName:        "write report",
		StartedAt:       started,
	}
	if err := store.AddSession(session); err != nil {
		t.Fatalf("failed to add session: %v", err)
	}

	got, err := store.GetSession(session.ID)
	if err != nil {
		t.Fatalf("failed to get session: %v", err)
	}
	if !got.Open() {
		t.Error("session with no end time should be open")
	}

	completed, err := store.GetCompletedSessions()
	if err != nil {
		t.Fatalf("failed to list completed sessions: %v", err)
	}
	if len(completed) != 0 {
		t.Errorf("open session should not appear in completed list, got %d", len(completed))
	}

	ended := started.Add(25 * time.Minute)
	got.Completed = true
	got.ActualMinutes = 25
	got.EndedAt = &ended
	if err := store.UpdateSession(got); err != nil {
		t.Fatalf("failed to update session: %v", err)
	}

	completed, err = store.GetCompletedSessions()
	if err != nil {
		t.Fatalf("failed to list completed sessions: %v", err)
	}
	if len(completed) != 1 {
		t.Fatalf("expected 1 completed session, got %d", len(completed))
	}
	if completed[0].ActualMinutes != 25 {
		t.Errorf("expected 25 actual minutes, got %d", completed[0].ActualMinutes)
	}
	if completed[0].EndedAt == nil {
		t.Error("completed session should have an end time")
	}
}

func TestTaskOrderAndDelete(t *testing.T) {
	store := setupTestStore(t)

	for i, title := range []string{"first", "second", "third"} {
		task := models.Task{
			ID:         "task-" + title,
			Title:      title,
			Priority:   constants.PriorityMedium,
			CreatedAt:  time.Now(),
			OrderIndex: i,
		}
		if err := store.AddTask(task); err != nil {
			t.Fatalf("failed to add task: %v", err)
		}
	}

	tasks, err := store.GetAllTasks()
	if err != nil {
		t.Fatalf("failed to list tasks: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	if tasks[0].Title != "first" || tasks[2].Title != "third" {
		t.Errorf("expected tasks ordered by index, got %s..%s", tasks[0].Title, tasks[2].Title)
	}

	now := time.Now()
	tasks[1].Completed = true
	tasks[1].CompletedAt = &now
	if err := store.UpdateTask(tasks[1]); err != nil {
		t.Fatalf("failed to update task: %v", err)
	}

	got, err := store.GetTask(tasks[1].ID)
	if err != nil {
		t.Fatalf("failed to get task: %v", err)
	}
	if !got.Completed || got.CompletedAt == nil {
		t.Error("expected completion state to round-trip")
	}

	if err := store.DeleteTask(tasks[0].ID); err != nil {
		t.Fatalf("failed to delete task: %v", err)
	}
	tasks, err = store.GetAllTasks()
	if err != nil {
		t.Fatalf("failed to list tasks: %v", err)
	}
	if len(tasks) != 2 {
		t.Errorf("expected 2 tasks after delete, got %d", len(tasks))
	}
}

func TestEntryUpdateKeepsCreatedAt(t *testing.T) {
	store := setupTestStore(t)

	created := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)
	entry := models.JournalEntry{
		ID:        "entry-1",
		Title:     "Morning pages",
		Content:   "three pages of whatever comes to mind",
		Mood:      "😊",
		EntryDate: "2025-03-14",
		CreatedAt: created,
		UpdatedAt: created,
	}
	if err := store.AddEntry(entry); err != nil {
		t.Fatalf("failed to add entry: %v", err)
	}

	entry.Content = "edited later that day"
	entry.UpdatedAt = created.Add(6 * time.Hour)
	if err := store.UpdateEntry(entry); err != nil {
		t.Fatalf("failed to update entry: %v", err)
	}

	got, err := store.GetEntry(entry.ID)
	if err != nil {
		t.Fatalf("failed to get entry: %v", err)
	}
	if got.Content != "edited later that day" {
		t.Errorf("expected updated content, got %q", got.Content)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("expected CreatedAt to be immutable, got %v", got.CreatedAt)
	}
	if !got.UpdatedAt.After(got.CreatedAt) {
		t.Error("expected UpdatedAt to advance past CreatedAt")
	}

	if err := store.DeleteEntry(entry.ID); err != nil {
		t.Fatalf("failed to delete entry: %v", err)
	}
	entries, err := store.GetAllEntries()
	if err != nil {
		t.Fatalf("failed to list entries: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries after delete, got %d", len(entries))
	}
}
