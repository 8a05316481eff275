package engine

import (
	"database/sql"
	"testing"
	"time"

	"github.com/ameridyn/pantheon/internal/models"
	"github.com/ameridyn/pantheon/internal/utils"
)

// fakeCompletionStore is an in-memory CompletionStore keyed by (habit, day),
// mirroring the uniqueness the real backends enforce with an index.
type fakeCompletionStore struct {
	completions map[string]models.HabitCompletion
}

func newFakeCompletionStore() *fakeCompletionStore {
	return &fakeCompletionStore{
		completions: make(map[string]models.HabitCompletion),
	}
}

func (f *fakeCompletionStore) key(habitID, day string) string {
	return habitID + "|" + day
}

func (f *fakeCompletionStore) GetCompletion(habitID, day string) (models.HabitCompletion, error) {
	c, ok := f.completions[f.key(habitID, day)]
	if !ok {
		return models.HabitCompletion{}, sql.ErrNoRows
	}
	return c, nil
}

func (f *fakeCompletionStore) AddCompletion(c models.HabitCompletion) error {
	key := f.key(c.HabitID, c.Day)
	if _, exists := f.completions[key]; exists {
		// Matches ON CONFLICT DO NOTHING: second insert is silently dropped
		return nil
	}
	f.completions[key] = c
	return nil
}

func (f *fakeCompletionStore) DeleteCompletion(habitID, day string) error {
	delete(f.completions, f.key(habitID, day))
	return nil
}

func (f *fakeCompletionStore) count() int {
	return len(f.completions)
}

func testClock() utils.FixedClock {
	return utils.FixedClock{Time: time.Date(2025, 3, 14, 12, 0, 0, 0, time.Local)}
}

func TestToggleOnCreatesOneRecord(t *testing.T) {
	store := newFakeCompletionStore()
	toggler := NewToggler(store, testClock())

	state, err := toggler.Toggle("habit-1", false)
	if err != nil {
		t.Fatalf("Toggle() returned error: %v", err)
	}
	if !state {
		t.Error("Toggle(false) = false, want true")
	}
	if store.count() != 1 {
		t.Errorf("record count = %d, want 1", store.count())
	}

	c, err := store.GetCompletion("habit-1", "2025-03-14")
	if err != nil {
		t.Fatalf("completion not found for today: %v", err)
	}
	if c.Day != "2025-03-14" {
		t.Errorf("completion day = %q, want %q", c.Day, "2025-03-14")
	}
}

func TestToggleTwiceRestoresOriginalState(t *testing.T) {
	store := newFakeCompletionStore()
	toggler := NewToggler(store, testClock())

	state, err := toggler.Toggle("habit-1", false)
	if err != nil {
		t.Fatalf("first Toggle() returned error: %v", err)
	}
	if !state || store.count() != 1 {
		t.Fatalf("after first toggle: state=%v count=%d, want true/1", state, store.count())
	}

	state, err = toggler.Toggle("habit-1", state)
	if err != nil {
		t.Fatalf("second Toggle() returned error: %v", err)
	}
	if state {
		t.Error("second Toggle() = true, want false")
	}
	if store.count() != 0 {
		t.Errorf("record count after toggle off = %d, want 0", store.count())
	}
}

func TestToggleOffMissingRecordIsNotAnError(t *testing.T) {
	store := newFakeCompletionStore()
	toggler := NewToggler(store, testClock())

	// Caller believes the habit is completed but the record is already gone
	state, err := toggler.Toggle("habit-1", true)
	if err != nil {
		t.Fatalf("Toggle() on missing record returned error: %v", err)
	}
	if state {
		t.Error("Toggle(true) = true, want false")
	}
}

func TestToggleOnGuardsAgainstStaleState(t *testing.T) {
	store := newFakeCompletionStore()
	toggler := NewToggler(store, testClock())

	// A record already exists but the caller acts on a stale "not completed" read
	if _, err := toggler.Toggle("habit-1", false); err != nil {
		t.Fatal(err)
	}
	state, err := toggler.Toggle("habit-1", false)
	if err != nil {
		t.Fatalf("Toggle() with stale state returned error: %v", err)
	}
	if !state {
		t.Error("Toggle() with stale state = false, want true")
	}
	if store.count() != 1 {
		t.Errorf("record count = %d, want exactly 1 (no duplicate for the day)", store.count())
	}
}

func TestToggleWithNote(t *testing.T) {
	store := newFakeCompletionStore()
	toggler := NewToggler(store, testClock())

	if _, err := toggler.ToggleWithNote("habit-1", false, "early morning"); err != nil {
		t.Fatal(err)
	}

	c, err := store.GetCompletion("habit-1", "2025-03-14")
	if err != nil {
		t.Fatalf("completion not found: %v", err)
	}
	if c.Notes != "early morning" {
		t.Errorf("completion note = %q, want %q", c.Notes, "early morning")
	}
}

func TestToggleDayBackfillsPastDate(t *testing.T) {
	store := newFakeCompletionStore()
	toggler := NewToggler(store, testClock())

	day := "2025-03-01"
	if toggler.RecordedOn("habit-1", day) {
		t.Error("RecordedOn() = true before any toggle")
	}

	state, err := toggler.ToggleDay("habit-1", day, toggler.RecordedOn("habit-1", day), "")
	if err != nil {
		t.Fatalf("ToggleDay() returned error: %v", err)
	}
	if !state {
		t.Error("ToggleDay() = false, want true")
	}
	if !toggler.RecordedOn("habit-1", day) {
		t.Error("RecordedOn() = false after toggle on")
	}
	if toggler.CompletedToday("habit-1") {
		t.Error("backfilled day must not count as today")
	}
}

func TestCompletedToday(t *testing.T) {
	store := newFakeCompletionStore()
	toggler := NewToggler(store, testClock())

	if toggler.CompletedToday("habit-1") {
		t.Error("CompletedToday() = true before any toggle")
	}
	if _, err := toggler.Toggle("habit-1", false); err != nil {
		t.Fatal(err)
	}
	if !toggler.CompletedToday("habit-1") {
		t.Error("CompletedToday() = false after toggle on")
	}
}

func TestCompletedOn(t *testing.T) {
	completions := []models.HabitCompletion{
		{Day: "2025-03-13"},
		{Day: "2025-03-14"},
	}

	if !CompletedOn(completions, "2025-03-14") {
		t.Error("CompletedOn() = false for present day")
	}
	if CompletedOn(completions, "2025-03-12") {
		t.Error("CompletedOn() = true for absent day")
	}
}
