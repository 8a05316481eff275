package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ameridyn/pantheon/internal/models"
	"github.com/ameridyn/pantheon/internal/utils"
)

// CompletionStore is the slice of the repository the toggle needs.
type CompletionStore interface {
	GetCompletion(habitID, day string) (models.HabitCompletion, error)
	AddCompletion(models.HabitCompletion) error
	DeleteCompletion(habitID, day string) error
}

// Toggler flips a habit's per-day completion state. It guards against
// duplicate records with a read-before-insert check on top of the storage
// layer's (habit, day) uniqueness, so a double invocation never yields two
// completions for the same day.
type Toggler struct {
	store CompletionStore
	clock utils.Clock
}

func NewToggler(store CompletionStore, clock utils.Clock) *Toggler {
	return &Toggler{
		store: store,
		clock: clock,
	}
}

// Toggle flips today's completion state for the habit and returns the new
// state. Toggling off a day with no record is a no-op, not an error.
func (t *Toggler) Toggle(habitID string, completedToday bool) (bool, error) {
	return t.ToggleWithNote(habitID, completedToday, "")
}

// ToggleWithNote is Toggle with an optional note attached to a new completion.
func (t *Toggler) ToggleWithNote(habitID string, completedToday bool, note string) (bool, error) {
	return t.ToggleDay(habitID, utils.Today(t.clock), completedToday, note)
}

// ToggleDay flips the completion state for an arbitrary calendar day.
func (t *Toggler) ToggleDay(habitID, day string, completed bool, note string) (bool, error) {
	if completed {
		if err := t.store.DeleteCompletion(habitID, day); err != nil {
			return completed, fmt.Errorf("failed to remove completion for %s: %w", day, err)
		}
		return false, nil
	}

	// Upsert-or-guard: a record may already exist if a refresh raced this
	// toggle. Reuse it rather than inserting a duplicate.
	if _, err := t.store.GetCompletion(habitID, day); err == nil {
		return true, nil
	}

	completion := models.HabitCompletion{
		ID:        uuid.New().String(),
		HabitID:   habitID,
		Day:       day,
		Notes:     note,
		CreatedAt: t.clock.Now(),
	}
	if err := t.store.AddCompletion(completion); err != nil {
		return completed, fmt.Errorf("failed to record completion for %s: %w", day, err)
	}

	return true, nil
}

// RecordedOn reports whether the habit has a completion for the given day.
func (t *Toggler) RecordedOn(habitID, day string) bool {
	_, err := t.store.GetCompletion(habitID, day)
	return err == nil
}

// CompletedToday reports whether the habit has a completion record for
// today's calendar day.
func (t *Toggler) CompletedToday(habitID string) bool {
	_, err := t.store.GetCompletion(habitID, utils.Today(t.clock))
	return err == nil
}

// CompletedOn reports whether the given completions include a day key.
func CompletedOn(completions []models.HabitCompletion, day string) bool {
	for _, c := range completions {
		if c.Day == day {
			return true
		}
	}
	return false
}
