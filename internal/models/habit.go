package models

import "time"

// Habit represents a recurring practice to track
type Habit struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon,omitempty"`
	Color       string     `json:"color,omitempty"`
	Frequency   string     `json:"frequency,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	ArchivedAt  *time.Time `json:"archived_at,omitempty"`
}

// Archived reports whether the habit has been archived (soft-deleted).
// Archived habits are excluded from active computations but kept for history.
func (h Habit) Archived() bool {
	return h.ArchivedAt != nil
}

// HabitCompletion records a habit done on a single calendar day.
// At most one completion exists per (habit, day).
type HabitCompletion struct {
	ID        string    `json:"id"`
	HabitID   string    `json:"habit_id"`
	Day       string    `json:"completed_at"` // YYYY-MM-DD format
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}
