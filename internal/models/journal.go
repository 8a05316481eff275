package models

import "time"

// JournalEntry is a dated free-form note with an optional mood tag.
// CreatedAt is immutable; UpdatedAt changes on every edit.
type JournalEntry struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Mood      string    `json:"mood,omitempty"`
	EntryDate string    `json:"entry_date"` // YYYY-MM-DD format
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
