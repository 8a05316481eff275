package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ameridyn/pantheon/internal/models"
)

func (s *Store) AddEntry(entry models.JournalEntry) error {
	return s.UpdateEntry(entry)
}

func (s *Store) GetEntry(id string) (models.JournalEntry, error) {
	row := s.db.QueryRow(`
		SELECT id, title, content, mood, entry_date, created_at, updated_at
		FROM journal_entries WHERE id = ?`, id)
	return scanEntry(row)
}

func (s *Store) GetAllEntries() ([]models.JournalEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, title, content, mood, entry_date, created_at, updated_at
		FROM journal_entries ORDER BY entry_date DESC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.JournalEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (s *Store) UpdateEntry(entry models.JournalEntry) error {
	var mood sql.NullString
	if entry.Mood != "" {
		mood = sql.NullString{String: entry.Mood, Valid: true}
	}

	// created_at is immutable; only updated_at moves on edit
	_, err := s.db.Exec(`
		INSERT INTO journal_entries (id, title, content, mood, entry_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			mood = excluded.mood,
			updated_at = excluded.updated_at`,
		entry.ID, entry.Title, entry.Content, mood, entry.EntryDate,
		entry.CreatedAt.Format(time.RFC3339), entry.UpdatedAt.Format(time.RFC3339))

	return err
}

func (s *Store) DeleteEntry(id string) error {
	_, err := s.db.Exec(`DELETE FROM journal_entries WHERE id = ?`, id)
	return err
}

func scanEntry(row interface{ Scan(...interface{}) error }) (models.JournalEntry, error) {
	var entry models.JournalEntry
	var mood sql.NullString
	var createdAt, updatedAt string

	err := row.Scan(&entry.ID, &entry.Title, &entry.Content, &mood, &entry.EntryDate, &createdAt, &updatedAt)
	if err != nil {
		return models.JournalEntry{}, err
	}

	if mood.Valid {
		entry.Mood = mood.String
	}
	entry.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	entry.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return entry, nil
}
