package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ameridyn/pantheon/internal/models"
)

func (s *Store) AddHabit(habit models.Habit) error {
	return s.UpdateHabit(habit)
}

func scanHabit(row interface{ Scan(...interface{}) error }) (models.Habit, error) {
	var h models.Habit
	var createdAt string
	var archivedAt sql.NullString

	err := row.Scan(&h.ID, &h.Name, &h.Description, &h.Icon, &h.Color, &h.Frequency, &createdAt, &archivedAt)
	if err != nil {
		return models.Habit{}, err
	}

	h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if archivedAt.Valid {
		t, err := time.Parse(time.RFC3339, archivedAt.String)
		if err != nil {
			return models.Habit{}, fmt.Errorf("failed to parse archived_at: %w", err)
		}
		h.ArchivedAt = &t
	}

	return h, nil
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, name, description, icon, color, frequency, created_at, archived_at
		FROM habits WHERE id = ?`, id)
	return scanHabit(row)
}

func (s *Store) GetHabitByName(name string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, name, description, icon, color, frequency, created_at, archived_at
		FROM habits WHERE name = ? AND archived_at IS NULL`, name)
	return scanHabit(row)
}

func (s *Store) GetAllHabits(includeArchived bool) ([]models.Habit, error) {
	query := "SELECT id, name, description, icon, color, frequency, created_at, archived_at FROM habits"
	if !includeArchived {
		query += " WHERE archived_at IS NULL"
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}

	return habits, rows.Err()
}

func (s *Store) UpdateHabit(habit models.Habit) error {
	var archivedAt sql.NullString
	if habit.ArchivedAt != nil {
		archivedAt = sql.NullString{String: habit.ArchivedAt.Format(time.RFC3339), Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO habits (id, name, description, icon, color, frequency, created_at, archived_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			icon = excluded.icon,
			color = excluded.color,
			frequency = excluded.frequency,
			archived_at = excluded.archived_at`,
		habit.ID, habit.Name, habit.Description, habit.Icon, habit.Color, habit.Frequency,
		habit.CreatedAt.Format(time.RFC3339), archivedAt)

	return err
}

func (s *Store) ArchiveHabit(id string) error {
	result, err := s.db.Exec(`
		UPDATE habits SET archived_at = ? WHERE id = ? AND archived_at IS NULL`,
		time.Now().Format(time.RFC3339), id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("habit not found or already archived")
	}

	return nil
}

func (s *Store) UnarchiveHabit(id string) error {
	result, err := s.db.Exec(`
		UPDATE habits SET archived_at = NULL WHERE id = ? AND archived_at IS NOT NULL`,
		id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("habit not found or not archived")
	}

	return nil
}
