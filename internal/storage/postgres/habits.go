package postgres

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
	var archivedAt sql.NullTime

	err := row.Scan(&h.ID, &h.Name, &h.Description, &h.Icon, &h.Color, &h.Frequency, &h.CreatedAt, &archivedAt)
	if err != nil {
		return models.Habit{}, err
	}
	if archivedAt.Valid {
		t := archivedAt.Time
		h.ArchivedAt = &t
	}

	return h, nil
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, name, description, icon, color, frequency, created_at, archived_at
		FROM habits WHERE id = $1`, id)
	return scanHabit(row)
}

func (s *Store) GetHabitByName(name string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, name, description, icon, color, frequency, created_at, archived_at
		FROM habits WHERE name = $1 AND archived_at IS NULL`, name)
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
	var archivedAt sql.NullTime
	if habit.ArchivedAt != nil {
		archivedAt = sql.NullTime{Time: *habit.ArchivedAt, Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO habits (id, name, description, icon, color, frequency, created_at, archived_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			icon = EXCLUDED.icon,
			color = EXCLUDED.color,
			frequency = EXCLUDED.frequency,
			archived_at = EXCLUDED.archived_at`,
		habit.ID, habit.Name, habit.Description, habit.Icon, habit.Color, habit.Frequency,
		habit.CreatedAt, archivedAt)

	return err
}

func (s *Store) ArchiveHabit(id string) error {
	result, err := s.db.Exec(`
		UPDATE habits SET archived_at = $1 WHERE id = $2 AND archived_at IS NULL`,
		time.Now(), id)
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
		UPDATE habits SET archived_at = NULL WHERE id = $1 AND archived_at IS NOT NULL`,
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
