package sqlite

import (
	"fmt"
	"time"

	"github.com/ameridyn/pantheon/internal/models"
)

// AddCompletion inserts a completion for a (habit, day) pair. The unique
// index on (habit_id, day) makes a concurrent double-insert collapse into a
// single record instead of raising an error.
func (s *Store) AddCompletion(c models.HabitCompletion) error {
	_, err := s.db.Exec(`
		INSERT INTO habit_completions (id, habit_id, day, notes, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(habit_id, day) DO NOTHING`,
		c.ID, c.HabitID, c.Day, c.Notes, c.CreatedAt.Format(time.RFC3339))
	return err
}

func (s *Store) GetCompletion(habitID, day string) (models.HabitCompletion, error) {
	row := s.db.QueryRow(`
		SELECT id, habit_id, day, notes, created_at
		FROM habit_completions WHERE habit_id = ? AND day = ?`, habitID, day)

	var c models.HabitCompletion
	var createdAt string
	if err := row.Scan(&c.ID, &c.HabitID, &c.Day, &c.Notes, &createdAt); err != nil {
		return models.HabitCompletion{}, err
	}

	var err error
	c.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.HabitCompletion{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return c, nil
}

func (s *Store) queryCompletions(query string, args ...interface{}) ([]models.HabitCompletion, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var completions []models.HabitCompletion
	for rows.Next() {
		var c models.HabitCompletion
		var createdAt string
		if err := rows.Scan(&c.ID, &c.HabitID, &c.Day, &c.Notes, &createdAt); err != nil {
			return nil, err
		}
		c.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for completion %s: %w", c.ID, err)
		}
		completions = append(completions, c)
	}

	return completions, rows.Err()
}

func (s *Store) GetCompletionsForHabit(habitID string) ([]models.HabitCompletion, error) {
	return s.queryCompletions(`
		SELECT id, habit_id, day, notes, created_at
		FROM habit_completions WHERE habit_id = ? ORDER BY day DESC`, habitID)
}

func (s *Store) GetCompletionsForDay(day string) ([]models.HabitCompletion, error) {
	return s.queryCompletions(`
		SELECT id, habit_id, day, notes, created_at
		FROM habit_completions WHERE day = ?`, day)
}

func (s *Store) GetAllCompletions() ([]models.HabitCompletion, error) {
	return s.queryCompletions(`
		SELECT id, habit_id, day, notes, created_at
		FROM habit_completions ORDER BY day DESC`)
}

// DeleteCompletion removes the completion for a (habit, day) pair.
// Deleting a record that does not exist is not an error.
func (s *Store) DeleteCompletion(habitID, day string) error {
	_, err := s.db.Exec(`
		DELETE FROM habit_completions WHERE habit_id = ? AND day = ?`, habitID, day)
	return err
}
