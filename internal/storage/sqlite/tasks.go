package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ameridyn/pantheon/internal/constants"
	"github.com/ameridyn/pantheon/internal/models"
)

func (s *Store) AddTask(task models.Task) error {
	return s.UpdateTask(task)
}

func (s *Store) GetTask(id string) (models.Task, error) {
	row := s.db.QueryRow(`
		SELECT id, title, description, category, priority, completed, completed_at, due_date, created_at, order_index
		FROM tasks WHERE id = ?`, id)
	return scanTask(row)
}

func (s *Store) GetAllTasks() ([]models.Task, error) {
	// Ordering matches the task board: explicit order first, newest after
	rows, err := s.db.Query(`
		SELECT id, title, description, category, priority, completed, completed_at, due_date, created_at, order_index
		FROM tasks ORDER BY order_index ASC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

func (s *Store) UpdateTask(task models.Task) error {
	var completedAt, dueDate sql.NullString
	if task.CompletedAt != nil {
		completedAt = sql.NullString{String: task.CompletedAt.Format(time.RFC3339), Valid: true}
	}
	if task.DueDate != "" {
		dueDate = sql.NullString{String: task.DueDate, Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO tasks (id, title, description, category, priority, completed, completed_at, due_date, created_at, order_index)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			category = excluded.category,
			priority = excluded.priority,
			completed = excluded.completed,
			completed_at = excluded.completed_at,
			due_date = excluded.due_date,
			order_index = excluded.order_index`,
		task.ID, task.Title, task.Description, task.Category, string(task.Priority),
		boolToInt(task.Completed), completedAt, dueDate,
		task.CreatedAt.Format(time.RFC3339), task.OrderIndex)

	return err
}

func (s *Store) DeleteTask(id string) error {
	_, err := s.db.Exec(`DELETE FROM tasks WHERE id = ?`, id)
	return err
}

func scanTask(row interface{ Scan(...interface{}) error }) (models.Task, error) {
	var task models.Task
	var priority string
	var completed int
	var completedAt, dueDate sql.NullString
	var createdAt string

	err := row.Scan(&task.ID, &task.Title, &task.Description, &task.Category, &priority,
		&completed, &completedAt, &dueDate, &createdAt, &task.OrderIndex)
	if err != nil {
		return models.Task{}, err
	}

	task.Priority = constants.Priority(priority)
	task.Completed = completed != 0
	task.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if completedAt.Valid {
		t, err := time.Parse(time.RFC3339, completedAt.String)
		if err != nil {
			return models.Task{}, fmt.Errorf("failed to parse completed_at: %w", err)
		}
		task.CompletedAt = &t
	}
	if dueDate.Valid {
		task.DueDate = dueDate.String
	}

	return task, nil
}
