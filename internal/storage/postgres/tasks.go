package postgres

import (
	"database/sql"

	"github.com/ameridyn/pantheon/internal/constants"
	"github.com/ameridyn/pantheon/internal/models"
)

func (s *Store) AddTask(task models.Task) error {
	return s.UpdateTask(task)
}

func (s *Store) GetTask(id string) (models.Task, error) {
	row := s.db.QueryRow(`
		SELECT id, title, description, category, priority, completed, completed_at, due_date, created_at, order_index
		FROM tasks WHERE id = $1`, id)
	return scanTask(row)
}

func (s *Store) GetAllTasks() ([]models.Task, error) {
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
	var completedAt sql.NullTime
	if task.CompletedAt != nil {
		completedAt = sql.NullTime{Time: *task.CompletedAt, Valid: true}
	}
	var dueDate sql.NullString
	if task.DueDate != "" {
		dueDate = sql.NullString{String: task.DueDate, Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO tasks (id, title, description, category, priority, completed, completed_at, due_date, created_at, order_index)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			category = EXCLUDED.category,
			priority = EXCLUDED.priority,
			completed = EXCLUDED.completed,
			completed_at = EXCLUDED.completed_at,
			due_date = EXCLUDED.due_date,
			order_index = EXCLUDED.order_index`,
		task.ID, task.Title, task.Description, task.Category, string(task.Priority),
		task.Completed, completedAt, dueDate, task.CreatedAt, task.OrderIndex)

	return err
}

func (s *Store) DeleteTask(id string) error {
	_, err := s.db.Exec(`DELETE FROM tasks WHERE id = $1`, id)
	return err
}

func scanTask(row interface{ Scan(...interface{}) error }) (models.Task, error) {
	var task models.Task
	var priority string
	var completedAt sql.NullTime
	var dueDate sql.NullString

	err := row.Scan(&task.ID, &task.Title, &task.Description, &task.Category, &priority,
		&task.Completed, &completedAt, &dueDate, &task.CreatedAt, &task.OrderIndex)
	if err != nil {
		return models.Task{}, err
	}

	task.Priority = constants.Priority(priority)
	if completedAt.Valid {
		t := completedAt.Time
		task.CompletedAt = &t
	}
	if dueDate.Valid {
		task.DueDate = dueDate.String
	}

	return task, nil
}
