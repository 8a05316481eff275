package postgres

import (
	"database/sql"
	"fmt"

	"github.com/ameridyn/pantheon/internal/models"
)

func (s *Store) AddSession(session models.FocusSession) error {
	var endedAt sql.NullTime
	if session.EndedAt != nil {
		endedAt = sql.NullTime{Time: *session.EndedAt, Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO focus_sessions (id, duration_minutes, actual_minutes, task_name, completed, started_at, ended_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		session.ID, session.DurationMinutes, session.ActualMinutes, session.TaskName,
		session.Completed, session.StartedAt, endedAt)
	return err
}

func (s *Store) GetSession(id string) (models.FocusSession, error) {
	row := s.db.QueryRow(`
		SELECT id, duration_minutes, actual_minutes, task_name, completed, started_at, ended_at
		FROM focus_sessions WHERE id = $1`, id)
	return scanSession(row)
}

func (s *Store) UpdateSession(session models.FocusSession) error {
	var endedAt sql.NullTime
	if session.EndedAt != nil {
		endedAt = sql.NullTime{Time: *session.EndedAt, Valid: true}
	}

	result, err := s.db.Exec(`
		UPDATE focus_sessions
		SET duration_minutes = $1, actual_minutes = $2, task_name = $3, completed = $4, ended_at = $5
		WHERE id = $6`,
		session.DurationMinutes, session.ActualMinutes, session.TaskName,
		session.Completed, endedAt, session.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("focus session %s not found", session.ID)
	}

	return nil
}

func (s *Store) GetCompletedSessions() ([]models.FocusSession, error) {
	rows, err := s.db.Query(`
		SELECT id, duration_minutes, actual_minutes, task_name, completed, started_at, ended_at
		FROM focus_sessions WHERE completed = TRUE ORDER BY started_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []models.FocusSession
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	return sessions, rows.Err()
}

func scanSession(row interface{ Scan(...interface{}) error }) (models.FocusSession, error) {
	var session models.FocusSession
	var endedAt sql.NullTime

	err := row.Scan(&session.ID, &session.DurationMinutes, &session.ActualMinutes,
		&session.TaskName, &session.Completed, &session.StartedAt, &endedAt)
	if err != nil {
		return models.FocusSession{}, err
	}

	if endedAt.Valid {
		t := endedAt.Time
		session.EndedAt = &t
	}

	return session, nil
}
