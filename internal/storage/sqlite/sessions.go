package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ameridyn/pantheon/internal/models"
)

func (s *Store) AddSession(session models.FocusSession) error {
	var endedAt sql.NullString
	if session.EndedAt != nil {
		endedAt = sql.NullString{String: session.EndedAt.Format(time.RFC3339), Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO focus_sessions (id, duration_minutes, actual_minutes, task_name, completed, started_at, ended_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		session.ID, session.DurationMinutes, session.ActualMinutes, session.TaskName,
		boolToInt(session.Completed), session.StartedAt.Format(time.RFC3339), endedAt)
	return err
}

func (s *Store) GetSession(id string) (models.FocusSession, error) {
	row := s.db.QueryRow(`
		SELECT id, duration_minutes, actual_minutes, task_name, completed, started_at, ended_at
		FROM focus_sessions WHERE id = ?`, id)
	return scanSession(row)
}

func (s *Store) UpdateSession(session models.FocusSession) error {
	var endedAt sql.NullString
	if session.EndedAt != nil {
		endedAt = sql.NullString{String: session.EndedAt.Format(time.RFC3339), Valid: true}
	}

	result, err := s.db.Exec(`
		UPDATE focus_sessions
		SET duration_minutes = ?, actual_minutes = ?, task_name = ?, completed = ?, ended_at = ?
		WHERE id = ?`,
		session.DurationMinutes, session.ActualMinutes, session.TaskName,
		boolToInt(session.Completed), endedAt, session.ID)
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
		FROM focus_sessions WHERE completed = 1 ORDER BY started_at DESC`)
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
	var completed int
	var startedAt string
	var endedAt sql.NullString

	err := row.Scan(&session.ID, &session.DurationMinutes, &session.ActualMinutes,
		&session.TaskName, &completed, &startedAt, &endedAt)
	if err != nil {
		return models.FocusSession{}, err
	}

	session.Completed = completed != 0
	session.StartedAt, err = time.Parse(time.RFC3339, startedAt)
	if err != nil {
		return models.FocusSession{}, fmt.Errorf("failed to parse started_at: %w", err)
	}
	if endedAt.Valid {
		t, err := time.Parse(time.RFC3339, endedAt.String)
		if err != nil {
			return models.FocusSession{}, fmt.Errorf("failed to parse ended_at: %w", err)
		}
		session.EndedAt = &t
	}

	return session, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
