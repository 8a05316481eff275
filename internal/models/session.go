package models

import "time"

// FocusSession is a single countdown timer session. A session is open while
// Completed is false and EndedAt is nil.
type FocusSession struct {
	ID              string     `json:"id"`
	DurationMinutes int        `json:"duration_minutes"`
	ActualMinutes   int        `json:"actual_minutes"`
	TaskName        string     `json:"task_name"`
	Completed       bool       `json:"completed"`
	StartedAt       time.Time  `json:"started_at"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
}

// Open reports whether the session record has not been closed yet.
func (s FocusSession) Open() bool {
	return !s.Completed && s.EndedAt == nil
}
