package models

import (
	"time"

	"github.com/ameridyn/pantheon/internal/constants"
)

// Task is a one-off to-do item, distinct from a recurring habit.
type Task struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Category    string             `json:"category"`
	Priority    constants.Priority `json:"priority"`
	Completed   bool               `json:"completed"`
	CompletedAt *time.Time         `json:"completed_at,omitempty"`
	DueDate     string             `json:"due_date,omitempty"` // YYYY-MM-DD format
	CreatedAt   time.Time          `json:"created_at"`
	OrderIndex  int                `json:"order_index"`
}
