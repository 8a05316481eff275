// Package validation checks user input and repository contents before they
// reach storage.
package validation

import (
	"fmt"
	"strings"

	"github.com/ameridyn/pantheon/internal/constants"
	"github.com/ameridyn/pantheon/internal/models"
	"github.com/ameridyn/pantheon/internal/utils"
)

// IssueType represents the type of validation issue
type IssueType string

const (
	IssueEmptyTitle         IssueType = "empty_title"
	IssueDuplicateHabitName IssueType = "duplicate_habit_name"
	IssueInvalidPriority    IssueType = "invalid_priority"
	IssueInvalidDate        IssueType = "invalid_date"
	IssueInvalidDuration    IssueType = "invalid_duration"
	IssueDuplicateDay       IssueType = "duplicate_day"
)

// Issue represents a single detected problem
type Issue struct {
	Type        IssueType
	Description string
	Items       []string // names or IDs involved
}

// Result contains all detected issues
type Result struct {
	Issues []Issue
}

// HasIssues returns true if there are any issues
func (r *Result) HasIssues() bool {
	return len(r.Issues) > 0
}

// FormatReport returns a human-readable report of all issues
func (r *Result) FormatReport() string {
	if !r.HasIssues() {
		return "No issues detected."
	}

	report := "Issues detected:\n"
	for _, issue := range r.Issues {
		report += fmt.Sprintf("- %s\n", issue.Description)
	}
	return report
}

func (r *Result) add(t IssueType, description string, items ...string) {
	r.Issues = append(r.Issues, Issue{Type: t, Description: description, Items: items})
}

// Validator checks input and stored records
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateHabit checks a habit before it is written.
func (v *Validator) ValidateHabit(habit models.Habit) Result {
	result := Result{}
	if strings.TrimSpace(habit.Name) == "" {
		result.add(IssueEmptyTitle, "habit name must not be empty")
	}
	return result
}

// ValidateTask checks a task before it is written.
func (v *Validator) ValidateTask(task models.Task) Result {
	result := Result{}
	if strings.TrimSpace(task.Title) == "" {
		result.add(IssueEmptyTitle, "task title must not be empty")
	}
	switch task.Priority {
	case "", constants.PriorityLow, constants.PriorityMedium, constants.PriorityHigh:
	default:
		result.add(IssueInvalidPriority, fmt.Sprintf("task %q has invalid priority %q", task.Title, task.Priority), task.Title)
	}
	if task.DueDate != "" && !utils.ValidDayKey(task.DueDate) {
		result.add(IssueInvalidDate, fmt.Sprintf("task %q has invalid due date %q", task.Title, task.DueDate), task.Title)
	}
	return result
}

// ValidateEntry checks a journal entry before it is written.
func (v *Validator) ValidateEntry(entry models.JournalEntry) Result {
	result := Result{}
	if strings.TrimSpace(entry.Title) == "" {
		result.add(IssueEmptyTitle, "journal entry title must not be empty")
	}
	if entry.EntryDate != "" && !utils.ValidDayKey(entry.EntryDate) {
		result.add(IssueInvalidDate, fmt.Sprintf("journal entry %q has invalid date %q", entry.Title, entry.EntryDate), entry.Title)
	}
	return result
}

// ValidateFocus checks the inputs for a new focus session.
func (v *Validator) ValidateFocus(taskName string, durationMinutes int) Result {
	result := Result{}
	if strings.TrimSpace(taskName) == "" {
		result.add(IssueEmptyTitle, "focus session task name must not be empty")
	}
	if durationMinutes <= 0 {
		result.add(IssueInvalidDuration, fmt.Sprintf("focus duration must be positive, got %d", durationMinutes))
	}
	return result
}

// ValidateHabits scans the habit collection for duplicate names. Archived
// habits are skipped so a retired name can be reused.
func (v *Validator) ValidateHabits(habits []models.Habit) Result {
	result := Result{}

	nameCount := make(map[string][]string)
	for _, habit := range habits {
		if habit.Archived() || habit.Name == "" {
			continue
		}
		nameCount[habit.Name] = append(nameCount[habit.Name], habit.ID)
	}
	for name, ids := range nameCount {
		if len(ids) > 1 {
			result.add(IssueDuplicateHabitName,
				fmt.Sprintf("Duplicate habit name: %q (IDs: %v)", name, ids), ids...)
		}
	}
	return result
}

// ValidateCompletions scans stored completions for records that break the
// one-per-habit-per-day invariant or carry malformed day keys.
func (v *Validator) ValidateCompletions(completions []models.HabitCompletion) Result {
	result := Result{}

	seen := make(map[string][]string)
	for _, c := range completions {
		if !utils.ValidDayKey(c.Day) {
			result.add(IssueInvalidDate,
				fmt.Sprintf("completion %s has invalid day %q", c.ID, c.Day), c.ID)
			continue
		}
		key := c.HabitID + "|" + c.Day
		seen[key] = append(seen[key], c.ID)
	}
	for key, ids := range seen {
		if len(ids) > 1 {
			result.add(IssueDuplicateDay,
				fmt.Sprintf("habit day %s recorded %d times (IDs: %v)", key, len(ids), ids), ids...)
		}
	}
	return result
}
