package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/ameridyn/pantheon/internal/constants"
	"github.com/ameridyn/pantheon/internal/utils"
)

type HabitFormModel struct {
	Name        string
	Description string
	Icon        string
}

type TaskFormModel struct {
	Title       string
	Description string
	Category    string
	Priority    constants.Priority
	DueDate     string
}

type EntryFormModel struct {
	Title   string
	Content string
	Mood    string
}

type FocusFormModel struct {
	TaskName string
}

func requireNonEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}

// NewHabitForm creates the form for adding habits
func NewHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&fm.Name).
				Validate(requireNonEmpty("habit name")),
			huh.NewInput().
				Title("Description").
				Value(&fm.Description),
			huh.NewSelect[string]().
				Title("Icon").
				Options(
					huh.NewOption("Circle", "circle"),
					huh.NewOption("Star", "star"),
					huh.NewOption("Heart", "heart"),
					huh.NewOption("Flame", "flame"),
					huh.NewOption("Book", "book"),
				).
				Value(&fm.Icon),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewTaskForm creates the form for adding tasks
func NewTaskForm(fm *TaskFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&fm.Title).
				Validate(requireNonEmpty("task title")),
			huh.NewInput().
				Title("Description").
				Value(&fm.Description),
			huh.NewInput().
				Title("Category").
				Value(&fm.Category),
			huh.NewSelect[constants.Priority]().
				Title("Priority").
				Options(
					huh.NewOption("Low", constants.PriorityLow),
					huh.NewOption("Medium", constants.PriorityMedium),
					huh.NewOption("High", constants.PriorityHigh),
				).
				Value(&fm.Priority),
			huh.NewInput().
				Title("Due Date (YYYY-MM-DD)").
				Description("Leave empty for no due date").
				Value(&fm.DueDate).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					if !utils.ValidDayKey(s) {
						return fmt.Errorf("invalid date, use YYYY-MM-DD")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewEntryForm creates the form for writing journal entries
func NewEntryForm(fm *EntryFormModel) *huh.Form {
	moodOptions := make([]huh.Option[string], 0, len(constants.Moods)+1)
	moodOptions = append(moodOptions, huh.NewOption("(none)", ""))
	for _, mood := range constants.Moods {
		moodOptions = append(moodOptions, huh.NewOption(mood, mood))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&fm.Title).
				Validate(requireNonEmpty("entry title")),
			huh.NewText().
				Title("Content").
				Value(&fm.Content),
			huh.NewSelect[string]().
				Title("Mood").
				Options(moodOptions...).
				Value(&fm.Mood),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewFocusForm creates the form for naming a focus session
func NewFocusForm(fm *FocusFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What are you focusing on?").
				Value(&fm.TaskName).
				Validate(requireNonEmpty("task name")),
		),
	).WithTheme(huh.ThemeDracula())
}
