package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/ameridyn/pantheon/internal/engine"
	"github.com/ameridyn/pantheon/internal/models"
	"github.com/ameridyn/pantheon/internal/utils"
	"github.com/ameridyn/pantheon/internal/validation"
)

type HabitCmd struct {
	Add       HabitAddCmd       `cmd:"" help:"Add a new habit."`
	List      HabitListCmd      `cmd:"" help:"List habits."`
	Toggle    HabitToggleCmd    `cmd:"" help:"Toggle a habit's completion for a day."`
	Today     HabitTodayCmd     `cmd:"" help:"Show today's habit status."`
	Streaks   HabitStreaksCmd   `cmd:"" help:"Show current streaks."`
	Log       HabitLogCmd       `cmd:"" help:"Show habit history."`
	Archive   HabitArchiveCmd   `cmd:"" help:"Archive a habit."`
	Unarchive HabitUnarchiveCmd `cmd:"" help:"Unarchive a habit."`
}

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Description string `help:"Optional description." default:""`
	Icon        string `help:"Icon name shown in the TUI." default:"circle"`
	Color       string `help:"Accent color (hex)." default:"#7c3aed"`
	Frequency   string `help:"Habit frequency." default:"daily"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	habit := models.Habit{
		ID:          uuid.New().String(),
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
		Color:       c.Color,
		Frequency:   c.Frequency,
		CreatedAt:   ctx.Clock.Now(),
	}

	if result := validation.New().ValidateHabit(habit); result.HasIssues() {
		return fmt.Errorf("%s", strings.TrimSpace(result.FormatReport()))
	}

	// Check if habit with same name already exists
	if _, err := ctx.Store.GetHabitByName(c.Name); err == nil {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}

	if err := ctx.Store.AddHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s\n", c.Name)
	return nil
}

type HabitListCmd struct {
	Archived bool `help:"Include archived habits."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.GetAllHabits(c.Archived)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, habit := range habits {
		status := ""
		if habit.Archived() {
			status = " [ARCHIVED]"
		}
		fmt.Printf("%s%s\n", habit.Name, status)
	}
	return nil
}

type HabitToggleCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
	Note string `help:"Optional note for this completion." default:""`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	day := c.Date
	if day == "" {
		day = utils.Today(ctx.Clock)
	} else if !utils.ValidDayKey(day) {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", day)
	}

	toggler := engine.NewToggler(ctx.Store, ctx.Clock)
	nowCompleted, err := toggler.ToggleDay(habit.ID, day, toggler.RecordedOn(habit.ID, day), c.Note)
	if err != nil {
		return err
	}

	if nowCompleted {
		fmt.Printf("Marked habit %q for %s\n", c.Name, day)
	} else {
		fmt.Printf("Unmarked habit %q for %s\n", c.Name, day)
	}
	return nil
}

type HabitTodayCmd struct{}

func (c *HabitTodayCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.GetAllHabits(false)
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	today := utils.Today(ctx.Clock)
	completions, err := ctx.Store.GetCompletionsForDay(today)
	if err != nil {
		return err
	}

	completedSet := make(map[string]bool)
	for _, c := range completions {
		completedSet[c.HabitID] = true
	}

	fmt.Printf("Habits for %s:\n\n", today)
	done := 0
	for _, habit := range habits {
		status := "[ ]"
		if completedSet[habit.ID] {
			status = "[x]"
			done++
		}
		fmt.Printf("%s %s\n", status, habit.Name)
	}
	fmt.Printf("\nCompleted: %d/%d\n", done, len(habits))
	return nil
}

type HabitStreaksCmd struct{}

func (c *HabitStreaksCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.GetAllHabits(false)
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	today := utils.Today(ctx.Clock)
	for _, habit := range habits {
		completions, err := ctx.Store.GetCompletionsForHabit(habit.ID)
		if err != nil {
			return err
		}
		streak := engine.HabitStreak(completions, today)
		unit := "days"
		if streak == 1 {
			unit = "day"
		}
		fmt.Printf("%-24s %d %s\n", habit.Name, streak, unit)
	}
	return nil
}

type HabitLogCmd struct {
	Days  int    `help:"Number of days to show." default:"14"`
	Habit string `help:"Show log for a specific habit only."`
}

func (c *HabitLogCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.GetAllHabits(false)
	if err != nil {
		return err
	}
	if c.Habit != "" {
		habit, err := ctx.Store.GetHabitByName(c.Habit)
		if err != nil {
			return fmt.Errorf("habit %q not found", c.Habit)
		}
		habits = []models.Habit{habit}
	}
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	// build the day window, oldest first
	days := make([]string, c.Days)
	day := utils.Today(ctx.Clock)
	for i := c.Days - 1; i >= 0; i-- {
		days[i] = day
		prev, err := utils.PreviousDay(day)
		if err != nil {
			return err
		}
		day = prev
	}

	sort.Slice(habits, func(i, j int) bool { return habits[i].Name < habits[j].Name })

	for _, habit := range habits {
		completions, err := ctx.Store.GetCompletionsForHabit(habit.ID)
		if err != nil {
			return err
		}
		recorded := make(map[string]bool, len(completions))
		for _, comp := range completions {
			recorded[comp.Day] = true
		}

		var row strings.Builder
		for _, d := range days {
			if recorded[d] {
				row.WriteString("█")
			} else {
				row.WriteString("·")
			}
		}
		fmt.Printf("%-24s %s\n", habit.Name, row.String())
	}
	return nil
}

type HabitArchiveCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitArchiveCmd) Run(ctx *Context) error {
	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}
	if err := ctx.Store.ArchiveHabit(habit.ID); err != nil {
		return err
	}
	fmt.Printf("Archived habit: %s\n", c.Name)
	return nil
}

type HabitUnarchiveCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitUnarchiveCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.GetAllHabits(true)
	if err != nil {
		return err
	}
	for _, habit := range habits {
		if habit.Name == c.Name && habit.Archived() {
			if err := ctx.Store.UnarchiveHabit(habit.ID); err != nil {
				return err
			}
			fmt.Printf("Unarchived habit: %s\n", c.Name)
			return nil
		}
	}
	return fmt.Errorf("archived habit %q not found", c.Name)
}
