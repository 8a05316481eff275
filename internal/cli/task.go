package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ameridyn/pantheon/internal/constants"
	"github.com/ameridyn/pantheon/internal/engine"
	"github.com/ameridyn/pantheon/internal/models"
	"github.com/ameridyn/pantheon/internal/validation"
)

type TaskCmd struct {
	Add    TaskAddCmd    `cmd:"" help:"Add a new task."`
	List   TaskListCmd   `cmd:"" help:"List tasks."`
	Done   TaskDoneCmd   `cmd:"" help:"Toggle a task's completion."`
	Delete TaskDeleteCmd `cmd:"" help:"Delete a task."`
}

type TaskAddCmd struct {
	Title       string `arg:"" help:"Task title."`
	Description string `help:"Optional description." default:""`
	Category    string `help:"Task category." default:""`
	Priority    string `help:"Priority: low, medium, or high." default:"medium"`
	Due         string `help:"Due date in YYYY-MM-DD format." default:""`
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	existing, err := ctx.Store.GetAllTasks()
	if err != nil {
		return err
	}

	task := models.Task{
		ID:          uuid.New().String(),
		Title:       c.Title,
		Description: c.Description,
		Category:    c.Category,
		Priority:    constants.Priority(c.Priority),
		DueDate:     c.Due,
		CreatedAt:   ctx.Clock.Now(),
		OrderIndex:  len(existing),
	}

	if result := validation.New().ValidateTask(task); result.HasIssues() {
		return fmt.Errorf("%s", strings.TrimSpace(result.FormatReport()))
	}

	if err := ctx.Store.AddTask(task); err != nil {
		return err
	}
	fmt.Printf("Added task: %s\n", c.Title)
	return nil
}

type TaskListCmd struct {
	View string `help:"Filter view: all, active, or completed." default:"all" enum:"all,active,completed"`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return err
	}

	filtered := engine.FilterTasks(tasks, constants.FilterView(c.View))
	if len(filtered) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	for _, task := range filtered {
		status := "[ ]"
		if task.Completed {
			status = "[x]"
		}
		line := fmt.Sprintf("%s %s", status, task.Title)
		if task.Priority == constants.PriorityHigh && !task.Completed {
			line += " (!)"
		}
		if task.DueDate != "" {
			line += fmt.Sprintf(" due %s", task.DueDate)
		}
		fmt.Println(line)
	}

	counts := engine.CountTasks(tasks)
	fmt.Printf("\n%d total, %d active, %d completed\n", counts.Total, counts.Active, counts.Completed)
	return nil
}

type TaskDoneCmd struct {
	Title string `arg:"" help:"Task title."`
}

func (c *TaskDoneCmd) Run(ctx *Context) error {
	task, err := findTask(ctx, c.Title)
	if err != nil {
		return err
	}

	task.Completed = !task.Completed
	if task.Completed {
		now := ctx.Clock.Now()
		task.CompletedAt = &now
	} else {
		task.CompletedAt = nil
	}

	if err := ctx.Store.UpdateTask(task); err != nil {
		return err
	}

	if task.Completed {
		fmt.Printf("Completed task: %s\n", task.Title)
	} else {
		fmt.Printf("Reopened task: %s\n", task.Title)
	}
	return nil
}

type TaskDeleteCmd struct {
	Title string `arg:"" help:"Task title."`
}

func (c *TaskDeleteCmd) Run(ctx *Context) error {
	task, err := findTask(ctx, c.Title)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteTask(task.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted task: %s\n", task.Title)
	return nil
}

func findTask(ctx *Context, title string) (models.Task, error) {
	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return models.Task{}, err
	}
	for _, task := range tasks {
		if task.Title == title {
			return task, nil
		}
	}
	return models.Task{}, fmt.Errorf("task %q not found", title)
}
