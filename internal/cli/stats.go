package cli

import (
	"fmt"

	"github.com/ameridyn/pantheon/internal/engine"
	"github.com/ameridyn/pantheon/internal/utils"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	stats, err := engine.GatherStats(ctx.Store, ctx.Clock)
	if err != nil {
		return err
	}

	fmt.Println("Progress overview")
	fmt.Println()
	fmt.Printf("  Habits:          %d active, %d completed today\n", stats.TotalHabits, stats.CompletedToday)
	fmt.Printf("  Longest streak:  %d days\n", stats.LongestStreak)
	fmt.Printf("  Completions:     %d lifetime\n", stats.TotalCompletions)
	fmt.Printf("  Focus time:      %s\n", utils.FormatFocusTotal(stats.TotalFocusMin))
	fmt.Printf("  Tasks:           %d/%d completed\n", stats.CompletedTasks, stats.TotalTasks)
	fmt.Printf("  Journal entries: %d\n", stats.JournalEntries)
	return nil
}
