package cli

import (
	"fmt"

	"github.com/ameridyn/pantheon/internal/utils"
)

type FocusCmd struct {
	Log   FocusLogCmd   `cmd:"" help:"Show completed focus sessions." default:"1"`
	Total FocusTotalCmd `cmd:"" help:"Show total focus time."`
}

type FocusLogCmd struct {
	Limit int `help:"Maximum sessions to show." default:"20"`
}

func (c *FocusLogCmd) Run(ctx *Context) error {
	sessions, err := ctx.Store.GetCompletedSessions()
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No completed focus sessions yet.")
		return nil
	}

	shown := 0
	for _, s := range sessions {
		if shown >= c.Limit {
			break
		}
		fmt.Printf("%s  %3dm  %s\n", s.StartedAt.Format("2006-01-02 15:04"), s.ActualMinutes, s.TaskName)
		shown++
	}
	return nil
}

type FocusTotalCmd struct{}

func (c *FocusTotalCmd) Run(ctx *Context) error {
	sessions, err := ctx.Store.GetCompletedSessions()
	if err != nil {
		return err
	}

	total := 0
	for _, s := range sessions {
		total += s.ActualMinutes
	}
	fmt.Printf("Total focus time: %s across %d sessions\n", utils.FormatFocusTotal(total), len(sessions))
	return nil
}
