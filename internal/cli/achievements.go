package cli

import (
	"fmt"

	"github.com/ameridyn/pantheon/internal/engine"
)

type AchievementsCmd struct {
	Check AchievementsCheckCmd `cmd:"" help:"Evaluate rules and unlock anything newly earned."`
	List  AchievementsListCmd  `cmd:"" help:"List achievements and progress." default:"1"`
}

type AchievementsCheckCmd struct{}

func (c *AchievementsCheckCmd) Run(ctx *Context) error {
	stats, err := engine.GatherStats(ctx.Store, ctx.Clock)
	if err != nil {
		return err
	}

	earned, err := engine.NewChecker(ctx.Store, ctx.Clock).Check(stats)
	if err != nil {
		return err
	}

	if len(earned) == 0 {
		fmt.Println("No new achievements.")
		return nil
	}
	for _, a := range earned {
		fmt.Printf("Unlocked: %s - %s\n", a.Title, a.Description)
	}
	return nil
}

type AchievementsListCmd struct{}

func (c *AchievementsListCmd) Run(ctx *Context) error {
	stats, err := engine.GatherStats(ctx.Store, ctx.Clock)
	if err != nil {
		return err
	}
	existing, err := ctx.Store.GetAllAchievements()
	if err != nil {
		return err
	}
	unlocked := engine.UnlockedTypes(existing)

	for _, rule := range engine.Catalog() {
		marker := "[ ]"
		detail := fmt.Sprintf("%d%%", engine.Progress(stats, rule))
		if unlocked[rule.Type] {
			marker = "[*]"
			detail = "unlocked"
		}
		fmt.Printf("%s %-22s %-34s %s\n", marker, rule.Title, rule.Description, detail)
	}
	return nil
}
