package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ameridyn/pantheon/internal/models"
	"github.com/ameridyn/pantheon/internal/utils"
	"github.com/ameridyn/pantheon/internal/validation"
)

type JournalCmd struct {
	Add    JournalAddCmd    `cmd:"" help:"Write a new journal entry."`
	List   JournalListCmd   `cmd:"" help:"List journal entries."`
	Show   JournalShowCmd   `cmd:"" help:"Show a journal entry."`
	Delete JournalDeleteCmd `cmd:"" help:"Delete a journal entry."`
}

type JournalAddCmd struct {
	Title   string `arg:"" help:"Entry title."`
	Content string `help:"Entry body text." default:""`
	Mood    string `help:"Mood tag." default:""`
	Date    string `help:"Entry date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *JournalAddCmd) Run(ctx *Context) error {
	day := c.Date
	if day == "" {
		day = utils.Today(ctx.Clock)
	}

	entry := models.JournalEntry{
		ID:        uuid.New().String(),
		Title:     c.Title,
		Content:   c.Content,
		Mood:      c.Mood,
		EntryDate: day,
		CreatedAt: ctx.Clock.Now(),
		UpdatedAt: ctx.Clock.Now(),
	}

	if result := validation.New().ValidateEntry(entry); result.HasIssues() {
		return fmt.Errorf("%s", strings.TrimSpace(result.FormatReport()))
	}

	if err := ctx.Store.AddEntry(entry); err != nil {
		return err
	}
	fmt.Printf("Added journal entry: %s\n", c.Title)
	return nil
}

type JournalListCmd struct{}

func (c *JournalListCmd) Run(ctx *Context) error {
	entries, err := ctx.Store.GetAllEntries()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No journal entries found.")
		return nil
	}

	for _, entry := range entries {
		line := fmt.Sprintf("%s  %s", entry.EntryDate, entry.Title)
		if entry.Mood != "" {
			line += fmt.Sprintf("  %s", entry.Mood)
		}
		fmt.Println(line)
	}
	return nil
}

type JournalShowCmd struct {
	Title string `arg:"" help:"Entry title."`
}

func (c *JournalShowCmd) Run(ctx *Context) error {
	entry, err := findEntry(ctx, c.Title)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n", entry.Title, entry.EntryDate)
	if entry.Mood != "" {
		fmt.Printf("Mood: %s\n", entry.Mood)
	}
	if entry.Content != "" {
		fmt.Printf("\n%s\n", entry.Content)
	}
	return nil
}

type JournalDeleteCmd struct {
	Title string `arg:"" help:"Entry title."`
}

func (c *JournalDeleteCmd) Run(ctx *Context) error {
	entry, err := findEntry(ctx, c.Title)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteEntry(entry.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted journal entry: %s\n", entry.Title)
	return nil
}

func findEntry(ctx *Context, title string) (models.JournalEntry, error) {
	entries, err := ctx.Store.GetAllEntries()
	if err != nil {
		return models.JournalEntry{}, err
	}
	for _, entry := range entries {
		if entry.Title == title {
			return entry, nil
		}
	}
	return models.JournalEntry{}, fmt.Errorf("journal entry %q not found", title)
}
