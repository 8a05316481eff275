package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ameridyn/pantheon/internal/cli"
	"github.com/ameridyn/pantheon/internal/storage"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting the existing database before initialization."`
	Source string `help:"Source database path or connection string to copy data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		if c.Source != "" {
			absDbPath, err := filepath.Abs(dbPath)
			if err == nil {
				dbPath = absDbPath
			}
			absSource, err := filepath.Abs(c.Source)
			if err == nil && absSource == dbPath {
				return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
			}
		}
		if _, err := os.Stat(dbPath); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized pantheon storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Printf("Copying data from: %s\n", c.Source)
		if err := c.copyData(ctx, c.Source); err != nil {
			return fmt.Errorf("data copy failed: %w", err)
		}
		fmt.Println("Data copy completed successfully!")
	}
	return nil
}

// copyData pulls every record collection out of a source store and writes
// it into the freshly initialized destination. It is how a local SQLite
// database moves to a remote PostgreSQL one and back.
func (c *InitCmd) copyData(ctx *cli.Context, sourcePath string) error {
	var sourceStore storage.Provider
	if storage.IsPostgresConnString(sourcePath) {
		if storage.HasEmbeddedCredentials(sourcePath) {
			return fmt.Errorf("source connection string contains embedded credentials; use the OS keyring, environment variables, or .pgpass instead")
		}
		sourceStore = storage.NewPostgresStore(sourcePath)
	} else {
		sourceStore = storage.NewSQLiteStore(sourcePath)
	}

	if err := sourceStore.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer sourceStore.Close()

	fmt.Println("  Copying habits...")
	habits, err := sourceStore.GetAllHabits(true)
	if err != nil {
		return fmt.Errorf("failed to get habits from source: %w", err)
	}
	for _, habit := range habits {
		if err := ctx.Store.AddHabit(habit); err != nil {
			return fmt.Errorf("failed to add habit %s: %w", habit.ID, err)
		}
	}
	fmt.Printf("    Copied %d habits\n", len(habits))

	fmt.Println("  Copying completions...")
	completions, err := sourceStore.GetAllCompletions()
	if err != nil {
		return fmt.Errorf("failed to get completions from source: %w", err)
	}
	for _, completion := range completions {
		if err := ctx.Store.AddCompletion(completion); err != nil {
			return fmt.Errorf("failed to add completion %s: %w", completion.ID, err)
		}
	}
	fmt.Printf("    Copied %d completions\n", len(completions))

	fmt.Println("  Copying focus sessions...")
	sessions, err := sourceStore.GetCompletedSessions()
	if err != nil {
		return fmt.Errorf("failed to get focus sessions from source: %w", err)
	}
	for _, session := range sessions {
		if err := ctx.Store.AddSession(session); err != nil {
			return fmt.Errorf("failed to add focus session %s: %w", session.ID, err)
		}
	}
	fmt.Printf("    Copied %d focus sessions\n", len(sessions))

	fmt.Println("  Copying tasks...")
	tasks, err := sourceStore.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to get tasks from source: %w", err)
	}
	for _, task := range tasks {
		if err := ctx.Store.AddTask(task); err != nil {
			return fmt.Errorf("failed to add task %s: %w", task.ID, err)
		}
	}
	fmt.Printf("    Copied %d tasks\n", len(tasks))

	fmt.Println("  Copying journal entries...")
	entries, err := sourceStore.GetAllEntries()
	if err != nil {
		return fmt.Errorf("failed to get journal entries from source: %w", err)
	}
	for _, entry := range entries {
		if err := ctx.Store.AddEntry(entry); err != nil {
			return fmt.Errorf("failed to add journal entry %s: %w", entry.ID, err)
		}
	}
	fmt.Printf("    Copied %d journal entries\n", len(entries))

	fmt.Println("  Copying achievements...")
	achievements, err := sourceStore.GetAllAchievements()
	if err != nil {
		return fmt.Errorf("failed to get achievements from source: %w", err)
	}
	for _, achievement := range achievements {
		if err := ctx.Store.AddAchievement(achievement); err != nil {
			return fmt.Errorf("failed to add achievement %s: %w", achievement.ID, err)
		}
	}
	fmt.Printf("    Copied %d achievements\n", len(achievements))

	return nil
}
