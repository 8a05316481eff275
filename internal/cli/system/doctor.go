package system

import (
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/ameridyn/pantheon/internal/backup"
	"github.com/ameridyn/pantheon/internal/cli"
	"github.com/ameridyn/pantheon/internal/constants"
	"github.com/ameridyn/pantheon/internal/migration"
	"github.com/ameridyn/pantheon/internal/storage/sqlite"
	"github.com/ameridyn/pantheon/internal/validation"
	"github.com/ameridyn/pantheon/migrations"
)

type DoctorCmd struct{}

type check struct {
	name string
	fn   func(*cli.Context) error
	warn bool // failures report as warnings instead of errors
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	checks := []check{
		{name: "Database reachable", fn: checkDBReachable},
		{name: "Schema version", fn: checkSchemaVersion},
		{name: "Backups present", fn: checkBackupsPresent, warn: true},
		{name: "Clock sanity", fn: func(*cli.Context) error { return checkClock() }},
		{name: "Concurrent processes", fn: func(*cli.Context) error { return checkConcurrentProcesses() }, warn: true},
		{name: "Habit integrity", fn: checkHabitIntegrity},
		{name: "Completion integrity", fn: checkCompletionIntegrity},
		{name: "Achievement integrity", fn: checkAchievementIntegrity},
	}

	hasError := false
	for _, c := range checks {
		err := c.fn(ctx)
		switch {
		case err == nil:
			fmt.Printf("✓ %s: OK\n", c.name)
		case c.warn:
			fmt.Printf("⚠ %s: WARNING\n   %v\n", c.name, err)
		default:
			fmt.Printf("❌ %s: FAIL\n   Error: %v\n", c.name, err)
			hasError = true
		}
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if sqliteStore, ok := ctx.Store.(*sqlite.Store); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return nil
	}

	db := sqliteStore.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	migrationFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	runner := migration.NewRunner(db, migrationFS)

	currentVersion, err := runner.GetCurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}
	latestVersion, err := runner.GetLatestVersion()
	if err != nil {
		return fmt.Errorf("failed to get latest schema version: %w", err)
	}

	if currentVersion > latestVersion {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", currentVersion, latestVersion)
	}
	if currentVersion < latestVersion {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d (run 'pantheon migrate')", currentVersion, latestVersion)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'pantheon backup create'")
	}
	return nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

// checkConcurrentProcesses scans the process table for other running
// pantheon instances. The local database assumes a single writer.
func checkConcurrentProcesses() error {
	processes, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	self := os.Getpid()
	others := 0
	for _, p := range processes {
		if p.Pid() == self {
			continue
		}
		if strings.HasPrefix(p.Executable(), constants.AppName) {
			others++
		}
	}
	if others > 0 {
		return fmt.Errorf("found %d other running pantheon process(es); concurrent writes can corrupt the local database", others)
	}
	return nil
}

func checkHabitIntegrity(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(true)
	if err != nil {
		return fmt.Errorf("failed to get habits: %w", err)
	}

	ids := make(map[string]bool, len(habits))
	for _, habit := range habits {
		if ids[habit.ID] {
			return fmt.Errorf("duplicate habit ID found: %s", habit.ID)
		}
		ids[habit.ID] = true
	}

	if result := validation.New().ValidateHabits(habits); result.HasIssues() {
		return fmt.Errorf("%s", strings.TrimSpace(result.FormatReport()))
	}
	return nil
}

func checkCompletionIntegrity(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits(true)
	if err != nil {
		return fmt.Errorf("failed to get habits: %w", err)
	}
	completions, err := ctx.Store.GetAllCompletions()
	if err != nil {
		return fmt.Errorf("failed to get completions: %w", err)
	}

	known := make(map[string]bool, len(habits))
	for _, habit := range habits {
		known[habit.ID] = true
	}
	orphaned := 0
	for _, completion := range completions {
		if !known[completion.HabitID] {
			orphaned++
		}
	}
	if orphaned > 0 {
		return fmt.Errorf("found %d orphaned completions (referencing non-existent habits)", orphaned)
	}

	if result := validation.New().ValidateCompletions(completions); result.HasIssues() {
		return fmt.Errorf("%s", strings.TrimSpace(result.FormatReport()))
	}
	return nil
}

func checkAchievementIntegrity(ctx *cli.Context) error {
	achievements, err := ctx.Store.GetAllAchievements()
	if err != nil {
		return fmt.Errorf("failed to get achievements: %w", err)
	}

	types := make(map[string]bool, len(achievements))
	for _, a := range achievements {
		if types[a.Type] {
			return fmt.Errorf("duplicate achievement type found: %s", a.Type)
		}
		types[a.Type] = true
	}
	return nil
}
