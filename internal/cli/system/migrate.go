package system

import (
	"fmt"
	"io/fs"

	"github.com/ameridyn/pantheon/internal/cli"
	"github.com/ameridyn/pantheon/internal/migration"
	"github.com/ameridyn/pantheon/internal/storage/sqlite"
	"github.com/ameridyn/pantheon/migrations"
)

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	defer ctx.Store.Close()

	sqliteStore, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return fmt.Errorf("migrate command only supports SQLite storage; PostgreSQL migrations run on load")
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
	count, err := runner.ApplyMigrations(func(msg string) {
		fmt.Println(msg)
	})
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if count == 0 {
		fmt.Println("No migrations to apply. Database is up to date.")
	} else {
		fmt.Printf("\nSuccessfully applied %d migration(s).\n", count)
	}
	return nil
}
