package cli

import (
	"github.com/ameridyn/pantheon/internal/backup"
	"github.com/ameridyn/pantheon/internal/logger"
	"github.com/ameridyn/pantheon/internal/storage"
	"github.com/ameridyn/pantheon/internal/utils"
)

type Context struct {
	Store storage.Provider
	Clock utils.Clock
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}
