// Package backup manages snapshots of the local database file.
package backup

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ameridyn/pantheon/internal/constants"
)

// Info describes a single backup file on disk.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager creates, lists, and restores database backups. Backups live in a
// backups/ directory next to the database file.
type Manager struct {
	dbPath    string
	backupDir string
}

func NewManager(dbPath string) *Manager {
	return &Manager{
		dbPath:    dbPath,
		backupDir: filepath.Join(filepath.Dir(dbPath), constants.BackupDirName),
	}
}

func (m *Manager) BackupDir() string {
	return m.backupDir
}

// CreateBackup snapshots the database and prunes backups beyond the
// retention limit. It returns the path of the new backup file.
func (m *Manager) CreateBackup() (string, error) {
	return m.createBackup(false)
}

// skipRotation prevents recursive pruning when restore snapshots the
// current database first.
func (m *Manager) createBackup(skipRotation bool) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}
	if _, err := os.Stat(m.dbPath); os.IsNotExist(err) {
		return "", fmt.Errorf("database does not exist: %s", m.dbPath)
	}

	backupPath, err := m.nextBackupPath()
	if err != nil {
		return "", err
	}
	if err := m.snapshot(backupPath); err != nil {
		return "", fmt.Errorf("failed to backup database: %w", err)
	}

	if !skipRotation {
		if err := m.rotate(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to rotate old backups: %v\n", err)
		}
	}
	return backupPath, nil
}

// nextBackupPath picks an unused timestamped filename, falling back to
// second precision and then a counter when backups collide.
func (m *Manager) nextBackupPath() (string, error) {
	name := func(stamp string) string {
		return filepath.Join(m.backupDir, constants.BackupFilePrefix+stamp+constants.BackupFileSuffix)
	}

	path := name(time.Now().Format("20060102-1504"))
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path, nil
	}

	stamp := time.Now().Format("20060102-150405")
	path = name(stamp)
	for counter := 1; ; counter++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
		path = name(fmt.Sprintf("%s-%d", stamp, counter))
	}
}

// snapshot writes a clean copy of the database via VACUUM INTO, falling
// back to a plain file copy on SQLite versions without it.
func (m *Manager) snapshot(destPath string) error {
	srcDB, err := sql.Open("sqlite", m.dbPath+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open source database: %w", err)
	}
	defer srcDB.Close()

	var count int
	if err := srcDB.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}

	if _, err := srcDB.Exec("VACUUM INTO ?", destPath); err != nil {
		srcDB.Close()
		return copyFile(m.dbPath, destPath)
	}
	return nil
}

// ListBackups returns the available backups, newest first.
func (m *Manager) ListBackups() ([]Info, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []Info{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, constants.BackupFileSuffix) {
			continue
		}

		timestamp, ok := parseStamp(strings.TrimSuffix(strings.TrimPrefix(name, constants.BackupFilePrefix), constants.BackupFileSuffix))
		if !ok {
			continue
		}

		path := filepath.Join(m.backupDir, name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		backups = append(backups, Info{Path: path, Timestamp: timestamp, Size: info.Size()})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// parseStamp reads the timestamp out of a backup filename, tolerating the
// optional trailing collision counter.
func parseStamp(stamp string) (time.Time, bool) {
	parts := strings.Split(stamp, "-")
	if len(parts) > 2 {
		last := parts[len(parts)-1]
		if len(last) != 4 && len(last) != 6 && isDigits(last) {
			stamp = strings.Join(parts[:len(parts)-1], "-")
		}
	}

	if t, err := time.Parse("20060102-1504", stamp); err == nil {
		return t, true
	}
	if t, err := time.Parse("20060102-150405", stamp); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}

func (m *Manager) rotate() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}
	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// RestoreBackup replaces the database with the given backup. The current
// database is itself backed up first, and the swap goes through a temp
// file and rename.
func (m *Manager) RestoreBackup(backupPath string) error {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file does not exist: %s", backupPath)
	}
	if err := m.verify(backupPath); err != nil {
		return fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	if _, err := os.Stat(m.dbPath); err == nil {
		currentBackup, err := m.createBackup(true)
		if err != nil {
			return fmt.Errorf("failed to backup current database before restore: %w", err)
		}
		fmt.Printf("Created backup of current database: %s\n", filepath.Base(currentBackup))
	}

	tempPath := m.dbPath + ".restore.tmp"
	if err := copyFile(backupPath, tempPath); err != nil {
		return fmt.Errorf("failed to copy backup file: %w", err)
	}
	if err := os.Rename(tempPath, m.dbPath); err != nil {
		if removeErr := os.Remove(tempPath); removeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to remove temporary file %s: %v\n", tempPath, removeErr)
		}
		return fmt.Errorf("failed to restore database: %w", err)
	}
	return nil
}

func (m *Manager) verify(path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	var count int
	return db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count)
}

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}
	return destFile.Sync()
}
