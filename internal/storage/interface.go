package storage

import "github.com/ameridyn/pantheon/internal/models"

// Provider is the record repository every feature talks to. Both backends
// (SQLite and Postgres) implement it; nothing above this interface knows
// which one is in use.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetHabitByName(name string) (models.Habit, error)
	GetAllHabits(includeArchived bool) ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	ArchiveHabit(id string) error
	UnarchiveHabit(id string) error

	// Habit completions. AddCompletion must uphold the per-(habit, day)
	// uniqueness invariant; DeleteCompletion of a missing record is not an error.
	AddCompletion(models.HabitCompletion) error
	GetCompletion(habitID, day string) (models.HabitCompletion, error)
	GetCompletionsForHabit(habitID string) ([]models.HabitCompletion, error)
	GetCompletionsForDay(day string) ([]models.HabitCompletion, error)
	GetAllCompletions() ([]models.HabitCompletion, error)
	DeleteCompletion(habitID, day string) error

	// Focus sessions
	AddSession(models.FocusSession) error
	GetSession(id string) (models.FocusSession, error)
	UpdateSession(models.FocusSession) error
	GetCompletedSessions() ([]models.FocusSession, error)

	// Tasks
	AddTask(models.Task) error
	GetTask(id string) (models.Task, error)
	GetAllTasks() ([]models.Task, error)
	UpdateTask(models.Task) error
	DeleteTask(id string) error

	// Journal entries
	AddEntry(models.JournalEntry) error
	GetEntry(id string) (models.JournalEntry, error)
	GetAllEntries() ([]models.JournalEntry, error)
	UpdateEntry(models.JournalEntry) error
	DeleteEntry(id string) error

	// Achievements. AddAchievement must uphold the per-type uniqueness
	// invariant; inserting an already-unlocked type is a silent no-op.
	AddAchievement(models.Achievement) error
	GetAllAchievements() ([]models.Achievement, error)

	// Utils
	GetConfigPath() string
}
