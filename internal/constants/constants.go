package constants

// SessionState represents the current view of the TUI application
type SessionState int

// FilterView selects which tasks are shown in the task list
type FilterView string

// Priority represents a task's priority level
type Priority string

const (
	AppName            = "pantheon"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/pantheon/pantheon.db"
	Version            = "v0.3.0"

	// DateFormat is the standard calendar-day format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DefaultFocusMinutes is the focus session length selected before the user picks one
	DefaultFocusMinutes = 25

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "pantheon-"
	BackupFileSuffix = ".db"

	// Priority levels
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"

	// Task filter views
	FilterAll       FilterView = "all"
	FilterActive    FilterView = "active"
	FilterCompleted FilterView = "completed"
)

// Session states
const (
	StateDashboard SessionState = iota
	StateHabits
	StateFocus
	StateTasks
	StateJournal
	StateAchievements
	StateAddHabit
	StateAddTask
	StateAddEntry
	StateEditEntry
	StateConfirmDelete
	StateConfirmArchive
)

// FocusDurationPresets are the selectable focus session lengths, in minutes.
var FocusDurationPresets = []int{15, 25, 45, 60}

// DashboardQuotes rotate on the overview screen, one per calendar day.
var DashboardQuotes = []string{
	"The sun's journey begins with a single ray of light.",
	"Each day is a gift from Helios, use it wisely.",
	"Consistency is the chariot that carries you to greatness.",
	"Like the sun, rise again each day with renewed purpose.",
}

// Moods are the journal mood tags offered in the entry form.
var Moods = []string{
	"😊 Happy",
	"😌 Calm",
	"🤔 Thoughtful",
	"💪 Motivated",
	"😔 Reflective",
	"😴 Tired",
}
