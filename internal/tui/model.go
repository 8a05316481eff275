package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ameridyn/pantheon/internal/constants"
	"github.com/ameridyn/pantheon/internal/engine"
	"github.com/ameridyn/pantheon/internal/models"
	"github.com/ameridyn/pantheon/internal/storage"
	"github.com/ameridyn/pantheon/internal/timer"
	"github.com/ameridyn/pantheon/internal/utils"
)

// TickMsg drives the focus countdown once per second.
type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type Model struct {
	store storage.Provider
	clock utils.Clock

	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model

	// data snapshots, refreshed after every mutation
	habits         []models.Habit
	completions    []models.HabitCompletion
	completedToday map[string]bool
	tasks          []models.Task
	entries        []models.JournalEntry
	achievements   []models.Achievement
	stats          engine.Stats
	sessionsToday  int

	timer         *timer.Machine
	focusProgress progress.Model
	presetIndex   int

	taskView   constants.FilterView
	habitIndex int
	taskIndex  int
	entryIndex int

	form      *huh.Form
	habitForm *HabitFormModel
	taskForm  *TaskFormModel
	entryForm *EntryFormModel
	focusForm *FocusFormModel

	habitToArchiveID string
	taskToDeleteID   string
	entryToDeleteID  string

	unlockMessage string
	formError     string
	statusError   string

	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider, clock utils.Clock) Model {
	m := Model{
		store:         store,
		clock:         clock,
		state:         constants.StateDashboard,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		timer:         timer.NewMachine(store, clock),
		focusProgress: progress.New(progress.WithDefaultGradient()),
		presetIndex:   defaultPresetIndex(),
		taskView:      constants.FilterAll,
	}
	m.refresh()
	return m
}

func defaultPresetIndex() int {
	for i, preset := range constants.FocusDurationPresets {
		if preset == constants.DefaultFocusMinutes {
			return i
		}
	}
	return 0
}

// refresh reloads every snapshot from the store and evaluates achievement
// rules against the fresh statistics.
func (m *Model) refresh() {
	m.statusError = ""

	habits, err := m.store.GetAllHabits(false)
	if err != nil {
		m.statusError = err.Error()
		return
	}
	m.habits = habits

	if m.completions, err = m.store.GetAllCompletions(); err != nil {
		m.statusError = err.Error()
		return
	}
	today := utils.Today(m.clock)
	m.completedToday = make(map[string]bool)
	for _, c := range m.completions {
		if c.Day == today {
			m.completedToday[c.HabitID] = true
		}
	}

	if m.tasks, err = m.store.GetAllTasks(); err != nil {
		m.statusError = err.Error()
		return
	}
	if m.entries, err = m.store.GetAllEntries(); err != nil {
		m.statusError = err.Error()
		return
	}

	sessions, err := m.store.GetCompletedSessions()
	if err != nil {
		m.statusError = err.Error()
		return
	}
	m.sessionsToday = 0
	for _, s := range sessions {
		if utils.DayKey(s.StartedAt) == today {
			m.sessionsToday++
		}
	}

	stats, err := engine.GatherStats(m.store, m.clock)
	if err != nil {
		m.statusError = err.Error()
		return
	}
	m.stats = stats

	earned, err := engine.NewChecker(m.store, m.clock).Check(stats)
	if err != nil {
		m.statusError = err.Error()
		return
	}
	if len(earned) > 0 {
		m.unlockMessage = "Unlocked: " + earned[0].Title
	}

	if m.achievements, err = m.store.GetAllAchievements(); err != nil {
		m.statusError = err.Error()
	}

	m.clampCursors()
}

func (m *Model) clampCursors() {
	if m.habitIndex >= len(m.habits) {
		m.habitIndex = max(0, len(m.habits)-1)
	}
	if m.taskIndex >= len(m.visibleTasks()) {
		m.taskIndex = max(0, len(m.visibleTasks())-1)
	}
	if m.entryIndex >= len(m.entries) {
		m.entryIndex = max(0, len(m.entries)-1)
	}
}

func (m Model) visibleTasks() []models.Task {
	return engine.FilterTasks(m.tasks, m.taskView)
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateHabits:
		keys = append(keys, m.keys.Toggle, m.keys.Add, m.keys.Archive)
	case constants.StateFocus:
		keys = append(keys, m.keys.Start, m.keys.Pause, m.keys.Reset, m.keys.Duration)
	case constants.StateTasks:
		keys = append(keys, m.keys.Toggle, m.keys.Add, m.keys.Delete, m.keys.Filter)
	case constants.StateJournal:
		keys = append(keys, m.keys.Add, m.keys.Delete)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case constants.StateHabits:
		actions = []key.Binding{m.keys.Toggle, m.keys.Add, m.keys.Archive}
	case constants.StateFocus:
		actions = []key.Binding{m.keys.Start, m.keys.Pause, m.keys.Reset, m.keys.Duration}
	case constants.StateTasks:
		actions = []key.Binding{m.keys.Toggle, m.keys.Add, m.keys.Delete, m.keys.Filter}
	case constants.StateJournal:
		actions = []key.Binding{m.keys.Add, m.keys.Delete}
	}
	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return tick()
}
