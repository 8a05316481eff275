package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/ameridyn/pantheon/internal/constants"
	"github.com/ameridyn/pantheon/internal/engine"
	"github.com/ameridyn/pantheon/internal/models"
	"github.com/ameridyn/pantheon/internal/timer"
	"github.com/ameridyn/pantheon/internal/utils"
)

// tabOrder is the tab cycle; form and confirm states are reached from
// these, never tabbed into.
var tabOrder = []constants.SessionState{
	constants.StateDashboard,
	constants.StateHabits,
	constants.StateFocus,
	constants.StateTasks,
	constants.StateJournal,
	constants.StateAchievements,
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.focusProgress.Width = min(msg.Width-8, 60)
		return m, nil

	case TickMsg:
		completed, err := m.timer.Tick()
		if err != nil {
			m.statusError = err.Error()
		}
		if completed {
			m.refresh()
		}
		return m, tick()
	}

	switch m.state {
	case constants.StateAddHabit, constants.StateAddTask, constants.StateAddEntry, constants.StateEditEntry:
		return m.updateForm(msg)
	case constants.StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	case constants.StateConfirmArchive:
		return m.updateConfirmArchive(msg)
	}

	// focus form runs inside the Focus tab
	if m.form != nil && m.state == constants.StateFocus {
		return m.updateFocusForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(keyMsg, m.keys.Tab):
		m.state = nextTab(m.state, 1)
		m.unlockMessage = ""
		return m, nil
	case key.Matches(keyMsg, m.keys.ShiftTab):
		m.state = nextTab(m.state, -1)
		m.unlockMessage = ""
		return m, nil
	}

	switch m.state {
	case constants.StateHabits:
		return m.updateHabits(keyMsg)
	case constants.StateFocus:
		return m.updateFocus(keyMsg)
	case constants.StateTasks:
		return m.updateTasks(keyMsg)
	case constants.StateJournal:
		return m.updateJournal(keyMsg)
	}
	return m, nil
}

func nextTab(current constants.SessionState, delta int) constants.SessionState {
	for i, s := range tabOrder {
		if s == current {
			return tabOrder[(i+delta+len(tabOrder))%len(tabOrder)]
		}
	}
	return constants.StateDashboard
}

func (m Model) updateHabits(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.habitIndex > 0 {
			m.habitIndex--
		}
	case key.Matches(msg, m.keys.Down):
		if m.habitIndex < len(m.habits)-1 {
			m.habitIndex++
		}
	case key.Matches(msg, m.keys.Toggle), key.Matches(msg, m.keys.Enter):
		if len(m.habits) == 0 {
			break
		}
		habit := m.habits[m.habitIndex]
		toggler := engine.NewToggler(m.store, m.clock)
		if _, err := toggler.Toggle(habit.ID, m.completedToday[habit.ID]); err != nil {
			m.statusError = err.Error()
			break
		}
		m.refresh()
	case key.Matches(msg, m.keys.Add):
		m.habitForm = &HabitFormModel{Icon: "circle"}
		m.form = NewHabitForm(m.habitForm)
		m.previousState = m.state
		m.state = constants.StateAddHabit
		return m, m.form.Init()
	case key.Matches(msg, m.keys.Archive):
		if len(m.habits) == 0 {
			break
		}
		m.habitToArchiveID = m.habits[m.habitIndex].ID
		m.previousState = m.state
		m.state = constants.StateConfirmArchive
	}
	return m, nil
}

func (m Model) updateFocus(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Start):
		if m.timer.State() != timer.Idle {
			break
		}
		m.focusForm = &FocusFormModel{TaskName: m.timer.TaskName()}
		m.form = NewFocusForm(m.focusForm)
		return m, m.form.Init()
	case key.Matches(msg, m.keys.Pause):
		switch m.timer.State() {
		case timer.Running:
			m.timer.Pause()
		case timer.Paused:
			m.timer.Resume()
		}
	case key.Matches(msg, m.keys.Reset):
		if err := m.timer.Reset(); err != nil {
			m.statusError = err.Error()
		}
	case key.Matches(msg, m.keys.Duration):
		if m.timer.State() != timer.Idle {
			break
		}
		m.presetIndex = (m.presetIndex + 1) % len(constants.FocusDurationPresets)
		if err := m.timer.SetDuration(constants.FocusDurationPresets[m.presetIndex]); err != nil {
			m.statusError = err.Error()
		}
	}
	return m, nil
}

func (m Model) updateFocusForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if err := m.timer.Start(strings.TrimSpace(m.focusForm.TaskName)); err != nil {
			m.formError = err.Error()
		} else {
			m.formError = ""
		}
		m.form = nil
	case huh.StateAborted:
		m.form = nil
	}
	return m, cmd
}

func (m Model) updateTasks(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visibleTasks()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.taskIndex > 0 {
			m.taskIndex--
		}
	case key.Matches(msg, m.keys.Down):
		if m.taskIndex < len(visible)-1 {
			m.taskIndex++
		}
	case key.Matches(msg, m.keys.Filter):
		switch m.taskView {
		case constants.FilterAll:
			m.taskView = constants.FilterActive
		case constants.FilterActive:
			m.taskView = constants.FilterCompleted
		default:
			m.taskView = constants.FilterAll
		}
		m.taskIndex = 0
	case key.Matches(msg, m.keys.Toggle), key.Matches(msg, m.keys.Enter):
		if len(visible) == 0 {
			break
		}
		task := visible[m.taskIndex]
		task.Completed = !task.Completed
		if task.Completed {
			now := m.clock.Now()
			task.CompletedAt = &now
		} else {
			task.CompletedAt = nil
		}
		if err := m.store.UpdateTask(task); err != nil {
			m.statusError = err.Error()
			break
		}
		m.refresh()
	case key.Matches(msg, m.keys.Add):
		m.taskForm = &TaskFormModel{Priority: constants.PriorityMedium}
		m.form = NewTaskForm(m.taskForm)
		m.previousState = m.state
		m.state = constants.StateAddTask
		return m, m.form.Init()
	case key.Matches(msg, m.keys.Delete):
		if len(visible) == 0 {
			break
		}
		m.taskToDeleteID = visible[m.taskIndex].ID
		m.previousState = m.state
		m.state = constants.StateConfirmDelete
	}
	return m, nil
}

func (m Model) updateJournal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.entryIndex > 0 {
			m.entryIndex--
		}
	case key.Matches(msg, m.keys.Down):
		if m.entryIndex < len(m.entries)-1 {
			m.entryIndex++
		}
	case key.Matches(msg, m.keys.Add):
		m.entryForm = &EntryFormModel{}
		m.form = NewEntryForm(m.entryForm)
		m.previousState = m.state
		m.state = constants.StateAddEntry
		return m, m.form.Init()
	case key.Matches(msg, m.keys.Enter):
		if len(m.entries) == 0 {
			break
		}
		entry := m.entries[m.entryIndex]
		m.entryForm = &EntryFormModel{Title: entry.Title, Content: entry.Content, Mood: entry.Mood}
		m.form = NewEntryForm(m.entryForm)
		m.previousState = m.state
		m.state = constants.StateEditEntry
		return m, m.form.Init()
	case key.Matches(msg, m.keys.Delete):
		if len(m.entries) == 0 {
			break
		}
		m.entryToDeleteID = m.entries[m.entryIndex].ID
		m.previousState = m.state
		m.state = constants.StateConfirmDelete
	}
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = m.previousState
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if err := m.saveForm(); err != nil {
			// stay in the form so the input can be corrected
			m.formError = err.Error()
			return m, cmd
		}
		m.formError = ""
		m.refresh()
		m.state = m.previousState
		m.form = nil
	case huh.StateAborted:
		m.state = m.previousState
		m.form = nil
	}
	return m, cmd
}

func (m *Model) saveForm() error {
	switch m.state {
	case constants.StateAddHabit:
		return m.store.AddHabit(models.Habit{
			ID:          uuid.New().String(),
			Name:        strings.TrimSpace(m.habitForm.Name),
			Description: m.habitForm.Description,
			Icon:        m.habitForm.Icon,
			Color:       "#7c3aed",
			Frequency:   "daily",
			CreatedAt:   m.clock.Now(),
		})
	case constants.StateAddTask:
		return m.store.AddTask(models.Task{
			ID:          uuid.New().String(),
			Title:       strings.TrimSpace(m.taskForm.Title),
			Description: m.taskForm.Description,
			Category:    m.taskForm.Category,
			Priority:    m.taskForm.Priority,
			DueDate:     strings.TrimSpace(m.taskForm.DueDate),
			CreatedAt:   m.clock.Now(),
			OrderIndex:  len(m.tasks),
		})
	case constants.StateAddEntry:
		return m.store.AddEntry(models.JournalEntry{
			ID:        uuid.New().String(),
			Title:     strings.TrimSpace(m.entryForm.Title),
			Content:   m.entryForm.Content,
			Mood:      m.entryForm.Mood,
			EntryDate: utils.Today(m.clock),
			CreatedAt: m.clock.Now(),
			UpdatedAt: m.clock.Now(),
		})
	case constants.StateEditEntry:
		entry := m.entries[m.entryIndex]
		entry.Title = strings.TrimSpace(m.entryForm.Title)
		entry.Content = m.entryForm.Content
		entry.Mood = m.entryForm.Mood
		entry.UpdatedAt = m.clock.Now()
		return m.store.UpdateEntry(entry)
	}
	return nil
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		var err error
		if m.taskToDeleteID != "" {
			err = m.store.DeleteTask(m.taskToDeleteID)
		} else if m.entryToDeleteID != "" {
			err = m.store.DeleteEntry(m.entryToDeleteID)
		}
		if err != nil {
			m.statusError = err.Error()
		}
		m.taskToDeleteID = ""
		m.entryToDeleteID = ""
		m.refresh()
		m.state = m.previousState
	case "n", "N", "esc", "q":
		m.taskToDeleteID = ""
		m.entryToDeleteID = ""
		m.state = m.previousState
	}
	return m, nil
}

func (m Model) updateConfirmArchive(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		if err := m.store.ArchiveHabit(m.habitToArchiveID); err != nil {
			m.statusError = err.Error()
		}
		m.habitToArchiveID = ""
		m.refresh()
		m.state = m.previousState
	case "n", "N", "esc", "q":
		m.habitToArchiveID = ""
		m.state = m.previousState
	}
	return m, nil
}
