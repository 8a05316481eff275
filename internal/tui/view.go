package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ameridyn/pantheon/internal/constants"
	"github.com/ameridyn/pantheon/internal/engine"
	"github.com/ameridyn/pantheon/internal/timer"
	"github.com/ameridyn/pantheon/internal/utils"
)

var tabTitles = []string{"Dashboard", "Habits", "Focus", "Tasks", "Journal", "Achievements"}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case constants.StateAddHabit, constants.StateAddTask, constants.StateAddEntry, constants.StateEditEntry:
		return m.viewForm()
	case constants.StateConfirmDelete:
		return m.viewConfirm("Delete this item?", "Deleted items cannot be recovered.")
	case constants.StateConfirmArchive:
		return m.viewConfirm("Archive this habit?", "Archived habits keep their history but stop appearing in lists.")
	}

	var b strings.Builder
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	switch m.state {
	case constants.StateDashboard:
		b.WriteString(m.viewDashboard())
	case constants.StateHabits:
		b.WriteString(m.viewHabits())
	case constants.StateFocus:
		b.WriteString(m.viewFocus())
	case constants.StateTasks:
		b.WriteString(m.viewTasks())
	case constants.StateJournal:
		b.WriteString(m.viewJournal())
	case constants.StateAchievements:
		b.WriteString(m.viewAchievements())
	}

	if m.unlockMessage != "" {
		b.WriteString("\n" + successStyle.Render(m.unlockMessage))
	}
	if m.statusError != "" {
		b.WriteString("\n" + dangerStyle.Render("Error: "+m.statusError))
	}

	b.WriteString("\n\n" + m.help.View(m))
	return docStyle.Render(b.String())
}

func (m Model) viewTabs() string {
	tabs := make([]string, len(tabTitles))
	for i, title := range tabTitles {
		if tabOrder[i] == m.state {
			tabs[i] = activeTabStyle.Render(title)
		} else {
			tabs[i] = inactiveTabStyle.Render(title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewDashboard() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Overview") + "\n\n")
	b.WriteString(fmt.Sprintf("  Habits today     %d/%d\n", m.stats.CompletedToday, m.stats.TotalHabits))
	b.WriteString(fmt.Sprintf("  Longest streak   %d days\n", m.stats.LongestStreak))
	b.WriteString(fmt.Sprintf("  Completions      %d\n", m.stats.TotalCompletions))
	b.WriteString(fmt.Sprintf("  Focus time       %s\n", utils.FormatFocusTotal(m.stats.TotalFocusMin)))
	b.WriteString(fmt.Sprintf("  Tasks done       %d/%d\n", m.stats.CompletedTasks, m.stats.TotalTasks))
	b.WriteString(fmt.Sprintf("  Journal entries  %d\n", m.stats.JournalEntries))

	unlocked := len(m.achievements)
	b.WriteString(fmt.Sprintf("  Achievements     %d/%d\n", unlocked, len(engine.Catalog())))

	b.WriteString("\n" + mutedStyle.Render(`"`+dailyQuote(utils.Today(m.clock))+`"`))
	return b.String()
}

// dailyQuote picks the overview quote for a calendar day. Deterministic per
// day so the line does not flicker on every refresh.
func dailyQuote(day string) string {
	sum := 0
	for _, r := range day {
		sum += int(r)
	}
	return constants.DashboardQuotes[sum%len(constants.DashboardQuotes)]
}

func (m Model) viewHabits() string {
	if len(m.habits) == 0 {
		return mutedStyle.Render("No habits yet. Press 'a' to add one.")
	}

	today := utils.Today(m.clock)
	var b strings.Builder
	b.WriteString(titleStyle.Render("Habits") + "\n\n")
	for i, habit := range m.habits {
		mark := "[ ]"
		if m.completedToday[habit.ID] {
			mark = "[x]"
		}

		var own []string
		for _, c := range m.completions {
			if c.HabitID == habit.ID {
				own = append(own, c.Day)
			}
		}
		streak := engine.Streak(own, today)

		line := fmt.Sprintf("%s %s", mark, habit.Name)
		if streak > 0 {
			line += mutedStyle.Render(fmt.Sprintf("  (%d day streak)", streak))
		}
		if i == m.habitIndex {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	done := 0
	for _, habit := range m.habits {
		if m.completedToday[habit.ID] {
			done++
		}
	}
	b.WriteString("\n" + mutedStyle.Render(fmt.Sprintf("Completed today: %d/%d", done, len(m.habits))))
	return b.String()
}

func (m Model) viewFocus() string {
	if m.form != nil {
		return m.form.View()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Focus") + "\n\n")
	b.WriteString(timerStyle.Render(m.timer.Display()) + "\n\n")

	switch m.timer.State() {
	case timer.Idle:
		b.WriteString(mutedStyle.Render("Press 's' to start a session.") + "\n")
	case timer.Running:
		b.WriteString(fmt.Sprintf("Focusing on %s\n", titleStyle.Render(m.timer.TaskName())))
	case timer.Paused:
		b.WriteString(warningStyle.Render("Paused") + "  " + m.timer.TaskName() + "\n")
	}

	if m.timer.State() != timer.Idle {
		total := m.timer.DurationMinutes() * 60
		if total > 0 {
			elapsed := float64(m.timer.Elapsed()) / float64(total)
			b.WriteString("\n" + m.focusProgress.ViewAs(elapsed) + "\n")
		}
	}

	presets := make([]string, len(constants.FocusDurationPresets))
	for i, preset := range constants.FocusDurationPresets {
		label := fmt.Sprintf("%dm", preset)
		if i == m.presetIndex {
			label = activeTabStyle.Render(label)
		} else {
			label = mutedStyle.Render(label)
		}
		presets[i] = label
	}
	b.WriteString("\n" + strings.Join(presets, " "))
	if m.timer.State() == timer.Idle {
		b.WriteString(mutedStyle.Render("  press 't' to change"))
	}
	b.WriteString("\n" + mutedStyle.Render(fmt.Sprintf("Sessions today: %d", m.sessionsToday)))
	if m.formError != "" {
		b.WriteString("\n" + dangerStyle.Render(m.formError))
	}
	return b.String()
}

func (m Model) viewTasks() string {
	visible := m.visibleTasks()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Tasks") + "  " + mutedStyle.Render(fmt.Sprintf("[%s]", m.taskView)) + "\n\n")

	if len(visible) == 0 {
		b.WriteString(mutedStyle.Render("Nothing here. Press 'a' to add a task or 'f' to change the filter."))
		return b.String()
	}

	for i, task := range visible {
		mark := "[ ]"
		if task.Completed {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s", mark, task.Title)
		if task.Priority == constants.PriorityHigh && !task.Completed {
			line += " " + dangerStyle.Render("(!)")
		}
		if task.DueDate != "" {
			line += mutedStyle.Render("  due " + task.DueDate)
		}
		if i == m.taskIndex {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	counts := engine.CountTasks(m.tasks)
	b.WriteString("\n" + mutedStyle.Render(fmt.Sprintf("%d active, %d completed", counts.Active, counts.Completed)))
	return b.String()
}

func (m Model) viewJournal() string {
	if len(m.entries) == 0 {
		return mutedStyle.Render("No entries yet. Press 'a' to write one.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Journal") + "\n\n")
	for i, entry := range m.entries {
		line := fmt.Sprintf("%s  %s", entry.EntryDate, entry.Title)
		if entry.Mood != "" {
			line += "  " + entry.Mood
		}
		if i == m.entryIndex {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")

		if i == m.entryIndex && entry.Content != "" {
			preview := entry.Content
			if len(preview) > 120 {
				preview = preview[:120] + "..."
			}
			b.WriteString(mutedStyle.Render("    "+strings.ReplaceAll(preview, "\n", " ")) + "\n")
		}
	}
	return b.String()
}

func (m Model) viewAchievements() string {
	unlocked := engine.UnlockedTypes(m.achievements)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Achievements") + "\n\n")
	for _, rule := range engine.Catalog() {
		if unlocked[rule.Type] {
			b.WriteString(successStyle.Render("[*]") + fmt.Sprintf(" %s", rule.Title))
			b.WriteString(mutedStyle.Render("  "+rule.Description) + "\n")
			continue
		}
		pct := engine.Progress(m.stats, rule)
		b.WriteString(fmt.Sprintf("[ ] %s", rule.Title))
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  %s (%d%%)", rule.Description, pct)) + "\n")
	}
	return b.String()
}

func (m Model) viewForm() string {
	if m.form == nil {
		return ""
	}
	view := m.form.View()
	if m.formError != "" {
		view += "\n" + dangerStyle.Render(m.formError)
	}
	return docStyle.Render(view)
}

func (m Model) viewConfirm(question, detail string) string {
	content := dangerStyle.Render(question) + "\n\n" +
		mutedStyle.Render(detail) + "\n\n" +
		warningStyle.Render("[y] Yes / [n] No")

	width := max(m.width, 40)
	height := max(m.height, 10)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
