package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ameridyn/pantheon/internal/models"
	"github.com/ameridyn/pantheon/internal/utils"
)

// Metric names the statistic an achievement rule watches.
type Metric string

const (
	MetricTotalHabits    Metric = "total_habits"
	MetricLongestStreak  Metric = "longest_streak"
	MetricFocusHours     Metric = "focus_hours"
	MetricCompletedTasks Metric = "completed_tasks"
	MetricJournalEntries Metric = "journal_entries"
)

// Rule is a single achievement definition: unlock when the watched metric
// reaches the threshold.
type Rule struct {
	Type        string
	Title       string
	Description string
	Icon        string
	Metric      Metric
	Threshold   int
}

// Catalog is the fixed set of achievement rules, in display order.
func Catalog() []Rule {
	return []Rule{
		{Type: "first_habit", Title: "First Steps", Description: "Created your first habit", Icon: "star", Metric: MetricTotalHabits, Threshold: 1},
		{Type: "habit_master", Title: "Habit Master", Description: "Track 5 different habits", Icon: "crown", Metric: MetricTotalHabits, Threshold: 5},
		{Type: "week_warrior", Title: "Week Warrior", Description: "Maintain a 7-day streak", Icon: "target", Metric: MetricLongestStreak, Threshold: 7},
		{Type: "dedication", Title: "Unwavering Dedication", Description: "Achieve a 30-day streak", Icon: "trophy", Metric: MetricLongestStreak, Threshold: 30},
		{Type: "focus_beginner", Title: "Focus Initiate", Description: "Complete 10 hours of focus time", Icon: "zap", Metric: MetricFocusHours, Threshold: 10},
		{Type: "focus_master", Title: "Flow State Master", Description: "Complete 50 hours of focus time", Icon: "crown", Metric: MetricFocusHours, Threshold: 50},
		{Type: "task_completer", Title: "Task Conqueror", Description: "Complete 25 tasks", Icon: "award", Metric: MetricCompletedTasks, Threshold: 25},
		{Type: "chronicler", Title: "The Chronicler", Description: "Write 10 journal entries", Icon: "star", Metric: MetricJournalEntries, Threshold: 10},
	}
}

func metricValue(stats Stats, metric Metric) int {
	switch metric {
	case MetricTotalHabits:
		return stats.TotalHabits
	case MetricLongestStreak:
		return stats.LongestStreak
	case MetricFocusHours:
		return stats.TotalFocusHours
	case MetricCompletedTasks:
		return stats.CompletedTasks
	case MetricJournalEntries:
		return stats.JournalEntries
	}
	return 0
}

// Evaluate returns the achievements newly earned by the given stats.
// Types already present in unlocked are skipped, so evaluating twice with
// the same inputs yields nothing the second time.
func Evaluate(stats Stats, unlocked map[string]bool, clock utils.Clock) []models.Achievement {
	var earned []models.Achievement
	now := clock.Now()
	for _, rule := range Catalog() {
		if unlocked[rule.Type] {
			continue
		}
		if metricValue(stats, rule.Metric) < rule.Threshold {
			continue
		}
		earned = append(earned, models.Achievement{
			ID:          uuid.New().String(),
			Type:        rule.Type,
			Title:       rule.Title,
			Description: rule.Description,
			Icon:        rule.Icon,
			UnlockedAt:  now,
			Metadata: map[string]string{
				"metric": string(rule.Metric),
				"value":  fmt.Sprintf("%d", metricValue(stats, rule.Metric)),
			},
		})
	}
	return earned
}

// UnlockedTypes builds the already-earned set from stored achievements.
func UnlockedTypes(achievements []models.Achievement) map[string]bool {
	types := make(map[string]bool, len(achievements))
	for _, a := range achievements {
		types[a.Type] = true
	}
	return types
}

// Progress reports how far along a rule the stats are, as a percentage
// clamped to 100.
func Progress(stats Stats, rule Rule) int {
	if rule.Threshold <= 0 {
		return 100
	}
	pct := metricValue(stats, rule.Metric) * 100 / rule.Threshold
	if pct > 100 {
		pct = 100
	}
	return pct
}

// AchievementStore is the slice of the repository the checker writes to.
type AchievementStore interface {
	GetAllAchievements() ([]models.Achievement, error)
	AddAchievement(a models.Achievement) error
}

// Checker evaluates the catalog against fresh stats and persists anything
// newly earned.
type Checker struct {
	store AchievementStore
	clock utils.Clock
}

func NewChecker(store AchievementStore, clock utils.Clock) *Checker {
	return &Checker{store: store, clock: clock}
}

// Check persists and returns the achievements the stats newly unlock.
// The achievement type is unique in storage, so a concurrent duplicate
// insert collapses to a no-op there.
func (c *Checker) Check(stats Stats) ([]models.Achievement, error) {
	existing, err := c.store.GetAllAchievements()
	if err != nil {
		return nil, fmt.Errorf("failed to load achievements: %w", err)
	}

	earned := Evaluate(stats, UnlockedTypes(existing), c.clock)
	for _, a := range earned {
		if err := c.store.AddAchievement(a); err != nil {
			return nil, fmt.Errorf("failed to record achievement %q: %w", a.Type, err)
		}
	}
	return earned, nil
}
