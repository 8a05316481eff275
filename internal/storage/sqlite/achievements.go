package sqlite

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ameridyn/pantheon/internal/models"
)

// AddAchievement records an unlock. The unique index on achievement_type
// makes re-unlocking an already-held type a silent no-op, which keeps the
// at-most-once guarantee even if two evaluations race.
func (s *Store) AddAchievement(a models.Achievement) error {
	metadata := "{}"
	if len(a.Metadata) > 0 {
		raw, err := json.Marshal(a.Metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal achievement metadata: %w", err)
		}
		metadata = string(raw)
	}

	_, err := s.db.Exec(`
		INSERT INTO achievements (id, achievement_type, title, description, icon, unlocked_at, metadata)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(achievement_type) DO NOTHING`,
		a.ID, a.Type, a.Title, a.Description, a.Icon, a.UnlockedAt.Format(time.RFC3339), metadata)
	return err
}

func (s *Store) GetAllAchievements() ([]models.Achievement, error) {
	rows, err := s.db.Query(`
		SELECT id, achievement_type, title, description, icon, unlocked_at, metadata
		FROM achievements ORDER BY unlocked_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var achievements []models.Achievement
	for rows.Next() {
		var a models.Achievement
		var unlockedAt, metadata string

		if err := rows.Scan(&a.ID, &a.Type, &a.Title, &a.Description, &a.Icon, &unlockedAt, &metadata); err != nil {
			return nil, err
		}

		a.UnlockedAt, err = time.Parse(time.RFC3339, unlockedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse unlocked_at for achievement %s: %w", a.ID, err)
		}
		if metadata != "" && metadata != "{}" {
			if err := json.Unmarshal([]byte(metadata), &a.Metadata); err != nil {
				return nil, fmt.Errorf("failed to parse metadata for achievement %s: %w", a.ID, err)
			}
		}

		achievements = append(achievements, a)
	}

	return achievements, rows.Err()
}
