package postgres

import (
	"encoding/json"
	"fmt"

	"github.com/ameridyn/pantheon/internal/models"
)

// AddAchievement records an unlock. The unique index on achievement_type
// makes re-unlocking an already-held type a silent no-op.
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
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (achievement_type) DO NOTHING`,
		a.ID, a.Type, a.Title, a.Description, a.Icon, a.UnlockedAt, metadata)
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
		var metadata string

		if err := rows.Scan(&a.ID, &a.Type, &a.Title, &a.Description, &a.Icon, &a.UnlockedAt, &metadata); err != nil {
			return nil, err
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
