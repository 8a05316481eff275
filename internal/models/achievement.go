package models

import "time"

// Achievement is a one-time reward unlocked when a statistic crosses a
// threshold. At most one achievement exists per Type; once unlocked it is
// never revoked.
type Achievement struct {
	ID          string            `json:"id"`
	Type        string            `json:"achievement_type"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Icon        string            `json:"icon"`
	UnlockedAt  time.Time         `json:"unlocked_at"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}
