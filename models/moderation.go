package models

import "time"

type ModerationSettings struct {
	ID        int64     `json:"id"`
	Category  string    `json:"category"`
	Threshold float64   `json:"threshold"`
	IsEnabled bool      `json:"is_enabled"`
	CreatedAt time.Time `json:"created_at"`
}

type ModerationSettingsCreate struct {
	Category  string  `json:"category" validate:"required"`
	Threshold float64 `json:"threshold" validate:"min=0,max=1"`
	IsEnabled bool    `json:"is_enabled"`
}

type ModerationSettingsUpdate struct {
	Threshold *float64 `json:"threshold,omitempty"`
	IsEnabled *bool    `json:"is_enabled,omitempty"`
}

type ModerationLog struct {
	ID          int64     `json:"id"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	Confidence  float64   `json:"confidence"`
	Flagged     bool      `json:"flagged"`
	ActionTaken string    `json:"action_taken,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ModerationStats struct {
	TotalChecked int64            `json:"total_checked"`
	TotalFlagged int64            `json:"total_flagged"`
	PassRate     float64          `json:"pass_rate"`
	Categories   map[string]int64 `json:"categories"`
}
