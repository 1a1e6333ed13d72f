package models

import "time"

// ProgressEvent records a moment worth telling the user about: a new
// daily score after a meal save, or a streak milestone.
type ProgressEvent struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index"`
	Type      string `gorm:"size:24"` // "score.updated" | "streak.milestone"
	Message   string `gorm:"type:text"`
	CreatedAt time.Time
}
