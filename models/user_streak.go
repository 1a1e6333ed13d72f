package models

import "gorm.io/gorm"

// UserStreak tracks consecutive logging days. LastActivityDate is a plain
// YYYY-MM-DD calendar date supplied by the client, not a timestamp, so a
// late-night meal counts against the user's own day rather than ours.
// Invariant: LongestStreak >= CurrentStreak.
type UserStreak struct {
	gorm.Model
	UserID           uint `gorm:"uniqueIndex;not null"`
	CurrentStreak    int
	LongestStreak    int
	LastActivityDate string `gorm:"size:10"`
}
