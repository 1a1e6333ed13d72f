package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	FullName string

	// Physical profile, stored canonical metric. The raw submission may be
	// imperial; it is normalized on write and Units only records the user's
	// display preference.
	Sex           string    `gorm:"size:16"`
	Birthday      time.Time // zero when the user gave an explicit age instead
	Age           int
	Units         string `gorm:"size:16;default:metric"`
	HeightCm      float64
	WeightKg      float64
	ActivityLevel string `gorm:"size:16"`
	Objective     string `gorm:"size:32"` // simple taxonomy; plan goals live per-request
	WeeklyRateKg  float64

	MFAEnabled bool
	MFACode    string
	Onboarded  bool
	Disabled   bool
}
