package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// MealAnalysis is one logged eating event with its AI macro estimate.
// Immutable once written; rows are only ever inserted or deleted.
type MealAnalysis struct {
	gorm.Model
	UserID uint `gorm:"index;not null"`

	Foods    string `gorm:"type:text"` // comma-joined food names
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64

	Confidence string `gorm:"size:8"` // "low" | "medium" | "high"
	Notes      string `gorm:"type:text"`
	PhotoURL   string

	AteAt time.Time `gorm:"index;not null"`
}

func (m *MealAnalysis) FoodList() []string {
	if m.Foods == "" {
		return nil
	}
	parts := strings.Split(m.Foods, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func JoinFoods(foods []string) string {
	return strings.Join(foods, ", ")
}
