package models

import "gorm.io/gorm"

// NutritionGoal holds a user's daily targets. One row per user, created
// when onboarding completes, freely overwritable afterwards. Overridden
// marks goals the user typed in themselves; those skip re-derivation on
// profile edits and carry no 4/4/9 kcal consistency guarantee.
type NutritionGoal struct {
	gorm.Model
	UserID     uint `gorm:"uniqueIndex;not null"`
	Calories   int  // kcal/day
	Protein    int  // g/day
	Carbs      int  // g/day
	Fat        int  // g/day
	Overridden bool
}
