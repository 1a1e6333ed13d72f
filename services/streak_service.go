package services

import (
	"errors"

	"github.com/ASpurbo/meal-lens-ai-85-sub000/config"
	"github.com/ASpurbo/meal-lens-ai-85-sub000/models"
	"github.com/ASpurbo/meal-lens-ai-85-sub000/nutrition"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetStreak returns the user's streak, zero-valued when nothing has been
// logged yet.
func GetStreak(userID uint) (nutrition.Streak, error) {
	var row models.UserStreak
	err := config.DB.Where("user_id = ?", userID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nutrition.Streak{}, nil
		}
		return nutrition.Streak{}, err
	}
	return nutrition.Streak{
		Current:      row.CurrentStreak,
		Longest:      row.LongestStreak,
		LastActivity: row.LastActivityDate,
	}, nil
}

// advanceStreakTx applies the "meal logged on date" transition inside the
// caller's transaction. The row is locked for update so two near-
// simultaneous meal saves for one user serialize instead of losing an
// update. The transition itself is pure and makes same-day replays
// no-ops. Returns the new state and whether the streak actually moved.
func advanceStreakTx(tx *gorm.DB, userID uint, date string) (nutrition.Streak, bool, error) {
	var row models.UserStreak
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&row).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nutrition.Streak{}, false, err
	}

	prev := nutrition.Streak{
		Current:      row.CurrentStreak,
		Longest:      row.LongestStreak,
		LastActivity: row.LastActivityDate,
	}
	next, err := nutrition.AdvanceStreak(prev, date)
	if err != nil {
		return nutrition.Streak{}, false, err
	}
	if next == prev {
		return next, false, nil
	}

	row.UserID = userID
	row.CurrentStreak = next.Current
	row.LongestStreak = next.Longest
	row.LastActivityDate = next.LastActivity
	if err := tx.Save(&row).Error; err != nil {
		return nutrition.Streak{}, false, err
	}
	return next, true, nil
}

// streak lengths that earn a push notification
var streakMilestones = map[int]bool{7: true, 30: true, 100: true}
