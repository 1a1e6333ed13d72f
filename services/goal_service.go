package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/ASpurbo/meal-lens-ai-85-sub000/config"
	"github.com/ASpurbo/meal-lens-ai-85-sub000/models"
	"github.com/ASpurbo/meal-lens-ai-85-sub000/nutrition"

	"gorm.io/gorm"
)

// normalizedProfile rebuilds the core's profile value from the stored
// user row. Height/weight are stored canonical metric, so this cannot
// re-trip the unit conversion.
func normalizedProfile(user *models.User, objective nutrition.Objective, now time.Time) (nutrition.NormalizedProfile, error) {
	p := nutrition.Profile{
		Sex:          nutrition.Sex(user.Sex),
		Units:        nutrition.UnitsMetric,
		HeightCm:     user.HeightCm,
		WeightKg:     user.WeightKg,
		Birthday:     user.Birthday,
		Age:          user.Age,
		Activity:     nutrition.ActivityLevel(user.ActivityLevel),
		Objective:    objective,
		WeeklyRateKg: user.WeeklyRateKg,
	}
	return nutrition.Normalize(p, now)
}

// DeriveGoals recomputes the user's targets from their stored profile
// with the simple objective they chose at onboarding, and persists them.
// Skipped when the user has overridden goals by hand.
func DeriveGoals(userID uint) (*models.NutritionGoal, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}

	var existing models.NutritionGoal
	err := config.DB.Where("user_id = ?", userID).First(&existing).Error
	if err == nil && existing.Overridden {
		return &existing, nil
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	objective := nutrition.SimpleObjective(nutrition.SimpleGoal(user.Objective))
	return deriveAndSave(&user, objective, false)
}

// ApplyPlanGoal re-derives goals through the six-way plan taxonomy. The
// plan choice lives in the request, not on the user row, so the two
// taxonomies never mix inside one derivation.
func ApplyPlanGoal(userID uint, plan nutrition.PlanGoal) (*models.NutritionGoal, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return deriveAndSave(&user, nutrition.PlanObjective(plan), false)
}

func deriveAndSave(user *models.User, objective nutrition.Objective, overridden bool) (*models.NutritionGoal, error) {
	np, err := normalizedProfile(user, objective, time.Now())
	if err != nil {
		return nil, err
	}
	targets, err := nutrition.DeriveTargets(np, nutrition.DefaultEnergyConfig())
	if err != nil {
		return nil, err
	}
	return upsertGoals(user.ID, targets, overridden)
}

// OverrideGoals stores user-typed targets verbatim. Values must be
// positive; no kcal consistency is enforced for overrides.
func OverrideGoals(userID uint, targets nutrition.Targets) (*models.NutritionGoal, error) {
	if err := nutrition.ValidateTargets(targets); err != nil {
		return nil, err
	}
	return upsertGoals(userID, targets, true)
}

func upsertGoals(userID uint, t nutrition.Targets, overridden bool) (*models.NutritionGoal, error) {
	var goal models.NutritionGoal
	err := config.DB.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.NutritionGoal{
			UserID:     userID,
			Calories:   t.Calories,
			Protein:    t.Protein,
			Carbs:      t.Carbs,
			Fat:        t.Fat,
			Overridden: overridden,
		}
		if err := config.DB.Create(&goal).Error; err != nil {
			return nil, err
		}
		return &goal, nil
	}
	if err != nil {
		return nil, err
	}

	goal.Calories = t.Calories
	goal.Protein = t.Protein
	goal.Carbs = t.Carbs
	goal.Fat = t.Fat
	goal.Overridden = overridden
	if err := config.DB.Save(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func GetGoals(userID uint) (*models.NutritionGoal, error) {
	var goal models.NutritionGoal
	err := config.DB.Where("user_id = ?", userID).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &goal, nil
}

// DailyProgress is the per-day report the dashboard renders: goals,
// consumed totals, per-nutrient percentages, and the health score.
type DailyProgress struct {
	Date     string                `json:"date"`
	Goals    *models.NutritionGoal `json:"goals"`
	Consumed map[string]float64    `json:"consumed"`
	Percent  map[string]float64    `json:"percent"`
	Meals    int                   `json:"meals"`
	Score    int                   `json:"score"`
	Streak   nutrition.Streak      `json:"streak"`
}

// GetDailyProgress builds the report for one calendar date (YYYY-MM-DD).
func GetDailyProgress(userID uint, date string) (*DailyProgress, error) {
	goal, err := GetGoals(userID)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, fmt.Errorf("no goals set for user %d", userID)
	}

	meals, err := ListMealsByDate(userID, date)
	if err != nil {
		return nil, err
	}

	targets := nutrition.Targets{
		Calories: goal.Calories,
		Protein:  goal.Protein,
		Carbs:    goal.Carbs,
		Fat:      goal.Fat,
	}
	logged := toLoggedMeals(meals)
	score := nutrition.HealthScore(logged, targets)

	var cals, prot, carbs, fat float64
	for _, m := range logged {
		cals += m.Calories
		prot += m.Protein
		carbs += m.Carbs
		fat += m.Fat
	}

	streak, err := GetStreak(userID)
	if err != nil {
		return nil, err
	}

	return &DailyProgress{
		Date:  date,
		Goals: goal,
		Consumed: map[string]float64{
			"calories": cals, "protein": prot, "carbs": carbs, "fat": fat,
		},
		Percent: map[string]float64{
			"calories": pct(cals, float64(goal.Calories)),
			"protein":  pct(prot, float64(goal.Protein)),
			"carbs":    pct(carbs, float64(goal.Carbs)),
			"fat":      pct(fat, float64(goal.Fat)),
		},
		Meals:  len(meals),
		Score:  score,
		Streak: streak,
	}, nil
}

func toLoggedMeals(meals []models.MealAnalysis) []nutrition.LoggedMeal {
	out := make([]nutrition.LoggedMeal, 0, len(meals))
	for i := range meals {
		m := &meals[i]
		out = append(out, nutrition.LoggedMeal{
			Foods:      m.FoodList(),
			Calories:   m.Calories,
			Protein:    m.Protein,
			Carbs:      m.Carbs,
			Fat:        m.Fat,
			Confidence: nutrition.Confidence(m.Confidence),
		})
	}
	return out
}

func pct(consumed, target float64) float64 {
	if target <= 0 {
		return 0
	}
	p := consumed / target
	if p > 1 {
		return 1
	}
	return p
}
