package nutrition

import "math"

const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

// Targets is a derived (or user-overridden) daily goal set: kcal plus
// grams per macro.
type Targets struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

type macroSplit struct {
	protein, carbs, fat float64
}

// split picks the calorie ratio set for an objective. Exactly one set
// applies per call; the three ratios always sum to 1.
func (o Objective) split() macroSplit {
	switch {
	case o.gainOriented():
		return macroSplit{protein: 0.35, carbs: 0.45, fat: 0.20}
	case o.lossOriented():
		return macroSplit{protein: 0.40, carbs: 0.30, fat: 0.30}
	default:
		return macroSplit{protein: 0.30, carbs: 0.40, fat: 0.30}
	}
}

// AllocateMacros splits a daily calorie target into gram targets at
// 4/4/9 kcal per gram. Each macro rounds independently, so the gram sum
// may drift from the calorie target by a few kcal. That drift is
// accepted, not corrected.
func AllocateMacros(calories int, o Objective) (protein, carbs, fat int) {
	s := o.split()
	c := float64(calories)
	protein = int(math.Round(c * s.protein / kcalPerGramProtein))
	carbs = int(math.Round(c * s.carbs / kcalPerGramCarbs))
	fat = int(math.Round(c * s.fat / kcalPerGramFat))
	return protein, carbs, fat
}

// DeriveTargets runs the full pipeline: calorie budget, then macro
// allocation for the profile's objective.
func DeriveTargets(p NormalizedProfile, cfg EnergyConfig) (Targets, error) {
	calories, err := DailyCalorieTarget(p, cfg)
	if err != nil {
		return Targets{}, err
	}
	protein, carbs, fat := AllocateMacros(calories, p.Objective)
	return Targets{Calories: calories, Protein: protein, Carbs: carbs, Fat: fat}, nil
}

// ValidateTargets rejects goal sets with non-positive values. Overridden
// goals skip the 4/4/9 consistency check but never this one.
func ValidateTargets(t Targets) error {
	if t.Calories <= 0 || t.Protein <= 0 || t.Carbs <= 0 || t.Fat <= 0 {
		return ErrInvalidGoals
	}
	return nil
}
