package nutrition

import "strings"

// LoggedMeal is the slice of a stored meal record the scorer needs: the
// estimated macros, the food names, and the estimator's confidence tag.
type LoggedMeal struct {
	Foods      []string
	Calories   float64
	Protein    float64
	Carbs      float64
	Fat        float64
	Confidence Confidence
}

// HealthScore computes the 0-100 score for one calendar day's meals
// against that day's targets. It is the sum of five independently capped
// sub-scores, all ratio-based, so doubling both intake and goals leaves
// the score unchanged. An empty meal set scores exactly 0.
func HealthScore(meals []LoggedMeal, goals Targets) int {
	if len(meals) == 0 {
		return 0
	}

	var cals, protein, carbs, fat float64
	var highConfidence int
	distinct := map[string]struct{}{}
	for _, m := range meals {
		cals += m.Calories
		protein += m.Protein
		carbs += m.Carbs
		fat += m.Fat
		if m.Confidence == ConfidenceHigh {
			highConfidence++
		}
		for _, f := range m.Foods {
			name := strings.ToLower(strings.TrimSpace(f))
			if name != "" {
				distinct[name] = struct{}{}
			}
		}
	}

	score := calorieBalanceScore(cals, goals.Calories) +
		proteinAdequacyScore(protein, goals.Protein) +
		macroBalanceScore(protein, carbs, fat) +
		varietyScore(len(meals), len(distinct)) +
		confidenceScore(highConfidence, len(meals))

	// Defensive clamp; the bands already cap the sum at 100.
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// calorieBalanceScore (0-25): how close total intake landed to the goal.
// Bands are nested, narrowest first.
func calorieBalanceScore(consumed float64, goal int) int {
	if goal <= 0 {
		return 0
	}
	r := consumed / float64(goal)
	switch {
	case r >= 0.8 && r <= 1.1:
		return 25
	case r >= 0.6 && r <= 1.3:
		return 15
	case r >= 0.4 && r <= 1.5:
		return 8
	default:
		return 0
	}
}

// proteinAdequacyScore (0-25).
func proteinAdequacyScore(consumed float64, goal int) int {
	if goal <= 0 {
		return 0
	}
	r := consumed / float64(goal)
	switch {
	case r >= 0.9 && r <= 1.5:
		return 25
	case r >= 0.7 && r <= 1.8:
		return 18
	case r >= 0.5:
		return 10
	default:
		return 0
	}
}

// macroBalanceScore (0-25): each macro's share of total macro grams, by
// weight not calories. Whole block scores 0 when no macros were logged.
func macroBalanceScore(protein, carbs, fat float64) int {
	total := protein + carbs + fat
	if total <= 0 {
		return 0
	}
	pPct := protein / total * 100
	cPct := carbs / total * 100
	fPct := fat / total * 100

	score := 0
	switch {
	case pPct >= 15 && pPct <= 40:
		score += 10
	case pPct >= 10 && pPct <= 45:
		score += 5
	}
	switch {
	case cPct >= 35 && cPct <= 60:
		score += 8
	case cPct >= 25 && cPct <= 70:
		score += 4
	}
	switch {
	case fPct >= 15 && fPct <= 40:
		score += 7
	case fPct >= 10 && fPct <= 45:
		score += 3
	}
	return score
}

// varietyScore (0-15): meal-count bonus plus distinct-food-name bonus
// over the union of all food names logged that day.
func varietyScore(mealCount, distinctFoods int) int {
	score := 0
	switch {
	case mealCount >= 3:
		score += 5
	case mealCount >= 2:
		score += 3
	}
	switch {
	case distinctFoods >= 8:
		score += 10
	case distinctFoods >= 5:
		score += 7
	case distinctFoods >= 3:
		score += 4
	}
	return score
}

// confidenceScore (0-10): share of meals the estimator tagged high
// confidence.
func confidenceScore(high, total int) int {
	if total == 0 {
		return 0
	}
	r := float64(high) / float64(total)
	switch {
	case r >= 0.8:
		return 10
	case r >= 0.5:
		return 6
	case r >= 0.3:
		return 3
	default:
		return 0
	}
}
