package nutrition

import (
	"fmt"
	"math"
)

const (
	maleBMROffset   = 5
	femaleBMROffset = -161

	// One kg of body-mass change corresponds to roughly 7700 kcal.
	kcalPerKgBodyMass = 7700

	// MinDailyCalories is the hard floor on any derived calorie target,
	// no matter how aggressive the requested deficit is.
	MinDailyCalories = 1200
)

// EnergyConfig holds the policy knobs of the energy calculation.
// OtherSexOffset is the Mifflin-St Jeor additive constant applied when
// sex is "other"; the default follows the female constant.
type EnergyConfig struct {
	OtherSexOffset float64
}

func DefaultEnergyConfig() EnergyConfig {
	return EnergyConfig{OtherSexOffset: femaleBMROffset}
}

// BMR computes basal metabolic rate via Mifflin-St Jeor:
// 10*kg + 6.25*cm - 5*age + sex offset.
func BMR(p NormalizedProfile, cfg EnergyConfig) float64 {
	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	switch p.Sex {
	case SexMale:
		bmr += maleBMROffset
	case SexFemale:
		bmr += femaleBMROffset
	default:
		bmr += cfg.OtherSexOffset
	}
	return bmr
}

// TDEE scales BMR by the activity multiplier.
func TDEE(p NormalizedProfile, cfg EnergyConfig) (float64, error) {
	mult, ok := activityMultipliers[p.Activity]
	if !ok {
		return 0, fmt.Errorf("%w: unknown activity level %q", ErrInvalidProfile, p.Activity)
	}
	return BMR(p, cfg) * mult, nil
}

// calorieDelta is the objective-driven daily adjustment on top of TDEE.
// Simple goals convert the weekly rate target; plan goals carry fixed
// constants. The two schemes never combine.
func (o Objective) calorieDelta(weeklyRateKg float64) float64 {
	if o.isPlan {
		return planDeltas[o.plan]
	}
	daily := weeklyRateKg * kcalPerKgBodyMass / 7
	switch o.simple {
	case GoalLoseWeight:
		return -daily
	case GoalGainWeight:
		return daily
	default:
		return 0
	}
}

// DailyCalorieTarget is TDEE plus the objective delta, rounded, then
// clamped to MinDailyCalories. The floor is a hard invariant.
func DailyCalorieTarget(p NormalizedProfile, cfg EnergyConfig) (int, error) {
	tdee, err := TDEE(p, cfg)
	if err != nil {
		return 0, err
	}
	target := int(math.Round(tdee + p.Objective.calorieDelta(p.WeeklyRateKg)))
	if target < MinDailyCalories {
		target = MinDailyCalories
	}
	return target, nil
}
