package nutrition

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
	SexOther  Sex = "other"
)

func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale || s == SexOther
}

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// activityMultipliers maps activity levels to their TDEE multiplier.
// Single source of truth, also used for input validation.
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

func (a ActivityLevel) Valid() bool {
	_, ok := activityMultipliers[a]
	return ok
}

// Confidence is the low/medium/high tag the AI estimator attaches to a
// meal estimate.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

func (c Confidence) Valid() bool {
	return c == ConfidenceLow || c == ConfidenceMedium || c == ConfidenceHigh
}

// SimpleGoal is the three-way objective the onboarding flow speaks. Its
// calorie delta is derived from the user's weekly rate-of-change target.
type SimpleGoal string

const (
	GoalLoseWeight SimpleGoal = "lose_weight"
	GoalMaintain   SimpleGoal = "maintain"
	GoalGainWeight SimpleGoal = "gain_weight"
)

func (g SimpleGoal) Valid() bool {
	return g == GoalLoseWeight || g == GoalMaintain || g == GoalGainWeight
}

// PlanGoal is the richer six-way objective the goal-plan flow speaks.
// Each carries a fixed daily calorie delta instead of a weekly rate.
type PlanGoal string

const (
	PlanLoseWeight PlanGoal = "lose_weight"
	PlanMaintain   PlanGoal = "maintain"
	PlanGainMuscle PlanGoal = "gain_muscle"
	PlanBulk       PlanGoal = "bulk"
	PlanCut        PlanGoal = "cut"
	PlanRecomp     PlanGoal = "recomposition"
)

// planDeltas holds the fixed kcal/day adjustment per plan goal.
var planDeltas = map[PlanGoal]float64{
	PlanLoseWeight: -500,
	PlanMaintain:   0,
	PlanGainMuscle: +300,
	PlanBulk:       +500,
	PlanCut:        -750,
	PlanRecomp:     -200,
}

func (g PlanGoal) Valid() bool {
	_, ok := planDeltas[g]
	return ok
}

// Objective is a tagged variant over the two goal taxonomies. The two
// schemes are mutually exclusive per calculation. An Objective is built
// through exactly one of the constructors and never mixes them.
type Objective struct {
	simple SimpleGoal
	plan   PlanGoal
	isPlan bool
}

func SimpleObjective(g SimpleGoal) Objective { return Objective{simple: g} }

func PlanObjective(g PlanGoal) Objective { return Objective{plan: g, isPlan: true} }

func (o Objective) Valid() bool {
	if o.isPlan {
		return o.plan.Valid()
	}
	return o.simple.Valid()
}

func (o Objective) String() string {
	if o.isPlan {
		return string(o.plan)
	}
	return string(o.simple)
}

// gainOriented / lossOriented classify the objective for macro-ratio
// selection. Maintain and recomposition fall through to the default split.
func (o Objective) gainOriented() bool {
	if o.isPlan {
		return o.plan == PlanGainMuscle || o.plan == PlanBulk
	}
	return o.simple == GoalGainWeight
}

func (o Objective) lossOriented() bool {
	if o.isPlan {
		return o.plan == PlanLoseWeight || o.plan == PlanCut
	}
	return o.simple == GoalLoseWeight
}
