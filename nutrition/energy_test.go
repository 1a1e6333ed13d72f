package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func maintainer() NormalizedProfile {
	return NormalizedProfile{
		Sex:       SexMale,
		HeightCm:  180,
		WeightKg:  80,
		Age:       30,
		Activity:  ActivityModerate,
		Objective: SimpleObjective(GoalMaintain),
	}
}

func TestBMR_MifflinStJeor(t *testing.T) {
	cfg := DefaultEnergyConfig()

	p := maintainer()
	// 10*80 + 6.25*180 - 5*30 + 5 = 1780
	assert.Equal(t, 1780.0, BMR(p, cfg))

	p.Sex = SexFemale
	assert.Equal(t, 1614.0, BMR(p, cfg))

	// "other" follows the female constant by default
	p.Sex = SexOther
	assert.Equal(t, 1614.0, BMR(p, cfg))
}

func TestBMR_OtherSexOffsetConfigurable(t *testing.T) {
	p := maintainer()
	p.Sex = SexOther
	// midpoint policy instead of the female default
	got := BMR(p, EnergyConfig{OtherSexOffset: -78})
	assert.Equal(t, 1697.0, got)
}

func TestTDEE_ActivityMultipliers(t *testing.T) {
	cfg := DefaultEnergyConfig()
	cases := []struct {
		level ActivityLevel
		want  float64
	}{
		{ActivitySedentary, 1780 * 1.2},
		{ActivityLight, 1780 * 1.375},
		{ActivityModerate, 1780 * 1.55},
		{ActivityActive, 1780 * 1.725},
		{ActivityVeryActive, 1780 * 1.9},
	}
	for _, tc := range cases {
		t.Run(string(tc.level), func(t *testing.T) {
			p := maintainer()
			p.Activity = tc.level
			got, err := TDEE(p, cfg)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 0.001)
		})
	}
}

func TestTDEE_UnknownActivity(t *testing.T) {
	p := maintainer()
	p.Activity = "heroic"
	_, err := TDEE(p, DefaultEnergyConfig())
	assert.ErrorIs(t, err, ErrInvalidProfile)
}

// Maintain with no rate target: target equals TDEE rounded, no clamping.
func TestDailyCalorieTarget_Maintain(t *testing.T) {
	got, err := DailyCalorieTarget(maintainer(), DefaultEnergyConfig())
	require.NoError(t, err)
	assert.Equal(t, 2759, got) // 1780 * 1.55
}

// An aggressive deficit that would land below the floor returns exactly
// the floor: female, 25y, 165cm, 60kg, sedentary, losing 1kg/week.
func TestDailyCalorieTarget_ClampedToFloor(t *testing.T) {
	p := NormalizedProfile{
		Sex:          SexFemale,
		HeightCm:     165,
		WeightKg:     60,
		Age:          25,
		Activity:     ActivitySedentary,
		Objective:    SimpleObjective(GoalLoseWeight),
		WeeklyRateKg: 1.0,
	}
	// TDEE = 1345.25*1.2 = 1614.3, delta = -7700/7 = -1100 -> 514 -> 1200
	got, err := DailyCalorieTarget(p, DefaultEnergyConfig())
	require.NoError(t, err)
	assert.Equal(t, MinDailyCalories, got)
}

func TestDailyCalorieTarget_WeeklyRateDelta(t *testing.T) {
	p := maintainer()
	p.Objective = SimpleObjective(GoalGainWeight)
	p.WeeklyRateKg = 0.5
	got, err := DailyCalorieTarget(p, DefaultEnergyConfig())
	require.NoError(t, err)
	assert.Equal(t, 3309, got) // 2759 + 0.5*7700/7
}

func TestDailyCalorieTarget_PlanDeltas(t *testing.T) {
	cases := []struct {
		goal PlanGoal
		want int
	}{
		{PlanLoseWeight, 2259},
		{PlanMaintain, 2759},
		{PlanGainMuscle, 3059},
		{PlanBulk, 3259},
		{PlanCut, 2009},
		{PlanRecomp, 2559},
	}
	for _, tc := range cases {
		t.Run(string(tc.goal), func(t *testing.T) {
			p := maintainer()
			p.Objective = PlanObjective(tc.goal)
			// weekly rate must be ignored on the plan path
			p.WeeklyRateKg = 2.0
			got, err := DailyCalorieTarget(p, DefaultEnergyConfig())
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// Floor invariant: no profile/objective combination produces < 1200.
func TestDailyCalorieTarget_FloorInvariant(t *testing.T) {
	objectives := []Objective{
		SimpleObjective(GoalLoseWeight),
		SimpleObjective(GoalMaintain),
		SimpleObjective(GoalGainWeight),
		PlanObjective(PlanCut),
		PlanObjective(PlanLoseWeight),
	}
	for _, weight := range []float64{40, 55, 70, 100} {
		for _, rate := range []float64{0.25, 1, 2, 5} {
			for _, o := range objectives {
				p := NormalizedProfile{
					Sex: SexFemale, HeightCm: 150, WeightKg: weight, Age: 60,
					Activity: ActivitySedentary, Objective: o, WeeklyRateKg: rate,
				}
				got, err := DailyCalorieTarget(p, DefaultEnergyConfig())
				require.NoError(t, err)
				assert.GreaterOrEqual(t, got, MinDailyCalories,
					"weight=%v rate=%v objective=%s", weight, rate, o)
			}
		}
	}
}
