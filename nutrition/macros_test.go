package nutrition

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateMacros_GainMuscle(t *testing.T) {
	protein, carbs, fat := AllocateMacros(2000, PlanObjective(PlanGainMuscle))
	assert.Equal(t, 175, protein) // 2000*0.35/4
	assert.Equal(t, 225, carbs)   // 2000*0.45/4
	assert.Equal(t, 44, fat)      // 2000*0.20/9 = 44.4
}

func TestAllocateMacros_PerObjectiveSplits(t *testing.T) {
	cases := []struct {
		name                string
		objective           Objective
		protein, carbs, fat int
	}{
		{"maintain default 30/40/30", SimpleObjective(GoalMaintain), 150, 200, 67},
		{"recomp default 30/40/30", PlanObjective(PlanRecomp), 150, 200, 67},
		{"gain 35/45/20", SimpleObjective(GoalGainWeight), 175, 225, 44},
		{"bulk 35/45/20", PlanObjective(PlanBulk), 175, 225, 44},
		{"lose 40/30/30", SimpleObjective(GoalLoseWeight), 200, 150, 67},
		{"cut 40/30/30", PlanObjective(PlanCut), 200, 150, 67},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			protein, carbs, fat := AllocateMacros(2000, tc.objective)
			assert.Equal(t, tc.protein, protein)
			assert.Equal(t, tc.carbs, carbs)
			assert.Equal(t, tc.fat, fat)
		})
	}
}

// Every ratio set sums to exactly 1 before gram conversion.
func TestMacroSplits_SumToOne(t *testing.T) {
	objectives := []Objective{
		SimpleObjective(GoalLoseWeight),
		SimpleObjective(GoalMaintain),
		SimpleObjective(GoalGainWeight),
		PlanObjective(PlanLoseWeight),
		PlanObjective(PlanMaintain),
		PlanObjective(PlanGainMuscle),
		PlanObjective(PlanBulk),
		PlanObjective(PlanCut),
		PlanObjective(PlanRecomp),
	}
	for _, o := range objectives {
		s := o.split()
		assert.InDelta(t, 1.0, s.protein+s.carbs+s.fat, 1e-9, "objective %s", o)
	}
}

// Independent per-macro rounding keeps the reconstructed kcal within a
// few kcal of the target.
func TestAllocateMacros_KcalRoundTrip(t *testing.T) {
	for _, calories := range []int{1200, 1847, 2000, 2759, 3500} {
		protein, carbs, fat := AllocateMacros(calories, SimpleObjective(GoalMaintain))
		rebuilt := protein*4 + carbs*4 + fat*9
		assert.LessOrEqual(t, math.Abs(float64(rebuilt-calories)), 10.0,
			"calories=%d rebuilt=%d", calories, rebuilt)
	}
}

func TestDeriveTargets_Pipeline(t *testing.T) {
	targets, err := DeriveTargets(maintainer(), DefaultEnergyConfig())
	require.NoError(t, err)
	assert.Equal(t, 2759, targets.Calories)
	assert.Equal(t, 207, targets.Protein) // 2759*0.30/4 = 206.9
	assert.Equal(t, 276, targets.Carbs)   // 2759*0.40/4 = 275.9
	assert.Equal(t, 92, targets.Fat)      // 2759*0.30/9 = 91.97
}

func TestValidateTargets(t *testing.T) {
	require.NoError(t, ValidateTargets(Targets{Calories: 2000, Protein: 150, Carbs: 200, Fat: 70}))

	for _, bad := range []Targets{
		{Calories: 0, Protein: 150, Carbs: 200, Fat: 70},
		{Calories: 2000, Protein: -1, Carbs: 200, Fat: 70},
		{Calories: 2000, Protein: 150, Carbs: 0, Fat: 70},
		{Calories: 2000, Protein: 150, Carbs: 200, Fat: 0},
	} {
		assert.ErrorIs(t, ValidateTargets(bad), ErrInvalidGoals)
	}
}
