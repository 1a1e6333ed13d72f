package services

import (
	"testing"

	"github.com/ASpurbo/meal-lens-ai-85-sub000/nutrition"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEstimateBareJSON(t *testing.T) {
	est, err := parseEstimate(`{"foods":["oatmeal","banana"],"calories":420,"protein":12,"carbs":78,"fat":7,"confidence":"medium","notes":"breakfast"}`)
	require.NoError(t, err)

	assert.Equal(t, []string{"oatmeal", "banana"}, est.Foods)
	assert.Equal(t, 420.0, est.Calories)
	assert.Equal(t, nutrition.ConfidenceMedium, est.Confidence)
}

func TestParseEstimateWrappedInProse(t *testing.T) {
	text := "Sure! Here is the estimate:\n```json\n" +
		`{"foods":["chicken salad"],"calories":550,"protein":40,"carbs":20,"fat":30,"confidence":"high","notes":""}` +
		"\n```\nLet me know if you need anything else."

	est, err := parseEstimate(text)
	require.NoError(t, err)

	assert.Equal(t, []string{"chicken salad"}, est.Foods)
	assert.Equal(t, nutrition.ConfidenceHigh, est.Confidence)
}

func TestParseEstimateNoJSON(t *testing.T) {
	_, err := parseEstimate("I could not estimate that meal.")
	require.Error(t, err)
}

func TestParseEstimateMalformedJSON(t *testing.T) {
	_, err := parseEstimate(`{"foods":["rice"],"calories":`)
	require.Error(t, err)
}

func TestValidateEstimate(t *testing.T) {
	tests := []struct {
		name    string
		est     MealEstimate
		wantErr bool
	}{
		{
			name: "valid",
			est:  MealEstimate{Foods: []string{"rice"}, Calories: 200, Confidence: nutrition.ConfidenceHigh},
		},
		{
			name:    "no foods",
			est:     MealEstimate{Calories: 200, Confidence: nutrition.ConfidenceHigh},
			wantErr: true,
		},
		{
			name:    "negative macro",
			est:     MealEstimate{Foods: []string{"rice"}, Protein: -1, Confidence: nutrition.ConfidenceHigh},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEstimate(&tt.est)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateEstimateUnknownConfidenceDowngrades(t *testing.T) {
	est := MealEstimate{Foods: []string{"soup"}, Calories: 150, Confidence: "very sure"}
	require.NoError(t, ValidateEstimate(&est))
	assert.Equal(t, nutrition.ConfidenceLow, est.Confidence)
}
