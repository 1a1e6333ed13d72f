package nutrition

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNow() time.Time {
	return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
}

func validMetricProfile() Profile {
	return Profile{
		Sex:       SexMale,
		Units:     UnitsMetric,
		HeightCm:  180,
		WeightKg:  80,
		Age:       30,
		Activity:  ActivityModerate,
		Objective: SimpleObjective(GoalMaintain),
	}
}

func TestNormalize_MetricPassthrough(t *testing.T) {
	np, err := Normalize(validMetricProfile(), testNow())
	require.NoError(t, err)
	assert.Equal(t, 180.0, np.HeightCm)
	assert.Equal(t, 80.0, np.WeightKg)
	assert.Equal(t, 30, np.Age)
}

func TestNormalize_ImperialConversion(t *testing.T) {
	p := validMetricProfile()
	p.Units = UnitsImperial
	p.HeightFt = 5
	p.HeightIn = 11
	p.WeightLb = 176

	np, err := Normalize(p, testNow())
	require.NoError(t, err)
	// 71in * 2.54 = 180.34 -> 180; 176lb * 0.453592 = 79.83 -> 80
	assert.Equal(t, 180.0, np.HeightCm)
	assert.Equal(t, 80.0, np.WeightKg)
}

func TestNormalize_BirthdayWinsOverAge(t *testing.T) {
	p := validMetricProfile()
	p.Age = 99
	p.Birthday = time.Date(1994, 6, 16, 0, 0, 0, 0, time.UTC)

	np, err := Normalize(p, testNow())
	require.NoError(t, err)
	// turns 30 tomorrow relative to testNow, so still 29
	assert.Equal(t, 29, np.Age)
}

func TestNormalize_Rejections(t *testing.T) {
	cases := []struct {
		name  string
		mutFn func(p *Profile)
	}{
		{"unknown sex", func(p *Profile) { p.Sex = "attack-helicopter" }},
		{"unknown activity", func(p *Profile) { p.Activity = "couch" }},
		{"unknown objective", func(p *Profile) { p.Objective = SimpleObjective("get_swole") }},
		{"unknown units", func(p *Profile) { p.Units = "cubits" }},
		{"zero height", func(p *Profile) { p.HeightCm = 0 }},
		{"negative weight", func(p *Profile) { p.WeightKg = -70 }},
		{"zero age", func(p *Profile) { p.Age = 0 }},
		{"future birthday", func(p *Profile) { p.Birthday = testNow().AddDate(1, 0, 0) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validMetricProfile()
			tc.mutFn(&p)
			_, err := Normalize(p, testNow())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidProfile)
		})
	}
}

func TestAgeAt_FloorsWholeYears(t *testing.T) {
	now := testNow()
	cases := []struct {
		name     string
		birthday time.Time
		want     int
	}{
		{"birthday today", time.Date(1994, 6, 15, 0, 0, 0, 0, time.UTC), 30},
		{"birthday tomorrow", time.Date(1994, 6, 16, 0, 0, 0, 0, time.UTC), 29},
		{"birthday yesterday", time.Date(1994, 6, 14, 0, 0, 0, 0, time.UTC), 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AgeAt(tc.birthday, now))
		})
	}
}
