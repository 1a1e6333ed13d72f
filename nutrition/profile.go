package nutrition

import (
	"fmt"
	"math"
	"time"
)

type UnitSystem string

const (
	UnitsMetric   UnitSystem = "metric"
	UnitsImperial UnitSystem = "imperial"
)

// Profile is the raw user-entered physical profile, possibly in imperial
// units and with either a birthday or an explicit age.
type Profile struct {
	Sex   Sex
	Units UnitSystem

	// metric inputs
	HeightCm float64
	WeightKg float64

	// imperial inputs
	HeightFt float64
	HeightIn float64
	WeightLb float64

	// Birthday wins over Age when both are set; zero value means "use Age".
	Birthday time.Time
	Age      int

	Activity     ActivityLevel
	Objective    Objective
	WeeklyRateKg float64 // kg/week, only meaningful for lose/gain simple goals
}

// NormalizedProfile is the canonical metric + integer-age representation
// every downstream calculation consumes.
type NormalizedProfile struct {
	Sex          Sex
	HeightCm     float64
	WeightKg     float64
	Age          int
	Activity     ActivityLevel
	Objective    Objective
	WeeklyRateKg float64
}

const (
	cmPerInch = 2.54
	kgPerLb   = 0.453592
)

// Normalize converts a raw profile into its canonical form. now is the
// caller's clock, used only for birthday→age derivation. Malformed input
// is a contract violation and fails fast with ErrInvalidProfile; nothing
// is clamped or guessed.
func Normalize(p Profile, now time.Time) (NormalizedProfile, error) {
	if !p.Sex.Valid() {
		return NormalizedProfile{}, fmt.Errorf("%w: unknown sex %q", ErrInvalidProfile, p.Sex)
	}
	if !p.Activity.Valid() {
		return NormalizedProfile{}, fmt.Errorf("%w: unknown activity level %q", ErrInvalidProfile, p.Activity)
	}
	if !p.Objective.Valid() {
		return NormalizedProfile{}, fmt.Errorf("%w: unknown objective %q", ErrInvalidProfile, p.Objective)
	}

	var heightCm, weightKg float64
	switch p.Units {
	case UnitsImperial:
		heightCm = math.Round((p.HeightFt*12 + p.HeightIn) * cmPerInch)
		weightKg = math.Round(p.WeightLb * kgPerLb)
	case UnitsMetric:
		heightCm = p.HeightCm
		weightKg = p.WeightKg
	default:
		return NormalizedProfile{}, fmt.Errorf("%w: unknown unit system %q", ErrInvalidProfile, p.Units)
	}
	if heightCm <= 0 || weightKg <= 0 {
		return NormalizedProfile{}, fmt.Errorf("%w: height and weight must be positive", ErrInvalidProfile)
	}

	age := p.Age
	if !p.Birthday.IsZero() {
		age = AgeAt(p.Birthday, now)
	}
	if age <= 0 {
		return NormalizedProfile{}, fmt.Errorf("%w: age must be positive", ErrInvalidProfile)
	}

	return NormalizedProfile{
		Sex:          p.Sex,
		HeightCm:     heightCm,
		WeightKg:     weightKg,
		Age:          age,
		Activity:     p.Activity,
		Objective:    p.Objective,
		WeeklyRateKg: p.WeeklyRateKg,
	}, nil
}

// AgeAt returns whole years elapsed from birthday to now: someone who
// turns N tomorrow is still N-1 today.
func AgeAt(birthday, now time.Time) int {
	age := now.Year() - birthday.Year()
	if now.Before(birthday.AddDate(age, 0, 0)) {
		age--
	}
	return age
}
