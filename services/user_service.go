package services

import (
	"errors"
	"time"

	"github.com/ASpurbo/meal-lens-ai-85-sub000/config"
	"github.com/ASpurbo/meal-lens-ai-85-sub000/models"
	"github.com/ASpurbo/meal-lens-ai-85-sub000/nutrition"
)

// ProfileInput is the raw physical profile as submitted, possibly
// imperial and with either a birthday or an explicit age.
type ProfileInput struct {
	FullName string `json:"full_name"`

	Sex      string `json:"sex"`      // male | female | other
	Units    string `json:"units"`    // metric | imperial
	Birthday string `json:"birthday"` // YYYY-MM-DD, optional when age is set
	Age      int    `json:"age"`

	HeightCm float64 `json:"height_cm"`
	WeightKg float64 `json:"weight_kg"`
	HeightFt float64 `json:"height_ft"`
	HeightIn float64 `json:"height_in"`
	WeightLb float64 `json:"weight_lb"`

	ActivityLevel string  `json:"activity_level"`
	Objective     string  `json:"objective"` // lose_weight | maintain | gain_weight
	WeeklyRateKg  float64 `json:"weekly_rate_kg"`

	MFAEnabled bool `json:"mfa_enabled"`
}

// applyProfile normalizes the submission through the core and writes the
// canonical metric values onto the user row. Invalid input surfaces as
// nutrition.ErrInvalidProfile.
func applyProfile(user *models.User, input ProfileInput) error {
	var birthday time.Time
	if input.Birthday != "" {
		var err error
		birthday, err = time.Parse(time.DateOnly, input.Birthday)
		if err != nil {
			return nutrition.ErrInvalidProfile
		}
	}

	p := nutrition.Profile{
		Sex:          nutrition.Sex(input.Sex),
		Units:        nutrition.UnitSystem(input.Units),
		HeightCm:     input.HeightCm,
		WeightKg:     input.WeightKg,
		HeightFt:     input.HeightFt,
		HeightIn:     input.HeightIn,
		WeightLb:     input.WeightLb,
		Birthday:     birthday,
		Age:          input.Age,
		Activity:     nutrition.ActivityLevel(input.ActivityLevel),
		Objective:    nutrition.SimpleObjective(nutrition.SimpleGoal(input.Objective)),
		WeeklyRateKg: input.WeeklyRateKg,
	}
	np, err := nutrition.Normalize(p, time.Now())
	if err != nil {
		return err
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	user.Sex = input.Sex
	user.Units = input.Units
	user.Birthday = birthday
	user.Age = np.Age
	user.HeightCm = np.HeightCm
	user.WeightKg = np.WeightKg
	user.ActivityLevel = input.ActivityLevel
	user.Objective = input.Objective
	user.WeeklyRateKg = input.WeeklyRateKg
	user.MFAEnabled = input.MFAEnabled
	return nil
}

// UpdateUserProfile saves the profile and re-derives goals, unless the
// user has pinned their own.
func UpdateUserProfile(email string, input ProfileInput) error {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return errors.New("user not found or disabled")
	}

	if err := applyProfile(&user, input); err != nil {
		return err
	}
	if err := config.DB.Save(&user).Error; err != nil {
		return err
	}

	if user.Onboarded {
		if _, err := DeriveGoals(user.ID); err != nil {
			return err
		}
	}
	return nil
}

// CompleteUserOnboarding stores the first full profile and creates the
// initial goals record.
func CompleteUserOnboarding(email string, input ProfileInput) error {
	var user models.User
	if err := config.DB.
		Where("email = ? AND disabled = ?", email, false).
		First(&user).Error; err != nil {
		return errors.New("user not found or disabled")
	}

	if err := applyProfile(&user, input); err != nil {
		return err
	}
	user.Onboarded = true
	if err := config.DB.Save(&user).Error; err != nil {
		return err
	}

	_, err := DeriveGoals(user.ID)
	return err
}

func GetUserProfile(email string) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	age := user.Age
	if !user.Birthday.IsZero() {
		age = nutrition.AgeAt(user.Birthday, time.Now())
	}

	birthday := ""
	if !user.Birthday.IsZero() {
		birthday = user.Birthday.Format(time.DateOnly)
	}

	return map[string]interface{}{
		"id":             user.ID,
		"email":          user.Email,
		"full_name":      user.FullName,
		"sex":            user.Sex,
		"units":          user.Units,
		"birthday":       birthday,
		"age":            age,
		"height_cm":      user.HeightCm,
		"weight_kg":      user.WeightKg,
		"activity_level": user.ActivityLevel,
		"objective":      user.Objective,
		"weekly_rate_kg": user.WeeklyRateKg,
		"mfa_enabled":    user.MFAEnabled,
		"onboarded":      user.Onboarded,
	}, nil
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

// DeleteUser disables the account rather than dropping rows.
func DeleteUser(email string) error {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return result.Error
	}
	user.Disabled = true
	return config.DB.Save(&user).Error
}
