package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ASpurbo/meal-lens-ai-85-sub000/config"
	"github.com/ASpurbo/meal-lens-ai-85-sub000/models"
	"github.com/ASpurbo/meal-lens-ai-85-sub000/nutrition"
	"github.com/ASpurbo/meal-lens-ai-85-sub000/utils"

	"gorm.io/gorm"
)

type MealService struct {
	est    *EstimatorService
	vision *VisionService
}

func NewMealService(est *EstimatorService, vision *VisionService) *MealService {
	return &MealService{est: est, vision: vision}
}

// LogTextMeal estimates macros for a described meal and stores it.
// date is the client's calendar date (YYYY-MM-DD) the meal counts
// against, used for the streak transition.
func (s *MealService) LogTextMeal(userID uint, description, notes string, ateAt time.Time, date string) (*models.MealAnalysis, error) {
	est, err := s.est.Estimate(description)
	if err != nil {
		return nil, err
	}
	return s.saveMeal(userID, est, "", notes, ateAt, date)
}

// LogPhotoMeal uploads the photo, runs label detection, and estimates
// macros from the detected labels. The photo URL is kept on the record.
func (s *MealService) LogPhotoMeal(userID uint, base64Image, notes string, ateAt time.Time, date string) (*models.MealAnalysis, error) {
	photoURL, err := utils.UploadBase64ImageToS3(base64Image, fmt.Sprintf("user-%d", userID))
	if err != nil {
		return nil, fmt.Errorf("failed to upload meal photo: %w", err)
	}

	labels, err := s.vision.RecognizeLabels(base64Image)
	if err != nil {
		return nil, err
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("no foods detected in photo")
	}

	est, err := s.est.Estimate("a plate containing: " + strings.Join(labels, ", "))
	if err != nil {
		return nil, err
	}
	return s.saveMeal(userID, est, photoURL, notes, ateAt, date)
}

// saveMeal inserts the record and advances the streak in one
// transaction, then fans the fresh progress out to the side channels.
func (s *MealService) saveMeal(userID uint, est *MealEstimate, photoURL, notes string, ateAt time.Time, date string) (*models.MealAnalysis, error) {
	if date == "" {
		date = ateAt.Format(time.DateOnly)
	}

	meal := &models.MealAnalysis{
		UserID:     userID,
		Foods:      models.JoinFoods(est.Foods),
		Calories:   est.Calories,
		Protein:    est.Protein,
		Carbs:      est.Carbs,
		Fat:        est.Fat,
		Confidence: string(est.Confidence),
		Notes:      strings.TrimSpace(strings.Join([]string{est.Notes, notes}, " ")),
		PhotoURL:   photoURL,
		AteAt:      ateAt,
	}

	var streak nutrition.Streak
	var extended bool
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(meal).Error; err != nil {
			return err
		}
		var err error
		streak, extended, err = advanceStreakTx(tx, userID, date)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.notifyProgress(userID, date, streak, extended)
	return meal, nil
}

func (s *MealService) notifyProgress(userID uint, date string, streak nutrition.Streak, extended bool) {
	if progress, err := GetDailyProgress(userID, date); err == nil {
		EmitProgress(userID, "score.updated",
			fmt.Sprintf("Health score for %s: %d", date, progress.Score), progress)
	}
	if extended && streakMilestones[streak.Current] {
		EmitProgress(userID, "streak.milestone",
			fmt.Sprintf("%d-day logging streak!", streak.Current), streak)
	}
}

// ListMealsByDate returns the meals whose ate_at falls on the given
// local calendar date, newest first.
func ListMealsByDate(userID uint, date string) ([]models.MealAnalysis, error) {
	start, err := time.ParseInLocation(time.DateOnly, date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	end := start.AddDate(0, 0, 1)

	var meals []models.MealAnalysis
	err = config.DB.
		Where("user_id = ? AND ate_at >= ? AND ate_at < ?", userID, start, end).
		Order("ate_at DESC").
		Find(&meals).Error
	return meals, err
}

func ListRecentMeals(userID uint, limit int) ([]models.MealAnalysis, error) {
	if limit <= 0 {
		limit = 10
	}
	var meals []models.MealAnalysis
	err := config.DB.
		Where("user_id = ?", userID).
		Order("ate_at DESC").
		Limit(limit).
		Find(&meals).Error
	return meals, err
}

func GetMeal(userID, mealID uint) (*models.MealAnalysis, error) {
	var meal models.MealAnalysis
	err := config.DB.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		return nil, err // could be ErrRecordNotFound
	}
	return &meal, nil
}

// DeleteMeal removes one record. Streaks are deliberately not rewound;
// the day was logged.
func DeleteMeal(userID, mealID uint) error {
	res := config.DB.
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.MealAnalysis{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("meal not found")
	}
	return nil
}
