package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ASpurbo/meal-lens-ai-85-sub000/services"

	"github.com/gin-gonic/gin"
)

func newMealService(c *gin.Context) *services.MealService {
	vision, err := services.NewVisionService()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil
	}
	return services.NewMealService(services.NewEstimatorService(), vision)
}

type LogMealInput struct {
	Description string    `json:"description" binding:"required"`
	Notes       string    `json:"notes"`
	AteAt       time.Time `json:"ate_at"`
	Date        string    `json:"date"` // client's calendar date, YYYY-MM-DD
}

func LogMeal(c *gin.Context) {
	var input LogMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.AteAt.IsZero() {
		input.AteAt = time.Now()
	}

	svc := newMealService(c)
	if svc == nil {
		return
	}

	meal, err := svc.LogTextMeal(c.GetUint("userID"), input.Description, input.Notes, input.AteAt, input.Date)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, meal)
}

type LogMealPhotoInput struct {
	Image string    `json:"image" binding:"required"` // data URI
	Notes string    `json:"notes"`
	AteAt time.Time `json:"ate_at"`
	Date  string    `json:"date"`
}

func LogMealPhoto(c *gin.Context) {
	var input LogMealPhotoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.AteAt.IsZero() {
		input.AteAt = time.Now()
	}

	svc := newMealService(c)
	if svc == nil {
		return
	}

	meal, err := svc.LogPhotoMeal(c.GetUint("userID"), input.Image, input.Notes, input.AteAt, input.Date)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, meal)
}

// ListMeals returns one day's meals when ?date= is given, otherwise the
// most recent ones.
func ListMeals(c *gin.Context) {
	userID := c.GetUint("userID")

	if date := c.Query("date"); date != "" {
		meals, err := services.ListMealsByDate(userID, date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, meals)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	meals, err := services.ListRecentMeals(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}

func GetMeal(c *gin.Context) {
	userID := c.GetUint("userID")
	mealID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	meal, err := services.GetMeal(userID, uint(mealID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
		return
	}
	c.JSON(http.StatusOK, meal)
}

func DeleteMeal(c *gin.Context) {
	userID := c.GetUint("userID")
	mealID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	if err := services.DeleteMeal(userID, uint(mealID)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
