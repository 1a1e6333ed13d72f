package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/ASpurbo/meal-lens-ai-85-sub000/nutrition"
	"github.com/ASpurbo/meal-lens-ai-85-sub000/services"

	"github.com/gin-gonic/gin"
)

func GetGoals(c *gin.Context) {
	userID := c.GetUint("userID")

	goal, err := services.GetGoals(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if goal == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no goals set"})
		return
	}
	c.JSON(http.StatusOK, goal)
}

// OverrideGoals stores user-typed targets. No kcal consistency is
// enforced here, only positivity.
func OverrideGoals(c *gin.Context) {
	userID := c.GetUint("userID")

	var req nutrition.Targets
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := services.OverrideGoals(userID, req)
	if err != nil {
		if errors.Is(err, nutrition.ErrInvalidGoals) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "goal values must be positive"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goal)
}

type PlanInput struct {
	Goal string `json:"goal" binding:"required"` // six-way plan taxonomy
}

// ApplyPlan re-derives goals with one of the six plan objectives.
func ApplyPlan(c *gin.Context) {
	userID := c.GetUint("userID")

	var input PlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	plan := nutrition.PlanGoal(input.Goal)
	if !plan.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown plan goal"})
		return
	}

	goal, err := services.ApplyPlanGoal(userID, plan)
	if err != nil {
		if errors.Is(err, nutrition.ErrInvalidProfile) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "complete your profile first"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goal)
}

// GetDailyProgress reports one day's intake against goals, including the
// health score. Defaults to today (server local) when date is omitted.
func GetDailyProgress(c *gin.Context) {
	userID := c.GetUint("userID")

	date := c.Query("date")
	if date == "" {
		date = time.Now().Format(time.DateOnly)
	} else if _, err := time.Parse(time.DateOnly, date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	progress, err := services.GetDailyProgress(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, progress)
}
