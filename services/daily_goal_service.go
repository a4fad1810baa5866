package services

import (
	"errors"
	"time"

	"github.com/calo-work-stack/Calo-sub003/config"
	"github.com/calo-work-stack/Calo-sub003/models"

	"gorm.io/gorm"
)

// UpsertDailyGoal sets the macro targets for one calendar date.
func UpsertDailyGoal(userID uint, date time.Time, calories, protein, carbs, fat float64) (*models.DailyGoal, error) {
	start := dayStart(date)

	var goal models.DailyGoal
	err := config.DB.
		Where("user_id = ? AND date = ?", userID, start).
		First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.DailyGoal{
			UserID:   userID,
			Date:     start,
			Calories: calories,
			Protein:  protein,
			Carbs:    carbs,
			Fat:      fat,
		}
		if err := config.DB.Create(&goal).Error; err != nil {
			return nil, err
		}
		return &goal, nil
	}
	if err != nil {
		return nil, err
	}

	goal.Calories = calories
	goal.Protein = protein
	goal.Carbs = carbs
	goal.Fat = fat
	if err := config.DB.Save(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func ListGoalsByDateRange(userID uint, from, to time.Time) ([]models.DailyGoal, error) {
	var goals []models.DailyGoal
	err := config.DB.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, dayStart(from), dayEnd(to)).
		Order("date ASC").
		Find(&goals).Error
	return goals, err
}

// GoalForDate resolves the effective targets for a date: the date's own row
// when present, else the user's profile defaults.
func GoalForDate(userID uint, date time.Time) (*models.DailyGoal, error) {
	start := dayStart(date)

	var goal models.DailyGoal
	err := config.DB.
		Where("user_id = ? AND date = ?", userID, start).
		First(&goal).Error
	if err == nil {
		return &goal, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &models.DailyGoal{
		UserID:   userID,
		Date:     start,
		Calories: user.DefaultCalories,
		Protein:  user.DefaultProtein,
		Carbs:    user.DefaultCarbs,
		Fat:      user.DefaultFat,
	}, nil
}
