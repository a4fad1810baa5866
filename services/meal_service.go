package services

import (
	"time"

	"github.com/calo-work-stack/Calo-sub003/config"
	"github.com/calo-work-stack/Calo-sub003/models"

	"gorm.io/gorm"
)

type MealService struct{}

func NewMealService() *MealService { return &MealService{} }

type MealRequest struct {
	Period   string    `json:"period"` // breakfast|lunch|dinner|snack|late_night
	AteAt    time.Time `json:"ate_at"`
	Name     string    `json:"name"`
	Calories float64   `json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`
	PhotoURL string    `json:"photo_url"`
}

func (s *MealService) AddMeal(userID uint, req MealRequest) (*models.Meal, error) {
	meal := &models.Meal{
		UserID:   userID,
		Period:   NormalizeMealPeriod(req.Period),
		AteAt:    req.AteAt,
		Name:     req.Name,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
		PhotoURL: req.PhotoURL,
	}
	if err := config.DB.Create(meal).Error; err != nil {
		return nil, err
	}

	// keep the profile's lifetime counter in step
	config.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("total_meals_logged", gorm.Expr("total_meals_logged + 1"))

	return meal, nil
}

func (s *MealService) ListMeals(userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := config.DB.
		Where("user_id = ?", userID).
		Order("ate_at DESC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) GetMeal(userID, mealID uint) (*models.Meal, error) {
	var meal models.Meal
	err := config.DB.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		return nil, err // could be ErrRecordNotFound
	}
	return &meal, nil
}

func (s *MealService) UpdateMeal(userID, mealID uint, req MealRequest) (*models.Meal, error) {
	var meal models.Meal
	if err := config.DB.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error; err != nil {
		return nil, err
	}

	meal.Period = NormalizeMealPeriod(req.Period)
	meal.AteAt = req.AteAt
	meal.Name = req.Name
	meal.Calories = req.Calories
	meal.Protein = req.Protein
	meal.Carbs = req.Carbs
	meal.Fat = req.Fat
	if req.PhotoURL != "" {
		meal.PhotoURL = req.PhotoURL
	}

	if err := config.DB.Save(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func (s *MealService) DeleteMeal(userID, mealID uint) error {
	return config.DB.
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.Meal{}).Error
}

func (s *MealService) ListMealsByDateRange(userID uint, from, to time.Time) ([]models.Meal, error) {
	var meals []models.Meal
	err := config.DB.
		Where("user_id = ? AND ate_at >= ? AND ate_at < ?", userID, from, to).
		Order("ate_at ASC").
		Find(&meals).Error
	return meals, err
}

// DailyTotals sums one day's meals; the websocket hub pushes this after
// every write so open sessions stay current.
type DailyTotals struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	WaterMl  int     `json:"water_ml"`
}

func (s *MealService) TotalsForDay(userID uint, day time.Time) (*DailyTotals, error) {
	start := dayStart(day)
	end := start.Add(24 * time.Hour)

	meals, err := s.ListMealsByDateRange(userID, start, end)
	if err != nil {
		return nil, err
	}

	t := &DailyTotals{Date: start.Format("2006-01-02")}
	for _, m := range meals {
		t.Calories += m.Calories
		t.Protein += m.Protein
		t.Carbs += m.Carbs
		t.Fat += m.Fat
	}

	var w models.WaterIntake
	err = config.DB.
		Where("user_id = ? AND date = ?", userID, start).
		First(&w).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}
	t.WaterMl = w.AmountMl

	return t, nil
}
