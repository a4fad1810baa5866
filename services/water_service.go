package services

import (
	"time"

	"github.com/calo-work-stack/Calo-sub003/config"
	"github.com/calo-work-stack/Calo-sub003/models"

	"gorm.io/gorm"
)

// AddWater increments the day's intake; one row per (user, date).
func AddWater(userID uint, date time.Time, amountMl int) (*models.WaterIntake, error) {
	start := dayStart(date)

	var row models.WaterIntake
	err := config.DB.
		Where("user_id = ? AND date = ?", userID, start).
		First(&row).Error
	if err == gorm.ErrRecordNotFound {
		row = models.WaterIntake{UserID: userID, Date: start, AmountMl: amountMl}
		if err := config.DB.Create(&row).Error; err != nil {
			return nil, err
		}
		return &row, nil
	}
	if err != nil {
		return nil, err
	}

	row.AmountMl += amountMl
	if err := config.DB.Save(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func ListWaterByDateRange(userID uint, from, to time.Time) ([]models.WaterIntake, error) {
	var rows []models.WaterIntake
	err := config.DB.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, dayStart(from), dayEnd(to)).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}
