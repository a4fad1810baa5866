package services

import (
	"time"

	"github.com/calo-work-stack/Calo-sub003/config"
	"github.com/calo-work-stack/Calo-sub003/models"
)

type CalendarEventRequest struct {
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Title       string `json:"title" binding:"required"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

func AddCalendarEvent(userID uint, date time.Time, title, eventType, description string) (*models.CalendarEvent, error) {
	ev := &models.CalendarEvent{
		UserID:      userID,
		Date:        dayStart(date),
		Title:       title,
		Type:        eventType,
		Description: description,
	}
	if err := config.DB.Create(ev).Error; err != nil {
		return nil, err
	}
	return ev, nil
}

func ListEventsByDateRange(userID uint, from, to time.Time) ([]models.CalendarEvent, error) {
	var rows []models.CalendarEvent
	err := config.DB.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, dayStart(from), dayEnd(to)).
		Order("date ASC, created_at ASC").
		Find(&rows).Error
	return rows, err
}

func DeleteCalendarEvent(userID, eventID uint) error {
	return config.DB.
		Where("id = ? AND user_id = ?", eventID, userID).
		Delete(&models.CalendarEvent{}).Error
}
