package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/calo-work-stack/Calo-sub003/services"

	"github.com/gin-gonic/gin"
)

// POST /calendar/events
func AddCalendarEvent(c *gin.Context) {
	uid := c.GetUint("userID")

	var req services.CalendarEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	ev, err := services.AddCalendarEvent(uid, date, req.Title, req.Type, req.Description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, ev)
}

// GET /calendar/events?from=YYYY-MM-DD&to=YYYY-MM-DD
func ListCalendarEvents(c *gin.Context) {
	uid := c.GetUint("userID")

	from, to, err := parseRangeQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := services.ListEventsByDateRange(uid, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// DELETE /calendar/events/:id
func DeleteCalendarEvent(c *gin.Context) {
	uid := c.GetUint("userID")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	if err := services.DeleteCalendarEvent(uid, uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// --- helpers ---

// parseRangeQuery reads from/to query params, defaulting to the current month.
func parseRangeQuery(c *gin.Context) (time.Time, time.Time, error) {
	now := time.Now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, -1)

	fromStr := c.DefaultQuery("from", first.Format("2006-01-02"))
	toStr := c.DefaultQuery("to", last.Format("2006-01-02"))

	from, err := time.ParseInLocation("2006-01-02", fromStr, now.Location())
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid from date")
	}
	to, err := time.ParseInLocation("2006-01-02", toStr, now.Location())
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid to date")
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, errors.New("`to` must be on/after `from`")
	}
	return from, to, nil
}
