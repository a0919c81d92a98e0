package controllers

import (
	"net/http"
	"time"

	"tailorshop-backend/config"
	"tailorshop-backend/models"
	"tailorshop-backend/utils"

	"github.com/gin-gonic/gin"
)

func CreateEvent(c *gin.Context) {
	var input struct {
		Title      string           `json:"title" binding:"required"`
		Type       models.EventType `json:"type"`
		CustomerID *uint            `json:"customer_id"`
		OrderID    *uint            `json:"order_id"`
		StartsAt   time.Time        `json:"starts_at" binding:"required"`
		Notes      string           `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}
	if input.Type == "" {
		input.Type = models.EventOther
	}

	event := models.Event{
		Title:      input.Title,
		Type:       input.Type,
		CustomerID: input.CustomerID,
		OrderID:    input.OrderID,
		StartsAt:   input.StartsAt,
		Notes:      input.Notes,
	}
	if err := config.DB.Create(&event).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not create event", err)
		return
	}
	utils.Success(c, "event created", event)
}

// GET /events?type=&from=&to=
func GetAllEvents(c *gin.Context) {
	q := config.DB.Model(&models.Event{})
	if t := c.Query("type"); t != "" {
		q = q.Where("type = ?", t)
	}
	if v := c.Query("from"); v != "" {
		if parsed, err := time.Parse("2006-01-02", v); err == nil {
			q = q.Where("starts_at >= ?", parsed)
		}
	}
	if v := c.Query("to"); v != "" {
		if parsed, err := time.Parse("2006-01-02", v); err == nil {
			q = q.Where("starts_at < ?", parsed)
		}
	}

	var events []models.Event
	if err := q.Order("starts_at").Find(&events).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "query failed", err)
		return
	}
	utils.Success(c, "ok", events)
}

func UpdateEvent(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}

	var event models.Event
	if err := config.DB.First(&event, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "event not found", nil)
		return
	}

	var input struct {
		Title    *string    `json:"title"`
		StartsAt *time.Time `json:"starts_at"`
		Notes    *string    `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	if input.Title != nil {
		event.Title = *input.Title
	}
	if input.StartsAt != nil {
		event.StartsAt = *input.StartsAt
	}
	if input.Notes != nil {
		event.Notes = *input.Notes
	}

	if err := config.DB.Save(&event).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not update event", err)
		return
	}
	utils.Success(c, "event updated", event)
}

func DeleteEvent(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	if err := config.DB.Delete(&models.Event{}, id).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not delete event", err)
		return
	}
	utils.Success(c, "event deleted", nil)
}
