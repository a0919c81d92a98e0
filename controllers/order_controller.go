package controllers

import (
	"errors"
	"net/http"
	"time"

	"tailorshop-backend/config"
	"tailorshop-backend/middlewares"
	"tailorshop-backend/models"
	"tailorshop-backend/utils"

	"github.com/gin-gonic/gin"
)

func CreateOrder(c *gin.Context) {
	var input struct {
		CustomerID    uint                 `json:"customer_id" binding:"required"`
		GarmentType   models.GarmentType   `json:"garment_type" binding:"required"`
		MeasurementID *uint                `json:"measurement_id"`
		FabricID      *uint                `json:"fabric_id"`
		Priority      models.OrderPriority `json:"priority"`
		Total         float64              `json:"total" binding:"gte=0"`
		Deposit       float64              `json:"deposit" binding:"gte=0"`
		DueDate       *time.Time           `json:"due_date"`
		Notes         string               `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}
	if !input.GarmentType.Valid() {
		utils.Error(c, http.StatusBadRequest, "unknown garment type", nil)
		return
	}
	if input.Priority == "" {
		input.Priority = models.PriorityNormal
	}
	if !input.Priority.Valid() {
		utils.Error(c, http.StatusBadRequest, "unknown priority", nil)
		return
	}
	if input.Deposit > input.Total {
		utils.Error(c, http.StatusBadRequest, "deposit exceeds total", nil)
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, input.CustomerID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "customer not found", nil)
		return
	}

	var seq int64
	config.DB.Model(&models.Order{}).Count(&seq)

	order := models.Order{
		OrderNo:       utils.GenOrderCode(seq+1, time.Now()),
		CustomerID:    input.CustomerID,
		GarmentType:   input.GarmentType,
		MeasurementID: input.MeasurementID,
		FabricID:      input.FabricID,
		Status:        models.OrderReceived,
		Priority:      input.Priority,
		Total:         input.Total,
		Deposit:       input.Deposit,
		DueDate:       input.DueDate,
		Notes:         input.Notes,
		CreatedByID:   middlewares.CurrentUserID(c),
	}
	order.RecalcBalance()

	if err := config.DB.Create(&order).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not create order", err)
		return
	}

	now := time.Now()
	customer.LastOrderAt = &now
	config.DB.Save(&customer)

	utils.Success(c, "order created", order)
}

// GET /orders?status=&priority=&customer_id=&page=&page_size=
func GetAllOrders(c *gin.Context) {
	q := config.DB.Model(&models.Order{}).Preload("Customer")

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if priority := c.Query("priority"); priority != "" {
		q = q.Where("priority = ?", priority)
	}
	if cid := c.Query("customer_id"); cid != "" {
		q = q.Where("customer_id = ?", cid)
	}

	page := getInt(c, "page", 1)
	size := getInt(c, "page_size", 50)

	var total int64
	q.Count(&total)

	var orders []models.Order
	if err := q.Order("id DESC").Offset((page - 1) * size).Limit(size).Find(&orders).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "query failed", err)
		return
	}
	utils.Success(c, "ok", gin.H{"total": total, "items": orders})
}

func GetOrderByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}

	var order models.Order
	if err := config.DB.
		Preload("Customer").Preload("Measurement").Preload("Fabric").
		First(&order, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "order not found", nil)
		return
	}
	utils.Success(c, "ok", order)
}

// UpdateOrder edits order fields except status; status changes go through
// UpdateOrderStatus so the transition table applies.
func UpdateOrder(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}

	var order models.Order
	if err := config.DB.First(&order, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "order not found", nil)
		return
	}

	var input struct {
		MeasurementID *uint                 `json:"measurement_id"`
		FabricID      *uint                 `json:"fabric_id"`
		Priority      *models.OrderPriority `json:"priority"`
		Total         *float64              `json:"total"`
		Deposit       *float64              `json:"deposit"`
		DueDate       *time.Time            `json:"due_date"`
		Notes         *string               `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	if input.MeasurementID != nil {
		order.MeasurementID = input.MeasurementID
	}
	if input.FabricID != nil {
		order.FabricID = input.FabricID
	}
	if input.Priority != nil {
		if !input.Priority.Valid() {
			utils.Error(c, http.StatusBadRequest, "unknown priority", nil)
			return
		}
		order.Priority = *input.Priority
	}
	if input.Total != nil {
		order.Total = *input.Total
	}
	if input.Deposit != nil {
		order.Deposit = *input.Deposit
	}
	if input.DueDate != nil {
		order.DueDate = input.DueDate
	}
	if input.Notes != nil {
		order.Notes = *input.Notes
	}
	if order.Deposit > order.Total {
		utils.Error(c, http.StatusBadRequest, "deposit exceeds total", nil)
		return
	}
	order.RecalcBalance()

	if err := config.DB.Save(&order).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not update order", err)
		return
	}
	utils.Success(c, "order updated", order)
}

// PATCH /orders/:id/status — guarded by the transition table. Illegal
// moves return 422 and leave the record untouched.
func UpdateOrderStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}

	var order models.Order
	if err := config.DB.First(&order, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "order not found", nil)
		return
	}

	var input struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}
	if !input.Status.Valid() {
		utils.Error(c, http.StatusBadRequest, "unknown status", nil)
		return
	}

	if err := order.TransitionTo(input.Status); err != nil {
		if errors.Is(err, models.ErrInvalidStatusTransition) {
			utils.Error(c, http.StatusUnprocessableEntity, "illegal status transition", err)
			return
		}
		utils.Error(c, http.StatusInternalServerError, "could not change status", err)
		return
	}

	if err := config.DB.Save(&order).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not change status", err)
		return
	}
	utils.Success(c, "status updated", order)
}

func DeleteOrder(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}

	var order models.Order
	if err := config.DB.First(&order, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "order not found", nil)
		return
	}
	if err := config.DB.Delete(&order).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not delete order", err)
		return
	}
	utils.Success(c, "order deleted", nil)
}
