package controllers

import (
	"net/http"
	"time"

	"tailorshop-backend/config"
	"tailorshop-backend/middlewares"
	"tailorshop-backend/models"
	"tailorshop-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateMaterialUsage books fabric against an order. total_cost must
// equal quantity * unit_cost within the cent tolerance; stock is reduced
// on success.
func CreateMaterialUsage(c *gin.Context) {
	var input struct {
		OrderID   uint       `json:"order_id" binding:"required"`
		FabricID  uint       `json:"fabric_id" binding:"required"`
		Category  string     `json:"category"`
		Quantity  float64    `json:"quantity" binding:"required,gt=0"`
		UnitCost  float64    `json:"unit_cost" binding:"required,gt=0"`
		TotalCost float64    `json:"total_cost" binding:"required"`
		UsedAt    *time.Time `json:"used_at"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}
	if !utils.MoneyEqual(input.TotalCost, input.Quantity*input.UnitCost) {
		utils.Error(c, http.StatusBadRequest, "total_cost does not match quantity * unit_cost", nil)
		return
	}

	var order models.Order
	if err := config.DB.First(&order, input.OrderID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "order not found", nil)
		return
	}
	var fabric models.Fabric
	if err := config.DB.First(&fabric, input.FabricID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "fabric not found", nil)
		return
	}

	usedAt := time.Now()
	if input.UsedAt != nil {
		usedAt = *input.UsedAt
	}

	usage := models.MaterialUsage{
		OrderID:    input.OrderID,
		FabricID:   input.FabricID,
		Category:   input.Category,
		Quantity:   input.Quantity,
		UnitCost:   input.UnitCost,
		TotalCost:  input.TotalCost,
		UsedAt:     usedAt,
		RecordedBy: middlewares.CurrentUserID(c),
	}
	if err := config.DB.Create(&usage).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not record usage", err)
		return
	}

	config.DB.Model(&models.Fabric{}).
		Where("id = ?", input.FabricID).
		Update("stock_qty", gorm.Expr("stock_qty - ?", input.Quantity))

	utils.Success(c, "usage recorded", usage)
}

// GET /material-usage?order_id=&category=&from=&to=
func GetAllMaterialUsage(c *gin.Context) {
	q := config.DB.Model(&models.MaterialUsage{}).Preload("Fabric")

	if oid := c.Query("order_id"); oid != "" {
		q = q.Where("order_id = ?", oid)
	}
	if cat := c.Query("category"); cat != "" {
		q = q.Where("category = ?", cat)
	}

	var rows []models.MaterialUsage
	if err := q.Order("id DESC").Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "query failed", err)
		return
	}
	utils.Success(c, "ok", rows)
}

func GetMaterialUsageByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}

	var usage models.MaterialUsage
	if err := config.DB.Preload("Fabric").Preload("Order").First(&usage, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "usage record not found", nil)
		return
	}
	utils.Success(c, "ok", usage)
}

func DeleteMaterialUsage(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}

	var usage models.MaterialUsage
	if err := config.DB.First(&usage, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "usage record not found", nil)
		return
	}

	// Booked stock comes back when the entry is removed.
	config.DB.Model(&models.Fabric{}).
		Where("id = ?", usage.FabricID).
		Update("stock_qty", gorm.Expr("stock_qty + ?", usage.Quantity))

	if err := config.DB.Delete(&usage).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not delete usage record", err)
		return
	}
	utils.Success(c, "usage deleted", nil)
}

// CreateWaste mirrors usage recording; the order reference is optional.
func CreateWaste(c *gin.Context) {
	var input struct {
		FabricID  uint       `json:"fabric_id" binding:"required"`
		OrderID   *uint      `json:"order_id"`
		Category  string     `json:"category"`
		Reason    string     `json:"reason" binding:"required"`
		Quantity  float64    `json:"quantity" binding:"required,gt=0"`
		UnitCost  float64    `json:"unit_cost" binding:"required,gt=0"`
		TotalCost float64    `json:"total_cost" binding:"required"`
		WastedAt  *time.Time `json:"wasted_at"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}
	if !utils.MoneyEqual(input.TotalCost, input.Quantity*input.UnitCost) {
		utils.Error(c, http.StatusBadRequest, "total_cost does not match quantity * unit_cost", nil)
		return
	}

	var fabric models.Fabric
	if err := config.DB.First(&fabric, input.FabricID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "fabric not found", nil)
		return
	}

	wastedAt := time.Now()
	if input.WastedAt != nil {
		wastedAt = *input.WastedAt
	}

	waste := models.Waste{
		FabricID:   input.FabricID,
		OrderID:    input.OrderID,
		Category:   input.Category,
		Reason:     input.Reason,
		Quantity:   input.Quantity,
		UnitCost:   input.UnitCost,
		TotalCost:  input.TotalCost,
		WastedAt:   wastedAt,
		RecordedBy: middlewares.CurrentUserID(c),
	}
	if err := config.DB.Create(&waste).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not record waste", err)
		return
	}

	config.DB.Model(&models.Fabric{}).
		Where("id = ?", input.FabricID).
		Update("stock_qty", gorm.Expr("stock_qty - ?", input.Quantity))

	utils.Success(c, "waste recorded", waste)
}

func GetAllWaste(c *gin.Context) {
	q := config.DB.Model(&models.Waste{}).Preload("Fabric")
	if reason := c.Query("reason"); reason != "" {
		q = q.Where("reason = ?", reason)
	}
	if cat := c.Query("category"); cat != "" {
		q = q.Where("category = ?", cat)
	}

	var rows []models.Waste
	if err := q.Order("id DESC").Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "query failed", err)
		return
	}
	utils.Success(c, "ok", rows)
}

func DeleteWaste(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	if err := config.DB.Delete(&models.Waste{}, id).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not delete waste record", err)
		return
	}
	utils.Success(c, "waste deleted", nil)
}
