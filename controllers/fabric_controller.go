package controllers

import (
	"net/http"

	"tailorshop-backend/config"
	"tailorshop-backend/models"
	"tailorshop-backend/utils"

	"github.com/gin-gonic/gin"
)

func CreateFabric(c *gin.Context) {
	var input struct {
		Name         string  `json:"name" binding:"required"`
		Code         string  `json:"code" binding:"required"`
		Color        string  `json:"color"`
		Material     string  `json:"material"`
		Unit         string  `json:"unit"`
		StockQty     float64 `json:"stock_qty"`
		ReorderLevel float64 `json:"reorder_level"`
		UnitPrice    float64 `json:"unit_price"`
		SupplierID   *uint   `json:"supplier_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	fabric := models.Fabric{
		Name:         input.Name,
		Code:         input.Code,
		Color:        input.Color,
		Material:     input.Material,
		Unit:         input.Unit,
		StockQty:     input.StockQty,
		ReorderLevel: input.ReorderLevel,
		UnitPrice:    input.UnitPrice,
		SupplierID:   input.SupplierID,
		IsActive:     true,
	}
	if err := config.DB.Create(&fabric).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not create fabric", err)
		return
	}
	utils.Success(c, "fabric created", fabric)
}

// GET /fabrics?q=&low_stock=
func GetAllFabrics(c *gin.Context) {
	q := config.DB.Model(&models.Fabric{}).Preload("Supplier")

	if search := c.Query("q"); search != "" {
		like := "%" + search + "%"
		q = q.Where("name LIKE ? OR code LIKE ? OR material LIKE ?", like, like, like)
	}
	if c.Query("low_stock") == "true" {
		q = q.Where("stock_qty < reorder_level")
	}

	var fabrics []models.Fabric
	if err := q.Order("id DESC").Find(&fabrics).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "query failed", err)
		return
	}
	utils.Success(c, "ok", fabrics)
}

func GetFabricByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}

	var fabric models.Fabric
	if err := config.DB.Preload("Supplier").First(&fabric, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "fabric not found", nil)
		return
	}
	utils.Success(c, "ok", fabric)
}

func UpdateFabric(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}

	var fabric models.Fabric
	if err := config.DB.First(&fabric, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "fabric not found", nil)
		return
	}

	var input struct {
		Name         *string  `json:"name"`
		Color        *string  `json:"color"`
		Material     *string  `json:"material"`
		Unit         *string  `json:"unit"`
		StockQty     *float64 `json:"stock_qty"`
		ReorderLevel *float64 `json:"reorder_level"`
		UnitPrice    *float64 `json:"unit_price"`
		SupplierID   *uint    `json:"supplier_id"`
		IsActive     *bool    `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	if input.Name != nil {
		fabric.Name = *input.Name
	}
	if input.Color != nil {
		fabric.Color = *input.Color
	}
	if input.Material != nil {
		fabric.Material = *input.Material
	}
	if input.Unit != nil {
		fabric.Unit = *input.Unit
	}
	if input.StockQty != nil {
		fabric.StockQty = *input.StockQty
	}
	if input.ReorderLevel != nil {
		fabric.ReorderLevel = *input.ReorderLevel
	}
	if input.UnitPrice != nil {
		fabric.UnitPrice = *input.UnitPrice
	}
	if input.SupplierID != nil {
		fabric.SupplierID = input.SupplierID
	}
	if input.IsActive != nil {
		fabric.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&fabric).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not update fabric", err)
		return
	}
	utils.Success(c, "fabric updated", fabric)
}

func DeleteFabric(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}

	if err := config.DB.Delete(&models.Fabric{}, id).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not delete fabric", err)
		return
	}
	utils.Success(c, "fabric deleted", nil)
}
