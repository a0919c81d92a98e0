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

type purchaseItemInput struct {
	FabricID  uint    `json:"fabric_id" binding:"required"`
	Quantity  float64 `json:"quantity" binding:"required,gt=0"`
	UnitPrice float64 `json:"unit_price" binding:"required,gt=0"`
	LineTotal float64 `json:"line_total" binding:"required"`
}

// CreatePurchaseOrder validates the denormalized money fields: every line
// total must equal quantity * unit price and the order total must equal
// the sum of lines, both within the cent tolerance.
func CreatePurchaseOrder(c *gin.Context) {
	var input struct {
		SupplierID   uint                `json:"supplier_id" binding:"required"`
		OrderDate    *time.Time          `json:"order_date"`
		DeliveryDate *time.Time          `json:"delivery_date"`
		TotalAmount  float64             `json:"total_amount" binding:"required"`
		Notes        string              `json:"notes"`
		Items        []purchaseItemInput `json:"items" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	var supplier models.Supplier
	if err := config.DB.First(&supplier, input.SupplierID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "supplier not found", nil)
		return
	}

	var sum float64
	for _, it := range input.Items {
		if !utils.MoneyEqual(it.LineTotal, it.Quantity*it.UnitPrice) {
			utils.Error(c, http.StatusBadRequest, "line_total does not match quantity * unit_price", nil)
			return
		}
		sum += it.LineTotal
	}
	if !utils.MoneyEqual(input.TotalAmount, sum) {
		utils.Error(c, http.StatusBadRequest, "total_amount does not match sum of line totals", nil)
		return
	}

	orderDate := time.Now()
	if input.OrderDate != nil {
		orderDate = *input.OrderDate
	}

	var seq int64
	config.DB.Model(&models.PurchaseOrder{}).Count(&seq)

	po := models.PurchaseOrder{
		OrderNo:      utils.GenPurchaseCode(seq+1, time.Now()),
		SupplierID:   input.SupplierID,
		Status:       models.PurchasePending,
		OrderDate:    orderDate,
		DeliveryDate: input.DeliveryDate,
		TotalAmount:  input.TotalAmount,
		Notes:        input.Notes,
		CreatedByID:  middlewares.CurrentUserID(c),
	}
	for _, it := range input.Items {
		po.Items = append(po.Items, models.PurchaseOrderItem{
			FabricID:  it.FabricID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			LineTotal: it.LineTotal,
		})
	}

	if err := config.DB.Create(&po).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not create purchase order", err)
		return
	}
	utils.Success(c, "purchase order created", po)
}

func GetAllPurchaseOrders(c *gin.Context) {
	q := config.DB.Model(&models.PurchaseOrder{}).Preload("Supplier")
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if sid := c.Query("supplier_id"); sid != "" {
		q = q.Where("supplier_id = ?", sid)
	}

	var orders []models.PurchaseOrder
	if err := q.Order("id DESC").Find(&orders).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "query failed", err)
		return
	}
	utils.Success(c, "ok", orders)
}

func GetPurchaseOrderByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}

	var po models.PurchaseOrder
	if err := config.DB.
		Preload("Supplier").Preload("Items").Preload("Items.Fabric").
		First(&po, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "purchase order not found", nil)
		return
	}
	utils.Success(c, "ok", po)
}

// UpdatePurchaseOrderStatus moves the header status. Receiving the order
// books the purchased quantities into fabric stock.
func UpdatePurchaseOrderStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}

	var po models.PurchaseOrder
	if err := config.DB.Preload("Items").First(&po, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "purchase order not found", nil)
		return
	}

	var input struct {
		Status models.PurchaseStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}
	switch input.Status {
	case models.PurchasePending, models.PurchaseApproved, models.PurchaseReceived, models.PurchaseCancelled:
	default:
		utils.Error(c, http.StatusBadRequest, "unknown status", nil)
		return
	}

	receiving := input.Status == models.PurchaseReceived && po.Status != models.PurchaseReceived
	po.Status = input.Status
	if receiving {
		now := time.Now()
		po.DeliveryDate = &now
	}

	if err := config.DB.Save(&po).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not update purchase order", err)
		return
	}

	if receiving {
		for _, it := range po.Items {
			config.DB.Model(&models.Fabric{}).
				Where("id = ?", it.FabricID).
				Update("stock_qty", gorm.Expr("stock_qty + ?", it.Quantity))
		}
	}
	utils.Success(c, "purchase order updated", po)
}

func DeletePurchaseOrder(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}

	var po models.PurchaseOrder
	if err := config.DB.First(&po, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "purchase order not found", nil)
		return
	}

	config.DB.Where("purchase_order_id = ?", po.ID).Delete(&models.PurchaseOrderItem{})
	if err := config.DB.Delete(&po).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not delete purchase order", err)
		return
	}
	utils.Success(c, "purchase order deleted", nil)
}
