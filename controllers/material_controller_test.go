package controllers

import (
	"net/http"
	"testing"

	"tailorshop-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func materialRouter() *gin.Engine {
	r := gin.New()
	r.POST("/material-usage", CreateMaterialUsage)
	r.DELETE("/material-usage/:id", DeleteMaterialUsage)
	r.POST("/waste", CreateWaste)
	return r
}

func seedOrderAndFabric(t *testing.T, db *gorm.DB) (models.Order, models.Fabric) {
	t.Helper()
	customer := models.Customer{Name: "Asha", Phone: "+100", IsActive: true}
	require.NoError(t, db.Create(&customer).Error)
	order := models.Order{CustomerID: customer.ID, OrderNo: "ORD-2026-000001", GarmentType: models.GarmentSuit, Status: models.OrderCutting}
	require.NoError(t, db.Create(&order).Error)
	fabric := models.Fabric{Name: "Wool", Code: "WOOL-01", StockQty: 50, UnitPrice: 10}
	require.NoError(t, db.Create(&fabric).Error)
	return order, fabric
}

// 2.5 * 10.00 = 25.00: a claimed total of 25.01 is off by a full cent
// and must be rejected; 25.00 passes.
func TestCreateUsageTotalTolerance(t *testing.T) {
	db := setupTest(t)
	order, fabric := seedOrderAndFabric(t, db)
	r := materialRouter()

	w := doJSON(t, r, http.MethodPost, "/material-usage", gin.H{
		"order_id":   order.ID,
		"fabric_id":  fabric.ID,
		"quantity":   2.5,
		"unit_cost":  10.0,
		"total_cost": 25.01,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/material-usage", gin.H{
		"order_id":   order.ID,
		"fabric_id":  fabric.ID,
		"category":   "outer",
		"quantity":   2.5,
		"unit_cost":  10.0,
		"total_cost": 25.0,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Booking reduces fabric stock.
	var reloaded models.Fabric
	require.NoError(t, db.First(&reloaded, fabric.ID).Error)
	require.Equal(t, 47.5, reloaded.StockQty)
}

func TestDeleteUsageRestoresStock(t *testing.T) {
	db := setupTest(t)
	order, fabric := seedOrderAndFabric(t, db)
	r := materialRouter()

	w := doJSON(t, r, http.MethodPost, "/material-usage", gin.H{
		"order_id":   order.ID,
		"fabric_id":  fabric.ID,
		"quantity":   4.0,
		"unit_cost":  10.0,
		"total_cost": 40.0,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var usage models.MaterialUsage
	decodeData(t, w, &usage)

	w = doJSON(t, r, http.MethodDelete, "/material-usage/"+itoa(usage.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var reloaded models.Fabric
	require.NoError(t, db.First(&reloaded, fabric.ID).Error)
	require.Equal(t, 50.0, reloaded.StockQty)
}

func TestCreateWasteWithoutOrder(t *testing.T) {
	db := setupTest(t)
	_, fabric := seedOrderAndFabric(t, db)
	r := materialRouter()

	w := doJSON(t, r, http.MethodPost, "/waste", gin.H{
		"fabric_id":  fabric.ID,
		"reason":     "offcut",
		"quantity":   1.5,
		"unit_cost":  10.0,
		"total_cost": 15.0,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var waste models.Waste
	decodeData(t, w, &waste)
	require.Nil(t, waste.OrderID)

	var reloaded models.Fabric
	require.NoError(t, db.First(&reloaded, fabric.ID).Error)
	require.Equal(t, 48.5, reloaded.StockQty)
}

func TestCreateWasteTotalMismatch(t *testing.T) {
	db := setupTest(t)
	_, fabric := seedOrderAndFabric(t, db)

	w := doJSON(t, materialRouter(), http.MethodPost, "/waste", gin.H{
		"fabric_id":  fabric.ID,
		"reason":     "defect",
		"quantity":   2.0,
		"unit_cost":  10.0,
		"total_cost": 21.0,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}
