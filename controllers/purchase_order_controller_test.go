package controllers

import (
	"net/http"
	"testing"

	"tailorshop-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func purchaseRouter() *gin.Engine {
	r := gin.New()
	r.POST("/purchase-orders", CreatePurchaseOrder)
	r.PATCH("/purchase-orders/:id/status", UpdatePurchaseOrderStatus)
	return r
}

func seedSupplierAndFabric(t *testing.T, db *gorm.DB) (models.Supplier, models.Fabric) {
	t.Helper()
	supplier := models.Supplier{Name: "Mills & Co", Code: "MILLS", IsActive: true}
	require.NoError(t, db.Create(&supplier).Error)
	fabric := models.Fabric{Name: "Linen", Code: "LIN-01", StockQty: 10, UnitPrice: 8}
	require.NoError(t, db.Create(&fabric).Error)
	return supplier, fabric
}

func TestCreatePurchaseOrderValidatesTotals(t *testing.T) {
	db := setupTest(t)
	supplier, fabric := seedSupplierAndFabric(t, db)
	r := purchaseRouter()

	// Header total disagrees with the line sum.
	w := doJSON(t, r, http.MethodPost, "/purchase-orders", gin.H{
		"supplier_id":  supplier.ID,
		"total_amount": 100.0,
		"items": []gin.H{
			{"fabric_id": fabric.ID, "quantity": 10.0, "unit_price": 8.0, "line_total": 80.0},
		},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// A line total that is not quantity * unit_price.
	w = doJSON(t, r, http.MethodPost, "/purchase-orders", gin.H{
		"supplier_id":  supplier.ID,
		"total_amount": 81.0,
		"items": []gin.H{
			{"fabric_id": fabric.ID, "quantity": 10.0, "unit_price": 8.0, "line_total": 81.0},
		},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Consistent money fields pass.
	w = doJSON(t, r, http.MethodPost, "/purchase-orders", gin.H{
		"supplier_id":  supplier.ID,
		"total_amount": 104.0,
		"items": []gin.H{
			{"fabric_id": fabric.ID, "quantity": 10.0, "unit_price": 8.0, "line_total": 80.0},
			{"fabric_id": fabric.ID, "quantity": 3.0, "unit_price": 8.0, "line_total": 24.0},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var po models.PurchaseOrder
	decodeData(t, w, &po)
	require.Equal(t, models.PurchasePending, po.Status)
	require.NotEmpty(t, po.OrderNo)
	require.Len(t, po.Items, 2)
}

func TestReceivingPurchaseOrderBooksStock(t *testing.T) {
	db := setupTest(t)
	supplier, fabric := seedSupplierAndFabric(t, db)
	r := purchaseRouter()

	w := doJSON(t, r, http.MethodPost, "/purchase-orders", gin.H{
		"supplier_id":  supplier.ID,
		"total_amount": 80.0,
		"items": []gin.H{
			{"fabric_id": fabric.ID, "quantity": 10.0, "unit_price": 8.0, "line_total": 80.0},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)
	var po models.PurchaseOrder
	decodeData(t, w, &po)

	w = doJSON(t, r, http.MethodPatch, "/purchase-orders/"+itoa(po.ID)+"/status",
		gin.H{"status": "RECEIVED"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var reloaded models.Fabric
	require.NoError(t, db.First(&reloaded, fabric.ID).Error)
	require.Equal(t, 20.0, reloaded.StockQty)

	// Receiving again must not double-book.
	w = doJSON(t, r, http.MethodPatch, "/purchase-orders/"+itoa(po.ID)+"/status",
		gin.H{"status": "RECEIVED"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, db.First(&reloaded, fabric.ID).Error)
	require.Equal(t, 20.0, reloaded.StockQty)
}

func TestPurchaseOrderUnknownStatus(t *testing.T) {
	db := setupTest(t)
	supplier, fabric := seedSupplierAndFabric(t, db)
	r := purchaseRouter()

	w := doJSON(t, r, http.MethodPost, "/purchase-orders", gin.H{
		"supplier_id":  supplier.ID,
		"total_amount": 80.0,
		"items": []gin.H{
			{"fabric_id": fabric.ID, "quantity": 10.0, "unit_price": 8.0, "line_total": 80.0},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)
	var po models.PurchaseOrder
	decodeData(t, w, &po)

	w = doJSON(t, r, http.MethodPatch, "/purchase-orders/"+itoa(po.ID)+"/status",
		gin.H{"status": "SHIPPED"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}
