package service

import (
	"context"
	"testing"
	"time"

	"tailorshop-backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedLedgers(t *testing.T, db *gorm.DB) (orderID uint) {
	t.Helper()

	customer := models.Customer{Name: "Asha", Phone: "+100", IsActive: true}
	require.NoError(t, db.Create(&customer).Error)
	order := models.Order{CustomerID: customer.ID, OrderNo: "ORD-2026-000001", GarmentType: models.GarmentSuit, Status: models.OrderReceived}
	require.NoError(t, db.Create(&order).Error)
	fabric := models.Fabric{Name: "Wool", Code: "WOOL-01", StockQty: 100, UnitPrice: 10}
	require.NoError(t, db.Create(&fabric).Error)

	march := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	june := time.Date(2026, 6, 2, 9, 0, 0, 0, time.UTC)

	usages := []models.MaterialUsage{
		{OrderID: order.ID, FabricID: fabric.ID, Category: "outer", Quantity: 2.5, UnitCost: 10, TotalCost: 25, UsedAt: march},
		{OrderID: order.ID, FabricID: fabric.ID, Category: "lining", Quantity: 1, UnitCost: 4, TotalCost: 4, UsedAt: june},
	}
	for i := range usages {
		require.NoError(t, db.Create(&usages[i]).Error)
	}

	oid := order.ID
	wastes := []models.Waste{
		{FabricID: fabric.ID, OrderID: &oid, Category: "outer", Reason: "offcut", Quantity: 0.5, UnitCost: 10, TotalCost: 5, WastedAt: march},
		{FabricID: fabric.ID, Category: "trim", Reason: "defect", Quantity: 2, UnitCost: 3, TotalCost: 6, WastedAt: june},
	}
	for i := range wastes {
		require.NoError(t, db.Create(&wastes[i]).Error)
	}
	return order.ID
}

func TestOrderCostSummary(t *testing.T) {
	db := newTestDB(t)
	orderID := seedLedgers(t, db)

	svc := NewCostService(db)
	got, err := svc.OrderCostSummary(context.Background(), orderID)
	require.NoError(t, err)
	require.Equal(t, 29.0, got.UsageTotal)
	require.Equal(t, 3.5, got.UsageQty)
	require.Equal(t, 5.0, got.WasteTotal)
	require.Equal(t, 34.0, got.Total)
}

func TestOrderCostSummaryEmptyIsZeros(t *testing.T) {
	db := newTestDB(t)

	svc := NewCostService(db)
	got, err := svc.OrderCostSummary(context.Background(), 999)
	require.NoError(t, err)
	require.Zero(t, got.UsageTotal)
	require.Zero(t, got.WasteTotal)
	require.Zero(t, got.Total)
}

func TestCostsByCategoryMergesLedgers(t *testing.T) {
	db := newTestDB(t)
	seedLedgers(t, db)

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	svc := NewCostService(db)
	rows, err := svc.CostsByCategory(context.Background(), from, to)
	require.NoError(t, err)

	byCat := map[string]CategoryCost{}
	for _, r := range rows {
		byCat[r.Category] = r
	}
	require.Len(t, byCat, 3)

	// "outer" appears in both ledgers and must be merged into one row.
	outer := byCat["outer"]
	require.Equal(t, 25.0, outer.UsageTotal)
	require.Equal(t, 5.0, outer.WasteTotal)
	require.Equal(t, 30.0, outer.Total)
	require.Equal(t, int64(2), outer.Entries)
	require.Equal(t, 15.0, outer.AvgCost)

	// "trim" is waste-only.
	trim := byCat["trim"]
	require.Zero(t, trim.UsageTotal)
	require.Equal(t, 6.0, trim.WasteTotal)
}

func TestMonthlyCostsBuckets(t *testing.T) {
	db := newTestDB(t)
	seedLedgers(t, db)

	svc := NewCostService(db)
	rows, err := svc.MonthlyCosts(context.Background(), 2026)
	require.NoError(t, err)
	require.Len(t, rows, 12, "every month present even when empty")

	require.Equal(t, "2026-03", rows[2].Month)
	require.Equal(t, 25.0, rows[2].UsageTotal)
	require.Equal(t, 5.0, rows[2].WasteTotal)
	require.Equal(t, 30.0, rows[2].Total)

	require.Equal(t, "2026-06", rows[5].Month)
	require.Equal(t, 10.0, rows[5].Total)

	require.Zero(t, rows[0].Total)
	require.Zero(t, rows[11].Total)
}

func TestWasteByReasons(t *testing.T) {
	db := newTestDB(t)
	seedLedgers(t, db)

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	svc := NewCostService(db)
	rows, err := svc.WasteByReasons(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Ordered by total descending.
	require.Equal(t, "defect", rows[0].Reason)
	require.Equal(t, 6.0, rows[0].Total)
	require.Equal(t, "offcut", rows[1].Reason)
	require.Equal(t, int64(1), rows[1].Count)
}

func TestWasteByReasonsEmptyRange(t *testing.T) {
	db := newTestDB(t)
	seedLedgers(t, db)

	from := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := NewCostService(db)
	rows, err := svc.WasteByReasons(context.Background(), from, from.AddDate(1, 0, 0))
	require.NoError(t, err)
	require.NotNil(t, rows)
	require.Empty(t, rows)
}
