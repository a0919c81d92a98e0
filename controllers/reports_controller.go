package controllers

import (
	"fmt"
	"net/http"
	"time"

	"tailorshop-backend/config"
	"tailorshop-backend/service"
	"tailorshop-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

func reportRange(c *gin.Context) (time.Time, time.Time) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	if v := c.Query("from"); v != "" {
		if parsed, err := time.Parse("2006-01-02", v); err == nil {
			from = parsed
		}
	}
	if v := c.Query("to"); v != "" {
		if parsed, err := time.Parse("2006-01-02", v); err == nil {
			to = parsed
		}
	}
	return from, to
}

// GET /reports/costs/orders/:id
func ReportOrderCosts(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}

	svc := service.NewCostService(config.DB)
	summary, err := svc.OrderCostSummary(c.Request.Context(), id)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "report failed", err)
		return
	}
	utils.Success(c, "ok", summary)
}

// GET /reports/costs/categories?from=&to=
func ReportCategoryCosts(c *gin.Context) {
	from, to := reportRange(c)

	svc := service.NewCostService(config.DB)
	rows, err := svc.CostsByCategory(c.Request.Context(), from, to)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "report failed", err)
		return
	}
	utils.Success(c, "ok", rows)
}

// GET /reports/costs/monthly?year=
func ReportMonthlyCosts(c *gin.Context) {
	year := getInt(c, "year", time.Now().Year())

	svc := service.NewCostService(config.DB)
	rows, err := svc.MonthlyCosts(c.Request.Context(), year)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "report failed", err)
		return
	}
	utils.Success(c, "ok", rows)
}

// GET /reports/waste?from=&to=
func ReportWaste(c *gin.Context) {
	from, to := reportRange(c)

	svc := service.NewCostService(config.DB)
	rows, err := svc.WasteByReasons(c.Request.Context(), from, to)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "report failed", err)
		return
	}
	utils.Success(c, "ok", rows)
}

// GET /reports/export/usage.xlsx?from=&to=
func ExportUsageXLSX(c *gin.Context) {
	from, to := reportRange(c)

	type row struct {
		ID        uint
		OrderNo   string
		Fabric    string
		Category  string
		Quantity  float64
		UnitCost  float64
		TotalCost float64
		UsedAt    time.Time
	}

	var rows []row
	if err := config.DB.
		Table("material_usages").
		Select(`material_usages.id,
			orders.order_no AS order_no,
			fabrics.name AS fabric,
			material_usages.category,
			material_usages.quantity,
			material_usages.unit_cost,
			material_usages.total_cost,
			material_usages.used_at`).
		Joins("INNER JOIN orders ON orders.id = material_usages.order_id").
		Joins("INNER JOIN fabrics ON fabrics.id = material_usages.fabric_id").
		Where("material_usages.used_at >= ? AND material_usages.used_at < ?", from, to).
		Order("material_usages.used_at").
		Scan(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "export failed", err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Usage"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Order", "Fabric", "Category", "Quantity", "Unit Cost", "Total Cost", "Used At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for i, r := range rows {
		values := []interface{}{r.ID, r.OrderNo, r.Fabric, r.Category, r.Quantity, r.UnitCost, r.TotalCost, r.UsedAt.Format("2006-01-02")}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	filename := fmt.Sprintf("usage-%s.xlsx", from.Format("2006-01"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		utils.Error(c, http.StatusInternalServerError, "export failed", err)
	}
}
