package service

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ===== DTOs =====

type OrderCosts struct {
	OrderID    uint    `json:"order_id"`
	UsageTotal float64 `json:"usage_total"`
	UsageQty   float64 `json:"usage_qty"`
	WasteTotal float64 `json:"waste_total"`
	WasteQty   float64 `json:"waste_qty"`
	Total      float64 `json:"total"`
}

type CategoryCost struct {
	Category   string  `json:"category"`
	UsageTotal float64 `json:"usage_total"`
	WasteTotal float64 `json:"waste_total"`
	Total      float64 `json:"total"`
	Entries    int64   `json:"entries"`
	AvgCost    float64 `json:"avg_cost"`
}

type MonthlyCost struct {
	Month      string  `json:"month"` // YYYY-MM
	UsageTotal float64 `json:"usage_total"`
	WasteTotal float64 `json:"waste_total"`
	Total      float64 `json:"total"`
}

type WasteByReason struct {
	Reason string  `json:"reason"`
	Total  float64 `json:"total"`
	Qty    float64 `json:"qty"`
	Count  int64   `json:"count"`
}

// ===== Service =====

type CostService interface {
	OrderCostSummary(ctx context.Context, orderID uint) (OrderCosts, error)
	CostsByCategory(ctx context.Context, from, to time.Time) ([]CategoryCost, error)
	MonthlyCosts(ctx context.Context, year int) ([]MonthlyCost, error)
	WasteByReasons(ctx context.Context, from, to time.Time) ([]WasteByReason, error)
}

type costService struct{ db *gorm.DB }

func NewCostService(db *gorm.DB) CostService { return &costService{db: db} }

// OrderCostSummary sums the usage and waste ledgers for one order. An
// order with no ledger rows yields zeros, never an error.
func (s *costService) OrderCostSummary(ctx context.Context, orderID uint) (OrderCosts, error) {
	out := OrderCosts{OrderID: orderID}

	var usage struct {
		Total float64
		Qty   float64
	}
	if err := s.db.WithContext(ctx).
		Table("material_usages").
		Select("COALESCE(SUM(total_cost),0) AS total, COALESCE(SUM(quantity),0) AS qty").
		Where("order_id = ?", orderID).
		Scan(&usage).Error; err != nil {
		return out, err
	}

	var waste struct {
		Total float64
		Qty   float64
	}
	if err := s.db.WithContext(ctx).
		Table("wastes").
		Select("COALESCE(SUM(total_cost),0) AS total, COALESCE(SUM(quantity),0) AS qty").
		Where("order_id = ?", orderID).
		Scan(&waste).Error; err != nil {
		return out, err
	}

	out.UsageTotal = usage.Total
	out.UsageQty = usage.Qty
	out.WasteTotal = waste.Total
	out.WasteQty = waste.Qty
	out.Total = usage.Total + waste.Total
	return out, nil
}

func (s *costService) CostsByCategory(ctx context.Context, from, to time.Time) ([]CategoryCost, error) {
	type row struct {
		Category string
		Total    float64
		Entries  int64
	}

	var usageRows []row
	if err := s.db.WithContext(ctx).
		Table("material_usages").
		Select("category, COALESCE(SUM(total_cost),0) AS total, COUNT(id) AS entries").
		Where("used_at >= ? AND used_at < ?", from, to).
		Group("category").
		Scan(&usageRows).Error; err != nil {
		return nil, err
	}

	var wasteRows []row
	if err := s.db.WithContext(ctx).
		Table("wastes").
		Select("category, COALESCE(SUM(total_cost),0) AS total, COUNT(id) AS entries").
		Where("wasted_at >= ? AND wasted_at < ?", from, to).
		Group("category").
		Scan(&wasteRows).Error; err != nil {
		return nil, err
	}

	merged := map[string]*CategoryCost{}
	for _, r := range usageRows {
		merged[r.Category] = &CategoryCost{Category: r.Category, UsageTotal: r.Total, Entries: r.Entries}
	}
	for _, r := range wasteRows {
		cc, ok := merged[r.Category]
		if !ok {
			cc = &CategoryCost{Category: r.Category}
			merged[r.Category] = cc
		}
		cc.WasteTotal = r.Total
		cc.Entries += r.Entries
	}

	out := make([]CategoryCost, 0, len(merged))
	for _, cc := range merged {
		cc.Total = cc.UsageTotal + cc.WasteTotal
		if cc.Entries > 0 {
			cc.AvgCost = cc.Total / float64(cc.Entries)
		}
		out = append(out, *cc)
	}
	return out, nil
}

// MonthlyCosts buckets ledger rows by calendar month in Go rather than in
// SQL so the query stays portable across postgres and the sqlite test
// driver.
func (s *costService) MonthlyCosts(ctx context.Context, year int) ([]MonthlyCost, error) {
	from := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	type entry struct {
		At    time.Time
		Total float64
	}

	var usage []entry
	if err := s.db.WithContext(ctx).
		Table("material_usages").
		Select("used_at AS at, total_cost AS total").
		Where("used_at >= ? AND used_at < ?", from, to).
		Scan(&usage).Error; err != nil {
		return nil, err
	}

	var waste []entry
	if err := s.db.WithContext(ctx).
		Table("wastes").
		Select("wasted_at AS at, total_cost AS total").
		Where("wasted_at >= ? AND wasted_at < ?", from, to).
		Scan(&waste).Error; err != nil {
		return nil, err
	}

	buckets := make([]MonthlyCost, 12)
	for m := 0; m < 12; m++ {
		buckets[m].Month = time.Date(year, time.Month(m+1), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
	}
	for _, e := range usage {
		buckets[int(e.At.Month())-1].UsageTotal += e.Total
	}
	for _, e := range waste {
		buckets[int(e.At.Month())-1].WasteTotal += e.Total
	}
	for m := range buckets {
		buckets[m].Total = buckets[m].UsageTotal + buckets[m].WasteTotal
	}
	return buckets, nil
}

func (s *costService) WasteByReasons(ctx context.Context, from, to time.Time) ([]WasteByReason, error) {
	var rows []WasteByReason
	if err := s.db.WithContext(ctx).
		Table("wastes").
		Select("reason, COALESCE(SUM(total_cost),0) AS total, COALESCE(SUM(quantity),0) AS qty, COUNT(id) AS count").
		Where("wasted_at >= ? AND wasted_at < ?", from, to).
		Group("reason").
		Order("total DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []WasteByReason{}
	}
	return rows, nil
}
