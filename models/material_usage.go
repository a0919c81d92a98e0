package models

import "time"

// Ledger of fabric consumed per order. TotalCost is denormalized
// (quantity * unit cost) and checked against the money tolerance at write
// time; there is no stored generated column.
type MaterialUsage struct {
	ID         uint      `gorm:"primaryKey"        json:"id"`
	OrderID    uint      `gorm:"not null;index"    json:"order_id"`
	Order      *Order    `json:"order,omitempty"`
	FabricID   uint      `gorm:"not null;index"    json:"fabric_id"`
	Fabric     *Fabric   `json:"fabric,omitempty"`
	Category   string    `gorm:"size:60;index"     json:"category"` // lining, outer, trim...
	Quantity   float64   `gorm:"not null"          json:"quantity"`
	UnitCost   float64   `gorm:"not null"          json:"unit_cost"`
	TotalCost  float64   `gorm:"not null"          json:"total_cost"`
	UsedAt     time.Time `gorm:"index"             json:"used_at"`
	RecordedBy uint      `json:"recorded_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
