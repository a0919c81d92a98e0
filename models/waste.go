package models

import "time"

// Waste entries mirror material usage but may lack an owning order
// (general shop waste). Same total = quantity * unit cost check.
type Waste struct {
	ID         uint      `gorm:"primaryKey"     json:"id"`
	FabricID   uint      `gorm:"not null;index" json:"fabric_id"`
	Fabric     *Fabric   `json:"fabric,omitempty"`
	OrderID    *uint     `gorm:"index"          json:"order_id"`
	Category   string    `gorm:"size:60;index"  json:"category"`
	Reason     string    `gorm:"size:255"       json:"reason"` // offcut, defect, damage...
	Quantity   float64   `gorm:"not null"       json:"quantity"`
	UnitCost   float64   `gorm:"not null"       json:"unit_cost"`
	TotalCost  float64   `gorm:"not null"       json:"total_cost"`
	WastedAt   time.Time `gorm:"index"          json:"wasted_at"`
	RecordedBy uint      `json:"recorded_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
