package models

import "time"

type PurchaseStatus string

const (
	PurchasePending   PurchaseStatus = "PENDING"
	PurchaseApproved  PurchaseStatus = "APPROVED"
	PurchaseReceived  PurchaseStatus = "RECEIVED"
	PurchaseCancelled PurchaseStatus = "CANCELLED"
)

// TotalAmount must equal the sum of item line totals within the money
// tolerance; validated on create/update.
type PurchaseOrder struct {
	ID           uint                `gorm:"primaryKey"               json:"id"`
	OrderNo      string              `gorm:"uniqueIndex;size:30"      json:"order_no"`
	SupplierID   uint                `gorm:"not null;index"           json:"supplier_id"`
	Supplier     *Supplier           `json:"supplier,omitempty"`
	Status       PurchaseStatus      `gorm:"size:20;default:PENDING"  json:"status"`
	OrderDate    time.Time           `json:"order_date"`
	DeliveryDate *time.Time          `json:"delivery_date"`
	TotalAmount  float64             `gorm:"default:0"                json:"total_amount"`
	Notes        string              `gorm:"size:500"                 json:"notes"`
	Items        []PurchaseOrderItem `json:"items"`
	CreatedByID  uint                `json:"created_by_id"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

type PurchaseOrderItem struct {
	ID              uint      `gorm:"primaryKey"     json:"id"`
	PurchaseOrderID uint      `gorm:"index;not null" json:"purchase_order_id"`
	FabricID        uint      `gorm:"not null"       json:"fabric_id"`
	Fabric          *Fabric   `json:"fabric,omitempty"`
	Quantity        float64   `gorm:"not null"       json:"quantity"`
	UnitPrice       float64   `gorm:"not null"       json:"unit_price"`
	LineTotal       float64   `gorm:"not null"       json:"line_total"` // quantity * unit_price
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
