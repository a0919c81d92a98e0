package models

import "time"

type Fabric struct {
	ID           uint      `gorm:"primaryKey"          json:"id"`
	Name         string    `gorm:"size:180;not null"   json:"name"`
	Code         string    `gorm:"uniqueIndex;size:60" json:"code"`
	Color        string    `gorm:"size:60"             json:"color"`
	Material     string    `gorm:"size:120"            json:"material"` // cotton, wool, linen...
	Unit         string    `gorm:"size:30"             json:"unit"`     // meter, yard
	StockQty     float64   `gorm:"default:0"           json:"stock_qty"`
	ReorderLevel float64   `gorm:"default:0"           json:"reorder_level"`
	UnitPrice    float64   `gorm:"default:0"           json:"unit_price"`
	SupplierID   *uint     `gorm:"index"               json:"supplier_id"`
	Supplier     *Supplier `json:"supplier,omitempty"`
	IsActive     bool      `gorm:"default:true"        json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
