package models

import "time"

// Measurements are versioned per (customer, garment type). Exactly one row
// per pair may carry is_latest=true; the handlers maintain the flag on
// create and update. Delete only flips the flag on the targeted row and
// never promotes an older version.
type Measurement struct {
	ID          uint        `gorm:"primaryKey"                               json:"id"`
	CustomerID  uint        `gorm:"not null;index:idx_meas_customer_garment" json:"customer_id"`
	GarmentType GarmentType `gorm:"size:30;not null;index:idx_meas_customer_garment" json:"garment_type"`
	Version     int         `gorm:"not null;default:1"                       json:"version"`
	IsLatest    bool        `gorm:"not null;default:true;index"              json:"is_latest"`

	// All values in centimeters. Zero means not taken; the garment type
	// decides which fields are mandatory.
	Chest    float64 `json:"chest"`
	Waist    float64 `json:"waist"`
	Hip      float64 `json:"hip"`
	Shoulder float64 `json:"shoulder"`
	Sleeve   float64 `json:"sleeve"`
	Neck     float64 `json:"neck"`
	Inseam   float64 `json:"inseam"`
	Length   float64 `json:"length"`

	Notes       string    `gorm:"size:500" json:"notes"`
	TakenByID   uint      `json:"taken_by_id"`
	Customer    *Customer `json:"customer,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
