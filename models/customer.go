package models

import "time"

type Customer struct {
	ID            uint       `gorm:"primaryKey"            json:"id"`
	Name          string     `gorm:"size:180;not null"     json:"name"`
	Phone         string     `gorm:"uniqueIndex;size:60"   json:"phone"`
	Email         string     `gorm:"size:180"              json:"email"`
	Address       string     `gorm:"size:255"              json:"address"`
	Preferences   string     `gorm:"size:500"              json:"preferences"`
	LoyaltyPoints int        `gorm:"default:0"             json:"loyalty_points"`
	IsActive      bool       `gorm:"default:true;index"    json:"is_active"`
	LastOrderAt   *time.Time `json:"last_order_at"`
	CreatedByID   uint       `json:"created_by_id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
