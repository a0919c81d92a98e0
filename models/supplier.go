package models

import "time"

type Supplier struct {
	ID        uint      `gorm:"primaryKey"          json:"id"`
	Name      string    `gorm:"size:180;not null"   json:"name"`
	Code      string    `gorm:"uniqueIndex;size:60" json:"code"`
	Contact   string    `gorm:"size:180"            json:"contact"`
	Phone     string    `gorm:"size:60"             json:"phone"`
	Email     string    `gorm:"size:180"            json:"email"`
	Address   string    `gorm:"size:255"            json:"address"`
	IsActive  bool      `gorm:"default:true"        json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
