package models

import "time"

type EventType string

const (
	EventAppointment EventType = "APPOINTMENT"
	EventFitting     EventType = "FITTING"
	EventDelivery    EventType = "DELIVERY"
	EventOther       EventType = "OTHER"
)

type Event struct {
	ID         uint      `gorm:"primaryKey"          json:"id"`
	Title      string    `gorm:"size:255;not null"   json:"title"`
	Type       EventType `gorm:"size:30;default:OTHER" json:"type"`
	CustomerID *uint     `gorm:"index"               json:"customer_id"`
	OrderID    *uint     `gorm:"index"               json:"order_id"`
	StartsAt   time.Time `gorm:"index"               json:"starts_at"`
	Notes      string    `gorm:"size:500"            json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Heartbeat rows upserted by the health endpoint, one per component.
type SystemHealth struct {
	ID        uint      `gorm:"primaryKey"           json:"id"`
	Component string    `gorm:"uniqueIndex;size:60"  json:"component"`
	Status    string    `gorm:"size:20"              json:"status"` // UP / DOWN
	Detail    string    `gorm:"size:255"             json:"detail"`
	CheckedAt time.Time `json:"checked_at"`
}
