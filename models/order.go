package models

import (
	"errors"
	"time"
)

type OrderStatus string

const (
	OrderReceived     OrderStatus = "RECEIVED"
	OrderCutting      OrderStatus = "CUTTING"
	OrderStitching    OrderStatus = "STITCHING"
	OrderQualityCheck OrderStatus = "QUALITY_CHECK"
	OrderPressing     OrderStatus = "PRESSING"
	OrderReady        OrderStatus = "READY"
	OrderDelivered    OrderStatus = "DELIVERED"
	OrderCancelled    OrderStatus = "CANCELLED"
)

type OrderPriority string

const (
	PriorityLow    OrderPriority = "LOW"
	PriorityNormal OrderPriority = "NORMAL"
	PriorityHigh   OrderPriority = "HIGH"
	PriorityUrgent OrderPriority = "URGENT"
)

var ErrInvalidStatusTransition = errors.New("invalid order status transition")

// Forward production chain; CANCELLED is reachable from every
// non-terminal state. DELIVERED and CANCELLED are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderReceived:     {OrderCutting, OrderCancelled},
	OrderCutting:      {OrderStitching, OrderCancelled},
	OrderStitching:    {OrderQualityCheck, OrderCancelled},
	OrderQualityCheck: {OrderPressing, OrderCancelled},
	OrderPressing:     {OrderReady, OrderCancelled},
	OrderReady:        {OrderDelivered, OrderCancelled},
	OrderDelivered:    {},
	OrderCancelled:    {},
}

func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

func (p OrderPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type Order struct {
	ID            uint          `gorm:"primaryKey"               json:"id"`
	OrderNo       string        `gorm:"uniqueIndex;size:30"      json:"order_no"`
	CustomerID    uint          `gorm:"not null;index"           json:"customer_id"`
	Customer      *Customer     `json:"customer,omitempty"`
	GarmentType   GarmentType   `gorm:"size:30;not null"         json:"garment_type"`
	MeasurementID *uint         `json:"measurement_id"`
	Measurement   *Measurement  `json:"measurement,omitempty"`
	FabricID      *uint         `json:"fabric_id"`
	Fabric        *Fabric       `json:"fabric,omitempty"`
	Status        OrderStatus   `gorm:"size:30;default:RECEIVED;index" json:"status"`
	Priority      OrderPriority `gorm:"size:20;default:NORMAL"   json:"priority"`
	Total         float64       `gorm:"default:0"                json:"total"`
	Deposit       float64       `gorm:"default:0"                json:"deposit"`
	Balance       float64       `gorm:"default:0"                json:"balance"` // total - deposit, recomputed on write
	DueDate       *time.Time    `json:"due_date"`
	DeliveredAt   *time.Time    `json:"delivered_at"`
	Notes         string        `gorm:"size:500"                 json:"notes"`
	CreatedByID   uint          `json:"created_by_id"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (o *Order) CanTransitionTo(next OrderStatus) bool {
	for _, s := range orderTransitions[o.Status] {
		if s == next {
			return true
		}
	}
	return false
}

// TransitionTo moves the order along the production chain. Illegal moves
// return ErrInvalidStatusTransition and leave the order untouched.
func (o *Order) TransitionTo(next OrderStatus) error {
	if !o.CanTransitionTo(next) {
		return ErrInvalidStatusTransition
	}
	o.Status = next
	if next == OrderDelivered {
		now := time.Now()
		o.DeliveredAt = &now
	}
	return nil
}

func (o *Order) RecalcBalance() {
	o.Balance = o.Total - o.Deposit
}
