package models

import "time"

type TaskStatus string

const (
	TaskPending    TaskStatus = "PENDING"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskCompleted  TaskStatus = "COMPLETED"
	TaskOverdue    TaskStatus = "OVERDUE"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted, TaskOverdue:
		return true
	}
	return false
}

// Task tracks per-assignment progress against a production stage. It
// references the order but its status is independent of Order.Status;
// nothing keeps the two in sync.
type Task struct {
	ID          uint        `gorm:"primaryKey"              json:"id"`
	OrderID     uint        `gorm:"not null;index"          json:"order_id"`
	Order       *Order      `json:"order,omitempty"`
	Stage       OrderStatus `gorm:"size:30;not null"        json:"stage"` // production stage this task covers
	EmployeeID  uint        `gorm:"not null;index"          json:"employee_id"`
	Employee    *Employee   `json:"employee,omitempty"`
	Status      TaskStatus  `gorm:"size:30;default:PENDING;index" json:"status"`
	DueDate     *time.Time  `json:"due_date"`
	CompletedAt *time.Time  `json:"completed_at"`
	Notes       string      `gorm:"size:500"                json:"notes"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
