package models

import "time"

type Employee struct {
	ID         uint      `gorm:"primaryKey"          json:"id"`
	Name       string    `gorm:"size:180;not null"   json:"name"`
	Phone      string    `gorm:"size:60"             json:"phone"`
	Skill      string    `gorm:"size:120"            json:"skill"` // cutting, stitching, finishing...
	BaseSalary float64   `gorm:"default:0"           json:"base_salary"`
	Allowances float64   `gorm:"default:0"           json:"allowances"`
	AvatarURL  string    `gorm:"size:255"            json:"avatar_url"`
	JoinedAt   time.Time `json:"joined_at"`
	IsActive   bool      `gorm:"default:true;index"  json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "PRESENT"
	AttendanceAbsent  AttendanceStatus = "ABSENT"
	AttendanceHalfDay AttendanceStatus = "HALF_DAY"
)

type Attendance struct {
	ID         uint             `gorm:"primaryKey"                         json:"id"`
	EmployeeID uint             `gorm:"not null;index:idx_att_emp_date"    json:"employee_id"`
	Date       time.Time        `gorm:"not null;index:idx_att_emp_date"    json:"date"`
	Status     AttendanceStatus `gorm:"size:20;default:PRESENT"            json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}
