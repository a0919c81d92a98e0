package models

import "time"

type PayrollStatus string

const (
	PayrollPending PayrollStatus = "PENDING"
	PayrollPaid    PayrollStatus = "PAID"
)

// NetPay must equal Basic + Allowances + Overtime - Deductions within the
// money tolerance; checked at write time, not stored-generated.
type PayrollRecord struct {
	ID         uint          `gorm:"primaryKey"                        json:"id"`
	PayslipNo  string        `gorm:"uniqueIndex;size:30"               json:"payslip_no"`
	EmployeeID uint          `gorm:"not null;index:idx_payroll_period" json:"employee_id"`
	Employee   *Employee     `json:"employee,omitempty"`
	Month      int           `gorm:"not null;index:idx_payroll_period" json:"month"`
	Year       int           `gorm:"not null;index:idx_payroll_period" json:"year"`
	Basic      float64       `gorm:"default:0"                         json:"basic"`
	Allowances float64       `gorm:"default:0"                         json:"allowances"`
	Overtime   float64       `gorm:"default:0"                         json:"overtime"`
	Deductions float64       `gorm:"default:0"                         json:"deductions"`
	NetPay     float64       `gorm:"default:0"                         json:"net_pay"`
	Status     PayrollStatus `gorm:"size:20;default:PENDING"           json:"status"`
	PaidAt     *time.Time    `json:"paid_at"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

func (p *PayrollRecord) ComputedNet() float64 {
	return p.Basic + p.Allowances + p.Overtime - p.Deductions
}
