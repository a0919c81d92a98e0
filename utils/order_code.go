// utils/order_code.go
package utils

import (
	"fmt"
	"time"
)

func GenOrderCode(seq int64, t time.Time) string {
	return fmt.Sprintf("ORD-%d-%06d", t.Year(), seq)
}

func GenPurchaseCode(seq int64, t time.Time) string {
	return fmt.Sprintf("PO-%d-%06d", t.Year(), seq)
}

func GenPayslipCode(employeeID uint, month, year int) string {
	return fmt.Sprintf("PAY-%d%02d-%04d", year, month, employeeID)
}
