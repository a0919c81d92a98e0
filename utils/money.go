package utils

import "math"

// Derived money fields (total = qty * unit price) are accepted when they
// match within a cent; floating point noise must not reject valid input,
// but a discrepancy of a full cent or more must.
const MoneyTolerance = 0.01

func MoneyEqual(got, want float64) bool {
	return math.Abs(got-want) < MoneyTolerance
}
