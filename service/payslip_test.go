package service

import (
	"testing"

	"tailorshop-backend/models"

	"github.com/stretchr/testify/require"
)

func TestPayslipPDF(t *testing.T) {
	t.Setenv("SHOP_NAME", "Stitch & Co")
	t.Setenv("SHOP_ADDRESS", "12 Market Lane")

	rec := models.PayrollRecord{
		PayslipNo:  "PAY-202608-0001",
		Month:      8,
		Year:       2026,
		Basic:      1200,
		Allowances: 150,
		Overtime:   80.5,
		Deductions: 100,
		NetPay:     1330.5,
	}
	emp := models.Employee{Name: "Ravi", Skill: "Master tailor", Phone: "+555"}

	data, err := PayslipPDF(rec, emp)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	require.Equal(t, "%PDF", string(data[:4]))
}

func TestComputedNet(t *testing.T) {
	rec := models.PayrollRecord{Basic: 1000, Allowances: 50, Overtime: 25, Deductions: 75}
	require.Equal(t, 1000.0, rec.ComputedNet())
}
