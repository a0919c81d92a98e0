package service

import (
	"bytes"
	"fmt"
	"os"

	"tailorshop-backend/models"

	"github.com/jung-kurt/gofpdf"
)

// PayslipPDF renders the fixed payslip layout: company header, employee
// block, earnings and deductions tables, net-pay highlight.
func PayslipPDF(rec models.PayrollRecord, emp models.Employee) ([]byte, error) {
	shopName := os.Getenv("SHOP_NAME")
	if shopName == "" {
		shopName = "TailorShop"
	}
	shopAddress := os.Getenv("SHOP_ADDRESS")

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Company header
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, shopName, "", 1, "C", false, 0, "")
	if shopAddress != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, shopAddress, "", 1, "C", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 10, fmt.Sprintf("Payslip %s - %04d/%02d", rec.PayslipNo, rec.Year, rec.Month), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Employee block
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(40, 7, "Employee", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, emp.Name, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(40, 7, "Skill", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, emp.Skill, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(40, 7, "Phone", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, emp.Phone, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Earnings
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(0, 8, "Earnings", "1", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	payslipRow(pdf, "Basic salary", rec.Basic)
	payslipRow(pdf, "Allowances", rec.Allowances)
	payslipRow(pdf, "Overtime", rec.Overtime)
	pdf.Ln(2)

	// Deductions
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Deductions", "1", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	payslipRow(pdf, "Total deductions", rec.Deductions)
	pdf.Ln(4)

	// Net pay highlight
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetFillColor(210, 240, 210)
	pdf.CellFormat(120, 10, "NET PAY", "1", 0, "L", true, 0, "")
	pdf.CellFormat(0, 10, fmt.Sprintf("%.2f", rec.NetPay), "1", 1, "R", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func payslipRow(pdf *gofpdf.Fpdf, label string, amount float64) {
	pdf.CellFormat(120, 8, label, "1", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("%.2f", amount), "1", 1, "R", false, 0, "")
}
