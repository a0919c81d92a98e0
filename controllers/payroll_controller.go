package controllers

import (
	"net/http"
	"time"

	"tailorshop-backend/config"
	"tailorshop-backend/models"
	"tailorshop-backend/service"
	"tailorshop-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreatePayroll books one employee-month. net_pay must equal
// basic + allowances + overtime - deductions within the cent tolerance.
func CreatePayroll(c *gin.Context) {
	var input struct {
		EmployeeID uint    `json:"employee_id" binding:"required"`
		Month      int     `json:"month" binding:"required,min=1,max=12"`
		Year       int     `json:"year" binding:"required,min=2000"`
		Basic      float64 `json:"basic" binding:"gte=0"`
		Allowances float64 `json:"allowances" binding:"gte=0"`
		Overtime   float64 `json:"overtime" binding:"gte=0"`
		Deductions float64 `json:"deductions" binding:"gte=0"`
		NetPay     float64 `json:"net_pay" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	var employee models.Employee
	if err := config.DB.First(&employee, input.EmployeeID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "employee not found", nil)
		return
	}

	rec := models.PayrollRecord{
		PayslipNo:  utils.GenPayslipCode(input.EmployeeID, input.Month, input.Year),
		EmployeeID: input.EmployeeID,
		Month:      input.Month,
		Year:       input.Year,
		Basic:      input.Basic,
		Allowances: input.Allowances,
		Overtime:   input.Overtime,
		Deductions: input.Deductions,
		NetPay:     input.NetPay,
		Status:     models.PayrollPending,
	}
	if !utils.MoneyEqual(rec.NetPay, rec.ComputedNet()) {
		utils.Error(c, http.StatusBadRequest, "net_pay does not match earnings minus deductions", nil)
		return
	}

	var cnt int64
	config.DB.Model(&models.PayrollRecord{}).
		Where("employee_id = ? AND month = ? AND year = ?", input.EmployeeID, input.Month, input.Year).
		Count(&cnt)
	if cnt > 0 {
		utils.Error(c, http.StatusConflict, "payroll already exists for this period", nil)
		return
	}

	if err := config.DB.Create(&rec).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not create payroll record", err)
		return
	}
	utils.Success(c, "payroll created", rec)
}

// GET /payroll?employee_id=&month=&year=&status=
func GetAllPayroll(c *gin.Context) {
	q := config.DB.Model(&models.PayrollRecord{}).Preload("Employee")
	if eid := c.Query("employee_id"); eid != "" {
		q = q.Where("employee_id = ?", eid)
	}
	if m := getInt(c, "month", 0); m > 0 {
		q = q.Where("month = ?", m)
	}
	if y := getInt(c, "year", 0); y > 0 {
		q = q.Where("year = ?", y)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var records []models.PayrollRecord
	if err := q.Order("year DESC, month DESC").Find(&records).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "query failed", err)
		return
	}
	utils.Success(c, "ok", records)
}

func GetPayrollByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}

	var rec models.PayrollRecord
	if err := config.DB.Preload("Employee").First(&rec, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "payroll record not found", nil)
		return
	}
	utils.Success(c, "ok", rec)
}

func MarkPayrollPaid(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}

	var rec models.PayrollRecord
	if err := config.DB.First(&rec, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "payroll record not found", nil)
		return
	}

	now := time.Now()
	rec.Status = models.PayrollPaid
	rec.PaidAt = &now
	if err := config.DB.Save(&rec).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not update payroll record", err)
		return
	}
	utils.Success(c, "payroll marked paid", rec)
}

func DeletePayroll(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	if err := config.DB.Delete(&models.PayrollRecord{}, id).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not delete payroll record", err)
		return
	}
	utils.Success(c, "payroll deleted", nil)
}

// GET /payroll/:id/payslip.pdf
func PayslipPDF(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}

	var rec models.PayrollRecord
	if err := config.DB.First(&rec, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "payroll record not found", nil)
		return
	}
	var employee models.Employee
	if err := config.DB.First(&employee, rec.EmployeeID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "employee not found", nil)
		return
	}

	pdf, err := service.PayslipPDF(rec, employee)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not render payslip", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+rec.PayslipNo+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GET /payroll/:id/payslip — same layout as the PDF, server-rendered.
func PayslipHTML(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}

	var rec models.PayrollRecord
	if err := config.DB.First(&rec, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "payroll record not found", nil)
		return
	}
	var employee models.Employee
	if err := config.DB.First(&employee, rec.EmployeeID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "employee not found", nil)
		return
	}

	c.HTML(http.StatusOK, "payslip.html", gin.H{
		"Record":   rec,
		"Employee": employee,
	})
}
