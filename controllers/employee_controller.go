package controllers

import (
	"net/http"
	"time"

	"tailorshop-backend/config"
	"tailorshop-backend/models"
	"tailorshop-backend/utils"

	"github.com/gin-gonic/gin"
)

func CreateEmployee(c *gin.Context) {
	var input struct {
		Name       string     `json:"name" binding:"required"`
		Phone      string     `json:"phone"`
		Skill      string     `json:"skill"`
		BaseSalary float64    `json:"base_salary" binding:"gte=0"`
		Allowances float64    `json:"allowances" binding:"gte=0"`
		JoinedAt   *time.Time `json:"joined_at"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	joined := time.Now()
	if input.JoinedAt != nil {
		joined = *input.JoinedAt
	}

	employee := models.Employee{
		Name:       input.Name,
		Phone:      input.Phone,
		Skill:      input.Skill,
		BaseSalary: input.BaseSalary,
		Allowances: input.Allowances,
		AvatarURL:  utils.DefaultAvatar(input.Name),
		JoinedAt:   joined,
		IsActive:   true,
	}
	if err := config.DB.Create(&employee).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not create employee", err)
		return
	}
	utils.Success(c, "employee created", employee)
}

func GetAllEmployees(c *gin.Context) {
	q := config.DB.Model(&models.Employee{})
	if active := c.Query("active"); active != "" {
		q = q.Where("is_active = ?", active == "true")
	}
	if skill := c.Query("skill"); skill != "" {
		q = q.Where("skill = ?", skill)
	}

	var employees []models.Employee
	if err := q.Order("id DESC").Find(&employees).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "query failed", err)
		return
	}
	utils.Success(c, "ok", employees)
}

func GetEmployeeByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}

	var employee models.Employee
	if err := config.DB.First(&employee, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "employee not found", nil)
		return
	}
	utils.Success(c, "ok", employee)
}

func UpdateEmployee(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}

	var employee models.Employee
	if err := config.DB.First(&employee, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "employee not found", nil)
		return
	}

	var input struct {
		Name       *string  `json:"name"`
		Phone      *string  `json:"phone"`
		Skill      *string  `json:"skill"`
		BaseSalary *float64 `json:"base_salary"`
		Allowances *float64 `json:"allowances"`
		AvatarURL  *string  `json:"avatar_url"`
		IsActive   *bool    `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	if input.Name != nil {
		employee.Name = *input.Name
	}
	if input.Phone != nil {
		employee.Phone = *input.Phone
	}
	if input.Skill != nil {
		employee.Skill = *input.Skill
	}
	if input.BaseSalary != nil {
		employee.BaseSalary = *input.BaseSalary
	}
	if input.Allowances != nil {
		employee.Allowances = *input.Allowances
	}
	if input.AvatarURL != nil {
		employee.AvatarURL = utils.CloudinaryThumb256(*input.AvatarURL)
	}
	if input.IsActive != nil {
		employee.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&employee).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not update employee", err)
		return
	}
	utils.Success(c, "employee updated", employee)
}

func DeleteEmployee(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}

	var employee models.Employee
	if err := config.DB.First(&employee, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "employee not found", nil)
		return
	}
	employee.IsActive = false
	if err := config.DB.Save(&employee).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not deactivate employee", err)
		return
	}
	utils.Success(c, "employee deactivated", employee)
}

func RecordAttendance(c *gin.Context) {
	var input struct {
		EmployeeID uint                    `json:"employee_id" binding:"required"`
		Date       time.Time               `json:"date" binding:"required"`
		Status     models.AttendanceStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}
	switch input.Status {
	case models.AttendancePresent, models.AttendanceAbsent, models.AttendanceHalfDay:
	default:
		utils.Error(c, http.StatusBadRequest, "unknown attendance status", nil)
		return
	}

	var employee models.Employee
	if err := config.DB.First(&employee, input.EmployeeID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "employee not found", nil)
		return
	}

	// One row per employee per day; re-recording overwrites.
	day := input.Date.Truncate(24 * time.Hour)
	var att models.Attendance
	err := config.DB.Where("employee_id = ? AND date = ?", input.EmployeeID, day).First(&att).Error
	if err == nil {
		att.Status = input.Status
		config.DB.Save(&att)
	} else {
		att = models.Attendance{EmployeeID: input.EmployeeID, Date: day, Status: input.Status}
		if err := config.DB.Create(&att).Error; err != nil {
			utils.Error(c, http.StatusInternalServerError, "could not record attendance", err)
			return
		}
	}
	utils.Success(c, "attendance recorded", att)
}

// GET /employees/:id/attendance?month=&year=
func GetAttendance(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}

	q := config.DB.Model(&models.Attendance{}).Where("employee_id = ?", id)
	if month := getInt(c, "month", 0); month > 0 {
		year := getInt(c, "year", time.Now().Year())
		from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		q = q.Where("date >= ? AND date < ?", from, from.AddDate(0, 1, 0))
	}

	var rows []models.Attendance
	if err := q.Order("date").Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "query failed", err)
		return
	}
	utils.Success(c, "ok", rows)
}
