package controllers

import (
	"net/http"
	"time"

	"tailorshop-backend/config"
	"tailorshop-backend/models"
	"tailorshop-backend/utils"

	"github.com/gin-gonic/gin"
)

func CreateTask(c *gin.Context) {
	var input struct {
		OrderID    uint               `json:"order_id" binding:"required"`
		Stage      models.OrderStatus `json:"stage" binding:"required"`
		EmployeeID uint               `json:"employee_id" binding:"required"`
		DueDate    *time.Time         `json:"due_date"`
		Notes      string             `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}
	if !input.Stage.Valid() || input.Stage.Terminal() {
		utils.Error(c, http.StatusBadRequest, "stage must be a production stage", nil)
		return
	}

	var order models.Order
	if err := config.DB.First(&order, input.OrderID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "order not found", nil)
		return
	}
	var employee models.Employee
	if err := config.DB.First(&employee, input.EmployeeID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "employee not found", nil)
		return
	}

	task := models.Task{
		OrderID:    input.OrderID,
		Stage:      input.Stage,
		EmployeeID: input.EmployeeID,
		Status:     models.TaskPending,
		DueDate:    input.DueDate,
		Notes:      input.Notes,
	}
	if err := config.DB.Create(&task).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not create task", err)
		return
	}
	utils.Success(c, "task created", task)
}

// GET /tasks?order_id=&employee_id=&status=
func GetAllTasks(c *gin.Context) {
	q := config.DB.Model(&models.Task{}).Preload("Employee")

	if oid := c.Query("order_id"); oid != "" {
		q = q.Where("order_id = ?", oid)
	}
	if eid := c.Query("employee_id"); eid != "" {
		q = q.Where("employee_id = ?", eid)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var tasks []models.Task
	if err := q.Order("id DESC").Find(&tasks).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "query failed", err)
		return
	}
	utils.Success(c, "ok", tasks)
}

func GetTaskByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}

	var task models.Task
	if err := config.DB.Preload("Employee").Preload("Order").First(&task, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "task not found", nil)
		return
	}
	utils.Success(c, "ok", task)
}

// UpdateTask accepts any valid task status; task progress is tracked
// independently of the owning order's stage.
func UpdateTask(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}

	var task models.Task
	if err := config.DB.First(&task, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "task not found", nil)
		return
	}

	var input struct {
		Status     *models.TaskStatus `json:"status"`
		EmployeeID *uint              `json:"employee_id"`
		DueDate    *time.Time         `json:"due_date"`
		Notes      *string            `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	if input.Status != nil {
		if !input.Status.Valid() {
			utils.Error(c, http.StatusBadRequest, "unknown status", nil)
			return
		}
		task.Status = *input.Status
		if task.Status == models.TaskCompleted && task.CompletedAt == nil {
			now := time.Now()
			task.CompletedAt = &now
		}
	}
	if input.EmployeeID != nil {
		task.EmployeeID = *input.EmployeeID
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	if input.Notes != nil {
		task.Notes = *input.Notes
	}

	if err := config.DB.Save(&task).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not update task", err)
		return
	}
	utils.Success(c, "task updated", task)
}

func DeleteTask(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	if err := config.DB.Delete(&models.Task{}, id).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not delete task", err)
		return
	}
	utils.Success(c, "task deleted", nil)
}

// MarkOverdueTasks flips PENDING/IN_PROGRESS tasks with a past due date
// to OVERDUE. Manually invoked, like the message scan.
func MarkOverdueTasks(c *gin.Context) {
	res := config.DB.Model(&models.Task{}).
		Where("status IN ? AND due_date IS NOT NULL AND due_date < ?",
			[]models.TaskStatus{models.TaskPending, models.TaskInProgress}, time.Now()).
		Update("status", models.TaskOverdue)
	if res.Error != nil {
		utils.Error(c, http.StatusInternalServerError, "scan failed", res.Error)
		return
	}
	utils.Success(c, "ok", gin.H{"marked": res.RowsAffected})
}
