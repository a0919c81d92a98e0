package controllers

import (
	"net/http"
	"time"

	"tailorshop-backend/config"
	"tailorshop-backend/models"
	"tailorshop-backend/utils"

	"github.com/gin-gonic/gin"
)

type menuItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// Menu visibility per role; the frontend renders exactly what it gets.
var roleMenus = map[models.Role][]menuItem{
	models.RoleAdmin: {
		{Label: "Dashboard", Path: "/"},
		{Label: "Customers", Path: "/customers"},
		{Label: "Orders", Path: "/orders"},
		{Label: "Tasks", Path: "/tasks"},
		{Label: "Fabrics", Path: "/fabrics"},
		{Label: "Suppliers", Path: "/suppliers"},
		{Label: "Purchasing", Path: "/purchase-orders"},
		{Label: "Employees", Path: "/employees"},
		{Label: "Payroll", Path: "/payroll"},
		{Label: "Messages", Path: "/messages"},
		{Label: "Documents", Path: "/documents"},
		{Label: "Reports", Path: "/reports"},
		{Label: "Settings", Path: "/settings"},
	},
	models.RoleManager: {
		{Label: "Dashboard", Path: "/"},
		{Label: "Customers", Path: "/customers"},
		{Label: "Orders", Path: "/orders"},
		{Label: "Tasks", Path: "/tasks"},
		{Label: "Fabrics", Path: "/fabrics"},
		{Label: "Purchasing", Path: "/purchase-orders"},
		{Label: "Messages", Path: "/messages"},
		{Label: "Reports", Path: "/reports"},
	},
	models.RoleTailor: {
		{Label: "Dashboard", Path: "/"},
		{Label: "Orders", Path: "/orders"},
		{Label: "Tasks", Path: "/tasks"},
		{Label: "Measurements", Path: "/measurements"},
	},
	models.RoleCashier: {
		{Label: "Dashboard", Path: "/"},
		{Label: "Customers", Path: "/customers"},
		{Label: "Orders", Path: "/orders"},
		{Label: "Payroll", Path: "/payroll"},
	},
}

// GET /dashboard — role-scoped menu plus headline counters.
func Dashboard(c *gin.Context) {
	roleVal, _ := c.Get("role")
	role := models.Role(roleVal.(string))

	menu, ok := roleMenus[role]
	if !ok {
		menu = roleMenus[models.RoleTailor]
	}

	byStatus := map[string]int64{}
	type statusCount struct {
		Status string
		Count  int64
	}
	var counts []statusCount
	config.DB.Model(&models.Order{}).
		Select("status, COUNT(id) AS count").
		Group("status").
		Scan(&counts)
	for _, sc := range counts {
		byStatus[sc.Status] = sc.Count
	}

	var pendingTasks, lowStock, failedMessages, pendingApprovals int64
	config.DB.Model(&models.Task{}).
		Where("status IN ?", []models.TaskStatus{models.TaskPending, models.TaskInProgress}).
		Count(&pendingTasks)
	config.DB.Model(&models.Fabric{}).
		Where("stock_qty < reorder_level AND is_active = ?", true).
		Count(&lowStock)
	config.DB.Model(&models.MessageLog{}).
		Where("status = ?", models.MessageFailed).
		Count(&failedMessages)
	config.DB.Model(&models.Document{}).
		Where("requires_approval = ?", true).
		Count(&pendingApprovals)

	utils.Success(c, "ok", gin.H{
		"menu": menu,
		"counters": gin.H{
			"orders_by_status":  byStatus,
			"pending_tasks":     pendingTasks,
			"low_stock_fabrics": lowStock,
			"failed_messages":   failedMessages,
			"pending_approvals": pendingApprovals,
		},
	})
}

// GET /health — liveness probe; also refreshes the heartbeat rows.
func Health(c *gin.Context) {
	dbStatus := "UP"
	detail := ""
	sqlDB, err := config.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		dbStatus = "DOWN"
		detail = err.Error()
	}

	now := time.Now()
	var row models.SystemHealth
	if err := config.DB.Where("component = ?", "database").First(&row).Error; err == nil {
		row.Status = dbStatus
		row.Detail = detail
		row.CheckedAt = now
		config.DB.Save(&row)
	} else {
		config.DB.Create(&models.SystemHealth{
			Component: "database",
			Status:    dbStatus,
			Detail:    detail,
			CheckedAt: now,
		})
	}

	status := http.StatusOK
	if dbStatus != "UP" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"status": dbStatus, "checked_at": now})
}
