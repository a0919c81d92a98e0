package routes

import (
	"tailorshop-backend/controllers"
	"tailorshop-backend/middlewares"
	"tailorshop-backend/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {

	r.GET("/api/health", controllers.Health)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", controllers.Login)

			authed := auth.Group("/", middlewares.AuthMiddleware())
			authed.GET("/profile", controllers.Profile)
			authed.PUT("/profile", controllers.UpdateProfile)
			authed.PUT("/profile/password", controllers.ChangePassword)
		}

		// Everything below requires a token.
		app := api.Group("/", middlewares.AuthMiddleware())

		app.GET("/dashboard", controllers.Dashboard)

		// Staff administration is admin-only.
		admin := app.Group("/admin", middlewares.RequireRole(models.RoleAdmin))
		{
			admin.GET("/users", controllers.ListUsers)
			admin.POST("/users", controllers.CreateUser)
			admin.PUT("/users/:userID/permissions", controllers.SetUserPermissions)
			admin.GET("/permissions", controllers.ListPermissions)
			admin.GET("/providers", controllers.ListProviderConfigs)
			admin.PUT("/providers/:id", controllers.UpdateProviderConfig)
		}

		customers := app.Group("/customers", middlewares.RequirePerm("MANAGE_CUSTOMERS"))
		{
			customers.GET("/", controllers.GetAllCustomers)
			customers.GET("/:id", controllers.GetCustomerByID)
			customers.POST("/", controllers.CreateCustomer)
			customers.PUT("/:id", controllers.UpdateCustomer)
			customers.DELETE("/:id", controllers.DeleteCustomer)
		}

		measurements := app.Group("/measurements", middlewares.RequirePerm("MANAGE_MEASUREMENTS"))
		{
			measurements.GET("/", controllers.GetAllMeasurements)
			measurements.GET("/:id", controllers.GetMeasurementByID)
			measurements.POST("/", controllers.CreateMeasurement)
			measurements.PUT("/:id", controllers.UpdateMeasurement)
			measurements.DELETE("/:id", controllers.DeleteMeasurement)
		}

		orders := app.Group("/orders", middlewares.RequirePerm("MANAGE_ORDERS"))
		{
			orders.GET("/", controllers.GetAllOrders)
			orders.GET("/:id", controllers.GetOrderByID)
			orders.POST("/", controllers.CreateOrder)
			orders.PUT("/:id", controllers.UpdateOrder)
			orders.PATCH("/:id/status", controllers.UpdateOrderStatus)
			orders.DELETE("/:id", controllers.DeleteOrder)
		}

		tasks := app.Group("/tasks", middlewares.RequirePerm("MANAGE_TASKS"))
		{
			tasks.GET("/", controllers.GetAllTasks)
			tasks.GET("/:id", controllers.GetTaskByID)
			tasks.POST("/", controllers.CreateTask)
			tasks.PUT("/:id", controllers.UpdateTask)
			tasks.DELETE("/:id", controllers.DeleteTask)
			tasks.POST("/mark-overdue", controllers.MarkOverdueTasks)
		}

		fabrics := app.Group("/fabrics", middlewares.RequirePerm("MANAGE_FABRICS"))
		{
			fabrics.GET("/", controllers.GetAllFabrics)
			fabrics.GET("/:id", controllers.GetFabricByID)
			fabrics.POST("/", controllers.CreateFabric)
			fabrics.PUT("/:id", controllers.UpdateFabric)
			fabrics.DELETE("/:id", controllers.DeleteFabric)
		}

		suppliers := app.Group("/suppliers", middlewares.RequirePerm("MANAGE_SUPPLIERS"))
		{
			suppliers.GET("/", controllers.GetAllSuppliers)
			suppliers.GET("/:id", controllers.GetSupplierByID)
			suppliers.POST("/", controllers.CreateSupplier)
			suppliers.PUT("/:id", controllers.UpdateSupplier)
			suppliers.DELETE("/:id", controllers.DeleteSupplier)
		}

		purchases := app.Group("/purchase-orders", middlewares.RequirePerm("MANAGE_PURCHASES"))
		{
			purchases.GET("/", controllers.GetAllPurchaseOrders)
			purchases.GET("/:id", controllers.GetPurchaseOrderByID)
			purchases.POST("/", controllers.CreatePurchaseOrder)
			purchases.PATCH("/:id/status", controllers.UpdatePurchaseOrderStatus)
			purchases.DELETE("/:id", controllers.DeletePurchaseOrder)
		}

		employees := app.Group("/employees", middlewares.RequirePerm("MANAGE_EMPLOYEES"))
		{
			employees.GET("/", controllers.GetAllEmployees)
			employees.GET("/:id", controllers.GetEmployeeByID)
			employees.POST("/", controllers.CreateEmployee)
			employees.PUT("/:id", controllers.UpdateEmployee)
			employees.DELETE("/:id", controllers.DeleteEmployee)
			employees.POST("/attendance", controllers.RecordAttendance)
			employees.GET("/:id/attendance", controllers.GetAttendance)
		}

		materials := app.Group("/material-usage", middlewares.RequirePerm("MANAGE_MATERIALS"))
		{
			materials.GET("/", controllers.GetAllMaterialUsage)
			materials.GET("/:id", controllers.GetMaterialUsageByID)
			materials.POST("/", controllers.CreateMaterialUsage)
			materials.DELETE("/:id", controllers.DeleteMaterialUsage)
		}

		waste := app.Group("/waste", middlewares.RequirePerm("MANAGE_MATERIALS"))
		{
			waste.GET("/", controllers.GetAllWaste)
			waste.POST("/", controllers.CreateWaste)
			waste.DELETE("/:id", controllers.DeleteWaste)
		}

		templates := app.Group("/templates", middlewares.RequirePerm("MANAGE_TEMPLATES"))
		{
			templates.GET("/", controllers.GetAllTemplates)
			templates.POST("/", controllers.CreateTemplate)
			templates.PUT("/:id", controllers.UpdateTemplate)
			templates.DELETE("/:id", controllers.DeleteTemplate)
		}

		messages := app.Group("/messages", middlewares.RequirePerm("SEND_MESSAGES"))
		{
			messages.POST("/send", controllers.SendMessage)
			messages.POST("/bulk-send", controllers.BulkSendMessages)
			messages.POST("/scan", controllers.ScanPendingMessages)
			messages.GET("/logs", controllers.GetMessageLogs)
		}

		documents := app.Group("/documents", middlewares.RequirePerm("MANAGE_DOCUMENTS"))
		{
			documents.GET("/", controllers.GetAllDocuments)
			documents.GET("/:id", controllers.GetDocumentByID)
			documents.POST("/", controllers.CreateDocument)
			documents.POST("/:id/versions", controllers.AddDocumentVersion)
			documents.POST("/:id/approvals", middlewares.RequirePerm("APPROVE_DOCUMENTS"), controllers.DecideDocument)
			documents.DELETE("/:id", controllers.DeleteDocument)
		}

		payroll := app.Group("/payroll", middlewares.RequirePerm("MANAGE_PAYROLL"))
		{
			payroll.GET("/", controllers.GetAllPayroll)
			payroll.GET("/:id", controllers.GetPayrollByID)
			payroll.POST("/", controllers.CreatePayroll)
			payroll.POST("/:id/pay", controllers.MarkPayrollPaid)
			payroll.DELETE("/:id", controllers.DeletePayroll)
			payroll.GET("/:id/payslip.pdf", controllers.PayslipPDF)
			payroll.GET("/:id/payslip", controllers.PayslipHTML)
		}

		events := app.Group("/events", middlewares.RequirePerm("MANAGE_EVENTS"))
		{
			events.GET("/", controllers.GetAllEvents)
			events.POST("/", controllers.CreateEvent)
			events.PUT("/:id", controllers.UpdateEvent)
			events.DELETE("/:id", controllers.DeleteEvent)
		}

		reports := app.Group("/reports", middlewares.RequirePerm("REPORT_VIEW"))
		{
			reports.GET("/costs/orders/:id", controllers.ReportOrderCosts)
			reports.GET("/costs/categories", controllers.ReportCategoryCosts)
			reports.GET("/costs/monthly", controllers.ReportMonthlyCosts)
			reports.GET("/waste", controllers.ReportWaste)
			reports.GET("/export/usage.xlsx", controllers.ExportUsageXLSX)
		}
	}
}
