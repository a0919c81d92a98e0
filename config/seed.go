package config

import (
	"log"
	"os"
	"time"

	"tailorshop-backend/models"
	"tailorshop-backend/utils"

	"golang.org/x/crypto/bcrypt"
)

func SeedPermissions() {
	codes := []models.Permission{
		{Code: "MANAGE_CUSTOMERS", Name: "Manage Customers"},
		{Code: "MANAGE_ORDERS", Name: "Manage Orders"},
		{Code: "MANAGE_MEASUREMENTS", Name: "Manage Measurements"},
		{Code: "MANAGE_FABRICS", Name: "Manage Fabrics"},
		{Code: "MANAGE_EMPLOYEES", Name: "Manage Employees"},
		{Code: "MANAGE_TASKS", Name: "Manage Tasks"},
		{Code: "MANAGE_SUPPLIERS", Name: "Manage Suppliers"},
		{Code: "MANAGE_PURCHASES", Name: "Manage Purchase Orders"},
		{Code: "MANAGE_MATERIALS", Name: "Record Material Usage & Waste"},
		{Code: "SEND_MESSAGES", Name: "Send Customer Messages"},
		{Code: "MANAGE_TEMPLATES", Name: "Manage Message Templates"},
		{Code: "MANAGE_DOCUMENTS", Name: "Manage Documents"},
		{Code: "APPROVE_DOCUMENTS", Name: "Approve Documents"},
		{Code: "MANAGE_PAYROLL", Name: "Manage Payroll"},
		{Code: "REPORT_VIEW", Name: "View Reports"},
		{Code: "MANAGE_EVENTS", Name: "Manage Calendar Events"},
	}
	for _, p := range codes {
		var cnt int64
		DB.Model(&models.Permission{}).Where("code = ?", p.Code).Count(&cnt)
		if cnt == 0 {
			DB.Create(&p)
		}
	}
}

func SeedMessageTemplates() {
	templates := []models.MessageTemplate{
		{
			Name:      "order-ready-sms",
			Channel:   models.ChannelSMS,
			Body:      "Hi {{customer_name}}, your order {{order_no}} is ready for pickup.",
			Variables: "customer_name,order_no",
			IsActive:  true,
		},
		{
			Name:      "fitting-reminder-whatsapp",
			Channel:   models.ChannelWhatsApp,
			Body:      "Hello {{customer_name}}! Reminder: your fitting is scheduled for {{fitting_date}}.",
			Variables: "customer_name,fitting_date",
			IsActive:  true,
		},
		{
			Name:      "invoice-email",
			Channel:   models.ChannelEmail,
			Subject:   "Your invoice from {{shop_name}}",
			Body:      "Dear {{customer_name}},\n\nPlease find attached the invoice for order {{order_no}}. Balance due: {{balance}}.\n\nThank you,\n{{shop_name}}",
			Variables: "customer_name,order_no,balance,shop_name",
			IsActive:  true,
		},
	}
	for _, t := range templates {
		var cnt int64
		DB.Model(&models.MessageTemplate{}).Where("name = ?", t.Name).Count(&cnt)
		if cnt == 0 {
			DB.Create(&t)
		}
	}
}

// Provider rows are seeded inactive; operators fill in account ids and
// flip is_active once the matching secret env var is set.
func SeedProviderConfigs() {
	providers := []models.ProviderConfig{
		{Channel: models.ChannelSMS, Provider: "TWILIO", SecretEnv: "TWILIO_AUTH_TOKEN"},
		{Channel: models.ChannelWhatsApp, Provider: "WHATSAPP_BUSINESS", SecretEnv: "WHATSAPP_ACCESS_TOKEN"},
		{Channel: models.ChannelEmail, Provider: "SENDGRID", SecretEnv: "SENDGRID_API_KEY"},
	}
	for _, p := range providers {
		var cnt int64
		DB.Model(&models.ProviderConfig{}).
			Where("channel = ? AND provider = ?", p.Channel, p.Provider).Count(&cnt)
		if cnt == 0 {
			DB.Create(&p)
		}
	}
}

func SeedAdmin() {
	var cnt int64
	DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&cnt)
	if cnt > 0 {
		return
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("seed admin: %v", err)
		return
	}

	admin := models.User{
		Username:     "admin",
		FullName:     "Shop Administrator",
		Role:         models.RoleAdmin,
		PasswordHash: string(hash),
		AvatarURL:    utils.DefaultAvatar("Shop Administrator"),
		IsActive:     true,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("seed admin: %v", err)
		return
	}

	// Admin gets every permission code.
	var perms []models.Permission
	DB.Find(&perms)
	for _, p := range perms {
		DB.Create(&models.UserPermission{
			UserID:       admin.ID,
			PermissionID: p.ID,
			GrantedAt:    time.Now(),
		})
	}
	log.Printf("seeded admin user %q", admin.Username)
}

// SeedDemo creates one employee and one customer so a fresh install has
// something to click through. Skipped once any row exists.
func SeedDemo() {
	var cnt int64
	DB.Model(&models.Employee{}).Count(&cnt)
	if cnt == 0 {
		DB.Create(&models.Employee{
			Name:       "Demo Tailor",
			Skill:      "stitching",
			BaseSalary: 1200,
			AvatarURL:  utils.DefaultAvatar("Demo Tailor"),
			JoinedAt:   time.Now(),
			IsActive:   true,
		})
	}

	DB.Model(&models.Customer{}).Count(&cnt)
	if cnt == 0 {
		DB.Create(&models.Customer{
			Name:     "Demo Customer",
			Phone:    "+10000000000",
			IsActive: true,
		})
	}
}

func SeedAll() {
	SeedPermissions()
	SeedMessageTemplates()
	SeedProviderConfigs()
	SeedAdmin()
	SeedDemo()
}
