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

func CreateTemplate(c *gin.Context) {
	var input struct {
		Name      string         `json:"name" binding:"required"`
		Channel   models.Channel `json:"channel" binding:"required"`
		Subject   string         `json:"subject"`
		Body      string         `json:"body" binding:"required"`
		Variables string         `json:"variables"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}
	if !input.Channel.Valid() {
		utils.Error(c, http.StatusBadRequest, "unknown channel", nil)
		return
	}

	tpl := models.MessageTemplate{
		Name:      input.Name,
		Channel:   input.Channel,
		Subject:   input.Subject,
		Body:      input.Body,
		Variables: input.Variables,
		IsActive:  true,
	}
	if err := config.DB.Create(&tpl).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not create template", err)
		return
	}
	utils.Success(c, "template created", tpl)
}

func GetAllTemplates(c *gin.Context) {
	q := config.DB.Model(&models.MessageTemplate{})
	if ch := c.Query("channel"); ch != "" {
		q = q.Where("channel = ?", ch)
	}

	var templates []models.MessageTemplate
	if err := q.Order("id").Find(&templates).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "query failed", err)
		return
	}
	utils.Success(c, "ok", templates)
}

func UpdateTemplate(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}

	var tpl models.MessageTemplate
	if err := config.DB.First(&tpl, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "template not found", nil)
		return
	}

	var input struct {
		Subject   *string `json:"subject"`
		Body      *string `json:"body"`
		Variables *string `json:"variables"`
		IsActive  *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	if input.Subject != nil {
		tpl.Subject = *input.Subject
	}
	if input.Body != nil {
		tpl.Body = *input.Body
	}
	if input.Variables != nil {
		tpl.Variables = *input.Variables
	}
	if input.IsActive != nil {
		tpl.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&tpl).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not update template", err)
		return
	}
	utils.Success(c, "template updated", tpl)
}

func DeleteTemplate(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	if err := config.DB.Delete(&models.MessageTemplate{}, id).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not delete template", err)
		return
	}
	utils.Success(c, "template deleted", nil)
}

// POST /messages/send
func SendMessage(c *gin.Context) {
	var input struct {
		TemplateID   uint              `json:"template_id" binding:"required"`
		CustomerID   uint              `json:"customer_id" binding:"required"`
		Vars         map[string]string `json:"vars"`
		ScheduledFor *time.Time        `json:"scheduled_for"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	svc := service.NewMessagingService(config.DB)

	if input.ScheduledFor != nil && input.ScheduledFor.After(time.Now()) {
		logID, err := svc.Schedule(c.Request.Context(), input.TemplateID, input.CustomerID, input.Vars, *input.ScheduledFor)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "could not schedule message", err)
			return
		}
		utils.Success(c, "message scheduled", gin.H{"log_id": logID})
		return
	}

	res, err := svc.SendToCustomer(c.Request.Context(), input.TemplateID, input.CustomerID, input.Vars)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "could not send message", err)
		return
	}
	utils.Success(c, "message processed", res)
}

// POST /messages/bulk-send
func BulkSendMessages(c *gin.Context) {
	var input struct {
		TemplateID  uint              `json:"template_id" binding:"required"`
		CustomerIDs []uint            `json:"customer_ids" binding:"required,min=1"`
		Vars        map[string]string `json:"vars"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	svc := service.NewMessagingService(config.DB)
	res, err := svc.BulkSend(c.Request.Context(), input.TemplateID, input.CustomerIDs, input.Vars)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "bulk send failed", err)
		return
	}
	utils.Success(c, "bulk send finished", res)
}

// POST /messages/scan — manual re-attempt of due PENDING rows.
func ScanPendingMessages(c *gin.Context) {
	svc := service.NewMessagingService(config.DB)
	res, err := svc.ScanPending(c.Request.Context())
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "scan failed", err)
		return
	}
	utils.Success(c, "scan finished", res)
}

// GET /messages/logs?customer_id=&status=
func GetMessageLogs(c *gin.Context) {
	q := config.DB.Model(&models.MessageLog{})
	if cid := c.Query("customer_id"); cid != "" {
		q = q.Where("customer_id = ?", cid)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var logs []models.MessageLog
	if err := q.Order("id DESC").Limit(200).Find(&logs).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "query failed", err)
		return
	}
	utils.Success(c, "ok", logs)
}

func ListProviderConfigs(c *gin.Context) {
	var configs []models.ProviderConfig
	if err := config.DB.Order("id").Find(&configs).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "query failed", err)
		return
	}
	utils.Success(c, "ok", configs)
}

func UpdateProviderConfig(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}

	var cfg models.ProviderConfig
	if err := config.DB.First(&cfg, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "provider config not found", nil)
		return
	}

	var input struct {
		AccountID *string `json:"account_id"`
		Sender    *string `json:"sender"`
		SecretEnv *string `json:"secret_env"`
		BaseURL   *string `json:"base_url"`
		IsActive  *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	if input.AccountID != nil {
		cfg.AccountID = *input.AccountID
	}
	if input.Sender != nil {
		cfg.Sender = *input.Sender
	}
	if input.SecretEnv != nil {
		cfg.SecretEnv = *input.SecretEnv
	}
	if input.BaseURL != nil {
		cfg.BaseURL = *input.BaseURL
	}
	if input.IsActive != nil {
		cfg.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&cfg).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not update provider config", err)
		return
	}
	utils.Success(c, "provider config updated", cfg)
}
