package controllers

import (
	"errors"
	"net/http"

	"tailorshop-backend/config"
	"tailorshop-backend/middlewares"
	"tailorshop-backend/models"
	"tailorshop-backend/service"
	"tailorshop-backend/utils"

	"github.com/gin-gonic/gin"
)

func CreateDocument(c *gin.Context) {
	var input struct {
		Title            string `json:"title" binding:"required"`
		Category         string `json:"category"`
		CustomerID       *uint  `json:"customer_id"`
		OrderID          *uint  `json:"order_id"`
		RequiresApproval bool   `json:"requires_approval"`
		FileURL          string `json:"file_url"`
		Notes            string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	doc := models.Document{
		Title:            input.Title,
		Category:         input.Category,
		CustomerID:       input.CustomerID,
		OrderID:          input.OrderID,
		RequiresApproval: input.RequiresApproval,
		CreatedByID:      middlewares.CurrentUserID(c),
	}
	if err := config.DB.Create(&doc).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not create document", err)
		return
	}

	// First version is optional at creation time.
	if input.FileURL != "" {
		svc := service.NewDocumentService(config.DB)
		if _, err := svc.AddVersion(c.Request.Context(), doc.ID, input.FileURL, input.Notes, doc.CreatedByID); err != nil {
			utils.Error(c, http.StatusInternalServerError, "could not store initial version", err)
			return
		}
		config.DB.First(&doc, doc.ID)
	}
	utils.Success(c, "document created", doc)
}

func GetAllDocuments(c *gin.Context) {
	q := config.DB.Model(&models.Document{})
	if cat := c.Query("category"); cat != "" {
		q = q.Where("category = ?", cat)
	}
	if oid := c.Query("order_id"); oid != "" {
		q = q.Where("order_id = ?", oid)
	}
	if c.Query("pending_approval") == "true" {
		q = q.Where("requires_approval = ?", true)
	}

	var docs []models.Document
	if err := q.Order("id DESC").Find(&docs).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "query failed", err)
		return
	}
	utils.Success(c, "ok", docs)
}

func GetDocumentByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}

	var doc models.Document
	if err := config.DB.Preload("Versions").First(&doc, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "document not found", nil)
		return
	}

	var approvals []models.DocumentApproval
	config.DB.Where("document_id = ?", doc.ID).Order("id").Find(&approvals)

	utils.Success(c, "ok", gin.H{"document": doc, "approvals": approvals})
}

// POST /documents/:id/versions
func AddDocumentVersion(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}

	var input struct {
		FileURL string `json:"file_url" binding:"required"`
		Notes   string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	svc := service.NewDocumentService(config.DB)
	version, err := svc.AddVersion(c.Request.Context(), id, input.FileURL, input.Notes, middlewares.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			utils.Error(c, http.StatusNotFound, "document not found", nil)
			return
		}
		utils.Error(c, http.StatusInternalServerError, "could not add version", err)
		return
	}
	utils.Success(c, "version added", version)
}

// POST /documents/:id/approvals
func DecideDocument(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}

	var input struct {
		Decision models.DecisionStatus `json:"decision" binding:"required"`
		Comment  string                `json:"comment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	svc := service.NewDocumentService(config.DB)
	approval, err := svc.Decide(c.Request.Context(), id, input.Decision, middlewares.CurrentUserID(c), input.Comment)
	if err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			utils.Error(c, http.StatusNotFound, "document not found", nil)
			return
		}
		utils.Error(c, http.StatusBadRequest, "could not record decision", err)
		return
	}
	utils.Success(c, "decision recorded", approval)
}

func DeleteDocument(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}

	var doc models.Document
	if err := config.DB.First(&doc, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "document not found", nil)
		return
	}

	config.DB.Where("document_id = ?", doc.ID).Delete(&models.DocumentVersion{})
	config.DB.Where("document_id = ?", doc.ID).Delete(&models.DocumentApproval{})
	if err := config.DB.Delete(&doc).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not delete document", err)
		return
	}
	utils.Success(c, "document deleted", nil)
}
