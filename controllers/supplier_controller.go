package controllers

import (
	"net/http"

	"tailorshop-backend/config"
	"tailorshop-backend/models"
	"tailorshop-backend/utils"

	"github.com/gin-gonic/gin"
)

func CreateSupplier(c *gin.Context) {
	var input struct {
		Name    string `json:"name" binding:"required"`
		Code    string `json:"code" binding:"required"`
		Contact string `json:"contact"`
		Phone   string `json:"phone"`
		Email   string `json:"email" binding:"omitempty,email"`
		Address string `json:"address"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	supplier := models.Supplier{
		Name:     input.Name,
		Code:     input.Code,
		Contact:  input.Contact,
		Phone:    input.Phone,
		Email:    input.Email,
		Address:  input.Address,
		IsActive: true,
	}
	if err := config.DB.Create(&supplier).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not create supplier", err)
		return
	}
	utils.Success(c, "supplier created", supplier)
}

func GetAllSuppliers(c *gin.Context) {
	var suppliers []models.Supplier
	if err := config.DB.Order("id DESC").Find(&suppliers).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "query failed", err)
		return
	}
	utils.Success(c, "ok", suppliers)
}

func GetSupplierByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}

	var supplier models.Supplier
	if err := config.DB.First(&supplier, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "supplier not found", nil)
		return
	}
	utils.Success(c, "ok", supplier)
}

func UpdateSupplier(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}

	var supplier models.Supplier
	if err := config.DB.First(&supplier, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "supplier not found", nil)
		return
	}

	var input struct {
		Name     *string `json:"name"`
		Contact  *string `json:"contact"`
		Phone    *string `json:"phone"`
		Email    *string `json:"email"`
		Address  *string `json:"address"`
		IsActive *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	if input.Name != nil {
		supplier.Name = *input.Name
	}
	if input.Contact != nil {
		supplier.Contact = *input.Contact
	}
	if input.Phone != nil {
		supplier.Phone = *input.Phone
	}
	if input.Email != nil {
		supplier.Email = *input.Email
	}
	if input.Address != nil {
		supplier.Address = *input.Address
	}
	if input.IsActive != nil {
		supplier.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&supplier).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not update supplier", err)
		return
	}
	utils.Success(c, "supplier updated", supplier)
}

func DeleteSupplier(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}

	if err := config.DB.Delete(&models.Supplier{}, id).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not delete supplier", err)
		return
	}
	utils.Success(c, "supplier deleted", nil)
}
