package controllers

import (
	"net/http"
	"strconv"

	"tailorshop-backend/config"
	"tailorshop-backend/middlewares"
	"tailorshop-backend/models"
	"tailorshop-backend/utils"

	"github.com/gin-gonic/gin"
)

func CreateCustomer(c *gin.Context) {
	var input struct {
		Name        string `json:"name" binding:"required"`
		Phone       string `json:"phone" binding:"required"`
		Email       string `json:"email" binding:"omitempty,email"`
		Address     string `json:"address"`
		Preferences string `json:"preferences"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	customer := models.Customer{
		Name:        input.Name,
		Phone:       input.Phone,
		Email:       input.Email,
		Address:     input.Address,
		Preferences: input.Preferences,
		IsActive:    true,
		CreatedByID: middlewares.CurrentUserID(c),
	}
	if err := config.DB.Create(&customer).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not create customer", err)
		return
	}
	utils.Success(c, "customer created", customer)
}

// GET /customers?q=&active=&page=&page_size=
func GetAllCustomers(c *gin.Context) {
	q := config.DB.Model(&models.Customer{})

	if search := c.Query("q"); search != "" {
		like := "%" + search + "%"
		q = q.Where("name LIKE ? OR phone LIKE ?", like, like)
	}
	if active := c.Query("active"); active != "" {
		q = q.Where("is_active = ?", active == "true")
	}

	page := getInt(c, "page", 1)
	size := getInt(c, "page_size", 50)

	var total int64
	q.Count(&total)

	var customers []models.Customer
	if err := q.Order("id DESC").Offset((page - 1) * size).Limit(size).Find(&customers).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "query failed", err)
		return
	}
	utils.Success(c, "ok", gin.H{"total": total, "items": customers})
}

func GetCustomerByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid id", err)
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "customer not found", nil)
		return
	}
	utils.Success(c, "ok", customer)
}

func UpdateCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid id", err)
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "customer not found", nil)
		return
	}

	var input struct {
		Name          *string `json:"name"`
		Phone         *string `json:"phone"`
		Email         *string `json:"email"`
		Address       *string `json:"address"`
		Preferences   *string `json:"preferences"`
		LoyaltyPoints *int    `json:"loyalty_points"`
		IsActive      *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if input.Email != nil {
		customer.Email = *input.Email
	}
	if input.Address != nil {
		customer.Address = *input.Address
	}
	if input.Preferences != nil {
		customer.Preferences = *input.Preferences
	}
	if input.LoyaltyPoints != nil {
		customer.LoyaltyPoints = *input.LoyaltyPoints
	}
	if input.IsActive != nil {
		customer.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&customer).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not update customer", err)
		return
	}
	utils.Success(c, "customer updated", customer)
}

// DeleteCustomer is a soft delete: the row stays, the active flag flips.
func DeleteCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid id", err)
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "customer not found", nil)
		return
	}

	customer.IsActive = false
	if err := config.DB.Save(&customer).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not deactivate customer", err)
		return
	}
	utils.Success(c, "customer deactivated", customer)
}
