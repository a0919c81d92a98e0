package controllers

import (
	"net/http"
	"strconv"
	"time"

	"tailorshop-backend/config"
	"tailorshop-backend/models"
	"tailorshop-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func Login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	var user models.User
	if err := config.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		utils.Error(c, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}
	if !user.IsActive {
		utils.Error(c, http.StatusUnauthorized, "account disabled", nil)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		utils.Error(c, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Username, string(user.Role))
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not issue token", err)
		return
	}

	now := time.Now()
	user.LastLoginAt = &now
	config.DB.Save(&user)

	utils.Success(c, "login ok", gin.H{"token": token, "user": user})
}

// CreateUser is admin-only: creates a staff account and optionally grants
// permission codes in one call.
func CreateUser(c *gin.Context) {
	var input struct {
		Username    string      `json:"username" binding:"required"`
		FullName    string      `json:"full_name" binding:"required"`
		Password    string      `json:"password" binding:"required,min=6"`
		Role        models.Role `json:"role"`
		Phone       string      `json:"phone"`
		Permissions []string    `json:"permissions"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}
	if input.Role == "" {
		input.Role = models.RoleTailor
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not hash password", err)
		return
	}

	user := models.User{
		Username:     input.Username,
		FullName:     input.FullName,
		Role:         input.Role,
		Phone:        input.Phone,
		PasswordHash: string(hash),
		AvatarURL:    utils.DefaultAvatar(input.FullName),
		IsActive:     true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not create user", err)
		return
	}

	if len(input.Permissions) > 0 {
		grantPermissions(user.ID, input.Permissions)
	}

	utils.Success(c, "user created", user)
}

func ListUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Order("id").Find(&users).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "query failed", err)
		return
	}
	utils.Success(c, "ok", users)
}

func Profile(c *gin.Context) {
	userID, _ := c.Get("user_id")
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "user not found", nil)
		return
	}
	utils.Success(c, "ok", user)
}

func UpdateProfile(c *gin.Context) {
	userID, _ := c.Get("user_id")
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "user not found", nil)
		return
	}

	var input struct {
		FullName  string `json:"full_name"`
		Phone     string `json:"phone"`
		AvatarURL string `json:"avatar_url"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.AvatarURL != "" {
		user.AvatarURL = utils.CloudinaryThumb256(input.AvatarURL)
	}
	if err := config.DB.Save(&user).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not update profile", err)
		return
	}
	utils.Success(c, "profile updated", user)
}

func ChangePassword(c *gin.Context) {
	userID, _ := c.Get("user_id")
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "user not found", nil)
		return
	}

	var input struct {
		OldPassword string `json:"old_password" binding:"required"`
		NewPassword string `json:"new_password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.OldPassword)); err != nil {
		utils.Error(c, http.StatusUnauthorized, "old password does not match", nil)
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not hash password", err)
		return
	}
	user.PasswordHash = string(hash)
	config.DB.Save(&user)

	utils.Success(c, "password changed", nil)
}

func ListPermissions(c *gin.Context) {
	var perms []models.Permission
	config.DB.Order("code").Find(&perms)
	utils.Success(c, "ok", perms)
}

func SetUserPermissions(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userID"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid user id", err)
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "user not found", nil)
		return
	}

	var input struct {
		Permissions []string `json:"permissions" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	// Replace the full grant set.
	config.DB.Where("user_id = ?", user.ID).Delete(&models.UserPermission{})
	grantPermissions(user.ID, input.Permissions)

	utils.Success(c, "permissions updated", nil)
}

func grantPermissions(userID uint, codes []string) {
	var perms []models.Permission
	config.DB.Where("code IN ?", codes).Find(&perms)
	for _, p := range perms {
		config.DB.Create(&models.UserPermission{
			UserID:       userID,
			PermissionID: p.ID,
			GrantedAt:    time.Now(),
		})
	}
}
