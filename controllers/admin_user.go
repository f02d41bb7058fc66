package controllers

import (
	"net/http"
	"time"

	"conference-management-api/config"
	"conference-management-api/models"
	"conference-management-api/utils"

	"github.com/gin-gonic/gin"
)

// GetUsersAdmin lists registered users
func GetUsersAdmin(c *gin.Context) {
	query := config.DB.Preload("Role").Where("delete_at IS NULL")
	if role := c.Query("role_id"); role != "" {
		query = query.Where("role_id = ?", role)
	}

	var users []models.User
	if err := query.Order("create_at DESC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users": users,
		"total": len(users),
	})
}

// GetUserAdmin returns one user
func GetUserAdmin(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	if err := config.DB.Preload("Role").
		Where("user_id = ? AND delete_at IS NULL", id).
		First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateUserAdmin edits a user's profile fields and role
func UpdateUserAdmin(c *gin.Context) {
	id := c.Param("id")

	type userUpdateRequest struct {
		FullName    *string `json:"full_name"`
		Email       *string `json:"email" binding:"omitempty,email"`
		RoleID      *int    `json:"role_id"`
		Affiliation *string `json:"affiliation"`
		Country     *string `json:"country"`
		Phone       *string `json:"phone"`
	}

	var req userUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("user_id = ? AND delete_at IS NULL", id).
		First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if req.FullName != nil {
		if *req.FullName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
			return
		}
		user.FullName = utils.SanitizeInput(*req.FullName)
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.RoleID != nil {
		if *req.RoleID != models.RoleIDAuthor && *req.RoleID != models.RoleIDAdmin {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
			return
		}
		user.RoleID = *req.RoleID
	}
	if req.Affiliation != nil {
		user.Affiliation = req.Affiliation
	}
	if req.Country != nil {
		user.Country = req.Country
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}

	now := time.Now()
	user.UpdateAt = &now

	if err := config.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"user":    user,
	})
}

// DeleteUserAdmin soft-deletes a user account
func DeleteUserAdmin(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	if err := config.DB.Where("user_id = ? AND delete_at IS NULL", id).
		First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if user.UserID == currentUserID(c) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete your own account"})
		return
	}

	now := time.Now()
	user.DeleteAt = &now
	user.UpdateAt = &now

	if err := config.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
