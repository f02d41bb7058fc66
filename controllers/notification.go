package controllers

import (
	"net/http"
	"time"

	"conference-management-api/config"
	"conference-management-api/models"

	"github.com/gin-gonic/gin"
)

// GetMyNotifications lists the caller's in-app notifications
func GetMyNotifications(c *gin.Context) {
	userID := currentUserID(c)

	var notifications []models.Notification
	err := config.DB.Where("user_id = ?", userID).
		Order("create_at DESC").
		Limit(100).
		Find(&notifications).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}

	var unread int64
	config.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&unread)

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"total":         len(notifications),
		"unread":        unread,
	})
}

// MarkNotificationRead flags one notification as read
func MarkNotificationRead(c *gin.Context) {
	id := c.Param("id")
	userID := currentUserID(c)

	now := time.Now()
	result := config.DB.Model(&models.Notification{}).
		Where("notification_id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{"is_read": true, "update_at": now})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}
