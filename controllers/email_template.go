package controllers

import (
	"net/http"
	"time"

	"conference-management-api/config"
	"conference-management-api/models"
	"conference-management-api/services"

	"github.com/gin-gonic/gin"
)

// GetEmailTemplates lists the configured notification templates
func GetEmailTemplates(c *gin.Context) {
	var templates []models.EmailTemplate
	if err := config.DB.Order("event_key ASC").Find(&templates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch templates"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"templates": templates,
		"total":     len(templates),
	})
}

// UpdateEmailTemplate edits one template
func UpdateEmailTemplate(c *gin.Context) {
	id := c.Param("id")

	var tmpl models.EmailTemplate
	if err := config.DB.Where("id = ?", id).First(&tmpl).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	var req models.EmailTemplateUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.SubjectTemplate != nil {
		if *req.SubjectTemplate == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Subject template is required"})
			return
		}
		tmpl.SubjectTemplate = *req.SubjectTemplate
	}
	if req.BodyTemplate != nil {
		if *req.BodyTemplate == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Body template is required"})
			return
		}
		tmpl.BodyTemplate = *req.BodyTemplate
	}
	if req.Description != nil {
		tmpl.Description = req.Description
	}
	if req.IsActive != nil {
		tmpl.IsActive = *req.IsActive
	}

	updatedBy := uint(currentUserID(c))
	tmpl.UpdatedBy = &updatedBy
	tmpl.UpdatedAt = time.Now()

	if err := config.DB.Save(&tmpl).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update template"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Template updated successfully",
		"template": tmpl,
	})
}

// PreviewEmailTemplate renders a template event with sample placeholder data
func PreviewEmailTemplate(c *gin.Context) {
	eventKey := c.Param("event_key")

	var req models.EmailTemplatePreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Data == nil {
		req.Data = map[string]string{}
	}

	subject, body, err := services.RenderTemplate(config.DB, eventKey, req.Data)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown template event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"subject": subject,
		"body":    body,
	})
}

// GetOutbox exposes the email outbox for delivery monitoring
func GetOutbox(c *gin.Context) {
	query := config.DB.Model(&models.EmailOutbox{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var rows []models.EmailOutbox
	if err := query.Order("created_at DESC").Limit(200).Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch outbox"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"outbox": rows,
		"total":  len(rows),
	})
}
