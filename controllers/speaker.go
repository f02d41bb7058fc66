package controllers

import (
	"net/http"
	"time"

	"conference-management-api/config"
	"conference-management-api/models"

	"github.com/gin-gonic/gin"
)

// GetSpeakers is the public speaker listing
func GetSpeakers(c *gin.Context) {
	var speakers []models.Speaker
	err := config.DB.Where("is_active = ? AND delete_at IS NULL", true).
		Order("display_order ASC, speaker_id ASC").
		Find(&speakers).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch speakers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"speakers": speakers,
		"total":    len(speakers),
	})
}

// GetSpeakersAdmin lists all speakers including inactive ones
func GetSpeakersAdmin(c *gin.Context) {
	var speakers []models.Speaker
	err := config.DB.Where("delete_at IS NULL").
		Order("display_order ASC, speaker_id ASC").
		Find(&speakers).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch speakers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"speakers": speakers,
		"total":    len(speakers),
	})
}

// CreateSpeaker adds a speaker
func CreateSpeaker(c *gin.Context) {
	var req models.SpeakerCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	speaker := models.Speaker{
		Name:         req.Name,
		Designation:  req.Designation,
		Affiliation:  req.Affiliation,
		Email:        req.Email,
		TalkTitle:    req.TalkTitle,
		TalkAbstract: req.TalkAbstract,
		Bio:          req.Bio,
		IsActive:     true,
		CreateAt:     &now,
		UpdateAt:     &now,
	}
	if req.DisplayOrder != nil {
		speaker.DisplayOrder = *req.DisplayOrder
	}
	if req.IsActive != nil {
		speaker.IsActive = *req.IsActive
	}

	if err := config.DB.Create(&speaker).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create speaker"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Speaker created successfully",
		"speaker": speaker,
	})
}

// UpdateSpeaker edits a speaker
func UpdateSpeaker(c *gin.Context) {
	id := c.Param("id")

	var speaker models.Speaker
	if err := config.DB.Where("speaker_id = ? AND delete_at IS NULL", id).
		First(&speaker).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Speaker not found"})
		return
	}

	var req models.SpeakerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
			return
		}
		speaker.Name = *req.Name
	}
	if req.Designation != nil {
		speaker.Designation = *req.Designation
	}
	if req.Affiliation != nil {
		speaker.Affiliation = *req.Affiliation
	}
	if req.Email != nil {
		speaker.Email = *req.Email
	}
	if req.TalkTitle != nil {
		speaker.TalkTitle = req.TalkTitle
	}
	if req.TalkAbstract != nil {
		speaker.TalkAbstract = req.TalkAbstract
	}
	if req.Bio != nil {
		speaker.Bio = req.Bio
	}
	if req.DisplayOrder != nil {
		speaker.DisplayOrder = *req.DisplayOrder
	}
	if req.IsActive != nil {
		speaker.IsActive = *req.IsActive
	}

	now := time.Now()
	speaker.UpdateAt = &now

	if err := config.DB.Save(&speaker).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update speaker"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Speaker updated successfully",
		"speaker": speaker,
	})
}

// SetSpeakerPhoto links an uploaded photo to a speaker
func SetSpeakerPhoto(c *gin.Context) {
	id := c.Param("id")

	type photoRequest struct {
		FileID int `json:"file_id" binding:"required"`
	}
	var req photoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var speaker models.Speaker
	if err := config.DB.Where("speaker_id = ? AND delete_at IS NULL", id).
		First(&speaker).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Speaker not found"})
		return
	}

	var file models.FileUpload
	if err := config.DB.Where("file_id = ? AND kind = ? AND delete_at IS NULL", req.FileID, "photo").
		First(&file).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
		return
	}

	now := time.Now()
	speaker.ImageFileID = &file.FileID
	speaker.ImageURL = &file.FileURL
	speaker.UpdateAt = &now

	if err := config.DB.Save(&speaker).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update speaker"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Photo updated successfully",
		"speaker": speaker,
	})
}

// DeleteSpeaker removes a speaker
func DeleteSpeaker(c *gin.Context) {
	id := c.Param("id")

	result := config.DB.Where("speaker_id = ?", id).Delete(&models.Speaker{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete speaker"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Speaker not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Speaker deleted successfully"})
}
