package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"conference-management-api/config"
	"conference-management-api/models"

	"github.com/gin-gonic/gin"
)

// GetMyPapers returns the papers owned by the current user
func GetMyPapers(c *gin.Context) {
	papers, err := newListingService().ListPapersByOwner(currentUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	responses := make([]models.PaperResponse, 0, len(papers))
	for i := range papers {
		responses = append(responses, papers[i].ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"papers": responses,
		"total":  len(responses),
	})
}

// GetPaper returns one paper for its owner or an admin
func GetPaper(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid paper ID"})
		return
	}

	var paper models.Paper
	if err := config.DB.Preload("Owner").Preload("ManuscriptFile").
		Where("paper_id = ? AND delete_at IS NULL", id).
		First(&paper).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Paper not found"})
		return
	}

	actor := currentActor(c)
	if paper.UserID != actor.UserID && !actor.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"paper": paper.ToResponse()})
}

// CreatePaper registers a new submission with status pending_approval
func CreatePaper(c *gin.Context) {
	var req models.PaperCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	paper := models.Paper{
		PaperNumber: generatePaperNumber(),
		UserID:      currentUserID(c),
		Title:       req.Title,
		Abstract:    req.Abstract,
		SubjectArea: req.SubjectArea,
		Authors:     req.Authors,
		Status:      models.PaperStatusPendingApproval,
		CreateAt:    &now,
		UpdateAt:    &now,
	}

	if err := config.DB.Create(&paper).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create paper"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Paper submitted successfully",
		"paper":   paper.ToResponse(),
	})
}

// AttachManuscript links an uploaded manuscript file to the caller's paper
func AttachManuscript(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid paper ID"})
		return
	}

	type attachRequest struct {
		FileID int `json:"file_id" binding:"required"`
	}
	var req attachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := currentUserID(c)

	var paper models.Paper
	if err := config.DB.Where("paper_id = ? AND user_id = ? AND delete_at IS NULL", id, userID).
		First(&paper).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Paper not found"})
		return
	}

	var file models.FileUpload
	if err := config.DB.Where("file_id = ? AND uploaded_by = ? AND kind = ? AND delete_at IS NULL",
		req.FileID, userID, "manuscript").First(&file).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Manuscript file not found"})
		return
	}

	now := time.Now()
	paper.ManuscriptFileID = &file.FileID
	paper.UpdateAt = &now

	if err := config.DB.Save(&paper).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to attach manuscript"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Manuscript attached successfully",
		"paper":   paper.ToResponse(),
	})
}

// Helper function to generate paper number
func generatePaperNumber() string {
	// Format: PAP-YYYYMMDD-XXXX
	now := time.Now()
	dateStr := now.Format("20060102")

	// Count today's papers
	var count int64
	config.DB.Model(&models.Paper{}).
		Where("DATE(create_at) = DATE(NOW())").
		Count(&count)

	return fmt.Sprintf("PAP-%s-%04d", dateStr, count+1)
}
