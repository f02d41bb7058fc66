package controllers

import (
	"net/http"
	"strconv"
	"time"

	"conference-management-api/config"
	"conference-management-api/models"
	"conference-management-api/services"

	"github.com/gin-gonic/gin"
)

const committeePageSize = 12

// GetCommittee is the public committee listing: active members only,
// optional ?category= filter, paginated at a fixed page size. Ordering is
// display_order ascending with member_id as the stable tiebreak.
func GetCommittee(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	store := services.NewCommitteeStore(config.DB)
	members, total, err := store.ListActive(c.Query("category"), (page-1)*committeePageSize, committeePageSize)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"members":   members,
		"total":     total,
		"page":      page,
		"page_size": committeePageSize,
	})
}

// GetCommitteeAdmin lists all members including inactive ones
func GetCommitteeAdmin(c *gin.Context) {
	members, err := services.NewCommitteeStore(config.DB).ListAll(c.Query("category"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"members": members,
		"total":   len(members),
	})
}

// CreateCommitteeMember adds a member
func CreateCommitteeMember(c *gin.Context) {
	var req models.CommitteeMemberCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	member := models.CommitteeMember{
		Name:        req.Name,
		Designation: req.Designation,
		Affiliation: req.Affiliation,
		Email:       req.Email,
		Category:    req.Category,
		IsActive:    true,
		CreateAt:    &now,
		UpdateAt:    &now,
	}
	if req.DisplayOrder != nil {
		member.DisplayOrder = *req.DisplayOrder
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}

	if err := config.DB.Create(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create committee member"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Committee member created successfully",
		"member":  member,
	})
}

// UpdateCommitteeMember edits a member
func UpdateCommitteeMember(c *gin.Context) {
	id := c.Param("id")

	var member models.CommitteeMember
	if err := config.DB.Where("member_id = ? AND delete_at IS NULL", id).
		First(&member).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Committee member not found"})
		return
	}

	var req models.CommitteeMemberUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
			return
		}
		member.Name = *req.Name
	}
	if req.Designation != nil {
		member.Designation = *req.Designation
	}
	if req.Affiliation != nil {
		if *req.Affiliation == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Affiliation is required"})
			return
		}
		member.Affiliation = *req.Affiliation
	}
	if req.Email != nil {
		if *req.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
			return
		}
		member.Email = *req.Email
	}
	if req.Category != nil {
		member.Category = *req.Category
	}
	if req.DisplayOrder != nil {
		member.DisplayOrder = *req.DisplayOrder
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}

	now := time.Now()
	member.UpdateAt = &now

	if err := config.DB.Save(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update committee member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Committee member updated successfully",
		"member":  member,
	})
}

// SetCommitteePhoto links an uploaded photo to a member
func SetCommitteePhoto(c *gin.Context) {
	id := c.Param("id")

	type photoRequest struct {
		FileID int `json:"file_id" binding:"required"`
	}
	var req photoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var member models.CommitteeMember
	if err := config.DB.Where("member_id = ? AND delete_at IS NULL", id).
		First(&member).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Committee member not found"})
		return
	}

	var file models.FileUpload
	if err := config.DB.Where("file_id = ? AND kind = ? AND delete_at IS NULL", req.FileID, "photo").
		First(&file).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
		return
	}

	now := time.Now()
	member.ImageFileID = &file.FileID
	member.ImageURL = &file.FileURL
	member.UpdateAt = &now

	if err := config.DB.Save(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update committee member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Photo updated successfully",
		"member":  member,
	})
}

// DeleteCommitteeMember removes a member
func DeleteCommitteeMember(c *gin.Context) {
	id := c.Param("id")

	result := config.DB.Where("member_id = ?", id).Delete(&models.CommitteeMember{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete committee member"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Committee member not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Committee member deleted successfully"})
}
