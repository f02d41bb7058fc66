package controllers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"conference-management-api/config"
	"conference-management-api/models"
	"conference-management-api/services"
	"conference-management-api/utils"

	"github.com/gin-gonic/gin"
)

const maxUploadSize = int64(10 * 1024 * 1024) // 10MB

var allowedExtensions = map[string]map[string]bool{
	"manuscript": {
		".pdf":  true,
		".doc":  true,
		".docx": true,
	},
	"payment_proof": {
		".pdf":  true,
		".png":  true,
		".jpg":  true,
		".jpeg": true,
	},
	"photo": {
		".png":  true,
		".jpg":  true,
		".jpeg": true,
	},
}

func uploadBasePath() string {
	uploadPath := os.Getenv("UPLOAD_PATH")
	if uploadPath == "" {
		uploadPath = "./uploads"
	}
	return uploadPath
}

// uploadDestination derives the storage directory and the public URL for a
// stored file from a single timestamp, so the two can never disagree on the
// month bucket.
func uploadDestination(base, kind, storedName string, now time.Time) (dir, fileURL string) {
	month := now.Format("2006-01")
	dir = filepath.Join(base, kind, month)
	fileURL = fmt.Sprintf("/files/%s/%s/%s", kind, month, storedName)
	return dir, fileURL
}

// UploadFile accepts a multipart file plus a kind field and returns the
// stored file record. Payment proofs are uploaded here first; the returned
// file_url is then referenced by POST /payments.
func UploadFile(c *gin.Context) {
	userID := currentUserID(c)

	kind := c.PostForm("kind")
	extensions, ok := allowedExtensions[kind]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid upload kind"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	if file.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File size exceeds 10MB limit"})
		return
	}

	originalName := utils.SafeBaseName(file.Filename)
	ext := strings.ToLower(filepath.Ext(originalName))
	if !extensions[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File type not allowed"})
		return
	}

	// Store under uploads/<kind>/<year-month>/
	now := time.Now()
	storedName := utils.StoredFilename(originalName)
	subdir, fileURL := uploadDestination(uploadBasePath(), kind, storedName, now)
	if err := os.MkdirAll(subdir, os.ModePerm); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload directory"})
		return
	}

	fullPath := filepath.Join(subdir, storedName)

	if err := c.SaveUploadedFile(file, fullPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	record := models.FileUpload{
		OriginalName: originalName,
		StoredPath:   fullPath,
		FileURL:      fileURL,
		FileSize:     file.Size,
		MimeType:     file.Header.Get("Content-Type"),
		Kind:         kind,
		IsPublic:     kind == "photo",
		UploadedBy:   userID,
		UploadedAt:   now,
		CreateAt:     now,
		UpdateAt:     now,
	}

	// Photos get a thumbnail for the public listing pages.
	if kind == "photo" {
		if thumb, err := services.MakeThumbnail(fullPath); err != nil {
			log.Printf("upload: thumbnail for %s failed: %v", fullPath, err)
		} else {
			record.ThumbPath = &thumb
		}
	}

	if err := config.DB.Create(&record).Error; err != nil {
		// Delete uploaded file if database save fails
		os.Remove(fullPath)
		if record.ThumbPath != nil {
			os.Remove(*record.ThumbPath)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file info"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "File uploaded successfully",
		"file":    record,
	})
}

// DownloadFile streams a stored file to its owner or an admin.
func DownloadFile(c *gin.Context) {
	fileID := c.Param("file_id")

	var record models.FileUpload
	if err := config.DB.Where("file_id = ? AND delete_at IS NULL", fileID).
		First(&record).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	actor := currentActor(c)
	if !record.IsPublic && record.UploadedBy != actor.UserID && !actor.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	c.FileAttachment(record.StoredPath, record.OriginalName)
}
