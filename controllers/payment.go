package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"conference-management-api/config"
	"conference-management-api/models"
	"conference-management-api/services"

	"github.com/gin-gonic/gin"
)

// GetMyPayments returns the payments owned by the current user
func GetMyPayments(c *gin.Context) {
	payments, err := newListingService().ListPaymentsByOwner(currentUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	responses := make([]models.PaymentResponse, 0, len(payments))
	for i := range payments {
		responses = append(responses, payments[i].ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"payments": responses,
		"total":    len(responses),
	})
}

// CreatePayment records a registration payment with a pre-uploaded proof file
func CreatePayment(c *gin.Context) {
	var req models.PaymentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := currentUserID(c)

	// A linked paper must belong to the caller
	if req.PaperID != nil {
		var paper models.Paper
		if err := config.DB.Where("paper_id = ? AND user_id = ? AND delete_at IS NULL",
			*req.PaperID, userID).First(&paper).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Linked paper not found"})
			return
		}
	}

	now := time.Now()
	payment := models.Payment{
		UserID:         userID,
		PaperID:        req.PaperID,
		Amount:         req.Amount,
		Currency:       strings.ToUpper(req.Currency),
		Category:       req.Category,
		TransactionRef: req.TransactionRef,
		ProofFileURL:   req.ProofFileURL,
		Status:         models.PaymentStatusPending,
		CreateAt:       &now,
		UpdateAt:       &now,
	}

	if err := config.DB.Create(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Payment recorded and awaiting verification",
		"payment": payment.ToResponse(),
	})
}

// DownloadReceipt returns the PDF receipt for a verified payment
func DownloadReceipt(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment ID"})
		return
	}

	var payment models.Payment
	if err := config.DB.Preload("Owner").Preload("Paper").
		Where("payment_id = ? AND delete_at IS NULL", id).
		First(&payment).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}

	actor := currentActor(c)
	if payment.UserID != actor.UserID && !actor.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	if payment.Status != models.PaymentStatusVerified {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Receipt is only available for verified payments"})
		return
	}

	var buf bytes.Buffer
	if err := services.WriteReceiptPDF(&buf, &payment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate receipt"})
		return
	}

	filename := fmt.Sprintf("receipt-%06d.pdf", payment.PaymentID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
