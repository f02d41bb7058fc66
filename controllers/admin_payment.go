package controllers

import (
	"net/http"
	"strconv"

	"conference-management-api/models"
	"conference-management-api/services"

	"github.com/gin-gonic/gin"
)

// GetPaymentsAdmin lists payments with an optional ?status= filter
func GetPaymentsAdmin(c *gin.Context) {
	statusFilter := c.DefaultQuery("status", "all")

	payments, err := newListingService().ListPayments(statusFilter)
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

// DecidePayment verifies or rejects a pending payment
func DecidePayment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment ID"})
		return
	}

	var req models.PaymentDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	decision := services.DecisionVerify
	if req.Status == models.PaymentStatusRejected {
		decision = services.DecisionReject
	}

	payment, err := newReviewService().DecidePayment(currentActor(c), id, decision, req.VerificationNotes)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment decision recorded",
		"payment": payment.ToResponse(),
	})
}

// UpdatePayment is the generic admin edit (PATCH) path for payments
func UpdatePayment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment ID"})
		return
	}

	var req models.PaymentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := newReviewService().EditPayment(currentActor(c), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment updated successfully",
		"payment": payment.ToResponse(),
	})
}
