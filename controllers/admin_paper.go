package controllers

import (
	"net/http"
	"strconv"

	"conference-management-api/models"
	"conference-management-api/services"

	"github.com/gin-gonic/gin"
)

// GetPapersAdmin lists papers with an optional ?status= filter
func GetPapersAdmin(c *gin.Context) {
	statusFilter := c.DefaultQuery("status", "all")

	papers, err := newListingService().ListPapers(statusFilter)
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

// DecideSubmission resolves the approval gate on a pending paper
func DecideSubmission(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid paper ID"})
		return
	}

	var req models.SubmissionDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	decision := services.DecisionApprove
	if req.Status == models.PaperStatusRejected {
		decision = services.DecisionReject
	}

	paper, err := newReviewService().DecideSubmission(currentActor(c), id, decision, req.ApprovalNotes)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Submission decision recorded",
		"paper":   paper.ToResponse(),
	})
}

// UpdatePaper is the generic admin edit (PATCH) path
func UpdatePaper(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid paper ID"})
		return
	}

	var req models.PaperUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	paper, err := newReviewService().EditPaper(currentActor(c), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Paper updated successfully",
		"paper":   paper.ToResponse(),
	})
}

// DeletePaper removes a paper record
func DeletePaper(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid paper ID"})
		return
	}

	if err := newReviewService().DeletePaper(currentActor(c), id); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Paper deleted successfully"})
}
