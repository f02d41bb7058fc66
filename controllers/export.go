package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"conference-management-api/models"
	"conference-management-api/services"

	"github.com/gin-gonic/gin"
)

func exportFilename(prefix, ext string) string {
	return fmt.Sprintf("%s-%s.%s", prefix, time.Now().Format("20060102"), ext)
}

// ExportPapersCSV downloads the paper list, honoring the ?status= filter
func ExportPapersCSV(c *gin.Context) {
	papers, err := newListingService().ListPapers(c.DefaultQuery("status", "all"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := services.WritePapersCSV(&buf, papers); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build export"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename("papers", "csv")))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportPaymentsCSV downloads the payment list, honoring the ?status= filter
func ExportPaymentsCSV(c *gin.Context) {
	payments, err := newListingService().ListPayments(c.DefaultQuery("status", "all"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := services.WritePaymentsCSV(&buf, payments); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build export"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename("payments", "csv")))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportRegistrationsXLSX downloads the registration workbook (verified payments)
func ExportRegistrationsXLSX(c *gin.Context) {
	payments, err := newListingService().ListPayments(models.PaymentStatusVerified)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := services.WriteRegistrationsXLSX(&buf, payments); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build export"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename("registrations", "xlsx")))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
