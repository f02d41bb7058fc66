package services

import (
	"bytes"
	"testing"
	"time"

	"conference-management-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReceiptPDF(t *testing.T) {
	verified := time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC)
	ref := "TXN-991"
	payment := &models.Payment{
		PaymentID:      7,
		Amount:         5500,
		Currency:       "INR",
		Category:       models.PaymentCategoryAcademician,
		TransactionRef: &ref,
		Status:         models.PaymentStatusVerified,
		VerifiedAt:     &verified,
		Owner:          models.User{UserID: 3, FullName: "Asha Rao", Email: "asha@example.com"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteReceiptPDF(&buf, payment))

	out := buf.Bytes()
	require.Greater(t, len(out), 500)
	assert.Equal(t, "%PDF", string(out[:4]))
}
