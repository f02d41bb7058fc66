package services

import (
	"errors"
	"testing"
	"time"

	"conference-management-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paperAt(id, userID int, status string, createdAgo time.Duration) *models.Paper {
	created := time.Now().Add(-createdAgo)
	return &models.Paper{
		PaperID:  id,
		UserID:   userID,
		Title:    "Paper",
		Status:   status,
		CreateAt: &created,
	}
}

func TestListPapersFilter(t *testing.T) {
	papers := newFakePaperStore(
		paperAt(1, 3, models.PaperStatusPendingApproval, 3*time.Hour),
		paperAt(2, 3, models.PaperStatusSubmitted, 2*time.Hour),
		paperAt(3, 4, models.PaperStatusPendingApproval, time.Hour),
	)
	svc := NewListingService(papers, newFakePaymentStore())

	all, err := svc.ListPapers("")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	pending, err := svc.ListPapers(models.PaperStatusPendingApproval)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	for _, p := range pending {
		assert.Equal(t, models.PaperStatusPendingApproval, p.Status)
	}

	_, err = svc.ListPapers("bogus")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestListPapersNewestFirst(t *testing.T) {
	papers := newFakePaperStore(
		paperAt(1, 3, models.PaperStatusSubmitted, 3*time.Hour),
		paperAt(2, 3, models.PaperStatusSubmitted, time.Hour),
		paperAt(3, 3, models.PaperStatusSubmitted, 2*time.Hour),
	)
	svc := NewListingService(papers, newFakePaymentStore())

	got, err := svc.ListPapers(StatusFilterAll)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 2, got[0].PaperID)
	assert.Equal(t, 3, got[1].PaperID)
	assert.Equal(t, 1, got[2].PaperID)
}

func TestListPapersByOwner(t *testing.T) {
	papers := newFakePaperStore(
		paperAt(1, 3, models.PaperStatusSubmitted, 2*time.Hour),
		paperAt(2, 4, models.PaperStatusSubmitted, time.Hour),
	)
	svc := NewListingService(papers, newFakePaymentStore())

	mine, err := svc.ListPapersByOwner(3)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, 1, mine[0].PaperID)
}

func TestListPaymentsFilter(t *testing.T) {
	now := time.Now()
	earlier := now.Add(-time.Hour)
	payments := newFakePaymentStore(
		&models.Payment{PaymentID: 1, UserID: 3, Status: models.PaymentStatusPending, CreateAt: &earlier},
		&models.Payment{PaymentID: 2, UserID: 3, Status: models.PaymentStatusVerified, CreateAt: &now},
	)
	svc := NewListingService(newFakePaperStore(), payments)

	verified, err := svc.ListPayments(models.PaymentStatusVerified)
	require.NoError(t, err)
	require.Len(t, verified, 1)
	assert.Equal(t, 2, verified[0].PaymentID)

	all, err := svc.ListPayments(StatusFilterAll)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.ListPayments("chargeback")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}
