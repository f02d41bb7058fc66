package services

import "conference-management-api/models"

// StatusFilterAll disables status filtering on list operations.
const StatusFilterAll = "all"

// ListingService is the query/filter layer behind the admin and author
// dashboards. Ordering is creation-time descending in every list.
type ListingService struct {
	papers   PaperStore
	payments PaymentStore
}

func NewListingService(papers PaperStore, payments PaymentStore) *ListingService {
	return &ListingService{papers: papers, payments: payments}
}

// ListPapers returns papers whose status equals the filter, or all papers
// when the filter is "all" or empty.
func (s *ListingService) ListPapers(statusFilter string) ([]models.Paper, error) {
	if statusFilter == "" {
		statusFilter = StatusFilterAll
	}
	if statusFilter != StatusFilterAll && !ValidPaperStatus(statusFilter) {
		return nil, validationf("invalid paper status filter %q", statusFilter)
	}
	return s.papers.ListByStatus(statusFilter)
}

// ListPayments is the payment counterpart of ListPapers.
func (s *ListingService) ListPayments(statusFilter string) ([]models.Payment, error) {
	if statusFilter == "" {
		statusFilter = StatusFilterAll
	}
	if statusFilter != StatusFilterAll && !ValidPaymentStatus(statusFilter) {
		return nil, validationf("invalid payment status filter %q", statusFilter)
	}
	return s.payments.ListByStatus(statusFilter)
}

// ListPapersByOwner returns the author-facing dashboard view.
func (s *ListingService) ListPapersByOwner(userID int) ([]models.Paper, error) {
	return s.papers.ListByOwner(userID)
}

// ListPaymentsByOwner returns the author's payment records.
func (s *ListingService) ListPaymentsByOwner(userID int) ([]models.Payment, error) {
	return s.payments.ListByOwner(userID)
}
