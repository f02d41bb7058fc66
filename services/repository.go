package services

import "conference-management-api/models"

// Store collaborator interfaces consumed by the review and listing services.
// The GORM implementations live in gorm_repository.go; tests substitute
// in-memory fakes.

type PaperStore interface {
	FindByID(id int) (*models.Paper, error)
	// Save persists the paper and, when hist is non-nil, the status history
	// row in the same transaction.
	Save(paper *models.Paper, hist *models.PaperStatusHistory) error
	ListByStatus(status string) ([]models.Paper, error)
	ListByOwner(userID int) ([]models.Paper, error)
	Delete(id int) error
}

type PaymentStore interface {
	FindByID(id int) (*models.Payment, error)
	// Save persists the payment and, when hist is non-nil, the status history
	// row in the same transaction.
	Save(payment *models.Payment, hist *models.PaymentStatusHistory) error
	ListByStatus(status string) ([]models.Payment, error)
	ListByOwner(userID int) ([]models.Payment, error)
}

// CommitteeStore backs the committee pages. Listings are ordered by
// display_order ascending with member_id as the stable tiebreak.
type CommitteeStore interface {
	ListActive(category string, offset, limit int) ([]models.CommitteeMember, int64, error)
	ListAll(category string) ([]models.CommitteeMember, error)
}

// DecisionNotifier delivers the best-effort notification that follows a
// confirmed decision write. Implementations must never fail the decision:
// errors are logged and swallowed.
type DecisionNotifier interface {
	NotifyPaperDecision(paper *models.Paper, eventKey, notes string)
	NotifyPaymentDecision(payment *models.Payment, eventKey, notes string)
}
