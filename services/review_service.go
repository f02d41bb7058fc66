package services

import (
	"strings"
	"time"

	"conference-management-api/models"
)

// Actor is the explicit caller identity passed into every review operation,
// resolved from the request session by the HTTP layer.
type Actor struct {
	UserID int
	RoleID int
}

func (a Actor) IsAdmin() bool {
	return a.RoleID == models.RoleIDAdmin
}

// Decisions accepted by the dedicated review actions.
const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
	DecisionVerify  = "verify"
)

// ReviewService applies admin decisions to papers and payments: validate the
// transition, persist the new state plus audit metadata, then trigger a
// best-effort notification to the owning author. The notification is only
// attempted after a confirmed write and never fails the decision.
type ReviewService struct {
	papers   PaperStore
	payments PaymentStore
	notifier DecisionNotifier
}

func NewReviewService(papers PaperStore, payments PaymentStore, notifier DecisionNotifier) *ReviewService {
	return &ReviewService{papers: papers, payments: payments, notifier: notifier}
}

// DecideSubmission resolves the pending_approval gate: approve moves the
// paper to submitted, reject to rejected. Repeating an applied decision
// succeeds without change; a conflicting re-decision fails validation and
// must go through the generic edit path instead.
func (s *ReviewService) DecideSubmission(actor Actor, paperID int, decision, notes string) (*models.Paper, error) {
	if !actor.IsAdmin() {
		return nil, ErrUnauthorized
	}

	var target string
	switch decision {
	case DecisionApprove:
		target = models.PaperStatusSubmitted
	case DecisionReject:
		target = models.PaperStatusRejected
	default:
		return nil, validationf("unknown decision %q", decision)
	}

	paper, err := s.papers.FindByID(paperID)
	if err != nil {
		return nil, err
	}

	if !PaperTransitionAllowed(paper.Status, target) {
		return nil, validationf("paper %d is %s and cannot move to %s", paperID, paper.Status, target)
	}

	// Repeating the applied decision is a no-op success: no write, no
	// second notification.
	if paper.Status == target {
		return paper, nil
	}

	now := time.Now()
	oldStatus := paper.Status
	paper.Status = target
	paper.ApprovedBy = &actor.UserID
	paper.ApprovedAt = &now
	if trimmed := strings.TrimSpace(notes); trimmed != "" {
		paper.ApprovalNotes = &trimmed
	}
	paper.UpdateAt = &now

	hist := &models.PaperStatusHistory{
		PaperID:   paper.PaperID,
		OldStatus: &oldStatus,
		NewStatus: target,
		ChangedBy: actor.UserID,
		CreatedAt: now,
	}
	if paper.ApprovalNotes != nil {
		hist.Notes = paper.ApprovalNotes
	}

	if err := s.papers.Save(paper, hist); err != nil {
		return nil, err
	}

	eventKey := models.EventPaperApproved
	if decision == DecisionReject {
		eventKey = models.EventPaperRejected
	}
	s.notifier.NotifyPaperDecision(paper, eventKey, notes)

	return paper, nil
}

// DecidePayment verifies or rejects a pending payment, storing verification
// notes regardless of decision. Omitted notes persist as null and never fail.
func (s *ReviewService) DecidePayment(actor Actor, paymentID int, decision, notes string) (*models.Payment, error) {
	if !actor.IsAdmin() {
		return nil, ErrUnauthorized
	}

	var target string
	switch decision {
	case DecisionVerify:
		target = models.PaymentStatusVerified
	case DecisionReject:
		target = models.PaymentStatusRejected
	default:
		return nil, validationf("unknown decision %q", decision)
	}

	payment, err := s.payments.FindByID(paymentID)
	if err != nil {
		return nil, err
	}

	if !PaymentTransitionAllowed(payment.Status, target) {
		return nil, validationf("payment %d is %s and cannot move to %s", paymentID, payment.Status, target)
	}

	if payment.Status == target {
		return payment, nil
	}

	now := time.Now()
	oldStatus := payment.Status
	payment.Status = target
	payment.VerifiedBy = &actor.UserID
	payment.VerifiedAt = &now
	if trimmed := strings.TrimSpace(notes); trimmed != "" {
		payment.VerificationNotes = &trimmed
	} else {
		payment.VerificationNotes = nil
	}
	payment.UpdateAt = &now

	hist := &models.PaymentStatusHistory{
		PaymentID: payment.PaymentID,
		OldStatus: &oldStatus,
		NewStatus: target,
		ChangedBy: actor.UserID,
		Notes:     payment.VerificationNotes,
		CreatedAt: now,
	}

	if err := s.payments.Save(payment, hist); err != nil {
		return nil, err
	}

	eventKey := models.EventPaymentVerified
	if decision == DecisionReject {
		eventKey = models.EventPaymentRejected
	}
	s.notifier.NotifyPaymentDecision(payment, eventKey, notes)

	return payment, nil
}

// EditPaper is the generic admin correction path. It applies a field-level
// update with required-field checks only. A status set here may jump anywhere
// inside the enum; jumps not reachable via DecideSubmission are recorded in
// the history with the override flag.
func (s *ReviewService) EditPaper(actor Actor, paperID int, req models.PaperUpdateRequest) (*models.Paper, error) {
	if !actor.IsAdmin() {
		return nil, ErrUnauthorized
	}

	paper, err := s.papers.FindByID(paperID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, validationf("title is required")
		}
		paper.Title = strings.TrimSpace(*req.Title)
	}
	if req.Abstract != nil {
		paper.Abstract = *req.Abstract
	}
	if req.SubjectArea != nil {
		paper.SubjectArea = *req.SubjectArea
	}
	if req.Authors != nil {
		paper.Authors = *req.Authors
	}
	if req.ReviewerID != nil {
		paper.ReviewerID = req.ReviewerID
	}
	if req.ReviewComments != nil {
		paper.ReviewComments = req.ReviewComments
	}
	if req.ReviewComplete != nil {
		paper.ReviewComplete = *req.ReviewComplete
	}

	now := time.Now()
	var hist *models.PaperStatusHistory

	if req.Status != nil && *req.Status != paper.Status {
		next := *req.Status
		if !ValidPaperStatus(next) {
			return nil, validationf("invalid paper status %q", next)
		}
		oldStatus := paper.Status
		hist = &models.PaperStatusHistory{
			PaperID:   paper.PaperID,
			OldStatus: &oldStatus,
			NewStatus: next,
			ChangedBy: actor.UserID,
			Override:  !PaperTransitionAllowed(paper.Status, next),
			CreatedAt: now,
		}
		paper.Status = next
	}

	paper.UpdateAt = &now
	if err := s.papers.Save(paper, hist); err != nil {
		return nil, err
	}

	return paper, nil
}

// EditPayment mirrors EditPaper for payment records.
func (s *ReviewService) EditPayment(actor Actor, paymentID int, req models.PaymentUpdateRequest) (*models.Payment, error) {
	if !actor.IsAdmin() {
		return nil, ErrUnauthorized
	}

	payment, err := s.payments.FindByID(paymentID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if *req.Amount <= 0 {
			return nil, validationf("amount must be positive")
		}
		payment.Amount = *req.Amount
	}
	if req.Currency != nil {
		if len(*req.Currency) != 3 {
			return nil, validationf("currency must be a 3-letter code")
		}
		payment.Currency = strings.ToUpper(*req.Currency)
	}
	if req.Category != nil {
		payment.Category = *req.Category
	}
	if req.TransactionRef != nil {
		payment.TransactionRef = req.TransactionRef
	}
	if req.VerificationNotes != nil {
		payment.VerificationNotes = req.VerificationNotes
	}

	now := time.Now()
	var hist *models.PaymentStatusHistory

	if req.Status != nil && *req.Status != payment.Status {
		next := *req.Status
		if !ValidPaymentStatus(next) {
			return nil, validationf("invalid payment status %q", next)
		}
		oldStatus := payment.Status
		hist = &models.PaymentStatusHistory{
			PaymentID: payment.PaymentID,
			OldStatus: &oldStatus,
			NewStatus: next,
			ChangedBy: actor.UserID,
			Override:  !PaymentTransitionAllowed(payment.Status, next),
			CreatedAt: now,
		}
		payment.Status = next
	}

	payment.UpdateAt = &now
	if err := s.payments.Save(payment, hist); err != nil {
		return nil, err
	}

	return payment, nil
}

// DeletePaper hard-deletes a paper record by explicit admin action.
func (s *ReviewService) DeletePaper(actor Actor, paperID int) error {
	if !actor.IsAdmin() {
		return ErrUnauthorized
	}
	return s.papers.Delete(paperID)
}
