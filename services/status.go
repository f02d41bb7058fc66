package services

import "conference-management-api/models"

// Status model for the two workflow entities. Decision handlers and the
// generic admin edit path consult the same predicates; the edit path may set
// any valid status but records the change as an override when the move is not
// reachable through a dedicated decision action.

var paperStatuses = map[string]bool{
	models.PaperStatusPendingApproval: true,
	models.PaperStatusSubmitted:       true,
	models.PaperStatusUnderReview:     true,
	models.PaperStatusAccepted:        true,
	models.PaperStatusRejected:        true,
}

var paymentStatuses = map[string]bool{
	models.PaymentStatusPending:  true,
	models.PaymentStatusVerified: true,
	models.PaymentStatusRejected: true,
}

// ValidPaperStatus reports whether s is a member of the paper status enum.
func ValidPaperStatus(s string) bool {
	return paperStatuses[s]
}

// ValidPaymentStatus reports whether s is a member of the payment status enum.
func ValidPaymentStatus(s string) bool {
	return paymentStatuses[s]
}

// PaperTransitionAllowed reports whether a dedicated decision action may move
// a paper from current to next. The approval gate moves pending_approval to
// submitted or rejected; repeating an already-applied decision is a no-op
// success rather than an error.
func PaperTransitionAllowed(current, next string) bool {
	if !ValidPaperStatus(current) || !ValidPaperStatus(next) {
		return false
	}
	if current == next {
		return true
	}
	if current != models.PaperStatusPendingApproval {
		return false
	}
	return next == models.PaperStatusSubmitted || next == models.PaperStatusRejected
}

// PaymentTransitionAllowed is the payment counterpart: pending may move to
// verified or rejected, repeats succeed, and there is no path back to pending.
func PaymentTransitionAllowed(current, next string) bool {
	if !ValidPaymentStatus(current) || !ValidPaymentStatus(next) {
		return false
	}
	if current == next {
		return true
	}
	if current != models.PaymentStatusPending {
		return false
	}
	return next == models.PaymentStatusVerified || next == models.PaymentStatusRejected
}
