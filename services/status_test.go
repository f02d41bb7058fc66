package services

import (
	"testing"

	"conference-management-api/models"
)

func TestPaperTransitionAllowed(t *testing.T) {
	cases := []struct {
		name    string
		current string
		next    string
		want    bool
	}{
		{"approve from gate", models.PaperStatusPendingApproval, models.PaperStatusSubmitted, true},
		{"reject from gate", models.PaperStatusPendingApproval, models.PaperStatusRejected, true},
		{"repeat decision is a no-op success", models.PaperStatusSubmitted, models.PaperStatusSubmitted, true},
		{"repeat rejection", models.PaperStatusRejected, models.PaperStatusRejected, true},
		{"no skipping the gate", models.PaperStatusPendingApproval, models.PaperStatusAccepted, false},
		{"no reversing a decision", models.PaperStatusSubmitted, models.PaperStatusRejected, false},
		{"no reopening", models.PaperStatusRejected, models.PaperStatusPendingApproval, false},
		{"unknown current", "draft", models.PaperStatusSubmitted, false},
		{"unknown next", models.PaperStatusPendingApproval, "published", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PaperTransitionAllowed(tc.current, tc.next); got != tc.want {
				t.Errorf("PaperTransitionAllowed(%q, %q) = %v, want %v", tc.current, tc.next, got, tc.want)
			}
		})
	}
}

func TestPaymentTransitionAllowed(t *testing.T) {
	cases := []struct {
		name    string
		current string
		next    string
		want    bool
	}{
		{"verify pending", models.PaymentStatusPending, models.PaymentStatusVerified, true},
		{"reject pending", models.PaymentStatusPending, models.PaymentStatusRejected, true},
		{"repeat verification", models.PaymentStatusVerified, models.PaymentStatusVerified, true},
		{"no reversing verification", models.PaymentStatusVerified, models.PaymentStatusRejected, false},
		{"no un-rejecting", models.PaymentStatusRejected, models.PaymentStatusPending, false},
		{"unknown status", "refunded", models.PaymentStatusVerified, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PaymentTransitionAllowed(tc.current, tc.next); got != tc.want {
				t.Errorf("PaymentTransitionAllowed(%q, %q) = %v, want %v", tc.current, tc.next, got, tc.want)
			}
		})
	}
}

func TestValidStatuses(t *testing.T) {
	for _, s := range []string{
		models.PaperStatusPendingApproval,
		models.PaperStatusSubmitted,
		models.PaperStatusUnderReview,
		models.PaperStatusAccepted,
		models.PaperStatusRejected,
	} {
		if !ValidPaperStatus(s) {
			t.Errorf("ValidPaperStatus(%q) = false, want true", s)
		}
	}
	if ValidPaperStatus("") || ValidPaperStatus("all") {
		t.Error("empty and filter-only values must not be valid paper statuses")
	}

	for _, s := range []string{
		models.PaymentStatusPending,
		models.PaymentStatusVerified,
		models.PaymentStatusRejected,
	} {
		if !ValidPaymentStatus(s) {
			t.Errorf("ValidPaymentStatus(%q) = false, want true", s)
		}
	}
	if ValidPaymentStatus("pending_approval") {
		t.Error("paper statuses must not leak into the payment enum")
	}
}
