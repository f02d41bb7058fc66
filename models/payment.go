package models

import (
	"time"
)

// Payment statuses.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusVerified = "verified"
	PaymentStatusRejected = "rejected"
)

// Registration categories offered on the registration page.
const (
	PaymentCategoryStudent      = "student"
	PaymentCategoryAcademician  = "academician"
	PaymentCategoryIndustry     = "industry"
	PaymentCategoryForeign      = "foreign_delegate"
	PaymentCategoryAttendeeOnly = "attendee_only"
)

type Payment struct {
	PaymentID      int     `gorm:"primaryKey;column:payment_id" json:"payment_id"`
	UserID         int     `gorm:"column:user_id" json:"user_id"`
	PaperID        *int    `gorm:"column:paper_id" json:"paper_id,omitempty"`
	Amount         float64 `gorm:"column:amount;type:decimal(10,2)" json:"amount"`
	Currency       string  `gorm:"column:currency;default:'INR'" json:"currency"`
	Category       string  `gorm:"column:category" json:"category"`
	TransactionRef *string `gorm:"column:transaction_ref" json:"transaction_ref,omitempty"`
	ProofFileURL   string  `gorm:"column:proof_file_url" json:"proof_file_url"`
	Status         string  `gorm:"column:status;type:enum('pending','verified','rejected');default:'pending'" json:"status"`

	// Verification metadata, written when an admin decides the payment.
	VerificationNotes *string    `gorm:"column:verification_notes" json:"verification_notes,omitempty"`
	VerifiedBy        *int       `gorm:"column:verified_by" json:"verified_by,omitempty"`
	VerifiedAt        *time.Time `gorm:"column:verified_at" json:"verified_at,omitempty"`

	CreateAt *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	Owner User   `gorm:"foreignKey:UserID" json:"owner,omitempty"`
	Paper *Paper `gorm:"foreignKey:PaperID" json:"paper,omitempty"`
}

// PaymentStatusHistory tracks historical status changes for payments.
type PaymentStatusHistory struct {
	HistoryID int       `gorm:"primaryKey;column:history_id" json:"history_id"`
	PaymentID int       `gorm:"column:payment_id" json:"payment_id"`
	OldStatus *string   `gorm:"column:old_status" json:"old_status"`
	NewStatus string    `gorm:"column:new_status" json:"new_status"`
	ChangedBy int       `gorm:"column:changed_by" json:"changed_by"`
	Notes     *string   `gorm:"column:notes" json:"notes"`
	Override  bool      `gorm:"column:override" json:"override"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides
func (Payment) TableName() string {
	return "payments"
}

func (PaymentStatusHistory) TableName() string {
	return "payment_status_history"
}

// ===== Request/Response DTOs =====

type PaymentCreateRequest struct {
	Amount         float64 `json:"amount" binding:"required,gt=0"`
	Currency       string  `json:"currency" binding:"required,len=3"`
	Category       string  `json:"category" binding:"required,oneof=student academician industry foreign_delegate attendee_only"`
	TransactionRef *string `json:"transaction_ref"`
	ProofFileURL   string  `json:"proof_file_url" binding:"required"`
	PaperID        *int    `json:"paper_id"`
}

type PaymentDecisionRequest struct {
	Status            string `json:"status" binding:"required,oneof=verified rejected"`
	VerificationNotes string `json:"verification_notes"`
}

// PaymentUpdateRequest is the generic admin edit payload for payments.
type PaymentUpdateRequest struct {
	Amount            *float64 `json:"amount"`
	Currency          *string  `json:"currency"`
	Category          *string  `json:"category"`
	TransactionRef    *string  `json:"transaction_ref"`
	Status            *string  `json:"status"`
	VerificationNotes *string  `json:"verification_notes"`
}

type PaymentResponse struct {
	PaymentID         int        `json:"payment_id"`
	UserID            int        `json:"user_id"`
	OwnerName         string     `json:"owner_name,omitempty"`
	OwnerEmail        string     `json:"owner_email,omitempty"`
	PaperID           *int       `json:"paper_id,omitempty"`
	PaperNumber       string     `json:"paper_number,omitempty"`
	Amount            float64    `json:"amount"`
	Currency          string     `json:"currency"`
	Category          string     `json:"category"`
	TransactionRef    *string    `json:"transaction_ref,omitempty"`
	ProofFileURL      string     `json:"proof_file_url"`
	Status            string     `json:"status"`
	VerificationNotes *string    `json:"verification_notes,omitempty"`
	VerifiedBy        *int       `json:"verified_by,omitempty"`
	VerifiedAt        *time.Time `json:"verified_at,omitempty"`
	CreateAt          *time.Time `json:"create_at"`
	UpdateAt          *time.Time `json:"update_at"`
}

func (p *Payment) ToResponse() PaymentResponse {
	resp := PaymentResponse{
		PaymentID:         p.PaymentID,
		UserID:            p.UserID,
		PaperID:           p.PaperID,
		Amount:            p.Amount,
		Currency:          p.Currency,
		Category:          p.Category,
		TransactionRef:    p.TransactionRef,
		ProofFileURL:      p.ProofFileURL,
		Status:            p.Status,
		VerificationNotes: p.VerificationNotes,
		VerifiedBy:        p.VerifiedBy,
		VerifiedAt:        p.VerifiedAt,
		CreateAt:          p.CreateAt,
		UpdateAt:          p.UpdateAt,
	}
	if p.Owner.UserID != 0 {
		resp.OwnerName = p.Owner.FullName
		resp.OwnerEmail = p.Owner.Email
	}
	if p.Paper != nil && p.Paper.PaperID != 0 {
		resp.PaperNumber = p.Paper.PaperNumber
	}
	return resp
}
