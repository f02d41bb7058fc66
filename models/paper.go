package models

import (
	"time"
)

// Paper statuses. Transition rules live in services/status.go; the column
// itself is a plain string constrained at the application level.
const (
	PaperStatusPendingApproval = "pending_approval"
	PaperStatusSubmitted       = "submitted"
	PaperStatusUnderReview     = "under_review"
	PaperStatusAccepted        = "accepted"
	PaperStatusRejected        = "rejected"
)

type Paper struct {
	PaperID     int    `gorm:"primaryKey;column:paper_id" json:"paper_id"`
	PaperNumber string `gorm:"column:paper_number" json:"paper_number"`
	UserID      int    `gorm:"column:user_id" json:"user_id"`
	Title       string `gorm:"column:title" json:"title"`
	Abstract    string `gorm:"column:abstract" json:"abstract"`
	SubjectArea string `gorm:"column:subject_area" json:"subject_area"`
	Authors     string `gorm:"column:authors" json:"authors"`
	Status      string `gorm:"column:status;type:enum('pending_approval','submitted','under_review','accepted','rejected');default:'pending_approval'" json:"status"`

	// Manuscript file (one current version, replaced on re-upload)
	ManuscriptFileID *int `gorm:"column:manuscript_file_id" json:"manuscript_file_id,omitempty"`

	// Approval metadata (pending_approval gate)
	ApprovedBy    *int       `gorm:"column:approved_by" json:"approved_by,omitempty"`
	ApprovedAt    *time.Time `gorm:"column:approved_at" json:"approved_at,omitempty"`
	ApprovalNotes *string    `gorm:"column:approval_notes" json:"approval_notes,omitempty"`

	// Review metadata (peer-review outcome)
	ReviewerID     *int    `gorm:"column:reviewer_id" json:"reviewer_id,omitempty"`
	ReviewComments *string `gorm:"column:review_comments" json:"review_comments,omitempty"`
	ReviewComplete bool    `gorm:"column:review_complete" json:"review_complete"`

	CreateAt *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	Owner          User        `gorm:"foreignKey:UserID" json:"owner,omitempty"`
	ManuscriptFile *FileUpload `gorm:"foreignKey:ManuscriptFileID" json:"manuscript_file,omitempty"`
}

// PaperStatusHistory tracks historical status changes for papers.
type PaperStatusHistory struct {
	HistoryID int       `gorm:"primaryKey;column:history_id" json:"history_id"`
	PaperID   int       `gorm:"column:paper_id" json:"paper_id"`
	OldStatus *string   `gorm:"column:old_status" json:"old_status"`
	NewStatus string    `gorm:"column:new_status" json:"new_status"`
	ChangedBy int       `gorm:"column:changed_by" json:"changed_by"`
	Notes     *string   `gorm:"column:notes" json:"notes"`
	Override  bool      `gorm:"column:override" json:"override"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides
func (Paper) TableName() string {
	return "papers"
}

func (PaperStatusHistory) TableName() string {
	return "paper_status_history"
}

// ===== Request/Response DTOs =====

type PaperCreateRequest struct {
	Title       string `json:"title" binding:"required"`
	Abstract    string `json:"abstract" binding:"required"`
	SubjectArea string `json:"subject_area" binding:"required"`
	Authors     string `json:"authors" binding:"required"`
}

// PaperUpdateRequest is the generic admin edit payload. Status changes taken
// through this path bypass the decide-submission action on purpose and are
// recorded in paper_status_history with the override flag set.
type PaperUpdateRequest struct {
	Title          *string `json:"title"`
	Abstract       *string `json:"abstract"`
	SubjectArea    *string `json:"subject_area"`
	Authors        *string `json:"authors"`
	Status         *string `json:"status"`
	ReviewerID     *int    `json:"reviewer_id"`
	ReviewComments *string `json:"review_comments"`
	ReviewComplete *bool   `json:"review_complete"`
}

type SubmissionDecisionRequest struct {
	Status        string `json:"status" binding:"required,oneof=submitted rejected"`
	ApprovalNotes string `json:"approval_notes"`
}

type PaperResponse struct {
	PaperID        int        `json:"paper_id"`
	PaperNumber    string     `json:"paper_number"`
	UserID         int        `json:"user_id"`
	OwnerName      string     `json:"owner_name,omitempty"`
	OwnerEmail     string     `json:"owner_email,omitempty"`
	Title          string     `json:"title"`
	Abstract       string     `json:"abstract"`
	SubjectArea    string     `json:"subject_area"`
	Authors        string     `json:"authors"`
	Status         string     `json:"status"`
	ApprovedBy     *int       `json:"approved_by,omitempty"`
	ApprovedAt     *time.Time `json:"approved_at,omitempty"`
	ApprovalNotes  *string    `json:"approval_notes,omitempty"`
	ReviewerID     *int       `json:"reviewer_id,omitempty"`
	ReviewComments *string    `json:"review_comments,omitempty"`
	ReviewComplete bool       `json:"review_complete"`
	CreateAt       *time.Time `json:"create_at"`
	UpdateAt       *time.Time `json:"update_at"`
}

func (p *Paper) ToResponse() PaperResponse {
	resp := PaperResponse{
		PaperID:        p.PaperID,
		PaperNumber:    p.PaperNumber,
		UserID:         p.UserID,
		Title:          p.Title,
		Abstract:       p.Abstract,
		SubjectArea:    p.SubjectArea,
		Authors:        p.Authors,
		Status:         p.Status,
		ApprovedBy:     p.ApprovedBy,
		ApprovedAt:     p.ApprovedAt,
		ApprovalNotes:  p.ApprovalNotes,
		ReviewerID:     p.ReviewerID,
		ReviewComments: p.ReviewComments,
		ReviewComplete: p.ReviewComplete,
		CreateAt:       p.CreateAt,
		UpdateAt:       p.UpdateAt,
	}
	if p.Owner.UserID != 0 {
		resp.OwnerName = p.Owner.FullName
		resp.OwnerEmail = p.Owner.Email
	}
	return resp
}
