package models

import (
	"time"

	"gorm.io/datatypes"
)

// Event keys used to look up email templates for workflow decisions.
const (
	EventPaperApproved   = "paper_approved"
	EventPaperRejected   = "paper_rejected"
	EventPaymentVerified = "payment_verified"
	EventPaymentRejected = "payment_rejected"
)

// EmailTemplate holds the admin-editable notification templates. Subject and
// body use {{placeholder}} substitution; variables documents the placeholders
// the template supports ({{name}}, {{paper_number}}, {{amount}},
// {{transaction_id}}, {{reason}}).
type EmailTemplate struct {
	ID              uint           `gorm:"primaryKey;column:id" json:"id"`
	EventKey        string         `gorm:"column:event_key" json:"event_key"`
	SubjectTemplate string         `gorm:"column:subject_template" json:"subject_template"`
	BodyTemplate    string         `gorm:"column:body_template" json:"body_template"`
	Description     *string        `gorm:"column:description" json:"description,omitempty"`
	Variables       datatypes.JSON `gorm:"column:variables" json:"variables"`
	IsActive        bool           `gorm:"column:is_active" json:"is_active"`
	UpdatedBy       *uint          `gorm:"column:updated_by" json:"updated_by,omitempty"`
	CreatedAt       time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (EmailTemplate) TableName() string { return "email_templates" }

// Outbox statuses.
const (
	OutboxStatusPending = "pending"
	OutboxStatusSending = "sending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"
)

// EmailOutbox is written in the same transaction as the entity update that
// produced it. A separate dispatcher delivers pending rows so failed sends
// stay observable instead of being silently dropped.
type EmailOutbox struct {
	OutboxID    uint       `gorm:"primaryKey;column:outbox_id" json:"outbox_id"`
	Recipient   string     `gorm:"column:recipient" json:"recipient"`
	Subject     string     `gorm:"column:subject" json:"subject"`
	Body        string     `gorm:"column:body" json:"body"`
	EventKey    string     `gorm:"column:event_key" json:"event_key"`
	Status      string     `gorm:"column:status;type:enum('pending','sending','sent','failed');default:'pending'" json:"status"`
	Attempts    int        `gorm:"column:attempts" json:"attempts"`
	LastError   *string    `gorm:"column:last_error" json:"last_error,omitempty"`
	SentAt      *time.Time `gorm:"column:sent_at" json:"sent_at,omitempty"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

func (EmailOutbox) TableName() string { return "email_outbox" }

// ===== Request DTOs =====

type EmailTemplateUpdateRequest struct {
	SubjectTemplate *string `json:"subject_template"`
	BodyTemplate    *string `json:"body_template"`
	Description     *string `json:"description"`
	IsActive        *bool   `json:"is_active"`
}

type EmailTemplatePreviewRequest struct {
	Data map[string]string `json:"data"`
}
