package services

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"conference-management-api/models"

	"gorm.io/gorm"
)

// defaultTemplates back the workflow when the admin has not configured a row
// in email_templates for the event key.
var defaultTemplates = map[string]models.EmailTemplate{
	models.EventPaperApproved: {
		SubjectTemplate: "Paper {{paper_number}} approved for review",
		BodyTemplate:    "Dear {{name}},\n\nYour paper \"{{title}}\" ({{paper_number}}) has been approved and entered into the review process.\n\n{{reason}}",
	},
	models.EventPaperRejected: {
		SubjectTemplate: "Paper {{paper_number}} submission rejected",
		BodyTemplate:    "Dear {{name}},\n\nWe regret to inform you that your paper \"{{title}}\" ({{paper_number}}) was not accepted for review.\n\nReason: {{reason}}",
	},
	models.EventPaymentVerified: {
		SubjectTemplate: "Registration payment verified",
		BodyTemplate:    "Dear {{name}},\n\nYour payment of {{amount}} (transaction {{transaction_id}}) has been verified. Your registration is confirmed.\n\n{{reason}}",
	},
	models.EventPaymentRejected: {
		SubjectTemplate: "Registration payment could not be verified",
		BodyTemplate:    "Dear {{name}},\n\nYour payment of {{amount}} (transaction {{transaction_id}}) could not be verified.\n\nReason: {{reason}}\n\nPlease upload a corrected proof of payment from your dashboard.",
	},
}

func fetchEmailTemplate(db *gorm.DB, eventKey string) (*models.EmailTemplate, error) {
	var tmpl models.EmailTemplate
	if err := db.Where("event_key = ? AND is_active = 1", eventKey).
		First(&tmpl).Error; err != nil {
		return nil, err
	}
	return &tmpl, nil
}

func applyTemplatePlaceholders(text string, data map[string]string) string {
	result := text
	for key, value := range data {
		placeholder := "{{" + key + "}}"
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}

// RenderTemplate resolves the template for eventKey (stored row first,
// built-in default otherwise) and substitutes the placeholder data.
func RenderTemplate(db *gorm.DB, eventKey string, data map[string]string) (subject, body string, err error) {
	tmpl, fetchErr := fetchEmailTemplate(db, eventKey)
	if fetchErr != nil {
		fallback, ok := defaultTemplates[eventKey]
		if !ok {
			return "", "", fmt.Errorf("no template for event %s", eventKey)
		}
		tmpl = &fallback
	}

	subject = applyTemplatePlaceholders(tmpl.SubjectTemplate, data)
	body = applyTemplatePlaceholders(tmpl.BodyTemplate, data)
	return subject, body, nil
}

// EmailNotifier turns workflow decisions into an in-app notification row and
// an email outbox row, written together in one transaction. It implements
// DecisionNotifier; every failure path logs and returns, by contract.
type EmailNotifier struct {
	db *gorm.DB
}

func NewEmailNotifier(db *gorm.DB) *EmailNotifier {
	return &EmailNotifier{db: db}
}

func (n *EmailNotifier) NotifyPaperDecision(paper *models.Paper, eventKey, notes string) {
	if paper.Owner.Email == "" {
		log.Printf("notify: paper %d owner email missing, skipping %s", paper.PaperID, eventKey)
		return
	}

	data := map[string]string{
		"name":         paper.Owner.FullName,
		"title":        paper.Title,
		"paper_number": paper.PaperNumber,
		"reason":       notes,
	}

	notifType := "success"
	if eventKey == models.EventPaperRejected {
		notifType = "error"
	}

	paperID := uint(paper.PaperID)
	n.deliver(eventKey, paper.Owner.Email, uint(paper.UserID), &paperID, notifType, data)
}

func (n *EmailNotifier) NotifyPaymentDecision(payment *models.Payment, eventKey, notes string) {
	if payment.Owner.Email == "" {
		log.Printf("notify: payment %d owner email missing, skipping %s", payment.PaymentID, eventKey)
		return
	}

	txRef := ""
	if payment.TransactionRef != nil {
		txRef = *payment.TransactionRef
	}
	data := map[string]string{
		"name":           payment.Owner.FullName,
		"amount":         fmt.Sprintf("%s %s", payment.Currency, strconv.FormatFloat(payment.Amount, 'f', 2, 64)),
		"transaction_id": txRef,
		"reason":         notes,
	}

	notifType := "success"
	if eventKey == models.EventPaymentRejected {
		notifType = "error"
	}

	n.deliver(eventKey, payment.Owner.Email, uint(payment.UserID), nil, notifType, data)
}

func (n *EmailNotifier) deliver(eventKey, email string, userID uint, paperID *uint, notifType string, data map[string]string) {
	subject, body, err := RenderTemplate(n.db, eventKey, data)
	if err != nil {
		log.Printf("notify: render %s failed: %v", eventKey, err)
		return
	}

	now := time.Now()
	html := buildEmailHTML(subject, strings.Split(body, "\n\n"), nil)

	err = n.db.Transaction(func(tx *gorm.DB) error {
		notification := models.Notification{
			UserID:         userID,
			Title:          subject,
			Message:        body,
			Type:           notifType,
			RelatedPaperID: paperID,
			IsRead:         false,
			CreateAt:       now,
		}
		if err := tx.Create(&notification).Error; err != nil {
			return err
		}

		outbox := models.EmailOutbox{
			Recipient: email,
			Subject:   subject,
			Body:      html,
			EventKey:  eventKey,
			Status:    models.OutboxStatusPending,
			CreatedAt: now,
			UpdatedAt: now,
		}
		return tx.Create(&outbox).Error
	})
	if err != nil {
		log.Printf("notify: enqueue %s for %s failed: %v", eventKey, email, err)
	}
}
