package services

import (
	"log"
	"os"
	"strconv"
	"time"

	"conference-management-api/config"
	"conference-management-api/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

const (
	outboxMaxAttempts = 5

	// A row older than this in sending state was orphaned by a crash
	// mid-dispatch and may be taken again.
	outboxStaleSendingAfter = 10 * time.Minute
)

// SendFunc delivers one rendered email. Production wiring uses
// config.SendMail; tests substitute a recorder.
type SendFunc func(to []string, subject, html string) error

// OutboxDispatcher drains pending email_outbox rows on a schedule. Rows are
// claimed with a pending->sending flip so a tick never overlaps itself, then
// marked sent or failed with the attempt count and last error kept.
type OutboxDispatcher struct {
	db        *gorm.DB
	send      SendFunc
	batchSize int
}

func NewOutboxDispatcher(db *gorm.DB) *OutboxDispatcher {
	batch := 25
	if raw := os.Getenv("OUTBOX_BATCH_SIZE"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			batch = parsed
		}
	}
	return &OutboxDispatcher{db: db, send: config.SendMail, batchSize: batch}
}

// Start registers the dispatch job on the given cron runner.
func (d *OutboxDispatcher) Start(c *cron.Cron) error {
	schedule := os.Getenv("OUTBOX_SCHEDULE")
	if schedule == "" {
		schedule = "@every 1m"
	}
	_, err := c.AddFunc(schedule, d.DispatchPending)
	return err
}

// DispatchPending processes one batch of deliverable rows. Failed rows stay
// pending until they run out of attempts.
func (d *OutboxDispatcher) DispatchPending() {
	d.reclaimStaleSending()

	var rows []models.EmailOutbox
	err := d.db.Where("status = ? AND attempts < ?", models.OutboxStatusPending, outboxMaxAttempts).
		Order("created_at ASC").
		Limit(d.batchSize).
		Find(&rows).Error
	if err != nil {
		log.Printf("outbox: fetch pending failed: %v", err)
		return
	}

	for i := range rows {
		d.dispatchOne(&rows[i])
	}
}

// reclaimStaleSending returns rows orphaned mid-dispatch to the pending
// queue, or marks them failed when their attempts are spent. The claim
// already counted the attempt, so a reclaimed row costs nothing extra.
func (d *OutboxDispatcher) reclaimStaleSending() {
	cutoff := time.Now().Add(-outboxStaleSendingAfter)

	res := d.db.Model(&models.EmailOutbox{}).
		Where("status = ? AND updated_at < ? AND attempts < ?",
			models.OutboxStatusSending, cutoff, outboxMaxAttempts).
		Updates(map[string]interface{}{
			"status":     models.OutboxStatusPending,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		log.Printf("outbox: reclaim stale sending failed: %v", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("outbox: reclaimed %d stale sending rows", res.RowsAffected)
	}

	if err := d.db.Model(&models.EmailOutbox{}).
		Where("status = ? AND updated_at < ? AND attempts >= ?",
			models.OutboxStatusSending, cutoff, outboxMaxAttempts).
		Updates(map[string]interface{}{
			"status":     models.OutboxStatusFailed,
			"last_error": "orphaned in sending state",
			"updated_at": time.Now(),
		}).Error; err != nil {
		log.Printf("outbox: fail stale sending failed: %v", err)
	}
}

func (d *OutboxDispatcher) dispatchOne(row *models.EmailOutbox) {
	now := time.Now()

	// Claim the row; RowsAffected 0 means another pass already took it.
	claim := d.db.Model(&models.EmailOutbox{}).
		Where("outbox_id = ? AND status = ?", row.OutboxID, models.OutboxStatusPending).
		Updates(map[string]interface{}{
			"status":     models.OutboxStatusSending,
			"attempts":   gorm.Expr("attempts + 1"),
			"updated_at": now,
		})
	if claim.Error != nil {
		log.Printf("outbox: claim %d failed: %v", row.OutboxID, claim.Error)
		return
	}
	if claim.RowsAffected == 0 {
		return
	}

	sendErr := d.send([]string{row.Recipient}, row.Subject, row.Body)

	updates := map[string]interface{}{"updated_at": time.Now()}
	if sendErr == nil {
		updates["status"] = models.OutboxStatusSent
		updates["sent_at"] = time.Now()
	} else {
		msg := sendErr.Error()
		updates["last_error"] = msg
		if row.Attempts+1 >= outboxMaxAttempts {
			updates["status"] = models.OutboxStatusFailed
		} else {
			updates["status"] = models.OutboxStatusPending
		}
		log.Printf("outbox: send %d to %s failed: %v", row.OutboxID, row.Recipient, sendErr)
	}

	if err := d.db.Model(&models.EmailOutbox{}).
		Where("outbox_id = ?", row.OutboxID).
		Updates(updates).Error; err != nil {
		log.Printf("outbox: finalize %d failed: %v", row.OutboxID, err)
	}
}
