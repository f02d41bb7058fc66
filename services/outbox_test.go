package services

import (
	"database/sql/driver"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedSend struct {
	to      []string
	subject string
	body    string
}

type sendRecorder struct {
	sent []recordedSend
	err  error
}

func (r *sendRecorder) send(to []string, subject, html string) error {
	r.sent = append(r.sent, recordedSend{to: to, subject: subject, body: html})
	return r.err
}

func TestDispatchPendingReclaimsStaleThenDelivers(t *testing.T) {
	steps := []*scriptStep{
		{
			// Rows stuck in sending past the cutoff go back to pending
			// first, so a crashed tick never strands a notification.
			query:  regexp.MustCompile("UPDATE .email_outbox. SET .*attempts < \\?"),
			exec:   true,
			result: driver.RowsAffected(1),
		},
		{
			query:  regexp.MustCompile("UPDATE .email_outbox. SET .*attempts >= \\?"),
			exec:   true,
			result: driver.RowsAffected(0),
		},
		{
			query:   regexp.MustCompile(`SELECT \* FROM .email_outbox. WHERE status = \? AND attempts < \? ORDER BY created_at ASC LIMIT`),
			args:    []driver.Value{"pending", int64(5)},
			columns: []string{"outbox_id", "recipient", "subject", "body", "event_key", "status", "attempts"},
			rows: [][]driver.Value{
				{int64(12), "asha@example.com", "Registration payment verified", "<p>Verified</p>", "payment:12:verified", "pending", int64(1)},
			},
		},
		{
			query:  regexp.MustCompile("UPDATE .email_outbox. SET .attempts.=attempts \\+ 1"),
			exec:   true,
			result: driver.RowsAffected(1),
		},
		{
			query:  regexp.MustCompile("UPDATE .email_outbox. SET .*sent_at"),
			exec:   true,
			result: driver.RowsAffected(1),
		},
	}

	gormDB, script, cleanup := newScriptedDB(t, steps)
	defer cleanup()

	rec := &sendRecorder{}
	d := NewOutboxDispatcher(gormDB)
	d.send = rec.send

	d.DispatchPending()

	require.Len(t, rec.sent, 1)
	assert.Equal(t, []string{"asha@example.com"}, rec.sent[0].to)
	assert.Equal(t, "Registration payment verified", rec.sent[0].subject)

	require.NoError(t, script.verifyComplete())
}

func TestDispatchPendingSkipsRowClaimedElsewhere(t *testing.T) {
	steps := []*scriptStep{
		{
			query:  regexp.MustCompile("UPDATE .email_outbox. SET .*attempts < \\?"),
			exec:   true,
			result: driver.RowsAffected(0),
		},
		{
			query:  regexp.MustCompile("UPDATE .email_outbox. SET .*attempts >= \\?"),
			exec:   true,
			result: driver.RowsAffected(0),
		},
		{
			query:   regexp.MustCompile(`SELECT \* FROM .email_outbox. WHERE status = \? AND attempts < \?`),
			columns: []string{"outbox_id", "recipient", "subject", "body", "event_key", "status", "attempts"},
			rows: [][]driver.Value{
				{int64(3), "ravi@example.com", "Paper approved", "<p>Approved</p>", "paper:3:approved", "pending", int64(0)},
			},
		},
		{
			// Another pass won the claim: no send, no finalize.
			query:  regexp.MustCompile("UPDATE .email_outbox. SET .attempts.=attempts \\+ 1"),
			exec:   true,
			result: driver.RowsAffected(0),
		},
	}

	gormDB, script, cleanup := newScriptedDB(t, steps)
	defer cleanup()

	rec := &sendRecorder{}
	d := NewOutboxDispatcher(gormDB)
	d.send = rec.send

	d.DispatchPending()

	assert.Empty(t, rec.sent)
	require.NoError(t, script.verifyComplete())
}
