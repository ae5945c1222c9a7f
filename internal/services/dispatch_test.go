package services

import (
	"strings"
	"testing"
	"time"

	"github.com/medilinkhq/telehealth-backend/internal/queue"
)

func newCaptureEmailQueue() (*queue.Queue[EmailJob], chan EmailJob) {
	captured := make(chan EmailJob, 8)
	q := queue.New("emails", func(job EmailJob) error {
		captured <- job
		return nil
	})
	q.Start(5 * time.Millisecond)
	return q, captured
}

func receiveEmail(t *testing.T, ch chan EmailJob) EmailJob {
	t.Helper()
	select {
	case job := <-ch:
		return job
	case <-time.After(time.Second):
		t.Fatal("no email queued within 1s")
		return EmailJob{}
	}
}

func TestPasswordResetIssuedQueuesEmail(t *testing.T) {
	q, captured := newCaptureEmailQueue()
	defer q.Stop()
	d := NewDispatcher(nil, nil, q)

	d.PasswordResetIssued("ada@example.com", "reset-token-123")

	job := receiveEmail(t, captured)
	if job.To != "ada@example.com" {
		t.Errorf("To = %q, want ada@example.com", job.To)
	}
	if !strings.Contains(job.Body, "reset-token-123") {
		t.Errorf("Body %q missing the reset token", job.Body)
	}
}

func TestOTPIssuedQueuesEmail(t *testing.T) {
	q, captured := newCaptureEmailQueue()
	defer q.Stop()
	d := NewDispatcher(nil, nil, q)

	d.OTPIssued("ada@example.com", "482913")

	job := receiveEmail(t, captured)
	if job.To != "ada@example.com" {
		t.Errorf("To = %q, want ada@example.com", job.To)
	}
	if !strings.Contains(job.Body, "482913") {
		t.Errorf("Body %q missing the code", job.Body)
	}
}

func TestDispatcherWithoutQueuesIsNoop(t *testing.T) {
	var d *Dispatcher
	d.PasswordResetIssued("ada@example.com", "token")
	d.OTPIssued("ada@example.com", "123456")

	empty := NewDispatcher(nil, nil, nil)
	empty.PasswordResetIssued("ada@example.com", "token")
	empty.OTPIssued("ada@example.com", "123456")
}
