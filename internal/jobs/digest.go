package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/offerme/offerme-backend/internal/services"
	"github.com/offerme/offerme-backend/internal/storage"
)

// digestSubject is the subject line of the daily lead summary email
const digestSubject = "ملخص العملاء المحتملين اليومي"

// DigestJob emails a daily summary of newly captured leads to the fixed
// recipient
type DigestJob struct {
	store     storage.Store
	mailer    services.Mailer
	isRunning bool
}

// NewDigestJob creates a new lead digest job scheduler
func NewDigestJob(store storage.Store, mailer services.Mailer) *DigestJob {
	return &DigestJob{
		store:  store,
		mailer: mailer,
	}
}

// Start begins the scheduled digest job
func (d *DigestJob) Start() {
	if d.isRunning {
		log.Println("Lead digest job already running")
		return
	}

	d.isRunning = true
	go d.scheduleDailyDigest()
	log.Println("Lead digest job started")
}

// Stop halts the scheduled job
func (d *DigestJob) Stop() {
	d.isRunning = false
	log.Println("Stopping lead digest job...")
}

// scheduleDailyDigest runs every day at 6 PM local time
func (d *DigestJob) scheduleDailyDigest() {
	for d.isRunning {
		now := time.Now()
		nextRun := time.Date(now.Year(), now.Month(), now.Day(), 18, 0, 0, 0, now.Location())
		if !nextRun.After(now) {
			nextRun = nextRun.Add(24 * time.Hour)
		}

		duration := nextRun.Sub(now)
		log.Printf("Next lead digest scheduled in %v", duration)
		time.Sleep(duration)

		if !d.isRunning {
			break
		}

		d.sendLeadDigest()
	}
}

// sendLeadDigest emails the leads captured in the last 24 hours. Nothing is
// sent when there are none.
func (d *DigestJob) sendLeadDigest() {
	leads, err := d.store.GetLeadsSince(time.Now().Add(-24 * time.Hour))
	if err != nil {
		log.Printf("Error getting leads for daily digest: %v", err)
		return
	}
	if len(leads) == 0 {
		log.Println("No new leads for daily digest")
		return
	}

	body := fmt.Sprintf("عدد العملاء المحتملين خلال آخر ٢٤ ساعة: %d\n", len(leads))
	for _, lead := range leads {
		body += fmt.Sprintf("\nرقم الزبون: %s\nرسالة:\n%s\n", lead.Sender, lead.Message)
	}

	if err := d.mailer.Send(digestSubject, body); err != nil {
		log.Printf("❌ Failed to send lead digest: %v", err)
		return
	}
	log.Printf("📧 Lead digest sent (%d leads)", len(leads))
}
