package jobs

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/grace-hospital/grace-backend/internal/services"
	"github.com/grace-hospital/grace-backend/internal/storage"
)

// Daily reminder times (local clock).
const (
	morningHour = 8  // 08:00 medication broadcast
	eveningHour = 21 // 21:00 evening nudge
)

// ReminderJob sends the fixed-time daily medication reminders. It shares
// no state with request handling beyond the persistent store.
type ReminderJob struct {
	store     storage.Store
	notifier  services.Notifier
	isRunning bool
}

// NewReminderJob creates a reminder job scheduler
func NewReminderJob(store storage.Store, notifier services.Notifier) *ReminderJob {
	return &ReminderJob{
		store:    store,
		notifier: notifier,
	}
}

// Start begins the scheduled reminder jobs
func (r *ReminderJob) Start() {
	if r.isRunning {
		log.Println("Reminder jobs already running")
		return
	}

	r.isRunning = true
	log.Println("Starting scheduled reminder jobs...")

	go r.scheduleDaily(morningHour, r.sendMorningReminders)
	go r.scheduleDaily(eveningHour, r.sendEveningReminder)

	log.Println("All reminder jobs started successfully")
}

// Stop halts the scheduled jobs after their current sleep ends
func (r *ReminderJob) Stop() {
	r.isRunning = false
	log.Println("Stopping scheduled reminder jobs...")
}

// scheduleDaily runs fn every day at the given hour
func (r *ReminderJob) scheduleDaily(hour int, fn func()) {
	for r.isRunning {
		now := time.Now()
		nextRun := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
		if !nextRun.After(now) {
			nextRun = nextRun.AddDate(0, 0, 1)
		}

		duration := nextRun.Sub(now)
		log.Printf("Next %02d:00 reminder scheduled in %v", hour, duration)
		time.Sleep(duration)

		if !r.isRunning {
			break
		}

		fn()
	}
}

// sendMorningReminders broadcasts today's due medications by email, SMS
// and voice.
func (r *ReminderJob) sendMorningReminders() {
	log.Println("Sending morning medication reminders...")

	meds, err := r.store.GetTodaysMedications(time.Now())
	if err != nil {
		log.Printf("Error loading today's medications: %v", err)
		return
	}
	if len(meds) == 0 {
		log.Println("No medications due today")
		return
	}

	lines := make([]string, 0, len(meds))
	for _, med := range meds {
		lines = append(lines, med.ReminderLine())
	}
	msg := "Grace Medication Reminder:\n\n" + strings.Join(lines, "\n")

	r.broadcast("Your Daily Medication Reminder", msg)
	log.Printf("Morning reminders sent for %d medication(s)", len(meds))
}

// sendEveningReminder sends the fixed evening nudge.
func (r *ReminderJob) sendEveningReminder() {
	log.Println("Sending evening medication reminder...")

	msg := "Don't forget to take your evening medication."
	r.broadcast("Evening Pill Reminder", msg)
}

// broadcast delivers a reminder over every channel, logging failures
// without aborting the remaining channels.
func (r *ReminderJob) broadcast(subject, msg string) {
	emailTo := os.Getenv("NOTIFY_EMAIL_TO")
	smsTo := os.Getenv("NOTIFY_SMS_TO")

	if emailTo != "" {
		if err := r.notifier.SendEmail(emailTo, subject, msg); err != nil {
			log.Printf("Failed to email reminder: %v", err)
		}
	}
	if smsTo != "" {
		if err := r.notifier.SendSMS(smsTo, msg); err != nil {
			log.Printf("Failed to SMS reminder: %v", err)
		}
	}
	if err := r.notifier.Speak(msg); err != nil {
		log.Printf("Failed to speak reminder: %v", err)
	}
}
