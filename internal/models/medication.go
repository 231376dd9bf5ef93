package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Medication is a patient's medication reminder entry.
// Entries are written once when the chat flow is confirmed and never
// updated or deleted; whether a medication is due is computed from the
// start date and duration at read time.
type Medication struct {
	gorm.Model
	Name         string    `json:"name"`
	Dosage       string    `json:"dosage"`
	TimesPerDay  int       `json:"times_per_day"`
	StartDate    time.Time `json:"start_date"`
	DurationDays int       `json:"duration_days"`
	Notes        string    `json:"notes"` // raw schedule text as entered by the patient
}

// ActiveOn reports whether the medication course covers the given day.
// The window is inclusive on both ends: start <= day <= start + duration.
func (m *Medication) ActiveOn(day time.Time) bool {
	start := truncateToDay(m.StartDate)
	end := start.AddDate(0, 0, m.DurationDays)
	d := truncateToDay(day)
	return !d.Before(start) && !d.After(end)
}

// ReminderLine formats the medication for the daily reminder broadcast.
func (m *Medication) ReminderLine() string {
	return fmt.Sprintf("Take %s of %s - %d times today", m.Dosage, m.Name, m.TimesPerDay)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
