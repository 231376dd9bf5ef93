package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// slotLabelLayout is the human-readable form shown to patients, e.g.
// "Tuesday, April 01, 2025 at 09:00 AM". Doctor names are appended by the
// caller with a literal " with " separator.
const slotLabelLayout = "Monday, January 02, 2006 at 03:04 PM"

// Working-hours window offered for appointments.
const (
	workingHoursStart = 9
	workingHoursEnd   = 17
	slotMinutes       = 30
)

// Calendar lists open appointment slots and books them.
type Calendar interface {
	ListAvailableSlots(ctx context.Context) ([]string, error)
	BookSlot(ctx context.Context, doctor, date, timeStr string) (string, error)
}

// GoogleCalendar serves slots from a Google Calendar via a service account.
type GoogleCalendar struct {
	service    *calendar.Service
	calendarID string
	doctorName string
}

// NewGoogleCalendar builds a Google Calendar client from the service
// account file named in GOOGLE_CREDENTIALS_FILE.
func NewGoogleCalendar(ctx context.Context) (*GoogleCalendar, error) {
	credsFile := os.Getenv("GOOGLE_CREDENTIALS_FILE")
	if credsFile == "" {
		credsFile = "credentials.json"
	}

	svc, err := calendar.NewService(ctx,
		option.WithCredentialsFile(credsFile),
		option.WithScopes(calendar.CalendarScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build calendar service: %w", err)
	}

	calendarID := os.Getenv("GOOGLE_CALENDAR_ID")
	if calendarID == "" {
		calendarID = "primary"
	}

	doctorName := os.Getenv("DEFAULT_DOCTOR_NAME")
	if doctorName == "" {
		doctorName = "Dr. Smith"
	}

	return &GoogleCalendar{
		service:    svc,
		calendarID: calendarID,
		doctorName: doctorName,
	}, nil
}

// ListAvailableSlots builds the 09:00-17:00 grid of 30-minute slots for
// today, removes any that collide with booked calendar events, and labels
// each remaining slot with the default doctor.
func (g *GoogleCalendar) ListAvailableSlots(ctx context.Context) ([]string, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), workingHoursStart, 0, 0, 0, now.Location())
	endOfDay := time.Date(now.Year(), now.Month(), now.Day(), workingHoursEnd, 0, 0, 0, now.Location())

	potential := []string{}
	for t := startOfDay; t.Before(endOfDay); t = t.Add(slotMinutes * time.Minute) {
		potential = append(potential, t.Format(slotLabelLayout))
	}

	events, err := g.service.Events.List(g.calendarID).
		TimeMin(now.UTC().Format(time.RFC3339)).
		MaxResults(10).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	booked := map[string]bool{}
	for _, event := range events.Items {
		if event.Start == nil || event.Start.DateTime == "" {
			continue // all-day events don't block slots
		}
		start, err := time.Parse(time.RFC3339, event.Start.DateTime)
		if err != nil {
			log.Printf("Skipping calendar event with bad start time: %v", err)
			continue
		}
		booked[start.Local().Format(slotLabelLayout)] = true
	}

	slots := []string{}
	for _, label := range potential {
		if !booked[label] {
			slots = append(slots, fmt.Sprintf("%s with %s", label, g.doctorName))
		}
	}
	return slots, nil
}

// BookSlot inserts a 30-minute appointment event into the calendar.
// date is "2006-01-02" and timeStr is "15:04".
func (g *GoogleCalendar) BookSlot(ctx context.Context, doctor, date, timeStr string) (string, error) {
	start, err := time.Parse("2006-01-02 15:04", date+" "+timeStr)
	if err != nil {
		return "", fmt.Errorf("invalid slot time %q %q: %w", date, timeStr, err)
	}
	end := start.Add(slotMinutes * time.Minute)

	event := &calendar.Event{
		Summary: fmt.Sprintf("Appointment with %s", doctor),
		Start:   &calendar.EventDateTime{DateTime: start.Format(time.RFC3339), TimeZone: "UTC"},
		End:     &calendar.EventDateTime{DateTime: end.Format(time.RFC3339), TimeZone: "UTC"},
	}

	if _, err := g.service.Events.Insert(g.calendarID, event).Context(ctx).Do(); err != nil {
		return "", fmt.Errorf("failed to insert calendar event: %w", err)
	}

	return fmt.Sprintf("Appointment booked with %s on %s at %s.", doctor, date, timeStr), nil
}
