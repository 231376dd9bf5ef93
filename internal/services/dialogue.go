package services

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/grace-hospital/grace-backend/internal/models"
	"github.com/grace-hospital/grace-backend/internal/storage"
)

// confirmationPhrases implicitly confirm the first listed slot when any
// of them appears while slots are on offer, regardless of intent.
var confirmationPhrases = []string{"yes", "confirm", "book", "go ahead", "okay", "sure", "please do", "sounds good"}

var (
	nameRe = regexp.MustCompile(`(?i)my name is\s+([a-zA-Z]+)`)
	slotRe = regexp.MustCompile(`slot\s*(\d+)`)
)

// Dispatcher routes a classified message to its handling branch. All
// external capabilities are injected so tests can substitute doubles.
type Dispatcher struct {
	sessions *SessionStore
	llm      LLM
	calendar Calendar
	notifier Notifier
	store    storage.Store

	// Patient contact points for confirmations and reminders
	notifyEmail string
	notifyPhone string
}

// NewDispatcher creates a dialogue dispatcher
func NewDispatcher(sessions *SessionStore, llm LLM, cal Calendar, notifier Notifier, store storage.Store) *Dispatcher {
	return &Dispatcher{
		sessions: sessions,
		llm:      llm,
		calendar: cal,
		notifier: notifier,
		store:    store,
	}
}

// SetContact sets the email address and phone number that receive
// confirmations and reminders.
func (d *Dispatcher) SetContact(email, phone string) {
	d.notifyEmail = email
	d.notifyPhone = phone
}

// Handle processes one inbound message for a conversation and returns the
// reply text. The session is mutated in place.
func (d *Dispatcher) Handle(ctx context.Context, conversationID, userInput string) (string, error) {
	userInput = strings.TrimSpace(userInput)
	inputLower := strings.ToLower(userInput)
	session := d.sessions.Get(conversationID)

	// Implicit confirmation takes precedence over intent dispatch: any
	// confirmation phrase while slots are on offer books the first slot.
	if len(session.AvailableSlots) > 0 && containsAny(inputLower, confirmationPhrases) {
		return d.confirmSlot(session, session.AvailableSlots[0])
	}

	// An in-progress medication setup captures the turn: the details and
	// confirmation utterances would not classify as medication_reminder.
	if session.MedFlow.Active() {
		return d.handleMedicationFlow(session, userInput), nil
	}

	switch ClassifyIntent(userInput) {
	case IntentProvideName:
		return d.handleProvideName(session, userInput), nil

	case IntentGreeting:
		return d.handleGreeting(session), nil

	case IntentSymptom:
		return d.handleSymptoms(ctx, session, userInput)

	case IntentBookAppointment:
		return d.handleBooking(ctx, session, false)

	case IntentRescheduleAppointment:
		return d.handleBooking(ctx, session, true)

	case IntentConfirmBooking:
		return d.handleConfirmBooking(session, inputLower)

	case IntentCancelAppointment:
		session.LastTopic = "cancel_appointment"
		return CancelReply, nil

	case IntentMedicationReminder:
		return d.handleMedicationFlow(session, userInput), nil

	case IntentSummary:
		return d.handleSummary(session), nil

	default:
		return d.handleFallback(ctx, session, userInput)
	}
}

// handleProvideName extracts and stores the patient's name.
func (d *Dispatcher) handleProvideName(session *Session, userInput string) string {
	match := nameRe.FindStringSubmatch(userInput)
	if match == nil {
		return NameRepeatReply
	}

	session.Name = capitalizeName(match[1])
	session.LastTopic = "provide_name"
	return fmt.Sprintf("Nice to meet you, %s! How are you feeling today? Feel free to share any symptoms.", session.Name)
}

// handleGreeting greets the patient, using the stored name when known.
// The greeted flag flips true on the first greeting and stays set.
func (d *Dispatcher) handleGreeting(session *Session) string {
	firstGreeting := !session.Greeted
	session.Greeted = true
	session.LastTopic = "greeting"

	if session.Name == "" {
		return AskNameReply
	}
	if firstGreeting {
		return fmt.Sprintf("Hello, %s! How can I assist you today?", session.Name)
	}
	return fmt.Sprintf("Hello again, %s! How can I assist you today?", session.Name)
}

// handleSymptoms delegates the symptom report to the LLM. The symptoms
// list is deliberately left untouched here; only the fallback branch
// harvests tokens.
func (d *Dispatcher) handleSymptoms(ctx context.Context, session *Session, userInput string) (string, error) {
	session.LastTopic = "symptom"
	prompt := "You are Grace, a compassionate virtual nurse for Grace Hospital. " +
		"A patient reports the following symptoms: '" + userInput + "'. " +
		"Provide an empathetic response that acknowledges the symptoms and offers guidance. " +
		"Also, ask if the patient would like to schedule an appointment if their condition worsens."
	return d.llm.Complete(ctx, GraceSystemPrompt, prompt)
}

// handleBooking fetches open slots and offers them. Reschedule uses the
// same slot listing with different wording.
func (d *Dispatcher) handleBooking(ctx context.Context, session *Session, reschedule bool) (string, error) {
	slots, err := d.calendar.ListAvailableSlots(ctx)
	if err != nil {
		return "", err
	}

	session.AvailableSlots = slots
	if reschedule {
		session.LastTopic = "reschedule_appointment"
	} else {
		session.LastTopic = "book_appointment"
	}

	if len(slots) == 0 {
		return NoSlotsReply, nil
	}

	if reschedule {
		return "Here are your available slots for rescheduling:\n" + strings.Join(slots, "\n") +
			"\nPlease type 'confirm' (or a similar phrase) followed by the desired slot number to reschedule your appointment.", nil
	}
	return "Here are some available slots:\n" + strings.Join(slots, "\n") +
		"\nPlease type 'confirm' (or a similar phrase) to book the first available slot.", nil
}

// handleConfirmBooking resolves an optional "slot N" reference and
// confirms the chosen slot.
func (d *Dispatcher) handleConfirmBooking(session *Session, inputLower string) (string, error) {
	slotIndex := 0
	if match := slotRe.FindStringSubmatch(inputLower); match != nil {
		n, err := strconv.Atoi(match[1])
		if err == nil {
			slotIndex = n - 1
		}
	}

	if len(session.AvailableSlots) == 0 || slotIndex < 0 || slotIndex >= len(session.AvailableSlots) {
		return SlotNotFoundReply, nil
	}

	return d.confirmSlot(session, session.AvailableSlots[slotIndex])
}

// confirmSlot books the slot text: email and SMS confirmations go out,
// and the session remembers the appointment. Email failures propagate;
// SMS failures are logged and do not alter the reply.
func (d *Dispatcher) confirmSlot(session *Session, slotText string) (string, error) {
	startTime, doctor := splitSlot(slotText)

	eventLink := "https://calendar.google.com"
	emailBody := fmt.Sprintf("Your appointment with %s is confirmed for %s.\nView it here: %s", doctor, startTime, eventLink)
	if err := d.notifier.SendEmail(d.notifyEmail, "Grace Appointment Confirmation", emailBody); err != nil {
		return "", err
	}

	if err := d.notifier.SendSMS(d.notifyPhone, fmt.Sprintf("Confirmed: %s at %s", doctor, startTime)); err != nil {
		log.Printf("SMS confirmation failed (continuing): %v", err)
	}

	session.LastAppointment = slotText
	session.LastTopic = "booking_confirmed"

	return fmt.Sprintf("Your appointment with %s is confirmed! Reminders sent.", doctor), nil
}

// handleSummary reports whatever the session knows so far.
func (d *Dispatcher) handleSummary(session *Session) string {
	lines := []string{}
	if session.Name != "" {
		lines = append(lines, fmt.Sprintf("Patient's name: %s", session.Name))
	}
	if len(session.Symptoms) > 0 {
		lines = append(lines, fmt.Sprintf("Symptoms mentioned: %s", strings.Join(session.Symptoms, ", ")))
	}
	if session.LastAppointment != "" {
		lines = append(lines, fmt.Sprintf("Last appointment: %s", session.LastAppointment))
	}

	if len(lines) == 0 {
		return NoSummaryReply
	}
	return "Here is your summary:\n" + strings.Join(lines, "\n")
}

// handleFallback opportunistically re-extracts a name, harvests every
// token as a possible symptom, asks the LLM for advice with full context,
// and appends the exchange to the audit log.
func (d *Dispatcher) handleFallback(ctx context.Context, session *Session, userInput string) (string, error) {
	inputLower := strings.ToLower(userInput)
	parts := strings.Fields(userInput)

	if strings.Contains(inputLower, "my name is") || strings.Contains(inputLower, "i'm") || strings.Contains(inputLower, "i am") {
		for i, word := range parts {
			switch strings.ToLower(word) {
			case "is", "i'm", "i", "am":
				if i+1 < len(parts) {
					session.Name = capitalizeName(parts[i+1])
				}
			}
		}
	}

	// Crude keyword harvest: every token counts as a possible symptom.
	for _, word := range parts {
		session.AddSymptom(word)
	}

	namePart := ""
	if session.Name != "" {
		namePart = fmt.Sprintf("Patient's name is %s.\n", session.Name)
	}
	symptomPart := ""
	if len(session.Symptoms) > 0 {
		symptomPart = fmt.Sprintf("Recent symptoms mentioned: %s\n", strings.Join(session.Symptoms, ", "))
	}
	prompt := fmt.Sprintf(
		"%s%sThe patient says: '%s'.\nHere are upcoming available appointment slots:\n%s\n\nProvide empathetic healthcare advice. Suggest a slot if appropriate. Use the patient's name if known.",
		namePart, symptomPart, userInput, strings.Join(session.AvailableSlots, "\n"))

	response, err := d.llm.Complete(ctx, GraceSystemPrompt, prompt)
	if err != nil {
		return "", err
	}

	if _, err := d.store.CreateAppointmentLog(&models.AppointmentLog{UserInput: userInput, Response: response}); err != nil {
		log.Printf("Failed to write audit log entry: %v", err)
	}

	return response, nil
}

// splitSlot separates "time with doctor" slot text. Malformed text keeps
// the whole string as the time and falls back to a generic doctor label.
func splitSlot(slotText string) (startTime, doctor string) {
	parts := strings.SplitN(slotText, " with ", 2)
	if len(parts) < 2 {
		return slotText, "your doctor"
	}
	return parts[0], parts[1]
}

// capitalizeName normalizes a name token: first letter upper, rest lower.
func capitalizeName(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func containsAny(s string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(s, phrase) {
			return true
		}
	}
	return false
}
