package services

import (
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/grace-hospital/grace-backend/internal/models"
)

// Fixed defaults committed with every reminder; the flow never asks the
// patient for these.
const (
	defaultTimesPerDay  = 1
	defaultDurationDays = 30
	defaultReminderTime = "08:00 AM"
)

var medTimeRe = regexp.MustCompile(`\d{1,2}:\d{2}\s*[APap][Mm]`)

// affirmativeWords accept the staged medication details.
var affirmativeWords = []string{"yes", "confirm", "correct"}

// handleMedicationFlow advances the medication setup state machine by one
// turn and returns the reply. States: none -> ask_details -> confirm ->
// none (on commit or decline).
func (d *Dispatcher) handleMedicationFlow(session *Session, userInput string) string {
	session.LastTopic = "medication_reminder"

	switch session.MedFlow.Step {
	case MedStepNone:
		session.MedFlow = MedFlow{Step: MedStepAskDetails}
		return MedDetailsPrompt

	case MedStepAskDetails:
		parts := strings.Split(userInput, ",")
		if len(parts) < 2 {
			return MedDetailsRetryPrompt
		}
		session.MedFlow.MedicationInfo = strings.TrimSpace(parts[0])
		session.MedFlow.ScheduleInfo = strings.TrimSpace(parts[1])
		session.MedFlow.Step = MedStepConfirm
		return fmt.Sprintf("Okay, you've entered: '%s' and '%s'. Should I set up the reminder with these details?",
			session.MedFlow.MedicationInfo, session.MedFlow.ScheduleInfo)

	case MedStepConfirm:
		if !containsAny(strings.ToLower(userInput), affirmativeWords) {
			session.ResetMedFlow()
			return MedRestartReply
		}
		return d.commitMedication(session)

	default:
		session.ResetMedFlow()
		return "I'm sorry, something went wrong with the medication setup. Let's start over. What medication reminder would you like to set up?"
	}
}

// commitMedication parses the staged details, persists the entry, and
// clears the flow state.
func (d *Dispatcher) commitMedication(session *Session) string {
	medParts := strings.Fields(session.MedFlow.MedicationInfo)
	name := ""
	if len(medParts) > 0 {
		name = medParts[0]
	}
	dosage := ""
	if len(medParts) > 1 {
		dosage = medParts[1]
	}

	timeStr := defaultReminderTime
	if match := medTimeRe.FindString(session.MedFlow.ScheduleInfo); match != "" {
		timeStr = match
	}

	med := &models.Medication{
		Name:         name,
		Dosage:       dosage,
		TimesPerDay:  defaultTimesPerDay,
		StartDate:    time.Now(),
		DurationDays: defaultDurationDays,
		Notes:        session.MedFlow.ScheduleInfo,
	}
	if _, err := d.store.CreateMedication(med); err != nil {
		log.Printf("Failed to save medication reminder: %v", err)
		session.ResetMedFlow()
		return "I couldn't save that reminder. Could we try setting it up again?"
	}

	session.ResetMedFlow()
	return fmt.Sprintf("All set! I'll remind you to take %s at %s every day.", name, timeStr)
}
