package services

import "strings"

// Intent is the classified category of an inbound patient message
type Intent string

const (
	IntentSummary               Intent = "summary"
	IntentProvideName           Intent = "provide_name"
	IntentSymptom               Intent = "symptom"
	IntentGreeting              Intent = "greeting"
	IntentConfirmBooking        Intent = "confirm_booking"
	IntentBookAppointment       Intent = "book_appointment"
	IntentCancelAppointment     Intent = "cancel_appointment"
	IntentRescheduleAppointment Intent = "reschedule_appointment"
	IntentMedicationReminder    Intent = "medication_reminder"
	IntentUnknown               Intent = "unknown"
)

// symptomKeywords trigger the symptom branch when present anywhere in the
// message. Substring matching is intentional ("sore" also catches "sores").
var symptomKeywords = []string{"headache", "fever", "cough", "pain", "stuffy", "sore throat", "chills", "sore"}

// greetingKeywords must match a whole whitespace-separated token, so that
// "hit" or "they" never read as greetings.
var greetingKeywords = []string{"hi", "hello", "hey"}

// ClassifyIntent maps a raw patient message to an Intent. The rule order
// is load-bearing: earlier rules win even when later keywords are also
// present ("book an appointment, my name is Bob" is provide_name).
func ClassifyIntent(userInput string) Intent {
	input := strings.ToLower(strings.TrimSpace(userInput))

	if strings.Contains(input, "summary") {
		return IntentSummary
	}

	// Prioritize name extraction over everything below
	if strings.Contains(input, "my name is") {
		return IntentProvideName
	}

	for _, keyword := range symptomKeywords {
		if strings.Contains(input, keyword) {
			return IntentSymptom
		}
	}

	tokens := strings.Fields(input)
	for _, word := range greetingKeywords {
		for _, token := range tokens {
			if token == word {
				return IntentGreeting
			}
		}
	}

	if strings.Contains(input, "confirm") || input == "yes" || input == "y" {
		return IntentConfirmBooking
	}

	if strings.Contains(input, "book") || strings.Contains(input, "appointment") {
		if strings.Contains(input, "cancel") {
			return IntentCancelAppointment
		} else if strings.Contains(input, "reschedule") {
			return IntentRescheduleAppointment
		}
		return IntentBookAppointment
	}

	if strings.Contains(input, "remind") || strings.Contains(input, "medication") {
		return IntentMedicationReminder
	}

	return IntentUnknown
}
