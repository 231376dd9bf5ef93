package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyIntent_RuleOrder(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Intent
	}{
		{"summary wins first", "give me a summary", IntentSummary},
		{"summary beats name", "summary please, my name is Bob", IntentSummary},
		{"name extraction", "my name is Alice", IntentProvideName},
		{"name beats booking", "book an appointment, my name is Bob", IntentProvideName},
		{"symptom keyword", "I have a fever", IntentSymptom},
		{"symptom substring", "my throat is sore today", IntentSymptom},
		{"symptom beats greeting", "hi, I have a headache", IntentSymptom},
		{"greeting hi", "hi", IntentGreeting},
		{"greeting hello mid-sentence", "well hello there", IntentGreeting},
		{"greeting hey uppercase", "HEY", IntentGreeting},
		{"confirm word", "confirm slot 2", IntentConfirmBooking},
		{"bare yes", "yes", IntentConfirmBooking},
		{"bare y", "y", IntentConfirmBooking},
		{"book appointment", "I want to book an appointment", IntentBookAppointment},
		{"appointment only", "appointment please", IntentBookAppointment},
		{"cancel appointment", "cancel my appointment", IntentCancelAppointment},
		{"reschedule appointment", "reschedule my appointment", IntentRescheduleAppointment},
		{"medication", "I need a medication reminder", IntentMedicationReminder},
		{"remind", "remind me about my pills", IntentMedicationReminder},
		{"unknown", "what's the weather like", IntentUnknown},
		{"empty", "", IntentUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyIntent(tt.input))
		})
	}
}

func TestClassifyIntent_GreetingIsWholeToken(t *testing.T) {
	// "hit" contains "hi" but must not read as a greeting
	assert.Equal(t, IntentUnknown, ClassifyIntent("that was a hit"))
	assert.Equal(t, IntentGreeting, ClassifyIntent("hi there"))
}

func TestClassifyIntent_NameBeatsEverySymptom(t *testing.T) {
	for _, keyword := range symptomKeywords {
		input := "my name is Bob and I have a " + keyword
		assert.Equal(t, IntentProvideName, ClassifyIntent(input), "keyword %q", keyword)
	}
}

func TestClassifyIntent_TrimsAndLowercases(t *testing.T) {
	assert.Equal(t, IntentConfirmBooking, ClassifyIntent("  YES  "))
	assert.Equal(t, IntentProvideName, ClassifyIntent("MY NAME IS BOB"))
}
