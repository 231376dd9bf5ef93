package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionStore_MaterializesOnFirstAccess(t *testing.T) {
	store := NewSessionStore()

	session := store.Get("patient-1")
	assert.NotNil(t, session)
	assert.Equal(t, "patient-1", session.ConversationID)
	assert.Empty(t, session.Name)
	assert.Empty(t, session.Symptoms)
	assert.Empty(t, session.AvailableSlots)
	assert.False(t, session.Greeted)
	assert.False(t, session.MedFlow.Active())
	assert.Equal(t, 1, store.Count())
}

func TestSessionStore_ReturnsSameSession(t *testing.T) {
	store := NewSessionStore()

	first := store.Get("patient-1")
	first.Name = "Alice"

	again := store.Get("patient-1")
	assert.Same(t, first, again)
	assert.Equal(t, "Alice", again.Name)
	assert.Equal(t, 1, store.Count())
}

func TestSessionStore_IsolatesConversations(t *testing.T) {
	store := NewSessionStore()

	store.Get("patient-1").Name = "Alice"
	other := store.Get("patient-2")

	assert.Empty(t, other.Name)
	assert.Equal(t, 2, store.Count())
}

func TestSession_AddSymptomDeduplicates(t *testing.T) {
	session := &Session{}

	session.AddSymptom("fever")
	session.AddSymptom("cough")
	session.AddSymptom("fever")

	assert.Equal(t, []string{"fever", "cough"}, session.Symptoms)
}

func TestSession_ResetMedFlow(t *testing.T) {
	session := &Session{MedFlow: MedFlow{
		Step:           MedStepConfirm,
		MedicationInfo: "Atomoxetine 80 mgs",
		ScheduleInfo:   "1 tablet at 8:00 AM every day",
	}}

	session.ResetMedFlow()

	assert.False(t, session.MedFlow.Active())
	assert.Empty(t, session.MedFlow.MedicationInfo)
	assert.Empty(t, session.MedFlow.ScheduleInfo)
}
