package services

import (
	"log"
	"sync"
	"time"
)

// MedFlowStep identifies where a medication-reminder setup stands.
// MedStepNone means no setup is in progress.
type MedFlowStep string

const (
	MedStepNone       MedFlowStep = ""
	MedStepAskDetails MedFlowStep = "ask_details"
	MedStepConfirm    MedFlowStep = "confirm"
)

// MedFlow holds the staged details of an in-progress medication setup.
type MedFlow struct {
	Step           MedFlowStep `json:"step"`
	MedicationInfo string      `json:"medication_info"`
	ScheduleInfo   string      `json:"schedule_info"`
}

// Active reports whether a medication setup is in progress.
func (f MedFlow) Active() bool {
	return f.Step != MedStepNone
}

// Session holds the conversational memory for one patient conversation
type Session struct {
	ConversationID  string    `json:"conversation_id"`
	Name            string    `json:"name"`
	Symptoms        []string  `json:"symptoms"`
	LastTopic       string    `json:"last_topic"`
	LastAppointment string    `json:"last_appointment"`
	AvailableSlots  []string  `json:"available_slots"`
	Greeted         bool      `json:"greeted"`
	MedFlow         MedFlow   `json:"med_flow"`
	CreatedAt       time.Time `json:"created_at"`
	LastActive      time.Time `json:"last_active"`
}

// AddSymptom appends a symptom token, suppressing duplicates.
func (s *Session) AddSymptom(word string) {
	for _, existing := range s.Symptoms {
		if existing == word {
			return
		}
	}
	s.Symptoms = append(s.Symptoms, word)
}

// ResetMedFlow returns the session to the no-flow-active state.
func (s *Session) ResetMedFlow() {
	s.MedFlow = MedFlow{}
}

// SessionStore manages per-conversation sessions
type SessionStore struct {
	sessions map[string]*Session
	mu       sync.RWMutex
}

// NewSessionStore creates a new session store
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
	}
}

// Get returns the session for a conversation, materializing a fresh one
// with default fields on first access. A session therefore always exists
// for every referenced conversation ID.
func (ss *SessionStore) Get(conversationID string) *Session {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	session, exists := ss.sessions[conversationID]
	if !exists {
		session = &Session{
			ConversationID: conversationID,
			Symptoms:       []string{},
			AvailableSlots: []string{},
			CreatedAt:      time.Now(),
		}
		ss.sessions[conversationID] = session
		log.Printf("Session created for conversation %s", conversationID)
	}

	session.LastActive = time.Now()
	return session
}

// Count returns the number of live sessions (for monitoring)
func (ss *SessionStore) Count() int {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	return len(ss.sessions)
}
