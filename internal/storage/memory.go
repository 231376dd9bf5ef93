package storage

import (
	"sync"
	"time"

	"github.com/grace-hospital/grace-backend/internal/models"
)

// MemoryStore holds all data in memory for testing and local development
type MemoryStore struct {
	medications []*models.Medication
	logs        []*models.AppointmentLog

	medMu sync.RWMutex
	logMu sync.RWMutex

	// Counters for ID generation
	medCounter uint
	logCounter uint
}

// NewMemoryStore creates a new in-memory storage
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Medication operations
func (m *MemoryStore) CreateMedication(med *models.Medication) (*models.Medication, error) {
	m.medMu.Lock()
	defer m.medMu.Unlock()

	m.medCounter++
	med.ID = m.medCounter
	med.CreatedAt = time.Now()
	med.UpdatedAt = time.Now()

	m.medications = append(m.medications, med)
	return med, nil
}

func (m *MemoryStore) GetMedications() ([]*models.Medication, error) {
	m.medMu.RLock()
	defer m.medMu.RUnlock()

	meds := make([]*models.Medication, len(m.medications))
	copy(meds, m.medications)
	return meds, nil
}

func (m *MemoryStore) GetTodaysMedications(now time.Time) ([]*models.Medication, error) {
	m.medMu.RLock()
	defer m.medMu.RUnlock()

	due := []*models.Medication{}
	for _, med := range m.medications {
		if med.ActiveOn(now) {
			due = append(due, med)
		}
	}
	return due, nil
}

// Audit log operations
func (m *MemoryStore) CreateAppointmentLog(entry *models.AppointmentLog) (*models.AppointmentLog, error) {
	m.logMu.Lock()
	defer m.logMu.Unlock()

	m.logCounter++
	entry.ID = m.logCounter
	entry.CreatedAt = time.Now()

	m.logs = append(m.logs, entry)
	return entry, nil
}

// GetAppointmentLogs returns all audit entries (used by tests only; the
// chat service never reads the log back)
func (m *MemoryStore) GetAppointmentLogs() []*models.AppointmentLog {
	m.logMu.RLock()
	defer m.logMu.RUnlock()

	logs := make([]*models.AppointmentLog, len(m.logs))
	copy(logs, m.logs)
	return logs
}
