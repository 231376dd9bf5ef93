package storage

import (
	"time"

	"github.com/grace-hospital/grace-backend/internal/models"
)

var storeInstance Store

// SetStore sets the global store instance (call from main.go)
func SetStore(s Store) {
	storeInstance = s
}

// GetStore returns the global store instance
func GetStore() Store {
	return storeInstance
}

// Store defines the interface for storage operations
type Store interface {
	// Medication operations
	CreateMedication(med *models.Medication) (*models.Medication, error)
	GetMedications() ([]*models.Medication, error)
	GetTodaysMedications(now time.Time) ([]*models.Medication, error)

	// Audit log operations (append-only)
	CreateAppointmentLog(entry *models.AppointmentLog) (*models.AppointmentLog, error)
}
