package storage

import (
	"time"

	"gorm.io/gorm"

	"github.com/grace-hospital/grace-backend/internal/models"
)

// DatabaseStore persists data in PostgreSQL via GORM
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore creates a database-backed store
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

// Medication operations
func (d *DatabaseStore) CreateMedication(med *models.Medication) (*models.Medication, error) {
	if err := d.db.Create(med).Error; err != nil {
		return nil, err
	}
	return med, nil
}

func (d *DatabaseStore) GetMedications() ([]*models.Medication, error) {
	var meds []*models.Medication
	if err := d.db.Find(&meds).Error; err != nil {
		return nil, err
	}
	return meds, nil
}

// GetTodaysMedications returns medications whose course covers the given
// day. The window check lives in the model so memory and database stores
// agree on the inclusive boundaries.
func (d *DatabaseStore) GetTodaysMedications(now time.Time) ([]*models.Medication, error) {
	meds, err := d.GetMedications()
	if err != nil {
		return nil, err
	}

	due := []*models.Medication{}
	for _, med := range meds {
		if med.ActiveOn(now) {
			due = append(due, med)
		}
	}
	return due, nil
}

// Audit log operations
func (d *DatabaseStore) CreateAppointmentLog(entry *models.AppointmentLog) (*models.AppointmentLog, error) {
	if err := d.db.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}
