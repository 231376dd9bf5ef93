package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grace-hospital/grace-backend/internal/models"
)

func TestMemoryStore_CreateMedicationAssignsID(t *testing.T) {
	store := NewMemoryStore()

	first, err := store.CreateMedication(&models.Medication{Name: "Amoxicillin"})
	require.NoError(t, err)
	second, err := store.CreateMedication(&models.Medication{Name: "Aspirin"})
	require.NoError(t, err)

	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)

	meds, err := store.GetMedications()
	require.NoError(t, err)
	assert.Len(t, meds, 2)
}

func TestMemoryStore_GetTodaysMedications(t *testing.T) {
	store := NewMemoryStore()
	now := time.Now()

	// Started today, 7-day course: due
	_, err := store.CreateMedication(&models.Medication{
		Name: "Amoxicillin", StartDate: now, DurationDays: 7,
	})
	require.NoError(t, err)

	// Course ended yesterday: not due
	_, err = store.CreateMedication(&models.Medication{
		Name: "Ibuprofen", StartDate: now.AddDate(0, 0, -8), DurationDays: 7,
	})
	require.NoError(t, err)

	// Starts tomorrow: not due
	_, err = store.CreateMedication(&models.Medication{
		Name: "Atomoxetine", StartDate: now.AddDate(0, 0, 1), DurationDays: 30,
	})
	require.NoError(t, err)

	due, err := store.GetTodaysMedications(now)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "Amoxicillin", due[0].Name)
}

func TestMemoryStore_TodayWindowIsInclusive(t *testing.T) {
	store := NewMemoryStore()
	now := time.Now()

	// Last day of a 7-day course started 7 days ago: still due
	_, err := store.CreateMedication(&models.Medication{
		Name: "Amoxicillin", StartDate: now.AddDate(0, 0, -7), DurationDays: 7,
	})
	require.NoError(t, err)

	due, err := store.GetTodaysMedications(now)
	require.NoError(t, err)
	assert.Len(t, due, 1)
}

func TestMemoryStore_AppointmentLogAppends(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.CreateAppointmentLog(&models.AppointmentLog{
		UserInput: "feeling dizzy", Response: "Please rest.",
	})
	require.NoError(t, err)
	_, err = store.CreateAppointmentLog(&models.AppointmentLog{
		UserInput: "still dizzy", Response: "Consider an appointment.",
	})
	require.NoError(t, err)

	logs := store.GetAppointmentLogs()
	require.Len(t, logs, 2)
	assert.Equal(t, "feeling dizzy", logs[0].UserInput)
	assert.Equal(t, uint(2), logs[1].ID)
	assert.False(t, logs[1].CreatedAt.IsZero())
}
