package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMedication_ActiveOn(t *testing.T) {
	start := time.Date(2025, 4, 1, 14, 30, 0, 0, time.UTC) // time of day must not matter
	med := &Medication{Name: "Amoxicillin", StartDate: start, DurationDays: 7}

	tests := []struct {
		name string
		day  time.Time
		want bool
	}{
		{"day before start", time.Date(2025, 3, 31, 23, 0, 0, 0, time.UTC), false},
		{"start day", time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), true},
		{"mid course", time.Date(2025, 4, 4, 9, 0, 0, 0, time.UTC), true},
		{"last day inclusive", time.Date(2025, 4, 8, 23, 59, 0, 0, time.UTC), true},
		{"day after end", time.Date(2025, 4, 9, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, med.ActiveOn(tt.day))
		})
	}
}

func TestMedication_ReminderLine(t *testing.T) {
	med := &Medication{Name: "Amoxicillin", Dosage: "500mg", TimesPerDay: 3}

	assert.Equal(t, "Take 500mg of Amoxicillin - 3 times today", med.ReminderLine())
}
