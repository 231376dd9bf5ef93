package models

import "gorm.io/gorm"

// AppointmentLog is an append-only audit record of a fallback exchange:
// the raw patient message and the generated response. The chat service
// only ever writes these; nothing reads them back.
type AppointmentLog struct {
	gorm.Model
	UserInput string `json:"user_input"`
	Response  string `json:"response"`
}
