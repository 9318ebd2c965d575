package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment statuses. Completed and cancelled are terminal: once an
// appointment reaches either, no further transition is permitted.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether status names one of the four lifecycle states.
func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// TerminalStatus reports whether status permits no further transitions.
func TerminalStatus(status string) bool {
	return status == StatusCompleted || status == StatusCancelled
}

// Appointment records a booking between a patient and a provider. Both emails
// are denormalized for display. Appointments are never physically deleted,
// only marked cancelled.
//
// The partial unique index closes the duplicate-booking race: only one
// non-cancelled appointment may exist per (patient, provider, timestamp).
type Appointment struct {
	ID              string    `gorm:"primaryKey;column:id" json:"id"`
	PatientID       string    `gorm:"size:64;not null;index;uniqueIndex:idx_booking_slot;column:patient_id" json:"patient_id"`
	ProviderID      string    `gorm:"size:64;not null;index;uniqueIndex:idx_booking_slot;column:provider_id" json:"provider_id"`
	AppointmentDate time.Time `gorm:"not null;index;uniqueIndex:idx_booking_slot,where:status <> 'cancelled';column:appointment_date" json:"appointment_date"`
	Reason          string    `gorm:"type:text;column:reason" json:"reason"`
	Status          string    `gorm:"size:20;not null;default:'pending';check:status IN ('pending', 'confirmed', 'completed', 'cancelled');index;column:status" json:"status"`
	Notes           string    `gorm:"type:text;column:notes" json:"notes"`
	PatientEmail    string    `gorm:"size:255;column:patient_email" json:"patient_email"`
	ProviderEmail   string    `gorm:"size:255;column:provider_email" json:"provider_email"`
	CreatedAt       time.Time `gorm:"autoCreateTime;index;column:created_at" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// BeforeCreate assigns a UUID primary key when none was supplied.
func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

// Open reports whether the appointment still occupies the provider's
// schedule (pending or confirmed).
func (a *Appointment) Open() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}
