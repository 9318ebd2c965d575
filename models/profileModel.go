package models

import (
	"time"

	"gorm.io/datatypes"
)

// PatientProfile holds the document-style health record for a patient,
// created alongside the user at registration. Map-valued fields are stored
// as JSONB.
type PatientProfile struct {
	ID             int64                        `gorm:"primaryKey;autoIncrement;column:id" json:"-"`
	UserID         string                       `gorm:"size:64;not null;unique;index;column:user_id" json:"user_id"`
	WellnessGoals  datatypes.JSONMap            `gorm:"column:wellness_goals" json:"wellness_goals"`
	HealthData     datatypes.JSONMap            `gorm:"column:health_data" json:"health_data"`
	MedicalHistory datatypes.JSONSlice[string]  `gorm:"column:medical_history" json:"medical_history"`
	Allergies      datatypes.JSONSlice[string]  `gorm:"column:allergies" json:"allergies"`
	Medications    datatypes.JSONSlice[string]  `gorm:"column:medications" json:"medications"`
	Appointments   datatypes.JSONSlice[string]  `gorm:"column:appointments" json:"appointments"`
	CreatedAt      time.Time                    `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt      time.Time                    `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}

// ProviderProfile describes a doctor. Patients is the set of patient user ids
// that ever booked with this provider; it grows monotonically.
type ProviderProfile struct {
	ID              int64                       `gorm:"primaryKey;autoIncrement;column:id" json:"-"`
	UserID          string                      `gorm:"size:64;not null;unique;index;column:user_id" json:"user_id"`
	Specialty       string                      `gorm:"size:100;index;column:specialty" json:"specialty"`
	LicenseNumber   string                      `gorm:"size:100;not null;unique;column:license_number" json:"license_number"`
	Qualifications  datatypes.JSONSlice[string] `gorm:"column:qualifications" json:"qualifications"`
	ExperienceYears string                      `gorm:"size:10;default:'0';column:experience_years" json:"experience_years"`
	ClinicAddress   string                      `gorm:"size:255;column:clinic_address" json:"clinic_address"`
	Phone           string                      `gorm:"size:30;column:phone" json:"phone"`
	AvailableHours  datatypes.JSONMap           `gorm:"column:available_hours" json:"available_hours"`
	Patients        datatypes.JSONSlice[string] `gorm:"column:patients" json:"patients"`
	CreatedAt       time.Time                   `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt       time.Time                   `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (ProviderProfile) TableName() string {
	return "provider_profiles"
}

// HasPatient reports whether patientID is already in the provider's set.
func (p *ProviderProfile) HasPatient(patientID string) bool {
	for _, id := range p.Patients {
		if id == patientID {
			return true
		}
	}
	return false
}
