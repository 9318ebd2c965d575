package models

import "time"

// RegisterRequest is the payload for POST /auth/register. Role defaults to
// patient; anything else is rejected at the handler.
type RegisterRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	ConsentGiven bool   `json:"consent_given"`
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AppointmentCreateRequest is the payload for POST /appointments.
type AppointmentCreateRequest struct {
	ProviderID      string    `json:"provider_id"`
	AppointmentDate time.Time `json:"appointment_date"`
	Reason          string    `json:"reason"`
}

// AppointmentUpdateRequest is the payload for PUT /appointments/:id. Notes
// is a pointer so an absent field leaves existing notes untouched.
type AppointmentUpdateRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes"`
}

// PatientProfileUpdateRequest carries a partial update: only non-nil fields
// overwrite the stored profile.
type PatientProfileUpdateRequest struct {
	WellnessGoals  map[string]interface{} `json:"wellness_goals"`
	HealthData     map[string]interface{} `json:"health_data"`
	MedicalHistory *[]string              `json:"medical_history"`
	Allergies      *[]string              `json:"allergies"`
	Medications    *[]string              `json:"medications"`
}

// ProviderProfileCreateRequest is the payload for POST /providers.
type ProviderProfileCreateRequest struct {
	UserID          string   `json:"user_id"`
	Specialty       string   `json:"specialty"`
	LicenseNumber   string   `json:"license_number"`
	Qualifications  []string `json:"qualifications"`
	ExperienceYears string   `json:"experience_years"`
	ClinicAddress   string   `json:"clinic_address"`
	Phone           string   `json:"phone"`
}

// ProviderProfileUpdateRequest carries a partial update for a provider
// profile; only non-nil fields overwrite.
type ProviderProfileUpdateRequest struct {
	Specialty       *string                `json:"specialty"`
	LicenseNumber   *string                `json:"license_number"`
	Qualifications  *[]string              `json:"qualifications"`
	ExperienceYears *string                `json:"experience_years"`
	ClinicAddress   *string                `json:"clinic_address"`
	Phone           *string                `json:"phone"`
	AvailableHours  map[string]interface{} `json:"available_hours"`
}

// ProviderSchedule is the aggregate returned by GET /appointments/doctor/:id:
// a provider summary plus their open (pending or confirmed) appointments.
type ProviderSchedule struct {
	Doctor       ProviderSummary `json:"doctor"`
	Appointments []Appointment   `json:"appointments"`
	BookedCount  int             `json:"booked_count"`
}

// ProviderSummary is the public-facing slice of a provider used for
// scheduling display.
type ProviderSummary struct {
	ID             string                 `json:"id"`
	Email          string                 `json:"email"`
	Specialty      string                 `json:"specialty"`
	ClinicAddress  string                 `json:"clinic_address"`
	AvailableHours map[string]interface{} `json:"available_hours"`
}
