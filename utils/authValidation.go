package utils

import (
	"CareSync/models"
	"log"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ValidateRegistration validates a registration payload using
// ozzo-validation. Passwords only need a minimum length here; the original
// system accepts simple passwords like "pw123456".
func ValidateRegistration(req models.RegisterRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required, validation.Length(6, 128)),
		validation.Field(&req.Role, validation.In(models.RolePatient, models.RoleProvider, models.RoleAdmin)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateLogin validates a login payload.
func ValidateLogin(req models.LoginRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateAppointmentCreate checks the booking payload. The future-date rule
// belongs to the appointment service, not here.
func ValidateAppointmentCreate(req models.AppointmentCreateRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.ProviderID, validation.Required),
		validation.Field(&req.AppointmentDate, validation.Required),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateAppointmentUpdate checks a status-update payload.
func ValidateAppointmentUpdate(req models.AppointmentUpdateRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Status, validation.Required,
			validation.In(models.StatusPending, models.StatusConfirmed, models.StatusCompleted, models.StatusCancelled)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateProviderCreate checks a provider-provisioning payload.
func ValidateProviderCreate(req models.ProviderProfileCreateRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.LicenseNumber, validation.Required),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidatePasswordReset validates the reset code and new password.
func ValidatePasswordReset(resetCode, newPassword string) error {
	err := validation.Errors{
		"resetCode": validation.Validate(resetCode, validation.Required.Error("invalid reset code")),
		"password":  validation.Validate(newPassword, validation.Required, validation.Length(6, 128)),
	}.Filter()
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}
