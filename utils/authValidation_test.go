package utils

import (
	"CareSync/models"
	"testing"
	"time"
)

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name    string
		req     models.RegisterRequest
		wantErr bool
	}{
		{"valid", models.RegisterRequest{Email: "a@example.com", Password: "pw123456"}, false},
		{"valid with role", models.RegisterRequest{Email: "a@example.com", Password: "pw123456", Role: "patient"}, false},
		{"missing email", models.RegisterRequest{Password: "pw123456"}, true},
		{"bad email", models.RegisterRequest{Email: "not-an-email", Password: "pw123456"}, true},
		{"short password", models.RegisterRequest{Email: "a@example.com", Password: "pw1"}, true},
		{"unknown role", models.RegisterRequest{Email: "a@example.com", Password: "pw123456", Role: "superuser"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegistration(tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRegistration() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateLogin(t *testing.T) {
	if err := ValidateLogin(models.LoginRequest{Email: "a@example.com", Password: "x"}); err != nil {
		t.Errorf("valid login rejected: %v", err)
	}
	if err := ValidateLogin(models.LoginRequest{Email: "a@example.com"}); err == nil {
		t.Error("missing password accepted")
	}
	if err := ValidateLogin(models.LoginRequest{Password: "x"}); err == nil {
		t.Error("missing email accepted")
	}
}

func TestValidateAppointmentCreate(t *testing.T) {
	valid := models.AppointmentCreateRequest{
		ProviderID:      "p1",
		AppointmentDate: time.Now().Add(24 * time.Hour),
	}
	if err := ValidateAppointmentCreate(valid); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}

	if err := ValidateAppointmentCreate(models.AppointmentCreateRequest{AppointmentDate: time.Now()}); err == nil {
		t.Error("missing provider accepted")
	}
	if err := ValidateAppointmentCreate(models.AppointmentCreateRequest{ProviderID: "p1"}); err == nil {
		t.Error("missing date accepted")
	}
}

func TestValidateAppointmentUpdate(t *testing.T) {
	for _, status := range []string{
		models.StatusPending, models.StatusConfirmed, models.StatusCompleted, models.StatusCancelled,
	} {
		if err := ValidateAppointmentUpdate(models.AppointmentUpdateRequest{Status: status}); err != nil {
			t.Errorf("status %q rejected: %v", status, err)
		}
	}
	if err := ValidateAppointmentUpdate(models.AppointmentUpdateRequest{Status: "rescheduled"}); err == nil {
		t.Error("unknown status accepted")
	}
	if err := ValidateAppointmentUpdate(models.AppointmentUpdateRequest{}); err == nil {
		t.Error("empty status accepted")
	}
}

func TestValidateProviderCreate(t *testing.T) {
	valid := models.ProviderProfileCreateRequest{UserID: "u1", LicenseNumber: "LIC009"}
	if err := ValidateProviderCreate(valid); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}
	if err := ValidateProviderCreate(models.ProviderProfileCreateRequest{UserID: "u1"}); err == nil {
		t.Error("missing license accepted")
	}
}

func TestValidatePasswordReset(t *testing.T) {
	if err := ValidatePasswordReset("123456", "newpass123"); err != nil {
		t.Errorf("valid reset rejected: %v", err)
	}
	if err := ValidatePasswordReset("", "newpass123"); err == nil {
		t.Error("empty reset code accepted")
	}
	if err := ValidatePasswordReset("123456", "pw"); err == nil {
		t.Error("short password accepted")
	}
}
