package services

import (
	"CareSync/models"
	"CareSync/utils"
	"errors"
	"testing"
)

func claims(id, role string) *utils.Claims {
	return &utils.Claims{UserID: id, Email: id + "@x.com", Role: role}
}

func TestAuthorizeUnauthenticated(t *testing.T) {
	if err := Authorize(nil, OpListProviders, Target{}); !errors.Is(err, models.ErrAuthentication) {
		t.Errorf("nil claims: expected ErrAuthentication, got %v", err)
	}
	if err := Authorize(&utils.Claims{}, OpListProviders, Target{}); !errors.Is(err, models.ErrAuthentication) {
		t.Errorf("empty user id: expected ErrAuthentication, got %v", err)
	}
}

func TestAuthorizeProfileAccess(t *testing.T) {
	tests := []struct {
		name    string
		caller  *utils.Claims
		op      Operation
		target  Target
		allowed bool
	}{
		{"patient reads own profile", claims("p1", models.RolePatient), OpReadPatientProfile, Target{OwnerID: "p1"}, true},
		{"patient reads other profile", claims("p1", models.RolePatient), OpReadPatientProfile, Target{OwnerID: "p2"}, false},
		{"provider reads patient profile", claims("d1", models.RoleProvider), OpReadPatientProfile, Target{OwnerID: "p1"}, false},
		{"admin reads any patient profile", claims("a1", models.RoleAdmin), OpReadPatientProfile, Target{OwnerID: "p1"}, true},
		{"patient updates own profile", claims("p1", models.RolePatient), OpUpdatePatientProfile, Target{OwnerID: "p1"}, true},
		{"patient updates other profile", claims("p1", models.RolePatient), OpUpdatePatientProfile, Target{OwnerID: "p2"}, false},
		{"admin updates any patient profile", claims("a1", models.RoleAdmin), OpUpdatePatientProfile, Target{OwnerID: "p1"}, true},
		{"provider updates own profile", claims("d1", models.RoleProvider), OpUpdateProviderProfile, Target{OwnerID: "d1"}, true},
		{"provider updates other provider", claims("d1", models.RoleProvider), OpUpdateProviderProfile, Target{OwnerID: "d2"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.caller, tt.op, tt.target)
			if tt.allowed && err != nil {
				t.Errorf("expected allow, got %v", err)
			}
			if !tt.allowed && !errors.Is(err, models.ErrForbidden) {
				t.Errorf("expected ErrForbidden, got %v", err)
			}
		})
	}
}

func TestAuthorizeCollectiveActions(t *testing.T) {
	tests := []struct {
		name    string
		caller  *utils.Claims
		op      Operation
		allowed bool
	}{
		{"provider lists patients", claims("d1", models.RoleProvider), OpListPatients, true},
		{"admin lists patients", claims("a1", models.RoleAdmin), OpListPatients, true},
		{"patient lists patients", claims("p1", models.RolePatient), OpListPatients, false},
		{"patient lists providers", claims("p1", models.RolePatient), OpListProviders, true},
		{"provider lists providers", claims("d1", models.RoleProvider), OpListProviders, true},
		{"patient creates appointment", claims("p1", models.RolePatient), OpCreateAppointment, true},
		{"provider creates appointment", claims("d1", models.RoleProvider), OpCreateAppointment, false},
		{"admin creates appointment", claims("a1", models.RoleAdmin), OpCreateAppointment, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.caller, tt.op, Target{})
			if tt.allowed && err != nil {
				t.Errorf("expected allow, got %v", err)
			}
			if !tt.allowed && !errors.Is(err, models.ErrForbidden) {
				t.Errorf("expected ErrForbidden, got %v", err)
			}
		})
	}
}

func TestAuthorizeAppointmentOperations(t *testing.T) {
	target := Target{PatientID: "p1", ProviderID: "d1"}

	tests := []struct {
		name    string
		caller  *utils.Claims
		op      Operation
		allowed bool
	}{
		{"patient reads own appointment", claims("p1", models.RolePatient), OpReadAppointment, true},
		{"provider reads own appointment", claims("d1", models.RoleProvider), OpReadAppointment, true},
		{"stranger reads appointment", claims("p2", models.RolePatient), OpReadAppointment, false},
		{"admin reads appointment", claims("a1", models.RoleAdmin), OpReadAppointment, true},
		{"owning provider updates status", claims("d1", models.RoleProvider), OpUpdateAppointment, true},
		{"other provider updates status", claims("d2", models.RoleProvider), OpUpdateAppointment, false},
		{"patient updates status", claims("p1", models.RolePatient), OpUpdateAppointment, false},
		{"admin updates status", claims("a1", models.RoleAdmin), OpUpdateAppointment, false},
		{"patient cancels own appointment", claims("p1", models.RolePatient), OpCancelAppointment, true},
		{"provider cancels own appointment", claims("d1", models.RoleProvider), OpCancelAppointment, true},
		{"stranger cancels appointment", claims("p2", models.RolePatient), OpCancelAppointment, false},
		{"admin cancels appointment", claims("a1", models.RoleAdmin), OpCancelAppointment, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.caller, tt.op, target)
			if tt.allowed && err != nil {
				t.Errorf("expected allow, got %v", err)
			}
			if !tt.allowed && !errors.Is(err, models.ErrForbidden) {
				t.Errorf("expected ErrForbidden, got %v", err)
			}
		})
	}
}

func TestAuthorizeProviderProvisioning(t *testing.T) {
	if err := Authorize(claims("a1", models.RoleAdmin), OpCreateProviderProfile, Target{OwnerID: "u9"}); err != nil {
		t.Errorf("admin provisioning for another user should be allowed, got %v", err)
	}
	if err := Authorize(claims("u9", models.RoleProvider), OpCreateProviderProfile, Target{OwnerID: "u9"}); err != nil {
		t.Errorf("self provisioning should be allowed, got %v", err)
	}
	err := Authorize(claims("p1", models.RolePatient), OpCreateProviderProfile, Target{OwnerID: "u9"})
	if !errors.Is(err, models.ErrForbidden) {
		t.Errorf("non-admin provisioning for another user: expected ErrForbidden, got %v", err)
	}
}
