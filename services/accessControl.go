package services

import (
	"CareSync/models"
	"CareSync/utils"
	"fmt"
)

// Operation names a guarded action against a resource.
type Operation int

const (
	OpReadPatientProfile Operation = iota
	OpUpdatePatientProfile
	OpListPatients
	OpListProviders
	OpReadProviderProfile
	OpCreateProviderProfile
	OpUpdateProviderProfile
	OpCreateAppointment
	OpReadAppointment
	OpUpdateAppointment
	OpCancelAppointment
)

// Target identifies the resource owner(s) an operation acts on. Profile
// operations fill OwnerID; appointment operations fill PatientID and
// ProviderID.
type Target struct {
	OwnerID    string
	PatientID  string
	ProviderID string
}

// Authorize is the access-control guard: a pure function of the caller's
// verified claims, the requested operation, and the target resource owners.
// Rules are evaluated in order: self-access, role-gated collective actions,
// admin override, default deny. Appointment status updates and cancellations
// are deliberately closed to admins; only the named parties may act.
func Authorize(caller *utils.Claims, op Operation, target Target) error {
	if caller == nil || caller.UserID == "" {
		return fmt.Errorf("%w", models.ErrAuthentication)
	}

	switch op {
	case OpReadPatientProfile, OpUpdatePatientProfile, OpUpdateProviderProfile:
		if caller.UserID == target.OwnerID {
			return nil
		}
		if caller.Role == models.RoleAdmin {
			return nil
		}

	case OpListPatients:
		if caller.Role == models.RoleProvider || caller.Role == models.RoleAdmin {
			return nil
		}

	case OpListProviders, OpReadProviderProfile:
		// Any authenticated caller may browse the provider directory.
		return nil

	case OpCreateProviderProfile:
		if caller.UserID == target.OwnerID {
			return nil
		}
		if caller.Role == models.RoleAdmin {
			return nil
		}

	case OpCreateAppointment:
		if caller.Role == models.RolePatient {
			return nil
		}

	case OpReadAppointment:
		if caller.UserID == target.PatientID || caller.UserID == target.ProviderID {
			return nil
		}
		if caller.Role == models.RoleAdmin {
			return nil
		}

	case OpUpdateAppointment:
		if caller.Role == models.RoleProvider && caller.UserID == target.ProviderID {
			return nil
		}

	case OpCancelAppointment:
		if caller.UserID == target.PatientID || caller.UserID == target.ProviderID {
			return nil
		}
	}

	return fmt.Errorf("%w", models.ErrForbidden)
}
