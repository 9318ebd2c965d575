package services

import (
	"CareSync/models"
	"CareSync/repositories"
	"CareSync/utils"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// AppointmentService is the appointment ledger: it enforces the scheduling
// invariants (future dates, no double booking, role-gated status lifecycle)
// on top of the repositories.
type AppointmentService struct {
	appointmentRepo *repositories.AppointmentRepository
	providerRepo    *repositories.ProviderProfileRepository
	userRepo        repositories.UserRepository
}

func NewAppointmentService(
	appointmentRepo *repositories.AppointmentRepository,
	providerRepo *repositories.ProviderProfileRepository,
	userRepo repositories.UserRepository,
) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		providerRepo:    providerRepo,
		userRepo:        userRepo,
	}
}

// Create books a new appointment for the calling patient. The provider must
// resolve to a provider-role user, the date must be in the future, and the
// (patient, provider, timestamp) slot must not already hold a non-cancelled
// appointment. On success the appointment is persisted as pending with both
// emails denormalized, and the patient joins the provider's patient set.
func (s *AppointmentService) Create(ctx context.Context, caller *utils.Claims, req models.AppointmentCreateRequest) (*models.Appointment, error) {
	if err := Authorize(caller, OpCreateAppointment, Target{}); err != nil {
		return nil, err
	}
	if err := utils.ValidateAppointmentCreate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	if !req.AppointmentDate.After(time.Now()) {
		return nil, fmt.Errorf("%w: appointment date must be in the future", models.ErrValidation)
	}

	provider, err := s.userRepo.GetUserByID(ctx, req.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}
	if provider == nil || provider.Role != models.RoleProvider {
		return nil, fmt.Errorf("%w: provider not found", models.ErrNotFound)
	}

	existing, err := s.appointmentRepo.FindActiveSlot(ctx, caller.UserID, provider.ID, req.AppointmentDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: you already have an appointment at this time with this doctor", models.ErrConflict)
	}

	appointment := &models.Appointment{
		PatientID:       caller.UserID,
		ProviderID:      provider.ID,
		AppointmentDate: req.AppointmentDate,
		Reason:          req.Reason,
		Status:          models.StatusPending,
		PatientEmail:    caller.Email,
		ProviderEmail:   provider.Email,
	}
	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: you already have an appointment at this time with this doctor", models.ErrConflict)
		}
		return nil, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}

	if err := s.providerRepo.AddPatient(ctx, provider.ID, caller.UserID); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}

	return appointment, nil
}

// Get returns a single appointment, visible to its patient, its provider,
// or an admin.
func (s *AppointmentService) Get(ctx context.Context, caller *utils.Claims, appointmentID string) (*models.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}
	if appointment == nil {
		return nil, fmt.Errorf("%w: appointment not found", models.ErrNotFound)
	}
	if err := Authorize(caller, OpReadAppointment, Target{PatientID: appointment.PatientID, ProviderID: appointment.ProviderID}); err != nil {
		return nil, err
	}
	return appointment, nil
}

// UpdateStatus sets a new status (and optionally notes) on an appointment.
// Only the appointment's own provider may do this, and terminal appointments
// (completed, cancelled) cannot be mutated.
func (s *AppointmentService) UpdateStatus(ctx context.Context, caller *utils.Claims, appointmentID string, req models.AppointmentUpdateRequest) (*models.Appointment, error) {
	if err := utils.ValidateAppointmentUpdate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}

	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}
	if appointment == nil {
		return nil, fmt.Errorf("%w: appointment not found", models.ErrNotFound)
	}

	if err := Authorize(caller, OpUpdateAppointment, Target{PatientID: appointment.PatientID, ProviderID: appointment.ProviderID}); err != nil {
		return nil, err
	}

	if models.TerminalStatus(appointment.Status) {
		return nil, fmt.Errorf("%w: appointment is already %s", models.ErrConflict, appointment.Status)
	}

	appointment.Status = req.Status
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}
	if err := s.appointmentRepo.Update(ctx, appointment); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}
	return appointment, nil
}

// Cancel marks an appointment cancelled. Either party may cancel. Cancelling
// an already-cancelled appointment is an idempotent no-op; cancelling a
// completed appointment is rejected, since a terminal appointment must not
// be reopened or altered.
func (s *AppointmentService) Cancel(ctx context.Context, caller *utils.Claims, appointmentID string) (*models.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}
	if appointment == nil {
		return nil, fmt.Errorf("%w: appointment not found", models.ErrNotFound)
	}

	if err := Authorize(caller, OpCancelAppointment, Target{PatientID: appointment.PatientID, ProviderID: appointment.ProviderID}); err != nil {
		return nil, err
	}

	if appointment.Status == models.StatusCancelled {
		return appointment, nil
	}
	if appointment.Status == models.StatusCompleted {
		return nil, fmt.Errorf("%w: completed appointments cannot be cancelled", models.ErrConflict)
	}

	appointment.Status = models.StatusCancelled
	if err := s.appointmentRepo.Update(ctx, appointment); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}
	return appointment, nil
}

// ListForUser returns the caller's appointments: patients see their own
// bookings, providers see appointments booked with them, anyone else is
// denied.
func (s *AppointmentService) ListForUser(ctx context.Context, caller *utils.Claims) ([]models.Appointment, error) {
	if caller == nil || caller.UserID == "" {
		return nil, fmt.Errorf("%w", models.ErrAuthentication)
	}

	var appointments []models.Appointment
	var err error
	switch caller.Role {
	case models.RolePatient:
		appointments, err = s.appointmentRepo.ListByPatient(ctx, caller.UserID)
	case models.RoleProvider:
		appointments, err = s.appointmentRepo.ListByProvider(ctx, caller.UserID)
	default:
		return nil, fmt.Errorf("%w", models.ErrForbidden)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}
	return appointments, nil
}

// ListForProvider returns the scheduling view for one doctor: a provider
// summary plus the open (pending or confirmed) appointments and their count.
// Visible to any authenticated caller.
func (s *AppointmentService) ListForProvider(ctx context.Context, caller *utils.Claims, providerID string) (*models.ProviderSchedule, error) {
	if err := Authorize(caller, OpReadProviderProfile, Target{OwnerID: providerID}); err != nil {
		return nil, err
	}

	doctor, err := s.userRepo.GetUserByID(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}
	if doctor == nil || doctor.Role != models.RoleProvider {
		return nil, fmt.Errorf("%w: doctor not found", models.ErrNotFound)
	}

	appointments, err := s.appointmentRepo.ListOpenByProvider(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}

	summary := models.ProviderSummary{
		ID:    doctor.ID,
		Email: doctor.Email,
	}
	profile, err := s.providerRepo.GetByUserID(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}
	if profile != nil {
		summary.Specialty = profile.Specialty
		summary.ClinicAddress = profile.ClinicAddress
		summary.AvailableHours = profile.AvailableHours
	}

	return &models.ProviderSchedule{
		Doctor:       summary,
		Appointments: appointments,
		BookedCount:  len(appointments),
	}, nil
}
