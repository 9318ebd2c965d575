package services

import (
	"CareSync/models"
	"CareSync/repositories"
	"CareSync/utils"
	"context"
	"fmt"
)

type PatientService struct {
	repository *repositories.PatientProfileRepository
}

func NewPatientService(repository *repositories.PatientProfileRepository) *PatientService {
	return &PatientService{repository: repository}
}

// List returns all patient profiles. Providers and admins only.
func (s *PatientService) List(ctx context.Context, caller *utils.Claims) ([]models.PatientProfile, error) {
	if err := Authorize(caller, OpListPatients, Target{}); err != nil {
		return nil, err
	}
	profiles, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}
	return profiles, nil
}

// Get returns a single patient profile, visible to its owner or an admin.
func (s *PatientService) Get(ctx context.Context, caller *utils.Claims, patientID string) (*models.PatientProfile, error) {
	if err := Authorize(caller, OpReadPatientProfile, Target{OwnerID: patientID}); err != nil {
		return nil, err
	}
	profile, err := s.repository.GetByUserID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}
	if profile == nil {
		return nil, fmt.Errorf("%w: patient not found", models.ErrNotFound)
	}
	return profile, nil
}

// Update applies a partial merge: only fields present in the request
// overwrite the stored profile, absent fields are left untouched.
func (s *PatientService) Update(ctx context.Context, caller *utils.Claims, patientID string, req models.PatientProfileUpdateRequest) (*models.PatientProfile, error) {
	if err := Authorize(caller, OpUpdatePatientProfile, Target{OwnerID: patientID}); err != nil {
		return nil, err
	}

	profile, err := s.repository.GetByUserID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}
	if profile == nil {
		return nil, fmt.Errorf("%w: patient not found", models.ErrNotFound)
	}

	if req.WellnessGoals != nil {
		profile.WellnessGoals = req.WellnessGoals
	}
	if req.HealthData != nil {
		profile.HealthData = req.HealthData
	}
	if req.MedicalHistory != nil {
		profile.MedicalHistory = *req.MedicalHistory
	}
	if req.Allergies != nil {
		profile.Allergies = *req.Allergies
	}
	if req.Medications != nil {
		profile.Medications = *req.Medications
	}

	if err := s.repository.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}
	return profile, nil
}
