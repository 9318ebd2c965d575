package services

import (
	"CareSync/models"
	"CareSync/repositories"
	"CareSync/utils"
	"context"
	"fmt"
)

type ProviderService struct {
	repository *repositories.ProviderProfileRepository
	userRepo   repositories.UserRepository
}

func NewProviderService(repository *repositories.ProviderProfileRepository, userRepo repositories.UserRepository) *ProviderService {
	return &ProviderService{repository: repository, userRepo: userRepo}
}

// List returns the provider directory, visible to any authenticated caller.
func (s *ProviderService) List(ctx context.Context, caller *utils.Claims) ([]models.ProviderProfile, error) {
	if err := Authorize(caller, OpListProviders, Target{}); err != nil {
		return nil, err
	}
	profiles, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}
	return profiles, nil
}

func (s *ProviderService) Get(ctx context.Context, caller *utils.Claims, providerID string) (*models.ProviderProfile, error) {
	if err := Authorize(caller, OpReadProviderProfile, Target{OwnerID: providerID}); err != nil {
		return nil, err
	}
	profile, err := s.repository.GetByUserID(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}
	if profile == nil {
		return nil, fmt.Errorf("%w: provider not found", models.ErrNotFound)
	}
	return profile, nil
}

// Create provisions a provider profile. Creating one for another user needs
// the admin role; user_id and license_number must be unused.
func (s *ProviderService) Create(ctx context.Context, caller *utils.Claims, req models.ProviderProfileCreateRequest) (*models.ProviderProfile, error) {
	if err := Authorize(caller, OpCreateProviderProfile, Target{OwnerID: req.UserID}); err != nil {
		return nil, err
	}
	if err := utils.ValidateProviderCreate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}

	existing, err := s.repository.GetByUserID(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: provider profile already exists", models.ErrConflict)
	}

	taken, err := s.repository.LicenseNumberExists(ctx, req.LicenseNumber, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}
	if taken {
		return nil, fmt.Errorf("%w: license number already registered", models.ErrConflict)
	}

	profile := &models.ProviderProfile{
		UserID:          req.UserID,
		Specialty:       req.Specialty,
		LicenseNumber:   req.LicenseNumber,
		Qualifications:  req.Qualifications,
		ExperienceYears: req.ExperienceYears,
		ClinicAddress:   req.ClinicAddress,
		Phone:           req.Phone,
		AvailableHours:  map[string]interface{}{},
		Patients:        []string{},
	}
	if profile.ExperienceYears == "" {
		profile.ExperienceYears = "0"
	}
	if err := s.repository.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}
	return profile, nil
}

// Update applies a partial merge to a provider profile; license uniqueness
// is re-checked when the license number changes.
func (s *ProviderService) Update(ctx context.Context, caller *utils.Claims, providerID string, req models.ProviderProfileUpdateRequest) (*models.ProviderProfile, error) {
	if err := Authorize(caller, OpUpdateProviderProfile, Target{OwnerID: providerID}); err != nil {
		return nil, err
	}

	profile, err := s.repository.GetByUserID(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}
	if profile == nil {
		return nil, fmt.Errorf("%w: provider not found", models.ErrNotFound)
	}

	if req.LicenseNumber != nil && *req.LicenseNumber != profile.LicenseNumber {
		taken, err := s.repository.LicenseNumberExists(ctx, *req.LicenseNumber, providerID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", models.ErrStorage, err)
		}
		if taken {
			return nil, fmt.Errorf("%w: license number already registered", models.ErrConflict)
		}
		profile.LicenseNumber = *req.LicenseNumber
	}
	if req.Specialty != nil {
		profile.Specialty = *req.Specialty
	}
	if req.Qualifications != nil {
		profile.Qualifications = *req.Qualifications
	}
	if req.ExperienceYears != nil {
		profile.ExperienceYears = *req.ExperienceYears
	}
	if req.ClinicAddress != nil {
		profile.ClinicAddress = *req.ClinicAddress
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.AvailableHours != nil {
		profile.AvailableHours = req.AvailableHours
	}

	if err := s.repository.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}
	return profile, nil
}
