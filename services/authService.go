package services

import (
	"CareSync/models"
	"CareSync/repositories"
	"CareSync/utils"
	"context"
	"fmt"
)

type UserService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ResetPassword(ctx context.Context, email, newPassword string) error
}

type userService struct {
	userRepo    repositories.UserRepository
	patientRepo *repositories.PatientProfileRepository
}

func NewUserService(userRepo repositories.UserRepository, patientRepo *repositories.PatientProfileRepository) UserService {
	return &userService{userRepo: userRepo, patientRepo: patientRepo}
}

// Register creates a patient account plus its empty profile. Role is forced
// to patient regardless of the request; providers are seeded or provisioned
// by an admin.
func (s *userService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if err := utils.ValidateRegistration(req); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}

	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}
	if exists {
		return nil, fmt.Errorf("%w: email already registered", models.ErrConflict)
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hashed,
		Role:         models.RolePatient,
		ConsentGiven: req.ConsentGiven,
		IsActive:     true,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}

	profile := &models.PatientProfile{
		UserID:         user.ID,
		WellnessGoals:  map[string]interface{}{},
		HealthData:     map[string]interface{}{},
		MedicalHistory: []string{},
		Allergies:      []string{},
		Medications:    []string{},
		Appointments:   []string{},
	}
	if err := s.patientRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}

	return user, nil
}

// Authenticate verifies a login attempt against the credential store. The
// same failure is returned for unknown emails and wrong passwords.
func (s *userService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}
	if user == nil || !utils.CheckPassword(user.PasswordHash, password) {
		return nil, fmt.Errorf("%w: invalid credentials", models.ErrAuthentication)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: user account is inactive", models.ErrAuthentication)
	}
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user not found", models.ErrNotFound)
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user not found", models.ErrNotFound)
	}
	return user, nil
}

// ResetPassword rewrites the stored hash for a user identified by email.
// Reset-code verification happens at the handler.
func (s *userService) ResetPassword(ctx context.Context, email, newPassword string) error {
	user, err := s.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrStorage, err)
	}
	if err := s.userRepo.UpdateUserPassword(ctx, user.ID, hashed); err != nil {
		return fmt.Errorf("%w: %v", models.ErrStorage, err)
	}
	return nil
}
