package repositories

import (
	"CareSync/cache"
	"CareSync/database"
	"CareSync/models"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewAppointmentRepository(db *gorm.DB, cache *cache.Cache) *AppointmentRepository {
	return &AppointmentRepository{db: db, cache: cache}
}

// Create persists a new appointment. The Redis lock serializes identical
// booking attempts so the duplicate check and insert act as one step; the
// partial unique index on (patient_id, provider_id, appointment_date) backs
// it up at the store level.
func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	lockKey := fmt.Sprintf("booking_lock:%s_%s_%d",
		appointment.PatientID, appointment.ProviderID, appointment.AppointmentDate.Unix())
	lockValue := uuid.New().String()

	maxRetries := 3
	retryDelay := 2 * time.Second
	var locked bool
	var err error
	for i := 0; i < maxRetries; i++ {
		locked, err = database.NewLock(ctx, lockKey, lockValue, 10*time.Second)
		if err == nil && locked {
			break
		}
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}
	if !locked {
		return fmt.Errorf("failed to acquire lock after retries: %w", err)
	}
	defer func() {
		if err := database.ReleaseLock(ctx, lockKey, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()

	if !models.ValidStatus(appointment.Status) {
		return errors.New("invalid status value")
	}

	if err := r.db.WithContext(ctx).Create(appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return gorm.ErrDuplicatedKey
		}
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appointment models.Appointment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &appointment, nil
}

// FindActiveSlot returns a non-cancelled appointment matching the exact
// (patient, provider, timestamp) triple, or nil.
func (r *AppointmentRepository) FindActiveSlot(ctx context.Context, patientID, providerID string, date time.Time) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.WithContext(ctx).
		Where("patient_id = ? AND provider_id = ? AND appointment_date = ? AND status <> ?",
			patientID, providerID, date, models.StatusCancelled).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to check existing booking: %w", err)
	}
	return &appointment, nil
}

func (r *AppointmentRepository) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("appointment_date ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments for patient: %w", err)
	}
	return appointments, nil
}

func (r *AppointmentRepository) ListByProvider(ctx context.Context, providerID string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("appointment_date ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments for provider: %w", err)
	}
	return appointments, nil
}

// ListOpenByProvider returns the provider's pending and confirmed
// appointments, the ones that still occupy schedule slots.
func (r *AppointmentRepository) ListOpenByProvider(ctx context.Context, providerID string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.WithContext(ctx).
		Where("provider_id = ? AND status IN ?", providerID, []string{models.StatusPending, models.StatusConfirmed}).
		Order("appointment_date ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list open appointments for provider: %w", err)
	}
	return appointments, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, appointment *models.Appointment) error {
	lockKey := fmt.Sprintf("appointment_lock:%s", appointment.ID)
	lockValue := uuid.New().String()

	maxRetries := 3
	retryDelay := 2 * time.Second
	var locked bool
	var err error
	for i := 0; i < maxRetries; i++ {
		locked, err = database.NewLock(ctx, lockKey, lockValue, 10*time.Second)
		if err == nil && locked {
			break
		}
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}
	if !locked {
		return fmt.Errorf("failed to acquire lock after retries: %w", err)
	}
	defer func() {
		if err := database.ReleaseLock(ctx, lockKey, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()

	if !models.ValidStatus(appointment.Status) {
		return errors.New("invalid status value")
	}

	if err := r.db.WithContext(ctx).Save(appointment).Error; err != nil {
		return fmt.Errorf("failed to update appointment: %w", err)
	}
	return nil
}
