package repositories

import (
	"CareSync/cache"
	"CareSync/database"
	"CareSync/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ProviderProfileCacheExpiry = 24 * time.Hour
)

type ProviderProfileRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewProviderProfileRepository(db *gorm.DB, cache *cache.Cache) *ProviderProfileRepository {
	return &ProviderProfileRepository{db: db, cache: cache}
}

func (r *ProviderProfileRepository) Create(ctx context.Context, profile *models.ProviderProfile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		return fmt.Errorf("failed to create provider profile: %w", err)
	}
	return r.cache.DeleteAll(ctx, "provider_profiles_cache")
}

func (r *ProviderProfileRepository) GetByUserID(ctx context.Context, userID string) (*models.ProviderProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getProfileCacheKey(userID)
	cachedProfile, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedProfile != "" {
		var profile models.ProviderProfile
		if err := json.Unmarshal([]byte(cachedProfile), &profile); err == nil {
			return &profile, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get provider profile from cache: %v", err)
	}

	var profile models.ProviderProfile
	err = r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get provider profile: %w", err)
	}

	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal provider profile: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, profileJSON, ProviderProfileCacheExpiry); err != nil {
		log.Printf("Failed to set provider profile in cache: %v", err)
	}

	return &profile, nil
}

func (r *ProviderProfileRepository) GetAll(ctx context.Context) ([]models.ProviderProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "provider_profiles_cache"
	cachedProfiles, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedProfiles != "" {
		var profiles []models.ProviderProfile
		if err := json.Unmarshal([]byte(cachedProfiles), &profiles); err == nil {
			return profiles, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get provider profiles from cache: %v", err)
	}

	var profiles []models.ProviderProfile
	err = r.db.WithContext(ctx).Order("created_at DESC").Find(&profiles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all provider profiles: %w", err)
	}

	profilesJSON, err := json.Marshal(profiles)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal provider profiles: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, profilesJSON, ProviderProfileCacheExpiry); err != nil {
		log.Printf("Failed to set provider profiles in cache: %v", err)
	}

	return profiles, nil
}

// LicenseNumberExists reports whether another provider already carries the
// given license number.
func (r *ProviderProfileRepository) LicenseNumberExists(ctx context.Context, licenseNumber, excludeUserID string) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.ProviderProfile{}).Where("license_number = ?", licenseNumber)
	if excludeUserID != "" {
		query = query.Where("user_id <> ?", excludeUserID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check license number: %w", err)
	}
	return count > 0, nil
}

func (r *ProviderProfileRepository) Update(ctx context.Context, profile *models.ProviderProfile) error {
	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		return fmt.Errorf("failed to update provider profile: %w", err)
	}
	return r.invalidate(ctx, profile.UserID)
}

// AddPatient adds a patient to the provider's set if absent. The Redis lock
// serializes concurrent bookings against the same provider profile.
func (r *ProviderProfileRepository) AddPatient(ctx context.Context, providerUserID, patientUserID string) error {
	lockKey := fmt.Sprintf("provider_patients_lock:%s", providerUserID)
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

	var profile models.ProviderProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", providerUserID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil // provider without profile; nothing to record
		}
		return fmt.Errorf("failed to get provider profile: %w", err)
	}

	if profile.HasPatient(patientUserID) {
		return nil
	}

	profile.Patients = append(profile.Patients, patientUserID)
	if err := r.db.WithContext(ctx).Save(&profile).Error; err != nil {
		return fmt.Errorf("failed to add patient to provider: %w", err)
	}
	return r.invalidate(ctx, providerUserID)
}

func (r *ProviderProfileRepository) invalidate(ctx context.Context, userID string) error {
	if err := r.cache.Delete(ctx, r.getProfileCacheKey(userID)); err != nil {
		return fmt.Errorf("failed to delete provider profile cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "provider_profiles_cache")
}

func (r *ProviderProfileRepository) getProfileCacheKey(userID string) string {
	return fmt.Sprintf("provider_profile_cache:%s", userID)
}
