package repositories

import (
	"CareSync/cache"
	"CareSync/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	PatientProfileCacheExpiry = 24 * time.Hour
)

type PatientProfileRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewPatientProfileRepository(db *gorm.DB, cache *cache.Cache) *PatientProfileRepository {
	return &PatientProfileRepository{db: db, cache: cache}
}

func (r *PatientProfileRepository) Create(ctx context.Context, profile *models.PatientProfile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		return fmt.Errorf("failed to create patient profile: %w", err)
	}
	return r.cache.DeleteAll(ctx, "patient_profiles_cache")
}

func (r *PatientProfileRepository) GetByUserID(ctx context.Context, userID string) (*models.PatientProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getProfileCacheKey(userID)
	cachedProfile, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedProfile != "" {
		var profile models.PatientProfile
		if err := json.Unmarshal([]byte(cachedProfile), &profile); err == nil {
			return &profile, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get patient profile from cache: %v", err)
	}

	var profile models.PatientProfile
	err = r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get patient profile: %w", err)
	}

	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal patient profile: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, profileJSON, PatientProfileCacheExpiry); err != nil {
		log.Printf("Failed to set patient profile in cache: %v", err)
	}

	return &profile, nil
}

func (r *PatientProfileRepository) GetAll(ctx context.Context) ([]models.PatientProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var profiles []models.PatientProfile
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&profiles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all patient profiles: %w", err)
	}
	return profiles, nil
}

func (r *PatientProfileRepository) Update(ctx context.Context, profile *models.PatientProfile) error {
	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		return fmt.Errorf("failed to update patient profile: %w", err)
	}
	if err := r.cache.Delete(ctx, r.getProfileCacheKey(profile.UserID)); err != nil {
		return fmt.Errorf("failed to delete patient profile cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "patient_profiles_cache")
}

func (r *PatientProfileRepository) getProfileCacheKey(userID string) string {
	return fmt.Sprintf("patient_profile_cache:%s", userID)
}
