package utils

import (
	"CareSync/cache"
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const resetCodeExpiry = 15 * time.Minute

// GenerateResetCode generates a random 6-digit reset code.
func GenerateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// SetResetCode stores the reset code for an email in Redis for 15 minutes.
func SetResetCode(ctx context.Context, email, code string) error {
	cacheInstance, err := cache.NewCache()
	if err != nil {
		return err
	}
	return cacheInstance.Set(ctx, "reset_code:"+email, code, resetCodeExpiry)
}

// GetResetCode retrieves the reset code for an email, or nil if none exists.
func GetResetCode(ctx context.Context, email string) (*string, error) {
	cacheInstance, err := cache.NewCache()
	if err != nil {
		return nil, err
	}
	code, err := cacheInstance.Get(ctx, "reset_code:"+email)
	if err != nil {
		return nil, err
	}
	if code == "" {
		return nil, nil
	}
	return &code, nil
}

// DeleteResetCode removes the reset code for an email.
func DeleteResetCode(ctx context.Context, email string) error {
	cacheInstance, err := cache.NewCache()
	if err != nil {
		return err
	}
	return cacheInstance.Delete(ctx, "reset_code:"+email)
}
