package utils

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/o1egl/paseto"
)

const (
	// Access tokens outlive a working day so a patient can book in the
	// morning and cancel in the evening without logging in again.
	AccessTokenExpiry = 24 * time.Hour

	// PASETO v2 local requires a 32-byte symmetric key.
	symmetricKeySize = 32
)

// Credential verification failures. The bearer middleware maps all of these
// to a 401 without leaking which one occurred.
var (
	ErrMalformedCredential = errors.New("malformed authorization header")
	ErrExpiredCredential   = errors.New("credential expired")
	ErrInvalidCredential   = errors.New("invalid credential")
	ErrMissingIdentity     = errors.New("credential carries no identity")
)

// Claims are the identity attributes encoded in a session token.
type Claims struct {
	UserID string    `json:"user_id"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	Expiry time.Time `json:"expiry"`
}

// TokenMaker issues and verifies PASETO session tokens. The key is injected
// from configuration at startup rather than read from ambient globals.
type TokenMaker struct {
	key    []byte
	expiry time.Duration
}

// NewTokenMaker builds a TokenMaker from the configured secret.
func NewTokenMaker(secret string) (*TokenMaker, error) {
	if len(secret) != symmetricKeySize {
		return nil, fmt.Errorf("token secret must be %d bytes long, got %d", symmetricKeySize, len(secret))
	}
	return &TokenMaker{key: []byte(secret), expiry: AccessTokenExpiry}, nil
}

// Issue produces a signed token encoding the user id, email, and role.
func (m *TokenMaker) Issue(userID, email, role string) (string, error) {
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		Expiry: time.Now().Add(m.expiry),
	}
	token, err := paseto.NewV2().Encrypt(m.key, claims, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// Verify decrypts a raw token and checks its expiry and identity.
func (m *TokenMaker) Verify(token string) (*Claims, error) {
	var claims Claims
	if err := paseto.NewV2().Decrypt(token, m.key, &claims, nil); err != nil {
		log.Printf("Token decryption failed: %v", err)
		return nil, ErrInvalidCredential
	}
	if time.Now().After(claims.Expiry) {
		return nil, ErrExpiredCredential
	}
	if claims.UserID == "" {
		return nil, ErrMissingIdentity
	}
	return &claims, nil
}

// VerifyBearer validates a raw Authorization header value. The header must
// be exactly "Bearer <token>": any other whitespace count is rejected. An
// empty header is not an error; it yields no identity and the caller decides
// whether identity is required.
func (m *TokenMaker) VerifyBearer(header string) (*Claims, error) {
	if header == "" {
		return nil, nil
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, ErrMalformedCredential
	}
	return m.Verify(parts[1])
}
