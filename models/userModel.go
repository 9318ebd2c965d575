package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles. Registration always produces a patient; providers are created
// at seed time or by admin provisioning.
const (
	RolePatient  = "patient"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	return role == RolePatient || role == RoleProvider || role == RoleAdmin
}

// User represents an account in the system. Identity fields are immutable
// after creation except IsActive and Role.
type User struct {
	ID           string    `gorm:"primaryKey;column:id" json:"id"`
	Email        string    `gorm:"size:255;not null;unique;index;column:email" json:"email"`
	PasswordHash string    `gorm:"size:255;not null;column:password_hash" json:"-"`
	Role         string    `gorm:"size:20;not null;check:role IN ('patient', 'provider', 'admin');column:role" json:"role"`
	ConsentGiven bool      `gorm:"not null;default:false;column:consent_given" json:"consent_given"`
	IsActive     bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime;column:updated_at" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns a UUID primary key when none was supplied.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

// UserResponse is the client-facing view of a User.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResponse strips credentials and internal fields for API output.
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
