package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser   = "user"
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// ValidRole reports whether r is one of the roles the API accepts.
func ValidRole(r string) bool {
	switch r {
	case RoleUser, RoleMember, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255" json:"-"`
	Role         string `gorm:"size:20;default:'user'" json:"role"`

	// MemberDate is stamped when a booking approval promotes the user.
	MemberDate *time.Time `json:"memberDate,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
