package model

import (
	"time"
)

// User represents a registered account (an institute staff member)
type User struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Name          string    `gorm:"not null" json:"name"`
	InstituteName string    `gorm:"not null" json:"institute_name"`
	Email         string    `gorm:"uniqueIndex;not null" json:"email"`
	MobileNumber  string    `gorm:"type:varchar(10);not null" json:"mobile_number"`
	PasswordHash  string    `gorm:"not null" json:"-"` // Never expose password in JSON
	TokenVersion  int       `gorm:"default:0" json:"-"` // Increment to invalidate all user tokens
}

// PublicUser is the subset of user fields returned by auth endpoints.
// The password hash never leaves the model layer.
type PublicUser struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	InstituteName string `json:"instituteName"`
}

// Public returns the externally visible view of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		Name:          u.Name,
		Email:         u.Email,
		InstituteName: u.InstituteName,
	}
}
