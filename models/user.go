package models

import (
	"time"
)

// Role enum
type Role string

const (
	RoleDonor Role = "donor"
	RoleAdmin Role = "admin"
)

// ParseRole converts an external role string into the closed enum.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleDonor, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// User model for authentication
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         Role      `gorm:"default:donor" json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
