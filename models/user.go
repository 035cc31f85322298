package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleCustomer UserRole = "customer"
)

// Valid reports whether the role is one of the known roles.
func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleCustomer
}

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Phone        string    `json:"phone"`
	Role         UserRole  `json:"role" gorm:"not null;default:'customer'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
