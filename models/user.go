package models

import (
	"time"
)

// Role represents operator role types
type Role string

const (
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

// User is an operator account allowed to manage the training data when auth is enabled
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // Password is not exposed in JSON
	Name      *string   `json:"name" gorm:"default:null"`
	Role      Role      `json:"role" gorm:"type:varchar(10);default:'staff'"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
