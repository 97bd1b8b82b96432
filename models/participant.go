package models

import (
	"time"
)

// Participant is a person who can be enrolled in training classes
type Participant struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Email       string    `json:"email" gorm:"not null;index"` // not unique, see DESIGN.md
	PhoneNumber *string   `json:"phoneNumber" gorm:"default:null"`
	Address     *string   `json:"address" gorm:"default:null"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Relations
	Enrollments []Enrollment `json:"enrollments,omitempty" gorm:"foreignKey:ParticipantID;constraint:OnDelete:CASCADE"`
}
