package models

import (
	"time"
)

// Class represents a training class participants can enroll in
type Class struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ClassName   string    `json:"className" gorm:"not null"`
	Description *string   `json:"description" gorm:"default:null"`
	Instructor  string    `json:"instructor" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt"`

	// Relations
	Enrollments []Enrollment `json:"enrollments,omitempty" gorm:"foreignKey:ClassID;constraint:OnDelete:CASCADE"`
}

// TableName sets the table name for Class model
func (Class) TableName() string {
	return "classes"
}
