package models

import (
	"time"
)

// EnrollmentPairIndex is the unique index guarding one enrollment per participant and class
const EnrollmentPairIndex = "idx_enrollments_participant_class"

// Enrollment links a participant to a class. It is never updated: re-enrolling
// means deleting the row and creating a new one.
type Enrollment struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	ParticipantID  uint      `json:"participantId" gorm:"not null;uniqueIndex:idx_enrollments_participant_class,priority:1"`
	ClassID        uint      `json:"classId" gorm:"not null;uniqueIndex:idx_enrollments_participant_class,priority:2;index"`
	EnrollmentDate time.Time `json:"enrollmentDate" gorm:"not null;autoCreateTime"`

	// Relations
	Participant *Participant `json:"participant,omitempty" gorm:"foreignKey:ParticipantID"`
	Class       *Class       `json:"class,omitempty" gorm:"foreignKey:ClassID"`
}
