package dto

// CreateEnrollmentRequest is the payload for enrolling a participant in a class
type CreateEnrollmentRequest struct {
	ParticipantID uint `json:"participantId" binding:"required"`
	ClassID       uint `json:"classId" binding:"required"`
}
