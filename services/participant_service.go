package services

import (
	"log"

	"github.com/skillhub-api/dto"
	"github.com/skillhub-api/metrics"
	"github.com/skillhub-api/models"
	"github.com/skillhub-api/repositories"
)

// ParticipantService handles business logic for participants
type ParticipantService struct {
	participantRepo *repositories.ParticipantRepository
}

// NewParticipantService creates a new participant service instance
func NewParticipantService() *ParticipantService {
	return &ParticipantService{
		participantRepo: repositories.NewParticipantRepository(),
	}
}

// ListParticipants retrieves all participants with their enrollments
func (s *ParticipantService) ListParticipants() ([]models.Participant, error) {
	return s.participantRepo.FindAll()
}

// GetParticipant retrieves a participant with the classes it is enrolled in
func (s *ParticipantService) GetParticipant(id uint) (models.Participant, error) {
	return s.participantRepo.FindByID(id)
}

// CreateParticipant registers a new participant
func (s *ParticipantService) CreateParticipant(req dto.CreateParticipantRequest) (models.Participant, error) {
	participant := models.Participant{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	}
	return s.participantRepo.Create(participant)
}

// UpdateParticipant applies a partial update
func (s *ParticipantService) UpdateParticipant(id uint, req dto.UpdateParticipantRequest) (models.Participant, error) {
	return s.participantRepo.Update(id, req.Fields())
}

// DeleteParticipant removes a participant and every enrollment referencing it
func (s *ParticipantService) DeleteParticipant(id uint) (models.Participant, error) {
	participant, removed, err := s.participantRepo.Delete(id)
	if err != nil {
		return participant, err
	}

	if removed > 0 {
		metrics.CascadeDeletedEnrollments.WithLabelValues("participant").Add(float64(removed))
		log.Printf("Deleted participant %d with %d enrollments", id, removed)
	}
	return participant, nil
}
