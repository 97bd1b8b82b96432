package services

import (
	"errors"
	"log"

	"github.com/skillhub-api/dto"
	"github.com/skillhub-api/metrics"
	"github.com/skillhub-api/models"
	"github.com/skillhub-api/repositories"
	"gorm.io/gorm"
)

// EnrollmentService handles business logic for enrollments
type EnrollmentService struct {
	enrollmentRepo  *repositories.EnrollmentRepository
	participantRepo *repositories.ParticipantRepository
	classRepo       *repositories.ClassRepository
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService() *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo:  repositories.NewEnrollmentRepository(),
		participantRepo: repositories.NewParticipantRepository(),
		classRepo:       repositories.NewClassRepository(),
	}
}

// CreateEnrollment enrolls a participant in a class.
//
// The participant and class are checked first so a missing side gets a
// precise message, then the pair is looked up to reject duplicates early.
// The lookup is only a fast path: two concurrent requests may both pass it,
// and the unique index on (participant_id, class_id) rejects the slower one.
// Both paths return ErrAlreadyEnrolled.
func (s *EnrollmentService) CreateEnrollment(req dto.CreateEnrollmentRequest) (models.Enrollment, error) {
	var created models.Enrollment

	err := s.enrollmentRepo.DB().Transaction(func(tx *gorm.DB) error {
		participants := s.participantRepo.WithTx(tx)
		classes := s.classRepo.WithTx(tx)
		enrollments := s.enrollmentRepo.WithTx(tx)

		exists, err := participants.Exists(req.ParticipantID)
		if err != nil {
			return err
		}
		if !exists {
			return errParticipantMissing
		}

		exists, err = classes.Exists(req.ClassID)
		if err != nil {
			return err
		}
		if !exists {
			return errClassMissing
		}

		enrolled, err := enrollments.ExistsByPair(req.ParticipantID, req.ClassID)
		if err != nil {
			return err
		}
		if enrolled {
			metrics.EnrollmentConflicts.WithLabelValues("precheck").Inc()
			return ErrAlreadyEnrolled
		}

		created, err = enrollments.Create(req.ParticipantID, req.ClassID)
		if errors.Is(err, repositories.ErrConflict) {
			metrics.EnrollmentConflicts.WithLabelValues("constraint").Inc()
			return ErrAlreadyEnrolled
		}
		return err
	})
	if err != nil {
		return models.Enrollment{}, repositories.TranslateError(err)
	}

	metrics.EnrollmentsCreated.Inc()
	log.Printf("Participant %d enrolled in class %d (enrollment %d)", created.ParticipantID, created.ClassID, created.ID)
	return created, nil
}

// ListEnrollments returns every enrollment with its participant and class
func (s *EnrollmentService) ListEnrollments() ([]models.Enrollment, error) {
	return s.enrollmentRepo.FindAll()
}

// ListByParticipant returns the enrollments of a participant with their class.
// An unknown participant yields an empty list.
func (s *EnrollmentService) ListByParticipant(participantID uint) ([]models.Enrollment, error) {
	return s.enrollmentRepo.FindByParticipantID(participantID)
}

// ListByClass returns the enrollments of a class with their participant.
// An unknown class yields an empty list.
func (s *EnrollmentService) ListByClass(classID uint) ([]models.Enrollment, error) {
	return s.enrollmentRepo.FindByClassID(classID)
}

// DeleteEnrollment removes a single enrollment
func (s *EnrollmentService) DeleteEnrollment(id uint) (models.Enrollment, error) {
	return s.enrollmentRepo.Delete(id)
}
