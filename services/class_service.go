package services

import (
	"log"

	"github.com/skillhub-api/dto"
	"github.com/skillhub-api/metrics"
	"github.com/skillhub-api/models"
	"github.com/skillhub-api/repositories"
)

// ClassService handles business logic for training classes
type ClassService struct {
	classRepo *repositories.ClassRepository
}

// NewClassService creates a new class service instance
func NewClassService() *ClassService {
	return &ClassService{
		classRepo: repositories.NewClassRepository(),
	}
}

// ListClasses retrieves all classes
func (s *ClassService) ListClasses() ([]models.Class, error) {
	return s.classRepo.FindAll()
}

// GetClass retrieves a class by ID
func (s *ClassService) GetClass(id uint) (models.Class, error) {
	return s.classRepo.FindByID(id)
}

// CreateClass creates a new class
func (s *ClassService) CreateClass(req dto.CreateClassRequest) (models.Class, error) {
	class := models.Class{
		ClassName:   req.ClassName,
		Description: req.Description,
		Instructor:  req.Instructor,
	}
	return s.classRepo.Create(class)
}

// UpdateClass applies a partial update
func (s *ClassService) UpdateClass(id uint, req dto.UpdateClassRequest) (models.Class, error) {
	return s.classRepo.Update(id, req.Fields())
}

// DeleteClass removes a class and every enrollment referencing it
func (s *ClassService) DeleteClass(id uint) (models.Class, error) {
	class, removed, err := s.classRepo.Delete(id)
	if err != nil {
		return class, err
	}

	if removed > 0 {
		metrics.CascadeDeletedEnrollments.WithLabelValues("class").Add(float64(removed))
		log.Printf("Deleted class %d with %d enrollments", id, removed)
	}
	return class, nil
}
