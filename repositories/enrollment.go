package repositories

import (
	"errors"

	"github.com/skillhub-api/database"
	"github.com/skillhub-api/models"
	"gorm.io/gorm"
)

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	tx *gorm.DB
}

// NewEnrollmentRepository creates a new enrollment repository instance
func NewEnrollmentRepository() *EnrollmentRepository {
	return &EnrollmentRepository{}
}

// WithTx returns a repository bound to the given transaction
func (r *EnrollmentRepository) WithTx(tx *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{tx: tx}
}

// DB returns the database handle the repository works on
func (r *EnrollmentRepository) DB() *gorm.DB {
	if r.tx != nil {
		return r.tx
	}
	return database.DB
}

// FindAll retrieves every enrollment with its participant and class
func (r *EnrollmentRepository) FindAll() ([]models.Enrollment, error) {
	enrollments := make([]models.Enrollment, 0)
	result := r.DB().Preload("Participant").Preload("Class").Order("id").Find(&enrollments)
	return enrollments, TranslateError(result.Error)
}

// FindByParticipantID retrieves the enrollments of a participant with their class
func (r *EnrollmentRepository) FindByParticipantID(participantID uint) ([]models.Enrollment, error) {
	enrollments := make([]models.Enrollment, 0)
	result := r.DB().Preload("Class").Where("participant_id = ?", participantID).Order("id").Find(&enrollments)
	return enrollments, TranslateError(result.Error)
}

// FindByClassID retrieves the enrollments of a class with their participant
func (r *EnrollmentRepository) FindByClassID(classID uint) ([]models.Enrollment, error) {
	enrollments := make([]models.Enrollment, 0)
	result := r.DB().Preload("Participant").Where("class_id = ?", classID).Order("id").Find(&enrollments)
	return enrollments, TranslateError(result.Error)
}

// FindByID retrieves an enrollment by its ID
func (r *EnrollmentRepository) FindByID(id uint) (models.Enrollment, error) {
	var enrollment models.Enrollment
	result := r.DB().First(&enrollment, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return enrollment, notFound("enrollment")
	}
	return enrollment, TranslateError(result.Error)
}

// ExistsByPair checks if the participant is already enrolled in the class
func (r *EnrollmentRepository) ExistsByPair(participantID, classID uint) (bool, error) {
	var count int64
	result := r.DB().Model(&models.Enrollment{}).
		Where("participant_id = ? AND class_id = ?", participantID, classID).
		Count(&count)
	return count > 0, TranslateError(result.Error)
}

// CountByPair counts enrollments for the participant and class
func (r *EnrollmentRepository) CountByPair(participantID, classID uint) (int64, error) {
	var count int64
	result := r.DB().Model(&models.Enrollment{}).
		Where("participant_id = ? AND class_id = ?", participantID, classID).
		Count(&count)
	return count, TranslateError(result.Error)
}

// Create inserts a new enrollment. The enrollment date is always assigned
// here. A second row for the same pair is rejected by the unique index and
// reported as ErrConflict.
func (r *EnrollmentRepository) Create(participantID, classID uint) (models.Enrollment, error) {
	enrollment := models.Enrollment{
		ParticipantID: participantID,
		ClassID:       classID,
	}
	result := r.DB().Create(&enrollment)
	return enrollment, TranslateError(result.Error)
}

// Delete removes an enrollment and returns the removed record
func (r *EnrollmentRepository) Delete(id uint) (models.Enrollment, error) {
	var enrollment models.Enrollment
	err := r.DB().Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&enrollment, id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Enrollment{}, id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return enrollment, notFound("enrollment")
	}
	return enrollment, TranslateError(err)
}
