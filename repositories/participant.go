package repositories

import (
	"errors"

	"github.com/skillhub-api/database"
	"github.com/skillhub-api/models"
	"gorm.io/gorm"
)

// ParticipantRepository handles database operations for participants
type ParticipantRepository struct {
	tx *gorm.DB
}

// NewParticipantRepository creates a new participant repository instance
func NewParticipantRepository() *ParticipantRepository {
	return &ParticipantRepository{}
}

// WithTx returns a repository bound to the given transaction
func (r *ParticipantRepository) WithTx(tx *gorm.DB) *ParticipantRepository {
	return &ParticipantRepository{tx: tx}
}

// DB returns the database handle the repository works on
func (r *ParticipantRepository) DB() *gorm.DB {
	if r.tx != nil {
		return r.tx
	}
	return database.DB
}

// FindAll retrieves all participants with their enrollments
func (r *ParticipantRepository) FindAll() ([]models.Participant, error) {
	participants := make([]models.Participant, 0)
	result := r.DB().Preload("Enrollments").Order("id").Find(&participants)
	return participants, TranslateError(result.Error)
}

// FindByID retrieves a participant with its enrollments and the class of each enrollment
func (r *ParticipantRepository) FindByID(id uint) (models.Participant, error) {
	var participant models.Participant
	result := r.DB().Preload("Enrollments.Class").First(&participant, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return participant, notFound("participant")
	}
	return participant, TranslateError(result.Error)
}

// Exists checks if a participant exists
func (r *ParticipantRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.DB().Model(&models.Participant{}).Where("id = ?", id).Count(&count).Error
	return count > 0, TranslateError(err)
}

// Create inserts a new participant into the database
func (r *ParticipantRepository) Create(participant models.Participant) (models.Participant, error) {
	participant.ID = 0
	participant.Enrollments = nil
	result := r.DB().Create(&participant)
	return participant, TranslateError(result.Error)
}

// Update changes only the given columns and returns the stored record
func (r *ParticipantRepository) Update(id uint, fields map[string]interface{}) (models.Participant, error) {
	var participant models.Participant
	err := r.DB().Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&participant, id).Error; err != nil {
			return err
		}
		if len(fields) == 0 {
			return nil
		}
		if err := tx.Model(&participant).Updates(fields).Error; err != nil {
			return err
		}
		return tx.First(&participant, id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return participant, notFound("participant")
	}
	return participant, TranslateError(err)
}

// Delete removes a participant together with its enrollments and returns
// the removed participant and the number of enrollments removed with it.
// Both deletes share one transaction, so a failure leaves the participant
// and all its enrollments in place.
func (r *ParticipantRepository) Delete(id uint) (models.Participant, int64, error) {
	var participant models.Participant
	var removed int64
	err := r.DB().Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&participant, id).Error; err != nil {
			return err
		}

		// The foreign key cascades too, the sweep keeps the count and covers
		// connections without foreign key enforcement
		result := tx.Where("participant_id = ?", id).Delete(&models.Enrollment{})
		if result.Error != nil {
			return result.Error
		}
		removed = result.RowsAffected

		return tx.Delete(&models.Participant{}, id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return participant, 0, notFound("participant")
	}
	return participant, removed, TranslateError(err)
}
