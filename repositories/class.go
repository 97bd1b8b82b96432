package repositories

import (
	"errors"

	"github.com/skillhub-api/database"
	"github.com/skillhub-api/models"
	"gorm.io/gorm"
)

// ClassRepository handles database operations for classes
type ClassRepository struct {
	tx *gorm.DB
}

// NewClassRepository creates a new class repository instance
func NewClassRepository() *ClassRepository {
	return &ClassRepository{}
}

// WithTx returns a repository bound to the given transaction
func (r *ClassRepository) WithTx(tx *gorm.DB) *ClassRepository {
	return &ClassRepository{tx: tx}
}

// DB returns the database handle the repository works on
func (r *ClassRepository) DB() *gorm.DB {
	if r.tx != nil {
		return r.tx
	}
	return database.DB
}

// FindAll retrieves all classes
func (r *ClassRepository) FindAll() ([]models.Class, error) {
	classes := make([]models.Class, 0)
	result := r.DB().Order("id").Find(&classes)
	return classes, TranslateError(result.Error)
}

// FindByID retrieves a class by its ID
func (r *ClassRepository) FindByID(id uint) (models.Class, error) {
	var class models.Class
	result := r.DB().First(&class, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return class, notFound("class")
	}
	return class, TranslateError(result.Error)
}

// Exists checks if a class exists
func (r *ClassRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.DB().Model(&models.Class{}).Where("id = ?", id).Count(&count).Error
	return count > 0, TranslateError(err)
}

// Create inserts a new class into the database
func (r *ClassRepository) Create(class models.Class) (models.Class, error) {
	class.ID = 0
	class.Enrollments = nil
	result := r.DB().Create(&class)
	return class, TranslateError(result.Error)
}

// Update changes only the given columns and returns the stored record
func (r *ClassRepository) Update(id uint, fields map[string]interface{}) (models.Class, error) {
	var class models.Class
	err := r.DB().Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&class, id).Error; err != nil {
			return err
		}
		if len(fields) == 0 {
			return nil
		}
		if err := tx.Model(&class).Updates(fields).Error; err != nil {
			return err
		}
		return tx.First(&class, id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return class, notFound("class")
	}
	return class, TranslateError(err)
}

// Delete removes a class together with its enrollments in one transaction
// and returns the removed class and the number of enrollments removed with it
func (r *ClassRepository) Delete(id uint) (models.Class, int64, error) {
	var class models.Class
	var removed int64
	err := r.DB().Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&class, id).Error; err != nil {
			return err
		}

		result := tx.Where("class_id = ?", id).Delete(&models.Enrollment{})
		if result.Error != nil {
			return result.Error
		}
		removed = result.RowsAffected

		return tx.Delete(&models.Class{}, id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return class, 0, notFound("class")
	}
	return class, removed, TranslateError(err)
}
