package database

import (
	"errors"
	"fmt"
	"log"

	"github.com/skillhub-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DBConnection represents a named database connection
type DBConnection struct {
	DB     *gorm.DB
	Name   string
	Driver string
	DbURL  string
}

// NewDBConnection creates a new database connection
func NewDBConnection(name, driver, dbURL string) (*DBConnection, error) {
	if dbURL == "" {
		return nil, errors.New("database URL cannot be empty")
	}

	db, err := Open(driver, dbURL, "warn")
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %v", name, err)
	}

	log.Printf("✅ Connected to %s database", name)

	return &DBConnection{
		DB:     db,
		Name:   name,
		Driver: driver,
		DbURL:  dbURL,
	}, nil
}

// Migrate migrates the database schema
func (c *DBConnection) Migrate() error {
	log.Printf("Migrating %s database schema...", c.Name)
	if err := Migrate(c.DB); err != nil {
		return fmt.Errorf("failed to migrate %s database: %v", c.Name, err)
	}
	log.Printf("✅ %s database schema migrated", c.Name)
	return nil
}

// MigrateDataBetweenDatabases copies participants, classes and enrollments
// from source to target, keeping their ids. Rows already present in the
// target are left untouched. The copy runs in one transaction on the target.
func MigrateDataBetweenDatabases(source, target *DBConnection) error {
	log.Println("Starting data migration from source to target...")

	var participants []models.Participant
	if err := source.DB.Order("id").Find(&participants).Error; err != nil {
		return fmt.Errorf("failed to fetch participants: %v", err)
	}

	var classes []models.Class
	if err := source.DB.Order("id").Find(&classes).Error; err != nil {
		return fmt.Errorf("failed to fetch classes: %v", err)
	}

	var enrollments []models.Enrollment
	if err := source.DB.Order("id").Find(&enrollments).Error; err != nil {
		return fmt.Errorf("failed to fetch enrollments: %v", err)
	}

	err := target.DB.Transaction(func(tx *gorm.DB) error {
		// Parents first so enrollment foreign keys resolve
		log.Printf("Found %d participants to migrate", len(participants))
		if len(participants) > 0 {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&participants).Error; err != nil {
				return fmt.Errorf("failed to migrate participants: %v", err)
			}
		}

		log.Printf("Found %d classes to migrate", len(classes))
		if len(classes) > 0 {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&classes).Error; err != nil {
				return fmt.Errorf("failed to migrate classes: %v", err)
			}
		}

		log.Printf("Found %d enrollments to migrate", len(enrollments))
		if len(enrollments) > 0 {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&enrollments).Error; err != nil {
				return fmt.Errorf("failed to migrate enrollments: %v", err)
			}
		}

		return resetSequences(tx, target.Driver)
	})
	if err != nil {
		return err
	}

	log.Println("✅ Data migration completed successfully!")
	return nil
}

// resetSequences moves postgres identity sequences past the copied ids
func resetSequences(tx *gorm.DB, driver string) error {
	if driver != "postgres" && driver != "postgresql" {
		return nil
	}
	for _, table := range []string{"participants", "classes", "enrollments"} {
		query := fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE((SELECT MAX(id) FROM %s), 0) + 1, false)",
			table, table,
		)
		if err := tx.Exec(query).Error; err != nil {
			return fmt.Errorf("failed to reset sequence for %s: %v", table, err)
		}
	}
	return nil
}
