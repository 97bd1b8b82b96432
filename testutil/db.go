package testutil

import (
	"path/filepath"
	"testing"

	"github.com/skillhub-api/config"
	"github.com/skillhub-api/database"
	"github.com/skillhub-api/models"
	"gorm.io/gorm"
)

// SetupTestDB points database.DB at a fresh migrated sqlite file for the
// duration of the test. A single connection is used so concurrent callers
// queue instead of failing with SQLITE_BUSY.
func SetupTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "skillhub_test.db")
	db, err := database.Open("sqlite", path, "silent")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	previous := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = previous
		sqlDB.Close()
	})

	return db
}

// TestConfig returns a configuration suited to router tests
func TestConfig() *config.Config {
	cfg := &config.Config{
		GinMode:            "test",
		DBDriver:           "sqlite",
		CORSAllowedOrigins: []string{"*"},
		JWTSecret:          "test-secret",
		MetricsEnabled:     true,
	}
	config.AppConfig = cfg
	return cfg
}

// CreateParticipant inserts a participant directly
func CreateParticipant(t testing.TB, db *gorm.DB, name, email string) models.Participant {
	t.Helper()
	participant := models.Participant{Name: name, Email: email}
	if err := db.Create(&participant).Error; err != nil {
		t.Fatalf("create participant: %v", err)
	}
	return participant
}

// CreateClass inserts a class directly
func CreateClass(t testing.TB, db *gorm.DB, className, instructor string) models.Class {
	t.Helper()
	class := models.Class{ClassName: className, Instructor: instructor}
	if err := db.Create(&class).Error; err != nil {
		t.Fatalf("create class: %v", err)
	}
	return class
}

// CreateEnrollment inserts an enrollment directly, bypassing the duplicate lookup
func CreateEnrollment(t testing.TB, db *gorm.DB, participantID, classID uint) models.Enrollment {
	t.Helper()
	enrollment := models.Enrollment{ParticipantID: participantID, ClassID: classID}
	if err := db.Create(&enrollment).Error; err != nil {
		t.Fatalf("create enrollment: %v", err)
	}
	return enrollment
}
