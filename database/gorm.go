package database

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/skillhub-api/config"
	"github.com/skillhub-api/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Models lists every table of the schema in dependency order
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Participant{},
		&models.Class{},
		&models.Enrollment{},
	}
}

// Initialize sets up the GORM database connection and migrates the schema
func Initialize(cfg *config.Config) {
	db, err := Open(cfg.DBDriver, cfg.DatabaseURL, cfg.DBLogLevel)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Get and configure the underlying SQL DB
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get SQL DB: %v", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	if err := Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	DB = db
	log.Printf("✅ Connected to %s database", cfg.DBDriver)

	if version, err := serverVersion(db, cfg.DBDriver); err == nil {
		log.Printf("📊 Database: %s", version)
	}
}

// Open connects to a postgres or sqlite database. Translated errors are
// enabled so duplicate and foreign key failures surface as gorm sentinels.
func Open(driver, dsn, logLevel string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres", "postgresql":
		dialector = postgres.Open(dsn)
	case "sqlite", "sqlite3":
		dialector = sqlite.Open(SQLiteDSN(dsn))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	// Configure GORM logger
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  parseLogLevel(logLevel),
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	return db, nil
}

// SQLiteDSN switches on foreign keys for every pooled sqlite connection.
// Cascade rules are ignored by sqlite otherwise.
func SQLiteDSN(path string) string {
	if strings.Contains(path, "_foreign_keys=") || strings.Contains(path, "_fk=") {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on&_busy_timeout=5000"
}

// Migrate creates or updates the schema
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// Ping checks that the database is reachable
func Ping() error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func parseLogLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

func serverVersion(db *gorm.DB, driver string) (string, error) {
	query := "SELECT version()"
	if driver == "sqlite" || driver == "sqlite3" {
		query = "SELECT sqlite_version()"
	}
	var version string
	err := db.Raw(query).Scan(&version).Error
	return version, err
}
