package main

import (
	"log"
	"os"

	"github.com/skillhub-api/config"
	"github.com/skillhub-api/database"
)

// Copies participants, classes and enrollments from one database to another.
//
//	SOURCE_DB_DRIVER=sqlite SOURCE_DATABASE_URL=./skillhub.db \
//	TARGET_DATABASE_URL=postgres://... go run ./scripts
func main() {
	config.LoadEnv()
	log.Println("Starting database migration...")

	sourceDBURL := os.Getenv("SOURCE_DATABASE_URL")
	if sourceDBURL == "" {
		log.Fatal("SOURCE_DATABASE_URL is required")
	}
	targetDBURL := os.Getenv("TARGET_DATABASE_URL")
	if targetDBURL == "" {
		log.Fatal("TARGET_DATABASE_URL is required")
	}

	// Connect to source database
	sourceDB, err := database.NewDBConnection("source", config.GetEnv("SOURCE_DB_DRIVER", "postgres"), sourceDBURL)
	if err != nil {
		log.Fatalf("Failed to connect to source database: %v", err)
	}

	// Connect to target database
	targetDB, err := database.NewDBConnection("target", config.GetEnv("TARGET_DB_DRIVER", "postgres"), targetDBURL)
	if err != nil {
		log.Fatalf("Failed to connect to target database: %v", err)
	}

	// Ensure target database schema is migrated
	if err := targetDB.Migrate(); err != nil {
		log.Fatalf("Failed to migrate target database schema: %v", err)
	}

	// Migrate data from source to target
	if err := database.MigrateDataBetweenDatabases(sourceDB, targetDB); err != nil {
		log.Fatalf("Data migration failed: %v", err)
	}

	log.Println("Database migration completed successfully!")
}
