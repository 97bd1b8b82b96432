package main

import (
	"log"

	"github.com/gin-gonic/gin"
	v1 "github.com/skillhub-api/api/v1"
	"github.com/skillhub-api/config"
	"github.com/skillhub-api/database"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	database.Initialize(cfg)

	router := v1.NewRouter(cfg)

	// Start server
	log.Printf("🚀 SkillHub API starting on port %s", cfg.Port)
	log.Printf("💡 API Authentication: %s", func() string {
		if cfg.AuthEnabled {
			return "Enabled"
		}
		return "Disabled"
	}())
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
