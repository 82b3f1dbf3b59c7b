package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"nprp-recruiteasy/internal/adapters/http/middleware"
	"nprp-recruiteasy/internal/adapters/http/routes"
	"nprp-recruiteasy/internal/adapters/persistence/models"
	"nprp-recruiteasy/internal/config"
	"nprp-recruiteasy/internal/pkg/storage"

	"github.com/gofiber/fiber/v2"

	_ "nprp-recruiteasy/docs" // Swagger docs
)

// @title Police Recruitment Portal API
// @version 1.0
// @description Recruitment tracking API: applicant profiles, documents, status workflow and notification emails
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@recruitment.gov.ng

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host api.recruitment.npf.gov.ng
// @BasePath /api/v1
// @schemes https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed admin account and starter email templates
	if err := config.NewSeeder(db).Run(); err != nil {
		log.Printf("⚠️ Warning: Failed to seed database: %v", err)
	}

	// Document upload storage
	files, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("❌ Failed to initialize upload storage: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Police Recruitment Portal API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db, storage and cfg for dependency injection)
	routes.Setup(app, db, files, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
