package routes

import (
	"nprp-recruiteasy/internal/adapters/http/handlers"
	"nprp-recruiteasy/internal/adapters/http/middleware"
	"nprp-recruiteasy/internal/adapters/persistence/repositories"
	"nprp-recruiteasy/internal/config"
	"nprp-recruiteasy/internal/core/services"
	"nprp-recruiteasy/internal/pkg/mailer"
	"nprp-recruiteasy/internal/pkg/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, files storage.FileStore, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	applicantRepo := repositories.NewApplicantRepository(db)
	educationRepo := repositories.NewEducationRepository(db)
	documentRepo := repositories.NewDocumentRepository(db)
	templateRepo := repositories.NewTemplateRepository(db)

	// Mail transport
	mail := mailer.NewSMTPMailer(mailer.Config{
		Host:        cfg.SMTP.Host,
		Port:        cfg.SMTP.Port,
		Username:    cfg.SMTP.Username,
		Password:    cfg.SMTP.Password,
		FromAddress: cfg.SMTP.FromAddress,
		FromName:    cfg.SMTP.FromName,
	})

	// Initialize services
	authService := services.NewAuthService(userRepo, applicantRepo, cfg)
	applicantService := services.NewApplicantService(applicantRepo, educationRepo, documentRepo, files)
	templateService := services.NewTemplateService(templateRepo)
	notificationService := services.NewNotificationService(templateRepo, applicantRepo, mail)
	workflowService := services.NewWorkflowService(applicantRepo, notificationService)
	dashboardService := services.NewDashboardService(db)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(applicantService, workflowService)
	applicantHandler := handlers.NewApplicantHandler(applicantService, workflowService, notificationService)
	templateHandler := handlers.NewTemplateHandler(templateService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")

	// Auth routes (public, stricter rate limit)
	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/register", middleware.AuthRateLimiter(), authHandler.Register)
	authRoutes.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	authRoutes.Get("/me", middleware.AuthMiddleware(cfg), authHandler.Me)

	// Applicant profile routes
	profileRoutes := apiV1.Group("/profile")
	profileRoutes.Use(middleware.AuthMiddleware(cfg))
	profileRoutes.Use(middleware.ApplicantOnly())
	profileRoutes.Get("/", profileHandler.GetProfile)
	profileRoutes.Put("/", profileHandler.SaveProfile)
	profileRoutes.Post("/submit", profileHandler.SubmitApplication)
	profileRoutes.Get("/education", profileHandler.ListEducation)
	profileRoutes.Post("/education", profileHandler.AddEducation)
	profileRoutes.Delete("/education/:id", profileHandler.DeleteEducation)
	profileRoutes.Get("/documents", profileHandler.ListDocuments)
	profileRoutes.Post("/documents", profileHandler.UploadDocument)
	profileRoutes.Delete("/documents/:id", profileHandler.DeleteDocument)

	// Admin routes
	adminRoutes := apiV1.Group("/admin")
	adminRoutes.Use(middleware.AuthMiddleware(cfg))
	adminRoutes.Use(middleware.AdminOnly())

	adminRoutes.Get("/dashboard", dashboardHandler.GetDashboard)

	adminRoutes.Get("/applicants", applicantHandler.List)
	adminRoutes.Get("/applicants/:id", applicantHandler.Get)
	adminRoutes.Put("/applicants/:id/status", applicantHandler.UpdateStatus)
	adminRoutes.Post("/applicants/:id/email", applicantHandler.SendEmail)
	adminRoutes.Get("/applicants/:id/email/preview", applicantHandler.PreviewEmail)

	adminRoutes.Get("/templates", templateHandler.List)
	adminRoutes.Post("/templates", templateHandler.Create)
	adminRoutes.Get("/templates/:id", templateHandler.Get)
	adminRoutes.Put("/templates/:id", templateHandler.Update)
	adminRoutes.Delete("/templates/:id", templateHandler.Delete)
}
