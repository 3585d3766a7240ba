package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"casual-jobs-connect/internal/auth"
	"casual-jobs-connect/internal/config"
	"casual-jobs-connect/internal/database"
	"casual-jobs-connect/internal/handlers"
	"casual-jobs-connect/internal/jobs"
	"casual-jobs-connect/internal/models"
	"casual-jobs-connect/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize JWT
	auth.InitJWT(cfg.App.JWTSecret)

	// Connect to database
	if err := database.Connect(cfg.GetDSN()); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.AutoMigrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db := database.GetDB()

	// Initialize services
	authService := services.NewAuthService(db)
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db)
	profileService := services.NewProfileService(db)
	skillService := services.NewSkillService(db)
	adminService := services.NewAdminService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	jobHandler := handlers.NewJobHandler(jobService, applicationService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	profileHandler := handlers.NewProfileHandler(profileService, skillService)
	adminHandler := handlers.NewAdminHandler(adminService, skillService)

	// Start the status sweep so published jobs close on schedule even
	// when nobody reads them
	expiryJob := jobs.NewExpiryJob(db)
	expiryJob.Start(time.Duration(cfg.App.SweepIntervalMinutes) * time.Minute)
	log.Println("Job expiry sweep started")

	// Set up Gin router
	router := gin.Default()

	// CORS middleware
	allowedOrigins := []string{
		"http://localhost:3000",
		"http://localhost:5173",
		"http://127.0.0.1:3000",
		"http://127.0.0.1:5173",
	}
	if cfg.App.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.App.FrontendURL)
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Authentication routes (public)
	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
	}

	// Authenticated /auth/me route
	authProtected := router.Group("/auth")
	authProtected.Use(auth.AuthMiddleware())
	{
		authProtected.GET("/me", authHandler.GetMe)
	}

	// Public catalog and listing routes
	router.GET("/api/jobs", jobHandler.ListJobs)
	router.GET("/api/jobs/recent", jobHandler.RecentJobs)
	router.GET("/api/jobs/:id", auth.OptionalAuthMiddleware(), jobHandler.GetJob)
	router.GET("/api/categories", jobHandler.Categories)
	router.GET("/api/skills", profileHandler.Skills)

	// API routes (protected)
	api := router.Group("/api")
	api.Use(auth.AuthMiddleware())
	{
		// Profile endpoints
		api.GET("/profile", profileHandler.GetProfile)
		api.PUT("/profile", profileHandler.UpdateProfile)

		// Complaints can be filed by any authenticated user
		api.POST("/complaints", adminHandler.FileComplaint)

		// Employer endpoints
		employer := api.Group("")
		employer.Use(auth.RequireRole(models.RoleEmployer))
		{
			employer.POST("/jobs", jobHandler.CreateJob)
			employer.PUT("/jobs/:id", jobHandler.UpdateJob)
			employer.GET("/my-jobs", jobHandler.MyJobs)
			employer.GET("/jobs/:id/applications", applicationHandler.ListForJob)
			employer.POST("/applications/:id/accept", applicationHandler.Accept)
			employer.POST("/applications/:id/reject", applicationHandler.Reject)
		}

		// Worker endpoints
		worker := api.Group("")
		worker.Use(auth.RequireRole(models.RoleWorker))
		{
			worker.POST("/jobs/:id/apply", applicationHandler.Apply)
			worker.GET("/my-applications", applicationHandler.MyApplications)
			worker.POST("/applications/:id/withdraw", applicationHandler.Withdraw)
		}
	}

	// Admin routes (protected + admin only)
	admin := router.Group("/api/admin")
	admin.Use(auth.AuthMiddleware())
	admin.Use(adminHandler.AdminMiddleware())
	{
		admin.GET("/dashboard", adminHandler.GetDashboard)
		admin.GET("/activity", adminHandler.GetActivityLog)

		// User management
		admin.GET("/users", adminHandler.GetUsers)
		admin.POST("/users/:id/verify", adminHandler.VerifyUser)
		admin.POST("/users/:id/ban", adminHandler.BanUser)

		// Complaint moderation
		admin.GET("/complaints", adminHandler.GetComplaints)
		admin.GET("/complaints/:id", adminHandler.GetComplaint)
		admin.PUT("/complaints/:id", adminHandler.UpdateComplaint)

		// Catalog management
		admin.POST("/skills", adminHandler.AddSkill)
		admin.POST("/skills/:id/toggle", adminHandler.ToggleSkill)
		admin.POST("/categories", adminHandler.CreateCategory)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		log.Printf("Health check: http://localhost:%s/health", cfg.Server.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with 5 second timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
