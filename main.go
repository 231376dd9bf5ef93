package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/grace-hospital/grace-backend/database"
	"github.com/grace-hospital/grace-backend/internal/handlers"
	"github.com/grace-hospital/grace-backend/internal/jobs"
	"github.com/grace-hospital/grace-backend/internal/models"
	"github.com/grace-hospital/grace-backend/internal/routes"
	"github.com/grace-hospital/grace-backend/internal/services"
	"github.com/grace-hospital/grace-backend/internal/storage"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found - checking environment variables")
	}

	log.Printf("🔍 OPENAI_API_KEY exists: %v", os.Getenv("OPENAI_API_KEY") != "")
	log.Printf("🔍 TWILIO_ACCOUNT_SID exists: %v", os.Getenv("TWILIO_ACCOUNT_SID") != "")
	log.Printf("🔍 SENDGRID_API_KEY exists: %v", os.Getenv("SENDGRID_API_KEY") != "")

	// Initialize storage
	var store storage.Store

	if os.Getenv("USE_MEMORY_STORE") == "true" {
		log.Println("⚠️  Using in-memory storage (not for production!)")
		store = storage.NewMemoryStore()
	} else {
		log.Println("📦 Connecting to PostgreSQL database...")
		database.Connect()

		log.Println("🔄 Running database migrations...")
		err := database.DB.AutoMigrate(
			&models.Medication{},
			&models.AppointmentLog{},
		)
		if err != nil {
			log.Fatal("Failed to migrate database:", err)
		}
		log.Println("✅ Database migrations completed!")

		store = storage.NewDatabaseStore(database.DB)
		log.Println("✅ Using PostgreSQL database storage")
	}
	storage.SetStore(store)

	// Initialize external capabilities
	llmClient := services.NewOpenAIClient()
	log.Println("✅ OpenAI client initialized")

	calendarClient, err := services.NewGoogleCalendar(context.Background())
	if err != nil {
		log.Fatal("Failed to initialize Google Calendar:", err)
	}
	log.Println("✅ Google Calendar service initialized")

	notifier, err := services.NewNotifierService()
	if err != nil {
		log.Fatal("Failed to initialize notifier:", err)
	}
	log.Println("✅ Notifier service initialized")

	// Initialize session store and dispatcher
	sessionStore := services.NewSessionStore()
	dispatcher := services.NewDispatcher(sessionStore, llmClient, calendarClient, notifier, store)
	dispatcher.SetContact(os.Getenv("NOTIFY_EMAIL_TO"), os.Getenv("NOTIFY_SMS_TO"))

	// Initialize and start the daily reminder jobs
	reminderJob := jobs.NewReminderJob(store, notifier)
	reminderJob.Start()

	log.Println("✅ All services initialized and scheduled jobs started")

	// Create fiber app
	app := fiber.New(fiber.Config{
		AppName: "Grace Virtual Nurse v1.0.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	// Health check endpoint for monitoring
	app.Get("/health", func(c *fiber.Ctx) error {
		status := "healthy"
		statusCode := 200

		if os.Getenv("USE_MEMORY_STORE") != "true" && database.DB != nil {
			sqlDB, err := database.DB.DB()
			if err != nil || sqlDB.Ping() != nil {
				status = "unhealthy"
				statusCode = 503
			}
		}

		return c.Status(statusCode).JSON(fiber.Map{
			"status": status,
			"services": fiber.Map{
				"database": status == "healthy",
				"twilio":   os.Getenv("TWILIO_ACCOUNT_SID") != "",
				"openai":   os.Getenv("OPENAI_API_KEY") != "",
				"sessions": sessionStore.Count(),
			},
		})
	})

	// Setup routes
	chatHandler := handlers.NewChatHandler(dispatcher)
	routes.SetupRoutes(app, chatHandler)

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Handle graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("\n🛑 Gracefully shutting down...")
		log.Println("⏹️  Stopping reminder jobs...")
		reminderJob.Stop()
		log.Println("⏹️  Shutting down server...")
		_ = app.Shutdown()
	}()

	// Start server
	log.Println("========================================")
	log.Printf("🚀 Grace Virtual Nurse starting on port %s", port)
	log.Printf("📊 Storage: %s", getStorageType())
	log.Println("========================================")
	log.Println("🔧 Active Services:")
	log.Println("  ✓ Intent-based chat dispatch")
	log.Println("  ✓ Appointment booking via Google Calendar")
	log.Println("  ✓ Medication reminder setup")
	log.Println("  ✓ Scheduled daily reminders (08:00 / 21:00)")
	log.Println("========================================")

	log.Fatal(app.Listen(":" + port))
}

func getStorageType() string {
	if os.Getenv("USE_MEMORY_STORE") == "true" {
		return "In-Memory (Testing)"
	}
	return "PostgreSQL Database"
}
