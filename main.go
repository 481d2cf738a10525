package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/offerme/offerme-backend/database"
	"github.com/offerme/offerme-backend/internal/config"
	"github.com/offerme/offerme-backend/internal/handlers"
	"github.com/offerme/offerme-backend/internal/jobs"
	"github.com/offerme/offerme-backend/internal/models"
	"github.com/offerme/offerme-backend/internal/routes"
	"github.com/offerme/offerme-backend/internal/services"
	"github.com/offerme/offerme-backend/internal/storage"
)

const version = "1.0.0"

func main() {
	// Load .env file for local development
	if os.Getenv("INSTANCE_CONNECTION_NAME") == "" {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("⚠️  No .env file found - checking environment variables")
		}
	}

	cfg := config.Load()

	if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" {
		log.Println("⚠️  Twilio credentials not found - WhatsApp features will be limited")
	}

	// Initialize storage
	var store storage.Store
	var dbPing func() error

	if cfg.UseMemoryStore {
		log.Println("⚠️  Using in-memory storage (not for production!)")
		store = storage.NewMemoryStore()
	} else {
		log.Println("📦 Connecting to PostgreSQL database...")
		database.Connect()

		log.Println("🔄 Running database migrations...")
		err := database.DB.AutoMigrate(
			&models.TemplateLog{},
			&models.BotProfile{},
			&models.Lead{},
		)
		if err != nil {
			log.Fatal("Failed to migrate database:", err)
		}
		log.Println("✅ Database migrations completed!")

		store = storage.NewDatabaseStore(database.DB)
		dbPing = database.Ping
		log.Println("✅ Using PostgreSQL database storage")
	}
	storage.SetStore(store)

	// Initialize outbound gateways
	twilioService, err := services.NewTwilioService(cfg)
	if err != nil {
		log.Fatal("Failed to initialize Twilio service:", err)
	}
	log.Println("✅ Twilio service initialized")

	completionService, err := services.NewOpenRouterService(cfg)
	if err != nil {
		log.Fatal("Failed to initialize completion service:", err)
	}
	log.Println("✅ Completion service initialized")

	emailService, err := services.NewEmailService(cfg)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}
	log.Println("✅ Email service initialized")

	// Initialize routing
	sessions := services.NewSessionStore(cfg.SessionMaxTurns)
	detector := services.NewEscalationDetector(cfg.EscalationTriggers)
	responder := services.NewResponder(
		store,
		sessions,
		twilioService,
		completionService,
		emailService,
		detector,
		cfg.TemplateContentSID,
	)

	// Start the daily lead digest
	digestJob := jobs.NewDigestJob(store, emailService)
	digestJob.Start()

	// Create fiber app
	app := fiber.New(fiber.Config{
		AppName: "OfferMe WhatsApp Backend v" + version,
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
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// Setup routes
	whatsappHandler := handlers.NewWhatsAppHandler(responder)
	adminHandler := handlers.NewAdminHandler(store)
	healthHandler := handlers.NewHealthHandler(version, store, dbPing)
	routes.SetupRoutes(app, cfg, whatsappHandler, adminHandler, healthHandler)

	// Handle graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("\n🛑 Gracefully shutting down...")
		digestJob.Stop()
		_ = app.Shutdown()
	}()

	// Start server
	log.Println("========================================")
	log.Printf("🚀 OfferMe WhatsApp Backend starting on port %s", cfg.Port)
	log.Printf("📊 Storage: %s", storageType(cfg))
	log.Printf("🤖 Completion model: %s", cfg.OpenRouterModel)
	log.Printf("📱 WhatsApp: %s", whatsappStatus(cfg))
	log.Println("========================================")

	log.Fatal(app.Listen(":" + cfg.Port))
}

func storageType(cfg *config.Config) string {
	if cfg.UseMemoryStore {
		return "In-Memory (Testing)"
	}
	return "PostgreSQL Database"
}

func whatsappStatus(cfg *config.Config) string {
	if cfg.TwilioAccountSID == "" {
		return "Not configured"
	}
	return "Configured"
}
