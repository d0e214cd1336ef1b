package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"

	"shoeshop/internal/config"
	"shoeshop/internal/database"
	"shoeshop/internal/handlers"
	"shoeshop/internal/middleware"
	"shoeshop/internal/models"
	"shoeshop/internal/repositories"
	"shoeshop/internal/services"
	"shoeshop/pkg/events"
	"shoeshop/pkg/storage"
)

func main() {
	cfg := config.Load()
	if cfg.UsingDefaultJWTSecret() {
		log.Println("WARNING: JWT_SECRET is not set; using the publicly known default signing secret")
	}

	// --- Database ---
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	userRepo := repositories.NewGORMUserRepository(db)
	shoeRepo := repositories.NewGORMShoeRepository(db)

	// First boot against an empty store inserts the bootstrap admin and the
	// sample catalog; subsequent boots are no-ops.
	if err := database.Seed(userRepo, shoeRepo); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	// --- Upload storage ---
	uploadStore, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize upload storage: %v", err)
	}

	// --- Catalog events (optional) ---
	var publisher services.CatalogEventPublisher
	var mqClient *events.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = events.NewClient(events.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		publisher = mqClient
	}

	// --- Services ---
	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.JWTClockSkew)
	authService := services.NewAuthService(userRepo, tokenService)
	shoeService := services.NewShoeService(shoeRepo, publisher)
	userService := services.NewUserService(userRepo)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	shoeHandler := handlers.NewShoeHandler(shoeService)
	uploadHandler := handlers.NewUploadHandler(uploadStore)
	userHandler := handlers.NewUserHandler(userService)

	// --- Fiber app ---
	app := fiber.New()

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
	}))

	// Uploaded images are publicly reachable.
	app.Static("/uploads", uploadStore.Dir())

	// Admin-only middleware chain: authenticate, then authorize.
	adminOnly := []fiber.Handler{
		middleware.AuthRequired(tokenService),
		middleware.RequireRole(models.RoleAdmin),
	}

	authHandler.RegisterRoutes(app)
	shoeHandler.RegisterRoutes(app, adminOnly...)
	uploadHandler.RegisterRoutes(app, adminOnly...)
	userHandler.RegisterRoutes(app, adminOnly...)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Catalog event consumer ---
	if mqClient != nil {
		log.Println("Starting catalog event consumer...")
		messageHandler := func(msg amqp.Delivery) error {
			log.Printf("Catalog event (tag %d): %s", msg.DeliveryTag, string(msg.Body))
			return nil
		}
		if consumerErr := mqClient.ConsumeCatalogEvents(messageHandler); consumerErr != nil {
			log.Printf("Failed to start catalog event consumer: %v", consumerErr)
		}
	}

	// --- Start HTTP server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
