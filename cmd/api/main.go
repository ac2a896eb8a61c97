package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/webway/campus-events-backend/internal/config"
	"github.com/webway/campus-events-backend/internal/handler"
	"github.com/webway/campus-events-backend/internal/middleware"
	"github.com/webway/campus-events-backend/internal/repository"
	"github.com/webway/campus-events-backend/internal/service"
	"github.com/webway/campus-events-backend/pkg/database"
	"github.com/webway/campus-events-backend/pkg/email"
	"github.com/webway/campus-events-backend/pkg/logger"
	"github.com/webway/campus-events-backend/pkg/token"
	"github.com/webway/campus-events-backend/pkg/utils"
)

func main() {
	// .env is optional outside local development.
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	zl, err := logger.New()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zl.Sync()

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		zl.Fatal("failed to initialize database", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	linkRepo := repository.NewRegistrationLinkRepository(db)

	// Shared services
	tokenService := token.NewService(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenExpiry)
	mailer := email.NewService(cfg.Email, zl)
	validator := utils.NewValidator()

	// Domain services
	authService := service.NewAuthService(userRepo, tokenService, mailer, cfg.AllowedEmailDomain, zl)
	userService := service.NewUserService(userRepo, mailer, zl)
	eventService := service.NewEventService(eventRepo, linkRepo, zl)
	linkService := service.NewRegistrationLinkService(linkRepo, eventRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator)
	userHandler := handler.NewUserHandler(userService, validator)
	eventHandler := handler.NewEventHandler(eventService, validator)
	linkHandler := handler.NewRegistrationLinkHandler(linkService, validator)
	healthHandler := handler.NewHealthHandler(db)

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE",
	}))
	app.Use(fiberlogger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	api := app.Group("/api")

	protected := middleware.Protected(tokenService, userRepo)
	admin := middleware.AdminOnly()

	// Public routes
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Get("/events", eventHandler.ListEvents)
	api.Get("/events/:id", eventHandler.GetEvent)
	api.Get("/registration-links", linkHandler.ListLinks)
	api.Get("/health", healthHandler.Health)

	// Authenticated routes
	api.Get("/me", protected, userHandler.GetMe)
	api.Put("/change-password", protected, userHandler.ChangePassword)
	api.Put("/profile", protected, userHandler.UpdateProfile)

	// Admin routes
	api.Post("/events", protected, admin, eventHandler.CreateEvent)
	api.Put("/events/:id", protected, admin, eventHandler.UpdateEvent)
	api.Delete("/events/:id", protected, admin, eventHandler.DeleteEvent)
	api.Post("/registration-links", protected, admin, linkHandler.UpsertLink)
	api.Delete("/registration-links/:id", protected, admin, linkHandler.DeleteLink)
	api.Get("/users", protected, admin, userHandler.ListUsers)
	api.Post("/users/:id/reset-password", protected, admin, userHandler.ResetPassword)
	api.Delete("/users/:id", protected, admin, userHandler.DeleteUser)

	zl.Info("server starting", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
