package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/pharmacare/internal/apperrors"
	"github.com/example/pharmacare/internal/config"
	"github.com/example/pharmacare/internal/database"
	"github.com/example/pharmacare/internal/repository"
	"github.com/example/pharmacare/internal/routes"
	"github.com/example/pharmacare/internal/services"
	"github.com/example/pharmacare/internal/storage"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)

	files, err := storage.NewPrescriptionStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("failed to prepare upload storage: %v", err)
	}

	var telegram *services.TelegramService
	if cfg.TelegramBotToken != "" {
		telegram = services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat)
	}

	customers := repository.NewPostgresCustomerRepository(db)
	orders := repository.NewPostgresOrderRepository(db)

	svc := routes.Services{
		Auth:    services.NewAuthService(customers, cfg.JWTSecret, cfg.TokenExpires),
		Profile: services.NewProfileService(customers),
		Order:   services.NewOrderService(orders, files, telegram),
	}

	app := fiber.New(fiber.Config{
		AppName:      "PharmaCare Backend",
		ErrorHandler: apperrors.ErrorHandler(cfg.AppEnv),
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.ClientOrigin,
		AllowCredentials: true,
	}))

	app.Static("/uploads", cfg.UploadDir)

	routes.Register(app, svc, cfg.JWTSecret)

	log.Printf("Starting server on :%s (%s mode)", cfg.AppPort, cfg.AppEnv)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
