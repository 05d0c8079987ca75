package routes

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/example/pharmacare/internal/apperrors"
	"github.com/example/pharmacare/internal/handlers"
	"github.com/example/pharmacare/internal/middleware"
	"github.com/example/pharmacare/internal/services"
)

// Services groups the application services the HTTP layer dispatches to.
type Services struct {
	Auth    *services.AuthService
	Profile *services.ProfileService
	Order   *services.OrderService
}

// Register wires up all HTTP routes.
func Register(app *fiber.App, svc Services, jwtSecret string) {
	authHandler := handlers.NewAuthHandler(svc.Auth)
	customerHandler := handlers.NewCustomerHandler(svc.Profile)
	orderHandler := handlers.NewOrderHandler(svc.Order)

	protect := middleware.AuthMiddleware(jwtSecret)

	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true, "message": "Backend is running!"})
	})

	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/signin", authHandler.Signin)
	auth.Get("/profile", protect, authHandler.Profile)

	customers := api.Group("/customers", protect)
	customers.Get("/profile", customerHandler.GetProfile)
	customers.Put("/profile", customerHandler.UpdateProfile)

	orders := api.Group("/order", protect)
	orders.Post("/", orderHandler.Create)
	orders.Get("/customer/:userId", orderHandler.ListByCustomer)
	orders.Put("/:orderId", orderHandler.Update)
	orders.Delete("/:orderId", orderHandler.Delete)

	// Catch-all for unmatched routes. Registered last so the static handler
	// set up in main still wins for /uploads.
	app.Use(func(c *fiber.Ctx) error {
		return apperrors.NotFound(fmt.Sprintf("Cannot %s %s", c.Method(), c.Path()))
	})
}
