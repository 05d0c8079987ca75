package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/pharmacare/internal/apperrors"
	"github.com/example/pharmacare/internal/middleware"
	"github.com/example/pharmacare/internal/services"
)

// AuthHandler bundles dependencies for authentication endpoints.
type AuthHandler struct {
	auth *services.AuthService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup registers a new customer account.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req services.RegisterInput
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}

	result, err := h.auth.Register(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Customer registered successfully",
		"data":    result,
	})
}

type signinRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// Signin authenticates an existing customer.
func (h *AuthHandler) Signin(c *fiber.Ctx) error {
	var req signinRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}

	result, err := h.auth.Authenticate(c.UserContext(), req.Phone, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Signed in successfully",
		"data":    result,
	})
}

// Profile returns the authenticated customer's record.
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	customerID, ok := middleware.GetCurrentCustomerID(c)
	if !ok {
		return apperrors.Auth("No token provided")
	}

	customer, err := h.auth.GetProfile(c.UserContext(), customerID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    customer,
	})
}
