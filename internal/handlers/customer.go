package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/pharmacare/internal/apperrors"
	"github.com/example/pharmacare/internal/middleware"
	"github.com/example/pharmacare/internal/services"
)

// CustomerHandler manages customer profile endpoints.
type CustomerHandler struct {
	profiles *services.ProfileService
}

// NewCustomerHandler constructs a CustomerHandler.
func NewCustomerHandler(profiles *services.ProfileService) *CustomerHandler {
	return &CustomerHandler{profiles: profiles}
}

// GetProfile returns the authenticated customer's profile.
func (h *CustomerHandler) GetProfile(c *fiber.Ctx) error {
	customerID, ok := middleware.GetCurrentCustomerID(c)
	if !ok {
		return apperrors.Auth("No token provided")
	}

	customer, err := h.profiles.Get(c.UserContext(), customerID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    customer,
	})
}

// UpdateProfile applies a partial update to the authenticated customer's
// profile. Fields left empty keep their stored value.
func (h *CustomerHandler) UpdateProfile(c *fiber.Ctx) error {
	customerID, ok := middleware.GetCurrentCustomerID(c)
	if !ok {
		return apperrors.Auth("No token provided")
	}

	var req services.UpdateProfileInput
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}

	customer, err := h.profiles.Update(c.UserContext(), customerID, req)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Profile updated successfully",
		"data":    customer,
	})
}
