package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/pharmacare/internal/apperrors"
	"github.com/example/pharmacare/internal/utils"
)

const customerContextKey = "currentCustomerID"

// AuthMiddleware validates bearer tokens and loads the authenticated customer
// ID into the request context.
func AuthMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return apperrors.Auth("No token provided")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return apperrors.Auth("No token provided")
		}

		customerID, err := utils.ParseToken(secret, parts[1])
		if err != nil {
			return apperrors.Auth("Invalid token")
		}

		c.Locals(customerContextKey, customerID)
		return c.Next()
	}
}

// GetCurrentCustomerID extracts the authenticated customer ID from context.
func GetCurrentCustomerID(c *fiber.Ctx) (uuid.UUID, bool) {
	value := c.Locals(customerContextKey)
	if value == nil {
		return uuid.Nil, false
	}

	if id, ok := value.(uuid.UUID); ok {
		return id, true
	}

	return uuid.Nil, false
}
