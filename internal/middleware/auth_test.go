package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/pharmacare/internal/apperrors"
	"github.com/example/pharmacare/internal/utils"
)

const testSecret = "middleware-test-secret"

func protectedApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apperrors.ErrorHandler("production")})
	app.Get("/protected", AuthMiddleware(testSecret), func(c *fiber.Ctx) error {
		id, ok := GetCurrentCustomerID(c)
		if !ok {
			return apperrors.Auth("No token provided")
		}
		return c.JSON(fiber.Map{"id": id.String()})
	})
	return app
}

func request(t *testing.T, app *fiber.App, header string) int {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	app := protectedApp()

	token, err := utils.GenerateToken(testSecret, uuid.New(), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if status := request(t, app, "Bearer "+token); status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
}

func TestAuthMiddlewareRejectsBadRequests(t *testing.T) {
	app := protectedApp()

	expired, err := utils.GenerateToken(testSecret, uuid.New(), -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	foreign, err := utils.GenerateToken("some-other-secret", uuid.New(), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc123"},
		{"malformed token", "Bearer not-a-token"},
		{"expired token", "Bearer " + expired},
		{"wrong secret", "Bearer " + foreign},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if status := request(t, app, tc.header); status != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", status)
			}
		})
	}
}
