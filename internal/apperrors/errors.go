package apperrors

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// Error is a classified service failure carrying the HTTP status it maps to.
type Error struct {
	Status  int
	Message string
	Fields  []string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Validation marks missing or malformed input. The optional field list names
// the offending fields and is surfaced in the response envelope.
func Validation(message string, fields ...string) *Error {
	return &Error{Status: fiber.StatusBadRequest, Message: message, Fields: fields}
}

// Conflict marks uniqueness or state conflicts. Mapped to 400 to match the
// public API contract.
func Conflict(message string) *Error {
	return &Error{Status: fiber.StatusBadRequest, Message: message}
}

// Auth marks missing or invalid credentials.
func Auth(message string) *Error {
	return &Error{Status: fiber.StatusUnauthorized, Message: message}
}

// Forbidden marks an ownership mismatch on an otherwise valid request.
func Forbidden(message string) *Error {
	return &Error{Status: fiber.StatusForbidden, Message: message}
}

// NotFound marks a missing record.
func NotFound(message string) *Error {
	return &Error{Status: fiber.StatusNotFound, Message: message}
}

// ErrorHandler returns the Fiber error handler that maps classified errors to
// their status and envelope. Unclassified errors become a generic 500; the
// underlying message is included only outside production mode.
func ErrorHandler(env string) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var appErr *Error
		if errors.As(err, &appErr) {
			body := fiber.Map{
				"success": false,
				"message": appErr.Message,
			}
			if len(appErr.Fields) > 0 {
				body["errors"] = appErr.Fields
			}
			return c.Status(appErr.Status).JSON(body)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{
				"success": false,
				"message": fiberErr.Message,
			})
		}

		log.Printf("unhandled error: %v", err)

		body := fiber.Map{
			"success": false,
			"message": "Something went wrong",
		}
		if env != "production" {
			body["error"] = err.Error()
		}
		return c.Status(fiber.StatusInternalServerError).JSON(body)
	}
}
