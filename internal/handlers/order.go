package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/pharmacare/internal/apperrors"
	"github.com/example/pharmacare/internal/middleware"
	"github.com/example/pharmacare/internal/services"
)

// OrderHandler manages prescription order endpoints.
type OrderHandler struct {
	orders *services.OrderService
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(orders *services.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Create places a new prescription order. The request is multipart with the
// uploaded file in the "prescription" field.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	customerID, ok := middleware.GetCurrentCustomerID(c)
	if !ok {
		return apperrors.Auth("No token provided")
	}

	input := services.PlaceOrderInput{
		ReceiverName: c.FormValue("receiverName"),
		Phone:        c.FormValue("phone"),
		Address:      c.FormValue("address"),
	}
	if file, err := c.FormFile("prescription"); err == nil {
		input.File = file
	}

	order, err := h.orders.Place(c.UserContext(), customerID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Order placed successfully and is pending review",
		"data":    order,
	})
}

// ListByCustomer returns all orders for the customer in the path. Customers
// may only list their own orders.
func (h *OrderHandler) ListByCustomer(c *fiber.Ctx) error {
	customerID, ok := middleware.GetCurrentCustomerID(c)
	if !ok {
		return apperrors.Auth("No token provided")
	}

	requestedID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return apperrors.Forbidden("Access denied. You can only view your own orders")
	}

	orders, err := h.orders.ListForCustomer(c.UserContext(), customerID, requestedID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    orders,
	})
}

// Update edits a pending order owned by the authenticated customer.
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	customerID, ok := middleware.GetCurrentCustomerID(c)
	if !ok {
		return apperrors.Auth("No token provided")
	}

	orderID, err := uuid.Parse(c.Params("orderId"))
	if err != nil {
		return apperrors.Validation("Invalid order id")
	}

	var req services.UpdateOrderInput
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}

	order, err := h.orders.Update(c.UserContext(), customerID, orderID, req)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Order updated successfully",
		"data":    order,
	})
}

// Delete removes a pending order owned by the authenticated customer.
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	customerID, ok := middleware.GetCurrentCustomerID(c)
	if !ok {
		return apperrors.Auth("No token provided")
	}

	orderID, err := uuid.Parse(c.Params("orderId"))
	if err != nil {
		return apperrors.Validation("Invalid order id")
	}

	if err := h.orders.Delete(c.UserContext(), customerID, orderID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Order deleted successfully",
	})
}
