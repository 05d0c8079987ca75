package services

import (
	"context"
	"errors"
	"log"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"

	"github.com/example/pharmacare/internal/apperrors"
	"github.com/example/pharmacare/internal/models"
	"github.com/example/pharmacare/internal/repository"
	"github.com/example/pharmacare/internal/storage"
)

// OrderService manages the customer-facing order lifecycle.
type OrderService struct {
	orders   repository.OrderRepository
	files    *storage.PrescriptionStore
	telegram *TelegramService
}

// NewOrderService constructs an OrderService. telegram may be nil when
// notifications are not configured.
func NewOrderService(orders repository.OrderRepository, files *storage.PrescriptionStore, telegram *TelegramService) *OrderService {
	return &OrderService{orders: orders, files: files, telegram: telegram}
}

// PlaceOrderInput carries a new order submission.
type PlaceOrderInput struct {
	ReceiverName string
	Phone        string
	Address      string
	File         *multipart.FileHeader
}

// UpdateOrderInput carries a partial order update. Zero values keep the
// stored value.
type UpdateOrderInput struct {
	ReceiverName string `json:"receiverName"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
}

// Place validates the submission, stores the prescription file and persists a
// pending order. The file is written before the record so a persisted order
// always has its file; if persisting fails the file is removed again.
func (s *OrderService) Place(ctx context.Context, customerID uuid.UUID, input PlaceOrderInput) (*models.Order, error) {
	var missing []string
	if input.ReceiverName == "" {
		missing = append(missing, "receiverName")
	}
	if input.Phone == "" {
		missing = append(missing, "phone")
	}
	if input.Address == "" {
		missing = append(missing, "address")
	}
	if len(missing) > 0 {
		return nil, apperrors.Validation("receiverName, phone, and address are required", missing...)
	}

	if input.File == nil {
		return nil, apperrors.Validation("Prescription file is required")
	}
	if !s.files.Allowed(input.File.Filename) {
		return nil, apperrors.Validation("Invalid file type. Only JPG, JPEG, PNG, PDF are allowed.")
	}

	filePath, err := s.files.Save(input.File)
	if err != nil {
		return nil, err
	}

	order := models.Order{
		ReceiverName: input.ReceiverName,
		Phone:        input.Phone,
		Address:      input.Address,
		FilePath:     filePath,
		Status:       models.OrderStatusPending,
		CustomerID:   customerID,
	}

	if err := s.orders.Create(ctx, &order); err != nil {
		if cleanupErr := s.files.Remove(filePath); cleanupErr != nil {
			log.Printf("failed to remove orphaned prescription %s: %v", filePath, cleanupErr)
		}
		return nil, err
	}

	if s.telegram != nil {
		go s.notifyNewOrder(order)
	}

	return &order, nil
}

// ListForCustomer returns the orders owned by requestedID, newest first. A
// customer may only list their own orders.
func (s *OrderService) ListForCustomer(ctx context.Context, customerID, requestedID uuid.UUID) ([]models.Order, error) {
	if customerID != requestedID {
		return nil, apperrors.Forbidden("Access denied. You can only view your own orders")
	}

	orders, err := s.orders.ListByCustomer(ctx, requestedID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

// Update applies the supplied fields to a pending order owned by the customer.
func (s *OrderService) Update(ctx context.Context, customerID, orderID uuid.UUID, input UpdateOrderInput) (*models.Order, error) {
	order, err := s.findOwned(ctx, customerID, orderID, "update")
	if err != nil {
		return nil, err
	}
	if !order.Pending() {
		return nil, apperrors.Conflict("Only pending orders can be updated")
	}

	if input.ReceiverName != "" {
		order.ReceiverName = input.ReceiverName
	}
	if input.Phone != "" {
		order.Phone = input.Phone
	}
	if input.Address != "" {
		order.Address = input.Address
	}

	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Delete removes a pending order owned by the customer, along with its stored
// prescription file. A file that is already gone does not block deletion.
func (s *OrderService) Delete(ctx context.Context, customerID, orderID uuid.UUID) error {
	order, err := s.findOwned(ctx, customerID, orderID, "delete")
	if err != nil {
		return err
	}
	if !order.Pending() {
		return apperrors.Conflict("Only pending orders can be deleted")
	}

	if err := s.files.Remove(order.FilePath); err != nil {
		log.Printf("failed to remove prescription %s: %v", order.FilePath, err)
	}

	return s.orders.Delete(ctx, order)
}

func (s *OrderService) findOwned(ctx context.Context, customerID, orderID uuid.UUID, action string) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Order not found")
		}
		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, apperrors.Forbidden("Access denied. You can only " + action + " your own orders")
	}
	return order, nil
}

func (s *OrderService) notifyNewOrder(order models.Order) {
	notification := OrderNotification{
		OrderID:      order.ID.String(),
		ReceiverName: order.ReceiverName,
		Phone:        order.Phone,
		Address:      strings.TrimSpace(order.Address),
		FilePath:     order.FilePath,
	}
	if err := s.telegram.NotifyNewOrder(notification); err != nil {
		log.Printf("telegram notification failed for order %s: %v", order.ID, err)
	}
}
