package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/example/pharmacare/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// CustomerRepository persists customer records.
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	FindByPhone(ctx context.Context, phone string) (*models.Customer, error)
	// PhoneTaken reports whether another customer than exclude already uses
	// the phone number. Pass uuid.Nil to check against all customers.
	PhoneTaken(ctx context.Context, phone string, exclude uuid.UUID) (bool, error)
	Update(ctx context.Context, customer *models.Customer) error
}

// OrderRepository persists prescription orders.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	// ListByCustomer returns the customer's orders, newest first.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Order, error)
	Update(ctx context.Context, order *models.Order) error
	Delete(ctx context.Context, order *models.Order) error
}
