package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/example/pharmacare/internal/apperrors"
	"github.com/example/pharmacare/internal/models"
	"github.com/example/pharmacare/internal/repository"
)

type mockCustomerRepo struct {
	createFn      func(ctx context.Context, customer *models.Customer) error
	findByIDFn    func(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	findByPhoneFn func(ctx context.Context, phone string) (*models.Customer, error)
	phoneTakenFn  func(ctx context.Context, phone string, exclude uuid.UUID) (bool, error)
	updateFn      func(ctx context.Context, customer *models.Customer) error
}

func (m *mockCustomerRepo) Create(ctx context.Context, customer *models.Customer) error {
	if m.createFn != nil {
		return m.createFn(ctx, customer)
	}
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	return nil
}

func (m *mockCustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockCustomerRepo) FindByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	if m.findByPhoneFn != nil {
		return m.findByPhoneFn(ctx, phone)
	}
	return nil, repository.ErrNotFound
}

func (m *mockCustomerRepo) PhoneTaken(ctx context.Context, phone string, exclude uuid.UUID) (bool, error) {
	if m.phoneTakenFn != nil {
		return m.phoneTakenFn(ctx, phone, exclude)
	}
	return false, nil
}

func (m *mockCustomerRepo) Update(ctx context.Context, customer *models.Customer) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, customer)
	}
	return nil
}

type mockOrderRepo struct {
	createFn         func(ctx context.Context, order *models.Order) error
	findByIDFn       func(ctx context.Context, id uuid.UUID) (*models.Order, error)
	listByCustomerFn func(ctx context.Context, customerID uuid.UUID) ([]models.Order, error)
	updateFn         func(ctx context.Context, order *models.Order) error
	deleteFn         func(ctx context.Context, order *models.Order) error
}

func (m *mockOrderRepo) Create(ctx context.Context, order *models.Order) error {
	if m.createFn != nil {
		return m.createFn(ctx, order)
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	return nil
}

func (m *mockOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockOrderRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Order, error) {
	if m.listByCustomerFn != nil {
		return m.listByCustomerFn(ctx, customerID)
	}
	return nil, nil
}

func (m *mockOrderRepo) Update(ctx context.Context, order *models.Order) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, order)
	}
	return nil
}

func (m *mockOrderRepo) Delete(ctx context.Context, order *models.Order) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, order)
	}
	return nil
}

// --- compile-time interface checks ---
var _ repository.CustomerRepository = (*mockCustomerRepo)(nil)
var _ repository.OrderRepository = (*mockOrderRepo)(nil)

func asAppError(t *testing.T, err error) *apperrors.Error {
	t.Helper()
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperrors.Error, got %T: %v", err, err)
	}
	return appErr
}
