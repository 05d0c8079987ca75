package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/example/pharmacare/internal/apperrors"
	"github.com/example/pharmacare/internal/models"
	"github.com/example/pharmacare/internal/repository"
	"github.com/example/pharmacare/internal/utils"
)

// ProfileService lets customers read and update their own record.
type ProfileService struct {
	customers repository.CustomerRepository
}

// NewProfileService constructs a ProfileService.
func NewProfileService(customers repository.CustomerRepository) *ProfileService {
	return &ProfileService{customers: customers}
}

// UpdateProfileInput carries a partial profile update. Zero values mean the
// field was not supplied and the stored value is kept; a customer therefore
// cannot clear a field to empty through this operation.
type UpdateProfileInput struct {
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Password string `json:"password"`
}

// Get returns the customer's own record.
func (s *ProfileService) Get(ctx context.Context, customerID uuid.UUID) (*models.Customer, error) {
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Customer not found")
		}
		return nil, err
	}
	return customer, nil
}

// Update applies the supplied fields to the customer's record. A changed
// phone number is re-checked for uniqueness against all other customers, and
// a supplied password is re-hashed before storing.
func (s *ProfileService) Update(ctx context.Context, customerID uuid.UUID, input UpdateProfileInput) (*models.Customer, error) {
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Customer not found")
		}
		return nil, err
	}

	if err := validateProfileUpdate(input); err != nil {
		return nil, err
	}

	if input.Phone != "" && input.Phone != customer.Phone {
		taken, err := s.customers.PhoneTaken(ctx, input.Phone, customerID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.Conflict("Phone number is already in use")
		}
	}

	if input.Name != "" {
		customer.Name = input.Name
	}
	if input.Age != 0 {
		customer.Age = input.Age
	}
	if input.Gender != "" {
		customer.Gender = input.Gender
	}
	if input.Phone != "" {
		customer.Phone = input.Phone
	}
	if input.Address != "" {
		customer.Address = input.Address
	}
	if input.City != "" {
		customer.City = input.City
	}
	if input.Password != "" {
		passwordHash, err := utils.HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		customer.PasswordHash = passwordHash
	}

	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

func validateProfileUpdate(input UpdateProfileInput) error {
	var invalid []string
	if input.Name != "" && !models.ValidName(input.Name) {
		invalid = append(invalid, fmt.Sprintf("Name must be at least %d characters long", models.NameMinLength))
	}
	if input.Age != 0 && !models.ValidAge(input.Age) {
		invalid = append(invalid, fmt.Sprintf("Age must be between %d and %d", models.AgeMin, models.AgeMax))
	}
	if input.Gender != "" && !models.ValidGender(input.Gender) {
		invalid = append(invalid, "Gender must be either male or female")
	}
	if input.Phone != "" && !models.ValidPhone(input.Phone) {
		invalid = append(invalid, "Please enter a valid phone number")
	}
	if input.Address != "" && !models.ValidAddress(input.Address) {
		invalid = append(invalid, fmt.Sprintf("Address must be at least %d characters long", models.AddressMinLength))
	}
	if input.Password != "" && !models.ValidPassword(input.Password) {
		invalid = append(invalid, fmt.Sprintf("Password must be at least %d characters long", models.PasswordMinLength))
	}
	if len(invalid) > 0 {
		return apperrors.Validation("Validation Error", invalid...)
	}
	return nil
}
