package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/pharmacare/internal/apperrors"
	"github.com/example/pharmacare/internal/models"
	"github.com/example/pharmacare/internal/repository"
	"github.com/example/pharmacare/internal/utils"
)

// AuthService handles registration, credential checks and token issuance.
type AuthService struct {
	customers repository.CustomerRepository
	secret    string
	tokenTTL  time.Duration
}

// NewAuthService constructs an AuthService.
func NewAuthService(customers repository.CustomerRepository, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{customers: customers, secret: secret, tokenTTL: tokenTTL}
}

// RegisterInput carries the signup payload.
type RegisterInput struct {
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Password string `json:"password"`
}

// AuthResult is returned on successful registration or sign-in.
type AuthResult struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
	Token string    `json:"token"`
}

// Register creates a new customer account and issues a token for it.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if err := validateRegistration(input); err != nil {
		return nil, err
	}

	taken, err := s.customers.PhoneTaken(ctx, input.Phone, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.Conflict("A customer with this phone number already exists")
	}

	passwordHash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	customer := models.Customer{
		Name:         input.Name,
		Age:          input.Age,
		Gender:       input.Gender,
		Phone:        input.Phone,
		Address:      input.Address,
		City:         input.City,
		PasswordHash: passwordHash,
	}

	if err := s.customers.Create(ctx, &customer); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(s.secret, customer.ID, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	return &AuthResult{ID: customer.ID, Name: customer.Name, Phone: customer.Phone, Token: token}, nil
}

// Authenticate checks the supplied credentials and issues a token. Unknown
// phone numbers and wrong passwords fail with the same message so the caller
// cannot tell which field was wrong.
func (s *AuthService) Authenticate(ctx context.Context, phone, password string) (*AuthResult, error) {
	if phone == "" || password == "" {
		return nil, apperrors.Validation("Please provide phone number and password")
	}

	customer, err := s.customers.FindByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.Auth("Invalid phone number or password")
		}
		return nil, err
	}

	if !utils.CheckPassword(customer.PasswordHash, password) {
		return nil, apperrors.Auth("Invalid phone number or password")
	}

	token, err := utils.GenerateToken(s.secret, customer.ID, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	return &AuthResult{ID: customer.ID, Name: customer.Name, Phone: customer.Phone, Token: token}, nil
}

// GetProfile returns the customer behind an authenticated token.
func (s *AuthService) GetProfile(ctx context.Context, customerID uuid.UUID) (*models.Customer, error) {
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Customer not found")
		}
		return nil, err
	}
	return customer, nil
}

func validateRegistration(input RegisterInput) error {
	var missing []string
	if input.Name == "" {
		missing = append(missing, "name")
	}
	if input.Age == 0 {
		missing = append(missing, "age")
	}
	if input.Gender == "" {
		missing = append(missing, "gender")
	}
	if input.Phone == "" {
		missing = append(missing, "phone")
	}
	if input.Address == "" {
		missing = append(missing, "address")
	}
	if input.City == "" {
		missing = append(missing, "city")
	}
	if input.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return apperrors.Validation("Missing required fields: "+strings.Join(missing, ", "), missing...)
	}

	var invalid []string
	if !models.ValidName(input.Name) {
		invalid = append(invalid, fmt.Sprintf("Name must be at least %d characters long", models.NameMinLength))
	}
	if !models.ValidAge(input.Age) {
		invalid = append(invalid, fmt.Sprintf("Age must be between %d and %d", models.AgeMin, models.AgeMax))
	}
	if !models.ValidGender(input.Gender) {
		invalid = append(invalid, "Gender must be either male or female")
	}
	if !models.ValidPhone(input.Phone) {
		invalid = append(invalid, "Please enter a valid phone number")
	}
	if !models.ValidAddress(input.Address) {
		invalid = append(invalid, fmt.Sprintf("Address must be at least %d characters long", models.AddressMinLength))
	}
	if !models.ValidPassword(input.Password) {
		invalid = append(invalid, fmt.Sprintf("Password must be at least %d characters long", models.PasswordMinLength))
	}
	if len(invalid) > 0 {
		return apperrors.Validation("Validation Error", invalid...)
	}

	return nil
}
