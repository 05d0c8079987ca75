package models

import "regexp"

// Validation bounds for customer fields. These mirror what the signup form
// enforces on the client side.
const (
	NameMinLength     = 2
	AddressMinLength  = 10
	PasswordMinLength = 8
	AgeMin            = 18
	AgeMax            = 100
)

var phonePattern = regexp.MustCompile(`^\+?[\d\s-]{10,}$`)

// Customer represents a registered pharmacy customer.
type Customer struct {
	BaseModel
	Name         string  `json:"name"`
	Age          int     `json:"age"`
	Gender       string  `json:"gender"`
	Phone        string  `gorm:"uniqueIndex" json:"phone"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	PasswordHash string  `json:"-"`
	Orders       []Order `json:"orders,omitempty"`
}

// ValidName reports whether the name meets the minimum length.
func ValidName(name string) bool {
	return len(name) >= NameMinLength
}

// ValidAge reports whether the age is within the accepted range.
func ValidAge(age int) bool {
	return age >= AgeMin && age <= AgeMax
}

// ValidGender reports whether the gender is one of the accepted values.
func ValidGender(gender string) bool {
	return gender == "male" || gender == "female"
}

// ValidPhone reports whether the phone number matches the expected pattern.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// ValidAddress reports whether the address meets the minimum length.
func ValidAddress(address string) bool {
	return len(address) >= AddressMinLength
}

// ValidPassword reports whether the plaintext password meets the minimum length.
func ValidPassword(password string) bool {
	return len(password) >= PasswordMinLength
}
