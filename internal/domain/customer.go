package domain

import (
	"errors"

	"github.com/google/uuid"
)

// ErrCustomerIDEmpty is returned when a customer has a nil ID.
var ErrCustomerIDEmpty = errors.New("customer ID cannot be empty")

// Customer is a bank customer, identified for business purposes by a
// unique mobile number. Each customer owns exactly one Account.
type Customer struct {
	ID           uuid.UUID `json:"customerId"`
	Name         string    `json:"name"         validate:"required,max=100"`
	Email        string    `json:"email"        validate:"required,email"`
	MobileNumber string    `json:"mobileNumber" validate:"required,len=10,numeric"`
	Audit
}

// NewCustomer creates a Customer with a fresh ID.
// Returns an error if validation fails.
func NewCustomer(name, email, mobileNumber string) (*Customer, error) {
	c := &Customer{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		MobileNumber: mobileNumber,
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks if the Customer has valid data.
func (c *Customer) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCustomerIDEmpty
	}
	return validateStruct(c)
}
