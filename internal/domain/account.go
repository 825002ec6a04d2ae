package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Defaults applied to newly opened accounts.
const (
	DefaultAccountType   = "Savings"
	DefaultBranchAddress = "123 Main Street, New York"
)

// ErrAccountCustomerIDEmpty is returned when an account has no owner.
var ErrAccountCustomerIDEmpty = errors.New("account customer ID cannot be empty")

// Account is the single account held by a Customer. The account number is
// both its primary key and its natural key.
type Account struct {
	AccountNumber int64     `json:"accountNumber" validate:"required,min=1000000000,max=9999999999"`
	CustomerID    uuid.UUID `json:"customerId"`
	AccountType   string    `json:"accountType"   validate:"required,max=100"`
	BranchAddress string    `json:"branchAddress" validate:"required,max=200"`
	Audit
}

// NewAccount opens a default savings account for customerID.
func NewAccount(customerID uuid.UUID, accountNumber int64) (*Account, error) {
	a := &Account{
		AccountNumber: accountNumber,
		CustomerID:    customerID,
		AccountType:   DefaultAccountType,
		BranchAddress: DefaultBranchAddress,
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate checks if the Account has valid data.
func (a *Account) Validate() error {
	if a.CustomerID == uuid.Nil {
		return ErrAccountCustomerIDEmpty
	}
	return validateStruct(a)
}
