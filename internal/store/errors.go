package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// Entity-specific variants (ErrCustomerNotFound, ...) wrap it.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would violate a unique key,
	// such as a second customer with the same mobile number.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored, or the database rejects it with a constraint violation.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrUpdateFailed is returned when an update request cannot be applied
	// as given, such as an account update without account details.
	ErrUpdateFailed = errors.New("update failed")

	// ErrTransactionFailed is returned when a database transaction fails
	// to begin or commit.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors

	// ErrCustomerNotFound indicates that no customer matches the given key.
	ErrCustomerNotFound = fmt.Errorf("%w: customer", ErrNotFound)

	// ErrAccountNotFound indicates that no account matches the given key.
	ErrAccountNotFound = fmt.Errorf("%w: account", ErrNotFound)

	// ErrCardNotFound indicates that no card matches the given key.
	ErrCardNotFound = fmt.Errorf("%w: card", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrMobileNumberExists indicates a customer already uses the mobile number.
	ErrMobileNumberExists = fmt.Errorf("%w: mobile number", ErrDuplicate)

	// ErrAccountNumberExists indicates the account number is already assigned.
	ErrAccountNumberExists = fmt.Errorf("%w: account number", ErrDuplicate)

	// ErrCardExists indicates a card is already issued for the mobile number.
	ErrCardExists = fmt.Errorf("%w: card", ErrDuplicate)

	// ErrCardNumberExists indicates the card number is already assigned.
	ErrCardNumberExists = fmt.Errorf("%w: card number", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "customer", "card")
	Operation string // The operation that failed (e.g., "create", "update")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
