package service

import (
	"errors"
	"fmt"

	"github.com/easybank/easybank-services/internal/store"
)

// Service-level sentinel errors. Store sentinels (store.ErrNotFound,
// store.ErrDuplicate and their entity variants) pass through wrapped, so
// callers test for them with errors.Is as well.
var (
	// ErrAccountDetailsRequired is returned by UpdateAccount when the request
	// carries no account section. Nothing is modified.
	ErrAccountDetailsRequired = fmt.Errorf("%w: account details are required", store.ErrUpdateFailed)

	// ErrNumberSpaceExhausted is returned when no unused account or card
	// number was found within the configured number of attempts.
	ErrNumberSpaceExhausted = errors.New("no unused number found")
)

// ServiceError wraps an unexpected failure with the operation that hit it.
type ServiceError struct {
	// Service is the owning service, "accounts" or "cards"
	Service string
	// Operation is the failing operation, e.g. "create_account"
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Service, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Service, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

func newAccountsError(operation, message string, err error) error {
	return &ServiceError{Service: "accounts", Operation: operation, Message: message, Err: err}
}

func newCardsError(operation, message string, err error) error {
	return &ServiceError{Service: "cards", Operation: operation, Message: message, Err: err}
}

// ResourceNotFoundError names the lookup that found nothing. It wraps the
// store's not-found sentinel.
type ResourceNotFoundError struct {
	Resource string
	Field    string
	Value    string
	Err      error
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("%s not found with the given input data %s : '%s'", e.Resource, e.Field, e.Value)
}

func (e *ResourceNotFoundError) Unwrap() error {
	return e.Err
}

// ResourceExistsError reports a create that would duplicate a record.
// It wraps the store's duplicate sentinel.
type ResourceExistsError struct {
	Resource string
	Field    string
	Value    string
	Err      error
}

func (e *ResourceExistsError) Error() string {
	return fmt.Sprintf("%s already registered with given %s %s", e.Resource, e.Field, e.Value)
}

func (e *ResourceExistsError) Unwrap() error {
	return e.Err
}

// notFound describes err as a failed lookup when it is a store not-found
// error and returns it unchanged otherwise.
func notFound(resource, field, value string, err error) error {
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}
	return &ResourceNotFoundError{Resource: resource, Field: field, Value: value, Err: err}
}
