package api

import (
	"errors"
	"net/http"

	"github.com/easybank/easybank-services/internal/api/shared"
	"github.com/easybank/easybank-services/internal/audit"
	"github.com/easybank/easybank-services/internal/domain"
	"github.com/easybank/easybank-services/internal/service"
	"github.com/easybank/easybank-services/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, audit.ErrInvalidToken),
		errors.Is(err, audit.ErrExpiredToken),
		errors.Is(err, audit.ErrInvalidAuthorization),
		errors.Is(err, audit.ErrInvalidActor):
		return http.StatusUnauthorized

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Duplicates answer 400, not 409.
	case errors.Is(err, store.ErrDuplicate),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	case errors.Is(err, store.ErrUpdateFailed):
		return http.StatusExpectationFailed

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-facing message for err. Only
// messages built from the caller's own input are echoed; anything
// unexpected collapses to the generic 500 message.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return MessageInternalError
	}

	var nf *service.ResourceNotFoundError
	var exists *service.ResourceExistsError
	var invalid *domain.ValidationError

	switch {
	case errors.As(err, &nf):
		return nf.Error()
	case errors.As(err, &exists):
		return exists.Error()
	case errors.As(err, &invalid):
		return "Validation failed"

	case errors.Is(err, store.ErrCustomerNotFound):
		return "Customer not found"
	case errors.Is(err, store.ErrAccountNotFound):
		return "Account not found"
	case errors.Is(err, store.ErrCardNotFound):
		return "Card not found"
	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	case errors.Is(err, store.ErrMobileNumberExists):
		return "Customer already registered with given mobileNumber"
	case errors.Is(err, store.ErrCardExists):
		return "Card already registered with given mobileNumber"
	case errors.Is(err, store.ErrDuplicate):
		return "Resource already exists"

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return "Validation failed"

	case errors.Is(err, store.ErrUpdateFailed):
		return MessageUpdateFailed

	case errors.Is(err, audit.ErrExpiredToken):
		return "Token expired"
	case errors.Is(err, audit.ErrInvalidToken),
		errors.Is(err, audit.ErrInvalidActor),
		errors.Is(err, audit.ErrInvalidAuthorization):
		return "Invalid token"

	default:
		return MessageInternalError
	}
}

// validationFieldErrors extracts per-field messages from err, which may be
// a validator failure or a *domain.ValidationError.
func validationFieldErrors(err error) map[string]string {
	if fields := shared.FieldErrors(err); fields != nil {
		return fields
	}
	var invalid *domain.ValidationError
	if errors.As(err, &invalid) && invalid.Field != "" {
		return map[string]string{invalid.Field: invalid.Message}
	}
	return nil
}

// HandleAPIError writes the error response for err. The status and message
// come from MapErrorToStatusCode and GetSafeErrorMessage; fallback, when
// set, replaces the generic message of a 500.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallback != "" {
		message = fallback
	}

	var opts []shared.ResponseOption
	if status == http.StatusBadRequest {
		if fields := validationFieldErrors(err); fields != nil {
			opts = append(opts, shared.WithFieldErrors(fields))
		}
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err, opts...)
}
