package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/easybank/easybank-services/internal/api/shared"
	"github.com/easybank/easybank-services/internal/audit"
	"github.com/easybank/easybank-services/internal/domain"
	"github.com/easybank/easybank-services/internal/redact"
)

// Validation rule for mobile numbers passed as query parameters.
const mobileNumberRule = "required,len=10,numeric"

// decodeAndValidate reads the JSON body into v and validates it. On failure
// it writes a 400 response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}, log *slog.Logger) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		log.Debug("invalid request body", slog.String("error", redact.Error(err)))
		HandleAPIError(w, r,
			domain.NewValidationError("", "invalid request body", domain.ErrInvalidFormat), "")
		return false
	}

	if err := shared.ValidateRequest(v); err != nil {
		log.Debug("request validation failed", slog.String("error", redact.Error(err)))
		HandleAPIError(w, r, domain.NewValidationError("", "request validation failed", err), "")
		return false
	}

	return true
}

// mobileNumberParam reads and validates the mobileNumber query parameter.
// On failure it writes a 400 response and returns false.
func mobileNumberParam(w http.ResponseWriter, r *http.Request, log *slog.Logger) (string, bool) {
	mobileNumber := r.URL.Query().Get("mobileNumber")

	err := shared.ValidateVar(mobileNumber, mobileNumberRule)
	if err == nil {
		return mobileNumber, true
	}

	message := "is invalid"
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		message = shared.FieldMessage(fieldErrs[0].Tag(), fieldErrs[0].Param())
	}

	log.Debug("invalid mobileNumber parameter", slog.String("reason", message))
	HandleAPIError(w, r, domain.NewValidationError("mobileNumber", message, domain.ErrInvalidFormat), "")
	return "", false
}

// requestActor returns the actor placed in the context by the actor
// middleware, or fallback when the route is mounted without it.
func requestActor(r *http.Request, fallback audit.Actor) audit.Actor {
	if actor, ok := audit.FromContext(r.Context()); ok {
		return actor
	}
	return fallback
}
