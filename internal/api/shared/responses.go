package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/easybank/easybank-services/internal/platform/logger"
	"github.com/easybank/easybank-services/internal/redact"
)

// ErrorResponse defines the standard error response structure.
type ErrorResponse struct {
	APIPath      string            `json:"apiPath"`
	ErrorCode    string            `json:"errorCode"`
	ErrorMessage string            `json:"errorMessage"`
	ErrorTime    time.Time         `json:"errorTime"`
	TraceID      string            `json:"traceId,omitempty"`
	FieldErrors  map[string]string `json:"fieldErrors,omitempty"`
}

// ErrorCode turns an HTTP status into the upper-case key clients match on,
// e.g. 404 becomes "NOT_FOUND".
func ErrorCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return fmt.Sprintf("STATUS_%d", status)
	}
	text = strings.ReplaceAll(text, "-", "_")
	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}

// ResponseOption defines a function to customize response behavior.
type ResponseOption func(*responseOptions)

type responseOptions struct {
	elevateLogLevel bool
	fieldErrors     map[string]string
}

// WithElevatedLogLevel returns a ResponseOption that raises 4xx errors to WARN level
// instead of the default DEBUG level.
func WithElevatedLogLevel() ResponseOption {
	return func(opts *responseOptions) {
		opts.elevateLogLevel = true
	}
}

// WithFieldErrors attaches per-field validation messages to the response.
func WithFieldErrors(fieldErrors map[string]string) ResponseOption {
	return func(opts *responseOptions) {
		opts.fieldErrors = fieldErrors
	}
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContextOrDefault(r.Context(), slog.Default()).
			Error("failed to encode JSON response", "error", err)
	}
}

func newErrorResponse(r *http.Request, status int, message string, fieldErrors map[string]string) ErrorResponse {
	return ErrorResponse{
		APIPath:      "uri=" + r.URL.Path,
		ErrorCode:    ErrorCode(status),
		ErrorMessage: message,
		ErrorTime:    time.Now().UTC(),
		TraceID:      GetTraceID(r.Context()),
		FieldErrors:  fieldErrors,
	}
}

// RespondWithError writes a JSON error response with the given status code and message.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := newErrorResponse(r, status, message, nil)

	logger.FromContextOrDefault(r.Context(), slog.Default()).Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", resp.TraceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, resp)
}

// RespondWithErrorAndLog writes a JSON error response and logs the redacted
// error. The raw error string never reaches the client.
//
// 5xx responses are logged at ERROR, 4xx at DEBUG unless elevated to WARN
// with WithElevatedLogLevel.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
	opts ...ResponseOption,
) {
	responseOpts := responseOptions{}
	for _, opt := range opts {
		opt(&responseOpts)
	}

	resp := newErrorResponse(r, status, userMessage, responseOpts.fieldErrors)

	logAttrs := []slog.Attr{
		slog.String("trace_id", resp.TraceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	} else if responseOpts.elevateLogLevel && status >= http.StatusBadRequest {
		logLevel = slog.LevelWarn
	}

	logger.FromContextOrDefault(r.Context(), slog.Default()).
		LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, resp)
}
