package shared

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureDefaultLogger(t *testing.T) *strings.Builder {
	t.Helper()
	var buf strings.Builder
	old := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(old) })
	return &buf
}

func TestRespondWithJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/fetch", nil)
	w := httptest.NewRecorder()

	RespondWithJSON(w, req, http.StatusCreated, map[string]string{
		"statusCode": "201",
		"statusMsg":  "Account created successfully",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"statusCode":"201","statusMsg":"Account created successfully"}`, w.Body.String())
}

type unencodable struct {
	Circular *unencodable
}

func TestRespondWithJSONEncodingError(t *testing.T) {
	logBuf := captureDefaultLogger(t)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	data := &unencodable{}
	data.Circular = data

	RespondWithJSON(w, req, http.StatusOK, data)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, logBuf.String(), "failed to encode JSON response")
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", ErrorCode(http.StatusBadRequest))
	assert.Equal(t, "NOT_FOUND", ErrorCode(http.StatusNotFound))
	assert.Equal(t, "EXPECTATION_FAILED", ErrorCode(http.StatusExpectationFailed))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", ErrorCode(http.StatusInternalServerError))
	assert.Equal(t, "MULTI_STATUS", ErrorCode(http.StatusMultiStatus))
	assert.Equal(t, "STATUS_599", ErrorCode(599))
}

func TestRespondWithError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/fetch?mobileNumber=1112223333", nil)
	req = req.WithContext(WithTraceID(req.Context(), "test-trace-id"))
	w := httptest.NewRecorder()

	RespondWithError(w, req, http.StatusNotFound, "Customer not found")

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "uri=/api/fetch", resp.APIPath)
	assert.Equal(t, "NOT_FOUND", resp.ErrorCode)
	assert.Equal(t, "Customer not found", resp.ErrorMessage)
	assert.Equal(t, "test-trace-id", resp.TraceID)
	assert.WithinDuration(t, time.Now(), resp.ErrorTime, 5*time.Second)
	assert.Nil(t, resp.FieldErrors)
}

func TestRespondWithErrorNoTraceID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/fetch", nil)
	w := httptest.NewRecorder()

	RespondWithError(w, req, http.StatusUnauthorized, "Unauthorized")

	var raw map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.NotContains(t, raw, "traceId")
	assert.NotContains(t, raw, "fieldErrors")
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name             string
		statusCode       int
		err              error
		opts             []ResponseOption
		expectedLogLevel string
	}{
		{
			name:             "server error",
			statusCode:       http.StatusInternalServerError,
			err:              errors.New("dial tcp 10.0.0.5:5432: connection refused"),
			expectedLogLevel: "ERROR",
		},
		{
			name:             "client error logs at debug",
			statusCode:       http.StatusBadRequest,
			err:              errors.New("invalid input"),
			expectedLogLevel: "DEBUG",
		},
		{
			name:             "client error elevated",
			statusCode:       http.StatusUnauthorized,
			err:              errors.New("bad token"),
			opts:             []ResponseOption{WithElevatedLogLevel()},
			expectedLogLevel: "WARN",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			logBuf := captureDefaultLogger(t)
			req := httptest.NewRequest(http.MethodPost, "/api/create", nil)
			w := httptest.NewRecorder()

			RespondWithErrorAndLog(w, req, tc.statusCode, "safe message", tc.err, tc.opts...)

			assert.Equal(t, tc.statusCode, w.Code)
			assert.Contains(t, logBuf.String(), "level="+tc.expectedLogLevel)
			assert.NotContains(t, w.Body.String(), tc.err.Error())

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "safe message", resp.ErrorMessage)
		})
	}
}

func TestRespondWithErrorAndLog_RedactsLogs(t *testing.T) {
	logBuf := captureDefaultLogger(t)
	req := httptest.NewRequest(http.MethodPost, "/api/create", nil)
	w := httptest.NewRecorder()

	err := errors.New("failed for postgres://bank:s3cret@db:5432/easybank")
	RespondWithErrorAndLog(w, req, http.StatusInternalServerError, "An error occurred", err)

	assert.NotContains(t, logBuf.String(), "s3cret")
}

func TestRespondWithErrorAndLog_FieldErrors(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/create", nil)
	req = req.WithContext(context.Background())
	w := httptest.NewRecorder()

	RespondWithErrorAndLog(w, req, http.StatusBadRequest, "Validation failed", nil,
		WithFieldErrors(map[string]string{"mobileNumber": "must be 10 characters long"}))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "BAD_REQUEST", resp.ErrorCode)
	assert.Equal(t, "must be 10 characters long", resp.FieldErrors["mobileNumber"])
}
