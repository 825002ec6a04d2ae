package events

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easybank/easybank-services/internal/platform/logger"
)

func TestLogPublisher_AccountCreated(t *testing.T) {
	buf, l := logger.NewTestLogger(t)
	publisher := NewLogPublisher(l)

	require.NoError(t, publisher.HandleEvent(context.Background(), testEvent(t)))

	logger.AssertLogField(t, buf, "msg", "published account notification")
	logger.AssertLogField(t, buf, "component", "log_publisher")
	logger.AssertLogField(t, buf, "account_number", float64(1234567890))
	logger.AssertLogField(t, buf, "email", "j***@x.com")
	logger.AssertLogField(t, buf, "mobile_number", "******3333")
	assert.NotContains(t, buf.String(), "jane@x.com")
	assert.NotContains(t, buf.String(), "1112223333")
}

func TestLogPublisher_IgnoresOtherTypes(t *testing.T) {
	var buf bytes.Buffer
	publisher := NewLogPublisher(slog.New(slog.NewJSONHandler(&buf, nil)))

	event, err := NewEvent("card.created", map[string]string{"cardNumber": "100000000001"})
	require.NoError(t, err)

	require.NoError(t, publisher.HandleEvent(context.Background(), event))
	assert.Empty(t, buf.String())
}

func TestLogPublisher_BadPayload(t *testing.T) {
	publisher := NewLogPublisher(nil)
	event := &Event{ID: uuid.New(), Type: TypeAccountCreated, Payload: json.RawMessage(`[]`)}

	assert.Error(t, publisher.HandleEvent(context.Background(), event))
}
