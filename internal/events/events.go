package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TypeAccountCreated is emitted after a customer and its account are persisted.
const TypeAccountCreated = "account.created"

// AccountsMsg is the notification sent when an account is opened.
// Its JSON form is the wire shape consumed by downstream messaging.
type AccountsMsg struct {
	AccountNumber int64  `json:"accountNumber"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	MobileNumber  string `json:"mobileNumber"`
}

// Event is the envelope every emitted message travels in.
type Event struct {
	ID        uuid.UUID       `json:"id"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"createdAt"`
}

// NewEvent serializes payload and wraps it in an Event of the given type.
func NewEvent(eventType string, payload any) (*Event, error) {
	if eventType == "" {
		return nil, fmt.Errorf("event type must not be empty")
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}

	return &Event{
		ID:        uuid.New(),
		Type:      eventType,
		Payload:   data,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// NewAccountCreatedEvent wraps msg in an account.created event.
func NewAccountCreatedEvent(msg AccountsMsg) (*Event, error) {
	return NewEvent(TypeAccountCreated, msg)
}

// UnmarshalPayload decodes the event payload into v.
func (e *Event) UnmarshalPayload(v any) error {
	return json.Unmarshal(e.Payload, v)
}

// AccountsMsg decodes the payload of an account.created event.
func (e *Event) AccountsMsg() (AccountsMsg, error) {
	var msg AccountsMsg
	if e.Type != TypeAccountCreated {
		return msg, fmt.Errorf("event %s has type %q, want %q", e.ID, e.Type, TypeAccountCreated)
	}
	if err := e.UnmarshalPayload(&msg); err != nil {
		return msg, fmt.Errorf("failed to decode accounts message: %w", err)
	}
	return msg, nil
}

// EventHandler processes events delivered by an emitter.
type EventHandler interface {
	HandleEvent(ctx context.Context, event *Event) error
}

// EventEmitter publishes events to its registered handlers.
type EventEmitter interface {
	EmitEvent(ctx context.Context, event *Event) error
}
