package mocks

import (
	"context"
	"sync"

	"github.com/easybank/easybank-services/internal/events"
)

// MockEventEmitter records emitted events and returns Err.
type MockEventEmitter struct {
	Err error

	mu     sync.Mutex
	events []*events.Event
}

var _ events.EventEmitter = (*MockEventEmitter)(nil)

// EmitEvent implements events.EventEmitter.
func (m *MockEventEmitter) EmitEvent(_ context.Context, event *events.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return m.Err
}

// Events returns a copy of the events emitted so far.
func (m *MockEventEmitter) Events() []*events.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*events.Event, len(m.events))
	copy(out, m.events)
	return out
}
