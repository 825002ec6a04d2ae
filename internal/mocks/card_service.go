package mocks

import (
	"context"
	"sync"

	"github.com/easybank/easybank-services/internal/audit"
	"github.com/easybank/easybank-services/internal/domain"
	"github.com/easybank/easybank-services/internal/service"
)

// MockCardService implements service.CardService for handler tests.
type MockCardService struct {
	CreateCardFn func(ctx context.Context, actor audit.Actor, mobileNumber string) (*domain.Card, error)
	FetchCardFn  func(ctx context.Context, mobileNumber string) (*domain.Card, error)
	UpdateCardFn func(ctx context.Context, actor audit.Actor, details service.CardDetails) error
	DeleteCardFn func(ctx context.Context, mobileNumber string) error

	// Default response values, used when the matching Fn is nil
	Card *domain.Card
	Err  error

	mu    sync.Mutex
	Calls map[string]int
}

var _ service.CardService = (*MockCardService)(nil)

func (m *MockCardService) record(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Calls == nil {
		m.Calls = make(map[string]int)
	}
	m.Calls[method]++
}

// CallCount returns how many times method was called.
func (m *MockCardService) CallCount(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls[method]
}

func (m *MockCardService) CreateCard(ctx context.Context, actor audit.Actor, mobileNumber string) (*domain.Card, error) {
	m.record("CreateCard")
	if m.CreateCardFn != nil {
		return m.CreateCardFn(ctx, actor, mobileNumber)
	}
	return m.Card, m.Err
}

func (m *MockCardService) FetchCard(ctx context.Context, mobileNumber string) (*domain.Card, error) {
	m.record("FetchCard")
	if m.FetchCardFn != nil {
		return m.FetchCardFn(ctx, mobileNumber)
	}
	return m.Card, m.Err
}

func (m *MockCardService) UpdateCard(ctx context.Context, actor audit.Actor, details service.CardDetails) error {
	m.record("UpdateCard")
	if m.UpdateCardFn != nil {
		return m.UpdateCardFn(ctx, actor, details)
	}
	return m.Err
}

func (m *MockCardService) DeleteCard(ctx context.Context, mobileNumber string) error {
	m.record("DeleteCard")
	if m.DeleteCardFn != nil {
		return m.DeleteCardFn(ctx, mobileNumber)
	}
	return m.Err
}
