package mocks

import (
	"context"
	"sync"

	"github.com/easybank/easybank-services/internal/audit"
	"github.com/easybank/easybank-services/internal/service"
)

// MockAccountService implements service.AccountService for handler tests.
type MockAccountService struct {
	CreateAccountFn func(ctx context.Context, actor audit.Actor, details service.CustomerDetails) (*service.CustomerAccount, error)
	FetchAccountFn  func(ctx context.Context, mobileNumber string) (*service.CustomerAccount, error)
	UpdateAccountFn func(ctx context.Context, actor audit.Actor, update service.AccountUpdate) error
	DeleteAccountFn func(ctx context.Context, mobileNumber string) error

	// Default response values, used when the matching Fn is nil
	Result *service.CustomerAccount
	Err    error

	mu     sync.Mutex
	Actors []audit.Actor
	Calls  map[string]int
}

var _ service.AccountService = (*MockAccountService)(nil)

func (m *MockAccountService) record(method string, actor audit.Actor) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Calls == nil {
		m.Calls = make(map[string]int)
	}
	m.Calls[method]++
	if actor != "" {
		m.Actors = append(m.Actors, actor)
	}
}

// CallCount returns how many times method was called.
func (m *MockAccountService) CallCount(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls[method]
}

func (m *MockAccountService) CreateAccount(
	ctx context.Context,
	actor audit.Actor,
	details service.CustomerDetails,
) (*service.CustomerAccount, error) {
	m.record("CreateAccount", actor)
	if m.CreateAccountFn != nil {
		return m.CreateAccountFn(ctx, actor, details)
	}
	return m.Result, m.Err
}

func (m *MockAccountService) FetchAccount(ctx context.Context, mobileNumber string) (*service.CustomerAccount, error) {
	m.record("FetchAccount", "")
	if m.FetchAccountFn != nil {
		return m.FetchAccountFn(ctx, mobileNumber)
	}
	return m.Result, m.Err
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, actor audit.Actor, update service.AccountUpdate) error {
	m.record("UpdateAccount", actor)
	if m.UpdateAccountFn != nil {
		return m.UpdateAccountFn(ctx, actor, update)
	}
	return m.Err
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, mobileNumber string) error {
	m.record("DeleteAccount", "")
	if m.DeleteAccountFn != nil {
		return m.DeleteAccountFn(ctx, mobileNumber)
	}
	return m.Err
}
