package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/easybank/easybank-services/internal/audit"
	"github.com/easybank/easybank-services/internal/domain"
	"github.com/easybank/easybank-services/internal/store"
)

// MockCustomerStore is a mock of store.CustomerStore for use with testify/mock.
// WithTx returns the mock itself unless an expectation says otherwise.
type MockCustomerStore struct {
	mock.Mock
}

var _ store.CustomerStore = (*MockCustomerStore)(nil)

func (m *MockCustomerStore) Create(ctx context.Context, customer *domain.Customer, actor audit.Actor) error {
	args := m.Called(ctx, customer, actor)
	return args.Error(0)
}

func (m *MockCustomerStore) GetByMobileNumber(ctx context.Context, mobileNumber string) (*domain.Customer, error) {
	args := m.Called(ctx, mobileNumber)
	if c, ok := args.Get(0).(*domain.Customer); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*domain.Customer); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerStore) Update(ctx context.Context, customer *domain.Customer, actor audit.Actor) error {
	args := m.Called(ctx, customer, actor)
	return args.Error(0)
}

func (m *MockCustomerStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerStore) WithTx(tx *sql.Tx) store.CustomerStore {
	return m
}

// MockAccountStore is a mock of store.AccountStore for use with testify/mock.
type MockAccountStore struct {
	mock.Mock
}

var _ store.AccountStore = (*MockAccountStore)(nil)

func (m *MockAccountStore) Create(ctx context.Context, account *domain.Account, actor audit.Actor) error {
	args := m.Called(ctx, account, actor)
	return args.Error(0)
}

func (m *MockAccountStore) GetByCustomerID(ctx context.Context, customerID uuid.UUID) (*domain.Account, error) {
	args := m.Called(ctx, customerID)
	if a, ok := args.Get(0).(*domain.Account); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAccountStore) GetByAccountNumber(ctx context.Context, accountNumber int64) (*domain.Account, error) {
	args := m.Called(ctx, accountNumber)
	if a, ok := args.Get(0).(*domain.Account); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAccountStore) ExistsByAccountNumber(ctx context.Context, accountNumber int64) (bool, error) {
	args := m.Called(ctx, accountNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountStore) Update(ctx context.Context, account *domain.Account, actor audit.Actor) error {
	args := m.Called(ctx, account, actor)
	return args.Error(0)
}

func (m *MockAccountStore) DeleteByCustomerID(ctx context.Context, customerID uuid.UUID) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

func (m *MockAccountStore) WithTx(tx *sql.Tx) store.AccountStore {
	return m
}

// MockCardStore is a mock of store.CardStore for use with testify/mock.
type MockCardStore struct {
	mock.Mock
}

var _ store.CardStore = (*MockCardStore)(nil)

func (m *MockCardStore) Create(ctx context.Context, card *domain.Card, actor audit.Actor) error {
	args := m.Called(ctx, card, actor)
	return args.Error(0)
}

func (m *MockCardStore) GetByMobileNumber(ctx context.Context, mobileNumber string) (*domain.Card, error) {
	args := m.Called(ctx, mobileNumber)
	if c, ok := args.Get(0).(*domain.Card); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCardStore) GetByCardNumber(ctx context.Context, cardNumber string) (*domain.Card, error) {
	args := m.Called(ctx, cardNumber)
	if c, ok := args.Get(0).(*domain.Card); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCardStore) ExistsByCardNumber(ctx context.Context, cardNumber string) (bool, error) {
	args := m.Called(ctx, cardNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockCardStore) Update(ctx context.Context, card *domain.Card, actor audit.Actor) error {
	args := m.Called(ctx, card, actor)
	return args.Error(0)
}

func (m *MockCardStore) DeleteByMobileNumber(ctx context.Context, mobileNumber string) error {
	args := m.Called(ctx, mobileNumber)
	return args.Error(0)
}

func (m *MockCardStore) WithTx(tx *sql.Tx) store.CardStore {
	return m
}
