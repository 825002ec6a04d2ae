package mocks

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/easybank/easybank-services/internal/audit"
	"github.com/easybank/easybank-services/internal/domain"
	"github.com/easybank/easybank-services/internal/store"
)

// InMemoryCustomerStore is a map-backed store.CustomerStore.
// WithTx ignores the transaction; writes are applied immediately.
type InMemoryCustomerStore struct {
	mu        sync.RWMutex
	customers map[uuid.UUID]domain.Customer
}

var _ store.CustomerStore = (*InMemoryCustomerStore)(nil)

// NewInMemoryCustomerStore creates an empty customer store.
func NewInMemoryCustomerStore() *InMemoryCustomerStore {
	return &InMemoryCustomerStore{customers: make(map[uuid.UUID]domain.Customer)}
}

func (s *InMemoryCustomerStore) Create(_ context.Context, customer *domain.Customer, actor audit.Actor) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.customers {
		if c.MobileNumber == customer.MobileNumber {
			return store.ErrMobileNumberExists
		}
	}
	customer.Audit = domain.Audit{CreatedAt: time.Now().UTC(), CreatedBy: actor.String()}
	s.customers[customer.ID] = *customer
	return nil
}

func (s *InMemoryCustomerStore) GetByMobileNumber(_ context.Context, mobileNumber string) (*domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if c.MobileNumber == mobileNumber {
			return &c, nil
		}
	}
	return nil, store.ErrCustomerNotFound
}

func (s *InMemoryCustomerStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.customers[id]
	if !ok {
		return nil, store.ErrCustomerNotFound
	}
	return &c, nil
}

func (s *InMemoryCustomerStore) Update(_ context.Context, customer *domain.Customer, actor audit.Actor) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.customers[customer.ID]
	if !ok {
		return store.ErrCustomerNotFound
	}
	for id, c := range s.customers {
		if id != customer.ID && c.MobileNumber == customer.MobileNumber {
			return store.ErrMobileNumberExists
		}
	}
	now := time.Now().UTC()
	customer.CreatedAt = existing.CreatedAt
	customer.CreatedBy = existing.CreatedBy
	customer.UpdatedAt = &now
	customer.UpdatedBy = actor.String()
	s.customers[customer.ID] = *customer
	return nil
}

func (s *InMemoryCustomerStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.customers[id]; !ok {
		return store.ErrCustomerNotFound
	}
	delete(s.customers, id)
	return nil
}

func (s *InMemoryCustomerStore) WithTx(*sql.Tx) store.CustomerStore {
	return s
}

// Len returns the number of stored customers.
func (s *InMemoryCustomerStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.customers)
}

// InMemoryAccountStore is a map-backed store.AccountStore keyed by account number.
type InMemoryAccountStore struct {
	mu       sync.RWMutex
	accounts map[int64]domain.Account
}

var _ store.AccountStore = (*InMemoryAccountStore)(nil)

// NewInMemoryAccountStore creates an empty account store.
func NewInMemoryAccountStore() *InMemoryAccountStore {
	return &InMemoryAccountStore{accounts: make(map[int64]domain.Account)}
}

func (s *InMemoryAccountStore) Create(_ context.Context, account *domain.Account, actor audit.Actor) error {
	if err := account.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[account.AccountNumber]; ok {
		return store.ErrAccountNumberExists
	}
	account.Audit = domain.Audit{CreatedAt: time.Now().UTC(), CreatedBy: actor.String()}
	s.accounts[account.AccountNumber] = *account
	return nil
}

func (s *InMemoryAccountStore) GetByCustomerID(_ context.Context, customerID uuid.UUID) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.accounts {
		if a.CustomerID == customerID {
			return &a, nil
		}
	}
	return nil, store.ErrAccountNotFound
}

func (s *InMemoryAccountStore) GetByAccountNumber(_ context.Context, accountNumber int64) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[accountNumber]
	if !ok {
		return nil, store.ErrAccountNotFound
	}
	return &a, nil
}

func (s *InMemoryAccountStore) ExistsByAccountNumber(_ context.Context, accountNumber int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.accounts[accountNumber]
	return ok, nil
}

func (s *InMemoryAccountStore) Update(_ context.Context, account *domain.Account, actor audit.Actor) error {
	if err := account.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.accounts[account.AccountNumber]
	if !ok {
		return store.ErrAccountNotFound
	}
	now := time.Now().UTC()
	existing.AccountType = account.AccountType
	existing.BranchAddress = account.BranchAddress
	existing.UpdatedAt = &now
	existing.UpdatedBy = actor.String()
	s.accounts[account.AccountNumber] = existing
	account.Audit = existing.Audit
	return nil
}

func (s *InMemoryAccountStore) DeleteByCustomerID(_ context.Context, customerID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for n, a := range s.accounts {
		if a.CustomerID == customerID {
			delete(s.accounts, n)
			return nil
		}
	}
	return store.ErrAccountNotFound
}

func (s *InMemoryAccountStore) WithTx(*sql.Tx) store.AccountStore {
	return s
}

// Len returns the number of stored accounts.
func (s *InMemoryAccountStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts)
}

// InMemoryCardStore is a map-backed store.CardStore keyed by card number.
type InMemoryCardStore struct {
	mu    sync.RWMutex
	cards map[string]domain.Card
}

var _ store.CardStore = (*InMemoryCardStore)(nil)

// NewInMemoryCardStore creates an empty card store.
func NewInMemoryCardStore() *InMemoryCardStore {
	return &InMemoryCardStore{cards: make(map[string]domain.Card)}
}

func (s *InMemoryCardStore) Create(_ context.Context, card *domain.Card, actor audit.Actor) error {
	if err := card.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cards[card.CardNumber]; ok {
		return store.ErrCardNumberExists
	}
	for _, c := range s.cards {
		if c.MobileNumber == card.MobileNumber {
			return store.ErrCardExists
		}
	}
	card.Audit = domain.Audit{CreatedAt: time.Now().UTC(), CreatedBy: actor.String()}
	s.cards[card.CardNumber] = *card
	return nil
}

func (s *InMemoryCardStore) GetByMobileNumber(_ context.Context, mobileNumber string) (*domain.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.cards {
		if c.MobileNumber == mobileNumber {
			return &c, nil
		}
	}
	return nil, store.ErrCardNotFound
}

func (s *InMemoryCardStore) GetByCardNumber(_ context.Context, cardNumber string) (*domain.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.cards[cardNumber]
	if !ok {
		return nil, store.ErrCardNotFound
	}
	return &c, nil
}

func (s *InMemoryCardStore) ExistsByCardNumber(_ context.Context, cardNumber string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.cards[cardNumber]
	return ok, nil
}

func (s *InMemoryCardStore) Update(_ context.Context, card *domain.Card, actor audit.Actor) error {
	if err := card.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.cards[card.CardNumber]
	if !ok {
		return store.ErrCardNotFound
	}
	for n, c := range s.cards {
		if n != card.CardNumber && c.MobileNumber == card.MobileNumber {
			return store.ErrCardExists
		}
	}
	now := time.Now().UTC()
	card.CreatedAt = existing.CreatedAt
	card.CreatedBy = existing.CreatedBy
	card.UpdatedAt = &now
	card.UpdatedBy = actor.String()
	s.cards[card.CardNumber] = *card
	return nil
}

func (s *InMemoryCardStore) DeleteByMobileNumber(_ context.Context, mobileNumber string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for n, c := range s.cards {
		if c.MobileNumber == mobileNumber {
			delete(s.cards, n)
			return nil
		}
	}
	return store.ErrCardNotFound
}

func (s *InMemoryCardStore) WithTx(*sql.Tx) store.CardStore {
	return s
}

// Len returns the number of stored cards.
func (s *InMemoryCardStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cards)
}
