package mocks

import (
	"context"
	"sync"

	"github.com/easybank/easybank-services/internal/store"
)

// MockTransactor implements store.Transactor without a database.
// By default fn runs with a nil *sql.Tx and its error is returned as is,
// so mocks whose WithTx ignores the transaction work unchanged.
type MockTransactor struct {
	// RunInTxFn replaces the default behavior when set
	RunInTxFn func(ctx context.Context, fn store.TxFn) error

	// Err, when set, is returned without calling fn
	Err error

	mu    sync.Mutex
	calls int
}

var _ store.Transactor = (*MockTransactor)(nil)

// RunInTx implements store.Transactor.
func (m *MockTransactor) RunInTx(ctx context.Context, fn store.TxFn) error {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.RunInTxFn != nil {
		return m.RunInTxFn(ctx, fn)
	}
	if m.Err != nil {
		return m.Err
	}
	return fn(ctx, nil)
}

// Calls returns how many times RunInTx was called.
func (m *MockTransactor) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
