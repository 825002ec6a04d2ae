package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/easybank/easybank-services/internal/audit"
	"github.com/easybank/easybank-services/internal/domain"
)

// AccountStore defines the interface for account persistence.
type AccountStore interface {
	// Create inserts an account, stamping created_by/created_at from actor.
	// Returns ErrAccountNumberExists if the number is already assigned.
	Create(ctx context.Context, account *domain.Account, actor audit.Actor) error

	// GetByCustomerID returns the account owned by customerID.
	// Returns ErrAccountNotFound if there is none.
	GetByCustomerID(ctx context.Context, customerID uuid.UUID) (*domain.Account, error)

	// GetByAccountNumber returns the account with the given number.
	// Returns ErrAccountNotFound if there is none.
	GetByAccountNumber(ctx context.Context, accountNumber int64) (*domain.Account, error)

	// ExistsByAccountNumber reports whether the number is already assigned.
	ExistsByAccountNumber(ctx context.Context, accountNumber int64) (bool, error)

	// Update overwrites account type and branch address and stamps
	// updated_by/updated_at. Returns ErrAccountNotFound if absent.
	Update(ctx context.Context, account *domain.Account, actor audit.Actor) error

	// DeleteByCustomerID removes the account owned by customerID.
	// Returns ErrAccountNotFound if there is none.
	DeleteByCustomerID(ctx context.Context, customerID uuid.UUID) error

	// WithTx returns an AccountStore that runs its queries on tx.
	WithTx(tx *sql.Tx) AccountStore
}
