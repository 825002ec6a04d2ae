package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/easybank/easybank-services/internal/audit"
	"github.com/easybank/easybank-services/internal/domain"
)

// CustomerStore defines the interface for customer persistence.
type CustomerStore interface {
	// Create inserts a customer, stamping created_by/created_at from actor.
	// Returns ErrMobileNumberExists if the mobile number is already taken.
	Create(ctx context.Context, customer *domain.Customer, actor audit.Actor) error

	// GetByMobileNumber returns the customer owning mobileNumber.
	// Returns ErrCustomerNotFound if there is none.
	GetByMobileNumber(ctx context.Context, mobileNumber string) (*domain.Customer, error)

	// GetByID returns the customer with the given ID.
	// Returns ErrCustomerNotFound if there is none.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)

	// Update overwrites name, email, and mobile number and stamps
	// updated_by/updated_at. Creation audit fields are never touched.
	// Returns ErrCustomerNotFound if the customer does not exist.
	Update(ctx context.Context, customer *domain.Customer, actor audit.Actor) error

	// Delete removes the customer with the given ID.
	// Returns ErrCustomerNotFound if the customer does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a CustomerStore that runs its queries on tx.
	WithTx(tx *sql.Tx) CustomerStore
}
