package store

import (
	"context"
	"database/sql"

	"github.com/easybank/easybank-services/internal/audit"
	"github.com/easybank/easybank-services/internal/domain"
)

// CardStore defines the interface for card persistence.
type CardStore interface {
	// Create inserts a card, stamping created_by/created_at from actor.
	// Returns ErrCardExists if the mobile number already has a card and
	// ErrCardNumberExists if the card number is taken.
	Create(ctx context.Context, card *domain.Card, actor audit.Actor) error

	// GetByMobileNumber returns the card issued to mobileNumber.
	// Returns ErrCardNotFound if there is none.
	GetByMobileNumber(ctx context.Context, mobileNumber string) (*domain.Card, error)

	// GetByCardNumber returns the card with the given number.
	// Returns ErrCardNotFound if there is none.
	GetByCardNumber(ctx context.Context, cardNumber string) (*domain.Card, error)

	// ExistsByCardNumber reports whether the card number is already assigned.
	ExistsByCardNumber(ctx context.Context, cardNumber string) (bool, error)

	// Update overwrites every mutable field of the card identified by
	// card.CardNumber and stamps updated_by/updated_at.
	// Returns ErrCardNotFound if absent.
	Update(ctx context.Context, card *domain.Card, actor audit.Actor) error

	// DeleteByMobileNumber removes the card issued to mobileNumber.
	// Returns ErrCardNotFound if there is none.
	DeleteByMobileNumber(ctx context.Context, mobileNumber string) error

	// WithTx returns a CardStore that runs its queries on tx.
	WithTx(tx *sql.Tx) CardStore
}
