package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/easybank/easybank-services/internal/audit"
	"github.com/easybank/easybank-services/internal/domain"
	"github.com/easybank/easybank-services/internal/platform/logger"
	"github.com/easybank/easybank-services/internal/redact"
	"github.com/easybank/easybank-services/internal/store"
)

const cardColumns = `id, card_number, mobile_number, card_type, total_limit, amount_used, available_amount, ` +
	`created_at, created_by, updated_at, updated_by`

var cardUniques = map[string]error{
	"uq_cards_mobile_number": store.ErrCardExists,
	"uq_cards_card_number":   store.ErrCardNumberExists,
}

// PostgresCardStore implements the store.CardStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCardStore struct {
	db     store.DBTX
	logger *slog.Logger
	now    func() time.Time
}

// NewPostgresCardStore creates a new PostgreSQL implementation of the CardStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCardStore(db store.DBTX, logger *slog.Logger) *PostgresCardStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCardStore{
		db:     db,
		logger: logger.With(slog.String("component", "card_store")),
		now:    utcNow,
	}
}

var _ store.CardStore = (*PostgresCardStore)(nil)

// WithTx implements store.CardStore.WithTx.
func (s *PostgresCardStore) WithTx(tx *sql.Tx) store.CardStore {
	return &PostgresCardStore{
		db:     tx,
		logger: s.logger,
		now:    s.now,
	}
}

// Create implements store.CardStore.Create.
func (s *PostgresCardStore) Create(ctx context.Context, card *domain.Card, actor audit.Actor) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := card.Validate(); err != nil {
		log.Warn("card validation failed during create",
			slog.String("error", err.Error()),
			slog.String("card_id", card.ID.String()))
		return err
	}
	if err := checkActor(actor); err != nil {
		return err
	}

	now := s.now()
	query := `
		INSERT INTO cards (id, card_number, mobile_number, card_type, total_limit, amount_used,
			available_amount, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(ctx, query,
		card.ID,
		card.CardNumber,
		card.MobileNumber,
		card.CardType,
		card.TotalLimit,
		card.AmountUsed,
		card.AvailableAmount,
		now,
		actor.String(),
	)
	if err != nil {
		mapped := mapConstraintError(err, cardUniques)
		if store.IsDuplicateError(mapped) {
			log.Debug("card already issued",
				slog.String("mobile_number", redact.Mobile(card.MobileNumber)))
		} else {
			log.Error("failed to create card",
				slog.String("error", redact.Error(err)),
				slog.String("card_id", card.ID.String()))
		}
		return store.NewStoreError("card", "create", "insert failed", mapped)
	}

	card.Audit = domain.Audit{CreatedAt: now, CreatedBy: actor.String()}

	log.Debug("card created",
		slog.String("card_id", card.ID.String()),
		slog.String("actor", actor.String()))
	return nil
}

// GetByMobileNumber implements store.CardStore.GetByMobileNumber.
func (s *PostgresCardStore) GetByMobileNumber(ctx context.Context, mobileNumber string) (*domain.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE mobile_number = $1`
	return s.get(ctx, query, mobileNumber, slog.String("mobile_number", redact.Mobile(mobileNumber)))
}

// GetByCardNumber implements store.CardStore.GetByCardNumber.
func (s *PostgresCardStore) GetByCardNumber(ctx context.Context, cardNumber string) (*domain.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE card_number = $1`
	return s.get(ctx, query, cardNumber, slog.String("card_number", redact.Digits(cardNumber)))
}

func (s *PostgresCardStore) get(ctx context.Context, query string, key any, keyAttr slog.Attr) (*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	card, err := scanCard(s.db.QueryRowContext(ctx, query, key))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("card not found", keyAttr)
			return nil, store.ErrCardNotFound
		}
		log.Error("failed to get card",
			slog.String("error", redact.Error(err)),
			keyAttr)
		return nil, MapError(err)
	}

	return card, nil
}

// ExistsByCardNumber implements store.CardStore.ExistsByCardNumber.
func (s *PostgresCardStore) ExistsByCardNumber(ctx context.Context, cardNumber string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM cards WHERE card_number = $1)`,
		cardNumber,
	).Scan(&exists)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to check card number",
			slog.String("error", redact.Error(err)))
		return false, MapError(err)
	}
	return exists, nil
}

// Update implements store.CardStore.Update.
func (s *PostgresCardStore) Update(ctx context.Context, card *domain.Card, actor audit.Actor) error {
	log := logger.FromContextOrDefault(ctx, s.logger)
	cardAttr := slog.String("card_number", redact.Digits(card.CardNumber))

	if err := card.Validate(); err != nil {
		log.Warn("card validation failed during update",
			slog.String("error", err.Error()),
			cardAttr)
		return err
	}
	if err := checkActor(actor); err != nil {
		return err
	}

	now := s.now()
	query := `
		UPDATE cards
		SET mobile_number = $1, card_type = $2, total_limit = $3, amount_used = $4,
			available_amount = $5, updated_at = $6, updated_by = $7
		WHERE card_number = $8
	`
	result, err := s.db.ExecContext(ctx, query,
		card.MobileNumber,
		card.CardType,
		card.TotalLimit,
		card.AmountUsed,
		card.AvailableAmount,
		now,
		actor.String(),
		card.CardNumber,
	)
	if err != nil {
		log.Error("failed to update card",
			slog.String("error", redact.Error(err)),
			cardAttr)
		return store.NewStoreError("card", "update", "update failed",
			mapConstraintError(err, cardUniques))
	}

	if err := CheckRowsAffected(result, store.ErrCardNotFound); err != nil {
		log.Debug("card not found for update", cardAttr)
		return err
	}

	card.UpdatedAt = &now
	card.UpdatedBy = actor.String()

	log.Debug("card updated", cardAttr, slog.String("actor", actor.String()))
	return nil
}

// DeleteByMobileNumber implements store.CardStore.DeleteByMobileNumber.
func (s *PostgresCardStore) DeleteByMobileNumber(ctx context.Context, mobileNumber string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)
	mobileAttr := slog.String("mobile_number", redact.Mobile(mobileNumber))

	result, err := s.db.ExecContext(ctx, `DELETE FROM cards WHERE mobile_number = $1`, mobileNumber)
	if err != nil {
		log.Error("failed to delete card",
			slog.String("error", redact.Error(err)),
			mobileAttr)
		return store.NewStoreError("card", "delete", "delete failed", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrCardNotFound); err != nil {
		log.Debug("card not found for delete", mobileAttr)
		return err
	}

	log.Debug("card deleted", mobileAttr)
	return nil
}

func scanCard(row rowScanner) (*domain.Card, error) {
	var c domain.Card
	var cols auditColumns
	err := row.Scan(
		&c.ID,
		&c.CardNumber,
		&c.MobileNumber,
		&c.CardType,
		&c.TotalLimit,
		&c.AmountUsed,
		&c.AvailableAmount,
		&c.CreatedAt,
		&c.CreatedBy,
		&cols.updatedAt,
		&cols.updatedBy,
	)
	if err != nil {
		return nil, err
	}
	cols.apply(&c.Audit)
	return &c, nil
}
