package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/easybank/easybank-services/internal/audit"
	"github.com/easybank/easybank-services/internal/domain"
	"github.com/easybank/easybank-services/internal/platform/logger"
	"github.com/easybank/easybank-services/internal/redact"
	"github.com/easybank/easybank-services/internal/store"
)

const accountColumns = `account_number, customer_id, account_type, branch_address, created_at, created_by, updated_at, updated_by`

var accountUniques = map[string]error{
	"accounts_pkey": store.ErrAccountNumberExists,
}

// PostgresAccountStore implements the store.AccountStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAccountStore struct {
	db     store.DBTX
	logger *slog.Logger
	now    func() time.Time
}

// NewPostgresAccountStore creates a new PostgreSQL implementation of the AccountStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresAccountStore(db store.DBTX, logger *slog.Logger) *PostgresAccountStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAccountStore{
		db:     db,
		logger: logger.With(slog.String("component", "account_store")),
		now:    utcNow,
	}
}

var _ store.AccountStore = (*PostgresAccountStore)(nil)

// WithTx implements store.AccountStore.WithTx.
func (s *PostgresAccountStore) WithTx(tx *sql.Tx) store.AccountStore {
	return &PostgresAccountStore{
		db:     tx,
		logger: s.logger,
		now:    s.now,
	}
}

// Create implements store.AccountStore.Create.
func (s *PostgresAccountStore) Create(ctx context.Context, account *domain.Account, actor audit.Actor) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := account.Validate(); err != nil {
		log.Warn("account validation failed during create",
			slog.String("error", err.Error()),
			slog.String("customer_id", account.CustomerID.String()))
		return err
	}
	if err := checkActor(actor); err != nil {
		return err
	}

	now := s.now()
	query := `
		INSERT INTO accounts (account_number, customer_id, account_type, branch_address, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(ctx, query,
		account.AccountNumber,
		account.CustomerID,
		account.AccountType,
		account.BranchAddress,
		now,
		actor.String(),
	)
	if err != nil {
		log.Error("failed to create account",
			slog.String("error", redact.Error(err)),
			slog.String("customer_id", account.CustomerID.String()))
		return store.NewStoreError("account", "create", "insert failed",
			mapConstraintError(err, accountUniques))
	}

	account.Audit = domain.Audit{CreatedAt: now, CreatedBy: actor.String()}

	log.Debug("account created",
		slog.String("customer_id", account.CustomerID.String()),
		slog.String("actor", actor.String()))
	return nil
}

// GetByCustomerID implements store.AccountStore.GetByCustomerID.
func (s *PostgresAccountStore) GetByCustomerID(ctx context.Context, customerID uuid.UUID) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE customer_id = $1`
	return s.get(ctx, query, customerID, slog.String("customer_id", customerID.String()))
}

// GetByAccountNumber implements store.AccountStore.GetByAccountNumber.
func (s *PostgresAccountStore) GetByAccountNumber(ctx context.Context, accountNumber int64) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_number = $1`
	return s.get(ctx, query, accountNumber, slog.Int64("account_number", accountNumber))
}

func (s *PostgresAccountStore) get(ctx context.Context, query string, key any, keyAttr slog.Attr) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	account, err := scanAccount(s.db.QueryRowContext(ctx, query, key))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("account not found", keyAttr)
			return nil, store.ErrAccountNotFound
		}
		log.Error("failed to get account",
			slog.String("error", redact.Error(err)),
			keyAttr)
		return nil, MapError(err)
	}

	return account, nil
}

// ExistsByAccountNumber implements store.AccountStore.ExistsByAccountNumber.
func (s *PostgresAccountStore) ExistsByAccountNumber(ctx context.Context, accountNumber int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM accounts WHERE account_number = $1)`,
		accountNumber,
	).Scan(&exists)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to check account number",
			slog.String("error", redact.Error(err)))
		return false, MapError(err)
	}
	return exists, nil
}

// Update implements store.AccountStore.Update.
func (s *PostgresAccountStore) Update(ctx context.Context, account *domain.Account, actor audit.Actor) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := account.Validate(); err != nil {
		log.Warn("account validation failed during update",
			slog.String("error", err.Error()))
		return err
	}
	if err := checkActor(actor); err != nil {
		return err
	}

	now := s.now()
	query := `
		UPDATE accounts
		SET account_type = $1, branch_address = $2, updated_at = $3, updated_by = $4
		WHERE account_number = $5
	`
	result, err := s.db.ExecContext(ctx, query,
		account.AccountType,
		account.BranchAddress,
		now,
		actor.String(),
		account.AccountNumber,
	)
	if err != nil {
		log.Error("failed to update account",
			slog.String("error", redact.Error(err)))
		return store.NewStoreError("account", "update", "update failed", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrAccountNotFound); err != nil {
		log.Debug("account not found for update")
		return err
	}

	account.UpdatedAt = &now
	account.UpdatedBy = actor.String()

	log.Debug("account updated", slog.String("actor", actor.String()))
	return nil
}

// DeleteByCustomerID implements store.AccountStore.DeleteByCustomerID.
func (s *PostgresAccountStore) DeleteByCustomerID(ctx context.Context, customerID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM accounts WHERE customer_id = $1`, customerID)
	if err != nil {
		log.Error("failed to delete account",
			slog.String("error", redact.Error(err)),
			slog.String("customer_id", customerID.String()))
		return store.NewStoreError("account", "delete", "delete failed", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrAccountNotFound); err != nil {
		log.Debug("account not found for delete", slog.String("customer_id", customerID.String()))
		return err
	}

	log.Debug("account deleted", slog.String("customer_id", customerID.String()))
	return nil
}

func scanAccount(row rowScanner) (*domain.Account, error) {
	var a domain.Account
	var cols auditColumns
	err := row.Scan(
		&a.AccountNumber,
		&a.CustomerID,
		&a.AccountType,
		&a.BranchAddress,
		&a.CreatedAt,
		&a.CreatedBy,
		&cols.updatedAt,
		&cols.updatedBy,
	)
	if err != nil {
		return nil, err
	}
	cols.apply(&a.Audit)
	return &a, nil
}
