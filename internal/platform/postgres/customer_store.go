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

const customerColumns = `id, name, email, mobile_number, created_at, created_by, updated_at, updated_by`

var customerUniques = map[string]error{
	"uq_customers_mobile_number": store.ErrMobileNumberExists,
}

// PostgresCustomerStore implements the store.CustomerStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCustomerStore struct {
	db     store.DBTX
	logger *slog.Logger
	now    func() time.Time
}

// NewPostgresCustomerStore creates a new PostgreSQL implementation of the CustomerStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresCustomerStore(db store.DBTX, logger *slog.Logger) *PostgresCustomerStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCustomerStore{
		db:     db,
		logger: logger.With(slog.String("component", "customer_store")),
		now:    utcNow,
	}
}

var _ store.CustomerStore = (*PostgresCustomerStore)(nil)

// WithTx implements store.CustomerStore.WithTx.
func (s *PostgresCustomerStore) WithTx(tx *sql.Tx) store.CustomerStore {
	return &PostgresCustomerStore{
		db:     tx,
		logger: s.logger,
		now:    s.now,
	}
}

// Create implements store.CustomerStore.Create.
func (s *PostgresCustomerStore) Create(ctx context.Context, customer *domain.Customer, actor audit.Actor) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := customer.Validate(); err != nil {
		log.Warn("customer validation failed during create",
			slog.String("error", err.Error()),
			slog.String("customer_id", customer.ID.String()))
		return err
	}
	if err := checkActor(actor); err != nil {
		return err
	}

	now := s.now()
	query := `
		INSERT INTO customers (id, name, email, mobile_number, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(ctx, query,
		customer.ID,
		customer.Name,
		customer.Email,
		customer.MobileNumber,
		now,
		actor.String(),
	)
	if err != nil {
		mapped := mapConstraintError(err, customerUniques)
		if store.IsDuplicateError(mapped) {
			log.Debug("customer mobile number already registered",
				slog.String("mobile_number", redact.Mobile(customer.MobileNumber)))
		} else {
			log.Error("failed to create customer",
				slog.String("error", redact.Error(err)),
				slog.String("customer_id", customer.ID.String()))
		}
		return store.NewStoreError("customer", "create", "insert failed", mapped)
	}

	customer.Audit = domain.Audit{CreatedAt: now, CreatedBy: actor.String()}

	log.Debug("customer created",
		slog.String("customer_id", customer.ID.String()),
		slog.String("actor", actor.String()))
	return nil
}

// GetByMobileNumber implements store.CustomerStore.GetByMobileNumber.
func (s *PostgresCustomerStore) GetByMobileNumber(ctx context.Context, mobileNumber string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE mobile_number = $1`
	return s.get(ctx, query, mobileNumber, slog.String("mobile_number", redact.Mobile(mobileNumber)))
}

// GetByID implements store.CustomerStore.GetByID.
func (s *PostgresCustomerStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	return s.get(ctx, query, id, slog.String("customer_id", id.String()))
}

func (s *PostgresCustomerStore) get(ctx context.Context, query string, key any, keyAttr slog.Attr) (*domain.Customer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	customer, err := scanCustomer(s.db.QueryRowContext(ctx, query, key))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("customer not found", keyAttr)
			return nil, store.ErrCustomerNotFound
		}
		log.Error("failed to get customer",
			slog.String("error", redact.Error(err)),
			keyAttr)
		return nil, MapError(err)
	}

	return customer, nil
}

// Update implements store.CustomerStore.Update.
func (s *PostgresCustomerStore) Update(ctx context.Context, customer *domain.Customer, actor audit.Actor) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := customer.Validate(); err != nil {
		log.Warn("customer validation failed during update",
			slog.String("error", err.Error()),
			slog.String("customer_id", customer.ID.String()))
		return err
	}
	if err := checkActor(actor); err != nil {
		return err
	}

	now := s.now()
	query := `
		UPDATE customers
		SET name = $1, email = $2, mobile_number = $3, updated_at = $4, updated_by = $5
		WHERE id = $6
	`
	result, err := s.db.ExecContext(ctx, query,
		customer.Name,
		customer.Email,
		customer.MobileNumber,
		now,
		actor.String(),
		customer.ID,
	)
	if err != nil {
		log.Error("failed to update customer",
			slog.String("error", redact.Error(err)),
			slog.String("customer_id", customer.ID.String()))
		return store.NewStoreError("customer", "update", "update failed",
			mapConstraintError(err, customerUniques))
	}

	if err := CheckRowsAffected(result, store.ErrCustomerNotFound); err != nil {
		log.Debug("customer not found for update",
			slog.String("customer_id", customer.ID.String()))
		return err
	}

	customer.UpdatedAt = &now
	customer.UpdatedBy = actor.String()

	log.Debug("customer updated",
		slog.String("customer_id", customer.ID.String()),
		slog.String("actor", actor.String()))
	return nil
}

// Delete implements store.CustomerStore.Delete.
func (s *PostgresCustomerStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete customer",
			slog.String("error", redact.Error(err)),
			slog.String("customer_id", id.String()))
		return store.NewStoreError("customer", "delete", "delete failed", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrCustomerNotFound); err != nil {
		log.Debug("customer not found for delete", slog.String("customer_id", id.String()))
		return err
	}

	log.Debug("customer deleted", slog.String("customer_id", id.String()))
	return nil
}

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	var c domain.Customer
	var cols auditColumns
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.MobileNumber,
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
