package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/easybank/easybank-services/internal/audit"
	"github.com/easybank/easybank-services/internal/domain"
	"github.com/easybank/easybank-services/internal/events"
	"github.com/easybank/easybank-services/internal/platform/logger"
	"github.com/easybank/easybank-services/internal/redact"
	"github.com/easybank/easybank-services/internal/store"
)

// CustomerDetails are the caller-supplied fields of a customer.
type CustomerDetails struct {
	Name         string
	Email        string
	MobileNumber string
}

// AccountDetails are the caller-supplied fields of an account.
type AccountDetails struct {
	AccountNumber int64
	AccountType   string
	BranchAddress string
}

// AccountUpdate replaces the mutable fields of an account and its owner.
// Account identifies the record to change; a nil Account updates nothing.
type AccountUpdate struct {
	Customer CustomerDetails
	Account  *AccountDetails
}

// CustomerAccount is a customer together with the account it owns.
type CustomerAccount struct {
	Customer *domain.Customer
	Account  *domain.Account
}

// AccountService provides the operations of the accounts microservice.
type AccountService interface {
	// CreateAccount registers a customer and opens a savings account for it.
	// Returns store.ErrMobileNumberExists if the mobile number is taken.
	CreateAccount(ctx context.Context, actor audit.Actor, details CustomerDetails) (*CustomerAccount, error)

	// FetchAccount returns the customer owning mobileNumber and its account.
	// Returns an error matching store.ErrNotFound if either is missing.
	FetchAccount(ctx context.Context, mobileNumber string) (*CustomerAccount, error)

	// UpdateAccount overwrites the account identified by
	// update.Account.AccountNumber and the customer that owns it.
	// Returns ErrAccountDetailsRequired when update.Account is nil and
	// store.ErrAccountNotFound when the account number is unknown.
	UpdateAccount(ctx context.Context, actor audit.Actor, update AccountUpdate) error

	// DeleteAccount removes the customer owning mobileNumber and its account.
	// Returns store.ErrCustomerNotFound if there is no such customer.
	DeleteAccount(ctx context.Context, mobileNumber string) error
}

type accountServiceImpl struct {
	customers   store.CustomerStore
	accounts    store.AccountStore
	tx          store.Transactor
	numbers     domain.NumberGenerator
	emitter     events.EventEmitter
	maxAttempts int
	logger      *slog.Logger
}

// NewAccountService creates an AccountService.
// It returns an error if any of the required dependencies are nil.
func NewAccountService(
	customers store.CustomerStore,
	accounts store.AccountStore,
	tx store.Transactor,
	numbers domain.NumberGenerator,
	emitter events.EventEmitter,
	maxAttempts int,
	logger *slog.Logger,
) (AccountService, error) {
	if customers == nil {
		return nil, domain.NewValidationError("customers", "cannot be nil", domain.ErrValidation)
	}
	if accounts == nil {
		return nil, domain.NewValidationError("accounts", "cannot be nil", domain.ErrValidation)
	}
	if tx == nil {
		return nil, domain.NewValidationError("tx", "cannot be nil", domain.ErrValidation)
	}
	if numbers == nil {
		return nil, domain.NewValidationError("numbers", "cannot be nil", domain.ErrValidation)
	}
	if emitter == nil {
		return nil, domain.NewValidationError("emitter", "cannot be nil", domain.ErrValidation)
	}
	if maxAttempts <= 0 {
		return nil, domain.NewValidationError("maxAttempts", "must be positive", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &accountServiceImpl{
		customers:   customers,
		accounts:    accounts,
		tx:          tx,
		numbers:     numbers,
		emitter:     emitter,
		maxAttempts: maxAttempts,
		logger:      logger.With(slog.String("component", "account_service")),
	}, nil
}

// CreateAccount implements AccountService.CreateAccount.
func (s *accountServiceImpl) CreateAccount(
	ctx context.Context,
	actor audit.Actor,
	details CustomerDetails,
) (*CustomerAccount, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	mobileAttr := slog.String("mobile_number", redact.Mobile(details.MobileNumber))

	customer, err := domain.NewCustomer(details.Name, details.Email, details.MobileNumber)
	if err != nil {
		log.Debug("invalid customer details", slog.String("error", err.Error()), mobileAttr)
		return nil, err
	}

	_, err = s.customers.GetByMobileNumber(ctx, details.MobileNumber)
	switch {
	case err == nil:
		log.Debug("customer already registered", mobileAttr)
		return nil, newAccountsError("create_account", "customer already registered",
			&ResourceExistsError{
				Resource: "Customer",
				Field:    "mobileNumber",
				Value:    details.MobileNumber,
				Err:      store.ErrMobileNumberExists,
			})
	case !errors.Is(err, store.ErrCustomerNotFound):
		return nil, newAccountsError("create_account", "failed to look up customer", err)
	}

	var account *domain.Account
	err = s.tx.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txCustomers := s.customers.WithTx(tx)
		txAccounts := s.accounts.WithTx(tx)

		if err := txCustomers.Create(ctx, customer, actor); err != nil {
			return err
		}

		number, err := uniqueNumber(ctx, s.numbers, s.maxAttempts, txAccounts.ExistsByAccountNumber, log)
		if err != nil {
			return err
		}

		account, err = domain.NewAccount(customer.ID, number)
		if err != nil {
			return err
		}

		return txAccounts.Create(ctx, account, actor)
	})
	if err != nil {
		log.Debug("account creation rolled back", slog.String("error", redact.Error(err)), mobileAttr)
		return nil, newAccountsError("create_account", "failed to create customer account", err)
	}

	log.Info("account created",
		slog.String("customer_id", customer.ID.String()),
		slog.String("account_number", redact.Digits(formatNumber(account.AccountNumber))),
		slog.String("actor", actor.String()))

	s.notify(ctx, log, customer, account)

	return &CustomerAccount{Customer: customer, Account: account}, nil
}

// notify publishes the account-created message. The account is already
// committed, so a delivery failure is logged and not returned.
func (s *accountServiceImpl) notify(
	ctx context.Context,
	log *slog.Logger,
	customer *domain.Customer,
	account *domain.Account,
) {
	event, err := events.NewAccountCreatedEvent(events.AccountsMsg{
		AccountNumber: account.AccountNumber,
		Name:          customer.Name,
		Email:         customer.Email,
		MobileNumber:  customer.MobileNumber,
	})
	if err != nil {
		log.Error("failed to build account notification", slog.String("error", err.Error()))
		return
	}

	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		log.Error("failed to publish account notification",
			slog.String("error", redact.Error(err)),
			slog.String("event_id", event.ID.String()))
	}
}

// FetchAccount implements AccountService.FetchAccount.
func (s *accountServiceImpl) FetchAccount(ctx context.Context, mobileNumber string) (*CustomerAccount, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	customer, err := s.customers.GetByMobileNumber(ctx, mobileNumber)
	if err != nil {
		log.Debug("customer lookup failed",
			slog.String("error", err.Error()),
			slog.String("mobile_number", redact.Mobile(mobileNumber)))
		return nil, newAccountsError("fetch_account", "failed to get customer",
			notFound("Customer", "mobileNumber", mobileNumber, err))
	}

	account, err := s.accounts.GetByCustomerID(ctx, customer.ID)
	if err != nil {
		log.Debug("account lookup failed",
			slog.String("error", err.Error()),
			slog.String("customer_id", customer.ID.String()))
		return nil, newAccountsError("fetch_account", "failed to get account",
			notFound("Account", "customerId", customer.ID.String(), err))
	}

	return &CustomerAccount{Customer: customer, Account: account}, nil
}

// UpdateAccount implements AccountService.UpdateAccount.
func (s *accountServiceImpl) UpdateAccount(ctx context.Context, actor audit.Actor, update AccountUpdate) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if update.Account == nil {
		log.Debug("update request without account details")
		return ErrAccountDetailsRequired
	}
	numberAttr := slog.String("account_number",
		redact.Digits(formatNumber(update.Account.AccountNumber)))

	account, err := s.accounts.GetByAccountNumber(ctx, update.Account.AccountNumber)
	if err != nil {
		log.Debug("account lookup failed", slog.String("error", err.Error()), numberAttr)
		return newAccountsError("update_account", "failed to get account",
			notFound("Account", "accountNumber", formatNumber(update.Account.AccountNumber), err))
	}

	customer, err := s.customers.GetByID(ctx, account.CustomerID)
	if err != nil {
		log.Warn("account has no owning customer",
			slog.String("error", err.Error()),
			slog.String("customer_id", account.CustomerID.String()))
		return newAccountsError("update_account", "failed to get customer",
			notFound("Customer", "customerId", account.CustomerID.String(), err))
	}

	account.AccountType = update.Account.AccountType
	account.BranchAddress = update.Account.BranchAddress
	customer.Name = update.Customer.Name
	customer.Email = update.Customer.Email
	customer.MobileNumber = update.Customer.MobileNumber

	if err := account.Validate(); err != nil {
		return err
	}
	if err := customer.Validate(); err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.accounts.WithTx(tx).Update(ctx, account, actor); err != nil {
			return err
		}
		return s.customers.WithTx(tx).Update(ctx, customer, actor)
	})
	if err != nil {
		return newAccountsError("update_account", "failed to update customer account", err)
	}

	log.Info("account updated", numberAttr, slog.String("actor", actor.String()))
	return nil
}

// DeleteAccount implements AccountService.DeleteAccount.
func (s *accountServiceImpl) DeleteAccount(ctx context.Context, mobileNumber string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)
	mobileAttr := slog.String("mobile_number", redact.Mobile(mobileNumber))

	customer, err := s.customers.GetByMobileNumber(ctx, mobileNumber)
	if err != nil {
		log.Debug("customer lookup failed", slog.String("error", err.Error()), mobileAttr)
		return newAccountsError("delete_account", "failed to get customer",
			notFound("Customer", "mobileNumber", mobileNumber, err))
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		err := s.accounts.WithTx(tx).DeleteByCustomerID(ctx, customer.ID)
		if err != nil && !errors.Is(err, store.ErrAccountNotFound) {
			return err
		}
		return s.customers.WithTx(tx).Delete(ctx, customer.ID)
	})
	if err != nil {
		return newAccountsError("delete_account", "failed to delete customer account", err)
	}

	log.Info("account deleted", slog.String("customer_id", customer.ID.String()), mobileAttr)
	return nil
}
