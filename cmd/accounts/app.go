package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/easybank/easybank-services/internal/audit"
	"github.com/easybank/easybank-services/internal/config"
	"github.com/easybank/easybank-services/internal/domain"
	"github.com/easybank/easybank-services/internal/events"
	"github.com/easybank/easybank-services/internal/platform/postgres"
	"github.com/easybank/easybank-services/internal/service"
	"github.com/easybank/easybank-services/internal/store"
)

// application holds the dependencies shared by the accounts routes.
type application struct {
	config   *config.Config
	logger   *slog.Logger
	db       *sql.DB
	resolver audit.Resolver
	accounts service.AccountService
}

// newApplication wires stores, services, and the event emitter for the
// accounts service on top of an open database.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	resolver, err := audit.NewResolver(cfg.Audit)
	if err != nil {
		return nil, fmt.Errorf("failed to set up actor resolver: %w", err)
	}

	numbers, err := domain.NewRandomNumberGenerator(domain.NumberRange{
		Min:  cfg.Numbers.AccountMin,
		Span: cfg.Numbers.AccountSpan,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up account number generator: %w", err)
	}

	emitter := events.NewInMemoryEventEmitter(logger)
	emitter.RegisterHandler(events.NewLogPublisher(logger))

	accounts, err := service.NewAccountService(
		postgres.NewPostgresCustomerStore(db, logger),
		postgres.NewPostgresAccountStore(db, logger),
		store.NewDBTransactor(db),
		numbers,
		emitter,
		cfg.Numbers.MaxAttempts,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create account service: %w", err)
	}

	return &application{
		config:   cfg,
		logger:   logger,
		db:       db,
		resolver: resolver,
		accounts: accounts,
	}, nil
}

func (app *application) router() http.Handler {
	return newRouter(app.config, app.logger, app.accounts, app.resolver, app.db)
}
