package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/easybank/easybank-services/internal/audit"
	"github.com/easybank/easybank-services/internal/config"
	"github.com/easybank/easybank-services/internal/domain"
	"github.com/easybank/easybank-services/internal/platform/postgres"
	"github.com/easybank/easybank-services/internal/service"
)

// application holds the dependencies shared by the cards routes.
type application struct {
	config   *config.Config
	logger   *slog.Logger
	db       *sql.DB
	resolver audit.Resolver
	cards    service.CardService
}

func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	resolver, err := audit.NewResolver(cfg.Audit)
	if err != nil {
		return nil, fmt.Errorf("failed to set up actor resolver: %w", err)
	}

	numbers, err := domain.NewRandomNumberGenerator(domain.NumberRange{
		Min:  cfg.Numbers.CardMin,
		Span: cfg.Numbers.CardSpan,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up card number generator: %w", err)
	}

	cards, err := service.NewCardService(
		postgres.NewPostgresCardStore(db, logger),
		numbers,
		cfg.Numbers.MaxAttempts,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create card service: %w", err)
	}

	return &application{
		config:   cfg,
		logger:   logger,
		db:       db,
		resolver: resolver,
		cards:    cards,
	}, nil
}

func (app *application) router() http.Handler {
	return newRouter(app.config, app.logger, app.cards, app.resolver, app.db)
}
