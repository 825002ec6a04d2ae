package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/easybank/easybank-services/internal/audit"
	"github.com/easybank/easybank-services/internal/domain"
	"github.com/easybank/easybank-services/internal/platform/logger"
	"github.com/easybank/easybank-services/internal/redact"
	"github.com/easybank/easybank-services/internal/store"
)

// CardDetails are the caller-supplied fields of a card. CardNumber
// identifies the card on update.
type CardDetails struct {
	CardNumber      string
	MobileNumber    string
	CardType        string
	TotalLimit      int
	AmountUsed      int
	AvailableAmount int
}

// CardService provides the operations of the cards microservice.
type CardService interface {
	// CreateCard issues a default credit card for mobileNumber.
	// Returns store.ErrCardExists if the number already holds a card.
	CreateCard(ctx context.Context, actor audit.Actor, mobileNumber string) (*domain.Card, error)

	// FetchCard returns the card issued to mobileNumber.
	// Returns store.ErrCardNotFound if there is none.
	FetchCard(ctx context.Context, mobileNumber string) (*domain.Card, error)

	// UpdateCard overwrites the card identified by details.CardNumber.
	// Returns store.ErrCardNotFound if the card number is unknown.
	UpdateCard(ctx context.Context, actor audit.Actor, details CardDetails) error

	// DeleteCard removes the card issued to mobileNumber.
	// Returns store.ErrCardNotFound if there is none.
	DeleteCard(ctx context.Context, mobileNumber string) error
}

type cardServiceImpl struct {
	cards       store.CardStore
	numbers     domain.NumberGenerator
	maxAttempts int
	logger      *slog.Logger
}

// NewCardService creates a CardService.
// It returns an error if any of the required dependencies are nil.
func NewCardService(
	cards store.CardStore,
	numbers domain.NumberGenerator,
	maxAttempts int,
	logger *slog.Logger,
) (CardService, error) {
	if cards == nil {
		return nil, domain.NewValidationError("cards", "cannot be nil", domain.ErrValidation)
	}
	if numbers == nil {
		return nil, domain.NewValidationError("numbers", "cannot be nil", domain.ErrValidation)
	}
	if maxAttempts <= 0 {
		return nil, domain.NewValidationError("maxAttempts", "must be positive", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &cardServiceImpl{
		cards:       cards,
		numbers:     numbers,
		maxAttempts: maxAttempts,
		logger:      logger.With(slog.String("component", "card_service")),
	}, nil
}

// CreateCard implements CardService.CreateCard.
func (s *cardServiceImpl) CreateCard(
	ctx context.Context,
	actor audit.Actor,
	mobileNumber string,
) (*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	mobileAttr := slog.String("mobile_number", redact.Mobile(mobileNumber))

	_, err := s.cards.GetByMobileNumber(ctx, mobileNumber)
	switch {
	case err == nil:
		log.Debug("card already issued", mobileAttr)
		return nil, newCardsError("create_card", "card already issued",
			&ResourceExistsError{
				Resource: "Card",
				Field:    "mobileNumber",
				Value:    mobileNumber,
				Err:      store.ErrCardExists,
			})
	case !errors.Is(err, store.ErrCardNotFound):
		return nil, newCardsError("create_card", "failed to look up card", err)
	}

	exists := func(ctx context.Context, n int64) (bool, error) {
		return s.cards.ExistsByCardNumber(ctx, formatNumber(n))
	}
	number, err := uniqueNumber(ctx, s.numbers, s.maxAttempts, exists, log)
	if err != nil {
		return nil, newCardsError("create_card", "failed to generate card number", err)
	}

	card, err := domain.NewCard(mobileNumber, number)
	if err != nil {
		return nil, err
	}

	if err := s.cards.Create(ctx, card, actor); err != nil {
		return nil, newCardsError("create_card", "failed to save card", err)
	}

	log.Info("card created",
		slog.String("card_id", card.ID.String()),
		slog.String("card_number", redact.Digits(card.CardNumber)),
		slog.String("actor", actor.String()))
	return card, nil
}

// FetchCard implements CardService.FetchCard.
func (s *cardServiceImpl) FetchCard(ctx context.Context, mobileNumber string) (*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	card, err := s.cards.GetByMobileNumber(ctx, mobileNumber)
	if err != nil {
		log.Debug("card lookup failed",
			slog.String("error", err.Error()),
			slog.String("mobile_number", redact.Mobile(mobileNumber)))
		return nil, newCardsError("fetch_card", "failed to get card",
			notFound("Card", "mobileNumber", mobileNumber, err))
	}
	return card, nil
}

// UpdateCard implements CardService.UpdateCard.
func (s *cardServiceImpl) UpdateCard(ctx context.Context, actor audit.Actor, details CardDetails) error {
	log := logger.FromContextOrDefault(ctx, s.logger)
	cardAttr := slog.String("card_number", redact.Digits(details.CardNumber))

	card, err := s.cards.GetByCardNumber(ctx, details.CardNumber)
	if err != nil {
		log.Debug("card lookup failed", slog.String("error", err.Error()), cardAttr)
		return newCardsError("update_card", "failed to get card",
			notFound("Card", "cardNumber", details.CardNumber, err))
	}

	card.MobileNumber = details.MobileNumber
	card.CardType = details.CardType
	card.TotalLimit = details.TotalLimit
	card.AmountUsed = details.AmountUsed
	card.AvailableAmount = details.AvailableAmount

	if err := card.Validate(); err != nil {
		return err
	}

	if err := s.cards.Update(ctx, card, actor); err != nil {
		return newCardsError("update_card", "failed to save card", err)
	}

	log.Info("card updated", cardAttr, slog.String("actor", actor.String()))
	return nil
}

// DeleteCard implements CardService.DeleteCard.
func (s *cardServiceImpl) DeleteCard(ctx context.Context, mobileNumber string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)
	mobileAttr := slog.String("mobile_number", redact.Mobile(mobileNumber))

	if err := s.cards.DeleteByMobileNumber(ctx, mobileNumber); err != nil {
		log.Debug("card delete failed", slog.String("error", err.Error()), mobileAttr)
		return newCardsError("delete_card", "failed to delete card",
			notFound("Card", "mobileNumber", mobileNumber, err))
	}

	log.Info("card deleted", mobileAttr)
	return nil
}
