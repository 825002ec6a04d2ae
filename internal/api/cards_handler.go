package api

import (
	"log/slog"
	"net/http"

	"github.com/easybank/easybank-services/internal/api/shared"
	"github.com/easybank/easybank-services/internal/audit"
	"github.com/easybank/easybank-services/internal/platform/logger"
	"github.com/easybank/easybank-services/internal/service"
)

// CardsHandler serves the cards microservice endpoints.
type CardsHandler struct {
	cards       service.CardService
	systemActor audit.Actor
	logger      *slog.Logger
}

// NewCardsHandler creates a new CardsHandler.
func NewCardsHandler(cards service.CardService, systemActor audit.Actor, logger *slog.Logger) *CardsHandler {
	if cards == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("cards service cannot be nil for CardsHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CardsHandler")
	}

	return &CardsHandler{
		cards:       cards,
		systemActor: systemActor,
		logger:      logger.With(slog.String("component", "cards_handler")),
	}
}

// CreateCard handles POST /api/create?mobileNumber=.
func (h *CardsHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	mobileNumber, ok := mobileNumberParam(w, r, log)
	if !ok {
		return
	}

	if _, err := h.cards.CreateCard(r.Context(), requestActor(r, h.systemActor), mobileNumber); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, ResponseDto{
		StatusCode: StatusCreated,
		StatusMsg:  MessageCardCreated,
	})
}

// FetchCard handles GET /api/fetch?mobileNumber=.
func (h *CardsHandler) FetchCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	mobileNumber, ok := mobileNumberParam(w, r, log)
	if !ok {
		return
	}

	card, err := h.cards.FetchCard(r.Context(), mobileNumber)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cardsDtoFrom(card))
}

// UpdateCard handles PUT /api/update.
func (h *CardsHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var dto CardsDto
	if !decodeAndValidate(w, r, &dto, log) {
		return
	}

	if err := h.cards.UpdateCard(r.Context(), requestActor(r, h.systemActor), dto.details()); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ResponseDto{StatusCode: StatusOK, StatusMsg: MessageOK})
}

// DeleteCard handles DELETE /api/delete?mobileNumber=.
func (h *CardsHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	mobileNumber, ok := mobileNumberParam(w, r, log)
	if !ok {
		return
	}

	if err := h.cards.DeleteCard(r.Context(), mobileNumber); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ResponseDto{StatusCode: StatusOK, StatusMsg: MessageOK})
}
