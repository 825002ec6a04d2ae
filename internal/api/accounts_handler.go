package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/easybank/easybank-services/internal/api/shared"
	"github.com/easybank/easybank-services/internal/audit"
	"github.com/easybank/easybank-services/internal/platform/logger"
	"github.com/easybank/easybank-services/internal/service"
	"github.com/easybank/easybank-services/internal/store"
)

// createAccountRequest is the body of POST /api/create. Account details are
// assigned by the service, so any accountsDto sent is ignored.
type createAccountRequest struct {
	Name         string `json:"name"         validate:"required,max=100"`
	Email        string `json:"email"        validate:"required,email"`
	MobileNumber string `json:"mobileNumber" validate:"required,len=10,numeric"`
}

// AccountsHandler serves the accounts microservice endpoints.
type AccountsHandler struct {
	accounts    service.AccountService
	systemActor audit.Actor
	logger      *slog.Logger
}

// NewAccountsHandler creates a new AccountsHandler. systemActor is used
// when no actor middleware ran for the request.
func NewAccountsHandler(
	accounts service.AccountService,
	systemActor audit.Actor,
	logger *slog.Logger,
) *AccountsHandler {
	if accounts == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("accounts service cannot be nil for AccountsHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AccountsHandler")
	}

	return &AccountsHandler{
		accounts:    accounts,
		systemActor: systemActor,
		logger:      logger.With(slog.String("component", "accounts_handler")),
	}
}

// CreateAccount handles POST /api/create.
func (h *AccountsHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req createAccountRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	_, err := h.accounts.CreateAccount(r.Context(), requestActor(r, h.systemActor), service.CustomerDetails{
		Name:         req.Name,
		Email:        req.Email,
		MobileNumber: req.MobileNumber,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, ResponseDto{
		StatusCode: StatusCreated,
		StatusMsg:  MessageAccountCreated,
	})
}

// FetchAccount handles GET /api/fetch?mobileNumber=.
func (h *AccountsHandler) FetchAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	mobileNumber, ok := mobileNumberParam(w, r, log)
	if !ok {
		return
	}

	result, err := h.accounts.FetchAccount(r.Context(), mobileNumber)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, customerDtoFrom(result))
}

// UpdateAccount handles PUT /api/update. A body without accountsDto is
// answered with 417 and changes nothing.
func (h *AccountsHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var dto CustomerDto
	if !decodeAndValidate(w, r, &dto, log) {
		return
	}

	err := h.accounts.UpdateAccount(r.Context(), requestActor(r, h.systemActor), dto.update())
	if errors.Is(err, store.ErrUpdateFailed) {
		log.Debug("account update not applied", slog.String("reason", err.Error()))
		shared.RespondWithJSON(w, r, http.StatusExpectationFailed, ResponseDto{
			StatusCode: StatusExpectationFailed,
			StatusMsg:  MessageUpdateFailed,
		})
		return
	}
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ResponseDto{StatusCode: StatusOK, StatusMsg: MessageOK})
}

// DeleteAccount handles DELETE /api/delete?mobileNumber=.
func (h *AccountsHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	mobileNumber, ok := mobileNumberParam(w, r, log)
	if !ok {
		return
	}

	if err := h.accounts.DeleteAccount(r.Context(), mobileNumber); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ResponseDto{StatusCode: StatusOK, StatusMsg: MessageOK})
}
