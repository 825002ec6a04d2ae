package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easybank/easybank-services/internal/api"
	"github.com/easybank/easybank-services/internal/audit"
	"github.com/easybank/easybank-services/internal/config"
	"github.com/easybank/easybank-services/internal/domain"
	"github.com/easybank/easybank-services/internal/mocks"
	"github.com/easybank/easybank-services/internal/service"
)

type okPinger struct{}

func (okPinger) PingContext(context.Context) error { return nil }

func newTestRouter(t *testing.T) (http.Handler, *mocks.InMemoryCardStore) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Service: config.ServiceCards,
		Server:  config.ServerConfig{RequestTimeoutSeconds: 5},
		Audit:   config.AuditConfig{SystemActor: "CARDS_MS"},
		Contact: config.ContactConfig{
			Message:        "Welcome to EazyBank cards related APIs",
			ContactDetails: map[string]string{"name": "Cards Product Owner", "email": "cards@eazybank.com"},
			OnCallSupport:  []string{"(453) 392-4829", "(236) 203-0384"},
		},
	}

	cards := mocks.NewInMemoryCardStore()
	numbers, err := domain.NewRandomNumberGenerator(domain.NumberRange{Min: 100_000_000_000, Span: 900_000_000})
	require.NoError(t, err)
	svc, err := service.NewCardService(cards, numbers, 10, log)
	require.NoError(t, err)

	resolver, err := audit.NewResolver(cfg.Audit)
	require.NoError(t, err)

	return newRouter(cfg, log, svc, resolver, okPinger{}), cards
}

func serve(t *testing.T, h http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, reader))
	return rec
}

func TestCardsRoutes_Lifecycle(t *testing.T) {
	h, cards := newTestRouter(t)

	rec := serve(t, h, http.MethodPost, "/api/create?mobileNumber=1112223333", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"statusCode":"201","statusMsg":"Card created successfully"}`, rec.Body.String())

	rec = serve(t, h, http.MethodPost, "/api/create?mobileNumber=1112223333", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 1, cards.Len())

	rec = serve(t, h, http.MethodGet, "/api/fetch?mobileNumber=1112223333", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var card api.CardsDto
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&card))
	assert.Len(t, card.CardNumber, 12)
	assert.Equal(t, "Credit Card", card.CardType)
	assert.Equal(t, 100000, card.TotalLimit)
	assert.Equal(t, 0, card.AmountUsed)
	assert.Equal(t, 100000, card.AvailableAmount)

	card.AmountUsed = 2500
	card.AvailableAmount = 97500
	rec = serve(t, h, http.MethodPut, "/api/update", card)
	assert.Equal(t, http.StatusOK, rec.Code)

	stored, err := cards.GetByCardNumber(context.Background(), card.CardNumber)
	require.NoError(t, err)
	assert.Equal(t, 2500, stored.AmountUsed)
	assert.Equal(t, "CARDS_MS", stored.UpdatedBy)

	rec = serve(t, h, http.MethodDelete, "/api/delete?mobileNumber=1112223333", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, h, http.MethodGet, "/api/fetch?mobileNumber=1112223333", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(t, h, http.MethodDelete, "/api/delete?mobileNumber=1112223333", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCardsRoutes_UpdateUnknownCard(t *testing.T) {
	h, cards := newTestRouter(t)

	rec := serve(t, h, http.MethodPut, "/api/update", api.CardsDto{
		MobileNumber:    "1112223333",
		CardNumber:      "100000000042",
		CardType:        "Credit Card",
		TotalLimit:      100000,
		AvailableAmount: 100000,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, 0, cards.Len())
}

func TestCardsRoutes_ContactInfo(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := serve(t, h, http.MethodGet, "/api/contact-info", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"message": "Welcome to EazyBank cards related APIs",
		"contactDetails": {"name": "Cards Product Owner", "email": "cards@eazybank.com"},
		"onCallSupport": ["(453) 392-4829", "(236) 203-0384"]
	}`, rec.Body.String())
}
