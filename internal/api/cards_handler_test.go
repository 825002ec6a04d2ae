package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easybank/easybank-services/internal/audit"
	"github.com/easybank/easybank-services/internal/domain"
	"github.com/easybank/easybank-services/internal/mocks"
	"github.com/easybank/easybank-services/internal/service"
	"github.com/easybank/easybank-services/internal/store"
)

func testCard() *domain.Card {
	return &domain.Card{
		CardNumber:      "100000000042",
		MobileNumber:    "1112223333",
		CardType:        domain.DefaultCardType,
		TotalLimit:      domain.NewCardLimit,
		AvailableAmount: domain.NewCardLimit,
	}
}

func TestNewCardsHandler_PanicsOnNilDependencies(t *testing.T) {
	assert.Panics(t, func() { NewCardsHandler(nil, "CARDS_MS", testLogger()) })
	assert.Panics(t, func() { NewCardsHandler(&mocks.MockCardService{}, "CARDS_MS", nil) })
}

func TestCardsHandler_CreateCard(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		var gotActor audit.Actor
		var gotMobile string
		svc := &mocks.MockCardService{
			CreateCardFn: func(_ context.Context, actor audit.Actor, mobile string) (*domain.Card, error) {
				gotActor, gotMobile = actor, mobile
				return testCard(), nil
			},
		}
		h := NewCardsHandler(svc, "CARDS_MS", testLogger())

		rec := doRequest(t, h.CreateCard, http.MethodPost, "/api/create?mobileNumber=1112223333", nil)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, ResponseDto{StatusCode: "201", StatusMsg: "Card created successfully"}, decodeEnvelope(t, rec))
		assert.Equal(t, audit.Actor("CARDS_MS"), gotActor)
		assert.Equal(t, "1112223333", gotMobile)
	})

	t.Run("already exists", func(t *testing.T) {
		svc := &mocks.MockCardService{
			Err: &service.ResourceExistsError{Resource: "Card", Field: "mobileNumber", Value: "1112223333", Err: store.ErrCardExists},
		}
		h := NewCardsHandler(svc, "CARDS_MS", testLogger())

		rec := doRequest(t, h.CreateCard, http.MethodPost, "/api/create?mobileNumber=1112223333", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Card already registered with given mobileNumber 1112223333", decodeError(t, rec).ErrorMessage)
	})

	t.Run("invalid mobile number", func(t *testing.T) {
		svc := &mocks.MockCardService{}
		h := NewCardsHandler(svc, "CARDS_MS", testLogger())

		rec := doRequest(t, h.CreateCard, http.MethodPost, "/api/create?mobileNumber=555", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "must be 10 characters long", decodeError(t, rec).FieldErrors["mobileNumber"])
		assert.Equal(t, 0, svc.CallCount("CreateCard"))
	})
}

func TestCardsHandler_FetchCard(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		h := NewCardsHandler(&mocks.MockCardService{Card: testCard()}, "CARDS_MS", testLogger())

		rec := doRequest(t, h.FetchCard, http.MethodGet, "/api/fetch?mobileNumber=1112223333", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var dto CardsDto
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&dto))
		assert.Equal(t, CardsDto{
			MobileNumber:    "1112223333",
			CardNumber:      "100000000042",
			CardType:        "Credit Card",
			TotalLimit:      100000,
			AvailableAmount: 100000,
		}, dto)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &mocks.MockCardService{
			Err: &service.ResourceNotFoundError{Resource: "Card", Field: "mobileNumber", Value: "1112223333", Err: store.ErrCardNotFound},
		}
		h := NewCardsHandler(svc, "CARDS_MS", testLogger())

		rec := doRequest(t, h.FetchCard, http.MethodGet, "/api/fetch?mobileNumber=1112223333", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "NOT_FOUND", decodeError(t, rec).ErrorCode)
	})
}

func TestCardsHandler_UpdateCard(t *testing.T) {
	body := CardsDto{
		MobileNumber:    "1112223333",
		CardNumber:      "100000000042",
		CardType:        "Credit Card",
		TotalLimit:      100000,
		AmountUsed:      2500,
		AvailableAmount: 97500,
	}

	t.Run("updated", func(t *testing.T) {
		var got service.CardDetails
		svc := &mocks.MockCardService{
			UpdateCardFn: func(_ context.Context, _ audit.Actor, d service.CardDetails) error {
				got = d
				return nil
			},
		}
		h := NewCardsHandler(svc, "CARDS_MS", testLogger())

		rec := doRequest(t, h.UpdateCard, http.MethodPut, "/api/update", body)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, body.details(), got)
	})

	t.Run("unknown card number", func(t *testing.T) {
		svc := &mocks.MockCardService{
			Err: &service.ResourceNotFoundError{Resource: "Card", Field: "CardNumber", Value: "100000000042", Err: store.ErrCardNotFound},
		}
		h := NewCardsHandler(svc, "CARDS_MS", testLogger())

		rec := doRequest(t, h.UpdateCard, http.MethodPut, "/api/update", body)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		svc := &mocks.MockCardService{}
		h := NewCardsHandler(svc, "CARDS_MS", testLogger())

		bad := body
		bad.AmountUsed = -1
		rec := doRequest(t, h.UpdateCard, http.MethodPut, "/api/update", bad)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "must be greater than or equal to 0", decodeError(t, rec).FieldErrors["amountUsed"])
		assert.Equal(t, 0, svc.CallCount("UpdateCard"))
	})

	t.Run("limit beyond column range rejected", func(t *testing.T) {
		svc := &mocks.MockCardService{}
		h := NewCardsHandler(svc, "CARDS_MS", testLogger())

		rec := doRequest(t, h.UpdateCard, http.MethodPut, "/api/update", map[string]interface{}{
			"mobileNumber":    "1112223333",
			"cardNumber":      "100000000042",
			"cardType":        "Credit Card",
			"totalLimit":      3000000000,
			"amountUsed":      0,
			"availableAmount": 3000000000,
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeError(t, rec)
		assert.Equal(t, "must be at most 2147483647", resp.FieldErrors["totalLimit"])
		assert.Equal(t, "must be at most 2147483647", resp.FieldErrors["availableAmount"])
		assert.Equal(t, 0, svc.CallCount("UpdateCard"))
	})
}

func TestCardsHandler_DeleteCard(t *testing.T) {
	svc := &mocks.MockCardService{}
	h := NewCardsHandler(svc, "CARDS_MS", testLogger())

	rec := doRequest(t, h.DeleteCard, http.MethodDelete, "/api/delete?mobileNumber=1112223333", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	svc.Err = store.ErrCardNotFound
	rec = doRequest(t, h.DeleteCard, http.MethodDelete, "/api/delete?mobileNumber=1112223333", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Card not found", decodeError(t, rec).ErrorMessage)
}
