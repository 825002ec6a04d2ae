package domain

import (
	"errors"
	"strconv"

	"github.com/google/uuid"
)

// Defaults applied to newly issued cards.
const (
	DefaultCardType = "Credit Card"
	NewCardLimit    = 100_000
)

// ErrCardIDEmpty is returned when a card ID is empty or nil.
var ErrCardIDEmpty = errors.New("card ID cannot be empty")

// Card is a credit card issued to the customer owning MobileNumber.
// The mobile number is a value reference; no foreign key ties it to the
// accounts service's customers.
type Card struct {
	ID              uuid.UUID `json:"cardId"`
	CardNumber      string    `json:"cardNumber"      validate:"required,len=12,numeric"`
	MobileNumber    string    `json:"mobileNumber"    validate:"required,len=10,numeric"`
	CardType        string    `json:"cardType"        validate:"required,max=100"`
	TotalLimit      int       `json:"totalLimit"      validate:"gt=0,max=2147483647"`
	AmountUsed      int       `json:"amountUsed"      validate:"gte=0,max=2147483647"`
	AvailableAmount int       `json:"availableAmount" validate:"gte=0,max=2147483647"`
	Audit
}

// NewCard issues a default credit card with the full limit available.
func NewCard(mobileNumber string, cardNumber int64) (*Card, error) {
	c := &Card{
		ID:              uuid.New(),
		CardNumber:      strconv.FormatInt(cardNumber, 10),
		MobileNumber:    mobileNumber,
		CardType:        DefaultCardType,
		TotalLimit:      NewCardLimit,
		AmountUsed:      0,
		AvailableAmount: NewCardLimit,
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks if the Card has valid data.
func (c *Card) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCardIDEmpty
	}
	return validateStruct(c)
}
