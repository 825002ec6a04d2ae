package api

import (
	"github.com/easybank/easybank-services/internal/domain"
	"github.com/easybank/easybank-services/internal/service"
)

// Status codes and messages carried in ResponseDto.
const (
	StatusCreated         = "201"
	MessageAccountCreated = "Account created successfully"
	MessageCardCreated    = "Card created successfully"

	StatusOK  = "200"
	MessageOK = "Request processed successfully"

	StatusExpectationFailed = "417"
	MessageUpdateFailed     = "Update operation failed. Please try again or contact Dev team"
	MessageDeleteFailed     = "Delete operation failed. Please try again or contact Dev team"

	StatusInternalError  = "500"
	MessageInternalError = "An error occurred. Please try again or contact Dev team"
)

// ResponseDto is the envelope returned by every write and delete.
type ResponseDto struct {
	StatusCode string `json:"statusCode"`
	StatusMsg  string `json:"statusMsg"`
}

// CustomerDto is the customer as seen by API clients. AccountsDto is
// filled on fetch and required on update.
type CustomerDto struct {
	Name         string       `json:"name"         validate:"required,max=100"`
	Email        string       `json:"email"        validate:"required,email"`
	MobileNumber string       `json:"mobileNumber" validate:"required,len=10,numeric"`
	AccountsDto  *AccountsDto `json:"accountsDto,omitempty"`
}

// AccountsDto is the account nested in CustomerDto.
type AccountsDto struct {
	AccountNumber int64  `json:"accountNumber" validate:"required,min=1000000000,max=9999999999"`
	AccountType   string `json:"accountType"   validate:"required,max=100"`
	BranchAddress string `json:"branchAddress" validate:"required,max=200"`
}

// CardsDto is a card as seen by API clients.
type CardsDto struct {
	MobileNumber    string `json:"mobileNumber"    validate:"required,len=10,numeric"`
	CardNumber      string `json:"cardNumber"      validate:"required,len=12,numeric"`
	CardType        string `json:"cardType"        validate:"required,max=100"`
	TotalLimit      int    `json:"totalLimit"      validate:"gt=0,max=2147483647"`
	AmountUsed      int    `json:"amountUsed"      validate:"gte=0,max=2147483647"`
	AvailableAmount int    `json:"availableAmount" validate:"gte=0,max=2147483647"`
}

func customerDtoFrom(ca *service.CustomerAccount) CustomerDto {
	dto := CustomerDto{
		Name:         ca.Customer.Name,
		Email:        ca.Customer.Email,
		MobileNumber: ca.Customer.MobileNumber,
	}
	if ca.Account != nil {
		dto.AccountsDto = &AccountsDto{
			AccountNumber: ca.Account.AccountNumber,
			AccountType:   ca.Account.AccountType,
			BranchAddress: ca.Account.BranchAddress,
		}
	}
	return dto
}

func (d CustomerDto) details() service.CustomerDetails {
	return service.CustomerDetails{Name: d.Name, Email: d.Email, MobileNumber: d.MobileNumber}
}

func (d CustomerDto) update() service.AccountUpdate {
	u := service.AccountUpdate{Customer: d.details()}
	if d.AccountsDto != nil {
		u.Account = &service.AccountDetails{
			AccountNumber: d.AccountsDto.AccountNumber,
			AccountType:   d.AccountsDto.AccountType,
			BranchAddress: d.AccountsDto.BranchAddress,
		}
	}
	return u
}

func cardsDtoFrom(c *domain.Card) CardsDto {
	return CardsDto{
		MobileNumber:    c.MobileNumber,
		CardNumber:      c.CardNumber,
		CardType:        c.CardType,
		TotalLimit:      c.TotalLimit,
		AmountUsed:      c.AmountUsed,
		AvailableAmount: c.AvailableAmount,
	}
}

func (d CardsDto) details() service.CardDetails {
	return service.CardDetails{
		CardNumber:      d.CardNumber,
		MobileNumber:    d.MobileNumber,
		CardType:        d.CardType,
		TotalLimit:      d.TotalLimit,
		AmountUsed:      d.AmountUsed,
		AvailableAmount: d.AvailableAmount,
	}
}
