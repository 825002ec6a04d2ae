package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewCustomer(t *testing.T) {
	t.Parallel()

	c, err := NewCustomer("Jane Doe", "jane@x.com", "1112223333")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if c.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}
	if c.Name != "Jane Doe" || c.Email != "jane@x.com" || c.MobileNumber != "1112223333" {
		t.Errorf("Unexpected customer fields: %+v", c)
	}
	if !c.CreatedAt.IsZero() || c.CreatedBy != "" {
		t.Error("Expected audit fields to be left for the store to stamp")
	}
}

func TestNewCustomerAcceptsShortAndMaximalNames(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"Jane", "J", strings.Repeat("a", 100)} {
		if _, err := NewCustomer(name, "jane@x.com", "1112223333"); err != nil {
			t.Errorf("Expected name of length %d to be accepted, got %v", len(name), err)
		}
	}
}

func TestNewCustomerValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		cname  string
		email  string
		mobile string
		field  string
	}{
		{"missing name", "", "jane@x.com", "1112223333", "name"},
		{"name too long", strings.Repeat("a", 101), "jane@x.com", "1112223333", "name"},
		{"missing email", "Jane Doe", "", "1112223333", "email"},
		{"bad email", "Jane Doe", "jane-at-x", "1112223333", "email"},
		{"mobile too long", "Jane Doe", "jane@x.com", "11122233334", "mobileNumber"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCustomer(tt.cname, tt.email, tt.mobile)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Expected *ValidationError, got %v", err)
			}
			if ve.Field != tt.field {
				t.Errorf("Expected field %q, got %q (%v)", tt.field, ve.Field, err)
			}
			if !errors.Is(err, ErrValidation) {
				t.Error("Expected error to match ErrValidation")
			}
		})
	}
}

func TestNewAccount(t *testing.T) {
	t.Parallel()

	customerID := uuid.New()
	a, err := NewAccount(customerID, 1_234_567_890)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if a.AccountType != DefaultAccountType {
		t.Errorf("Expected account type %q, got %q", DefaultAccountType, a.AccountType)
	}
	if a.BranchAddress != DefaultBranchAddress {
		t.Errorf("Expected branch %q, got %q", DefaultBranchAddress, a.BranchAddress)
	}

	if _, err := NewAccount(uuid.Nil, 1_234_567_890); err != ErrAccountCustomerIDEmpty {
		t.Errorf("Expected %v, got %v", ErrAccountCustomerIDEmpty, err)
	}
	if _, err := NewAccount(customerID, 123); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected validation error for short account number, got %v", err)
	}
}
