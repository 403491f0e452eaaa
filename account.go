package moneymind

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Account is a place where money is kept, like a wallet or a bank account.
//
// Balance is stored but derived: it always equals Opening plus the effect of
// every transaction attributed to the account. Only ledger operations change it.
type Account struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Type    string          `json:"type"`
	Opening decimal.Decimal `json:"opening"`
	Balance decimal.Decimal `json:"balance"`
}

// NewAccount creates an account whose balance is the opening balance.
// The ID is assigned when the account is added to a UserData.
func NewAccount(name, kind string, opening decimal.Decimal) (Account, error) {
	a := Account{
		Name:    strings.TrimSpace(name),
		Type:    strings.TrimSpace(kind),
		Opening: opening,
		Balance: opening,
	}
	return a, a.Validate()
}

func (a Account) id() string { return a.ID }

// Validate checks the account required fields.
func (a Account) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("account name is missing: %w", ErrInvalid)
	}
	if a.Type == "" {
		return fmt.Errorf("account type is missing: %w", ErrInvalid)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Account.
func (a Account) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", a.ID)
	w.Append("name", a.Name)
	w.Append("type", a.Type)
	w.Append("opening", a.Opening)
	w.Append("balance", a.Balance)
	return w.MarshalJSON()
}
