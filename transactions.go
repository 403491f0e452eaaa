package moneymind

import (
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/moneymind/date"
	"github.com/shopspring/decimal"
)

// Transaction is a single income or expense recorded on an account.
type Transaction struct {
	ID          string          `json:"id"`
	Account     string          `json:"account"`            // Account is the id of the owning account.
	Category    string          `json:"category,omitempty"` // Category is the id of the category.
	Type        TxType          `json:"type"`
	Amount      decimal.Decimal `json:"amount"` // Amount is always positive, Type gives the direction.
	Date        date.Date       `json:"date"`
	Description string          `json:"description,omitempty"`
	Method      Method          `json:"method"`
}

// NewIncome creates an income transaction. The category is assigned by the
// ledger: income always goes to the Income category.
func NewIncome(day date.Date, account string, amount decimal.Decimal, description string, method Method) (Transaction, error) {
	tx := Transaction{
		Account:     account,
		Type:        Income,
		Amount:      amount,
		Date:        day,
		Description: strings.TrimSpace(description),
		Method:      method,
	}
	return tx, tx.Validate()
}

// NewExpense creates an expense transaction in a category.
func NewExpense(day date.Date, account, category string, amount decimal.Decimal, description string, method Method) (Transaction, error) {
	tx := Transaction{
		Account:     account,
		Category:    category,
		Type:        Expense,
		Amount:      amount,
		Date:        day,
		Description: strings.TrimSpace(description),
		Method:      method,
	}
	return tx, tx.Validate()
}

func (t Transaction) id() string { return t.ID }

// Effect returns the signed contribution of the transaction to its account
// balance: +Amount for an income, -Amount for an expense.
func (t Transaction) Effect() decimal.Decimal {
	if t.Type == Income {
		return t.Amount
	}
	return t.Amount.Neg()
}

// Validate checks the transaction fields that do not depend on the rest of the
// user data. Every failure is reported.
func (t Transaction) Validate() error {
	var errs error
	if t.Account == "" {
		errs = errors.Join(errs, fmt.Errorf("transaction account is missing: %w", ErrInvalidAccount))
	}
	if t.Type != Income && t.Type != Expense {
		errs = errors.Join(errs, fmt.Errorf("transaction type %q is unknown: %w", t.Type, ErrInvalid))
	}
	if t.Type == Expense && t.Category == "" {
		errs = errors.Join(errs, fmt.Errorf("expense category is missing: %w", ErrInvalidCategory))
	}
	if !t.Amount.IsPositive() {
		errs = errors.Join(errs, fmt.Errorf("transaction amount must be positive, got %s: %w", t.Amount, ErrInvalid))
	}
	if t.Date.IsZero() {
		errs = errors.Join(errs, fmt.Errorf("transaction date is missing: %w", ErrInvalid))
	}
	if t.Method != Online && t.Method != Cash {
		errs = errors.Join(errs, fmt.Errorf("payment method %q is unknown: %w", t.Method, ErrInvalid))
	}
	return errs
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("date", t.Date)
	w.Append("type", t.Type)
	w.Append("amount", t.Amount)
	w.Append("account", t.Account)
	w.Optional("category", t.Category)
	w.Optional("description", t.Description)
	w.Append("method", t.Method)
	return w.MarshalJSON()
}
