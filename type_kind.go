package moneymind

import (
	"fmt"
	"strings"
)

// TxType tells whether a transaction brings money in or takes it out of an account.
type TxType string

const (
	Income  TxType = "income"
	Expense TxType = "expense"
)

// ParseTxType parses "income" or "expense".
func ParseTxType(s string) (TxType, error) {
	switch TxType(strings.ToLower(strings.TrimSpace(s))) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q, want %q or %q: %w", s, Income, Expense, ErrInvalid)
	}
}

// Method is how a transaction was paid.
type Method string

const (
	Online Method = "online"
	Cash   Method = "cash"
)

// ParseMethod parses "online" or "cash". An empty string is Online.
func ParseMethod(s string) (Method, error) {
	switch Method(strings.ToLower(strings.TrimSpace(s))) {
	case "", Online:
		return Online, nil
	case Cash:
		return Cash, nil
	default:
		return "", fmt.Errorf("unknown payment method %q, want %q or %q: %w", s, Online, Cash, ErrInvalid)
	}
}
