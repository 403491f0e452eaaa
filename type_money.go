package moneymind

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency of a new user.
const DefaultCurrency = "INR"

// Money is an amount in a currency, used to display amounts. Computations on
// the ledger are made on decimal.Decimal directly as a user has a single
// currency.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates a Money from a decimal value and a currency code.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: strings.ToUpper(currency)}
}

// D parses a decimal amount, like "12.50".
func D(s string) (decimal.Decimal, error) { return decimal.NewFromString(strings.TrimSpace(s)) }

// MustD is like D but panics on error.
func MustD(s string) decimal.Decimal {
	d, err := D(s)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// KnownCurrency reports whether code is an ISO currency known by the formatter.
func KnownCurrency(code string) bool {
	return money.GetCurrency(strings.ToUpper(code)) != nil
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

func (m Money) Currency() string       { return m.cur }
func (m Money) Value() decimal.Decimal { return m.value }
func (m Money) IsZero() bool           { return m.value.IsZero() }
func (m Money) IsNegative() bool       { return m.value.IsNegative() }
func (m Money) Neg() Money             { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Abs() Money             { return Money{value: m.value.Abs(), cur: m.cur} }
func (m Money) Equal(n Money) bool     { return m.value.Equal(n.value) && m.cur == n.cur }

// Add returns m increased by n.
func (m Money) Add(n decimal.Decimal) Money { return Money{value: m.value.Add(n), cur: m.cur} }

// String returns the amount formatted the currency's way, like "₹1,234.50".
func (m Money) String() string {
	cur := m.currency()
	minor := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

// SignedString returns the string representation of the money value with a
// leading "+" for positive amounts. 0 is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}
