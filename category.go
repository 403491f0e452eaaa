package moneymind

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// IncomeCategoryName is the name of the category every income is attributed to.
const IncomeCategoryName = "Income"

// DefaultIcon is used for categories created without an icon.
const DefaultIcon = "fas fa-tag"

// Category groups expenses and carries a monthly spending budget.
type Category struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Budget decimal.Decimal `json:"budget"`
	Color  string          `json:"color,omitempty"`
	Icon   string          `json:"icon,omitempty"`
}

// NewCategory creates a category with a budget.
func NewCategory(name string, budget decimal.Decimal, color, icon string) (Category, error) {
	c := Category{
		Name:   strings.TrimSpace(name),
		Budget: budget,
		Color:  color,
		Icon:   icon,
	}
	if c.Icon == "" {
		c.Icon = DefaultIcon
	}
	return c, c.Validate()
}

func (c Category) id() string { return c.ID }

// IsIncome reports whether c is the privileged income category.
func (c Category) IsIncome() bool { return strings.EqualFold(c.Name, IncomeCategoryName) }

// Validate checks the category required fields.
func (c Category) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("category name is missing: %w", ErrInvalid)
	}
	if c.Budget.IsNegative() {
		return fmt.Errorf("category budget must not be negative, got %s: %w", c.Budget, ErrInvalid)
	}
	return nil
}

// Goal is a savings target. It is not linked to transactions: the saved
// amount is maintained by the user.
type Goal struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Target decimal.Decimal `json:"target"`
	Saved  decimal.Decimal `json:"saved"`
	Color  string          `json:"color,omitempty"`
}

// NewGoal creates a savings goal.
func NewGoal(name string, target, saved decimal.Decimal, color string) (Goal, error) {
	g := Goal{
		Name:   strings.TrimSpace(name),
		Target: target,
		Saved:  saved,
		Color:  color,
	}
	return g, g.Validate()
}

func (g Goal) id() string { return g.ID }

// Validate checks the goal required fields.
func (g Goal) Validate() error {
	if g.Name == "" {
		return fmt.Errorf("goal name is missing: %w", ErrInvalid)
	}
	if !g.Target.IsPositive() {
		return fmt.Errorf("goal target must be positive, got %s: %w", g.Target, ErrInvalid)
	}
	if g.Saved.IsNegative() {
		return fmt.Errorf("goal saved amount must not be negative, got %s: %w", g.Saved, ErrInvalid)
	}
	return nil
}

// Settings holds the user preferences.
type Settings struct {
	Currency       string `json:"currency"`
	DefaultAccount string `json:"defaultAccount,omitempty"` // empty for none
}
