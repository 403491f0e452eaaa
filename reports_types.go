package moneymind

import (
	"github.com/etnz/moneymind/date"
	"github.com/shopspring/decimal"
)

// Dashboard provides an at-a-glance overview of the user finances: the total
// balance today and the flows of the month.
type Dashboard struct {
	On             date.Date
	Month          date.Range
	Currency       string
	TotalBalance   decimal.Decimal
	Income         decimal.Decimal // Income of the month.
	Expenses       decimal.Decimal // Expenses of the month.
	OnlineExpenses decimal.Decimal
	CashExpenses   decimal.Decimal
	NetSavings     decimal.Decimal // Income - Expenses.
	SavingsRate    decimal.Decimal // NetSavings as a percentage of Income, 0 without income.
}

// BudgetLine is the spending of a category against its budget.
type BudgetLine struct {
	Category Category
	Spent    decimal.Decimal
	Progress decimal.Decimal // Spent as a percentage of the budget, 0 without budget.
}

// Over reports whether the category spent more than its budget.
func (b BudgetLine) Over() bool {
	return b.Category.Budget.IsPositive() && b.Spent.GreaterThan(b.Category.Budget)
}

// GoalLine is the progress of a savings goal.
type GoalLine struct {
	Goal     Goal
	Progress decimal.Decimal // Saved as a percentage of the target.
}

// CalendarDay holds the transactions of a single day.
type CalendarDay struct {
	Day          date.Date
	Transactions []Transaction
	Income       decimal.Decimal
	Expenses     decimal.Decimal
}

// Calendar is a month of days with their transactions.
type Calendar struct {
	Month    date.Range
	Currency string
	Days     []CalendarDay // one per day of the month, in order.
}
