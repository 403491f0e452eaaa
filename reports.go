package moneymind

import (
	"slices"

	"github.com/etnz/moneymind/date"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// percent returns part/whole*100, or 0 when whole is not positive.
func percent(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}

// NewDashboard computes the dashboard for the month containing on.
func (d *UserData) NewDashboard(on date.Date) Dashboard {
	db := Dashboard{
		On:       on,
		Month:    date.Month(on),
		Currency: d.Currency(),
	}
	for a := range d.Accounts() {
		db.TotalBalance = db.TotalBalance.Add(a.Balance)
	}
	for tx := range d.Transactions() {
		if !db.Month.Contains(tx.Date) {
			continue
		}
		switch tx.Type {
		case Income:
			db.Income = db.Income.Add(tx.Amount)
		case Expense:
			db.Expenses = db.Expenses.Add(tx.Amount)
			if tx.Method == Cash {
				db.CashExpenses = db.CashExpenses.Add(tx.Amount)
			} else {
				db.OnlineExpenses = db.OnlineExpenses.Add(tx.Amount)
			}
		}
	}
	db.NetSavings = db.Income.Sub(db.Expenses)
	db.SavingsRate = percent(db.NetSavings, db.Income)
	return db
}

// Budgets returns the spending of every category but the Income one, in
// category order. Spent sums all the expenses of the category.
func (d *UserData) Budgets() []BudgetLine {
	spent := make(map[string]decimal.Decimal)
	for tx := range d.Transactions() {
		if tx.Type == Expense {
			spent[tx.Category] = spent[tx.Category].Add(tx.Amount)
		}
	}
	var lines []BudgetLine
	for c := range d.Categories() {
		if c.IsIncome() {
			continue
		}
		lines = append(lines, BudgetLine{
			Category: c,
			Spent:    spent[c.ID],
			Progress: percent(spent[c.ID], c.Budget),
		})
	}
	return lines
}

// GoalsProgress returns the progress of every goal.
func (d *UserData) GoalsProgress() []GoalLine {
	var lines []GoalLine
	for g := range d.Goals() {
		lines = append(lines, GoalLine{Goal: g, Progress: percent(g.Saved, g.Target)})
	}
	return lines
}

// Recent returns up to n transactions, the most recent first. On the same day,
// the last recorded comes first.
func (d *UserData) Recent(n int) []Transaction {
	txs := d.Between(date.Range{})
	slices.Reverse(txs)
	if n >= 0 && len(txs) > n {
		txs = txs[:n]
	}
	return txs
}

// Between returns the transactions within r in chronological order. The zero
// Range selects all transactions.
func (d *UserData) Between(r date.Range) []Transaction {
	var txs []Transaction
	for tx := range d.Transactions() {
		if r == (date.Range{}) || r.Contains(tx.Date) {
			txs = append(txs, tx)
		}
	}
	slices.SortStableFunc(txs, func(a, b Transaction) int { return a.Date.Compare(b.Date) })
	return txs
}

// NewCalendar groups the transactions of the month containing on by day.
func (d *UserData) NewCalendar(on date.Date) Calendar {
	cal := Calendar{Month: date.Month(on), Currency: d.Currency()}
	byDay := make(map[date.Date]int)
	for day := range cal.Month.Days() {
		byDay[day] = len(cal.Days)
		cal.Days = append(cal.Days, CalendarDay{Day: day})
	}
	for _, tx := range d.Between(cal.Month) {
		cd := &cal.Days[byDay[tx.Date]]
		cd.Transactions = append(cd.Transactions, tx)
		if tx.Type == Income {
			cd.Income = cd.Income.Add(tx.Amount)
		} else {
			cd.Expenses = cd.Expenses.Add(tx.Amount)
		}
	}
	return cal
}
