// Package insights asks a Gemini model for advice on the user spending.
package insights

import (
	"fmt"
	"strings"

	"github.com/etnz/moneymind"
	"github.com/etnz/moneymind/date"
)

// Prompt summarizes the month of on and the budgets as a question for the
// model.
func Prompt(d *moneymind.UserData, on date.Date) string {
	db := d.NewDashboard(on)
	cur := d.Currency()
	amount := func(v moneymind.Money) string { return v.String() }

	var b strings.Builder
	fmt.Fprintf(&b, "Here is my personal finance summary for %s, amounts in %s.\n", db.Month.Identifier(), cur)
	fmt.Fprintf(&b, "- Total balance: %s\n", amount(moneymind.M(db.TotalBalance, cur)))
	fmt.Fprintf(&b, "- Income: %s\n", amount(moneymind.M(db.Income, cur)))
	fmt.Fprintf(&b, "- Expenses: %s (online %s, cash %s)\n", amount(moneymind.M(db.Expenses, cur)), amount(moneymind.M(db.OnlineExpenses, cur)), amount(moneymind.M(db.CashExpenses, cur)))
	fmt.Fprintf(&b, "- Savings rate: %s%%\n", db.SavingsRate.StringFixed(1))

	if lines := d.Budgets(); len(lines) > 0 {
		b.WriteString("\nBudgets:\n")
		for _, l := range lines {
			fmt.Fprintf(&b, "- %s: spent %s of %s\n", l.Category.Name, amount(moneymind.M(l.Spent, cur)), amount(moneymind.M(l.Category.Budget, cur)))
		}
	}
	if lines := d.GoalsProgress(); len(lines) > 0 {
		b.WriteString("\nSavings goals:\n")
		for _, l := range lines {
			fmt.Fprintf(&b, "- %s: saved %s of %s\n", l.Goal.Name, amount(moneymind.M(l.Goal.Saved, cur)), amount(moneymind.M(l.Goal.Target, cur)))
		}
	}
	b.WriteString("\nGive me three short, concrete suggestions to improve my finances.")
	return b.String()
}
