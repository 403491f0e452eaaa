package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/moneymind"
	md "github.com/nao1215/markdown"
)

// Accounts renders the accounts with their balances. The default account is
// marked with a star.
func Accounts(d *moneymind.UserData) string {
	cur := formatter(d.Currency())
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Accounts")

	var rows [][]string
	total := moneymind.M(moneymind.MustD("0"), d.Currency())
	for a := range d.Accounts() {
		name := a.Name
		if a.ID == d.Settings().DefaultAccount {
			name += " ★"
		}
		rows = append(rows, []string{name, a.Type, cur.amount(a.Opening), cur.amount(a.Balance), a.ID})
		total = total.Add(a.Balance)
	}
	rows = append(rows, []string{md.Bold("Total"), "", "", md.Bold(total.String()), ""})
	doc.Table(md.TableSet{
		Header: []string{"Name", "Type", "Opening", "Balance", "ID"},
		Rows:   rows,
	})
	return doc.String()
}

// Budgets renders the spending of each category against its budget.
func Budgets(lines []moneymind.BudgetLine, currency string) string {
	cur := formatter(currency)
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Budgets")

	rows := make([][]string, 0, len(lines))
	for _, l := range lines {
		status := progressBar(l.Progress)
		if l.Over() {
			status += " over budget"
		}
		rows = append(rows, []string{l.Category.Name, cur.amount(l.Spent), cur.amount(l.Category.Budget), status})
	}
	doc.Table(md.TableSet{
		Header: []string{"Category", "Spent", "Budget", "Progress"},
		Rows:   rows,
	})
	return doc.String()
}

// Categories renders the categories with their budgets.
func Categories(d *moneymind.UserData) string {
	cur := formatter(d.Currency())
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Categories")

	var rows [][]string
	for c := range d.Categories() {
		budget := cur.amount(c.Budget)
		if c.IsIncome() {
			budget = "-"
		}
		rows = append(rows, []string{c.Name, budget, c.Color, c.Icon, c.ID})
	}
	doc.Table(md.TableSet{
		Header: []string{"Name", "Budget", "Color", "Icon", "ID"},
		Rows:   rows,
	})
	return doc.String()
}

// Goals renders the savings goals and their progress.
func Goals(lines []moneymind.GoalLine, currency string) string {
	cur := formatter(currency)
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Savings Goals")
	if len(lines) == 0 {
		doc.PlainText("No goals yet.")
		return doc.String()
	}

	rows := make([][]string, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, []string{l.Goal.Name, cur.amount(l.Goal.Saved), cur.amount(l.Goal.Target), progressBar(l.Progress), l.Goal.ID})
	}
	doc.Table(md.TableSet{
		Header: []string{"Goal", "Saved", "Target", "Progress", "ID"},
		Rows:   rows,
	})
	return doc.String()
}

// Settings renders the user preferences.
func Settings(u *moneymind.User) string {
	d := u.Data
	def := "none"
	if a, ok := d.Account(d.Settings().DefaultAccount); ok {
		def = a.Name
	}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Settings")
	doc.BulletList(
		fmt.Sprintf("User: %s <%s>", u.Name, u.Email),
		fmt.Sprintf("Currency: %s", d.Currency()),
		fmt.Sprintf("Default account: %s", def),
	)
	return doc.String()
}
