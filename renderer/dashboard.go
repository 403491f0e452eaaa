// Package renderer renders moneymind reports as markdown.
package renderer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/etnz/moneymind"
	md "github.com/nao1215/markdown"
)

// Dashboard renders the dashboard followed by the most recent transactions.
func Dashboard(db moneymind.Dashboard, recent []moneymind.Transaction, d *moneymind.UserData) string {
	cur := formatter(db.Currency)
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Dashboard on %s", db.On))
	doc.PlainText(fmt.Sprintf("Total Balance: %s", md.Bold(cur.amount(db.TotalBalance))))
	doc.LF()

	doc.H2(fmt.Sprintf("Month %s", db.Month.Identifier()))
	doc.Table(md.TableSet{
		Header: []string{"", "Amount"},
		Rows: [][]string{
			{"Income", cur.amount(db.Income)},
			{"Expenses", cur.amount(db.Expenses)},
			{"Online", cur.amount(db.OnlineExpenses)},
			{"Cash", cur.amount(db.CashExpenses)},
			{"Net Savings", cur.amount(db.NetSavings)},
			{"Savings Rate", db.SavingsRate.StringFixed(1) + "%"},
		},
	})
	if err := doc.Build(); err != nil {
		return doc.String()
	}

	ConditionalBlock(&buf, func(w io.Writer) bool {
		if len(recent) == 0 {
			return false
		}
		section := md.NewMarkdown(w)
		section.PlainText("")
		section.H2("Recent Transactions")
		section.Table(transactionsTable(d, recent))
		return section.Build() == nil
	})
	return buf.String()
}

// transactionsTable lists transactions with their signed amounts.
func transactionsTable(d *moneymind.UserData, txs []moneymind.Transaction) md.TableSet {
	cur := formatter(d.Currency())
	n := names{d}
	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, []string{
			tx.Date.String(),
			tx.Description,
			n.category(tx.Category),
			n.account(tx.Account),
			string(tx.Method),
			cur.signed(tx),
			tx.ID,
		})
	}
	return md.TableSet{
		Header: []string{"Date", "Description", "Category", "Account", "Method", "Amount", "ID"},
		Rows:   rows,
	}
}

// Transactions renders a titled list of transactions.
func Transactions(title string, d *moneymind.UserData, txs []moneymind.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(title)
	if len(txs) == 0 {
		doc.PlainText("No transactions.")
		return doc.String()
	}
	doc.Table(transactionsTable(d, txs))
	return doc.String()
}

// Transaction renders a single transaction in one line.
func Transaction(d *moneymind.UserData, tx moneymind.Transaction) string {
	n := names{d}
	verb := "Spent"
	if tx.Type == moneymind.Income {
		verb = "Received"
	}
	return fmt.Sprintf("%s %s on %s (%s, %s, %s)", verb, formatter(d.Currency()).amount(tx.Amount), tx.Date, n.account(tx.Account), n.category(tx.Category), tx.Method)
}
