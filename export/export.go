// Package export writes the transactions of a user as a CSV file or as a
// markdown financial report.
package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/etnz/moneymind"
	"github.com/etnz/moneymind/date"
	md "github.com/nao1215/markdown"
)

// ErrNothingToExport is returned when the user has no transaction.
var ErrNothingToExport = errors.New("no transactions to export")

// notAvailable replaces the name of a missing account or category.
const notAvailable = "N/A"

// FileName returns the conventional name of an export made on a day, like
// "MoneyMind_Report_2025-07-10.csv".
func FileName(on date.Date, ext string) string {
	return fmt.Sprintf("MoneyMind_Report_%s.%s", on, ext)
}

// names resolves the category and account names of tx.
func names(d *moneymind.UserData, tx moneymind.Transaction) (category, account string) {
	category, account = notAvailable, notAvailable
	if c, ok := d.Category(tx.Category); ok {
		category = c.Name
	}
	if a, ok := d.Account(tx.Account); ok {
		account = a.Name
	}
	return category, account
}

// CSV writes every transaction in recording order with the header
// Date,Description,Amount,Type,Method,Category,Account.
func CSV(w io.Writer, d *moneymind.UserData) error {
	if d.NumTransactions() == 0 {
		return ErrNothingToExport
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Description", "Amount", "Type", "Method", "Category", "Account"}); err != nil {
		return err
	}
	for tx := range d.Transactions() {
		category, account := names(d, tx)
		record := []string{
			tx.Date.String(),
			tx.Description,
			tx.Amount.String(),
			string(tx.Type),
			string(tx.Method),
			category,
			account,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("could not write csv: %w", err)
	}
	return nil
}

// Report renders the "Financial Report" of a user on a day: every
// transaction with its signed amount in the user currency.
func Report(u *moneymind.User, on date.Date) (string, error) {
	d := u.Data
	if d.NumTransactions() == 0 {
		return "", ErrNothingToExport
	}
	var rows [][]string
	for tx := range d.Transactions() {
		category, account := names(d, tx)
		amount := moneymind.M(tx.Amount, d.Currency()).String()
		if tx.Type == moneymind.Income {
			amount = "+" + amount
		} else {
			amount = "-" + amount
		}
		rows = append(rows, []string{tx.Date.String(), tx.Description, string(tx.Method), category, account, amount})
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Financial Report")
	doc.PlainText(fmt.Sprintf("User: %s", u.Name))
	doc.LF()
	doc.PlainText(fmt.Sprintf("Date: %s", on))
	doc.LF()
	doc.Table(md.TableSet{
		Header: []string{"Date", "Description", "Method", "Category", "Account", "Amount"},
		Rows:   rows,
	})
	return doc.String(), nil
}
