package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/moneymind"
	"github.com/etnz/moneymind/renderer"
	"github.com/google/subcommands"
)

// txFlags are the flags describing a transaction, shared by add and edit.
type txFlags struct {
	typ         string
	amount      string
	account     string
	category    string
	date        string
	description string
	method      string
}

func (t *txFlags) set(f *flag.FlagSet) {
	f.StringVar(&t.typ, "type", "expense", "Transaction type: income or expense")
	f.StringVar(&t.amount, "amount", "", "Amount, always positive")
	f.StringVar(&t.account, "account", "", "Account name or id, defaults to the default account")
	f.StringVar(&t.category, "category", "", "Category name or id, required for expenses")
	f.StringVar(&t.date, "d", "", "Date of the transaction, defaults to today")
	f.StringVar(&t.description, "desc", "", "Description")
	f.StringVar(&t.method, "method", "online", "Payment method: online or cash")
}

// fill overwrites the fields of tx whose flag is in set.
func (t *txFlags) fill(d *moneymind.UserData, tx *moneymind.Transaction, set map[string]bool) error {
	var err error
	if set["type"] {
		if tx.Type, err = moneymind.ParseTxType(t.typ); err != nil {
			return err
		}
	}
	if set["amount"] {
		if tx.Amount, err = moneymind.D(t.amount); err != nil {
			return fmt.Errorf("invalid amount %q: %w", t.amount, moneymind.ErrInvalid)
		}
	}
	if set["account"] {
		a, ok := d.FindAccount(t.account)
		if !ok {
			return fmt.Errorf("account %q: %w", t.account, moneymind.ErrInvalidAccount)
		}
		tx.Account = a.ID
	}
	if set["category"] {
		c, ok := d.FindCategory(t.category)
		if !ok {
			return fmt.Errorf("category %q: %w", t.category, moneymind.ErrInvalidCategory)
		}
		tx.Category = c.ID
	}
	if set["d"] {
		if tx.Date, err = parseDay(t.date); err != nil {
			return err
		}
	}
	if set["desc"] {
		tx.Description = t.description
	}
	if set["method"] {
		if tx.Method, err = moneymind.ParseMethod(t.method); err != nil {
			return err
		}
	}
	return nil
}

// visited returns the names of the flags set on the command line.
func visited(f *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	return set
}

type addCmd struct {
	txFlags
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an income or an expense" }
func (*addCmd) Usage() string {
	return `mm add [-type income|expense] -amount <amount> [-category <category>] [-account <account>] [-d <date>] [-desc <text>] [-method online|cash]

  Records a transaction and updates the account balance. Incomes go to the
  Income category.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) { c.txFlags.set(f) }

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -amount is required")
		return subcommands.ExitUsageError
	}
	var recorded moneymind.Transaction
	s, status := apply(ctx, func(d *moneymind.UserData) error {
		tx := moneymind.Transaction{Account: d.Settings().DefaultAccount}
		// every flag applies, defaults included.
		all := map[string]bool{"type": true, "amount": true, "d": true, "desc": true, "method": true}
		all["account"] = c.account != ""
		all["category"] = c.category != ""
		if err := c.txFlags.fill(d, &tx, all); err != nil {
			return err
		}
		var err error
		recorded, err = d.UpsertTransaction(tx)
		return err
	})
	if status == subcommands.ExitSuccess {
		fmt.Fprintf(stdout, "%s (id %s)\n", renderer.Transaction(s.Data(), recorded), recorded.ID)
	}
	return status
}

type editCmd struct {
	txFlags
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit a transaction" }
func (*editCmd) Usage() string {
	return `mm edit [-type income|expense] [-amount <amount>] [-category <category>] [-account <account>] [-d <date>] [-desc <text>] [-method online|cash] <id>

  Changes the fields set on the command line. Balances are updated, even when
  the transaction moves to another account.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) { c.txFlags.set(f) }

func (c *editCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one transaction id is required")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)
	set := visited(f)
	var recorded moneymind.Transaction
	s, status := apply(ctx, func(d *moneymind.UserData) error {
		tx, ok := d.Transaction(id)
		if !ok {
			return fmt.Errorf("transaction %q: %w", id, moneymind.ErrNotFound)
		}
		if err := c.txFlags.fill(d, &tx, set); err != nil {
			return err
		}
		var err error
		recorded, err = d.UpsertTransaction(tx)
		return err
	})
	if status == subcommands.ExitSuccess {
		fmt.Fprintln(stdout, renderer.Transaction(s.Data(), recorded))
	}
	return status
}

type deleteCmd struct {
	yes bool
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a transaction" }
func (*deleteCmd) Usage() string {
	return `mm delete [-y] <id>

  Deletes a transaction and reverses its effect on the account balance.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation")
}

func (c *deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one transaction id is required")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)
	if !c.yes && !confirm("Are you sure you want to delete this transaction?") {
		return subcommands.ExitSuccess
	}
	_, status := apply(ctx, func(d *moneymind.UserData) error {
		if _, ok := d.DeleteTransaction(id); !ok {
			return fmt.Errorf("transaction %q: %w", id, moneymind.ErrNotFound)
		}
		return nil
	})
	if status == subcommands.ExitSuccess {
		fmt.Fprintln(stdout, "Transaction deleted.")
	}
	return status
}
