package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/moneymind"
	"github.com/etnz/moneymind/renderer"
	"github.com/etnz/moneymind/session"
	"github.com/google/subcommands"
)

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list accounts and balances" }
func (*accountsCmd) Usage() string {
	return `mm accounts

  Lists the accounts with their opening and current balances. The default
  account is marked with a star.
`
}

func (*accountsCmd) SetFlags(f *flag.FlagSet) {}

func (*accountsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return view(ctx, func(_ *session.Session, d *moneymind.UserData) error {
		printMarkdown(renderer.Accounts(d))
		return nil
	})
}

type addAccountCmd struct {
	name    string
	kind    string
	balance string
}

func (*addAccountCmd) Name() string     { return "add-account" }
func (*addAccountCmd) Synopsis() string { return "create an account" }
func (*addAccountCmd) Usage() string {
	return `mm add-account -name <name> [-type <type>] [-balance <amount>]

  Creates an account with an initial balance. The first account becomes the
  default account.
`
}

func (c *addAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Account name (required), unique")
	f.StringVar(&c.kind, "type", "General", "Account type, like Savings or Wallet")
	f.StringVar(&c.balance, "balance", "0", "Initial balance")
}

func (c *addAccountCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	opening, err := moneymind.D(c.balance)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing balance %q: %v\n", c.balance, err)
		return subcommands.ExitUsageError
	}
	s, status := apply(ctx, func(d *moneymind.UserData) error {
		_, err := d.CreateAccount(c.name, c.kind, opening)
		return err
	})
	if status == subcommands.ExitSuccess {
		printMarkdown(renderer.Accounts(s.Data()))
	}
	return status
}

type editAccountCmd struct {
	name string
	kind string
}

func (*editAccountCmd) Name() string     { return "edit-account" }
func (*editAccountCmd) Synopsis() string { return "rename or retype an account" }
func (*editAccountCmd) Usage() string {
	return `mm edit-account [-name <name>] [-type <type>] <account>

  Changes the name or type of an account, designated by name or id. The
  balance never changes through an edit, only transactions move it.
`
}

func (c *editAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "New name")
	f.StringVar(&c.kind, "type", "", "New type")
}

func (c *editAccountCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one account is required")
		return subcommands.ExitUsageError
	}
	ref := f.Arg(0)
	s, status := apply(ctx, func(d *moneymind.UserData) error {
		a, ok := d.FindAccount(ref)
		if !ok {
			return fmt.Errorf("account %q: %w", ref, moneymind.ErrNotFound)
		}
		name, kind := a.Name, a.Type
		if c.name != "" {
			name = c.name
		}
		if c.kind != "" {
			kind = c.kind
		}
		_, err := d.UpdateAccount(a.ID, name, kind)
		return err
	})
	if status == subcommands.ExitSuccess {
		printMarkdown(renderer.Accounts(s.Data()))
	}
	return status
}

type deleteAccountCmd struct {
	yes bool
}

func (*deleteAccountCmd) Name() string     { return "delete-account" }
func (*deleteAccountCmd) Synopsis() string { return "delete an account" }
func (*deleteAccountCmd) Usage() string {
	return `mm delete-account [-y] <account>

  Deletes an account, designated by name or id. An account with transactions
  cannot be deleted, and neither can the only account.
`
}

func (c *deleteAccountCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation")
}

func (c *deleteAccountCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one account is required")
		return subcommands.ExitUsageError
	}
	ref := f.Arg(0)
	// refuse before asking
	if status := view(ctx, func(_ *session.Session, d *moneymind.UserData) error {
		a, ok := d.FindAccount(ref)
		if !ok {
			return fmt.Errorf("account %q: %w", ref, moneymind.ErrNotFound)
		}
		return d.CanDeleteAccount(a.ID)
	}); status != subcommands.ExitSuccess {
		return status
	}
	if !c.yes && !confirm(fmt.Sprintf("Delete account %q?", ref)) {
		return subcommands.ExitSuccess
	}
	s, status := apply(ctx, func(d *moneymind.UserData) error {
		a, ok := d.FindAccount(ref)
		if !ok {
			return fmt.Errorf("account %q: %w", ref, moneymind.ErrNotFound)
		}
		return d.DeleteAccount(a.ID)
	})
	if status == subcommands.ExitSuccess {
		printMarkdown(renderer.Accounts(s.Data()))
	}
	return status
}
