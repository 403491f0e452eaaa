package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/moneymind/auth"
	"github.com/etnz/moneymind/legacy"
	"github.com/etnz/moneymind/renderer"
	"github.com/google/subcommands"
)

type importLegacyCmd struct {
	email    string
	password string
}

func (*importLegacyCmd) Name() string { return "import-legacy" }
func (*importLegacyCmd) Synopsis() string {
	return "import a user from a " + legacy.StorageKey + " browser dump"
}
func (*importLegacyCmd) Usage() string {
	return `mm import-legacy [-email <email>] [-password <password>] <file>

  Imports a user from the JSON stored by the browser version under the
  ` + legacy.StorageKey + ` key. Without -email, lists the users in the dump.

  Browser passwords cannot be carried over: a new password is read from
  -password, MM_PASSWORD or stdin.
`
}

func (c *importLegacyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "email", "", "Email of the user to import")
	f.StringVar(&c.password, "password", "", "New password of the imported user")
}

func (c *importLegacyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one dump file is required")
		return subcommands.ExitUsageError
	}
	dump, err := os.ReadFile(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading dump: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.email == "" {
		emails, err := legacy.Emails(bytes.NewReader(dump))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading dump: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(stdout, "%d users in the dump, select one with -email:\n", len(emails))
		for _, e := range emails {
			fmt.Fprintf(stdout, "  %s\n", e)
		}
		return subcommands.ExitSuccess
	}

	u, err := legacy.Import(ctx, bytes.NewReader(dump), c.email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing: %v\n", err)
		return subcommands.ExitFailure
	}

	s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	db, err := s.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading database: %v\n", err)
		return subcommands.ExitFailure
	}
	if db.FindUser(u.Email) != nil {
		fmt.Fprintf(os.Stderr, "Error importing %s: %v\n", u.Email, auth.ErrEmailTaken)
		return subcommands.ExitFailure
	}
	if err := auth.SetPassword(u, readPassword(c.password)); err != nil {
		fmt.Fprintf(os.Stderr, "Error setting password: %v\n", err)
		return subcommands.ExitFailure
	}
	db.Users = append(db.Users, u)
	if err := s.Save(ctx, db); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving database: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Imported %s with %d transactions.\n", u.Email, u.Data.NumTransactions())
	printMarkdown(renderer.Accounts(u.Data))
	return subcommands.ExitSuccess
}
