package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/moneymind/auth"
	"github.com/google/subcommands"
)

type loginCmd struct {
	email    string
	password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "log in as a registered user" }
func (*loginCmd) Usage() string {
	return `mm login -email <email> [-password <password>]

  Logs in. The user stays logged in for the next commands until 'mm logout'.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "email", "", "Email (required)")
	f.StringVar(&c.password, "password", "", "Password, prefer MM_PASSWORD or stdin")
}

func (c *loginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.email == "" {
		fmt.Fprintln(os.Stderr, "Error: -email is required")
		return subcommands.ExitUsageError
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
	u, err := auth.Login(db, c.email, readPassword(c.password))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := s.Save(ctx, db); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving database: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Welcome back, %s!\n", u.Name)
	return subcommands.ExitSuccess
}

type logoutCmd struct {
	yes bool
}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "log out the current user" }
func (*logoutCmd) Usage() string {
	return `mm logout [-y]

  Forgets the logged in user.
`
}

func (c *logoutCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation")
}

func (c *logoutCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.yes && !confirm("Are you sure you want to log out?") {
		return subcommands.ExitSuccess
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
	if !auth.Logout(db) {
		fmt.Fprintln(stdout, "No user logged in.")
		return subcommands.ExitSuccess
	}
	if err := s.Save(ctx, db); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving database: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, "Logged out.")
	return subcommands.ExitSuccess
}
