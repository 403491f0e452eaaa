package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/moneymind"
	"github.com/google/subcommands"
)

type resetCmd struct {
	student bool
	yes     bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "delete all the data of the user" }
func (*resetCmd) Usage() string {
	return `mm reset [-student] [-y]

  Deletes all accounts, transactions, categories and goals, and starts over
  with the data of a new user.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.student, "student", false, "Start over with the student categories")
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation")
}

func (c *resetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.yes && !confirm("Are you absolutely sure? All your accounts, transactions, and goals will be permanently deleted.") {
		return subcommands.ExitSuccess
	}
	_, status := apply(ctx, func(d *moneymind.UserData) error {
		d.Reset(c.student)
		return nil
	})
	if status == subcommands.ExitSuccess {
		fmt.Fprintln(stdout, "All data has been reset.")
	}
	return status
}
