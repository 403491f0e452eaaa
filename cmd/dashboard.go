package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/moneymind"
	"github.com/etnz/moneymind/date"
	"github.com/etnz/moneymind/renderer"
	"github.com/etnz/moneymind/session"
	"github.com/google/subcommands"
)

type dashboardCmd struct {
	date   string
	recent int
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the overview of the month" }
func (*dashboardCmd) Usage() string {
	return `mm dashboard [-d <date>] [-n <count>]

  Displays the total balance, the income, expenses and savings rate of the
  month containing the date, and the most recent transactions.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "A date in the month to report, defaults to today")
	f.IntVar(&c.recent, "n", 5, "Number of recent transactions")
}

func (c *dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	return view(ctx, func(_ *session.Session, d *moneymind.UserData) error {
		printMarkdown(renderer.Dashboard(d.NewDashboard(on), d.Recent(c.recent), d))
		return nil
	})
}

type budgetsCmd struct{}

func (*budgetsCmd) Name() string     { return "budgets" }
func (*budgetsCmd) Synopsis() string { return "display spending against budgets" }
func (*budgetsCmd) Usage() string {
	return `mm budgets

  Displays the spending of every category against its budget.
`
}
func (*budgetsCmd) SetFlags(f *flag.FlagSet) {}

func (*budgetsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return view(ctx, func(_ *session.Session, d *moneymind.UserData) error {
		printMarkdown(renderer.Budgets(d.Budgets(), d.Currency()))
		return nil
	})
}

type calendarCmd struct {
	month string
}

func (*calendarCmd) Name() string     { return "calendar" }
func (*calendarCmd) Synopsis() string { return "display the transactions of a month by day" }
func (*calendarCmd) Usage() string {
	return `mm calendar [-m <YYYY-MM>]

  Displays a calendar of the month with the net flow of each day, followed by
  the transactions of the active days.
`
}

func (c *calendarCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Month to display, defaults to the current month")
}

func (c *calendarCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	month := date.Month(today())
	if c.month != "" {
		var err error
		if month, err = date.ParseMonth(c.month); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	return view(ctx, func(_ *session.Session, d *moneymind.UserData) error {
		printMarkdown(renderer.Calendar(d.NewCalendar(month.From), d))
		return nil
	})
}

type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "verify account balances against transactions" }
func (*checkCmd) Usage() string {
	return `mm check

  Verifies that every account balance equals its opening balance plus the
  effect of its transactions.
`
}
func (*checkCmd) SetFlags(f *flag.FlagSet) {}

func (*checkCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return view(ctx, func(_ *session.Session, d *moneymind.UserData) error {
		if err := d.Check(); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%d accounts and %d transactions are consistent.\n", d.NumAccounts(), d.NumTransactions())
		return nil
	})
}
