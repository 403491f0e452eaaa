package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/moneymind"
	"github.com/etnz/moneymind/renderer"
	"github.com/etnz/moneymind/session"
	"github.com/google/subcommands"
)

type settingsCmd struct {
	currency       string
	defaultAccount string
}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "show or change the user settings" }
func (*settingsCmd) Usage() string {
	return `mm settings [-currency <code>] [-default-account <account>]

  Without flags, shows the settings. The currency only changes how amounts
  are displayed, they are not converted.
`
}

func (c *settingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", "", "Display currency, a 3-letter code like INR or USD")
	f.StringVar(&c.defaultAccount, "default-account", "", "Account preselected for new transactions, by name or id")
}

func (c *settingsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.currency == "" && c.defaultAccount == "" {
		return view(ctx, func(s *session.Session, _ *moneymind.UserData) error {
			printMarkdown(renderer.Settings(s.User()))
			return nil
		})
	}
	s, status := apply(ctx, func(d *moneymind.UserData) error {
		if c.currency != "" {
			if err := d.SetCurrency(c.currency); err != nil {
				return err
			}
		}
		if c.defaultAccount != "" {
			a, ok := d.FindAccount(c.defaultAccount)
			if !ok {
				return fmt.Errorf("account %q: %w", c.defaultAccount, moneymind.ErrNotFound)
			}
			if err := d.SetDefaultAccount(a.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if status == subcommands.ExitSuccess {
		printMarkdown(renderer.Settings(s.User()))
	}
	return status
}
