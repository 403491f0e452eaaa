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

type txCmd struct {
	period   string
	start    string
	date     string
	head     int
	tail     int
	account  string
	category string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions" }
func (*txCmd) Usage() string {
	return `mm tx [-p <period> | -s <start_date>] [-d <end_date>] [-account <account>] [-category <category>] [-head <n>] [-tail <n>]

  Lists transactions in chronological order, with options for filtering and limiting the output.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.period, "p", "", "Predefined period (day, week, month, year).")
	f.StringVar(&p.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&p.date, "d", "", "The end date for the range.")
	f.IntVar(&p.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N transactions.")
	f.StringVar(&p.account, "account", "", "Only the transactions of this account.")
	f.StringVar(&p.category, "category", "", "Only the transactions of this category.")
}

// rangeOf computes the range selected by the flags, the zero Range selects
// everything.
func (p *txCmd) rangeOf() (date.Range, error) {
	if p.start == "" && p.date == "" && p.period == "" {
		return date.Range{}, nil
	}
	end, err := parseDay(p.date)
	if err != nil {
		return date.Range{}, fmt.Errorf("parsing end date: %w", err)
	}
	if p.start != "" {
		start, err := date.Parse(p.start)
		if err != nil {
			return date.Range{}, fmt.Errorf("parsing start date: %w", err)
		}
		return date.Range{From: start, To: end}, nil
	}
	if p.period == "" {
		return date.Range{From: date.New(1, 1, 1), To: end}, nil
	}
	period, err := date.ParsePeriod(p.period)
	if err != nil {
		return date.Range{}, fmt.Errorf("parsing period: %w", err)
	}
	return date.NewRange(end, period), nil
}

func (p *txCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}
	r, err := p.rangeOf()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error %v\n", err)
		return subcommands.ExitUsageError
	}

	return view(ctx, func(_ *session.Session, d *moneymind.UserData) error {
		accept := func(moneymind.Transaction) bool { return true }
		if p.account != "" {
			a, ok := d.FindAccount(p.account)
			if !ok {
				return fmt.Errorf("account %q: %w", p.account, moneymind.ErrNotFound)
			}
			accept = func(tx moneymind.Transaction) bool { return tx.Account == a.ID }
		}
		if p.category != "" {
			c, ok := d.FindCategory(p.category)
			if !ok {
				return fmt.Errorf("category %q: %w", p.category, moneymind.ErrNotFound)
			}
			prev := accept
			accept = func(tx moneymind.Transaction) bool { return prev(tx) && tx.Category == c.ID }
		}

		var transactions []moneymind.Transaction
		for _, tx := range d.Between(r) {
			if accept(tx) {
				transactions = append(transactions, tx)
			}
		}
		if p.head > 0 && len(transactions) > p.head {
			transactions = transactions[:p.head]
		}
		if p.tail > 0 && len(transactions) > p.tail {
			transactions = transactions[len(transactions)-p.tail:]
		}
		printMarkdown(renderer.Transactions("Transactions", d, transactions))
		return nil
	})
}
