package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/moneymind"
	"github.com/etnz/moneymind/export"
	"github.com/etnz/moneymind/session"
	"github.com/google/subcommands"
)

type exportCmd struct {
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export transactions as csv or as a report" }
func (*exportCmd) Usage() string {
	return `mm export [-format csv|report] [-o <file>]

  Exports every transaction. The csv format lists the raw transactions, the
  report format is a markdown financial report.

  The default file name is MoneyMind_Report_<date>.<ext>, use -o - to print
  to the standard output.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "csv", "Export format: csv or report")
	f.StringVar(&c.output, "o", "", "Output file, - for the standard output")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ext := map[string]string{"csv": "csv", "report": "md"}[c.format]
	if ext == "" {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", c.format)
		return subcommands.ExitUsageError
	}
	on := today()
	return view(ctx, func(s *session.Session, d *moneymind.UserData) error {
		if d.NumTransactions() == 0 {
			return export.ErrNothingToExport
		}
		name := c.output
		if name == "" {
			name = export.FileName(on, ext)
		}
		w := stdout
		if name != "-" {
			file, err := os.Create(name)
			if err != nil {
				return err
			}
			defer file.Close()
			w = file
		}

		switch c.format {
		case "csv":
			if err := export.CSV(w, d); err != nil {
				return err
			}
		case "report":
			report, err := export.Report(s.User(), on)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprint(w, report); err != nil {
				return err
			}
		}
		if name != "-" {
			fmt.Fprintf(stdout, "Exported %d transactions to %s\n", d.NumTransactions(), name)
		}
		return nil
	})
}
