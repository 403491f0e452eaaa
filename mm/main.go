// Command mm tracks personal finances: accounts, incomes and expenses,
// budgets and savings goals.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/moneymind/cmd"
	"github.com/etnz/moneymind/logger"
	"github.com/google/subcommands"
)

// registered reports whether name is a subcommand of c.
func registered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, sub subcommands.Command) {
		found = found || sub.Name() == name
	})
	return found
}

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")

	cmd.Init(flag.CommandLine)
	cmd.Register(commander)
	cmd.Completion(commander, flag.CommandLine).Complete("mm")

	flag.Parse()
	ctx := logger.WithContext(context.Background(), logger.New(os.Stderr, *cmd.Verbose))

	if name := flag.Arg(0); name != "" && !registered(commander, name) {
		if found, code := cmd.RunExtension(ctx, name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(ctx)))
}
