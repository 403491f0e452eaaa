package cmd

import (
	"flag"

	"github.com/etnz/moneymind/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors predicts the flags of fs. Boolean flags take no value.
func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[f.Name] = predict.Nothing
			return
		}
		flags[f.Name] = predict.Something
	})
	return flags
}

// Completion describes the commands registered in c for shell completion,
// with global the flag set c was created with.
func Completion(c *subcommands.Commander, global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(global),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		sub := &complete.Command{Flags: flagPredictors(fs)}
		switch cmd.(type) {
		case *importLegacyCmd:
			sub.Args = predict.Files("*.json")
		case *topicCmd:
			sub.Args = predict.Set(docs.Topics())
		case *exportCmd:
			sub.Flags["format"] = predict.Set{"csv", "report"}
		}
		root.Sub[cmd.Name()] = sub
	})
	return root
}
