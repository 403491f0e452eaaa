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

type goalsCmd struct{}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "show the progress of savings goals" }
func (*goalsCmd) Usage() string {
	return `mm goals

  Lists the savings goals with their progress.
`
}
func (*goalsCmd) SetFlags(f *flag.FlagSet) {}

func (*goalsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return view(ctx, func(_ *session.Session, d *moneymind.UserData) error {
		printMarkdown(renderer.Goals(d.GoalsProgress(), d.Currency()))
		return nil
	})
}

type setGoalCmd struct {
	target string
	saved  string
	color  string
	rename string
}

func (*setGoalCmd) Name() string     { return "set-goal" }
func (*setGoalCmd) Synopsis() string { return "create or update a savings goal" }
func (*setGoalCmd) Usage() string {
	return `mm set-goal [-target <amount>] [-saved <amount>] [-color <color>] [-rename <name>] <goal>

  Creates the goal if no goal has this name or id, a target is then required.
  Otherwise updates the fields set on the command line.
`
}

func (c *setGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.target, "target", "", "Amount to save")
	f.StringVar(&c.saved, "saved", "0", "Amount saved so far")
	f.StringVar(&c.color, "color", "", "Display color")
	f.StringVar(&c.rename, "rename", "", "New name of an existing goal")
}

func (c *setGoalCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one goal is required")
		return subcommands.ExitUsageError
	}
	ref := f.Arg(0)
	set := visited(f)
	s, status := apply(ctx, func(d *moneymind.UserData) error {
		g, ok := d.FindGoal(ref)
		if !ok {
			if set["rename"] {
				return fmt.Errorf("goal %q: %w", ref, moneymind.ErrNotFound)
			}
			g.Name = ref
			set["target"] = true
			set["saved"] = true
		}
		var err error
		if set["target"] {
			if g.Target, err = moneymind.D(c.target); err != nil {
				return fmt.Errorf("invalid target %q: %w", c.target, moneymind.ErrInvalid)
			}
		}
		if set["saved"] {
			if g.Saved, err = moneymind.D(c.saved); err != nil {
				return fmt.Errorf("invalid saved amount %q: %w", c.saved, moneymind.ErrInvalid)
			}
		}
		if set["color"] {
			g.Color = c.color
		}
		if set["rename"] {
			g.Name = c.rename
		}
		_, err = d.SaveGoal(g)
		return err
	})
	if status == subcommands.ExitSuccess {
		d := s.Data()
		printMarkdown(renderer.Goals(d.GoalsProgress(), d.Currency()))
	}
	return status
}

type deleteGoalCmd struct {
	yes bool
}

func (*deleteGoalCmd) Name() string     { return "delete-goal" }
func (*deleteGoalCmd) Synopsis() string { return "delete a savings goal" }
func (*deleteGoalCmd) Usage() string {
	return `mm delete-goal [-y] <goal>
`
}

func (c *deleteGoalCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation")
}

func (c *deleteGoalCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one goal is required")
		return subcommands.ExitUsageError
	}
	ref := f.Arg(0)
	if !c.yes && !confirm(fmt.Sprintf("Are you sure you want to delete the goal %q?", ref)) {
		return subcommands.ExitSuccess
	}
	s, status := apply(ctx, func(d *moneymind.UserData) error {
		g, ok := d.FindGoal(ref)
		if !ok {
			return fmt.Errorf("goal %q: %w", ref, moneymind.ErrNotFound)
		}
		return d.DeleteGoal(g.ID)
	})
	if status == subcommands.ExitSuccess {
		d := s.Data()
		printMarkdown(renderer.Goals(d.GoalsProgress(), d.Currency()))
	}
	return status
}
