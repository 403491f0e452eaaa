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

type categoriesCmd struct{}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list categories and their budgets" }
func (*categoriesCmd) Usage() string {
	return `mm categories

  Lists the categories with their monthly budget.
`
}
func (*categoriesCmd) SetFlags(f *flag.FlagSet) {}

func (*categoriesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return view(ctx, func(_ *session.Session, d *moneymind.UserData) error {
		printMarkdown(renderer.Categories(d))
		return nil
	})
}

type setCategoryCmd struct {
	budget string
	color  string
	icon   string
	rename string
}

func (*setCategoryCmd) Name() string     { return "set-category" }
func (*setCategoryCmd) Synopsis() string { return "create or update a category" }
func (*setCategoryCmd) Usage() string {
	return `mm set-category [-budget <amount>] [-color <color>] [-icon <icon>] [-rename <name>] <category>

  Creates the category if no category has this name or id, otherwise updates
  the fields set on the command line.
`
}

func (c *setCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.budget, "budget", "0", "Monthly budget")
	f.StringVar(&c.color, "color", "", "Display color")
	f.StringVar(&c.icon, "icon", "", "Display icon, defaults to "+moneymind.DefaultIcon)
	f.StringVar(&c.rename, "rename", "", "New name of an existing category")
}

func (c *setCategoryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one category is required")
		return subcommands.ExitUsageError
	}
	ref := f.Arg(0)
	set := visited(f)
	s, status := apply(ctx, func(d *moneymind.UserData) error {
		cat, ok := d.FindCategory(ref)
		if !ok {
			if set["rename"] {
				return fmt.Errorf("category %q: %w", ref, moneymind.ErrNotFound)
			}
			cat.Name = ref
			set["budget"] = true
		}
		if set["budget"] {
			budget, err := moneymind.D(c.budget)
			if err != nil {
				return fmt.Errorf("invalid budget %q: %w", c.budget, moneymind.ErrInvalid)
			}
			cat.Budget = budget
		}
		if set["color"] {
			cat.Color = c.color
		}
		if set["icon"] {
			cat.Icon = c.icon
		}
		if set["rename"] {
			cat.Name = c.rename
		}
		_, err := d.SaveCategory(cat)
		return err
	})
	if status == subcommands.ExitSuccess {
		printMarkdown(renderer.Categories(s.Data()))
	}
	return status
}

type deleteCategoryCmd struct {
	yes bool
}

func (*deleteCategoryCmd) Name() string     { return "delete-category" }
func (*deleteCategoryCmd) Synopsis() string { return "delete an unused category" }
func (*deleteCategoryCmd) Usage() string {
	return `mm delete-category [-y] <category>

  Deletes a category. Categories used by a transaction and the Income category
  cannot be deleted.
`
}

func (c *deleteCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation")
}

func (c *deleteCategoryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one category is required")
		return subcommands.ExitUsageError
	}
	ref := f.Arg(0)
	if !c.yes && !confirm(fmt.Sprintf("Are you sure you want to delete the category %q?", ref)) {
		return subcommands.ExitSuccess
	}
	s, status := apply(ctx, func(d *moneymind.UserData) error {
		cat, ok := d.FindCategory(ref)
		if !ok {
			return fmt.Errorf("category %q: %w", ref, moneymind.ErrNotFound)
		}
		return d.DeleteCategory(cat.ID)
	})
	if status == subcommands.ExitSuccess {
		printMarkdown(renderer.Categories(s.Data()))
	}
	return status
}
