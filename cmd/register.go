package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/moneymind/auth"
	"github.com/etnz/moneymind/renderer"
	"github.com/google/subcommands"
)

// EnvPassword provides the password when the -password flag is not set.
const EnvPassword = "MM_PASSWORD"

// readPassword returns the flag value, then the environment, then the first
// line of stdin.
func readPassword(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(EnvPassword); v != "" {
		return v
	}
	fmt.Fprint(stdout, "Password: ")
	line, _ := bufio.NewReader(stdin).ReadString('\n')
	return strings.TrimSpace(line)
}

type registerCmd struct {
	name     string
	email    string
	password string
	student  bool
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "register a new user" }
func (*registerCmd) Usage() string {
	return `mm register -email <email> [-name <name>] [-password <password>] [-student]

  Registers a new user with a Cash account and a starter set of categories.
  The password must have 8+ chars with 1 uppercase & 1 number. It is read
  from MM_PASSWORD or stdin when -password is not set.

  -student uses categories tailored to pocket money budgets.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Display name, defaults to the email local part")
	f.StringVar(&c.email, "email", "", "Email (required)")
	f.StringVar(&c.password, "password", "", "Password, prefer MM_PASSWORD or stdin")
	f.BoolVar(&c.student, "student", false, "Use the student categories")
}

func (c *registerCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	u, err := auth.Register(db, c.name, c.email, readPassword(c.password), c.student)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error registering: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := s.Save(ctx, db); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving database: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Registration successful! Log in with 'mm login -email %s'.\n", u.Email)
	printMarkdown(renderer.Categories(u.Data))
	return subcommands.ExitSuccess
}
