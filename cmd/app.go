// Package cmd implements the mm CLI application to track personal finances.
package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/moneymind"
	"github.com/etnz/moneymind/date"
	"github.com/etnz/moneymind/session"
	"github.com/etnz/moneymind/store"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Environment variables providing the default value of the global flags.
// They are also passed to extensions.
const (
	EnvStore   = "MM_STORE"
	EnvDB      = "MM_DB"
	EnvRedis   = "MM_REDIS"
	EnvUser    = "MM_USER"
	EnvVerbose = "MM_VERBOSE"
	EnvPlain   = "MM_PLAIN"
	EnvToday   = "MM_TODAY" // overrides today, for reproducible outputs
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.
var (
	storeKind *string
	dbFile    *string
	redisAddr *string
	userEmail *string
	Verbose   *bool
	plain     *bool

	stdout io.Writer = os.Stdout
	stdin  io.Reader = os.Stdin
)

// Init loads the .env file if any and declares the global flags in fs. It
// must be called before parsing fs.
func Init(fs *flag.FlagSet) {
	_ = godotenv.Load() // a missing .env is fine

	storeKind = fs.String("store", envOr(EnvStore, store.KindFile), "Store backend: file or redis. Env: "+EnvStore)
	dbFile = fs.String("db", envOr(EnvDB, store.DefaultFile), "Path to the database file of the file store. Env: "+EnvDB)
	redisAddr = fs.String("redis", envOr(EnvRedis, "localhost:6379"), "Address of the redis store. Env: "+EnvRedis)
	userEmail = fs.String("user", os.Getenv(EnvUser), "Email of the user, defaults to the logged in user. Env: "+EnvUser)
	Verbose = fs.Bool("v", envBool(EnvVerbose), "Verbose logging. Env: "+EnvVerbose)
	plain = fs.Bool("plain", envBool(EnvPlain), "Print raw markdown instead of styled output. Env: "+EnvPlain)
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envBool(key string) bool {
	v, _ := strconv.ParseBool(os.Getenv(key))
	return v
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&registerCmd{}, "user")
	c.Register(&loginCmd{}, "user")
	c.Register(&logoutCmd{}, "user")
	c.Register(&settingsCmd{}, "user")
	c.Register(&resetCmd{}, "user")
	c.Register(&importLegacyCmd{}, "user")

	c.Register(&dashboardCmd{}, "reports")
	c.Register(&budgetsCmd{}, "reports")
	c.Register(&calendarCmd{}, "reports")
	c.Register(&insightsCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")
	c.Register(&checkCmd{}, "reports")

	c.Register(&txCmd{}, "transactions")
	c.Register(&addCmd{}, "transactions")
	c.Register(&editCmd{}, "transactions")
	c.Register(&deleteCmd{}, "transactions")

	c.Register(&accountsCmd{}, "accounts")
	c.Register(&addAccountCmd{}, "accounts")
	c.Register(&editAccountCmd{}, "accounts")
	c.Register(&deleteAccountCmd{}, "accounts")

	c.Register(&categoriesCmd{}, "categories")
	c.Register(&setCategoryCmd{}, "categories")
	c.Register(&deleteCategoryCmd{}, "categories")

	c.Register(&goalsCmd{}, "goals")
	c.Register(&setGoalCmd{}, "goals")
	c.Register(&deleteGoalCmd{}, "goals")

	c.Register(&topicCmd{}, "help")
}

// openStore opens the store selected by the global flags.
func openStore() (store.Store, error) {
	return store.Open(*storeKind, *dbFile, *redisAddr)
}

// openSession opens the session of the selected user.
func openSession(ctx context.Context) (*session.Session, error) {
	s, err := openStore()
	if err != nil {
		return nil, err
	}
	return session.Open(ctx, s, *userEmail)
}

// today returns the current date, or the date set in MM_TODAY.
func today() date.Date {
	if v := os.Getenv(EnvToday); v != "" {
		if d, err := date.Parse(v); err == nil {
			return d
		}
	}
	return date.Today()
}

// parseDay parses a date flag, the empty string is today.
func parseDay(s string) (date.Date, error) {
	if s == "" {
		return today(), nil
	}
	return date.Parse(s)
}

// printMarkdown prints md styled for the terminal, unless -plain is set.
func printMarkdown(md string) {
	if !*plain {
		out, err := glamour.Render(md, "auto")
		if err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	fmt.Fprintln(stdout, md)
}

// confirm asks a yes/no question on stdin.
func confirm(question string) bool {
	fmt.Fprintf(stdout, "%s [y/N] ", question)
	answer, _ := bufio.NewReader(stdin).ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// apply runs fn in the session of the selected user and reports errors on
// stderr. The session is returned to print the result once saved.
func apply(ctx context.Context, fn func(d *moneymind.UserData) error) (*session.Session, subcommands.ExitStatus) {
	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	if err := s.Apply(ctx, fn); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	return s, subcommands.ExitSuccess
}

// view opens the session of the selected user for a read only command.
func view(ctx context.Context, fn func(s *session.Session, d *moneymind.UserData) error) subcommands.ExitStatus {
	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := fn(s, s.Data()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
