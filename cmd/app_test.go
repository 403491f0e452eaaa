package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/etnz/moneymind"
	"github.com/etnz/moneymind/store"
	"github.com/google/subcommands"
)

// mm runs the mm command line on the file store db and returns its standard
// output.
func mm(t *testing.T, db string, args ...string) (string, subcommands.ExitStatus) {
	t.Helper()
	fs := flag.NewFlagSet("mm", flag.ContinueOnError)
	Init(fs)
	c := subcommands.NewCommander(fs, "mm")
	Register(c)
	if err := fs.Parse(append([]string{"-store", store.KindFile, "-db", db, "-plain"}, args...)); err != nil {
		t.Fatalf("parsing %v: %v", args, err)
	}

	var out bytes.Buffer
	stdout = &out
	defer func() { stdout = os.Stdout }()
	status := c.Execute(context.Background())
	return out.String(), status
}

// mustMM is mm that fails the test when the command fails.
func mustMM(t *testing.T, db string, args ...string) string {
	t.Helper()
	out, status := mm(t, db, args...)
	if status != subcommands.ExitSuccess {
		t.Fatalf("mm %s: status %v, output:\n%s", strings.Join(args, " "), status, out)
	}
	return out
}

// loadUser reads the data of email from the file store db.
func loadUser(t *testing.T, db, email string) *moneymind.UserData {
	t.Helper()
	d, err := store.NewFile(db).Load(context.Background())
	if err != nil {
		t.Fatalf("loading %s: %v", db, err)
	}
	u := d.FindUser(email)
	if u == nil {
		t.Fatalf("user %q not found", email)
	}
	return u.Data
}

func balanceOf(t *testing.T, d *moneymind.UserData, name string) string {
	t.Helper()
	a, ok := d.FindAccount(name)
	if !ok {
		t.Fatalf("account %q not found", name)
	}
	return a.Balance.String()
}

func setupEnv(t *testing.T) string {
	t.Helper()
	for _, key := range []string{EnvStore, EnvDB, EnvRedis, EnvUser, EnvVerbose, EnvPassword} {
		t.Setenv(key, "")
	}
	t.Setenv(EnvPlain, "true")
	t.Setenv(EnvToday, "2025-07-10")
	return filepath.Join(t.TempDir(), "moneymind.json")
}

var idRegexp = regexp.MustCompile(`\(id ([^)]+)\)`)

func TestLedgerScenario(t *testing.T) {
	db := setupEnv(t)
	const email = "ann@example.com"

	out := mustMM(t, db, "register", "-email", email, "-name", "Ann", "-password", "Secret123")
	if !strings.Contains(out, "Registration successful") {
		t.Errorf("register output = %q", out)
	}
	out = mustMM(t, db, "login", "-email", "ANN@example.com", "-password", "Secret123")
	if !strings.Contains(out, "Welcome back, Ann!") {
		t.Errorf("login output = %q", out)
	}

	mustMM(t, db, "add-account", "-name", "Bank", "-balance", "1000")
	mustMM(t, db, "add", "-type", "income", "-amount", "500", "-account", "Bank", "-d", "2025-07-01", "-desc", "Salary")
	out = mustMM(t, db, "add", "-amount", "120.50", "-category", "Food & Dining", "-account", "Bank", "-desc", "Groceries")
	m := idRegexp.FindStringSubmatch(out)
	if m == nil {
		t.Fatalf("add output has no id: %q", out)
	}
	groceries := m[1]

	if got := balanceOf(t, loadUser(t, db, email), "Bank"); got != "1379.5" {
		t.Errorf("Bank balance = %s, want 1379.5", got)
	}

	// moving the expense reverses it on Bank
	mustMM(t, db, "edit", "-account", "Cash", "-amount", "20", groceries)
	d := loadUser(t, db, email)
	if got := balanceOf(t, d, "Bank"); got != "1500" {
		t.Errorf("Bank balance after edit = %s, want 1500", got)
	}
	if got := balanceOf(t, d, "Cash"); got != "-20" {
		t.Errorf("Cash balance after edit = %s, want -20", got)
	}
	if tx, _ := d.Transaction(groceries); tx.Description != "Groceries" {
		t.Errorf("edit changed the description to %q", tx.Description)
	}

	out = mustMM(t, db, "check")
	if !strings.Contains(out, "2 accounts and 2 transactions are consistent") {
		t.Errorf("check output = %q", out)
	}

	out = mustMM(t, db, "export", "-o", "-")
	if !strings.Contains(out, "2025-07-01,Salary,500,income,online,Income,Bank") {
		t.Errorf("export output = %q", out)
	}

	out = mustMM(t, db, "tx", "-account", "Cash")
	if !strings.Contains(out, "Groceries") || strings.Contains(out, "Salary") {
		t.Errorf("tx -account Cash output = %q", out)
	}

	out = mustMM(t, db, "dashboard")
	if !strings.Contains(out, "Dashboard on 2025-07-10") || !strings.Contains(out, "Recent Transactions") {
		t.Errorf("dashboard output = %q", out)
	}

	mustMM(t, db, "delete", "-y", groceries)
	if got := balanceOf(t, loadUser(t, db, email), "Cash"); got != "0" {
		t.Errorf("Cash balance after delete = %s, want 0", got)
	}
}

func TestFailedCommandsDoNotSave(t *testing.T) {
	db := setupEnv(t)
	const email = "bob@example.com"
	mustMM(t, db, "register", "-email", email, "-password", "Secret123")
	mustMM(t, db, "login", "-email", email, "-password", "Secret123")

	tests := []struct {
		name string
		args []string
	}{
		{"negative amount", []string{"add", "-amount", "-5", "-category", "Housing"}},
		{"missing category", []string{"add", "-amount", "5"}},
		{"unknown account", []string{"add", "-amount", "5", "-category", "Housing", "-account", "Nope"}},
		{"unknown transaction", []string{"delete", "-y", "nope"}},
		{"last account", []string{"delete-account", "-y", "Cash"}},
		{"income category", []string{"delete-category", "-y", "Income"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, status := mm(t, db, tt.args...); status != subcommands.ExitFailure {
				t.Errorf("status = %v, want failure", status)
			}
			d := loadUser(t, db, email)
			if d.NumTransactions() != 0 || d.NumAccounts() != 1 {
				t.Errorf("data changed: %d transactions, %d accounts", d.NumTransactions(), d.NumAccounts())
			}
			if _, ok := d.IncomeCategory(); !ok {
				t.Error("Income category was deleted")
			}
		})
	}
}

func TestDeleteAccount_RefusedBeforeConfirmation(t *testing.T) {
	db := setupEnv(t)
	const email = "dee@example.com"
	mustMM(t, db, "register", "-email", email, "-password", "Secret123")
	mustMM(t, db, "login", "-email", email, "-password", "Secret123")
	mustMM(t, db, "add-account", "-name", "Bank")
	mustMM(t, db, "add", "-amount", "10", "-category", "Housing", "-account", "Bank")

	stdin = strings.NewReader("y\n")
	defer func() { stdin = os.Stdin }()
	out, status := mm(t, db, "delete-account", "Bank")
	if status != subcommands.ExitFailure {
		t.Errorf("delete-account of an account in use: status = %v, want failure", status)
	}
	if strings.Contains(out, "Delete account") {
		t.Errorf("delete-account asked for confirmation before refusing: %q", out)
	}

	mustMM(t, db, "delete-account", "-y", "Cash")
	if d := loadUser(t, db, email); d.NumAccounts() != 1 {
		t.Errorf("NumAccounts() = %d, want 1", d.NumAccounts())
	}
}

func TestCategoriesAndGoals(t *testing.T) {
	db := setupEnv(t)
	const email = "cy@example.com"
	mustMM(t, db, "register", "-email", email, "-password", "Secret123")
	mustMM(t, db, "login", "-email", email, "-password", "Secret123")

	mustMM(t, db, "set-category", "-budget", "300", "Books")
	mustMM(t, db, "set-category", "-rename", "Reading", "Books")
	mustMM(t, db, "set-goal", "-target", "1000", "-saved", "250", "Bike")
	out := mustMM(t, db, "goals")
	if !strings.Contains(out, "Bike") || !strings.Contains(out, "25%") {
		t.Errorf("goals output = %q", out)
	}

	d := loadUser(t, db, email)
	c, ok := d.FindCategory("Reading")
	if !ok {
		t.Fatal("category Reading not found")
	}
	if c.Budget.String() != "300" || c.Icon != moneymind.DefaultIcon {
		t.Errorf("Reading = %+v, want budget 300 with the default icon", c)
	}

	mustMM(t, db, "delete-goal", "-y", "Bike")
	mustMM(t, db, "delete-category", "-y", "Reading")
	d = loadUser(t, db, email)
	if _, ok := d.FindGoal("Bike"); ok {
		t.Error("goal Bike not deleted")
	}
	if _, ok := d.FindCategory("Reading"); ok {
		t.Error("category Reading not deleted")
	}
}

func TestSessionRequired(t *testing.T) {
	db := setupEnv(t)
	if _, status := mm(t, db, "dashboard"); status != subcommands.ExitFailure {
		t.Errorf("dashboard without user: status = %v, want failure", status)
	}
}
