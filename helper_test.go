package moneymind

import (
	"fmt"
	"testing"

	"github.com/etnz/moneymind/date"
	"github.com/shopspring/decimal"
)

// sequentialIDs makes newID return "id-1", "id-2", ... for the duration of the test.
func sequentialIDs(t *testing.T) {
	t.Helper()
	n := 0
	prev := newID
	newID = func() string { n++; return fmt.Sprintf("id-%d", n) }
	t.Cleanup(func() { newID = prev })
}

// dec is a helper for test to create decimals from const.
func dec(s string) decimal.Decimal { return MustD(s) }

// fixture is a dataset with two empty accounts and an expense category.
type fixture struct {
	data *UserData
	a, b Account
	food Category
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	d := NewUserData()
	a, err := d.CreateAccount("A", "Checking", decimal.Zero)
	if err != nil {
		t.Fatalf("CreateAccount(A) error = %v", err)
	}
	b, err := d.CreateAccount("B", "Savings", decimal.Zero)
	if err != nil {
		t.Fatalf("CreateAccount(B) error = %v", err)
	}
	if _, err := d.SaveCategory(Category{Name: IncomeCategoryName}); err != nil {
		t.Fatalf("SaveCategory(Income) error = %v", err)
	}
	food, err := d.SaveCategory(Category{Name: "Food", Budget: dec("1000")})
	if err != nil {
		t.Fatalf("SaveCategory(Food) error = %v", err)
	}
	return fixture{data: d, a: a, b: b, food: food}
}

func (f fixture) expense(t *testing.T, account string, amount string) Transaction {
	t.Helper()
	tx, err := NewExpense(date.MustParse("2025-07-10"), account, f.food.ID, dec(amount), "groceries", Online)
	if err != nil {
		t.Fatalf("NewExpense() error = %v", err)
	}
	return tx
}

func (f fixture) income(t *testing.T, account string, amount string) Transaction {
	t.Helper()
	tx, err := NewIncome(date.MustParse("2025-07-01"), account, dec(amount), "salary", Online)
	if err != nil {
		t.Fatalf("NewIncome() error = %v", err)
	}
	return tx
}

func (f fixture) balance(t *testing.T, id string) decimal.Decimal {
	t.Helper()
	a, ok := f.data.Account(id)
	if !ok {
		t.Fatalf("account %q not found", id)
	}
	return a.Balance
}

func assertBalance(t *testing.T, f fixture, id string, want string) {
	t.Helper()
	if got := f.balance(t, id); !got.Equal(dec(want)) {
		t.Errorf("balance of %s = %s, want %s", id, got, want)
	}
}

func mustUpsert(t *testing.T, d *UserData, tx Transaction) Transaction {
	t.Helper()
	got, err := d.UpsertTransaction(tx)
	if err != nil {
		t.Fatalf("UpsertTransaction(%+v) error = %v", tx, err)
	}
	return got
}
