package moneymind

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/etnz/moneymind/date"
)

func TestDatabase_RoundTrip(t *testing.T) {
	sequentialIDs(t)
	f := newFixture(t)
	mustUpsert(t, f.data, f.income(t, f.a.ID, "1200.50"))
	mustUpsert(t, f.data, f.expense(t, f.b.ID, "99.99"))
	if _, err := f.data.SaveGoal(Goal{Name: "Trip", Target: dec("5000"), Saved: dec("10")}); err != nil {
		t.Fatal(err)
	}

	db := NewDatabase()
	db.Active = "ann@example.com"
	db.Users = append(db.Users, &User{ID: "u1", Name: "Ann", Email: "ann@example.com", PasswordHash: "hash", Data: f.data})

	var buf bytes.Buffer
	if err := EncodeDatabase(&buf, db); err != nil {
		t.Fatalf("EncodeDatabase() error = %v", err)
	}
	first := buf.String()

	got, err := DecodeDatabase(strings.NewReader(first))
	if err != nil {
		t.Fatalf("DecodeDatabase() error = %v", err)
	}
	u := got.ActiveUser()
	if u == nil {
		t.Fatalf("ActiveUser() = nil")
	}
	if err := u.Data.Check(); err != nil {
		t.Errorf("Check() after decode = %v", err)
	}
	assertBalance(t, fixture{data: u.Data}, f.a.ID, "1200.50")
	assertBalance(t, fixture{data: u.Data}, f.b.ID, "-99.99")
	if u.Data.Settings() != f.data.Settings() {
		t.Errorf("Settings() = %+v, want %+v", u.Data.Settings(), f.data.Settings())
	}

	buf.Reset()
	if err := EncodeDatabase(&buf, got); err != nil {
		t.Fatalf("EncodeDatabase() error = %v", err)
	}
	if buf.String() != first {
		t.Errorf("encoding is not stable:\n%s\nvs\n%s", buf.String(), first)
	}
}

func TestDecodeDatabase_Errors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"malformed", `{"version":1,`},
		{"unknown version", `{"version":7,"users":[]}`},
		{"users not a list", `{"version":1,"users":{}}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeDatabase(strings.NewReader(tc.input)); err == nil {
				t.Errorf("DecodeDatabase() error = nil, want an error")
			}
		})
	}
}

func TestDecodeDatabase_Repairs(t *testing.T) {
	const good = `{"id":"u1","name":"Ann","email":"ann@example.com","password":"h1","data":{"accounts":[{"id":"a","name":"A","type":"T","balance":5}]}}`
	testCases := []struct {
		name     string
		user     string
		wantUser bool // the damaged user is kept with fresh data
	}{
		{"null user", `null`, false},
		{"no email", `{"name":"Nobody"}`, false},
		{"dangling account", `{"id":"u2","email":"bob@example.com","password":"h2","data":{"accounts":[],"transactions":[{"id":"t1","account":"x","type":"income","amount":1,"date":"2025-01-01","method":"online"}]}}`, true},
		{"duplicate ids", `{"id":"u2","email":"bob@example.com","password":"h2","data":{"accounts":[{"id":"a","name":"A","type":"T"},{"id":"a","name":"B","type":"T"}]}}`, true},
		{"data not an object", `{"id":"u2","email":"bob@example.com","password":"h2","data":[]}`, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			input := `{"version":1,"active":"ann@example.com","users":[` + good + `,` + tc.user + `]}`
			db, err := DecodeDatabase(strings.NewReader(input))
			if err != nil {
				t.Fatalf("DecodeDatabase() error = %v", err)
			}
			if len(db.Repairs) != 1 {
				t.Errorf("Repairs = %v, want one repair", db.Repairs)
			}

			ann := db.ActiveUser()
			if ann == nil || ann.Data.NumAccounts() != 1 {
				t.Fatalf("ActiveUser() = %+v, want Ann with her account", ann)
			}
			if a, _ := ann.Data.Account("a"); a.Balance.String() != "5" {
				t.Errorf("Ann balance = %s, want 5", a.Balance)
			}

			bob := db.FindUser("bob@example.com")
			if (bob != nil) != tc.wantUser {
				t.Fatalf("FindUser(bob) = %+v, want kept = %v", bob, tc.wantUser)
			}
			if !tc.wantUser {
				if len(db.Users) != 1 {
					t.Errorf("len(Users) = %d, want 1", len(db.Users))
				}
				return
			}
			if bob.PasswordHash != "h2" || bob.ID != "u2" {
				t.Errorf("bob = %+v, want the identity kept", bob)
			}
			if bob.Data.NumAccounts() != 1 || bob.Data.NumTransactions() != 0 || bob.Data.Currency() != DefaultCurrency {
				t.Errorf("bob data = %d accounts, %d transactions, want a fresh completed dataset", bob.Data.NumAccounts(), bob.Data.NumTransactions())
			}
		})
	}
}

func TestDecodeDatabase_Normalizes(t *testing.T) {
	db, err := DecodeDatabase(strings.NewReader(`{"version":1,"users":[{"email":" Ann@Example.COM ","name":"Ann"}]}`))
	if err != nil {
		t.Fatalf("DecodeDatabase() error = %v", err)
	}
	u := db.FindUser("ann@example.com")
	if u == nil {
		t.Fatalf("FindUser() = nil")
	}
	if u.Data == nil || u.Data.NumAccounts() != 0 {
		t.Errorf("Data = %v, want an empty dataset", u.Data)
	}
	if db.ActiveUser() != nil {
		t.Errorf("ActiveUser() = %v, want nil", db.ActiveUser())
	}
}

func TestTransaction_MarshalJSON(t *testing.T) {
	tx := Transaction{ID: "t1", Account: "a1", Type: Expense, Category: "c1", Amount: dec("12.5"), Date: date.MustParse("2025-03-04"), Method: Cash}
	got, err := json.Marshal(tx)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"id":"t1","date":"2025-03-04","type":"expense","amount":12.5,"account":"a1","category":"c1","method":"cash"}`
	if string(got) != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}

func TestAssemble(t *testing.T) {
	accounts := []Account{{ID: "a", Name: "A", Type: "T"}}
	txs := []Transaction{{ID: "t", Account: "a", Type: Income, Amount: dec("1"), Date: date.MustParse("2025-01-01"), Method: Online}}

	d, err := Assemble(Settings{Currency: "USD", DefaultAccount: "gone"}, accounts, txs, nil, nil)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if d.Settings().DefaultAccount != "" {
		t.Errorf("DefaultAccount = %q, want it cleared", d.Settings().DefaultAccount)
	}
	// the balance was not adjusted
	if err := d.Check(); !errors.Is(err, ErrUnbalanced) {
		t.Errorf("Check() = %v, want %v", err, ErrUnbalanced)
	}

	if _, err := Assemble(Settings{}, []Account{{Name: "no id", Type: "T"}}, nil, nil, nil); !errors.Is(err, ErrInvalid) {
		t.Errorf("Assemble(no id) error = %v, want %v", err, ErrInvalid)
	}
}

func TestUserData_Clone(t *testing.T) {
	f := newFixture(t)
	c := f.data.Clone()
	mustUpsert(t, c, f.income(t, f.a.ID, "10"))
	if _, err := c.CreateAccount("C", "T", dec("0")); err != nil {
		t.Fatal(err)
	}
	assertBalance(t, f, f.a.ID, "0")
	if f.data.NumTransactions() != 0 || f.data.NumAccounts() != 2 {
		t.Errorf("mutating the clone changed the original")
	}
}

func TestDefaultUserData(t *testing.T) {
	for _, student := range []bool{false, true} {
		d := DefaultUserData(student)
		if d.NumAccounts() != 1 {
			t.Errorf("NumAccounts() = %d, want 1", d.NumAccounts())
		}
		cash, ok := d.FindAccount("cash")
		if !ok || d.Settings().DefaultAccount != cash.ID {
			t.Errorf("default account = %q, want the Cash account", d.Settings().DefaultAccount)
		}
		if _, ok := d.IncomeCategory(); ok == student {
			t.Errorf("student=%v: IncomeCategory() found = %v", student, ok)
		}
		if _, ok := d.FindCategory("Pocket Money"); ok != student {
			t.Errorf("student=%v: Pocket Money found = %v", student, ok)
		}
		if d.Currency() != DefaultCurrency {
			t.Errorf("Currency() = %q, want %q", d.Currency(), DefaultCurrency)
		}
	}
}

func TestComplete(t *testing.T) {
	var d UserData
	if !d.Complete() {
		t.Fatalf("Complete() = false, want true")
	}
	if d.Currency() != DefaultCurrency || d.NumAccounts() != 1 || d.Settings().DefaultAccount == "" {
		t.Errorf("Complete() left %+v", d.Settings())
	}
	if d.Complete() {
		t.Errorf("second Complete() = true, want false")
	}
}
