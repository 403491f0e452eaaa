package auth

import (
	"errors"
	"testing"

	"github.com/etnz/moneymind"
	"golang.org/x/crypto/bcrypt"
)

func init() { cost = bcrypt.MinCost }

func TestCheckPassword(t *testing.T) {
	testCases := []struct {
		password string
		ok       bool
	}{
		{"Secret123", true},
		{"ABCDEFG1", true},
		{"Short1A", false},
		{"alllowercase1", false},
		{"NoDigitsHere", false},
		{"", false},
	}
	for _, tc := range testCases {
		t.Run(tc.password, func(t *testing.T) {
			err := CheckPassword(tc.password)
			if (err == nil) != tc.ok {
				t.Errorf("CheckPassword(%q) = %v, want ok=%v", tc.password, err, tc.ok)
			}
		})
	}
}

func TestRegister(t *testing.T) {
	db := moneymind.NewDatabase()
	u, err := Register(db, "", " Ann@Example.com", "Secret123", true)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if u.Email != "ann@example.com" || u.Name != "ann" {
		t.Errorf("Register() = %+v", u)
	}
	if u.PasswordHash == "Secret123" || u.PasswordHash == "" {
		t.Errorf("password is not hashed: %q", u.PasswordHash)
	}
	if _, ok := u.Data.FindCategory("Pocket Money"); !ok {
		t.Errorf("student user has no student categories")
	}
	if db.Active != "" {
		t.Errorf("Register() logged the user in")
	}

	testCases := []struct {
		name     string
		email    string
		password string
		want     error
	}{
		{"duplicate", "ANN@example.com", "Secret123", ErrEmailTaken},
		{"weak", "bob@example.com", "secret", ErrWeakPassword},
		{"bad email", "bob", "Secret123", moneymind.ErrInvalid},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Register(db, "Bob", tc.email, tc.password, false); !errors.Is(err, tc.want) {
				t.Errorf("Register() error = %v, want %v", err, tc.want)
			}
		})
	}
	if len(db.Users) != 1 {
		t.Errorf("len(Users) = %d, want 1", len(db.Users))
	}
}

func TestLogin(t *testing.T) {
	db := moneymind.NewDatabase()
	if _, err := Register(db, "Ann", "ann@example.com", "Secret123", false); err != nil {
		t.Fatal(err)
	}

	if _, err := Login(db, "ann@example.com", "Secret124"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login(wrong password) error = %v, want %v", err, ErrInvalidCredentials)
	}
	if _, err := Login(db, "bob@example.com", "Secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login(unknown) error = %v, want %v", err, ErrInvalidCredentials)
	}
	if db.Active != "" {
		t.Fatalf("failed logins set Active to %q", db.Active)
	}

	u, err := Login(db, "Ann@example.com", "Secret123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if db.ActiveUser() != u {
		t.Errorf("ActiveUser() = %v, want %v", db.ActiveUser(), u)
	}
	if !Logout(db) || db.ActiveUser() != nil {
		t.Errorf("Logout() did not clear the active user")
	}
	if Logout(db) {
		t.Errorf("second Logout() = true, want false")
	}
}

func TestLogin_CompletesData(t *testing.T) {
	db := moneymind.NewDatabase()
	u, err := Register(db, "Ann", "ann@example.com", "Secret123", false)
	if err != nil {
		t.Fatal(err)
	}
	u.Data = nil

	u, err = Login(db, "ann@example.com", "Secret123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if u.Data.NumAccounts() != 1 || u.Data.Settings().DefaultAccount == "" {
		t.Errorf("Login() did not complete the data: %+v", u.Data.Settings())
	}
}

func TestSetPassword(t *testing.T) {
	db := moneymind.NewDatabase()
	u, err := Register(db, "Ann", "ann@example.com", "Secret123", false)
	if err != nil {
		t.Fatal(err)
	}
	if err := SetPassword(u, "weak"); !errors.Is(err, ErrWeakPassword) {
		t.Errorf("SetPassword(weak) error = %v, want %v", err, ErrWeakPassword)
	}
	if err := SetPassword(u, "Another456"); err != nil {
		t.Fatalf("SetPassword() error = %v", err)
	}
	if _, err := Login(db, "ann@example.com", "Secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login(old password) error = %v, want %v", err, ErrInvalidCredentials)
	}
	if _, err := Login(db, "ann@example.com", "Another456"); err != nil {
		t.Errorf("Login(new password) error = %v", err)
	}
}
