// Package auth registers users in a moneymind Database and logs them in.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/etnz/moneymind"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrWeakPassword       = errors.New("password must be 8+ chars with 1 uppercase & 1 number")
)

// cost of the password hashes. Tests lower it.
var cost = bcrypt.DefaultCost

// CheckPassword enforces the password policy: at least 8 characters, one of
// them an upper-case letter and one a digit.
func CheckPassword(password string) error {
	var upper, digit bool
	for _, r := range password {
		upper = upper || unicode.IsUpper(r)
		digit = digit || unicode.IsDigit(r)
	}
	if len([]rune(password)) < 8 || !upper || !digit {
		return ErrWeakPassword
	}
	return nil
}

// Register adds a new user with the default data. The user is not logged in.
func Register(db *moneymind.Database, name, email, password string, student bool) (*moneymind.User, error) {
	email = moneymind.NormalizeEmail(email)
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email %q: %w", email, moneymind.ErrInvalid)
	}
	if err := CheckPassword(password); err != nil {
		return nil, err
	}
	if db.FindUser(email) != nil {
		return nil, fmt.Errorf("%s: %w", email, ErrEmailTaken)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}
	u := &moneymind.User{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
		Data:  moneymind.DefaultUserData(student),
	}
	if err := SetPassword(u, password); err != nil {
		return nil, err
	}
	db.Users = append(db.Users, u)
	return u, nil
}

// Login checks the credentials and makes the user the active one. Data
// missing from old records is completed with defaults.
func Login(db *moneymind.Database, email, password string) (*moneymind.User, error) {
	u := db.FindUser(email)
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if u.Data == nil {
		u.Data = moneymind.NewUserData()
	}
	u.Data.Complete()
	db.Active = u.Email
	return u, nil
}

// Logout forgets the active user. It reports whether a user was logged in.
func Logout(db *moneymind.Database) bool {
	was := db.Active != ""
	db.Active = ""
	return was
}

// SetPassword replaces the password of u.
func SetPassword(u *moneymind.User, password string) error {
	if err := CheckPassword(password); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return fmt.Errorf("could not hash password: %w", err)
	}
	u.PasswordHash = string(hash)
	return nil
}
