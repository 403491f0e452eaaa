package moneymind

import (
	"strings"
)

// Version is the version of the persisted Database record.
const Version = 1

// User is a registered user and their data.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password"`
	Data         *UserData `json:"data"`
}

// Database is the single record holding every user.
type Database struct {
	Version int     `json:"version"`
	Active  string  `json:"active,omitempty"` // Active is the email of the logged in user.
	Users   []*User `json:"users"`

	// Repairs lists the users whose stored record could not be used as is
	// when the database was decoded.
	Repairs []error `json:"-"`
}

// NewDatabase returns an empty database.
func NewDatabase() *Database {
	return &Database{Version: Version, Users: []*User{}}
}

// NormalizeEmail returns the canonical form of an email used for lookups.
func NormalizeEmail(email string) string { return strings.ToLower(strings.TrimSpace(email)) }

// FindUser returns the user registered with this email, or nil.
func (db *Database) FindUser(email string) *User {
	email = NormalizeEmail(email)
	for _, u := range db.Users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

// ActiveUser returns the logged in user, or nil.
func (db *Database) ActiveUser() *User {
	if db.Active == "" {
		return nil
	}
	return db.FindUser(db.Active)
}
