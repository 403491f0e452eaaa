// Package session ties the logged in user to the store.
//
// A Session applies one mutation at a time to the user data and saves the
// whole database after it. When the mutation or the save fails, the user data
// is restored to what it was before.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/etnz/moneymind"
	"github.com/etnz/moneymind/logger"
	"github.com/etnz/moneymind/store"
)

// ErrNoUser is returned when no user is logged in.
var ErrNoUser = errors.New("no user logged in, run 'mm login' first")

// Session is the active user of a store.
type Session struct {
	store store.Store
	db    *moneymind.Database
	user  *moneymind.User
}

// Open loads the database and selects the user with this email, or the
// active user when email is empty.
func Open(ctx context.Context, s store.Store, email string) (*Session, error) {
	db, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	var u *moneymind.User
	if email != "" {
		u = db.FindUser(email)
		if u == nil {
			return nil, fmt.Errorf("user %q: %w", email, moneymind.ErrNotFound)
		}
	} else if u = db.ActiveUser(); u == nil {
		return nil, ErrNoUser
	}
	if u.Data == nil {
		u.Data = moneymind.NewUserData()
	}
	if u.Data.Complete() {
		log := logger.FromContext(ctx)
		log.Debug().Str("user", u.Email).Msg("completed user data with defaults")
	}
	return &Session{store: s, db: db, user: u}, nil
}

// User returns the session user.
func (s *Session) User() *moneymind.User { return s.user }

// Data returns the session user data. It must not be mutated outside Apply.
func (s *Session) Data() *moneymind.UserData { return s.user.Data }

// Database returns the loaded database.
func (s *Session) Database() *moneymind.Database { return s.db }

// Apply runs fn on the user data and saves the database. If fn or the save
// fails, the user data is left as it was before Apply.
func (s *Session) Apply(ctx context.Context, fn func(d *moneymind.UserData) error) error {
	backup := s.user.Data.Clone()
	if err := fn(s.user.Data); err != nil {
		s.user.Data = backup
		return err
	}
	if err := s.store.Save(ctx, s.db); err != nil {
		s.user.Data = backup
		return fmt.Errorf("changes not saved: %w", err)
	}
	log := logger.FromContext(ctx)
	log.Debug().Str("user", s.user.Email).Msg("saved")
	return nil
}
