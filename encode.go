package moneymind

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeDatabase decodes a Database record. It fails on malformed records
// and unknown versions.
//
// Users are decoded one by one: a user whose data is inconsistent (duplicate
// ids, dangling references) keeps its identity and password but gets an empty
// dataset, and a user without a readable email is dropped. Each repair is
// reported in Database.Repairs. Account balances are not verified here, see
// UserData.Check.
func DecodeDatabase(r io.Reader) (*Database, error) {
	var rec struct {
		Version int               `json:"version"`
		Active  string            `json:"active"`
		Users   []json.RawMessage `json:"users"`
	}
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("could not decode database: %w", err)
	}
	if rec.Version != Version {
		return nil, fmt.Errorf("unsupported database version %d, want %d", rec.Version, Version)
	}
	db := &Database{Version: rec.Version, Active: rec.Active, Users: []*User{}}
	for i, raw := range rec.Users {
		u, err := decodeUser(raw)
		if err != nil {
			db.Repairs = append(db.Repairs, fmt.Errorf("user #%d: %w", i, err))
		}
		if u != nil {
			db.Users = append(db.Users, u)
		}
	}
	return db, nil
}

// decodeUser decodes a user record. When only its data is unusable, it
// returns the user with a fresh dataset and the reason.
func decodeUser(raw json.RawMessage) (*User, error) {
	var u User
	err := json.Unmarshal(raw, &u)
	if err == nil && u.Email != "" {
		u.Email = NormalizeEmail(u.Email)
		if u.Data == nil {
			u.Data = NewUserData()
		}
		return &u, nil
	}

	var head struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		Email        string `json:"email"`
		PasswordHash string `json:"password"`
	}
	if herr := json.Unmarshal(raw, &head); herr != nil || head.Email == "" {
		if err == nil {
			err = errors.New("missing email")
		}
		return nil, fmt.Errorf("unreadable user dropped: %w", err)
	}
	data := NewUserData()
	data.Complete()
	email := NormalizeEmail(head.Email)
	return &User{
		ID:           head.ID,
		Name:         head.Name,
		Email:        email,
		PasswordHash: head.PasswordHash,
		Data:         data,
	}, fmt.Errorf("data of %s reset: %w", email, err)
}

// EncodeDatabase writes the Database record as indented JSON.
func EncodeDatabase(w io.Writer, db *Database) error {
	db.Version = Version
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(db); err != nil {
		return fmt.Errorf("could not encode database: %w", err)
	}
	return nil
}
