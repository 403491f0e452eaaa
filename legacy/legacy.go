// Package legacy imports the users of the MoneyMind browser application.
//
// The browser application kept its whole database as a JSON value in the
// "MoneyMindDB_v7" local storage key:
//
//	{"users": [{"id", "name", "email", "password", "accounts", "transactions",
//	            "categories", "goals", "settings"}]}
//
// Amounts are JSON numbers and accounts only store their current balance.
package legacy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/moneymind"
	"github.com/etnz/moneymind/date"
	"github.com/etnz/moneymind/logger"
	"github.com/shopspring/decimal"
)

// StorageKey is the local storage key of the browser database.
const StorageKey = "MoneyMindDB_v7"

type user struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Accounts     []account     `json:"accounts"`
	Transactions []transaction `json:"transactions"`
	Categories   []category    `json:"categories"`
	Goals        []goal        `json:"goals"`
	Settings     *settings     `json:"settings"`
}

type account struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Type    string          `json:"type"`
	Balance decimal.Decimal `json:"balance"`
}

type transaction struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"accountId"`
	CategoryID  string          `json:"categoryId"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Method      string          `json:"method"`
}

type category struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Budget decimal.Decimal `json:"budget"`
	Color  string          `json:"color"`
	Icon   string          `json:"icon"`
}

type goal struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Color         string          `json:"color"`
}

type settings struct {
	Currency       string `json:"currency"`
	DefaultAccount string `json:"defaultAccount"`
}

// decode reads the dump keeping numbers as literals.
func decode(r io.Reader) (any, error) {
	var v any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("could not decode %s dump: %w", StorageKey, err)
	}
	return v, nil
}

// list returns the jsonpath result as a list.
func list(path string, v any) ([]any, error) {
	res, err := jsonpath.Get(path, v)
	if err != nil {
		return nil, fmt.Errorf("error querying %q: %w", path, err)
	}
	if l, ok := res.([]any); ok {
		return l, nil
	}
	return []any{res}, nil
}

// Emails lists the emails of the users in the dump.
func Emails(r io.Reader) ([]string, error) {
	v, err := decode(r)
	if err != nil {
		return nil, err
	}
	res, err := list("$.users[*].email", v)
	if err != nil {
		return nil, err
	}
	var emails []string
	for _, e := range res {
		if s, ok := e.(string); ok {
			emails = append(emails, s)
		}
	}
	return emails, nil
}

// Import converts the user registered with email in the dump. The returned
// user has no password: browser hashes cannot be verified and a new password
// must be set.
//
// Each account opening balance is derived from its stored balance minus the
// effect of its transactions, so that balances are unchanged by the import.
// Transactions that cannot be represented (unknown account, no amount) are
// skipped with a warning.
func Import(ctx context.Context, r io.Reader, email string) (*moneymind.User, error) {
	v, err := decode(r)
	if err != nil {
		return nil, err
	}
	res, err := list(fmt.Sprintf("$.users[?(@.email==%s)]", strconv.Quote(email)), v)
	if err != nil {
		return nil, err
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("user %q not in %s: %w", email, StorageKey, moneymind.ErrNotFound)
	}
	raw, err := json.Marshal(res[0])
	if err != nil {
		return nil, err
	}
	var u user
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("user %q has unexpected data: %w", email, err)
	}
	data, err := convert(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("could not import user %q: %w", email, err)
	}
	return &moneymind.User{
		ID:    u.ID,
		Name:  u.Name,
		Email: moneymind.NormalizeEmail(u.Email),
		Data:  data,
	}, nil
}

func convert(ctx context.Context, u user) (*moneymind.UserData, error) {
	log := logger.FromContext(ctx)

	balances := make(map[string]decimal.Decimal)
	for _, a := range u.Accounts {
		balances[a.ID] = a.Balance
	}

	effects := make(map[string]decimal.Decimal)
	var txs []moneymind.Transaction
	for _, t := range u.Transactions {
		if _, ok := balances[t.AccountID]; !ok {
			log.Warn().Str("transaction", t.ID).Str("account", t.AccountID).Msg("skipping transaction of an unknown account")
			continue
		}
		if !t.Amount.IsPositive() {
			log.Warn().Str("transaction", t.ID).Msg("skipping transaction without amount")
			continue
		}
		typ, err := moneymind.ParseTxType(t.Type)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: %w", t.ID, err)
		}
		method, err := moneymind.ParseMethod(t.Method)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: %w", t.ID, err)
		}
		day, err := date.Parse(t.Date)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: %w", t.ID, err)
		}
		tx := moneymind.Transaction{
			ID:          t.ID,
			Account:     t.AccountID,
			Category:    t.CategoryID,
			Type:        typ,
			Amount:      t.Amount,
			Date:        day,
			Description: t.Description,
			Method:      method,
		}
		effects[tx.Account] = effects[tx.Account].Add(tx.Effect())
		txs = append(txs, tx)
	}

	accounts := make([]moneymind.Account, 0, len(u.Accounts))
	for _, a := range u.Accounts {
		accounts = append(accounts, moneymind.Account{
			ID:      a.ID,
			Name:    a.Name,
			Type:    a.Type,
			Opening: a.Balance.Sub(effects[a.ID]),
			Balance: a.Balance,
		})
	}
	categories := make([]moneymind.Category, 0, len(u.Categories))
	for _, c := range u.Categories {
		categories = append(categories, moneymind.Category{ID: c.ID, Name: c.Name, Budget: c.Budget, Color: c.Color, Icon: c.Icon})
	}
	goals := make([]moneymind.Goal, 0, len(u.Goals))
	for _, g := range u.Goals {
		goals = append(goals, moneymind.Goal{ID: g.ID, Name: g.Name, Target: g.TargetAmount, Saved: g.CurrentAmount, Color: g.Color})
	}
	var s moneymind.Settings
	if u.Settings != nil {
		s = moneymind.Settings{Currency: u.Settings.Currency, DefaultAccount: u.Settings.DefaultAccount}
	}

	d, err := moneymind.Assemble(s, accounts, txs, categories, goals)
	if err != nil {
		return nil, err
	}
	if d.Complete() {
		log.Info().Msg("completed imported data with defaults")
	}
	return d, nil
}
