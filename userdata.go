package moneymind

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// newID returns a fresh identifier for an entity.
var newID = uuid.NewString

type identified interface {
	id() string
}

// collection keeps entities in insertion order and indexes them by id.
type collection[T identified] struct {
	items []T
	index map[string]int // position of each id in items
}

func (c *collection[T]) get(id string) (T, bool) {
	i, ok := c.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return c.items[i], true
}

// put replaces the item with the same id in place, or appends it.
func (c *collection[T]) put(v T) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if i, ok := c.index[v.id()]; ok {
		c.items[i] = v
		return
	}
	c.index[v.id()] = len(c.items)
	c.items = append(c.items, v)
}

func (c *collection[T]) remove(id string) (T, bool) {
	i, ok := c.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	v := c.items[i]
	c.items = slices.Delete(c.items, i, i+1)
	delete(c.index, id)
	for j := i; j < len(c.items); j++ {
		c.index[c.items[j].id()] = j
	}
	return v, true
}

func (c *collection[T]) len() int { return len(c.items) }

func (c *collection[T]) all() iter.Seq[T] { return slices.Values(c.items) }

func (c *collection[T]) clone() collection[T] {
	n := collection[T]{items: slices.Clone(c.items), index: make(map[string]int, len(c.index))}
	for k, v := range c.index {
		n.index[k] = v
	}
	return n
}

// UserData is the whole financial dataset of a user. It is the aggregate the
// ledger operations mutate. Its zero value is an empty dataset.
type UserData struct {
	accounts     collection[Account]
	transactions collection[Transaction]
	categories   collection[Category]
	goals        collection[Goal]
	settings     Settings
}

// NewUserData returns an empty dataset with the default currency.
func NewUserData() *UserData {
	return &UserData{settings: Settings{Currency: DefaultCurrency}}
}

// Assemble builds a dataset from existing entities, keeping their ids and
// order. It checks that ids are unique and that transactions reference
// existing accounts. Balances are taken as is, use Check to verify them.
func Assemble(settings Settings, accounts []Account, transactions []Transaction, categories []Category, goals []Goal) (*UserData, error) {
	d := &UserData{settings: settings}
	if err := fill(&d.accounts, "account", accounts); err != nil {
		return nil, err
	}
	if err := fill(&d.categories, "category", categories); err != nil {
		return nil, err
	}
	if err := fill(&d.goals, "goal", goals); err != nil {
		return nil, err
	}
	if err := fill(&d.transactions, "transaction", transactions); err != nil {
		return nil, err
	}
	for tx := range d.transactions.all() {
		if _, ok := d.accounts.get(tx.Account); !ok {
			return nil, fmt.Errorf("transaction %s references account %q: %w", tx.ID, tx.Account, ErrInvalidAccount)
		}
	}
	if d.settings.DefaultAccount != "" {
		if _, ok := d.accounts.get(d.settings.DefaultAccount); !ok {
			d.settings.DefaultAccount = ""
		}
	}
	return d, nil
}

func fill[T identified](c *collection[T], kind string, items []T) error {
	for _, v := range items {
		if v.id() == "" {
			return fmt.Errorf("%s without id: %w", kind, ErrInvalid)
		}
		if _, dup := c.get(v.id()); dup {
			return fmt.Errorf("duplicate %s id %q: %w", kind, v.id(), ErrInvalid)
		}
		c.put(v)
	}
	return nil
}

// Clone returns a deep copy of d.
func (d *UserData) Clone() *UserData {
	return &UserData{
		accounts:     d.accounts.clone(),
		transactions: d.transactions.clone(),
		categories:   d.categories.clone(),
		goals:        d.goals.clone(),
		settings:     d.settings,
	}
}

// Settings returns the user preferences.
func (d *UserData) Settings() Settings { return d.settings }

// Currency returns the currency used to display amounts.
func (d *UserData) Currency() string {
	if d.settings.Currency == "" {
		return DefaultCurrency
	}
	return d.settings.Currency
}

// Accounts iterates over accounts in creation order.
func (d *UserData) Accounts() iter.Seq[Account] { return d.accounts.all() }

// Account returns the account with this id.
func (d *UserData) Account(id string) (Account, bool) { return d.accounts.get(id) }

// NumAccounts returns the number of accounts.
func (d *UserData) NumAccounts() int { return d.accounts.len() }

// Transactions iterates over transactions in creation order.
func (d *UserData) Transactions() iter.Seq[Transaction] { return d.transactions.all() }

// Transaction returns the transaction with this id.
func (d *UserData) Transaction(id string) (Transaction, bool) { return d.transactions.get(id) }

// NumTransactions returns the number of transactions.
func (d *UserData) NumTransactions() int { return d.transactions.len() }

// Categories iterates over categories in creation order.
func (d *UserData) Categories() iter.Seq[Category] { return d.categories.all() }

// Category returns the category with this id.
func (d *UserData) Category(id string) (Category, bool) { return d.categories.get(id) }

// Goals iterates over goals in creation order.
func (d *UserData) Goals() iter.Seq[Goal] { return d.goals.all() }

// Goal returns the goal with this id.
func (d *UserData) Goal(id string) (Goal, bool) { return d.goals.get(id) }

// IncomeCategory returns the category income transactions are attributed to, if any.
func (d *UserData) IncomeCategory() (Category, bool) {
	for c := range d.categories.all() {
		if c.IsIncome() {
			return c, true
		}
	}
	return Category{}, false
}

// FindAccount resolves an account by id or, case-insensitively, by name.
func (d *UserData) FindAccount(ref string) (Account, bool) {
	if a, ok := d.accounts.get(ref); ok {
		return a, true
	}
	return find(d.accounts.all(), ref, func(a Account) string { return a.Name })
}

// FindCategory resolves a category by id or, case-insensitively, by name.
func (d *UserData) FindCategory(ref string) (Category, bool) {
	if c, ok := d.categories.get(ref); ok {
		return c, true
	}
	return find(d.categories.all(), ref, func(c Category) string { return c.Name })
}

// FindGoal resolves a goal by id or, case-insensitively, by name.
func (d *UserData) FindGoal(ref string) (Goal, bool) {
	if g, ok := d.goals.get(ref); ok {
		return g, true
	}
	return find(d.goals.all(), ref, func(g Goal) string { return g.Name })
}

func find[T any](items iter.Seq[T], name string, nameOf func(T) string) (T, bool) {
	name = strings.TrimSpace(name)
	for v := range items {
		if strings.EqualFold(nameOf(v), name) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// wire is the persisted shape of a UserData.
type wire struct {
	Settings     Settings      `json:"settings"`
	Accounts     []Account     `json:"accounts"`
	Transactions []Transaction `json:"transactions"`
	Categories   []Category    `json:"categories"`
	Goals        []Goal        `json:"goals"`
}

// MarshalJSON implements the json.Marshaler interface for UserData.
func (d *UserData) MarshalJSON() ([]byte, error) {
	return json.Marshal(wire{
		Settings:     d.settings,
		Accounts:     nonNil(d.accounts.items),
		Transactions: nonNil(d.transactions.items),
		Categories:   nonNil(d.categories.items),
		Goals:        nonNil(d.goals.items),
	})
}

// UnmarshalJSON implements the json.Unmarshaler interface for UserData.
func (d *UserData) UnmarshalJSON(data []byte) error {
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	v, err := Assemble(w.Settings, w.Accounts, w.Transactions, w.Categories, w.Goals)
	if err != nil {
		return err
	}
	*d = *v
	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
