package moneymind

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// The ledger operations below keep, for every account A:
//
//	A.Balance == A.Opening + Σ t.Effect() for t in transactions where t.Account == A.ID
//
// Each operation validates everything first and only then mutates, so a
// returned error means nothing changed.

// UpsertTransaction records a transaction. A candidate with an empty ID is
// created with a fresh ID, otherwise it replaces the existing transaction with
// that ID.
//
// On update, the effect of the original transaction is always reversed on the
// account that owned it, then the effect of the candidate is applied to its
// (possibly different) account.
//
// Income transactions are attributed to the Income category when there is one.
// It returns the transaction as stored.
func (d *UserData) UpsertTransaction(candidate Transaction) (Transaction, error) {
	if _, ok := d.accounts.get(candidate.Account); !ok {
		return candidate, fmt.Errorf("account %q does not exist: %w", candidate.Account, ErrInvalidAccount)
	}

	switch candidate.Type {
	case Income:
		if income, ok := d.IncomeCategory(); ok {
			candidate.Category = income.ID
		} else if candidate.Category != "" {
			if _, ok := d.categories.get(candidate.Category); !ok {
				return candidate, fmt.Errorf("category %q does not exist: %w", candidate.Category, ErrInvalidCategory)
			}
		}
	case Expense:
		if c, ok := d.categories.get(candidate.Category); !ok {
			return candidate, fmt.Errorf("category %q does not exist: %w", candidate.Category, ErrInvalidCategory)
		} else if c.IsIncome() {
			return candidate, fmt.Errorf("an expense cannot use the %s category: %w", c.Name, ErrInvalidCategory)
		}
	}
	if err := candidate.Validate(); err != nil {
		return candidate, err
	}

	var original Transaction
	updating := candidate.ID != ""
	if updating {
		var ok bool
		if original, ok = d.transactions.get(candidate.ID); !ok {
			return candidate, fmt.Errorf("transaction %q: %w", candidate.ID, ErrNotFound)
		}
	}

	// Validation is over, from here on the operation cannot fail.
	if updating {
		d.adjust(original.Account, original.Effect().Neg())
	} else {
		candidate.ID = newID()
	}
	d.adjust(candidate.Account, candidate.Effect())
	d.transactions.put(candidate)
	return candidate, nil
}

// adjust adds delta to the balance of the account, if it exists.
func (d *UserData) adjust(account string, delta decimal.Decimal) {
	a, ok := d.accounts.get(account)
	if !ok {
		return
	}
	a.Balance = a.Balance.Add(delta)
	d.accounts.put(a)
}

// DeleteTransaction removes a transaction and reverses its effect on its
// account if that account still exists. Deleting an unknown transaction is a
// no-op and returns false.
func (d *UserData) DeleteTransaction(id string) (Transaction, bool) {
	tx, ok := d.transactions.get(id)
	if !ok {
		return Transaction{}, false
	}
	d.adjust(tx.Account, tx.Effect().Neg())
	d.transactions.remove(id)
	return tx, true
}

// CreateAccount appends a new account whose balance is the opening balance.
func (d *UserData) CreateAccount(name, kind string, opening decimal.Decimal) (Account, error) {
	a, err := NewAccount(name, kind, opening)
	if err != nil {
		return a, err
	}
	if _, dup := d.FindAccount(a.Name); dup {
		return a, fmt.Errorf("account %q already exists: %w", a.Name, ErrInvalid)
	}
	a.ID = newID()
	d.accounts.put(a)
	if d.settings.DefaultAccount == "" {
		d.settings.DefaultAccount = a.ID
	}
	return a, nil
}

// UpdateAccount renames or retypes an account. The balance is never changed
// by an edit, only transactions move it.
func (d *UserData) UpdateAccount(id, name, kind string) (Account, error) {
	a, ok := d.accounts.get(id)
	if !ok {
		return a, fmt.Errorf("account %q: %w", id, ErrNotFound)
	}
	edited := a
	edited.Name = strings.TrimSpace(name)
	edited.Type = strings.TrimSpace(kind)
	if err := edited.Validate(); err != nil {
		return a, err
	}
	if other, dup := d.FindAccount(edited.Name); dup && other.ID != id {
		return a, fmt.Errorf("account %q already exists: %w", edited.Name, ErrInvalid)
	}
	d.accounts.put(edited)
	return edited, nil
}

// CanDeleteAccount reports why DeleteAccount(id) would be refused, or nil.
func (d *UserData) CanDeleteAccount(id string) error {
	a, ok := d.accounts.get(id)
	if !ok {
		return fmt.Errorf("account %q: %w", id, ErrNotFound)
	}
	for tx := range d.transactions.all() {
		if tx.Account == id {
			return fmt.Errorf("cannot delete account %q: %w", a.Name, ErrAccountInUse)
		}
	}
	if d.accounts.len() == 1 {
		return fmt.Errorf("cannot delete account %q: %w", a.Name, ErrLastAccount)
	}
	return nil
}

// DeleteAccount removes an account that no transaction references and that is
// not the only account. If it was the default account, the default moves to
// another account.
func (d *UserData) DeleteAccount(id string) error {
	if err := d.CanDeleteAccount(id); err != nil {
		return err
	}
	d.accounts.remove(id)
	if d.settings.DefaultAccount == id {
		d.settings.DefaultAccount = ""
		for other := range d.accounts.all() {
			d.settings.DefaultAccount = other.ID
			break
		}
	}
	return nil
}

// SaveCategory creates a category when its ID is empty, or updates the
// category with that ID.
func (d *UserData) SaveCategory(c Category) (Category, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Icon == "" {
		c.Icon = DefaultIcon
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	if other, dup := d.FindCategory(c.Name); dup && other.ID != c.ID {
		return c, fmt.Errorf("category %q already exists: %w", c.Name, ErrInvalid)
	}
	if c.ID == "" {
		c.ID = newID()
	} else if prev, ok := d.categories.get(c.ID); !ok {
		return c, fmt.Errorf("category %q: %w", c.ID, ErrNotFound)
	} else if prev.IsIncome() && !c.IsIncome() {
		return c, fmt.Errorf("cannot rename the %s category: %w", prev.Name, ErrIncomeCategory)
	}
	d.categories.put(c)
	return c, nil
}

// DeleteCategory removes a category no transaction uses. The Income category
// cannot be deleted.
func (d *UserData) DeleteCategory(id string) error {
	c, ok := d.categories.get(id)
	if !ok {
		return fmt.Errorf("category %q: %w", id, ErrNotFound)
	}
	if c.IsIncome() {
		return ErrIncomeCategory
	}
	for tx := range d.transactions.all() {
		if tx.Category == id {
			return fmt.Errorf("cannot delete category %q: %w", c.Name, ErrCategoryInUse)
		}
	}
	d.categories.remove(id)
	return nil
}

// SaveGoal creates a goal when its ID is empty, or updates the goal with that ID.
func (d *UserData) SaveGoal(g Goal) (Goal, error) {
	g.Name = strings.TrimSpace(g.Name)
	if err := g.Validate(); err != nil {
		return g, err
	}
	if g.ID == "" {
		g.ID = newID()
	} else if _, ok := d.goals.get(g.ID); !ok {
		return g, fmt.Errorf("goal %q: %w", g.ID, ErrNotFound)
	}
	d.goals.put(g)
	return g, nil
}

// DeleteGoal removes a goal.
func (d *UserData) DeleteGoal(id string) error {
	if _, ok := d.goals.remove(id); !ok {
		return fmt.Errorf("goal %q: %w", id, ErrNotFound)
	}
	return nil
}

// SetCurrency changes the display currency. Amounts are not converted.
func (d *UserData) SetCurrency(code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !KnownCurrency(code) {
		return fmt.Errorf("unknown currency %q: %w", code, ErrInvalid)
	}
	d.settings.Currency = code
	return nil
}

// SetDefaultAccount changes the account preselected for new transactions.
func (d *UserData) SetDefaultAccount(id string) error {
	if _, ok := d.accounts.get(id); !ok {
		return fmt.Errorf("account %q: %w", id, ErrNotFound)
	}
	d.settings.DefaultAccount = id
	return nil
}

// Reset replaces all the data with the defaults of a new user.
func (d *UserData) Reset(student bool) {
	*d = *DefaultUserData(student)
}

// Check verifies that every account balance equals its opening balance plus
// the effect of its transactions. It reports every account that does not.
func (d *UserData) Check() error {
	want := make(map[string]decimal.Decimal, d.accounts.len())
	for a := range d.accounts.all() {
		want[a.ID] = a.Opening
	}
	var errs error
	for tx := range d.transactions.all() {
		balance, ok := want[tx.Account]
		if !ok {
			errs = errors.Join(errs, fmt.Errorf("transaction %s references account %q: %w", tx.ID, tx.Account, ErrInvalidAccount))
			continue
		}
		want[tx.Account] = balance.Add(tx.Effect())
	}
	for a := range d.accounts.all() {
		if !a.Balance.Equal(want[a.ID]) {
			errs = errors.Join(errs, fmt.Errorf("account %q balance is %s, want %s: %w", a.Name, a.Balance, want[a.ID], ErrUnbalanced))
		}
	}
	return errs
}
