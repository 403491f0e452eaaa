package moneymind

import "github.com/shopspring/decimal"

// DefaultUserData returns the dataset of a new user: a single "Cash" account
// used as default account, and a starter set of categories. The student set of
// categories is tailored to pocket money budgets and has no Income category.
func DefaultUserData(student bool) *UserData {
	d := NewUserData()
	cash := Account{ID: newID(), Name: "Cash", Type: "General"}
	d.accounts.put(cash)
	d.settings.DefaultAccount = cash.ID

	categories := []Category{
		{Name: IncomeCategoryName, Budget: decimal.Zero, Color: "#2ecc71", Icon: "fas fa-briefcase"},
		{Name: "Food & Dining", Budget: decimal.NewFromInt(15000), Color: "#3498db", Icon: "fas fa-utensils"},
		{Name: "Transportation", Budget: decimal.NewFromInt(5000), Color: "#e74c3c", Icon: "fas fa-car"},
		{Name: "Housing", Budget: decimal.NewFromInt(25000), Color: "#9b59b6", Icon: "fas fa-home"},
	}
	if student {
		categories = []Category{
			{Name: "Pocket Money", Budget: decimal.Zero, Color: "#2ecc71", Icon: "fas fa-wallet"},
			{Name: "Food & Canteen", Budget: decimal.NewFromInt(2000), Color: "#3498db", Icon: "fas fa-utensils"},
			{Name: "Stationery & Books", Budget: decimal.NewFromInt(1000), Color: "#9b59b6", Icon: "fas fa-book"},
			{Name: "Transport", Budget: decimal.NewFromInt(500), Color: "#e67e22", Icon: "fas fa-bus"},
			{Name: "Entertainment", Budget: decimal.NewFromInt(1000), Color: "#e74c3c", Icon: "fas fa-film"},
		}
	}
	for _, c := range categories {
		c.ID = newID()
		d.categories.put(c)
	}
	return d
}

// Complete fills the parts of an incomplete dataset, as found in old or
// hand-edited records: it sets the default currency, creates the default
// account when there is no account, and repairs a dangling default account.
// It reports whether something changed.
func (d *UserData) Complete() bool {
	changed := false
	if d.settings.Currency == "" {
		d.settings.Currency = DefaultCurrency
		changed = true
	}
	if d.accounts.len() == 0 {
		cash := Account{ID: newID(), Name: "Cash", Type: "General"}
		d.accounts.put(cash)
		changed = true
	}
	if _, ok := d.accounts.get(d.settings.DefaultAccount); !ok {
		for a := range d.accounts.all() {
			d.settings.DefaultAccount = a.ID
			break
		}
		changed = true
	}
	return changed
}
