package moneymind

import "errors"

// Errors returned by the ledger operations. They are recoverable: an operation
// that returns one of them left the UserData untouched.
var (
	// ErrInvalidAccount is returned when a transaction references an account that does not exist.
	ErrInvalidAccount = errors.New("invalid account")
	// ErrAccountInUse is returned when deleting an account still referenced by transactions.
	ErrAccountInUse = errors.New("account has transactions")
	// ErrLastAccount is returned when deleting the only account.
	ErrLastAccount = errors.New("cannot delete the only account")

	ErrNotFound        = errors.New("not found")
	ErrInvalid         = errors.New("invalid value")
	ErrInvalidCategory = errors.New("invalid category")
	ErrCategoryInUse   = errors.New("category has transactions")
	ErrIncomeCategory  = errors.New("the income category cannot be deleted")
	ErrUnbalanced      = errors.New("balance does not match transactions")
)
