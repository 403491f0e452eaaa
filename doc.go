// Package moneymind provides the types and rules for managing a personal
// budget: accounts, categorized transactions, category budgets and savings
// goals. It is designed to be local-first: all the data of a user lives in a
// single UserData aggregate persisted as one versioned record.
//
// The core functionalities include:
//   - Ledger: creating, editing and deleting transactions and accounts while
//     keeping every account balance equal to its opening balance plus the
//     effect of the transactions attributed to it.
//   - Budgets and goals: categories carry a spending budget, goals track a
//     saved amount against a target.
//   - Reports: a monthly dashboard, budget and goal progress, recent
//     transactions and a calendar view.
//   - Persistence: encoding and decoding of the whole Database record to and
//     from JSON.
//
// This package serves as the foundational logic for the `mm` command-line
// tool.
package moneymind
