// Package takatracker provides the core types and functions for a local-first
// personal finance tracker: accounts, transactions, loans and the reports
// derived from them. It is designed to be local-only and auditable, with no
// server and a single user in mind.
//
// The core functionalities include:
//   - Ledger Management: the authoritative in-memory collections of accounts
//     and transactions, with balance bookkeeping applied on every create,
//     edit and delete.
//   - Persistence Mirror: the full ledger snapshot and the user settings are
//     written to a local key-value store after every mutation, and read back
//     once at startup, falling back to defaults on corruption.
//   - Reporting: stateless derivations over the ledger (monthly totals,
//     category breakdowns, cash flow trends, loan book), recomputed on demand.
//   - Backup Codec: a CSV import/export format that round-trips the whole
//     ledger for backup and restore.
//
// This package serves as the foundational logic for the `tt` command-line
// tool; the cmd package wires these pieces into subcommands.
package takatracker
