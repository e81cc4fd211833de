package takatracker

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// Sentinel errors returned by ledger operations. Callers match them with
// errors.Is.
var (
	// ErrNotFound is returned when an edit or delete references a missing id.
	ErrNotFound = errors.New("not found")
	// ErrUnknownAccount is returned when a transaction references a
	// nonexistent account.
	ErrUnknownAccount = errors.New("unknown account")
	// ErrLastAccount is returned when deleting an account would leave the
	// ledger with no accounts at all.
	ErrLastAccount = errors.New("cannot delete the last account")
	// ErrMalformedImport is returned when a backup file cannot be decoded.
	ErrMalformedImport = errors.New("malformed import")
)

// Ledger holds the authoritative in-memory collections of accounts and
// transactions and keeps account balances consistent across every mutation.
//
// Transactions are kept newest-first in insertion order; insertion order is
// the order of record, no other sort key exists.
//
// After every completed mutation, each account's balance equals its initial
// balance plus the signed sum of all currently-present transactions
// referencing it.
type Ledger struct {
	accounts     []Account
	transactions []Transaction
	mirror       Mirror
}

// NewLedger creates an empty ledger. An empty ledger has no accounts; most
// callers want DefaultLedger or LoadLedger instead.
func NewLedger() *Ledger {
	return &Ledger{
		accounts:     make([]Account, 0),
		transactions: make([]Transaction, 0),
	}
}

// Attach wires a persistence mirror into the ledger. Every subsequent
// mutation writes the full snapshot through it, synchronously.
func (l *Ledger) Attach(m Mirror) { l.mirror = m }

// persist mirrors the current state. Mutations call it last, so a failed
// write surfaces to the caller while the in-memory state stays consistent.
func (l *Ledger) persist() error {
	if l.mirror == nil {
		return nil
	}
	if err := l.mirror.Save(l.Snapshot()); err != nil {
		return fmt.Errorf("could not mirror ledger state: %w", err)
	}
	return nil
}

// Snapshot returns a copy of the full ledger state for serialization.
func (l *Ledger) Snapshot() *Snapshot {
	return &Snapshot{
		Transactions: slices.Clone(l.transactions),
		Accounts:     slices.Clone(l.accounts),
	}
}

// Account returns the account with this id.
func (l *Ledger) Account(id string) (Account, bool) {
	for _, a := range l.accounts {
		if a.ID == id {
			return a, true
		}
	}
	return Account{}, false
}

// Accounts returns an iterator over accounts in creation order.
func (l *Ledger) Accounts() iter.Seq[Account] {
	return func(yield func(Account) bool) {
		for _, a := range l.accounts {
			if !yield(a) {
				return
			}
		}
	}
}

// Transaction returns the transaction with this id.
func (l *Ledger) Transaction(id string) (Transaction, bool) {
	for _, t := range l.transactions {
		if t.ID == id {
			return t, true
		}
	}
	return Transaction{}, false
}

// Transactions returns an iterator over transactions, newest first. All
// given filters must accept a transaction for it to be yielded.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			accept := true
			for _, filter := range filters {
				if !filter(tx) {
					accept = false
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(tx) {
				return
			}
		}
	}
}

// ByType returns a predicate that filters transactions by type.
func ByType(types ...TransactionType) func(Transaction) bool {
	return func(tx Transaction) bool { return slices.Contains(types, tx.Type) }
}

// ByAccount returns a predicate that filters transactions touching an account.
func ByAccount(accountID string) func(Transaction) bool {
	return func(tx Transaction) bool { return slices.Contains(tx.accountIDs(), accountID) }
}

// InRange returns a predicate that filters transactions by date range.
func InRange(r Range) func(Transaction) bool {
	return func(tx Transaction) bool { return r.Contains(tx.Date) }
}

// ByPerson returns a predicate that filters loan transactions by person.
func ByPerson(name string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Type.IsLoan() && tx.PersonName == name }
}

// checkAccounts verifies that every account a transaction references exists.
func (l *Ledger) checkAccounts(tx Transaction) error {
	for _, id := range tx.accountIDs() {
		if _, ok := l.Account(id); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownAccount, id)
		}
	}
	return nil
}

// apply adds the signed deltas to the referenced accounts. The accounts must
// exist; callers check first.
func (l *Ledger) apply(deltas []delta) {
	for _, d := range deltas {
		for i := range l.accounts {
			if l.accounts[i].ID == d.accountID {
				l.accounts[i].Balance = l.accounts[i].Balance.Add(d.amount)
				break
			}
		}
	}
}

// AddTransaction stamps the draft with a new identifier, prepends it to the
// collection and applies its balance delta to the referenced account(s).
// It returns the stored transaction.
func (l *Ledger) AddTransaction(d Draft) (Transaction, error) {
	tx := newTransaction(d)
	if err := tx.Validate(); err != nil {
		return Transaction{}, err
	}
	if err := l.checkAccounts(tx); err != nil {
		return Transaction{}, err
	}
	l.transactions = slices.Insert(l.transactions, 0, tx)
	l.apply(tx.deltas())
	return tx, l.persist()
}

// UpdateTransaction replaces the stored transaction with the same id.
//
// It first reverses the prior version's delta against the prior account(s),
// then applies the new delta against the (possibly different) new
// account(s), then swaps the record in place. The reverse-then-apply pair
// guarantees that moving a transaction between accounts, changing its amount
// or changing its type never double-counts or loses the effect of the edit.
func (l *Ledger) UpdateTransaction(updated Transaction) error {
	if err := updated.Validate(); err != nil {
		return err
	}
	i := slices.IndexFunc(l.transactions, func(t Transaction) bool { return t.ID == updated.ID })
	if i < 0 {
		return fmt.Errorf("%w: transaction %q", ErrNotFound, updated.ID)
	}
	if err := l.checkAccounts(updated); err != nil {
		return err
	}
	l.apply(l.transactions[i].inverse())
	l.apply(updated.deltas())
	l.transactions[i] = updated
	return l.persist()
}

// DeleteTransaction reverses the transaction's delta against its account(s)
// and removes it from the collection.
func (l *Ledger) DeleteTransaction(id string) error {
	i := slices.IndexFunc(l.transactions, func(t Transaction) bool { return t.ID == id })
	if i < 0 {
		return fmt.Errorf("%w: transaction %q", ErrNotFound, id)
	}
	l.apply(l.transactions[i].inverse())
	l.transactions = slices.Delete(l.transactions, i, i+1)
	return l.persist()
}

// ReplaceAll overwrites the whole ledger, used by restore/import. No delta
// recomputation happens: the imported balances are trusted as-is.
func (l *Ledger) ReplaceAll(accounts []Account, transactions []Transaction) error {
	if len(accounts) == 0 {
		return fmt.Errorf("%w: a ledger needs at least one account", ErrLastAccount)
	}
	l.accounts = slices.Clone(accounts)
	l.transactions = slices.Clone(transactions)
	return l.persist()
}

// CreateAccount adds a new wallet with an explicit initial balance.
func (l *Ledger) CreateAccount(name string, typ AccountType, initialBalance Money) (Account, error) {
	a := NewAccount(name, typ, initialBalance)
	if err := a.Validate(); err != nil {
		return Account{}, err
	}
	l.accounts = append(l.accounts, a)
	return a, l.persist()
}

// UpdateAccount replaces the stored account with the same id.
func (l *Ledger) UpdateAccount(updated Account) error {
	if err := updated.Validate(); err != nil {
		return err
	}
	i := slices.IndexFunc(l.accounts, func(a Account) bool { return a.ID == updated.ID })
	if i < 0 {
		return fmt.Errorf("%w: account %q", ErrNotFound, updated.ID)
	}
	l.accounts[i] = updated
	return l.persist()
}

// DeleteAccount removes an account. It refuses when that would leave zero
// accounts: the collection never reaches zero length.
//
// Transactions that referenced the account are kept as history; new
// transactions against the deleted account are rejected with
// ErrUnknownAccount.
func (l *Ledger) DeleteAccount(id string) error {
	i := slices.IndexFunc(l.accounts, func(a Account) bool { return a.ID == id })
	if i < 0 {
		return fmt.Errorf("%w: account %q", ErrNotFound, id)
	}
	if len(l.accounts) == 1 {
		return ErrLastAccount
	}
	l.accounts = slices.Delete(l.accounts, i, i+1)
	return l.persist()
}
