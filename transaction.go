package takatracker

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// TransactionType identifies how a transaction moves money.
type TransactionType string

// Transaction types supported by the tracker.
const (
	Income       TransactionType = "INCOME"
	Expense      TransactionType = "EXPENSE"
	LoanGiven    TransactionType = "LOAN_GIVEN"
	LoanReceived TransactionType = "LOAN_RECEIVED"
	Transfer     TransactionType = "TRANSFER"
)

// ParseTransactionType parses a string into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case Income, Expense, LoanGiven, LoanReceived, Transfer:
		return TransactionType(s), nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// IsLoan reports whether the type is one of the loan types.
func (t TransactionType) IsLoan() bool { return t == LoanGiven || t == LoanReceived }

// Transaction is a single ledger entry. The amount is always positive; the
// transaction type decides the sign of the balance change it applies.
// Transactions are immutable once stored except through a full
// replace-by-id update.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      Money           `json:"amount"`
	Category    string          `json:"category"`
	AccountID   string          `json:"accountId"`
	Date        Date            `json:"date"`
	Note        string          `json:"note,omitempty"`
	PersonName  string          `json:"personName,omitempty"`  // loans only
	ToAccountID string          `json:"toAccountId,omitempty"` // transfers only
}

// Draft is a transaction before it is given an identifier by the ledger.
type Draft struct {
	Type        TransactionType
	Amount      Money
	Category    string
	AccountID   string
	Date        Date
	Note        string
	PersonName  string
	ToAccountID string
}

// newTransaction stamps a draft with a fresh identifier.
func newTransaction(d Draft) Transaction {
	return Transaction{
		ID:          uuid.NewString(),
		Type:        d.Type,
		Amount:      d.Amount,
		Category:    d.Category,
		AccountID:   d.AccountID,
		Date:        d.Date,
		Note:        d.Note,
		PersonName:  d.PersonName,
		ToAccountID: d.ToAccountID,
	}
}

// Equal reports whether two transactions have identical fields.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Type == o.Type &&
		t.Amount.Equal(o.Amount) &&
		t.Category == o.Category &&
		t.AccountID == o.AccountID &&
		t.Date == o.Date &&
		t.Note == o.Note &&
		t.PersonName == o.PersonName &&
		t.ToAccountID == o.ToAccountID
}

// Validate checks the transaction's own fields, without looking at the
// ledger. Account references are checked by the ledger on apply.
func (t Transaction) Validate() error {
	if _, err := ParseTransactionType(string(t.Type)); err != nil {
		return err
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("transaction amount must be positive, got %s", t.Amount)
	}
	if t.AccountID == "" {
		return errors.New("transaction account is missing")
	}
	if t.Date.IsZero() {
		return errors.New("transaction date is missing")
	}
	switch {
	case t.Type == Transfer && t.ToAccountID == "":
		return errors.New("transfer destination account is missing")
	case t.Type == Transfer && t.ToAccountID == t.AccountID:
		return errors.New("transfer destination must differ from the source account")
	case t.Type != Transfer && t.ToAccountID != "":
		return fmt.Errorf("%s transaction cannot have a destination account", t.Type)
	case t.PersonName != "" && !t.Type.IsLoan():
		return fmt.Errorf("%s transaction cannot have a person name", t.Type)
	}
	return nil
}

// delta is a signed balance change against a single account.
type delta struct {
	accountID string
	amount    Money
}

// deltas returns the signed balance changes this transaction applies.
// Sign rule: INCOME and LOAN_RECEIVED credit the account, EXPENSE and
// LOAN_GIVEN debit it, TRANSFER debits the source and credits the
// destination.
func (t Transaction) deltas() []delta {
	switch t.Type {
	case Income, LoanReceived:
		return []delta{{t.AccountID, t.Amount}}
	case Expense, LoanGiven:
		return []delta{{t.AccountID, t.Amount.Neg()}}
	case Transfer:
		return []delta{{t.AccountID, t.Amount.Neg()}, {t.ToAccountID, t.Amount}}
	default:
		return nil
	}
}

// inverse returns the balance changes that undo this transaction.
func (t Transaction) inverse() []delta {
	ds := t.deltas()
	out := make([]delta, len(ds))
	for i, d := range ds {
		out[i] = delta{d.accountID, d.amount.Neg()}
	}
	return out
}

// accountIDs returns every account the transaction references.
func (t Transaction) accountIDs() []string {
	if t.Type == Transfer {
		return []string{t.AccountID, t.ToAccountID}
	}
	return []string{t.AccountID}
}

// MarshalJSON implements json.Marshaler with a fixed field order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("type", t.Type)
	w.Append("amount", t.Amount)
	w.Append("category", t.Category)
	w.Append("accountId", t.AccountID)
	w.Append("date", t.Date)
	w.Optional("note", t.Note)
	w.Optional("personName", t.PersonName)
	w.Optional("toAccountId", t.ToAccountID)
	return w.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler and validates the entry.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	type raw Transaction
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	*t = Transaction(r)
	if t.ID == "" {
		return errors.New("transaction id is missing")
	}
	return t.Validate()
}
