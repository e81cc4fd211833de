package takatracker

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// AccountType identifies the kind of wallet an account represents.
type AccountType string

// Account types supported by the tracker.
const (
	Bank          AccountType = "BANK"
	MobileBanking AccountType = "MOBILE_BANKING"
	Cash          AccountType = "CASH"
	CreditCard    AccountType = "CREDIT_CARD"
)

// ParseAccountType parses a string into an AccountType.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(s) {
	case Bank, MobileBanking, Cash, CreditCard:
		return AccountType(s), nil
	default:
		return "", fmt.Errorf("unknown account type: %q", s)
	}
}

// Account is a wallet holding a running balance. The balance is a stored
// total mutated incrementally by transactions, not derived on read.
type Account struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Type    AccountType `json:"type"`
	Balance Money       `json:"balance"`
}

// NewAccount creates an account with a fresh identifier and an explicit
// initial balance.
func NewAccount(name string, typ AccountType, initialBalance Money) Account {
	return Account{
		ID:      uuid.NewString(),
		Name:    name,
		Type:    typ,
		Balance: initialBalance,
	}
}

// Equal reports whether two accounts have identical fields.
func (a Account) Equal(b Account) bool {
	return a.ID == b.ID && a.Name == b.Name && a.Type == b.Type && a.Balance.Equal(b.Balance)
}

// Validate checks an account for correctness.
func (a Account) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("account id is missing")
	}
	if a.Name == "" {
		return fmt.Errorf("account name is missing")
	}
	if _, err := ParseAccountType(string(a.Type)); err != nil {
		return err
	}
	return nil
}

// MarshalJSON implements json.Marshaler with a fixed field order.
func (a Account) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", a.ID)
	w.Append("name", a.Name)
	w.Append("type", a.Type)
	w.Append("balance", a.Balance)
	return w.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler and validates the account type.
func (a *Account) UnmarshalJSON(data []byte) error {
	type raw Account
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	*a = Account(r)
	return a.Validate()
}
