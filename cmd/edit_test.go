package cmd

import (
	"testing"

	"github.com/takatracker/takatracker"
)

// transferFixture builds a ledger holding a cash-to-bank transfer.
func transferFixture(t *testing.T) (*takatracker.Ledger, takatracker.Transaction) {
	t.Helper()
	l := takatracker.DefaultLedger()
	bank, err := l.CreateAccount("Bank", takatracker.Bank, takatracker.M(0))
	if err != nil {
		t.Fatal(err)
	}
	cash, err := findAccount(l, "Pocket Cash")
	if err != nil {
		t.Fatal(err)
	}
	tx, err := l.AddTransaction(takatracker.Draft{
		Type:        takatracker.Transfer,
		Amount:      takatracker.M(500),
		Category:    "Other",
		AccountID:   cash.ID,
		ToAccountID: bank.ID,
		Date:        takatracker.MustParseDate("2026-08-02"),
	})
	if err != nil {
		t.Fatal(err)
	}
	return l, tx
}

// TestEditCmd_Merge_TransferToExpense turns a transfer into an expense
// without touching -to; the stale destination must go away so the result
// validates.
func TestEditCmd_Merge_TransferToExpense(t *testing.T) {
	l, tx := transferFixture(t)

	c := &editCmd{id: tx.ID, kind: "EXPENSE"}
	got, err := c.merge(l, map[string]bool{"t": true}, tx)
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != takatracker.Expense || got.ToAccountID != "" {
		t.Errorf("merge = %+v, want an expense without destination", got)
	}
	if err := l.UpdateTransaction(got); err != nil {
		t.Errorf("UpdateTransaction: %v", err)
	}
}

func TestEditCmd_Merge_ExplicitEmptyToClears(t *testing.T) {
	l, tx := transferFixture(t)

	c := &editCmd{id: tx.ID, kind: "INCOME", to: ""}
	got, err := c.merge(l, map[string]bool{"t": true, "to": true}, tx)
	if err != nil {
		t.Fatal(err)
	}
	if got.ToAccountID != "" {
		t.Errorf("explicit empty -to kept destination %q", got.ToAccountID)
	}
}

func TestEditCmd_Merge_KeepsDestinationOnTransfer(t *testing.T) {
	l, tx := transferFixture(t)

	// Editing only the amount of a transfer must not drop its destination.
	c := &editCmd{id: tx.ID, amount: "750"}
	got, err := c.merge(l, map[string]bool{"a": true}, tx)
	if err != nil {
		t.Fatal(err)
	}
	if got.ToAccountID != tx.ToAccountID {
		t.Errorf("destination = %q, want %q", got.ToAccountID, tx.ToAccountID)
	}
	if !got.Amount.Equal(takatracker.M(750)) {
		t.Errorf("amount = %s, want 750", got.Amount.Decimal())
	}
}

func TestEditCmd_Merge_LoanToExpenseDropsPerson(t *testing.T) {
	l, _ := transferFixture(t)
	cash, err := findAccount(l, "Pocket Cash")
	if err != nil {
		t.Fatal(err)
	}
	loan, err := l.AddTransaction(takatracker.Draft{
		Type:       takatracker.LoanGiven,
		Amount:     takatracker.M(1000),
		Category:   "Other",
		AccountID:  cash.ID,
		PersonName: "Rahim",
		Date:       takatracker.MustParseDate("2026-08-02"),
	})
	if err != nil {
		t.Fatal(err)
	}

	c := &editCmd{id: loan.ID, kind: "EXPENSE"}
	got, err := c.merge(l, map[string]bool{"t": true}, loan)
	if err != nil {
		t.Fatal(err)
	}
	if got.PersonName != "" {
		t.Errorf("person = %q, want it dropped", got.PersonName)
	}
	if err := l.UpdateTransaction(got); err != nil {
		t.Errorf("UpdateTransaction: %v", err)
	}
}
