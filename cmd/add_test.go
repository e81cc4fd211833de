package cmd

import (
	"testing"

	"github.com/takatracker/takatracker"
)

func TestAddCmd_Draft(t *testing.T) {
	c := &addCmd{kind: "EXPENSE", amount: "250.50", category: "Food", date: "2026-8-2", note: "lunch"}
	d, err := c.draft()
	if err != nil {
		t.Fatal(err)
	}
	if d.Type != takatracker.Expense || !d.Amount.Equal(takatracker.M(250.50)) {
		t.Errorf("draft = %+v", d)
	}
	if d.Date != takatracker.MustParseDate("2026-08-02") {
		t.Errorf("date = %s, want 2026-08-02", d.Date)
	}
	if d.Note != "lunch" || d.Category != "Food" {
		t.Errorf("draft = %+v", d)
	}
}

func TestAddCmd_Draft_DefaultsToToday(t *testing.T) {
	c := &addCmd{kind: "INCOME", amount: "100"}
	d, err := c.draft()
	if err != nil {
		t.Fatal(err)
	}
	if d.Date != takatracker.Today() {
		t.Errorf("date = %s, want today", d.Date)
	}
}

func TestAddCmd_Draft_Rejects(t *testing.T) {
	tests := []struct {
		name string
		cmd  addCmd
	}{
		{"missing amount", addCmd{kind: "EXPENSE"}},
		{"bad amount", addCmd{kind: "EXPENSE", amount: "abc"}},
		{"bad type", addCmd{kind: "SPEND", amount: "10"}},
		{"bad date", addCmd{kind: "EXPENSE", amount: "10", date: "yesterday"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.cmd.draft(); err == nil {
				t.Error("draft() should fail")
			}
		})
	}
}

func TestFindAccount(t *testing.T) {
	l := takatracker.DefaultLedger()
	bank, err := l.CreateAccount("Bank", takatracker.Bank, takatracker.M(0))
	if err != nil {
		t.Fatal(err)
	}

	if got, err := findAccount(l, "Bank"); err != nil || got.ID != bank.ID {
		t.Errorf("findAccount by name = %+v, %v", got, err)
	}
	if got, err := findAccount(l, bank.ID); err != nil || got.ID != bank.ID {
		t.Errorf("findAccount by id = %+v, %v", got, err)
	}
	// Empty reference resolves to the first account.
	if got, err := findAccount(l, ""); err != nil || got.Name != "Pocket Cash" {
		t.Errorf("findAccount default = %+v, %v", got, err)
	}
	if _, err := findAccount(l, "Nope"); err == nil {
		t.Error("findAccount of an unknown reference should fail")
	}
}
