package takatracker

import (
	"bytes"
	"strings"
	"testing"
)

// TestSnapshot_JSONShape pins the stored object shape: transactions first,
// then accounts, amounts as bare numbers, optional fields omitted.
func TestSnapshot_JSONShape(t *testing.T) {
	s := &Snapshot{
		Transactions: []Transaction{{
			ID: "t1", Type: Expense, Amount: M(250.50), Category: "Food",
			AccountID: "a1", Date: MustParseDate("2026-08-02"),
		}},
		Accounts: []Account{{ID: "a1", Name: "Pocket Cash", Type: Cash, Balance: M(-250.50)}},
	}

	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, s); err != nil {
		t.Fatal(err)
	}
	got := buf.String()

	want := `{"transactions":[{"id":"t1","type":"EXPENSE","amount":250.5,"category":"Food","accountId":"a1","date":"2026-08-02"}],"accounts":[{"id":"a1","name":"Pocket Cash","type":"CASH","balance":-250.5}]}`
	if got != want {
		t.Errorf("snapshot JSON:\ngot  %s\nwant %s", got, want)
	}
	if strings.Contains(got, "personName") || strings.Contains(got, "note") {
		t.Errorf("empty optional fields should be omitted: %s", got)
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	l, cash := fixture(t)
	d := draft(LoanGiven, 1000, cash.ID)
	d.PersonName = "Rahim"
	d.Note = "for the rickshaw"
	if _, err := l.AddTransaction(d); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, l.Snapshot()); err != nil {
		t.Fatal(err)
	}
	s, err := DecodeSnapshot(&buf)
	if err != nil {
		t.Fatal(err)
	}
	restored := restore(s)

	if got := balance(t, restored, cash.ID); !got.Equal(M(-1000)) {
		t.Errorf("restored balance = %s, want -1000", got.Decimal())
	}
	want, _ := l.Transaction(firstTransactionID(t, l))
	got, ok := restored.Transaction(want.ID)
	if !ok || !got.Equal(want) {
		t.Errorf("restored transaction differs:\ngot  %+v\nwant %+v", got, want)
	}
}

func firstTransactionID(t *testing.T, l *Ledger) string {
	t.Helper()
	for tx := range l.Transactions() {
		return tx.ID
	}
	t.Fatal("no transactions")
	return ""
}

func TestDecodeSnapshot_Rejects(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"not json", `{broken`},
		{"no accounts", `{"transactions":[],"accounts":[]}`},
		{"invalid account", `{"transactions":[],"accounts":[{"id":"a1","name":"","type":"CASH","balance":0}]}`},
		{"invalid transaction", `{"transactions":[{"id":"t1","type":"SPEND","amount":1,"category":"","accountId":"a1","date":"2026-08-02"}],"accounts":[{"id":"a1","name":"W","type":"CASH","balance":0}]}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeSnapshot(strings.NewReader(tc.in)); err == nil {
				t.Error("DecodeSnapshot should fail")
			}
		})
	}
}
