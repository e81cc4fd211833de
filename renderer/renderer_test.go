package renderer

import (
	"slices"
	"strings"
	"testing"

	"github.com/takatracker/takatracker"
)

func names(ids map[string]string) func(string) string {
	return func(id string) string {
		if n, ok := ids[id]; ok {
			return n
		}
		return id
	}
}

func TestSummaryMarkdown(t *testing.T) {
	accounts := []takatracker.Account{
		{ID: "a1", Name: "Pocket Cash", Type: takatracker.Cash, Balance: takatracker.M(1200)},
		{ID: "a2", Name: "bKash", Type: takatracker.MobileBanking, Balance: takatracker.M(300)},
	}
	s := takatracker.MonthlySummary{
		Year: 2026, Month: 8,
		Income:  takatracker.M(20000),
		Expense: takatracker.M(500),
	}
	got := SummaryMarkdown(takatracker.M(1500), s, accounts)

	for _, want := range []string{"Summary for August 2026", "Pocket Cash", "bKash", "MOBILE_BANKING"} {
		if !strings.Contains(got, want) {
			t.Errorf("SummaryMarkdown missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "error") {
		t.Errorf("SummaryMarkdown reports a template error:\n%s", got)
	}
}

func TestInsightsMarkdown(t *testing.T) {
	breakdown := []takatracker.CategoryTotal{
		{Category: "Food", Total: takatracker.M(800)},
		{Category: "Travel", Total: takatracker.M(200)},
	}
	trend := []takatracker.DailyFlow{
		{Date: takatracker.MustParseDate("2026-08-01"), Expense: takatracker.M(800)},
	}
	got := InsightsMarkdown(takatracker.Last30Days, breakdown, trend)

	for _, want := range []string{"Last 30 Days", "Food", "Travel", "2026-08-01"} {
		if !strings.Contains(got, want) {
			t.Errorf("InsightsMarkdown missing %q in:\n%s", want, got)
		}
	}
	// The largest category carries the widest bar.
	food := strings.Index(got, "Food")
	if !strings.Contains(got[food:], strings.Repeat("█", barWidth)) {
		t.Errorf("largest category should have a full bar in:\n%s", got)
	}
}

func TestInsightsMarkdown_Empty(t *testing.T) {
	got := InsightsMarkdown(takatracker.AllTime, nil, nil)
	if !strings.Contains(got, "No expenses in this period.") || !strings.Contains(got, "No activity in this period.") {
		t.Errorf("empty insights should render placeholders:\n%s", got)
	}
}

func TestTransactionsMarkdown(t *testing.T) {
	txs := []takatracker.Transaction{
		{ID: "t1", Type: takatracker.Expense, Amount: takatracker.M(500), Category: "Food",
			AccountID: "a1", Date: takatracker.MustParseDate("2026-08-02"), Note: "groceries"},
		{ID: "t2", Type: takatracker.Transfer, Amount: takatracker.M(100),
			AccountID: "a1", ToAccountID: "a2", Date: takatracker.MustParseDate("2026-08-03")},
		{ID: "t3", Type: takatracker.LoanGiven, Amount: takatracker.M(1000), Category: "Loan",
			AccountID: "a1", Date: takatracker.MustParseDate("2026-08-04"), PersonName: "Rahim", Note: "till friday"},
	}
	resolve := names(map[string]string{"a1": "Pocket Cash", "a2": "bKash"})
	got := TransactionsMarkdown(slices.Values(txs), resolve)

	for _, want := range []string{"groceries", "Food", "to bKash", "Pocket Cash", "Rahim - till friday"} {
		if !strings.Contains(got, want) {
			t.Errorf("TransactionsMarkdown missing %q in:\n%s", want, got)
		}
	}
}

func TestTransaction_Line(t *testing.T) {
	resolve := names(map[string]string{"a1": "Pocket Cash", "a2": "bKash"})
	tests := []struct {
		tx   takatracker.Transaction
		want string
	}{
		{takatracker.Transaction{Type: takatracker.Income, Amount: takatracker.M(100), Category: "Salary", AccountID: "a1"},
			"as Salary into Pocket Cash"},
		{takatracker.Transaction{Type: takatracker.LoanGiven, Amount: takatracker.M(50), PersonName: "Rahim", AccountID: "a1"},
			"to Rahim from Pocket Cash"},
		{takatracker.Transaction{Type: takatracker.Transfer, Amount: takatracker.M(10), AccountID: "a1", ToAccountID: "a2"},
			"from Pocket Cash to bKash"},
	}
	for _, tc := range tests {
		if got := Transaction(tc.tx, resolve); !strings.Contains(got, tc.want) {
			t.Errorf("Transaction(%s) = %q, want substring %q", tc.tx.Type, got, tc.want)
		}
	}
}

func TestLoansMarkdown(t *testing.T) {
	book := []takatracker.PersonLoan{
		{Person: "Rahim", Given: takatracker.M(1000), Received: takatracker.M(200)},
		{Person: "", Received: takatracker.M(50)},
	}
	got := LoansMarkdown(book)
	for _, want := range []string{"Rahim", "(unnamed)"} {
		if !strings.Contains(got, want) {
			t.Errorf("LoansMarkdown missing %q in:\n%s", want, got)
		}
	}
}
