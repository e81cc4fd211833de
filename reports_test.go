package takatracker

import (
	"testing"
	"time"

	"github.com/takatracker/takatracker/date"
)

// reportFixture builds a ledger with a known spread of transactions.
func reportFixture(t *testing.T) *Ledger {
	t.Helper()
	l, cash := fixture(t)

	add := func(typ TransactionType, amount float64, category, day, person string) {
		t.Helper()
		d := Draft{
			Type:       typ,
			Amount:     M(amount),
			Category:   category,
			AccountID:  cash.ID,
			Date:       MustParseDate(day),
			PersonName: person,
		}
		if _, err := l.AddTransaction(d); err != nil {
			t.Fatal(err)
		}
	}

	add(Income, 20000, "Salary", "2026-08-01", "")
	add(Expense, 500, "Food", "2026-08-02", "")
	add(Expense, 300, "Food", "2026-08-02", "")
	add(Expense, 800, "Travel", "2026-08-03", "")
	add(Expense, 100, "Food", "2026-07-20", "") // previous month
	add(LoanGiven, 1000, "", "2026-08-05", "Rahim")
	add(LoanReceived, 400, "", "2026-08-06", "Rahim")
	add(LoanReceived, 200, "", "2026-08-07", "Karim")
	return l
}

func TestMonthly(t *testing.T) {
	l := reportFixture(t)
	s := l.Monthly(2026, 8)
	if !s.Income.Equal(M(20000)) {
		t.Errorf("income = %s, want 20000", s.Income.Decimal())
	}
	// Loans are not expenses; only the three August expense rows count.
	if !s.Expense.Equal(M(1600)) {
		t.Errorf("expense = %s, want 1600", s.Expense.Decimal())
	}
	if !s.Net().Equal(M(18400)) {
		t.Errorf("net = %s, want 18400", s.Net().Decimal())
	}

	july := l.Monthly(2026, 7)
	if !july.Expense.Equal(M(100)) || !july.Income.IsZero() {
		t.Errorf("july = %+v, want expense 100 and no income", july)
	}
}

func TestExpenseBreakdown(t *testing.T) {
	l := reportFixture(t)
	got := l.ExpenseBreakdown(NewRange(MustParseDate("2026-08-01"), MustParseDate("2026-08-31")))

	if len(got) != 2 {
		t.Fatalf("categories = %d, want 2", len(got))
	}
	if got[0].Category != "Travel" || !got[0].Total.Equal(M(800)) {
		t.Errorf("largest = %+v, want Travel 800", got[0])
	}
	if got[1].Category != "Food" || !got[1].Total.Equal(M(800)) {
		t.Errorf("second = %+v, want Food 800", got[1])
	}
	// Equal totals keep a stable name order: Food before Travel.
	if got[0].Category > got[1].Category {
		// both are 800, tie broken alphabetically
		t.Errorf("tie order = %s then %s, want alphabetical", got[0].Category, got[1].Category)
	}
}

func TestCashflowTrend(t *testing.T) {
	l := reportFixture(t)
	got := l.CashflowTrend(NewRange(MustParseDate("2026-08-01"), MustParseDate("2026-08-31")))

	// Income/expense days only: 1st, 2nd, 3rd. Loans do not show up.
	if len(got) != 3 {
		t.Fatalf("buckets = %d, want 3", len(got))
	}
	if got[0].Date != MustParseDate("2026-08-01") || !got[0].Income.Equal(M(20000)) {
		t.Errorf("bucket 0 = %+v, want 2026-08-01 income 20000", got[0])
	}
	if got[1].Date != MustParseDate("2026-08-02") || !got[1].Expense.Equal(M(800)) {
		t.Errorf("bucket 1 = %+v, want 2026-08-02 expense 800", got[1])
	}
	if got[2].Date != MustParseDate("2026-08-03") || !got[2].Expense.Equal(M(800)) {
		t.Errorf("bucket 2 = %+v, want 2026-08-03 expense 800", got[2])
	}
}

func TestCashflowTrend_Cap(t *testing.T) {
	l, cash := fixture(t)
	for i := 1; i <= 15; i++ {
		d := draft(Expense, 10, cash.ID)
		d.Date = date.New(2026, time.August, i)
		if _, err := l.AddTransaction(d); err != nil {
			t.Fatal(err)
		}
	}
	got := l.CashflowTrend(Range{})
	if len(got) != trendBuckets {
		t.Fatalf("buckets = %d, want %d", len(got), trendBuckets)
	}
	// The cap keeps the most recent days, chronological.
	if got[0].Date != date.New(2026, time.August, 6) || got[len(got)-1].Date != date.New(2026, time.August, 15) {
		t.Errorf("trend spans %s..%s, want 2026-08-06..2026-08-15", got[0].Date, got[len(got)-1].Date)
	}
}

func TestLoanBook(t *testing.T) {
	l := reportFixture(t)
	got := l.LoanBook()

	if len(got) != 2 {
		t.Fatalf("persons = %d, want 2", len(got))
	}
	// Sorted by name: Karim, Rahim.
	if got[0].Person != "Karim" || !got[0].Outstanding().Equal(M(-200)) {
		t.Errorf("Karim = %+v, want outstanding -200", got[0])
	}
	if got[1].Person != "Rahim" || !got[1].Given.Equal(M(1000)) || !got[1].Received.Equal(M(400)) {
		t.Errorf("Rahim = %+v, want given 1000 received 400", got[1])
	}
	if !got[1].Outstanding().Equal(M(600)) {
		t.Errorf("Rahim outstanding = %s, want 600", got[1].Outstanding().Decimal())
	}
}

func TestTotalBalance(t *testing.T) {
	l, _ := fixture(t)
	if _, err := l.CreateAccount("Bank", Bank, M(5000)); err != nil {
		t.Fatal(err)
	}
	if _, err := l.CreateAccount("Card", CreditCard, M(-1500)); err != nil {
		t.Fatal(err)
	}
	if got := l.TotalBalance(); !got.Equal(M(3500)) {
		t.Errorf("total = %s, want 3500", got.Decimal())
	}
}
