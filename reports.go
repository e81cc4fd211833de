package takatracker

import (
	"maps"
	"slices"
	"strings"

	"github.com/takatracker/takatracker/date"
)

// This file holds the read-only derivations over the ledger. They have no
// side effects and no stored state: every report is recomputed from the
// transaction collection on each read.

// trendBuckets caps the cash flow trend to the most recent distinct days.
const trendBuckets = 10

// TotalBalance returns the sum of all account balances.
func (l *Ledger) TotalBalance() Money {
	var total Money
	for _, a := range l.accounts {
		total = total.Add(a.Balance)
	}
	return total
}

// MonthlySummary holds the income and expense totals of one calendar month.
type MonthlySummary struct {
	Year    int
	Month   int
	Income  Money
	Expense Money
}

// Net returns income minus expense.
func (s MonthlySummary) Net() Money { return s.Income.Sub(s.Expense) }

// Monthly computes the income and expense totals for a calendar month.
// Loans and transfers move money between pockets, they are neither income
// nor expense.
func (l *Ledger) Monthly(year, month int) MonthlySummary {
	s := MonthlySummary{Year: year, Month: month}
	r := date.MonthOf(year, month)
	for tx := range l.Transactions(InRange(r)) {
		switch tx.Type {
		case Income:
			s.Income = s.Income.Add(tx.Amount)
		case Expense:
			s.Expense = s.Expense.Add(tx.Amount)
		}
	}
	return s
}

// CategoryTotal is one slice of the expense breakdown.
type CategoryTotal struct {
	Category string
	Total    Money
}

// ExpenseBreakdown aggregates expenses by category within the range,
// largest first. Categories with equal totals sort by name to keep the
// output stable.
func (l *Ledger) ExpenseBreakdown(r Range) []CategoryTotal {
	totals := make(map[string]Money)
	for tx := range l.Transactions(ByType(Expense), InRange(r)) {
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}
	out := make([]CategoryTotal, 0, len(totals))
	for _, category := range slices.Sorted(maps.Keys(totals)) {
		out = append(out, CategoryTotal{Category: category, Total: totals[category]})
	}
	slices.SortStableFunc(out, func(a, b CategoryTotal) int {
		switch {
		case a.Total.GreaterThan(b.Total):
			return -1
		case b.Total.GreaterThan(a.Total):
			return 1
		default:
			return 0
		}
	})
	return out
}

// DailyFlow is one day's worth of income and expense activity.
type DailyFlow struct {
	Date    Date
	Income  Money
	Expense Money
}

// CashflowTrend buckets income and expense by day within the range and
// returns the most recent buckets in chronological order, capped for
// readability.
func (l *Ledger) CashflowTrend(r Range) []DailyFlow {
	buckets := make(map[Date]*DailyFlow)
	for tx := range l.Transactions(ByType(Income, Expense), InRange(r)) {
		b, ok := buckets[tx.Date]
		if !ok {
			b = &DailyFlow{Date: tx.Date}
			buckets[tx.Date] = b
		}
		switch tx.Type {
		case Income:
			b.Income = b.Income.Add(tx.Amount)
		case Expense:
			b.Expense = b.Expense.Add(tx.Amount)
		}
	}
	out := make([]DailyFlow, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	slices.SortFunc(out, func(a, b DailyFlow) int {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case b.Date.Before(a.Date):
			return 1
		default:
			return 0
		}
	})
	if len(out) > trendBuckets {
		out = out[len(out)-trendBuckets:]
	}
	return out
}

// PersonLoan is one person's position in the loan book.
type PersonLoan struct {
	Person   string
	Given    Money // lent out to the person
	Received Money // borrowed from the person
}

// Outstanding is what the person still owes (negative: what is owed to them).
func (p PersonLoan) Outstanding() Money { return p.Given.Sub(p.Received) }

// LoanBook groups loan transactions by person, sorted by name. Loans with
// no person recorded are grouped under the empty name.
func (l *Ledger) LoanBook() []PersonLoan {
	book := make(map[string]*PersonLoan)
	for tx := range l.Transactions(ByType(LoanGiven, LoanReceived)) {
		p, ok := book[tx.PersonName]
		if !ok {
			p = &PersonLoan{Person: tx.PersonName}
			book[tx.PersonName] = p
		}
		if tx.Type == LoanGiven {
			p.Given = p.Given.Add(tx.Amount)
		} else {
			p.Received = p.Received.Add(tx.Amount)
		}
	}
	out := make([]PersonLoan, 0, len(book))
	for _, p := range book {
		out = append(out, *p)
	}
	slices.SortFunc(out, func(a, b PersonLoan) int { return strings.Compare(a.Person, b.Person) })
	return out
}
