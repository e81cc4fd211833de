package renderer

import (
	"fmt"
	"time"

	"github.com/takatracker/takatracker"
)

type summaryData struct {
	MonthLabel string
	Total      string
	Income     string
	Expense    string
	Net        string
	Accounts   []accountRow
}

type accountRow struct {
	Name    string
	Type    string
	Balance string
}

func accountRows(accounts []takatracker.Account) []accountRow {
	rows := make([]accountRow, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, accountRow{Name: a.Name, Type: string(a.Type), Balance: a.Balance.String()})
	}
	return rows
}

// SummaryMarkdown renders the month dashboard: total balance, the month's
// flows and the per-account balances.
func SummaryMarkdown(total takatracker.Money, s takatracker.MonthlySummary, accounts []takatracker.Account) string {
	data := summaryData{
		MonthLabel: fmt.Sprintf("%s %d", time.Month(s.Month), s.Year),
		Total:      total.String(),
		Income:     s.Income.String(),
		Expense:    s.Expense.String(),
		Net:        s.Net().SignedString(),
		Accounts:   accountRows(accounts),
	}
	partials := map[string]string{
		"accounts_table": "accounts_table.md",
	}
	return renderTemplate("summary", "summary.md", partials, data)
}

// AccountsMarkdown renders the account list alone.
func AccountsMarkdown(accounts []takatracker.Account, total takatracker.Money) string {
	data := summaryData{Total: total.String(), Accounts: accountRows(accounts)}
	partials := map[string]string{
		"accounts_table": "accounts_table.md",
	}
	return renderTemplate("accounts", "accounts.md", partials, data)
}
