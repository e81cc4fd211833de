package renderer

import (
	"fmt"
	"iter"

	"github.com/takatracker/takatracker"
)

type transactionsData struct {
	Rows []transactionRow
}

type transactionRow struct {
	Date     string
	Type     string
	Category string
	Amount   string
	Account  string
	Detail   string
}

// Transaction renders one transaction to a single line, for confirmations.
func Transaction(tx takatracker.Transaction, accountName func(string) string) string {
	switch tx.Type {
	case takatracker.Income:
		return fmt.Sprintf("Received %s as %s into %s", tx.Amount, tx.Category, accountName(tx.AccountID))
	case takatracker.Expense:
		return fmt.Sprintf("Spent %s on %s from %s", tx.Amount, tx.Category, accountName(tx.AccountID))
	case takatracker.LoanGiven:
		return fmt.Sprintf("Lent %s to %s from %s", tx.Amount, tx.PersonName, accountName(tx.AccountID))
	case takatracker.LoanReceived:
		return fmt.Sprintf("Borrowed %s from %s into %s", tx.Amount, tx.PersonName, accountName(tx.AccountID))
	case takatracker.Transfer:
		return fmt.Sprintf("Moved %s from %s to %s", tx.Amount, accountName(tx.AccountID), accountName(tx.ToAccountID))
	default:
		return fmt.Sprintf("%s %s", tx.Type, tx.Amount)
	}
}

// TransactionsMarkdown renders a transaction list, newest first, with
// account ids resolved to names through accountName.
func TransactionsMarkdown(txs iter.Seq[takatracker.Transaction], accountName func(string) string) string {
	var data transactionsData
	for tx := range txs {
		row := transactionRow{
			Date:     tx.Date.String(),
			Type:     string(tx.Type),
			Category: tx.Category,
			Amount:   tx.Amount.String(),
			Account:  accountName(tx.AccountID),
			Detail:   tx.Note,
		}
		switch {
		case tx.Type == takatracker.Transfer:
			row.Detail = "to " + accountName(tx.ToAccountID)
		case tx.PersonName != "":
			row.Detail = tx.PersonName
			if tx.Note != "" {
				row.Detail += " - " + tx.Note
			}
		}
		data.Rows = append(data.Rows, row)
	}
	return renderTemplate("transactions", "transactions.md", nil, data)
}
