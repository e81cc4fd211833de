package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/takatracker/takatracker"
	"github.com/takatracker/takatracker/renderer"
)

type editCmd struct {
	id       string
	kind     string
	amount   string
	category string
	account  string
	to       string
	date     string
	note     string
	person   string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit an existing transaction" }
func (*editCmd) Usage() string {
	return `tt edit -id <transaction> [-t <type>] [-a <amount>] [-c <category>] [-from <account>] [-to <account>] [-on <date>] [-note <text>] [-person <name>]

  Replaces the given fields of a transaction. The old balance effect is
  undone and the new one applied, so balances stay consistent even when the
  amount, type or account changes.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction id to edit.")
	f.StringVar(&c.kind, "t", "", "New transaction type.")
	f.StringVar(&c.amount, "a", "", "New amount.")
	f.StringVar(&c.category, "c", "", "New category head.")
	f.StringVar(&c.account, "from", "", "New account name or id.")
	f.StringVar(&c.to, "to", "", "New destination account for transfers.")
	f.StringVar(&c.date, "on", "", "New transaction date.")
	f.StringVar(&c.note, "note", "", "New note.")
	f.StringVar(&c.person, "person", "", "New person name.")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(flag.CommandLine.Output(), "Error: a transaction id is required (-id)")
		return subcommands.ExitUsageError
	}

	a, err := openApp()
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	tx, ok := a.ledger.Transaction(c.id)
	if !ok {
		return fail(fmt.Errorf("%w: transaction %q", takatracker.ErrNotFound, c.id))
	}

	// Only flags the user actually set override the stored fields.
	set := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	tx, err = c.merge(a.ledger, set, tx)
	if err != nil {
		return fail(err)
	}

	if err := a.ledger.UpdateTransaction(tx); err != nil {
		return fail(err)
	}
	fmt.Println("Updated:", renderer.Transaction(tx, accountName(a.ledger)))
	return subcommands.ExitSuccess
}

// merge applies the flags the user actually set on top of the stored
// transaction. Fields that only make sense for some types are dropped when
// an edit moves the transaction away from them, so an expense made from a
// transfer does not keep a stale destination.
func (c *editCmd) merge(l *takatracker.Ledger, set map[string]bool, tx takatracker.Transaction) (takatracker.Transaction, error) {
	var err error
	if set["t"] {
		if tx.Type, err = takatracker.ParseTransactionType(c.kind); err != nil {
			return tx, err
		}
	}
	if set["a"] {
		if tx.Amount, err = takatracker.ParseMoney(c.amount); err != nil {
			return tx, err
		}
	}
	if set["c"] {
		tx.Category = c.category
	}
	if set["from"] {
		from, err := findAccount(l, c.account)
		if err != nil {
			return tx, err
		}
		tx.AccountID = from.ID
	}
	switch {
	case set["to"] && c.to != "":
		to, err := findAccount(l, c.to)
		if err != nil {
			return tx, err
		}
		tx.ToAccountID = to.ID
	case set["to"]:
		// An explicit -to "" removes the destination.
		tx.ToAccountID = ""
	}
	if set["on"] {
		if tx.Date, err = takatracker.ParseDate(c.date); err != nil {
			return tx, err
		}
	}
	if set["note"] {
		tx.Note = c.note
	}
	if set["person"] {
		tx.PersonName = c.person
	}
	if tx.Type != takatracker.Transfer && !set["to"] {
		tx.ToAccountID = ""
	}
	if !tx.Type.IsLoan() && !set["person"] {
		tx.PersonName = ""
	}
	return tx, nil
}
