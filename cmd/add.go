package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/takatracker/takatracker"
	"github.com/takatracker/takatracker/renderer"
)

type addCmd struct {
	kind     string
	amount   string
	category string
	account  string
	to       string
	date     string
	note     string
	person   string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new transaction" }
func (*addCmd) Usage() string {
	return `tt add -a <amount> [-t <type>] [-c <category>] [-from <account>] [-to <account>] [-on <date>] [-note <text>] [-person <name>]

  Records a transaction and updates the account balance. The amount is
  always positive; the type decides the direction.

Usage Examples:
# 500 taka of groceries from the default account.
$ tt add -a 500 -c Food -note groceries

# Move money between two accounts.
$ tt add -t TRANSFER -a 1000 -from "Pocket Cash" -to bKash

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "t", string(takatracker.Expense), "Transaction type (INCOME, EXPENSE, LOAN_GIVEN, LOAN_RECEIVED, TRANSFER).")
	f.StringVar(&c.amount, "a", "", "Amount, always positive.")
	f.StringVar(&c.category, "c", "", "Category head.")
	f.StringVar(&c.account, "from", "", "Account name or id. Defaults to the first account.")
	f.StringVar(&c.to, "to", "", "Destination account for transfers.")
	f.StringVar(&c.date, "on", "", "Transaction date. Defaults to today.")
	f.StringVar(&c.note, "note", "", "Free-form note.")
	f.StringVar(&c.person, "person", "", "The other party, for loans.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	draft, err := c.draft()
	if err != nil {
		fmt.Fprintln(flag.CommandLine.Output(), "Error:", err)
		return subcommands.ExitUsageError
	}

	a, err := openApp()
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	from, err := findAccount(a.ledger, c.account)
	if err != nil {
		return fail(err)
	}
	draft.AccountID = from.ID
	if c.to != "" {
		to, err := findAccount(a.ledger, c.to)
		if err != nil {
			return fail(err)
		}
		draft.ToAccountID = to.ID
	}

	tx, err := a.ledger.AddTransaction(draft)
	if err != nil {
		return fail(err)
	}
	fmt.Println(renderer.Transaction(tx, accountName(a.ledger)))
	return subcommands.ExitSuccess
}

// draft builds the parts of the draft that need no ledger access.
func (c *addCmd) draft() (takatracker.Draft, error) {
	var d takatracker.Draft

	kind, err := takatracker.ParseTransactionType(c.kind)
	if err != nil {
		return d, err
	}
	if c.amount == "" {
		return d, fmt.Errorf("an amount is required (-a)")
	}
	amount, err := takatracker.ParseMoney(c.amount)
	if err != nil {
		return d, err
	}
	day := takatracker.Today()
	if c.date != "" {
		if day, err = takatracker.ParseDate(c.date); err != nil {
			return d, err
		}
	}

	d = takatracker.Draft{
		Type:       kind,
		Amount:     amount,
		Category:   c.category,
		Date:       day,
		Note:       c.note,
		PersonName: c.person,
	}
	return d, nil
}
