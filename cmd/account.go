package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/takatracker/takatracker"
)

type newAccountCmd struct {
	name    string
	kind    string
	balance string
}

func (*newAccountCmd) Name() string     { return "new-account" }
func (*newAccountCmd) Synopsis() string { return "create a new account" }
func (*newAccountCmd) Usage() string {
	return `tt new-account -name <name> [-t <type>] [-b <balance>]

  Creates an account with an explicit starting balance.
  Types are BANK, MOBILE_BANKING, CASH and CREDIT_CARD.
`
}

func (c *newAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Account name.")
	f.StringVar(&c.kind, "t", string(takatracker.Cash), "Account type.")
	f.StringVar(&c.balance, "b", "0", "Starting balance.")
}

func (c *newAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := takatracker.ParseAccountType(c.kind)
	if err != nil {
		fmt.Fprintln(flag.CommandLine.Output(), "Error:", err)
		return subcommands.ExitUsageError
	}
	balance, err := takatracker.ParseMoney(c.balance)
	if err != nil {
		fmt.Fprintln(flag.CommandLine.Output(), "Error:", err)
		return subcommands.ExitUsageError
	}

	a, err := openApp()
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	acc, err := a.ledger.CreateAccount(c.name, kind, balance)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Created account %q (%s) with balance %s\n", acc.Name, acc.Type, acc.Balance)
	return subcommands.ExitSuccess
}

type editAccountCmd struct {
	account string
	name    string
	kind    string
}

func (*editAccountCmd) Name() string     { return "edit-account" }
func (*editAccountCmd) Synopsis() string { return "rename or retype an account" }
func (*editAccountCmd) Usage() string {
	return `tt edit-account -account <account> [-name <name>] [-t <type>]

  Changes an account's name or type. The balance is bookkeeping state and
  only moves through transactions.
`
}

func (c *editAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Account name or id to edit.")
	f.StringVar(&c.name, "name", "", "New name.")
	f.StringVar(&c.kind, "t", "", "New type.")
}

func (c *editAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	acc, err := findAccount(a.ledger, c.account)
	if err != nil {
		return fail(err)
	}
	if c.name != "" {
		acc.Name = c.name
	}
	if c.kind != "" {
		if acc.Type, err = takatracker.ParseAccountType(c.kind); err != nil {
			return fail(err)
		}
	}
	if err := a.ledger.UpdateAccount(acc); err != nil {
		return fail(err)
	}
	fmt.Printf("Updated account %q (%s)\n", acc.Name, acc.Type)
	return subcommands.ExitSuccess
}

type deleteAccountCmd struct {
	account string
}

func (*deleteAccountCmd) Name() string     { return "delete-account" }
func (*deleteAccountCmd) Synopsis() string { return "delete an account" }
func (*deleteAccountCmd) Usage() string {
	return `tt delete-account -account <account>

  Removes an account. Its past transactions are kept as history. The last
  remaining account cannot be deleted.
`
}

func (c *deleteAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Account name or id to delete.")
}

func (c *deleteAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	acc, err := findAccount(a.ledger, c.account)
	if err != nil {
		return fail(err)
	}
	if err := a.ledger.DeleteAccount(acc.ID); err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted account %q\n", acc.Name)
	return subcommands.ExitSuccess
}
