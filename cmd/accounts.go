package cmd

import (
	"context"
	"flag"
	"slices"

	"github.com/google/subcommands"

	"github.com/takatracker/takatracker/renderer"
)

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list accounts and their balances" }
func (*accountsCmd) Usage() string {
	return `tt accounts

  Lists every account with its type and current balance, and the total.
`
}

func (*accountsCmd) SetFlags(f *flag.FlagSet) {}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	accounts := slices.Collect(a.ledger.Accounts())
	printMarkdown(renderer.AccountsMarkdown(accounts, a.ledger.TotalBalance()))
	return subcommands.ExitSuccess
}
