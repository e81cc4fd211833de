package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/takatracker/takatracker/renderer"
)

type loansCmd struct{}

func (*loansCmd) Name() string     { return "loans" }
func (*loansCmd) Synopsis() string { return "display the loan book" }
func (*loansCmd) Usage() string {
	return `tt loans

  Groups loan transactions by person and shows each outstanding position.
`
}

func (*loansCmd) SetFlags(f *flag.FlagSet) {}

func (c *loansCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	printMarkdown(renderer.LoansMarkdown(a.ledger.LoanBook()))
	return subcommands.ExitSuccess
}
