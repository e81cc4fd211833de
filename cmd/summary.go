package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/google/subcommands"

	"github.com/takatracker/takatracker"
	"github.com/takatracker/takatracker/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the month dashboard" }
func (*summaryCmd) Usage() string {
	return `tt summary [-d <date>]

  Displays the total balance, the month's income, expense and net, and the
  per-account balances. The month shown is the one the date falls in.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", takatracker.Today().String(), "Any date inside the month to summarize.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := takatracker.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	a, err := openApp()
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	s := a.ledger.Monthly(on.Year(), int(on.Month()))
	accounts := slices.Collect(a.ledger.Accounts())
	printMarkdown(renderer.SummaryMarkdown(a.ledger.TotalBalance(), s, accounts))
	return subcommands.ExitSuccess
}
